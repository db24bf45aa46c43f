// Package remote 通过 WebSocket 广播滑动条取值并接收远程设置命令
//
// 服务端消息都带信封 {type, ts, data}：
//   - state_init：连接建立后的第一条消息，包含客户端 ID 和所有滑动条的当前状态
//   - value_changed：某个滑动条取值变化
//   - drop：某个滑动条拖拽结束
//   - disabled_changed：某个滑动条禁用状态变化
//
// 滑动条只能在宿主的主循环中访问，因此客户端命令先进入队列，
// 由宿主在主循环里调用 ApplyPending 执行。
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/decker502/rslider/pkg/slider"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// 服务端消息类型
const (
	MessageStateInit       = "state_init"
	MessageValueChanged    = "value_changed"
	MessageDrop            = "drop"
	MessageDisabledChanged = "disabled_changed"
)

// DefaultPath 默认的 WebSocket 路径
const DefaultPath = "/ws"

const (
	defaultCommandBuf = 64
	shutdownTimeout   = 2 * time.Second
)

// Config 服务端配置
type Config struct {
	Addr string // 监听地址，例如 ":8765"
	Path string // 默认 DefaultPath

	SendBuf      int // 每个客户端的发送队列长度
	BroadcastBuf int // 广播队列长度
	CommandBuf   int // 待执行命令队列长度
}

// SliderState 一个滑动条的对外状态
type SliderState struct {
	ID       string `json:"id"`
	Value    string `json:"value"`
	Disabled bool   `json:"disabled"`
}

type stateInitData struct {
	Client  string        `json:"client"`
	Sliders []SliderState `json:"sliders"`
}

type dropData struct {
	ID string `json:"id"`
}

type envelope struct {
	Type string     `json:"type"`
	Ts   *time.Time `json:"ts,omitempty"`
	Data any        `json:"data,omitempty"`
}

// Server 滑动条状态服务
type Server struct {
	addr string
	path string

	hub      *Hub
	commands chan Command

	mu     sync.Mutex
	states map[string]SliderState
	order  []string
	notify func()
}

// NewServer 创建服务，需要调用 ListenAndServe（或 Register + Hub().Run）启动
func NewServer(cfg Config) *Server {
	path := cfg.Path
	if path == "" {
		path = DefaultPath
	}
	commandBuf := cfg.CommandBuf
	if commandBuf <= 0 {
		commandBuf = defaultCommandBuf
	}
	return &Server{
		addr:     cfg.Addr,
		path:     path,
		hub:      NewHub(cfg.SendBuf, cfg.BroadcastBuf),
		commands: make(chan Command, commandBuf),
		states:   make(map[string]SliderState),
	}
}

// Hub 返回广播中心
func (s *Server) Hub() *Hub {
	return s.hub
}

// SetNotify 设置命令入队后的通知函数（在读协程中调用，必须并发安全）
func (s *Server) SetNotify(fn func()) {
	s.mu.Lock()
	s.notify = fn
	s.mu.Unlock()
}

// Register 在 mux 上注册 WebSocket 处理函数
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc(s.path, s.handleWS)
}

// ListenAndServe 启动 Hub 和 HTTP 服务，阻塞直到 ctx 取消或监听失败
func (s *Server) ListenAndServe(ctx context.Context) error {
	mux := http.NewServeMux()
	s.Register(mux)

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	hubCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go s.hub.Run(hubCtx)

	go func() {
		<-hubCtx.Done()
		shutdownCtx, done := context.WithTimeout(context.Background(), shutdownTimeout)
		defer done()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("[Remote] Listening on %s%s", s.addr, s.path)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Remote] Warning: upgrade failed: %v", err)
		return
	}

	client := newClient(uuid.NewString(), s.hub, conn, r.RemoteAddr, s.Submit)

	// state_init 必须是客户端收到的第一条消息
	if msg, err := encode(MessageStateInit, stateInitData{Client: client.id, Sliders: s.Snapshot()}); err == nil {
		client.send <- msg
	}
	s.hub.register <- client

	go client.writePump()
	go client.readPump()
}

// Submit 把命令放入待执行队列，队列满时丢弃
func (s *Server) Submit(cmd Command) {
	select {
	case s.commands <- cmd:
	default:
		log.Printf("[Remote] Warning: command queue full, dropping %s for %q", cmd.Type, cmd.ID)
		return
	}

	s.mu.Lock()
	notify := s.notify
	s.mu.Unlock()
	if notify != nil {
		notify()
	}
}

// ApplyPending 执行所有待执行的命令，返回执行的数量
// 必须在滑动条所在的 goroutine 中调用；找不到的滑动条忽略
func (s *Server) ApplyPending(lookup func(id string) (*slider.Slider, bool)) int {
	n := 0
	for {
		select {
		case cmd := <-s.commands:
			sl, ok := lookup(cmd.ID)
			if !ok {
				log.Printf("[Remote] Warning: %s from %s for unknown slider %q", cmd.Type, cmd.Origin, cmd.ID)
				continue
			}
			cmd.Apply(sl)
			if cmd.Type == CommandSetDisabled {
				s.PublishDisabled(cmd.ID, sl.Disabled())
			}
			n++
		default:
			return n
		}
	}
}

// PublishChange 记录并广播取值变化
func (s *Server) PublishChange(id, value string) {
	s.update(id, func(st *SliderState) { st.Value = value })
	s.broadcast(MessageValueChanged, SliderState{ID: id, Value: value, Disabled: s.state(id).Disabled})
}

// PublishDrop 广播拖拽结束
func (s *Server) PublishDrop(id string) {
	s.broadcast(MessageDrop, dropData{ID: id})
}

// PublishDisabled 记录并广播禁用状态
func (s *Server) PublishDisabled(id string, disabled bool) {
	s.update(id, func(st *SliderState) { st.Disabled = disabled })
	s.broadcast(MessageDisabledChanged, s.state(id))
}

// Snapshot 按首次发布的顺序返回所有滑动条状态
func (s *Server) Snapshot() []SliderState {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]SliderState, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.states[id])
	}
	return out
}

func (s *Server) state(id string) SliderState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.states[id]
}

func (s *Server) update(id string, fn func(*SliderState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[id]
	if !ok {
		st.ID = id
		s.order = append(s.order, id)
	}
	fn(&st)
	s.states[id] = st
}

func (s *Server) broadcast(typ string, data any) {
	msg, err := encode(typ, data)
	if err != nil {
		log.Printf("[Remote] Warning: encode %s: %v", typ, err)
		return
	}
	s.hub.Broadcast(msg)
}

func encode(typ string, data any) ([]byte, error) {
	now := time.Now().UTC()
	return json.Marshal(envelope{Type: typ, Ts: &now, Data: data})
}
