package remote

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 5 * time.Second
	pongWait   = 30 * time.Second
	pingPeriod = 20 * time.Second

	defaultSendBuf      = 32
	defaultBroadcastBuf = 128
)

// Hub 管理已连接的客户端并向它们广播消息
//
// 每个客户端有独立的发送队列和写协程，队列满的慢客户端会被断开，
// 不会拖慢其他客户端。
type Hub struct {
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client

	mu      sync.Mutex
	clients map[*Client]struct{}

	sendBuf int
}

// NewHub 创建 Hub，需要调用 Run 启动
func NewHub(sendBuf, broadcastBuf int) *Hub {
	if sendBuf <= 0 {
		sendBuf = defaultSendBuf
	}
	if broadcastBuf <= 0 {
		broadcastBuf = defaultBroadcastBuf
	}
	return &Hub{
		broadcast:  make(chan []byte, broadcastBuf),
		register:   make(chan *Client, 64),
		unregister: make(chan *Client, 64),
		clients:    make(map[*Client]struct{}),
		sendBuf:    sendBuf,
	}
}

// Run 处理注册、注销和广播，直到 ctx 取消；退出时断开所有客户端
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAllClients()
			return

		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = struct{}{}
			n := len(h.clients)
			h.mu.Unlock()
			log.Printf("[Remote] Client %s connected from %s (%d clients)", c.id, c.remoteAddr, n)

		case c := <-h.unregister:
			h.removeClient(c, "unregister")

		case msg := <-h.broadcast:
			var slow []*Client
			h.mu.Lock()
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					slow = append(slow, c)
				}
			}
			h.mu.Unlock()

			for _, c := range slow {
				h.removeClient(c, "slow client")
			}
		}
	}
}

// Len 当前连接的客户端数量
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast 投递一条已序列化的消息，队列满时丢弃
func (h *Hub) Broadcast(msg []byte) {
	select {
	case h.broadcast <- msg:
	default:
		log.Printf("[Remote] Warning: broadcast queue full, dropping %d bytes", len(msg))
	}
}

func (h *Hub) closeAllClients() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		if c.conn != nil {
			_ = c.conn.Close()
		}
		safeClose(c.send)
		delete(h.clients, c)
	}
}

func (h *Hub) removeClient(c *Client, reason string) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	n := len(h.clients)
	h.mu.Unlock()

	if !ok {
		return
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
	safeClose(c.send)
	log.Printf("[Remote] Client %s disconnected: %s (%d clients)", c.id, reason, n)
}

func safeClose(ch chan []byte) {
	defer func() {
		_ = recover()
	}()
	close(ch)
}

// Client 一个 WebSocket 连接
type Client struct {
	id         string
	hub        *Hub
	conn       *websocket.Conn
	send       chan []byte
	remoteAddr string

	// onCommand 收到合法命令时调用（在读协程中）
	onCommand func(Command)
}

func newClient(id string, hub *Hub, conn *websocket.Conn, remoteAddr string, onCommand func(Command)) *Client {
	return &Client{
		id:         id,
		hub:        hub,
		conn:       conn,
		send:       make(chan []byte, hub.sendBuf),
		remoteAddr: remoteAddr,
		onCommand:  onCommand,
	}
}

// ID 客户端 ID
func (c *Client) ID() string {
	return c.id
}

// writePump 把发送队列写到连接，并定期发送 ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				logPumpExit(c, "write", err)
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logPumpExit(c, "ping", err)
				return
			}
		}
	}
}

// readPump 读取客户端命令，出错时注销客户端
func (c *Client) readPump() {
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		kind, msg, err := c.conn.ReadMessage()
		if err != nil {
			logPumpExit(c, "read", err)
			c.hub.unregister <- c
			return
		}
		if kind != websocket.TextMessage {
			continue
		}

		cmd, err := ParseCommand(msg)
		if err != nil {
			log.Printf("[Remote] Warning: client %s sent invalid command: %v", c.id, err)
			continue
		}
		cmd.Origin = c.id
		if c.onCommand != nil {
			c.onCommand(cmd)
		}
	}
}

func logPumpExit(c *Client, op string, err error) {
	if errors.Is(err, websocket.ErrCloseSent) {
		return
	}
	var ce *websocket.CloseError
	if errors.As(err, &ce) {
		log.Printf("[Remote] Client %s closed (%s): code=%d %s", c.id, op, ce.Code, ce.Text)
		return
	}
	log.Printf("[Remote] Client %s %s error: %v", c.id, op, err)
}
