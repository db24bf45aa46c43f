// Package terminal 在 tcell 终端上实现 slider.Document
//
// 终端以字符单元为坐标：鼠标事件的单元 (col, row) 映射为单元中心 (col+0.5, row+0.5)，
// 轨道刻度线穿过单元中心，因此下标 i 所在的单元就是 floor(origin + i*step)。
package terminal

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/decker502/rslider/pkg/input"
	"github.com/decker502/rslider/pkg/remote"
	"github.com/decker502/rslider/pkg/slider"
	"github.com/gdamore/tcell/v2"
)

// 手柄尺寸（单元）
const (
	handleCross   = 3 // 交叉方向
	handlePrimary = 1 // 主轴方向
)

// ErrForeignElement 元素不属于本终端页面
var ErrForeignElement = errors.New("element does not belong to this terminal")

// Terminal 终端页面
type Terminal struct {
	screen tcell.Screen
	bus    *input.Bus

	fields []*field
	mounts []*mount

	// 鼠标按键状态，用于把 tcell 的按键掩码翻译为按下/抬起
	buttonDown bool
	pressCol   int
	pressRow   int
	lastCol    int
	lastRow    int

	// 正在构造的滑动条的布局，Mount 时使用
	pendingRatio float64

	disabledAll bool

	remote *remote.Server
}

// field 终端上的输入框
type field struct {
	id       string
	col, row int
	width    int
	value    string
	display  string
}

func (f *field) ID() string                { return f.id }
func (f *field) Value() string             { return f.value }
func (f *field) SetValue(v string)         { f.value = v }
func (f *field) Display() string           { return f.display }
func (f *field) SetDisplay(display string) { f.display = display }

// mount 挂载在输入框下方的滑动条
type mount struct {
	term   *Terminal
	slider *slider.Slider

	col, row    int // 轨道起点单元
	length      int // 首尾刻度之间的距离（单元），轨道占 length+1 个单元
	lengthRatio float64
}

// Geometry 实现 slider.View
func (m *mount) Geometry() slider.Geometry {
	o := m.slider.Config().Orientation
	x, y := float64(m.col)+0.5, float64(m.row)+0.5
	extent := float64(m.length)

	if o == slider.Horizontal {
		return slider.Geometry{
			Track:        slider.Rect{X: x, Y: y - 0.5, W: extent, H: 1},
			HandleWidth:  handlePrimary,
			HandleHeight: 1,
		}
	}
	return slider.Geometry{
		Track:        slider.Rect{X: x - 0.5, Y: y, W: 1, H: extent},
		HandleWidth:  handleCross,
		HandleHeight: handlePrimary,
	}
}

// Remove 实现 slider.View
func (m *mount) Remove() {
	for i, other := range m.term.mounts {
		if other == m {
			m.term.mounts = append(m.term.mounts[:i], m.term.mounts[i+1:]...)
			break
		}
	}
}

// New 创建终端页面，screen 必须已经 Init
func New(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen: screen,
		bus:    input.NewBus(),
	}
}

// Screen 返回底层 tcell 屏幕
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Events 实现 slider.Document
func (t *Terminal) Events() *input.Bus {
	return t.bus
}

// AddInputField 添加一个输入框
func (t *Terminal) AddInputField(id string, col, row, width int, value string) error {
	if _, ok := t.ElementByID(id); ok {
		return fmt.Errorf("duplicate element id %q", id)
	}
	t.fields = append(t.fields, &field{
		id:      id,
		col:     col,
		row:     row,
		width:   width,
		value:   value,
		display: "block",
	})
	return nil
}

// ElementByID 实现 slider.Document
func (t *Terminal) ElementByID(id string) (slider.Element, bool) {
	for _, f := range t.fields {
		if f.id == id {
			return f, true
		}
	}
	return nil, false
}

// CreateSlider 创建滑动条；lengthRatio > 0 时轨道长度随终端尺寸变化
func (t *Terminal) CreateSlider(conf slider.Config, lengthRatio float64) (*slider.Slider, error) {
	t.pendingRatio = lengthRatio
	defer func() { t.pendingRatio = 0 }()

	s, err := slider.New(t, conf)
	if err != nil {
		return nil, err
	}
	log.Printf("[Terminal] Slider mounted on %q (value=%s)", s.Element().ID(), s.Value())
	return s, nil
}

// Mount 实现 slider.Document：轨道从输入框下一行开始
func (t *Terminal) Mount(target slider.Element, s *slider.Slider) (slider.View, error) {
	host, ok := target.(*field)
	if !ok || !t.owns(host) {
		return nil, ErrForeignElement
	}

	conf := s.Config()
	m := &mount{
		term:        t,
		slider:      s,
		row:         host.row + 2,
		col:         host.col + handleCross/2,
		length:      int(conf.Width),
		lengthRatio: t.pendingRatio,
	}
	if conf.Orientation == slider.Horizontal {
		m.col = host.col
	}
	if m.length <= 0 {
		m.layout()
	}
	t.mounts = append(t.mounts, m)
	return m, nil
}

func (t *Terminal) owns(f *field) bool {
	for _, other := range t.fields {
		if other == f {
			return true
		}
	}
	return false
}

// layout 计算自动长度：按比例取终端尺寸，否则填满到边缘
func (m *mount) layout() {
	if m.slider.Config().Width > 0 {
		return
	}
	w, h := m.term.screen.Size()
	avail, start := h, m.row
	if m.slider.Config().Orientation == slider.Horizontal {
		avail, start = w, m.col
	}

	// 最后一行留给状态栏
	maxLength := avail - start - 2
	length := maxLength
	if m.lengthRatio > 0 {
		length = int(float64(avail) * m.lengthRatio)
	}
	if length > maxLength {
		length = maxLength
	}
	if length < 1 {
		length = 1
	}
	m.length = length
}

// Slider 返回挂载在指定输入框上的滑动条
func (t *Terminal) Slider(id string) (*slider.Slider, bool) {
	for _, m := range t.mounts {
		if m.slider.Element().ID() == id && !m.slider.Destroyed() {
			return m.slider, true
		}
	}
	return nil, false
}

// SetRemote 接入 WebSocket 状态服务
// 远程命令到达时向屏幕投递一个中断事件，由事件循环在本 goroutine 中执行
func (t *Terminal) SetRemote(srv *remote.Server) {
	t.remote = srv
	srv.SetNotify(func() {
		_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	for _, m := range t.mounts {
		srv.PublishDisabled(m.slider.Element().ID(), m.slider.Disabled())
	}
}

// Sliders 当前挂载的滑动条
func (t *Terminal) Sliders() []*slider.Slider {
	out := make([]*slider.Slider, 0, len(t.mounts))
	for _, m := range t.mounts {
		out = append(out, m.slider)
	}
	return out
}

// Resize 终端尺寸变化：重新计算自动长度并广播 resize 事件
func (t *Terminal) Resize(width, height int) {
	for _, m := range t.mounts {
		m.layout()
	}
	t.bus.Dispatch(input.Event{Type: input.EventResize, Width: width, Height: height})
}

// StatusLine 所有输入框当前值的摘要
func (t *Terminal) StatusLine() string {
	parts := make([]string, 0, len(t.fields)+1)
	for _, f := range t.fields {
		parts = append(parts, f.id+"="+f.value)
	}
	if t.disabledAll {
		parts = append(parts, "[disabled]")
	}
	return strings.Join(parts, "  ")
}
