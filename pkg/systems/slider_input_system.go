package systems

import (
	"math"

	"github.com/decker502/rslider/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultClickSlop 按下与抬起之间的最大位移（像素），不超过时额外派发一次 click
const DefaultClickSlop = 4.0

// PointerDevice 指针输入接口（鼠标 + 触摸）
// 用于依赖注入，支持测试时 mock
type PointerDevice interface {
	CursorPosition() (int, int)
	IsMouseButtonJustPressed(button ebiten.MouseButton) bool
	IsMouseButtonJustReleased(button ebiten.MouseButton) bool

	AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID
	AppendJustPressedTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID
	AppendJustReleasedTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID
	TouchPosition(id ebiten.TouchID) (int, int)
}

// ebitenPointerDevice Ebitengine 默认实现
type ebitenPointerDevice struct{}

func (ebitenPointerDevice) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (ebitenPointerDevice) IsMouseButtonJustPressed(button ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(button)
}

func (ebitenPointerDevice) IsMouseButtonJustReleased(button ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustReleased(button)
}

func (ebitenPointerDevice) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return ebiten.AppendTouchIDs(ids)
}

func (ebitenPointerDevice) AppendJustPressedTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return inpututil.AppendJustPressedTouchIDs(ids)
}

func (ebitenPointerDevice) AppendJustReleasedTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return inpututil.AppendJustReleasedTouchIDs(ids)
}

func (ebitenPointerDevice) TouchPosition(id ebiten.TouchID) (int, int) {
	return ebiten.TouchPosition(id)
}

// point 记录的指针位置
type point struct {
	x, y float64
}

// SliderInputSystem 把 Ebitengine 的轮询式输入翻译为文档级指针事件
//
// 每帧按以下顺序派发到页面事件总线：
//  1. mousedown / mousemove / mouseup，抬起时位移不超过 ClickSlop 再派发 click
//  2. touchstart（每个新触点一个事件）
//  3. touchmove（本帧所有移动过的触点合并为一个事件）
//  4. touchend（每个抬起的触点一个事件），位移不超过 ClickSlop 再派发 click
//
// 所有滑动条共享同一条总线，触点归属由各滑动条自己判断。
type SliderInputSystem struct {
	bus    *input.Bus
	device PointerDevice

	// ClickSlop 合成 click 的最大位移
	ClickSlop float64

	mouseDown  bool
	mousePress point
	lastCursor point
	hasCursor  bool

	touchStart map[ebiten.TouchID]point
	touchLast  map[ebiten.TouchID]point

	touchIDs []ebiten.TouchID
}

// NewSliderInputSystem 创建使用 Ebitengine 输入的系统
func NewSliderInputSystem(bus *input.Bus) *SliderInputSystem {
	return NewSliderInputSystemWithDevice(bus, ebitenPointerDevice{})
}

// NewSliderInputSystemWithDevice 创建带自定义输入设备的系统（用于测试）
func NewSliderInputSystemWithDevice(bus *input.Bus, device PointerDevice) *SliderInputSystem {
	return &SliderInputSystem{
		bus:        bus,
		device:     device,
		ClickSlop:  DefaultClickSlop,
		touchStart: make(map[ebiten.TouchID]point),
		touchLast:  make(map[ebiten.TouchID]point),
	}
}

// Update 轮询输入并派发事件
func (s *SliderInputSystem) Update(deltaTime float64) {
	s.updateMouse()
	s.updateTouches()
}

func (s *SliderInputSystem) updateMouse() {
	cx, cy := s.device.CursorPosition()
	cursor := point{float64(cx), float64(cy)}

	if s.device.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.mouseDown = true
		s.mousePress = cursor
		s.bus.Dispatch(input.Event{Type: input.EventMouseDown, X: cursor.x, Y: cursor.y})
	} else if s.hasCursor && cursor != s.lastCursor {
		s.bus.Dispatch(input.Event{Type: input.EventMouseMove, X: cursor.x, Y: cursor.y})
	}
	s.lastCursor = cursor
	s.hasCursor = true

	if s.device.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		s.bus.Dispatch(input.Event{Type: input.EventMouseUp, X: cursor.x, Y: cursor.y})
		if s.mouseDown && s.withinSlop(s.mousePress, cursor) {
			s.bus.Dispatch(input.Event{Type: input.EventClick, X: cursor.x, Y: cursor.y})
		}
		s.mouseDown = false
	}
}

func (s *SliderInputSystem) updateTouches() {
	// touchstart
	s.touchIDs = s.device.AppendJustPressedTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		p := s.touchPosition(id)
		s.touchStart[id] = p
		s.touchLast[id] = p
		s.bus.Dispatch(touchEvent(input.EventTouchStart, id, p))
	}

	// touchmove
	var moved []input.Touch
	s.touchIDs = s.device.AppendTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		last, tracked := s.touchLast[id]
		if !tracked {
			continue
		}
		p := s.touchPosition(id)
		if p == last {
			continue
		}
		s.touchLast[id] = p
		moved = append(moved, input.Touch{ID: int(id), X: p.x, Y: p.y})
	}
	if len(moved) > 0 {
		first := moved[0]
		s.bus.Dispatch(input.Event{
			Type:           input.EventTouchMove,
			X:              first.X,
			Y:              first.Y,
			ChangedTouches: moved,
		})
	}

	// touchend：抬起后设备不再报告位置，使用最后记录的位置
	s.touchIDs = s.device.AppendJustReleasedTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		p, tracked := s.touchLast[id]
		if !tracked {
			continue
		}
		start := s.touchStart[id]
		delete(s.touchLast, id)
		delete(s.touchStart, id)

		s.bus.Dispatch(touchEvent(input.EventTouchEnd, id, p))
		if s.withinSlop(start, p) {
			s.bus.Dispatch(input.Event{Type: input.EventClick, X: p.x, Y: p.y})
		}
	}
}

func (s *SliderInputSystem) touchPosition(id ebiten.TouchID) point {
	x, y := s.device.TouchPosition(id)
	return point{float64(x), float64(y)}
}

func (s *SliderInputSystem) withinSlop(a, b point) bool {
	return math.Hypot(b.x-a.x, b.y-a.y) <= s.ClickSlop
}

func touchEvent(t input.EventType, id ebiten.TouchID, p point) input.Event {
	return input.Event{
		Type:           t,
		X:              p.x,
		Y:              p.y,
		ChangedTouches: []input.Touch{{ID: int(id), X: p.x, Y: p.y}},
	}
}
