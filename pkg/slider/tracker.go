package slider

import "github.com/decker502/rslider/pkg/input"

// Handle 手柄
type Handle int

const (
	// HandleNone 无
	HandleNone Handle = iota
	// HandleLow 低位手柄（单值模式下唯一的手柄）
	HandleLow
	// HandleHigh 高位手柄（仅 range 模式）
	HandleHigh
)

// String 返回手柄名称
func (h Handle) String() string {
	switch h {
	case HandleLow:
		return "low"
	case HandleHigh:
		return "high"
	}
	return "none"
}

// Session 拖拽会话
//
// Handle 为 HandleNone 时表示空闲。触摸会话只接受 ChangedTouches 中包含 TouchID 的事件，
// 因为移动/抬起事件来自文档级总线，可能属于其他滑动条或其他手指。
type Session struct {
	Handle  Handle
	Touch   bool
	TouchID int

	// 按下时的坐标
	StartX, StartY float64
}

// Active 是否正在拖拽
func (s Session) Active() bool {
	return s.Handle != HandleNone
}

// Session 返回当前拖拽会话
func (s *Slider) Session() Session {
	return s.session
}

// HandleEvent 处理总线上的一个事件
//
// 所有实例共享同一条总线，是否响应完全取决于本实例自己的状态。
func (s *Slider) HandleEvent(e input.Event) {
	if s.destroyed {
		return
	}

	switch e.Type {
	case input.EventMouseDown:
		s.press(false, 0, e.X, e.Y)

	case input.EventTouchStart:
		if len(e.ChangedTouches) == 0 {
			return
		}
		t := e.ChangedTouches[0]
		s.press(true, t.ID, t.X, t.Y)

	case input.EventMouseMove:
		if !s.session.Active() || s.session.Touch {
			return
		}
		s.move(e.X, e.Y)

	case input.EventTouchMove:
		if !s.session.Active() || !s.session.Touch {
			return
		}
		t, ok := e.FindTouch(s.session.TouchID)
		if !ok {
			// 属于其他实例或其他手指
			return
		}
		s.move(t.X, t.Y)

	case input.EventMouseUp:
		if !s.session.Active() || s.session.Touch {
			return
		}
		s.drop()

	case input.EventTouchEnd, input.EventTouchCancel:
		if !s.session.Active() || !s.session.Touch {
			return
		}
		if _, ok := e.FindTouch(s.session.TouchID); !ok {
			return
		}
		s.drop()

	case input.EventClick:
		s.tap(e.X, e.Y)

	case input.EventResize:
		s.Resize()
	}
}

// press 按下：命中本实例的手柄时开始拖拽
func (s *Slider) press(touch bool, id int, x, y float64) {
	if s.disabled {
		return
	}

	h := s.HandleAt(x, y)
	if h == HandleNone {
		return
	}

	s.session = Session{
		Handle:  h,
		Touch:   touch,
		TouchID: id,
		StartX:  x,
		StartY:  y,
	}
}

// move 拖拽中：坐标换算为下标后写入对应一端
//
// 禁用后已打开的会话不再移动手柄，但仍可以正常结束。
func (s *Slider) move(x, y float64) {
	if s.disabled {
		return
	}

	coord := s.conf.Orientation.Along(x, y)
	index := s.metrics.DragIndex(coord, s.values.Len())
	s.setIndex(s.session.Handle, index)
}

// drop 结束拖拽并调用 OnDrop
func (s *Slider) drop() {
	s.session = Session{}
	if s.conf.OnDrop != nil {
		s.conf.OnDrop()
	}
}

// tap 点击轨道（非手柄）：把最近的一端移动到点击位置，不产生拖拽会话
//
// range 模式下距离相等时移动 Start。
func (s *Slider) tap(x, y float64) {
	if s.disabled {
		return
	}
	if !s.TrackArea().Contains(x, y) || s.HandleAt(x, y) != HandleNone {
		return
	}

	idx := s.metrics.TapIndex(s.conf.Orientation.Along(x, y), s.values.Len())

	if s.conf.Range {
		if idx-s.state.Start <= s.state.End-idx {
			s.state.Start = idx
		} else {
			s.state.End = idx
		}
	} else {
		s.state.End = idx
	}
	s.apply()
}

// HandleAt 返回坐标处的手柄；两个手柄重叠时高位手柄在上层
func (s *Slider) HandleAt(x, y float64) Handle {
	if s.conf.Range && s.HandleRect(HandleHigh).Contains(x, y) {
		return HandleHigh
	}
	if s.HandleRect(HandleLow).Contains(x, y) {
		return HandleLow
	}
	return HandleNone
}

// HandleRect 手柄在屏幕上的矩形：主轴方向由偏移决定，交叉方向居中于轨道
func (s *Slider) HandleRect(h Handle) Rect {
	offset := s.visuals.LowOffset
	if h == HandleHigh {
		offset = s.visuals.HighOffset
	}

	track := s.geom.Track
	w, hgt := s.geom.HandleWidth, s.geom.HandleHeight

	if s.conf.Orientation == Horizontal {
		return Rect{
			X: s.metrics.TrackOrigin + offset,
			Y: track.Y + track.H/2 - hgt/2,
			W: w,
			H: hgt,
		}
	}
	return Rect{
		X: track.X + track.W/2 - w/2,
		Y: s.metrics.TrackOrigin + offset,
		W: w,
		H: hgt,
	}
}

// TrackArea 可点击的轨道区域：主轴为轨道全长，交叉方向取轨道与手柄中较宽者
func (s *Slider) TrackArea() Rect {
	track := s.geom.Track

	if s.conf.Orientation == Horizontal {
		cross := track.H
		if s.geom.HandleHeight > cross {
			cross = s.geom.HandleHeight
		}
		return Rect{
			X: s.metrics.TrackOrigin,
			Y: track.Y + track.H/2 - cross/2,
			W: s.metrics.TrackExtent,
			H: cross,
		}
	}

	cross := track.W
	if s.geom.HandleWidth > cross {
		cross = s.geom.HandleWidth
	}
	return Rect{
		X: track.X + track.W/2 - cross/2,
		Y: s.metrics.TrackOrigin,
		W: cross,
		H: s.metrics.TrackExtent,
	}
}
