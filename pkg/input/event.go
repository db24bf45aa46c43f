// Package input 提供文档级指针事件的定义和分发
//
// 拖拽过程中指针可能离开滑动条本身的区域，所以移动/释放事件不能只投递给
// 某一个控件，而是由一条全局事件总线（Bus）广播给所有订阅者。
// 每个订阅者自己判断事件是否属于自己（活动手柄、触摸点 ID）。
package input

import "fmt"

// EventType 事件类型
type EventType int

const (
	// EventMouseDown 鼠标左键按下
	EventMouseDown EventType = iota
	// EventMouseMove 鼠标移动
	EventMouseMove
	// EventMouseUp 鼠标左键释放
	EventMouseUp
	// EventTouchStart 新的触摸点按下
	EventTouchStart
	// EventTouchMove 触摸点移动
	EventTouchMove
	// EventTouchEnd 触摸点抬起
	EventTouchEnd
	// EventTouchCancel 触摸被系统取消
	EventTouchCancel
	// EventClick 点击（按下和释放位置几乎相同）
	EventClick
	// EventResize 宿主窗口尺寸变化
	EventResize
)

var eventTypeNames = map[EventType]string{
	EventMouseDown:   "mousedown",
	EventMouseMove:   "mousemove",
	EventMouseUp:     "mouseup",
	EventTouchStart:  "touchstart",
	EventTouchMove:   "touchmove",
	EventTouchEnd:    "touchend",
	EventTouchCancel: "touchcancel",
	EventClick:       "click",
	EventResize:      "resize",
}

// String 返回事件类型名称（与浏览器事件名一致，便于日志阅读）
func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// IsTouch 是否为触摸类事件
func (t EventType) IsTouch() bool {
	switch t {
	case EventTouchStart, EventTouchMove, EventTouchEnd, EventTouchCancel:
		return true
	}
	return false
}

// Touch 单个触摸点
type Touch struct {
	ID int     // 触摸点标识，在按下到抬起期间保持不变
	X  float64 // 屏幕坐标
	Y  float64
}

// Event 一次指针/窗口事件
type Event struct {
	Type EventType

	// X, Y 鼠标事件和点击事件的屏幕坐标
	X, Y float64

	// ChangedTouches 本次事件中状态发生变化的触摸点（仅触摸事件）
	ChangedTouches []Touch

	// Width, Height 新的窗口尺寸（仅 EventResize）
	Width, Height int
}

// FindTouch 在 ChangedTouches 中查找指定 ID 的触摸点
func (e Event) FindTouch(id int) (Touch, bool) {
	for _, t := range e.ChangedTouches {
		if t.ID == id {
			return t, true
		}
	}
	return Touch{}, false
}
