package slider

import "github.com/decker502/rslider/pkg/input"

// Element 宿主输入元素
//
// 滑动条把当前值的文本形式写回该元素，挂载期间隐藏它，Destroy 时恢复原来的显示状态。
type Element interface {
	ID() string
	Value() string
	SetValue(v string)
	Display() string
	SetDisplay(display string)
}

// View 滑动条的可视部分（轨道、刻度、手柄、提示），由宿主环境创建和绘制
type View interface {
	// Geometry 返回当前测量到的几何尺寸
	Geometry() Geometry
	// Remove 从宿主环境中移除
	Remove()
}

// Document 宿主环境
//
// 提供元素查找、文档级事件总线，以及在宿主元素旁边插入滑动条视图的能力。
type Document interface {
	ElementByID(id string) (Element, bool)
	Events() *input.Bus
	Mount(target Element, s *Slider) (View, error)
}
