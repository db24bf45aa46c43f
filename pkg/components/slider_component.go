package components

import (
	"image/color"

	"github.com/decker502/rslider/pkg/ecs"
	"github.com/decker502/rslider/pkg/slider"
)

// SliderComponent 滑动条组件
// 持有挂载在页面上的 slider.Slider 实例，以及绘制所需的尺寸和颜色
type SliderComponent struct {
	Slider *slider.Slider

	// 宿主输入元素所在实体
	HostEntity ecs.EntityID

	// 轨道尺寸（主轴方向为长度，交叉方向为粗细）
	TrackLength    float64
	TrackThickness float64

	// 手柄尺寸
	HandleWidth  float64
	HandleHeight float64

	// 颜色
	TrackColor    color.Color // 轨道
	BarColor      color.Color // 填充条
	HandleColor   color.Color // 手柄
	ActiveColor   color.Color // 拖拽中的手柄
	DisabledColor color.Color // 禁用状态下的手柄
	MarkColor     color.Color // 刻度
}

// SliderLayoutComponent 随窗口尺寸变化的布局
// LengthRatio > 0 时轨道长度 = 窗口主轴尺寸 × LengthRatio，窗口尺寸变化时重新计算
type SliderLayoutComponent struct {
	LengthRatio float64
}
