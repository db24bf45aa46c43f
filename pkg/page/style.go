package page

import (
	"image/color"

	"github.com/decker502/rslider/pkg/slider"
)

// Style 页面上滑动条的外观
type Style struct {
	TrackLength    float64 // 默认轨道长度
	TrackThickness float64 // 轨道粗细
	HandleLong     float64 // 手柄在交叉方向上的长度
	HandleShort    float64 // 手柄在主轴方向上的长度
	MountGap       float64 // 滑动条与宿主输入框之间的间距

	TrackColor    color.Color
	BarColor      color.Color
	HandleColor   color.Color
	ActiveColor   color.Color
	DisabledColor color.Color
	MarkColor     color.Color
}

// DefaultStyle 默认外观
func DefaultStyle() Style {
	return Style{
		TrackLength:    300,
		TrackThickness: 6,
		HandleLong:     22,
		HandleShort:    12,
		MountGap:       8,

		TrackColor:    color.RGBA{R: 0x44, G: 0x4a, B: 0x55, A: 0xff},
		BarColor:      color.RGBA{R: 0x3c, G: 0x9d, B: 0xd0, A: 0xff},
		HandleColor:   color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff},
		ActiveColor:   color.RGBA{R: 0xff, G: 0xc8, B: 0x3c, A: 0xff},
		DisabledColor: color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
		MarkColor:     color.RGBA{R: 0xa0, G: 0xa8, B: 0xb4, A: 0xff},
	}
}

// TouchStyle 触摸屏外观：手柄和轨道加大，便于手指操作
func TouchStyle() Style {
	s := DefaultStyle()
	s.TrackThickness = 10
	s.HandleLong = 44
	s.HandleShort = 24
	s.MountGap = 16
	return s
}

func (s Style) handleWidth(o slider.Orientation) float64 {
	if o == slider.Horizontal {
		return s.HandleShort
	}
	return s.HandleLong
}

func (s Style) handleHeight(o slider.Orientation) float64 {
	if o == slider.Horizontal {
		return s.HandleLong
	}
	return s.HandleShort
}
