package slider

import "math"

// Orientation 滑动条主轴方向
type Orientation int

const (
	// Vertical 竖直方向，下标从上往下增长（默认）
	Vertical Orientation = iota
	// Horizontal 水平方向，下标从左往右增长
	Horizontal
)

// String 返回方向名称
func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Along 取坐标在主轴上的分量
func (o Orientation) Along(x, y float64) float64 {
	if o == Horizontal {
		return x
	}
	return y
}

// Rect 屏幕矩形
type Rect struct {
	X, Y float64
	W, H float64
}

// Contains 点是否在矩形内（含边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Geometry 由宿主环境测量的轨道与手柄尺寸
type Geometry struct {
	Track Rect // 轨道在屏幕上的位置和尺寸

	HandleWidth  float64 // 手柄宽度
	HandleHeight float64 // 手柄高度
}

// ScaleMetrics 当前布局下的比例尺
//
// 只由当前几何尺寸和序列长度决定，布局变化时整体重新计算，不做增量更新。
type ScaleMetrics struct {
	TrackExtent  float64 // 轨道在主轴上的长度
	Step         float64 // 相邻两个下标之间的像素距离
	HandleExtent float64 // 手柄在主轴上的长度
	TrackOrigin  float64 // 轨道在主轴上的起点坐标
}

// ComputeScale 计算比例尺
//
// 参数：
//   - g: 宿主测量的几何尺寸
//   - o: 主轴方向
//   - extentOverride: 大于 0 时覆盖轨道主轴长度（Config.Width）
//   - n: 序列长度
func ComputeScale(g Geometry, o Orientation, extentOverride float64, n int) ScaleMetrics {
	m := ScaleMetrics{}
	if o == Horizontal {
		m.TrackOrigin = g.Track.X
		m.TrackExtent = g.Track.W
		m.HandleExtent = g.HandleWidth
	} else {
		m.TrackOrigin = g.Track.Y
		m.TrackExtent = g.Track.H
		m.HandleExtent = g.HandleHeight
	}

	if extentOverride > 0 {
		m.TrackExtent = extentOverride
	}

	if n > 1 {
		m.Step = m.TrackExtent / float64(n-1)
	}
	return m
}

// Offset 下标 i 对应的手柄偏移（相对轨道起点，手柄居中于刻度）
func (m ScaleMetrics) Offset(i int) float64 {
	return float64(i)*m.Step - m.HandleExtent/2
}

// DragIndex 拖拽坐标对应的下标：round((coord - origin - handle/2) / step)，并限制在 [0, n-1]
func (m ScaleMetrics) DragIndex(coord float64, n int) int {
	if m.Step <= 0 {
		return 0
	}
	return clampIndex(roundHalfUp((coord-m.TrackOrigin-m.HandleExtent/2)/m.Step), n)
}

// TapIndex 点击轨道坐标对应的下标：round((coord - origin) / step)，并限制在 [0, n-1]
func (m ScaleMetrics) TapIndex(coord float64, n int) int {
	if m.Step <= 0 {
		return 0
	}
	return clampIndex(roundHalfUp((coord-m.TrackOrigin)/m.Step), n)
}

// roundHalfUp 0.5 向正无穷方向取整
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func clampIndex(i, n int) int {
	if i > n-1 {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
