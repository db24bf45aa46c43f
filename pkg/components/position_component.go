package components

// PositionComponent 实体左上角的屏幕坐标
type PositionComponent struct {
	X float64
	Y float64
}
