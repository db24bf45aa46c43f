package components

// InputFieldComponent 宿主输入元素
//
// 相当于页面上的一个文本输入框：滑动条把当前值的文本形式写入 Value，
// 挂载滑动条期间 Display 为 "none"（不绘制），滑动条销毁后恢复。
type InputFieldComponent struct {
	ID      string // 元素标识，滑动条配置通过它查找宿主元素
	Value   string // 当前值
	Display string // 显示状态："block" 或 "none"

	// 输入框尺寸（像素）
	Width  float64
	Height float64
}

// Visible 是否需要绘制
func (c *InputFieldComponent) Visible() bool {
	return c.Display != "none"
}
