package slider

// Config 滑动条配置，构造后不再修改
type Config struct {
	// Target 宿主元素；为 nil 时通过 TargetID 在文档中查找（允许带 "#" 前缀）
	Target   Element
	TargetID string

	// Values 取值域：显式列表或 min/max
	Values Values
	// Step min/max 形式时的步长
	Step float64

	// Set 初始选择：单值模式取 Set[0]，range 模式取 [Set[0], Set[1]]
	Set []any

	// Range 是否为双手柄区间模式
	Range bool

	// Width 大于 0 时覆盖轨道主轴长度（像素）
	Width float64

	// Orientation 主轴方向，默认竖直
	Orientation Orientation

	// 显示开关
	Scale   bool // 刻度
	Labels  bool // 刻度文字
	Tooltip bool // 手柄提示

	// Disabled 初始禁用状态
	Disabled bool

	// OnChange 每次取值变化后调用，参数为当前值文本
	OnChange func(value string)
	// OnDrop 每次拖拽结束后调用
	OnDrop func()
}

// DefaultConfig 返回带默认显示开关的配置（刻度、文字、提示均开启）
func DefaultConfig() Config {
	return Config{
		Scale:   true,
		Labels:  true,
		Tooltip: true,
	}
}
