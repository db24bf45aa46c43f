package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/decker502/rslider/pkg/embedded"
	"github.com/decker502/rslider/pkg/slider"
	"gopkg.in/yaml.v3"
)

// 默认窗口与输入框尺寸
const (
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
	DefaultWindowTitle  = "rSlider"

	DefaultInputWidth  = 120
	DefaultInputHeight = 24
)

// ErrUnknownTarget 滑动条引用了不存在的输入框
var ErrUnknownTarget = errors.New("unknown target input")

// PageConfig 页面配置
// 描述一个页面上的输入框以及挂载在它们上面的滑动条
type PageConfig struct {
	Window  WindowConfig   `yaml:"window"`
	Inputs  []InputConfig  `yaml:"inputs"`
	Sliders []SliderConfig `yaml:"sliders"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`  // 默认 800
	Height int    `yaml:"height"` // 默认 600
	Title  string `yaml:"title"`  // 默认 "rSlider"
}

// InputConfig 输入框配置
type InputConfig struct {
	ID     string  `yaml:"id"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`  // 默认 120
	Height float64 `yaml:"height"` // 默认 24
	Value  string  `yaml:"value"`  // 初始文本
}

// SliderConfig 单个滑动条配置
type SliderConfig struct {
	Target      string       `yaml:"target"` // 宿主输入框 ID，允许 "#" 前缀
	Values      ValuesConfig `yaml:"values"`
	Step        float64      `yaml:"step"`
	Set         []any        `yaml:"set"`
	Range       bool         `yaml:"range"`
	Width       float64      `yaml:"width"`       // 覆盖轨道长度（像素）
	LengthRatio float64      `yaml:"lengthRatio"` // 轨道长度占窗口主轴尺寸的比例，0 表示固定长度
	Orientation string       `yaml:"orientation"` // "vertical"（默认）或 "horizontal"
	Scale       *bool        `yaml:"scale"`       // 默认 true
	Labels      *bool        `yaml:"labels"`      // 默认 true
	Tooltip     *bool        `yaml:"tooltip"`     // 默认 true
	Disabled    bool         `yaml:"disabled"`
}

// ValuesConfig 取值域
//
// YAML 中既可以写成序列，也可以写成 {min, max} 映射：
//
//	values: [xs, s, m, l, xl]
//	values: {min: 0, max: 100}
type ValuesConfig struct {
	List []any
	Min  *float64
	Max  *float64
}

// UnmarshalYAML 按节点类型解析序列或映射
func (v *ValuesConfig) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var list []any
		if err := node.Decode(&list); err != nil {
			return err
		}
		if list == nil {
			list = []any{}
		}
		v.List = list
		return nil
	case yaml.MappingNode:
		var bounds struct {
			Min *float64 `yaml:"min"`
			Max *float64 `yaml:"max"`
		}
		if err := node.Decode(&bounds); err != nil {
			return err
		}
		v.Min, v.Max = bounds.Min, bounds.Max
		return nil
	default:
		return fmt.Errorf("line %d: values must be a sequence or a {min, max} mapping", node.Line)
	}
}

// Domain 转换为 slider.Values
func (v ValuesConfig) Domain() slider.Values {
	if v.List != nil {
		return slider.List(v.List...)
	}
	return slider.Values{Min: v.Min, Max: v.Max}
}

// ParseOrientation 解析方向名称，空字符串为默认竖直方向
func ParseOrientation(name string) (slider.Orientation, error) {
	switch strings.ToLower(name) {
	case "", "vertical":
		return slider.Vertical, nil
	case "horizontal":
		return slider.Horizontal, nil
	}
	return slider.Vertical, fmt.Errorf("unknown orientation %q", name)
}

// ToSliderConfig 转换为 slider.Config（回调由调用方设置）
func (c *SliderConfig) ToSliderConfig() slider.Config {
	conf := slider.DefaultConfig()
	conf.TargetID = c.Target
	conf.Values = c.Values.Domain()
	conf.Step = c.Step
	conf.Set = c.Set
	conf.Range = c.Range
	conf.Width = c.Width
	conf.Orientation, _ = ParseOrientation(c.Orientation)
	conf.Scale = boolOr(c.Scale, true)
	conf.Labels = boolOr(c.Labels, true)
	conf.Tooltip = boolOr(c.Tooltip, true)
	conf.Disabled = c.Disabled
	return conf
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// LoadPageConfig 从YAML文件加载页面配置
// 参数：
//
//	path - 配置文件路径；"data/" 开头的路径优先从嵌入资源读取
//
// 返回：
//
//	*PageConfig - 解析后的页面配置
//	error - 如果文件读取、解析或验证失败，返回错误信息
func LoadPageConfig(path string) (*PageConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read page config file %s: %w", path, err)
	}

	cfg, err := ParsePageConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParsePageConfig 解析YAML数据，应用默认值并验证
func ParsePageConfig(data []byte) (*PageConfig, error) {
	var cfg PageConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse page config YAML: %w", err)
	}

	applyPageDefaults(&cfg)

	if err := validatePageConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid page config: %w", err)
	}
	return &cfg, nil
}

// applyPageDefaults 为缺失的可选字段设置默认值
func applyPageDefaults(cfg *PageConfig) {
	if cfg.Window.Width == 0 {
		cfg.Window.Width = DefaultWindowWidth
	}
	if cfg.Window.Height == 0 {
		cfg.Window.Height = DefaultWindowHeight
	}
	if cfg.Window.Title == "" {
		cfg.Window.Title = DefaultWindowTitle
	}

	for i := range cfg.Inputs {
		in := &cfg.Inputs[i]
		if in.Width == 0 {
			in.Width = DefaultInputWidth
		}
		if in.Height == 0 {
			in.Height = DefaultInputHeight
		}
	}

	// Scale、Labels、Tooltip 保持 nil，ToSliderConfig 时按 true 处理
}

// validatePageConfig 验证页面配置的完整性和合法性
// 取值域的细节（序列长度、步长）由 slider.New 检查
func validatePageConfig(cfg *PageConfig) error {
	if cfg.Window.Width < 0 || cfg.Window.Height < 0 {
		return fmt.Errorf("window size cannot be negative")
	}

	ids := make(map[string]bool, len(cfg.Inputs))
	for i, in := range cfg.Inputs {
		if in.ID == "" {
			return fmt.Errorf("input %d: id is required", i)
		}
		if ids[in.ID] {
			return fmt.Errorf("input %d: duplicate id %q", i, in.ID)
		}
		if in.Width < 0 || in.Height < 0 {
			return fmt.Errorf("input %q: size cannot be negative", in.ID)
		}
		ids[in.ID] = true
	}

	mounted := make(map[string]bool, len(cfg.Sliders))
	for i, s := range cfg.Sliders {
		target := strings.TrimPrefix(s.Target, "#")
		if target == "" {
			return fmt.Errorf("slider %d: target is required", i)
		}
		if !ids[target] {
			return fmt.Errorf("slider %d: %w: %q", i, ErrUnknownTarget, s.Target)
		}
		if mounted[target] {
			return fmt.Errorf("slider %d: input %q already has a slider", i, target)
		}
		mounted[target] = true

		if s.Values.List == nil && s.Values.Min == nil && s.Values.Max == nil {
			return fmt.Errorf("slider %d: values are required", i)
		}
		if s.Step < 0 {
			return fmt.Errorf("slider %d: step cannot be negative", i)
		}
		if s.Width < 0 {
			return fmt.Errorf("slider %d: width cannot be negative", i)
		}
		if s.LengthRatio < 0 || s.LengthRatio > 1 {
			return fmt.Errorf("slider %d: lengthRatio must be within [0, 1]", i)
		}
		if _, err := ParseOrientation(s.Orientation); err != nil {
			return fmt.Errorf("slider %d: %w", i, err)
		}
	}
	return nil
}
