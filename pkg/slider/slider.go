// Package slider 实现离散取值滑动条的核心逻辑
//
// 一个 Slider 实例由以下部分组成：
//   - 配置（Config）：构造后不变
//   - 取值状态（ValueState）：start/end 下标，只能通过 SetValues 或拖拽/点击修改
//   - 交互会话（Session）：正在拖拽的手柄以及所属的触摸点
//   - 比例尺（ScaleMetrics）：由当前几何尺寸和序列长度计算，尺寸变化时重算
//
// 绘制、元素插入/移除、几何测量都交给宿主环境（Document/View）完成，
// 本包只负责坐标与下标之间的换算和状态机。
package slider

import (
	"fmt"
	"log"
	"strings"

	"github.com/decker502/rslider/pkg/input"
)

// Mark 刻度
type Mark struct {
	Offset float64 // 相对轨道起点的主轴偏移
	Label  string  // 刻度文字（Labels 关闭时为空）
}

// Slider 滑动条实例
type Slider struct {
	conf   Config
	values Sequence

	state   ValueState
	session Session
	metrics ScaleMetrics
	geom    Geometry
	visuals Visuals
	marks   []Mark
	value   string

	element Element
	view    View
	sub     *input.Subscription

	// 挂载前宿主元素的显示状态，Destroy 时恢复
	hostDisplay string

	disabled  bool
	destroyed bool
}

// New 创建滑动条并挂载到宿主文档
//
// 配置错误（找不到宿主元素、min/max 缺失、序列过短）会记录日志并返回错误，此时不会挂载任何视图。
// 缺少 step 不算致命错误：记录日志后使用 [min, max] 继续构造。
//
// 构造完成时会按初始状态调用一次 OnChange。
func New(doc Document, conf Config) (*Slider, error) {
	if doc == nil {
		return nil, fail(ErrNoDocument)
	}

	element := conf.Target
	if element == nil {
		id := strings.TrimPrefix(conf.TargetID, "#")
		found, ok := doc.ElementByID(id)
		if !ok || found == nil {
			return nil, fail(fmt.Errorf("%w: %q", ErrNoTarget, conf.TargetID))
		}
		element = found
	}

	values, err := prepareValues(conf)
	if err != nil {
		return nil, fail(err)
	}

	s := &Slider{
		conf:     conf,
		values:   values,
		element:  element,
		disabled: conf.Disabled,
	}

	s.hostDisplay = element.Display()
	element.SetDisplay("none")

	view, err := doc.Mount(element, s)
	if err != nil {
		element.SetDisplay(s.hostDisplay)
		return nil, fail(fmt.Errorf("failed to mount slider for %q: %w", element.ID(), err))
	}
	s.view = view

	s.setInitialValues()
	s.relayout()

	s.sub = doc.Events().Subscribe(s.HandleEvent)

	s.SetValues(nil, nil)
	return s, nil
}

// prepareValues 根据配置得到取值序列
func prepareValues(conf Config) (Sequence, error) {
	if !conf.Values.IsBounds() {
		seq := NewSequence(conf.Values.List)
		if seq.Len() < 2 {
			return nil, fmt.Errorf("%w: got %d", ErrTooFewValues, seq.Len())
		}
		return seq, nil
	}

	if conf.Values.Min == nil || conf.Values.Max == nil {
		return nil, ErrMissingBounds
	}

	seq, err := Expand(*conf.Values.Min, *conf.Values.Max, conf.Step)
	if err != nil {
		// 回退序列仍然可用
		log.Printf("[RangeSlider] Warning: %v, falling back to [min, max]", err)
	}
	if seq.Len() < 2 {
		return nil, fmt.Errorf("%w: min=%v max=%v", ErrTooFewValues, *conf.Values.Min, *conf.Values.Max)
	}
	return seq, nil
}

// setInitialValues 初始化下标，并应用通过校验的初始选择
func (s *Slider) setInitialValues() {
	s.state.Start = 0
	if s.conf.Range {
		s.state.End = s.values.Len() - 1
	} else {
		s.state.End = 0
	}

	if !s.checkInitial() {
		return
	}

	if s.conf.Range {
		s.state.Start = s.values.IndexOf(s.conf.Set[0])
		s.state.End = s.values.IndexOf(s.conf.Set[1])
	} else {
		s.state.End = s.values.IndexOf(s.conf.Set[0])
	}
}

// checkInitial 初始选择是否有效：Set[0] 必须在序列中；range 模式下还需要 Set[1]
func (s *Slider) checkInitial() bool {
	if len(s.conf.Set) < 1 {
		return false
	}
	if s.values.IndexOf(s.conf.Set[0]) < 0 {
		return false
	}
	if s.conf.Range {
		if len(s.conf.Set) < 2 || s.values.IndexOf(s.conf.Set[1]) < 0 {
			return false
		}
	}
	return true
}

// relayout 重新测量几何尺寸并计算比例尺和刻度
func (s *Slider) relayout() {
	s.geom = s.view.Geometry()
	s.metrics = ComputeScale(s.geom, s.conf.Orientation, s.conf.Width, s.values.Len())

	s.marks = s.marks[:0]
	if !s.conf.Scale {
		return
	}
	for i := 0; i < s.values.Len(); i++ {
		mark := Mark{Offset: float64(i) * s.metrics.Step}
		if s.conf.Labels {
			mark.Label = s.values.Format(i)
		}
		s.marks = append(s.marks, mark)
	}
}

// Resize 宿主尺寸变化：重新测量、重算比例尺，并重新计算手柄位置
func (s *Slider) Resize() {
	if s.destroyed {
		return
	}
	s.relayout()
	s.SetValues(nil, nil)
}

// Value 当前值文本：单值模式 "<v>"，range 模式 "<start>,<end>"
func (s *Slider) Value() string {
	return s.value
}

// SetDisabled 切换禁用状态
func (s *Slider) SetDisabled(disabled bool) {
	s.disabled = disabled
}

// Disabled 是否禁用
func (s *Slider) Disabled() bool {
	return s.disabled
}

// Destroy 移除视图、取消事件订阅，并恢复宿主元素原来的显示状态
func (s *Slider) Destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	s.session = Session{}
	s.sub.Cancel()
	s.element.SetDisplay(s.hostDisplay)
	s.view.Remove()
}

// Destroyed 是否已销毁
func (s *Slider) Destroyed() bool {
	return s.destroyed
}

// Config 返回构造时的配置
func (s *Slider) Config() Config {
	return s.conf
}

// Sequence 返回取值序列
func (s *Slider) Sequence() Sequence {
	return s.values
}

// State 返回当前下标
func (s *Slider) State() ValueState {
	return s.state
}

// Metrics 返回当前比例尺
func (s *Slider) Metrics() ScaleMetrics {
	return s.metrics
}

// Geometry 返回最近一次测量的几何尺寸
func (s *Slider) Geometry() Geometry {
	return s.geom
}

// Visuals 返回派生的显示数据
func (s *Slider) Visuals() Visuals {
	return s.visuals
}

// Marks 返回刻度列表（Scale 关闭时为空）
func (s *Slider) Marks() []Mark {
	return s.marks
}

// Element 返回宿主元素
func (s *Slider) Element() Element {
	return s.element
}

func fail(err error) error {
	log.Printf("[RangeSlider] %v", err)
	return err
}
