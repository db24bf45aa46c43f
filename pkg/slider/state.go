package slider

import "math"

// ValueState 当前选择的下标
//
// End 始终在 [0, len-1] 内；range 模式下 Start <= End，冲突时总是把 Start 拉低到 End。
type ValueState struct {
	Start int
	End   int
}

// Bar 填充条（相对轨道起点的偏移和长度）
type Bar struct {
	Offset float64
	Size   float64
}

// Visuals 由 ValueState 和 ScaleMetrics 派生的显示数据
type Visuals struct {
	LowOffset  float64 // 低位手柄偏移（单值模式下即唯一的手柄）
	HighOffset float64 // 高位手柄偏移（仅 range 模式）
	Bar        Bar

	TipLow  string // 低位手柄提示文字（Tooltip 关闭时为空）
	TipHigh string // 高位手柄提示文字（仅 range 模式）
}

// SetValues 以取值（而不是下标）设置当前选择
//
// nil 表示不修改该端；不在序列中的取值被忽略。
// range 模式下 start 修改 Start；单值模式下 start 修改唯一的活动下标 End。
// 之后重新计算显示数据、写回宿主元素并调用 OnChange。
func (s *Slider) SetValues(start, end any) {
	active := &s.state.End
	if s.conf.Range {
		active = &s.state.Start
	}

	if start != nil {
		if i := s.values.IndexOf(start); i > -1 {
			*active = i
		}
	}

	if end != nil {
		if i := s.values.IndexOf(end); i > -1 {
			s.state.End = i
		}
	}

	s.apply()
}

// setIndex 拖拽或点击产生的下标更新
func (s *Slider) setIndex(h Handle, index int) {
	if s.conf.Range && h == HandleLow {
		s.state.Start = index
	} else {
		s.state.End = index
	}
	s.apply()
}

// apply 校正下标、派生显示数据并通知回调
func (s *Slider) apply() {
	n := s.values.Len()

	if s.conf.Range && s.state.Start > s.state.End {
		s.state.Start = s.state.End
	}
	if s.state.End > n-1 {
		s.state.End = n - 1
	}
	if s.state.End < 0 {
		s.state.End = 0
	}
	if s.state.Start < 0 {
		s.state.Start = 0
	}

	v := Visuals{}
	if s.conf.Range {
		v.LowOffset = s.metrics.Offset(s.state.Start)
		v.HighOffset = s.metrics.Offset(s.state.End)
		s.value = s.values.Format(s.state.Start) + "," + s.values.Format(s.state.End)
		if s.conf.Tooltip {
			v.TipLow = s.values.Format(s.state.Start)
			v.TipHigh = s.values.Format(s.state.End)
		}
	} else {
		v.LowOffset = s.metrics.Offset(s.state.End)
		s.value = s.values.Format(s.state.End)
		if s.conf.Tooltip {
			v.TipLow = s.values.Format(s.state.End)
		}
	}
	v.Bar = barExtent(s.state.End, n, s.metrics.Step)
	s.visuals = v

	s.element.SetValue(s.value)

	if s.conf.OnChange != nil {
		s.conf.OnChange(s.value)
	}
}

// barExtent 填充条从序列中点向 end 所在一侧延伸
//
// size = (n/2 - end) * step，长度取绝对值；size > 0 时从 end 处开始，否则从中点开始。
// n 为奇数时中点落在两个刻度之间，这是既有的显示效果，保持不变。
func barExtent(end, n int, step float64) Bar {
	mid := float64(n) / 2.0
	size := (mid - float64(end)) * step
	if size > 0 {
		return Bar{Offset: float64(end) * step, Size: size}
	}
	return Bar{Offset: mid * step, Size: math.Abs(size)}
}
