package slider

// Values 取值域配置：显式列表，或 min/max（配合 Config.Step 展开）
type Values struct {
	List []any

	Min *float64
	Max *float64
}

// List 创建显式取值列表
func List(items ...any) Values {
	if items == nil {
		items = []any{}
	}
	return Values{List: items}
}

// Bounds 创建 min/max 取值域
func Bounds(min, max float64) Values {
	return Values{Min: &min, Max: &max}
}

// IsBounds 是否为 min/max 形式
func (v Values) IsBounds() bool {
	return v.List == nil
}

// Expand 由 min/max/step 展开取值序列
//
// 结果为 min, min+step, min+2*step, ...（i < (max-min)/step），
// 若 max 不在其中则追加 max，保证上界始终可选。
// step <= 0 时返回 [min, max] 和 ErrMissingStep，调用方应继续使用该回退序列。
func Expand(min, max, step float64) (Sequence, error) {
	if step <= 0 {
		return Sequence{min, max}, ErrMissingStep
	}

	seq := Sequence{}
	n := (max - min) / step
	for i := 0; float64(i) < n; i++ {
		seq = append(seq, min+float64(i)*step)
	}

	if seq.IndexOf(max) < 0 {
		seq = append(seq, max)
	}
	return seq, nil
}
