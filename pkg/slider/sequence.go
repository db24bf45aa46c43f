package slider

import (
	"fmt"
	"reflect"
	"strconv"
)

// Sequence 有序取值序列，下标从 0 开始
//
// 数值类型统一规范化为 float64，这样 YAML 里的 3 和代码里的 3.0 视为同一个值；
// 其他可比较类型（通常是 string）原样保存。构造之后不再修改。
type Sequence []any

// NewSequence 由任意取值列表构造序列
func NewSequence(items []any) Sequence {
	seq := make(Sequence, len(items))
	for i, item := range items {
		seq[i] = Normalize(item)
	}
	return seq
}

// Len 序列长度
func (s Sequence) Len() int {
	return len(s)
}

// IndexOf 查找取值所在下标，不存在返回 -1
func (s Sequence) IndexOf(v any) int {
	if v == nil {
		return -1
	}
	v = Normalize(v)
	if !reflect.TypeOf(v).Comparable() {
		return -1
	}
	for i, item := range s {
		if item == nil || !reflect.TypeOf(item).Comparable() {
			continue
		}
		if item == v {
			return i
		}
	}
	return -1
}

// Format 返回下标 i 处取值的显示文本，越界返回空字符串
func (s Sequence) Format(i int) string {
	if i < 0 || i >= len(s) {
		return ""
	}
	return FormatValue(s[i])
}

// Normalize 将各种整数/浮点类型统一转换为 float64
func Normalize(v any) any {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case float32:
		return float64(n)
	}
	return v
}

// FormatValue 取值的文本形式：整数不带小数点，其他浮点数使用最短表示
func FormatValue(v any) string {
	switch x := Normalize(v).(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}
