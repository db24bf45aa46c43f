package slider

import "errors"

// 配置错误。New 在遇到这些错误时只记录日志并返回错误，不会 panic，
// 调用方可以用 errors.Is 判断具体原因。
var (
	// ErrNoTarget 找不到宿主输入元素
	ErrNoTarget = errors.New("cannot find target element")
	// ErrMissingBounds values 使用 min/max 形式但缺少 min 或 max
	ErrMissingBounds = errors.New("missing min or max value")
	// ErrMissingStep 由 min/max 展开取值序列时没有有效的 step（会回退为 [min, max]）
	ErrMissingStep = errors.New("no step defined")
	// ErrTooFewValues 取值序列少于两个元素
	ErrTooFewValues = errors.New("value sequence needs at least two items")
	// ErrNoDocument 未提供宿主文档
	ErrNoDocument = errors.New("no document")
)
