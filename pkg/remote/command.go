package remote

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/decker502/rslider/pkg/slider"
)

// 客户端命令类型
const (
	CommandSetValues   = "set_values"
	CommandSetDisabled = "set_disabled"
)

// ErrUnknownCommand 无法识别的命令类型
var ErrUnknownCommand = errors.New("unknown command")

// Command 客户端发来的设置命令
//
// 文本帧格式：
//
//	{"type": "set_values", "data": {"id": "volume", "start": 20, "end": 80}}
//	{"type": "set_disabled", "data": {"id": "volume", "disabled": true}}
//
// start / end 缺失或为 null 表示该侧不变。
type Command struct {
	Type     string
	ID       string
	Start    any
	End      any
	Disabled bool

	// Origin 发出命令的客户端 ID
	Origin string
}

type inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type commandData struct {
	ID       string `json:"id"`
	Start    any    `json:"start"`
	End      any    `json:"end"`
	Disabled bool   `json:"disabled"`
}

// ParseCommand 解析一条文本帧
func ParseCommand(msg []byte) (Command, error) {
	var in inbound
	if err := json.Unmarshal(msg, &in); err != nil {
		return Command{}, fmt.Errorf("decode command: %w", err)
	}

	switch in.Type {
	case CommandSetValues, CommandSetDisabled:
	default:
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, in.Type)
	}

	var data commandData
	if len(in.Data) > 0 {
		if err := json.Unmarshal(in.Data, &data); err != nil {
			return Command{}, fmt.Errorf("decode %s data: %w", in.Type, err)
		}
	}
	if data.ID == "" {
		return Command{}, fmt.Errorf("%s: id is required", in.Type)
	}

	return Command{
		Type:     in.Type,
		ID:       data.ID,
		Start:    data.Start,
		End:      data.End,
		Disabled: data.Disabled,
	}, nil
}

// Apply 在滑动条上执行命令
// 必须在滑动条所在的 goroutine 中调用
func (c Command) Apply(s *slider.Slider) {
	switch c.Type {
	case CommandSetValues:
		s.SetValues(c.Start, c.End)
	case CommandSetDisabled:
		s.SetDisabled(c.Disabled)
	}
}
