package terminal

import (
	"fmt"
	"log"
	"math"

	"github.com/decker502/rslider/pkg/config"
	"github.com/decker502/rslider/pkg/slider"
	"github.com/gdamore/tcell/v2"
)

// 页面配置中的像素坐标按固定单元尺寸换算为终端单元
const (
	CellWidth  = 8
	CellHeight = 16
)

// Callbacks 页面级回调，参数带上宿主输入框 ID
type Callbacks struct {
	OnChange func(id, value string)
	OnDrop   func(id string)
}

// Build 按页面配置在终端上创建输入框和滑动条
//
// 输入框创建失败返回错误；单个滑动条创建失败只记录日志。
func Build(screen tcell.Screen, cfg *config.PageConfig, cb Callbacks) (*Terminal, error) {
	t := New(screen)

	for _, in := range cfg.Inputs {
		col, row := toCells(in.X, CellWidth), toCells(in.Y, CellHeight)
		width := toCells(in.Width, CellWidth)
		if width < 1 {
			width = 1
		}
		if err := t.AddInputField(in.ID, col, row, width, in.Value); err != nil {
			return nil, fmt.Errorf("input %q: %w", in.ID, err)
		}
	}

	for i := range cfg.Sliders {
		sc := &cfg.Sliders[i]
		conf := sc.ToSliderConfig()

		// Width 为像素，按主轴方向的单元尺寸换算
		if conf.Width > 0 {
			unit := float64(CellHeight)
			if conf.Orientation == slider.Horizontal {
				unit = CellWidth
			}
			conf.Width = math.Max(1, math.Round(conf.Width/unit))
		}

		id := sc.Target
		if len(id) > 0 && id[0] == '#' {
			id = id[1:]
		}
		if cb.OnChange != nil {
			conf.OnChange = func(value string) { cb.OnChange(id, value) }
		}
		if cb.OnDrop != nil {
			conf.OnDrop = func() { cb.OnDrop(id) }
		}

		if _, err := t.CreateSlider(conf, sc.LengthRatio); err != nil {
			log.Printf("[Terminal] Warning: slider on %q not created: %v", sc.Target, err)
		}
	}
	return t, nil
}

func toCells(px float64, unit int) int {
	return int(math.Round(px / float64(unit)))
}
