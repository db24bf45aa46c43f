package page

import (
	"fmt"
	"log"

	"github.com/decker502/rslider/pkg/components"
	"github.com/decker502/rslider/pkg/config"
	"github.com/decker502/rslider/pkg/ecs"
)

// Callbacks 页面级回调，参数带上宿主输入框 ID
type Callbacks struct {
	OnChange func(id, value string)
	OnDrop   func(id string)
}

// Build 按页面配置创建输入框和滑动条
//
// 输入框创建失败返回错误；单个滑动条创建失败只记录日志，宿主输入框保持可见。
func Build(em *ecs.EntityManager, style Style, cfg *config.PageConfig, cb Callbacks) (*Page, error) {
	p := New(em, style)
	p.width, p.height = cfg.Window.Width, cfg.Window.Height

	for _, in := range cfg.Inputs {
		entity, err := p.AddInputField(in.ID, in.X, in.Y, in.Width, in.Height)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", in.ID, err)
		}
		if field, ok := ecs.GetComponent[*components.InputFieldComponent](em, entity); ok {
			field.Value = in.Value
		}
	}

	for i := range cfg.Sliders {
		sc := &cfg.Sliders[i]
		conf := sc.ToSliderConfig()

		id := hostID(sc.Target)
		if cb.OnChange != nil {
			conf.OnChange = func(value string) { cb.OnChange(id, value) }
		}
		if cb.OnDrop != nil {
			conf.OnDrop = func() { cb.OnDrop(id) }
		}

		if _, err := p.CreateSlider(conf, SliderLayout{LengthRatio: sc.LengthRatio}); err != nil {
			log.Printf("[Page] Warning: slider on %q not created: %v", sc.Target, err)
			continue
		}
	}

	log.Printf("[Page] Built page: %d inputs, %d sliders", len(cfg.Inputs), len(p.sliders))
	return p, nil
}

func hostID(target string) string {
	if len(target) > 0 && target[0] == '#' {
		return target[1:]
	}
	return target
}
