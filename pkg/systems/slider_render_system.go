package systems

import (
	"image/color"

	"github.com/decker502/rslider/pkg/components"
	"github.com/decker502/rslider/pkg/ecs"
	"github.com/decker502/rslider/pkg/slider"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 调试字体的字符尺寸（ebitenutil.DebugPrintAt）
const (
	debugGlyphWidth  = 6
	debugGlyphHeight = 16
)

// 刻度和文字相对轨道的间距
const (
	markLength  = 6.0
	labelMargin = 6.0
	tipMargin   = 4.0
)

// SliderRenderSystem 滑动条渲染系统
// 依次绘制轨道、刻度、填充条、手柄和手柄提示
type SliderRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewSliderRenderSystem 创建滑动条渲染系统
func NewSliderRenderSystem(em *ecs.EntityManager) *SliderRenderSystem {
	return &SliderRenderSystem{entityManager: em}
}

// Draw 渲染所有滑动条
func (s *SliderRenderSystem) Draw(screen *ebiten.Image) {
	for _, entity := range ecs.GetEntitiesWith1[*components.SliderComponent](s.entityManager) {
		comp, ok := ecs.GetComponent[*components.SliderComponent](s.entityManager, entity)
		if !ok || comp.Slider == nil || comp.Slider.Destroyed() {
			continue
		}
		s.drawSlider(screen, comp)
	}
}

func (s *SliderRenderSystem) drawSlider(screen *ebiten.Image, comp *components.SliderComponent) {
	sl := comp.Slider
	o := sl.Config().Orientation
	m := sl.Metrics()
	track := sl.TrackArea()
	g := sl.Geometry()

	// 轨道
	if o == slider.Horizontal {
		fillRect(screen, track.X, g.Track.Y, track.W, g.Track.H, comp.TrackColor)
	} else {
		fillRect(screen, g.Track.X, track.Y, g.Track.W, track.H, comp.TrackColor)
	}

	// 刻度
	for _, mark := range sl.Marks() {
		pos := m.TrackOrigin + mark.Offset
		if o == slider.Horizontal {
			y := g.Track.Y + g.Track.H + 1
			vector.StrokeLine(screen, float32(pos), float32(y), float32(pos), float32(y+markLength), 1, comp.MarkColor, false)
			if mark.Label != "" {
				lx := pos - float64(len(mark.Label)*debugGlyphWidth)/2
				ebitenutil.DebugPrintAt(screen, mark.Label, int(lx), int(y+markLength+labelMargin/2))
			}
		} else {
			x := g.Track.X + g.Track.W + 1
			vector.StrokeLine(screen, float32(x), float32(pos), float32(x+markLength), float32(pos), 1, comp.MarkColor, false)
			if mark.Label != "" {
				ebitenutil.DebugPrintAt(screen, mark.Label, int(x+markLength+labelMargin), int(pos-debugGlyphHeight/2))
			}
		}
	}

	// 填充条
	bar := sl.Visuals().Bar
	if bar.Size > 0 {
		if o == slider.Horizontal {
			fillRect(screen, m.TrackOrigin+bar.Offset, g.Track.Y, bar.Size, g.Track.H, comp.BarColor)
		} else {
			fillRect(screen, g.Track.X, m.TrackOrigin+bar.Offset, g.Track.W, bar.Size, comp.BarColor)
		}
	}

	// 手柄
	session := sl.Session()
	handles := []slider.Handle{slider.HandleLow}
	if sl.Config().Range {
		// 高位手柄后画，重叠时在上层，与命中测试一致
		handles = append(handles, slider.HandleHigh)
	}
	visuals := sl.Visuals()
	for _, h := range handles {
		r := sl.HandleRect(h)
		clr := comp.HandleColor
		switch {
		case sl.Disabled():
			clr = comp.DisabledColor
		case session.Active() && session.Handle == h:
			clr = comp.ActiveColor
		}
		fillRect(screen, r.X, r.Y, r.W, r.H, clr)
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, comp.TrackColor, false)

		tip := visuals.TipLow
		if h == slider.HandleHigh {
			tip = visuals.TipHigh
		}
		if tip == "" {
			continue
		}
		// 提示显示在手柄的另一侧，避免与刻度文字重叠
		tipWidth := float64(len(tip) * debugGlyphWidth)
		if o == slider.Horizontal {
			ebitenutil.DebugPrintAt(screen, tip, int(r.X+r.W/2-tipWidth/2), int(r.Y-debugGlyphHeight-tipMargin))
		} else {
			ebitenutil.DebugPrintAt(screen, tip, int(r.X-tipWidth-tipMargin), int(r.Y+r.H/2-debugGlyphHeight/2))
		}
	}
}

func fillRect(screen *ebiten.Image, x, y, w, h float64, clr color.Color) {
	if clr == nil || w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}
