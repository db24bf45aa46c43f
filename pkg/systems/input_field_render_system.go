package systems

import (
	"image/color"

	"github.com/decker502/rslider/pkg/components"
	"github.com/decker502/rslider/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	inputFieldBackground = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	inputFieldBorder     = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

// InputFieldRenderSystem 输入框渲染系统
// 只绘制可见的输入框；挂载了滑动条的输入框被隐藏
type InputFieldRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewInputFieldRenderSystem 创建输入框渲染系统
func NewInputFieldRenderSystem(em *ecs.EntityManager) *InputFieldRenderSystem {
	return &InputFieldRenderSystem{entityManager: em}
}

// Draw 渲染所有可见输入框
func (s *InputFieldRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.InputFieldComponent, *components.PositionComponent](s.entityManager)
	for _, entity := range entities {
		field, _ := ecs.GetComponent[*components.InputFieldComponent](s.entityManager, entity)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entity)
		if !field.Visible() {
			continue
		}

		x, y := float32(pos.X), float32(pos.Y)
		w, h := float32(field.Width), float32(field.Height)
		vector.DrawFilledRect(screen, x, y, w, h, inputFieldBackground, false)
		vector.StrokeRect(screen, x, y, w, h, 1, inputFieldBorder, false)
		ebitenutil.DebugPrintAt(screen, field.Value, int(pos.X)+4, int(pos.Y+field.Height/2)-debugGlyphHeight/2)
	}
}
