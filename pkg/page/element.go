package page

import (
	"github.com/decker502/rslider/pkg/components"
	"github.com/decker502/rslider/pkg/ecs"
	"github.com/decker502/rslider/pkg/slider"
)

// fieldElement 把输入框实体适配为 slider.Element
type fieldElement struct {
	em     *ecs.EntityManager
	entity ecs.EntityID
}

func (e *fieldElement) field() *components.InputFieldComponent {
	f, ok := ecs.GetComponent[*components.InputFieldComponent](e.em, e.entity)
	if !ok {
		// 实体已被销毁，返回一个临时值避免空指针
		return &components.InputFieldComponent{}
	}
	return f
}

func (e *fieldElement) ID() string                { return e.field().ID }
func (e *fieldElement) Value() string             { return e.field().Value }
func (e *fieldElement) SetValue(v string)         { e.field().Value = v }
func (e *fieldElement) Display() string           { return e.field().Display }
func (e *fieldElement) SetDisplay(display string) { e.field().Display = display }

// sliderView 把滑动条实体适配为 slider.View
type sliderView struct {
	page        *Page
	entity      ecs.EntityID
	orientation slider.Orientation
}

// Geometry 从位置和滑动条组件读取当前几何尺寸
func (v *sliderView) Geometry() slider.Geometry {
	em := v.page.entityManager
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, v.entity)
	if !ok {
		return slider.Geometry{}
	}
	comp, ok := ecs.GetComponent[*components.SliderComponent](em, v.entity)
	if !ok {
		return slider.Geometry{}
	}
	return TrackGeometry(pos, comp, v.orientation)
}

// Remove 标记滑动条实体待删除
func (v *sliderView) Remove() {
	v.page.entityManager.DestroyEntity(v.entity)
}

// TrackGeometry 由组件数据计算轨道矩形和手柄尺寸
// 竖直方向：轨道宽为 TrackThickness，高为 TrackLength；水平方向相反
func TrackGeometry(pos *components.PositionComponent, comp *components.SliderComponent, o slider.Orientation) slider.Geometry {
	track := slider.Rect{X: pos.X, Y: pos.Y, W: comp.TrackThickness, H: comp.TrackLength}
	if o == slider.Horizontal {
		track.W, track.H = comp.TrackLength, comp.TrackThickness
	}
	return slider.Geometry{
		Track:        track,
		HandleWidth:  comp.HandleWidth,
		HandleHeight: comp.HandleHeight,
	}
}
