// Package page 在实体管理器之上实现 slider.Document
//
// Page 相当于一个网页：
//   - 输入框（InputFieldComponent 实体）是滑动条的宿主元素
//   - 滑动条挂载时在宿主元素下方创建一个 SliderComponent 实体
//   - 页面持有唯一的文档级事件总线，所有滑动条共享
package page

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/rslider/pkg/components"
	"github.com/decker502/rslider/pkg/ecs"
	"github.com/decker502/rslider/pkg/input"
	"github.com/decker502/rslider/pkg/slider"
)

// ErrForeignElement 元素不属于本页面
var ErrForeignElement = errors.New("element does not belong to this page")

// ErrDuplicateID 元素 ID 重复
var ErrDuplicateID = errors.New("duplicate element id")

// SliderLayout 滑动条的布局参数（配置文件中按滑动条指定）
type SliderLayout struct {
	// LengthRatio > 0 时轨道长度随窗口尺寸变化
	LengthRatio float64
}

// Page 页面
type Page struct {
	entityManager *ecs.EntityManager
	bus           *input.Bus
	style         Style

	fields  map[string]ecs.EntityID   // 元素 ID -> 输入框实体
	sliders map[string]*slider.Slider // 元素 ID -> 挂载在其上的滑动条
	order   []string                  // 输入框按添加顺序

	// 正在构造的滑动条的布局，Mount 时使用
	pendingLayout SliderLayout

	width, height int
}

// New 创建页面
func New(em *ecs.EntityManager, style Style) *Page {
	return &Page{
		entityManager: em,
		bus:           input.NewBus(),
		style:         style,
		fields:        make(map[string]ecs.EntityID),
		sliders:       make(map[string]*slider.Slider),
	}
}

// EntityManager 返回页面使用的实体管理器
func (p *Page) EntityManager() *ecs.EntityManager {
	return p.entityManager
}

// Events 实现 slider.Document
func (p *Page) Events() *input.Bus {
	return p.bus
}

// AddInputField 在页面上添加一个输入框
func (p *Page) AddInputField(id string, x, y, width, height float64) (ecs.EntityID, error) {
	if _, exists := p.fields[id]; exists {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}

	entity := p.entityManager.CreateEntity()
	p.entityManager.AddComponent(entity, &components.PositionComponent{X: x, Y: y})
	p.entityManager.AddComponent(entity, &components.InputFieldComponent{
		ID:      id,
		Display: "block",
		Width:   width,
		Height:  height,
	})
	p.fields[id] = entity
	p.order = append(p.order, id)
	return entity, nil
}

// FieldIDs 按添加顺序返回所有输入框 ID
func (p *Page) FieldIDs() []string {
	return append([]string(nil), p.order...)
}

// ElementByID 实现 slider.Document
func (p *Page) ElementByID(id string) (slider.Element, bool) {
	entity, ok := p.fields[id]
	if !ok || !p.entityManager.Exists(entity) {
		return nil, false
	}
	return &fieldElement{em: p.entityManager, entity: entity}, true
}

// CreateSlider 按配置和布局在页面上创建滑动条
func (p *Page) CreateSlider(conf slider.Config, layout SliderLayout) (*slider.Slider, error) {
	p.pendingLayout = layout
	defer func() { p.pendingLayout = SliderLayout{} }()

	s, err := slider.New(p, conf)
	if err != nil {
		return nil, err
	}

	p.sliders[s.Element().ID()] = s
	log.Printf("[Page] Slider mounted on %q (value=%s)", s.Element().ID(), s.Value())
	return s, nil
}

// Mount 实现 slider.Document：在宿主输入框下方创建滑动条实体
func (p *Page) Mount(target slider.Element, s *slider.Slider) (slider.View, error) {
	field, ok := target.(*fieldElement)
	if !ok || field.em != p.entityManager {
		return nil, ErrForeignElement
	}

	hostPos, ok := ecs.GetComponent[*components.PositionComponent](p.entityManager, field.entity)
	if !ok {
		return nil, fmt.Errorf("host %q has no position", target.ID())
	}
	hostField, _ := ecs.GetComponent[*components.InputFieldComponent](p.entityManager, field.entity)

	conf := s.Config()
	length := p.style.TrackLength
	if conf.Width > 0 {
		length = conf.Width
	}

	entity := p.entityManager.CreateEntity()
	p.entityManager.AddComponent(entity, &components.PositionComponent{
		X: hostPos.X,
		Y: hostPos.Y + hostField.Height + p.style.MountGap,
	})
	p.entityManager.AddComponent(entity, &components.SliderComponent{
		Slider:         s,
		HostEntity:     field.entity,
		TrackLength:    length,
		TrackThickness: p.style.TrackThickness,
		HandleWidth:    p.style.handleWidth(conf.Orientation),
		HandleHeight:   p.style.handleHeight(conf.Orientation),
		TrackColor:     p.style.TrackColor,
		BarColor:       p.style.BarColor,
		HandleColor:    p.style.HandleColor,
		ActiveColor:    p.style.ActiveColor,
		DisabledColor:  p.style.DisabledColor,
		MarkColor:      p.style.MarkColor,
	})

	if p.pendingLayout.LengthRatio > 0 && conf.Width <= 0 {
		p.entityManager.AddComponent(entity, &components.SliderLayoutComponent{
			LengthRatio: p.pendingLayout.LengthRatio,
		})
		p.applyLayout(entity, conf.Orientation)
	}

	return &sliderView{page: p, entity: entity, orientation: conf.Orientation}, nil
}

// Slider 返回挂载在指定元素上的滑动条
func (p *Page) Slider(id string) (*slider.Slider, bool) {
	s, ok := p.sliders[id]
	if !ok || s.Destroyed() {
		return nil, false
	}
	return s, true
}

// Sliders 按输入框顺序返回所有仍然挂载的滑动条
func (p *Page) Sliders() []*slider.Slider {
	var out []*slider.Slider
	for _, id := range p.order {
		if s, ok := p.Slider(id); ok {
			out = append(out, s)
		}
	}
	return out
}

// DestroySlider 销毁挂载在指定元素上的滑动条，宿主输入框恢复显示
func (p *Page) DestroySlider(id string) bool {
	s, ok := p.sliders[id]
	if !ok {
		return false
	}
	s.Destroy()
	delete(p.sliders, id)
	log.Printf("[Page] Slider on %q destroyed", id)
	return true
}

// Resize 窗口尺寸变化：更新随窗口变化的轨道长度，并向所有滑动条广播 resize 事件
func (p *Page) Resize(width, height int) {
	if width == p.width && height == p.height {
		return
	}
	p.width, p.height = width, height

	for _, entity := range ecs.GetEntitiesWith2[*components.SliderComponent, *components.SliderLayoutComponent](p.entityManager) {
		comp, _ := ecs.GetComponent[*components.SliderComponent](p.entityManager, entity)
		if comp.Slider == nil {
			continue
		}
		p.applyLayout(entity, comp.Slider.Config().Orientation)
	}

	p.bus.Dispatch(input.Event{Type: input.EventResize, Width: width, Height: height})
}

// Size 最近一次 Resize 的窗口尺寸
func (p *Page) Size() (int, int) {
	return p.width, p.height
}

// Update 每帧清理已移除的实体
func (p *Page) Update() {
	p.entityManager.RemoveMarkedEntities()
}

// applyLayout 按窗口尺寸计算轨道长度
func (p *Page) applyLayout(entity ecs.EntityID, o slider.Orientation) {
	layout, ok := ecs.GetComponent[*components.SliderLayoutComponent](p.entityManager, entity)
	if !ok || layout.LengthRatio <= 0 {
		return
	}
	comp, _ := ecs.GetComponent[*components.SliderComponent](p.entityManager, entity)

	extent := p.height
	if o == slider.Horizontal {
		extent = p.width
	}
	if extent <= 0 {
		// 还没有收到窗口尺寸，保持当前长度
		return
	}
	comp.TrackLength = float64(extent) * layout.LengthRatio
}
