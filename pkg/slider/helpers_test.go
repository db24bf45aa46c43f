package slider

import (
	"errors"

	"github.com/decker502/rslider/pkg/input"
)

// fakeElement 测试用宿主元素
type fakeElement struct {
	id      string
	value   string
	display string
	writes  int
}

func (e *fakeElement) ID() string                { return e.id }
func (e *fakeElement) Value() string             { return e.value }
func (e *fakeElement) SetValue(v string)         { e.value = v; e.writes++ }
func (e *fakeElement) Display() string           { return e.display }
func (e *fakeElement) SetDisplay(display string) { e.display = display }

// fakeView 测试用视图，几何尺寸可在测试中修改
type fakeView struct {
	geom    Geometry
	removed bool
}

func (v *fakeView) Geometry() Geometry { return v.geom }
func (v *fakeView) Remove()            { v.removed = true }

// fakeDocument 测试用宿主文档
type fakeDocument struct {
	elements map[string]*fakeElement
	bus      *input.Bus
	views    []*fakeView
	geom     Geometry
	mountErr error
}

func newFakeDocument() *fakeDocument {
	return &fakeDocument{
		elements: map[string]*fakeElement{},
		bus:      input.NewBus(),
		geom:     testGeometry(),
	}
}

func (d *fakeDocument) addElement(id string) *fakeElement {
	el := &fakeElement{id: id, display: "block"}
	d.elements[id] = el
	return el
}

func (d *fakeDocument) ElementByID(id string) (Element, bool) {
	el, ok := d.elements[id]
	if !ok {
		return nil, false
	}
	return el, true
}

func (d *fakeDocument) Events() *input.Bus {
	return d.bus
}

func (d *fakeDocument) Mount(target Element, s *Slider) (View, error) {
	if d.mountErr != nil {
		return nil, d.mountErr
	}
	v := &fakeView{geom: d.geom}
	d.views = append(d.views, v)
	return v, nil
}

var errMountRefused = errors.New("mount refused")

// testGeometry 竖直轨道：起点 y=100，长度 500，手柄 20x20
//
// 序列长度为 6 时 step = 100：
//   - 手柄 i 的矩形 y ∈ [90+100i, 110+100i]
//   - 拖拽到下标 k 的坐标 y = 110 + 100k
//   - 点击下标 k 的坐标 y = 100 + 100k
func testGeometry() Geometry {
	return Geometry{
		Track:        Rect{X: 0, Y: 100, W: 10, H: 500},
		HandleWidth:  20,
		HandleHeight: 20,
	}
}

func sixValues() Values {
	return List(0, 1, 2, 3, 4, 5)
}

// recorder 记录回调调用顺序
type recorder struct {
	events []string
}

func (r *recorder) onChange(v string) { r.events = append(r.events, "change:"+v) }
func (r *recorder) onDrop()           { r.events = append(r.events, "drop") }

func (r *recorder) count(prefix string) int {
	n := 0
	for _, e := range r.events {
		if len(e) >= len(prefix) && e[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func (r *recorder) reset() { r.events = nil }

func mouseDown(x, y float64) input.Event { return input.Event{Type: input.EventMouseDown, X: x, Y: y} }
func mouseMove(x, y float64) input.Event { return input.Event{Type: input.EventMouseMove, X: x, Y: y} }
func mouseUp(x, y float64) input.Event   { return input.Event{Type: input.EventMouseUp, X: x, Y: y} }
func click(x, y float64) input.Event     { return input.Event{Type: input.EventClick, X: x, Y: y} }

func touchEvent(typ input.EventType, touches ...input.Touch) input.Event {
	return input.Event{Type: typ, ChangedTouches: touches}
}

// newTestSlider 在 doc 中创建宿主元素并构造滑动条
func newTestSlider(doc *fakeDocument, id string, conf Config) (*Slider, *fakeElement) {
	el := doc.addElement(id)
	conf.TargetID = id
	s, err := New(doc, conf)
	if err != nil {
		panic(err)
	}
	return s, el
}
