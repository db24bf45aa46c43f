package page

import (
	"errors"
	"io"
	"log"
	"os"
	"testing"

	"github.com/decker502/rslider/pkg/components"
	"github.com/decker502/rslider/pkg/ecs"
	"github.com/decker502/rslider/pkg/input"
	"github.com/decker502/rslider/pkg/slider"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// newTestPage 创建带一个输入框的页面
func newTestPage(t *testing.T) *Page {
	t.Helper()
	p := New(ecs.NewEntityManager(), DefaultStyle())
	if _, err := p.AddInputField("volume", 40, 20, 120, 24); err != nil {
		t.Fatalf("AddInputField() error = %v", err)
	}
	return p
}

func TestAddInputFieldDuplicate(t *testing.T) {
	p := newTestPage(t)
	if _, err := p.AddInputField("volume", 0, 0, 10, 10); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("AddInputField() error = %v, want ErrDuplicateID", err)
	}
}

func TestElementByID(t *testing.T) {
	p := newTestPage(t)

	el, ok := p.ElementByID("volume")
	if !ok {
		t.Fatal("ElementByID(volume) not found")
	}
	el.SetValue("42")
	if el.Value() != "42" || el.ID() != "volume" {
		t.Errorf("element = (%q, %q), want (volume, 42)", el.ID(), el.Value())
	}

	if _, ok := p.ElementByID("missing"); ok {
		t.Error("ElementByID(missing) should not be found")
	}
}

func TestCreateSliderMountsBelowHost(t *testing.T) {
	p := newTestPage(t)
	conf := slider.DefaultConfig()
	conf.TargetID = "#volume"
	conf.Values = slider.Bounds(0, 100)
	conf.Step = 25
	conf.Set = []any{50}

	s, err := p.CreateSlider(conf, SliderLayout{})
	if err != nil {
		t.Fatalf("CreateSlider() error = %v", err)
	}

	el, _ := p.ElementByID("volume")
	if el.Display() != "none" {
		t.Errorf("host display = %q, want none", el.Display())
	}
	if el.Value() != "50" {
		t.Errorf("host value = %q, want 50", el.Value())
	}

	g := s.Geometry()
	style := DefaultStyle()
	want := slider.Rect{X: 40, Y: 20 + 24 + style.MountGap, W: style.TrackThickness, H: style.TrackLength}
	if g.Track != want {
		t.Errorf("Track = %+v, want %+v", g.Track, want)
	}
	if g.HandleWidth != style.HandleLong || g.HandleHeight != style.HandleShort {
		t.Errorf("handle = %vx%v, want %vx%v", g.HandleWidth, g.HandleHeight, style.HandleLong, style.HandleShort)
	}

	if got, ok := p.Slider("volume"); !ok || got != s {
		t.Error("Slider(volume) should return the mounted slider")
	}
}

func TestCreateSliderWidthOverride(t *testing.T) {
	p := newTestPage(t)
	conf := slider.DefaultConfig()
	conf.TargetID = "volume"
	conf.Values = slider.List(1, 2, 3)
	conf.Width = 120
	conf.Orientation = slider.Horizontal

	s, err := p.CreateSlider(conf, SliderLayout{LengthRatio: 0.5})
	if err != nil {
		t.Fatalf("CreateSlider() error = %v", err)
	}
	if g := s.Geometry(); g.Track.W != 120 {
		t.Errorf("Track.W = %v, want 120", g.Track.W)
	}

	// Width 覆盖时不随窗口变化
	p.Resize(1000, 800)
	if m := s.Metrics(); m.TrackExtent != 120 {
		t.Errorf("TrackExtent after resize = %v, want 120", m.TrackExtent)
	}
}

func TestCreateSliderFailureKeepsHost(t *testing.T) {
	p := newTestPage(t)
	conf := slider.DefaultConfig()
	conf.TargetID = "volume"
	conf.Values = slider.List(1)

	if _, err := p.CreateSlider(conf, SliderLayout{}); !errors.Is(err, slider.ErrTooFewValues) {
		t.Fatalf("CreateSlider() error = %v, want ErrTooFewValues", err)
	}
	el, _ := p.ElementByID("volume")
	if el.Display() != "block" {
		t.Errorf("host display = %q, want block", el.Display())
	}
	if n := len(ecs.GetEntitiesWith1[*components.SliderComponent](p.EntityManager())); n != 0 {
		t.Errorf("slider entities = %d, want 0", n)
	}
}

func TestMountForeignElement(t *testing.T) {
	p := newTestPage(t)
	other := newTestPage(t)
	el, _ := other.ElementByID("volume")

	conf := slider.DefaultConfig()
	conf.Target = el
	conf.Values = slider.List(1, 2)
	if _, err := p.CreateSlider(conf, SliderLayout{}); !errors.Is(err, ErrForeignElement) {
		t.Errorf("CreateSlider() error = %v, want ErrForeignElement", err)
	}
}

func TestResizeRecomputesLength(t *testing.T) {
	p := newTestPage(t)
	conf := slider.DefaultConfig()
	conf.TargetID = "volume"
	conf.Values = slider.List(0, 1, 2, 3, 4)

	s, err := p.CreateSlider(conf, SliderLayout{LengthRatio: 0.5})
	if err != nil {
		t.Fatalf("CreateSlider() error = %v", err)
	}

	var resized []input.Event
	p.Events().Subscribe(func(e input.Event) {
		if e.Type == input.EventResize {
			resized = append(resized, e)
		}
	})

	p.Resize(640, 800)
	if m := s.Metrics(); m.TrackExtent != 400 || m.Step != 100 {
		t.Errorf("Metrics() = %+v, want extent 400 step 100", m)
	}

	// 尺寸未变化不重复广播
	p.Resize(640, 800)
	if len(resized) != 1 {
		t.Errorf("resize events = %d, want 1", len(resized))
	}
	if w, h := p.Size(); w != 640 || h != 800 {
		t.Errorf("Size() = (%d, %d), want (640, 800)", w, h)
	}
}

func TestDestroySlider(t *testing.T) {
	p := newTestPage(t)
	conf := slider.DefaultConfig()
	conf.TargetID = "volume"
	conf.Values = slider.List("a", "b")

	if _, err := p.CreateSlider(conf, SliderLayout{}); err != nil {
		t.Fatalf("CreateSlider() error = %v", err)
	}
	if !p.DestroySlider("volume") {
		t.Fatal("DestroySlider() = false")
	}
	if p.DestroySlider("volume") {
		t.Error("second DestroySlider() should return false")
	}

	p.Update()
	if n := len(ecs.GetEntitiesWith1[*components.SliderComponent](p.EntityManager())); n != 0 {
		t.Errorf("slider entities after Update = %d, want 0", n)
	}
	el, _ := p.ElementByID("volume")
	if el.Display() != "block" {
		t.Errorf("host display = %q, want block", el.Display())
	}
	if p.Events().Len() != 0 {
		t.Errorf("listeners = %d, want 0", p.Events().Len())
	}
	if _, ok := p.Slider("volume"); ok {
		t.Error("Slider(volume) should be gone")
	}
}

func TestTwoSlidersShareBus(t *testing.T) {
	p := newTestPage(t)
	if _, err := p.AddInputField("price", 300, 20, 120, 24); err != nil {
		t.Fatal(err)
	}

	for _, id := range []string{"volume", "price"} {
		conf := slider.DefaultConfig()
		conf.TargetID = id
		conf.Values = slider.List(0, 1, 2)
		if _, err := p.CreateSlider(conf, SliderLayout{}); err != nil {
			t.Fatalf("CreateSlider(%s) error = %v", id, err)
		}
	}
	if p.Events().Len() != 2 {
		t.Errorf("listeners = %d, want 2", p.Events().Len())
	}
}

func TestTouchStyleEnlargesHandles(t *testing.T) {
	p := New(ecs.NewEntityManager(), TouchStyle())
	if _, err := p.AddInputField("volume", 0, 0, 120, 24); err != nil {
		t.Fatal(err)
	}
	conf := slider.DefaultConfig()
	conf.TargetID = "volume"
	conf.Values = slider.List(1, 2, 3)
	s, err := p.CreateSlider(conf, SliderLayout{})
	if err != nil {
		t.Fatalf("CreateSlider() error = %v", err)
	}

	def := DefaultStyle()
	g := s.Geometry()
	if g.HandleWidth <= def.HandleLong || g.HandleHeight <= def.HandleShort {
		t.Errorf("touch handle = %vx%v, should exceed default %vx%v",
			g.HandleWidth, g.HandleHeight, def.HandleLong, def.HandleShort)
	}
}
