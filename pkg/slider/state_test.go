package slider

import (
	"math/rand"
	"testing"
)

func TestSetValuesRoundTrip(t *testing.T) {
	doc := newFakeDocument()
	conf := DefaultConfig()
	conf.Values = List(0, 10, 20, 30, 40)
	s, el := newTestSlider(doc, "single", conf)

	seq := s.Sequence()
	for i := 0; i < seq.Len(); i++ {
		s.SetValues(seq[i], nil)

		if s.State().End != i {
			t.Errorf("SetValues(%v): End = %d, want %d", seq[i], s.State().End, i)
		}
		if el.Value() != s.Value() {
			t.Errorf("host value %q != slider value %q", el.Value(), s.Value())
		}

		// 文本值经序列反查应回到同一个下标
		back := -1
		for j := 0; j < seq.Len(); j++ {
			if seq.Format(j) == s.Value() {
				back = j
				break
			}
		}
		if back != i {
			t.Errorf("value string %q maps back to index %d, want %d", s.Value(), back, i)
		}
	}
}

func TestSetValuesEndArgument(t *testing.T) {
	doc := newFakeDocument()
	conf := DefaultConfig()
	conf.Values = List("a", "b", "c")
	s, _ := newTestSlider(doc, "single", conf)

	s.SetValues(nil, "c")
	if s.Value() != "c" {
		t.Errorf("Value() = %q, want %q", s.Value(), "c")
	}

	// 单值模式下 start 参数同样作用于唯一的活动下标
	s.SetValues("b", nil)
	if s.Value() != "b" {
		t.Errorf("Value() = %q, want %q", s.Value(), "b")
	}
}

func TestSetValuesIgnoresUnknownValues(t *testing.T) {
	doc := newFakeDocument()
	conf := DefaultConfig()
	conf.Values = sixValues()
	conf.Range = true
	conf.Set = []any{1, 4}
	s, _ := newTestSlider(doc, "range", conf)

	s.SetValues(99, "nope")
	if got := s.State(); got != (ValueState{Start: 1, End: 4}) {
		t.Errorf("State() = %+v, want {1 4}", got)
	}
	if s.Value() != "1,4" {
		t.Errorf("Value() = %q, want %q", s.Value(), "1,4")
	}
}

func TestSetValuesRangeClampsStart(t *testing.T) {
	doc := newFakeDocument()
	conf := DefaultConfig()
	conf.Values = sixValues()
	conf.Range = true
	s, _ := newTestSlider(doc, "range", conf)

	s.SetValues(4, 2)
	if got := s.State(); got != (ValueState{Start: 2, End: 2}) {
		t.Errorf("State() = %+v, want {2 2}", got)
	}

	s.SetValues(nil, 5)
	if got := s.State(); got != (ValueState{Start: 2, End: 5}) {
		t.Errorf("State() = %+v, want {2 5}", got)
	}
}

func TestRangeInvariantUnderRandomMutations(t *testing.T) {
	doc := newFakeDocument()
	conf := DefaultConfig()
	conf.Values = sixValues()
	conf.Range = true
	s, _ := newTestSlider(doc, "range", conf)

	rng := rand.New(rand.NewSource(42))
	check := func(step int, op string) {
		st := s.State()
		if st.Start > st.End {
			t.Fatalf("step %d (%s): Start %d > End %d", step, op, st.Start, st.End)
		}
		if st.End < 0 || st.End > 5 || st.Start < 0 {
			t.Fatalf("step %d (%s): state out of range %+v", step, op, st)
		}
	}

	for i := 0; i < 500; i++ {
		switch rng.Intn(3) {
		case 0:
			var start, end any
			if rng.Intn(3) > 0 {
				start = rng.Intn(8) - 1
			}
			if rng.Intn(3) > 0 {
				end = rng.Intn(8) - 1
			}
			s.SetValues(start, end)
			check(i, "SetValues")
		case 1:
			// 从某个手柄开始拖拽到随机位置
			h := HandleLow
			if rng.Intn(2) == 0 {
				h = HandleHigh
			}
			r := s.HandleRect(h)
			s.HandleEvent(mouseDown(r.X+r.W/2, r.Y+r.H/2))
			s.HandleEvent(mouseMove(5, float64(rng.Intn(800))))
			check(i, "drag")
			s.HandleEvent(mouseUp(5, 0))
		case 2:
			s.HandleEvent(click(5, float64(100+rng.Intn(500))))
			check(i, "tap")
		}
	}
}

func TestSetValuesIdempotent(t *testing.T) {
	doc := newFakeDocument()
	conf := DefaultConfig()
	conf.Values = sixValues()
	conf.Range = true
	s, _ := newTestSlider(doc, "range", conf)

	s.SetValues(2, 3)
	firstValue, firstVisuals := s.Value(), s.Visuals()

	s.SetValues(2, 3)
	if s.Value() != firstValue {
		t.Errorf("Value() changed on repeat: %q -> %q", firstValue, s.Value())
	}
	if s.Visuals() != firstVisuals {
		t.Errorf("Visuals() changed on repeat: %+v -> %+v", firstVisuals, s.Visuals())
	}
}

func TestHandleOffsets(t *testing.T) {
	doc := newFakeDocument()

	single := DefaultConfig()
	single.Values = sixValues()
	single.Set = []any{3}
	s, _ := newTestSlider(doc, "single", single)
	if got := s.Visuals().LowOffset; got != 290 {
		t.Errorf("single LowOffset = %v, want 290", got)
	}

	ranged := DefaultConfig()
	ranged.Values = sixValues()
	ranged.Range = true
	ranged.Set = []any{1, 4}
	r, _ := newTestSlider(doc, "range", ranged)
	v := r.Visuals()
	if v.LowOffset != 90 || v.HighOffset != 390 {
		t.Errorf("range offsets = (%v, %v), want (90, 390)", v.LowOffset, v.HighOffset)
	}
}

func TestTooltipText(t *testing.T) {
	doc := newFakeDocument()

	conf := DefaultConfig()
	conf.Values = List("xs", "s", "m", "l", "xl")
	conf.Range = true
	conf.Set = []any{"s", "l"}
	s, _ := newTestSlider(doc, "sizes", conf)
	if v := s.Visuals(); v.TipLow != "s" || v.TipHigh != "l" {
		t.Errorf("tooltips = (%q, %q), want (s, l)", v.TipLow, v.TipHigh)
	}

	conf.Tooltip = false
	quiet, _ := newTestSlider(doc, "quiet", conf)
	if v := quiet.Visuals(); v.TipLow != "" || v.TipHigh != "" {
		t.Errorf("tooltips disabled but got (%q, %q)", v.TipLow, v.TipHigh)
	}
	if quiet.Value() != "s,l" {
		t.Errorf("Value() = %q, want %q", quiet.Value(), "s,l")
	}
}

// TestBarExtentSnapshot 填充条公式在若干代表性下标处的结果
func TestBarExtentSnapshot(t *testing.T) {
	tests := []struct {
		name string
		end  int
		n    int
		step float64
		want Bar
	}{
		{"偶数长度 起点", 0, 6, 100, Bar{Offset: 0, Size: 300}},
		{"偶数长度 中点前", 2, 6, 100, Bar{Offset: 200, Size: 100}},
		{"偶数长度 中点", 3, 6, 100, Bar{Offset: 300, Size: 0}},
		{"偶数长度 中点后", 4, 6, 100, Bar{Offset: 300, Size: 100}},
		{"偶数长度 末端", 5, 6, 100, Bar{Offset: 300, Size: 200}},
		{"奇数长度 中点前", 2, 5, 100, Bar{Offset: 200, Size: 50}},
		{"奇数长度 中点后", 3, 5, 100, Bar{Offset: 250, Size: 50}},
		{"奇数长度 末端", 4, 5, 100, Bar{Offset: 250, Size: 150}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := barExtent(tt.end, tt.n, tt.step); got != tt.want {
				t.Errorf("barExtent(%d, %d, %v) = %+v, want %+v", tt.end, tt.n, tt.step, got, tt.want)
			}
		})
	}
}

func TestBarFollowsEnd(t *testing.T) {
	doc := newFakeDocument()
	conf := DefaultConfig()
	conf.Values = sixValues()
	s, _ := newTestSlider(doc, "single", conf)

	s.SetValues(1, nil)
	if got := s.Visuals().Bar; got != (Bar{Offset: 100, Size: 200}) {
		t.Errorf("Bar = %+v, want {100 200}", got)
	}
	s.SetValues(5, nil)
	if got := s.Visuals().Bar; got != (Bar{Offset: 300, Size: 200}) {
		t.Errorf("Bar = %+v, want {300 200}", got)
	}
}

func TestOnChangeReceivesValueString(t *testing.T) {
	doc := newFakeDocument()
	rec := &recorder{}
	conf := DefaultConfig()
	conf.Values = sixValues()
	conf.Range = true
	conf.OnChange = rec.onChange
	s, _ := newTestSlider(doc, "range", conf)

	rec.reset()
	s.SetValues(2, 4)

	if len(rec.events) != 1 || rec.events[0] != "change:2,4" {
		t.Errorf("OnChange calls = %v, want [change:2,4]", rec.events)
	}
}
