package input

import "testing"

func TestBusDispatchOrder(t *testing.T) {
	bus := NewBus()
	var got []string

	bus.Subscribe(func(e Event) { got = append(got, "a:"+e.Type.String()) })
	bus.Subscribe(func(e Event) { got = append(got, "b:"+e.Type.String()) })

	bus.Dispatch(Event{Type: EventMouseDown})
	bus.Dispatch(Event{Type: EventMouseUp})

	want := []string{"a:mousedown", "b:mousedown", "a:mouseup", "b:mouseup"}
	if len(got) != len(want) {
		t.Fatalf("Expected %d deliveries, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("delivery %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBusCancel(t *testing.T) {
	bus := NewBus()
	count := 0
	sub := bus.Subscribe(func(Event) { count++ })

	bus.Dispatch(Event{Type: EventMouseMove})
	sub.Cancel()
	sub.Cancel()
	bus.Dispatch(Event{Type: EventMouseMove})

	if count != 1 {
		t.Errorf("Expected 1 delivery before cancel, got %d", count)
	}
	if bus.Len() != 0 {
		t.Errorf("Expected no subscribers after cancel, got %d", bus.Len())
	}
}

func TestBusCancelDuringDispatch(t *testing.T) {
	bus := NewBus()
	var second *Subscription
	secondCalls := 0

	bus.Subscribe(func(Event) { second.Cancel() })
	second = bus.Subscribe(func(Event) { secondCalls++ })

	bus.Dispatch(Event{Type: EventClick})

	if secondCalls != 0 {
		t.Errorf("Canceled listener should not receive the in-flight event, got %d calls", secondCalls)
	}
}

func TestBusSubscribeDuringDispatch(t *testing.T) {
	bus := NewBus()
	lateCalls := 0
	subscribed := false

	bus.Subscribe(func(Event) {
		if !subscribed {
			subscribed = true
			bus.Subscribe(func(Event) { lateCalls++ })
		}
	})

	bus.Dispatch(Event{Type: EventResize})
	if lateCalls != 0 {
		t.Errorf("Listener added during dispatch should wait for the next event, got %d calls", lateCalls)
	}

	bus.Dispatch(Event{Type: EventResize})
	if lateCalls != 1 {
		t.Errorf("Expected 1 call on the next event, got %d", lateCalls)
	}
}

func TestEventFindTouch(t *testing.T) {
	e := Event{
		Type: EventTouchMove,
		ChangedTouches: []Touch{
			{ID: 3, X: 10, Y: 20},
			{ID: 7, X: 30, Y: 40},
		},
	}

	touch, ok := e.FindTouch(7)
	if !ok || touch.X != 30 || touch.Y != 40 {
		t.Errorf("FindTouch(7) = %+v, %v", touch, ok)
	}
	if _, ok := e.FindTouch(1); ok {
		t.Error("FindTouch(1) should not match")
	}
}

func TestEventTypeIsTouch(t *testing.T) {
	tests := []struct {
		typ  EventType
		want bool
	}{
		{EventMouseDown, false},
		{EventMouseMove, false},
		{EventMouseUp, false},
		{EventTouchStart, true},
		{EventTouchMove, true},
		{EventTouchEnd, true},
		{EventTouchCancel, true},
		{EventClick, false},
		{EventResize, false},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			if got := tt.typ.IsTouch(); got != tt.want {
				t.Errorf("IsTouch() = %v, want %v", got, tt.want)
			}
		})
	}
}
