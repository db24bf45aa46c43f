package remote

import (
	"errors"
	"io"
	"log"
	"os"
	"testing"

	"github.com/decker502/rslider/pkg/ecs"
	"github.com/decker502/rslider/pkg/page"
	"github.com/decker502/rslider/pkg/slider"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		msg     string
		want    Command
		wantErr error
	}{
		{
			name: "设置取值",
			msg:  `{"type":"set_values","data":{"id":"volume","start":20,"end":"xl"}}`,
			want: Command{Type: CommandSetValues, ID: "volume", Start: 20.0, End: "xl"},
		},
		{
			name: "只设置一侧",
			msg:  `{"type":"set_values","data":{"id":"volume","end":3}}`,
			want: Command{Type: CommandSetValues, ID: "volume", End: 3.0},
		},
		{
			name: "禁用",
			msg:  `{"type":"set_disabled","data":{"id":"size","disabled":true}}`,
			want: Command{Type: CommandSetDisabled, ID: "size", Disabled: true},
		},
		{
			name:    "未知类型",
			msg:     `{"type":"reset","data":{"id":"volume"}}`,
			wantErr: ErrUnknownCommand,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCommand([]byte(tt.msg))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseCommand() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCommand() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseCommand() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseCommandInvalid(t *testing.T) {
	for _, msg := range []string{
		`not json`,
		`{"type":"set_values"}`,
		`{"type":"set_values","data":{"start":1}}`,
		`{"type":"set_values","data":[1,2]}`,
	} {
		if _, err := ParseCommand([]byte(msg)); err == nil {
			t.Errorf("ParseCommand(%s) should fail", msg)
		}
	}
}

// newTestSlider 在页面上创建一个取值为 0..4 的滑动条，取值变化发布到 srv
func newTestSlider(t *testing.T, srv *Server) (*page.Page, *slider.Slider) {
	t.Helper()
	p := page.New(ecs.NewEntityManager(), page.DefaultStyle())
	if _, err := p.AddInputField("level", 20, 20, 120, 24); err != nil {
		t.Fatalf("AddInputField() error = %v", err)
	}

	conf := slider.DefaultConfig()
	conf.TargetID = "level"
	conf.Values = slider.List(0, 1, 2, 3, 4)
	conf.OnChange = func(value string) { srv.PublishChange("level", value) }
	s, err := p.CreateSlider(conf, page.SliderLayout{})
	if err != nil {
		t.Fatalf("CreateSlider() error = %v", err)
	}
	return p, s
}

func TestApplyPending(t *testing.T) {
	srv := NewServer(Config{})
	p, s := newTestSlider(t, srv)

	notified := 0
	srv.SetNotify(func() { notified++ })

	srv.Submit(Command{Type: CommandSetValues, ID: "level", End: 3.0, Origin: "c1"})
	srv.Submit(Command{Type: CommandSetDisabled, ID: "level", Disabled: true})
	srv.Submit(Command{Type: CommandSetValues, ID: "missing", End: 1.0})

	if notified != 3 {
		t.Errorf("notify called %d times, want 3", notified)
	}

	if n := srv.ApplyPending(p.Slider); n != 2 {
		t.Errorf("ApplyPending() = %d, want 2", n)
	}
	if s.Value() != "3" {
		t.Errorf("Value() = %q, want 3", s.Value())
	}
	if !s.Disabled() {
		t.Error("Slider should be disabled")
	}

	snap := srv.Snapshot()
	want := SliderState{ID: "level", Value: "3", Disabled: true}
	if len(snap) != 1 || snap[0] != want {
		t.Errorf("Snapshot() = %+v, want [%+v]", snap, want)
	}

	if n := srv.ApplyPending(p.Slider); n != 0 {
		t.Errorf("ApplyPending() on empty queue = %d, want 0", n)
	}
}

func TestSubmitDropsWhenFull(t *testing.T) {
	srv := NewServer(Config{CommandBuf: 1})
	srv.Submit(Command{Type: CommandSetValues, ID: "a"})
	srv.Submit(Command{Type: CommandSetValues, ID: "b"})

	var ids []string
	srv.ApplyPending(func(id string) (*slider.Slider, bool) {
		ids = append(ids, id)
		return nil, false
	})
	if len(ids) != 1 || ids[0] != "a" {
		t.Errorf("queued commands = %v, want [a]", ids)
	}
}
