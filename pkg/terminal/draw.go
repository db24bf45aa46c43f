package terminal

import (
	"math"

	"github.com/decker502/rslider/pkg/slider"
	"github.com/gdamore/tcell/v2"
)

var (
	styleTrack    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBar      = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleMark     = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleHandle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleActive   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleDisabled = tcell.StyleDefault.Foreground(tcell.ColorDimGray)
	styleTip      = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleField    = tcell.StyleDefault.Reverse(true)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// Run 事件循环：阻塞直到用户退出或屏幕关闭
func (t *Terminal) Run() error {
	t.Draw()
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if t.HandleEvent(ev) {
			return nil
		}
		t.Draw()
	}
}

// Draw 重绘整个页面
func (t *Terminal) Draw() {
	t.screen.Clear()

	for _, f := range t.fields {
		if f.display == "none" {
			continue
		}
		t.drawField(f)
	}
	for _, m := range t.mounts {
		if m.slider.Destroyed() {
			continue
		}
		t.drawSlider(m)
	}

	_, h := t.screen.Size()
	t.drawText(0, h-1, t.StatusLine()+"   d: disable  q: quit", styleStatus)
	t.screen.Show()
}

func (t *Terminal) drawField(f *field) {
	text := []rune(f.value)
	for i := 0; i < f.width; i++ {
		r := ' '
		if i < len(text) {
			r = text[i]
		}
		t.screen.SetContent(f.col+i, f.row, r, nil, styleField)
	}
}

func (t *Terminal) drawSlider(m *mount) {
	s := m.slider
	horizontal := s.Config().Orientation == slider.Horizontal
	metrics := s.Metrics()

	// 主轴位置 p 所在的单元
	cell := func(p int) (int, int) {
		if horizontal {
			return m.col + p, m.row
		}
		return m.col, m.row + p
	}
	// 主轴坐标所在的单元偏移
	along := func(coord float64) int {
		return int(math.Floor(coord - metrics.TrackOrigin + 0.5))
	}

	trackRune, barRune := '│', '┃'
	if horizontal {
		trackRune, barRune = '─', '━'
	}
	for p := 0; p <= m.length; p++ {
		x, y := cell(p)
		t.screen.SetContent(x, y, trackRune, nil, styleTrack)
	}

	for _, mark := range s.Marks() {
		p := along(metrics.TrackOrigin + mark.Offset)
		x, y := cell(p)
		if horizontal {
			t.screen.SetContent(x, y, '┬', nil, styleMark)
			t.drawText(x, y+1, mark.Label, styleMark)
		} else {
			t.screen.SetContent(x, y, '├', nil, styleMark)
			t.drawText(x+2, y, mark.Label, styleMark)
		}
	}

	bar := s.Visuals().Bar
	from := along(metrics.TrackOrigin + bar.Offset)
	to := along(metrics.TrackOrigin + bar.Offset + bar.Size)
	for p := from; p < to; p++ {
		x, y := cell(p)
		t.screen.SetContent(x, y, barRune, nil, styleBar)
	}

	session := s.Session()
	visuals := s.Visuals()
	handles := []slider.Handle{slider.HandleLow}
	if s.Config().Range {
		handles = append(handles, slider.HandleHigh)
	}
	for _, h := range handles {
		style := styleHandle
		switch {
		case s.Disabled():
			style = styleDisabled
		case session.Active() && session.Handle == h:
			style = styleActive
		}

		r := s.HandleRect(h)
		x0, x1 := coveredCells(r.X, r.W)
		y0, y1 := coveredCells(r.Y, r.H)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				t.screen.SetContent(x, y, '█', nil, style)
			}
		}

		tip := visuals.TipLow
		if h == slider.HandleHigh {
			tip = visuals.TipHigh
		}
		if tip == "" {
			continue
		}
		if horizontal {
			t.drawText(x0, y0-1, tip, styleTip)
		} else {
			t.drawText(x0-1-len([]rune(tip)), y0, tip, styleTip)
		}
	}
}

// coveredCells 中心落在 [start, start+size) 内的单元范围
func coveredCells(start, size float64) (int, int) {
	first := int(math.Ceil(start - 0.5))
	last := int(math.Ceil(start+size-0.5)) - 1
	return first, last
}

func (t *Terminal) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}
