package terminal

import (
	"log"

	"github.com/decker502/rslider/pkg/input"
	"github.com/gdamore/tcell/v2"
)

// HandleEvent 把 tcell 事件翻译为文档级事件；返回 true 表示用户要求退出
//
// tcell 只报告当前的按键掩码，这里根据上一次的状态推导出按下、移动和抬起：
// 左键从无到有为 mousedown，保持按下时位置变化为 mousemove，
// 左键从有到无为 mouseup，抬起位置与按下位置在同一单元时再派发 click。
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventMouse:
		t.handleMouse(e)

	case *tcell.EventResize:
		w, h := e.Size()
		t.screen.Sync()
		t.Resize(w, h)
		log.Printf("[Terminal] Resized to %dx%d", w, h)

	case *tcell.EventKey:
		return t.handleKey(e)

	case *tcell.EventInterrupt:
		if t.remote != nil {
			if n := t.remote.ApplyPending(t.Slider); n > 0 {
				log.Printf("[Terminal] Applied %d remote commands", n)
			}
		}
	}
	return false
}

func (t *Terminal) handleMouse(e *tcell.EventMouse) {
	col, row := e.Position()
	x, y := cellCenter(col, row)
	down := e.Buttons()&tcell.Button1 != 0

	switch {
	case down && !t.buttonDown:
		t.buttonDown = true
		t.pressCol, t.pressRow = col, row
		t.bus.Dispatch(input.Event{Type: input.EventMouseDown, X: x, Y: y})

	case !down && t.buttonDown:
		t.buttonDown = false
		t.bus.Dispatch(input.Event{Type: input.EventMouseUp, X: x, Y: y})
		if col == t.pressCol && row == t.pressRow {
			t.bus.Dispatch(input.Event{Type: input.EventClick, X: x, Y: y})
		}

	case col != t.lastCol || row != t.lastRow:
		t.bus.Dispatch(input.Event{Type: input.EventMouseMove, X: x, Y: y})
	}
	t.lastCol, t.lastRow = col, row
}

func (t *Terminal) handleKey(e *tcell.EventKey) bool {
	switch e.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		switch e.Rune() {
		case 'q', 'Q':
			return true
		case 'd', 'D':
			t.disabledAll = !t.disabledAll
			for _, s := range t.Sliders() {
				s.SetDisabled(t.disabledAll)
				if t.remote != nil {
					t.remote.PublishDisabled(s.Element().ID(), t.disabledAll)
				}
			}
			log.Printf("[Terminal] Sliders disabled: %v", t.disabledAll)
		}
	}
	return false
}

// cellCenter 单元中心坐标
func cellCenter(col, row int) (float64, float64) {
	return float64(col) + 0.5, float64(row) + 0.5
}
