package emulator

import (
	"github.com/xtermgo/xtermcore/charset"
	"github.com/xtermgo/xtermcore/xtermproto"
)

// cmdCursorUp is CSI Ps A: move up Ps rows (default 1), stopping at the top
// margin without scrolling.
func (e *Emulator) cmdCursorUp(m *xtermproto.Machine) {
	n := intVar(m, 0, 1)
	y := e.CursorY - n
	if y < e.scrollTop {
		y = e.scrollTop
	}
	e.moveCursorY(y)
}

// cmdCursorDown is CSI Ps B.
func (e *Emulator) cmdCursorDown(m *xtermproto.Machine) {
	n := intVar(m, 0, 1)
	y := e.CursorY + n
	if y > e.scrollBottom {
		y = e.scrollBottom
	}
	e.moveCursorY(y)
}

// cmdCursorForward is CSI Ps C.
func (e *Emulator) cmdCursorForward(m *xtermproto.Machine) {
	n := intVar(m, 0, 1)
	e.moveCursorX(e.Cursor.X + n)
}

// cmdCursorBackward is CSI Ps D.
func (e *Emulator) cmdCursorBackward(m *xtermproto.Machine) {
	n := intVar(m, 0, 1)
	e.moveCursorX(e.Cursor.X - n)
}

// cmdCursorNextLine is CSI Ps E: down Ps rows, then to column 0.
func (e *Emulator) cmdCursorNextLine(m *xtermproto.Machine) {
	e.cmdCursorDown(m)
	e.carriageReturn()
}

// cmdCursorPreviousLine is CSI Ps F: up Ps rows, then to column 0.
func (e *Emulator) cmdCursorPreviousLine(m *xtermproto.Machine) {
	e.cmdCursorUp(m)
	e.carriageReturn()
}

// cmdCursorHorizontalAbsolute is CSI Ps G: move to column Ps (1-based).
func (e *Emulator) cmdCursorHorizontalAbsolute(m *xtermproto.Machine) {
	n := intVar(m, 0, 1)
	e.moveCursorX(n - 1)
}

// cmdCursorVerticalAbsolute is CSI Ps d: move to row Ps (1-based).
func (e *Emulator) cmdCursorVerticalAbsolute(m *xtermproto.Machine) {
	n := intVar(m, 0, 1)
	e.moveCursorY(n - 1)
}

// cmdCursorPosition is CSI Ps ; Ps H (and CSI Ps ; Ps f): move to
// row;column, both 1-based and both defaulting to 1.
func (e *Emulator) cmdCursorPosition(m *xtermproto.Machine) {
	fields := intVarList(m, 0)
	row := intAt(fields, 0, 1)
	col := intAt(fields, 1, 1)
	e.moveCursorY(row - 1)
	e.moveCursorX(col - 1)
}

// cmdSaveCursor is ESC 7 (DECSC): stash position, attributes, and
// charset state for a later cmdRestoreCursor.
func (e *Emulator) cmdSaveCursor() {
	e.SavedCursor = SavedCursor{
		X:        e.Cursor.X,
		Y:        e.CursorY,
		Attrs:    e.Attrs,
		Left:     e.Charset.Left(),
		Right:    e.Charset.Right(),
		NextLeft: e.Charset.NextLeft(),
		Slots: [4]*charset.Table{
			e.Charset.Slot(0), e.Charset.Slot(1), e.Charset.Slot(2), e.Charset.Slot(3),
		},
	}
}

// cmdRestoreCursor is ESC 8 / CSI u (DECRC): reapply whatever
// cmdSaveCursor last captured, or the power-on defaults if nothing was
// saved yet.
func (e *Emulator) cmdRestoreCursor() {
	sc := e.SavedCursor
	e.Attrs = sc.Attrs
	for i, t := range sc.Slots {
		e.Charset.SetCharset(i, t)
	}
	e.Charset.SetLeft(sc.Left)
	e.Charset.SetRight(sc.Right)
	e.moveCursorY(sc.Y)
	e.moveCursorX(sc.X)
}

// cmdTabForward is CSI Ps I: advance Ps tab stops.
func (e *Emulator) cmdTabForward(m *xtermproto.Machine) {
	e.advanceTab(intVar(m, 0, 1))
}

// cmdTabBackward is CSI Ps Z: retreat Ps tab stops.
func (e *Emulator) cmdTabBackward(m *xtermproto.Machine) {
	n := intVar(m, 0, 1)
	x := e.Cursor.X
	for i := 0; i < n; i++ {
		x = e.prevTabStop(x)
	}
	e.moveCursorX(x)
}

// cmdTabClear is CSI Ps g: Ps=0 clears the stop at the cursor, Ps=3 clears
// every stop.
func (e *Emulator) cmdTabClear(m *xtermproto.Machine) {
	switch intVar(m, 0, 0) {
	case 0:
		if e.Cursor.X < len(e.tabStops) {
			e.tabStops[e.Cursor.X] = false
		}
	case 3:
		for i := range e.tabStops {
			e.tabStops[i] = false
		}
	}
}

// cmdRepeatCharacter is CSI Ps b: reprint the last graphic character Ps
// more times (xterm's REP).
func (e *Emulator) cmdRepeatCharacter(m *xtermproto.Machine) {
	n := intVar(m, 0, 1)
	c := lastRune(m)
	for i := 0; i < n; i++ {
		e.printable(c)
	}
}

// cmdInsertCharacters is CSI Ps @ (ICH): open Ps blank columns at the
// cursor, shifting the rest of the line right and dropping what falls off
// the right edge.
func (e *Emulator) cmdInsertCharacters(m *xtermproto.Machine) {
	n := intVar(m, 0, 1)
	for i := 0; i < n; i++ {
		e.currentRow().Insert(e.Cursor.X)
	}
	e.currentRow().Resize(e.Cols)
}

// cmdDeleteCharacters is CSI Ps P (DCH): remove Ps columns at the cursor,
// shifting the rest of the line left and padding the vacated right edge.
func (e *Emulator) cmdDeleteCharacters(m *xtermproto.Machine) {
	n := intVar(m, 0, 1)
	for i := 0; i < n; i++ {
		e.currentRow().Remove(e.Cursor.X)
	}
	e.currentRow().Resize(e.Cols)
}

// cmdInsertLines is CSI Ps L (IL): open Ps blank rows at the cursor's row
// within the scroll region, pushing rows below down and off the bottom
// margin.
func (e *Emulator) cmdInsertLines(m *xtermproto.Machine) {
	if e.CursorY < e.scrollTop || e.CursorY > e.scrollBottom {
		return
	}
	n := intVar(m, 0, 1)
	top := e.scrollTop
	e.scrollTop = e.CursorY
	e.scrollRegionDown(n)
	e.scrollTop = top
}

// cmdDeleteLines is CSI Ps M (DL): remove Ps rows at the cursor's row
// within the scroll region, pulling rows below up and padding the vacated
// bottom margin.
func (e *Emulator) cmdDeleteLines(m *xtermproto.Machine) {
	if e.CursorY < e.scrollTop || e.CursorY > e.scrollBottom {
		return
	}
	n := intVar(m, 0, 1)
	top := e.scrollTop
	e.scrollTop = e.CursorY
	e.scrollRegionUp(n)
	e.scrollTop = top
}

// cmdScrollUp is CSI Ps S (SU): scroll the whole scroll region up Ps
// lines.
func (e *Emulator) cmdScrollUp(m *xtermproto.Machine) {
	e.scrollRegionUp(intVar(m, 0, 1))
	e.syncCursor()
}

// cmdScrollDown is CSI Ps T (SD): scroll the whole scroll region down Ps
// lines.
func (e *Emulator) cmdScrollDown(m *xtermproto.Machine) {
	e.scrollRegionDown(intVar(m, 0, 1))
	e.syncCursor()
}
