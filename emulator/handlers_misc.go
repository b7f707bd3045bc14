package emulator

import (
	"github.com/xtermgo/xtermcore/cellattr"
	"github.com/xtermgo/xtermcore/charset"
	"github.com/xtermgo/xtermcore/row"
	"github.com/xtermgo/xtermcore/width"
	"github.com/xtermgo/xtermcore/xtermproto"
)

// process is HProcess: every raw control code or printable codepoint that
// isn't the start of a recognized sequence lands here, per
// original_source/mux/xterm/xterm.h's control()/printable() split.
func (e *Emulator) process(m *xtermproto.Machine) {
	c := lastRune(m)
	if xtermproto.IsControlCode(c) {
		e.control(c)
		return
	}
	e.printable(c)
}

// control handles the C0/C1 control codes that have a direct effect on
// screen position, independent of whatever sequence they might interrupt.
func (e *Emulator) control(c rune) {
	switch c {
	case '\n', '\v', '\f':
		e.lineFeed()
	case '\r':
		e.carriageReturn()
	case '\b':
		e.moveCursorX(e.Cursor.X - 1)
	case '\t':
		e.advanceTab(1)
	default:
		// BEL and the remaining C0/C1 codes have no on-screen effect this
		// core models.
	}
}

// printable writes one decoded, charset-translated codepoint at the
// cursor: combiners attach to the cluster just before the cursor (the one
// at column 0 when the cursor is at column 0), emoji and wide CJK consume
// two columns, everything else advances by one.
func (e *Emulator) printable(c rune) {
	c = e.Charset.Translate(c)

	combineCol := e.Cursor.X - 1
	if combineCol < 0 {
		combineCol = 0
	}
	if width.IsCombiner(c) || width.IsVariationSelector(c) || width.IsZWJ(c) {
		e.currentRow().AppendCombinerAt(combineCol, c)
		return
	}

	w := width.RuneWidth(c)
	if w == 0 {
		e.currentRow().AppendCombinerAt(combineCol, c)
		return
	}

	if e.Cursor.X+w > e.Cols {
		e.carriageReturn()
		e.lineFeed()
	}

	e.currentRow().Replace(e.Cursor.X, e.Attrs, c, w)
	// Advance past the clamped range printable() itself enforces: this may
	// leave X == Cols, a deliberate one-past-the-end "pending wrap" mark
	// that the next printable() call's own bounds check resolves.
	e.Cursor.X += w
	e.syncCursor()
}

// moveCursorX sets the cursor's column for an explicit positioning command
// (CUP, CUF, CUB, HPA...), clamped to the last valid column, and
// reconciles pos/ptr/flags against the current row.
func (e *Emulator) moveCursorX(x int) {
	e.Cursor.X = clampInt(x, 0, e.Cols-1)
	e.syncCursor()
}

// moveCursorY moves to row y (0-based, clamped to the screen), preserving
// the current column.
func (e *Emulator) moveCursorY(y int) {
	e.CursorY = clampInt(y, 0, e.NumRows-1)
	e.syncCursor()
}

func (e *Emulator) carriageReturn() {
	e.moveCursorX(0)
}

// lineFeed advances to the next row, scrolling the active region up by one
// line when the cursor is already on its last line.
func (e *Emulator) lineFeed() {
	if e.CursorY == e.scrollBottom {
		e.scrollRegionUp(1)
		e.syncCursor()
		return
	}
	e.moveCursorY(e.CursorY + 1)
}

// scrollRegionUp moves every row in [scrollTop, scrollBottom] up by n
// lines, filling the vacated lines at the bottom with blank rows.
func (e *Emulator) scrollRegionUp(n int) {
	top, bot := e.scrollTop, e.scrollBottom
	for i := 0; i < n; i++ {
		copy(e.Rows[top:bot], e.Rows[top+1:bot+1])
		blank := row.New()
		blank.Resize(e.Cols)
		e.Rows[bot] = blank
	}
}

// scrollRegionDown moves every row in [scrollTop, scrollBottom] down by n
// lines, filling the vacated lines at the top with blank rows.
func (e *Emulator) scrollRegionDown(n int) {
	top, bot := e.scrollTop, e.scrollBottom
	for i := 0; i < n; i++ {
		copy(e.Rows[top+1:bot+1], e.Rows[top:bot])
		blank := row.New()
		blank.Resize(e.Cols)
		e.Rows[top] = blank
	}
}

func (e *Emulator) advanceTab(count int) {
	x := e.Cursor.X
	for i := 0; i < count; i++ {
		x = e.nextTabStop(x)
	}
	e.moveCursorX(x)
}

func (e *Emulator) nextTabStop(from int) int {
	for x := from + 1; x < e.Cols; x++ {
		if e.tabStops[x] {
			return x
		}
	}
	return e.Cols
}

func (e *Emulator) prevTabStop(from int) int {
	for x := from - 1; x > 0; x-- {
		if e.tabStops[x] {
			return x
		}
	}
	return 0
}

// cmdResetEmulator is ESC c / CSI ! p: clears the screen, resets
// attributes, modes, margins, and charsets to their power-on defaults.
func (e *Emulator) cmdResetEmulator() {
	for i := range e.Rows {
		r := row.New()
		r.Resize(e.Cols)
		e.Rows[i] = r
	}
	e.Cursor = row.Cursor{}
	e.CursorY = 0
	e.Attrs = cellattr.Attributes{}
	e.Charset = charset.NewMap(0, 0, charset.ASCII, nil, nil, nil)
	e.Modes = make(map[int]bool)
	e.SavedModes = make(map[int]bool)
	e.scrollTop = 0
	e.scrollBottom = e.NumRows - 1
	e.resetTabStops()
	e.syncCursor()
}

// cmdDECScreenAlignmentTest (ESC #8) fills the screen with 'E', per xterm's
// DECALN, used to visually verify cell alignment covers the whole screen.
func (e *Emulator) cmdDECScreenAlignmentTest() {
	for y := 0; y < e.NumRows; y++ {
		r := row.New()
		for x := 0; x < e.Cols; x++ {
			r.Append(cellattr.Attributes{}, 'E', 1)
		}
		e.Rows[y] = r
	}
	e.syncCursor()
}
