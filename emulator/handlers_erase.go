package emulator

import "github.com/xtermgo/xtermcore/xtermproto"

// cmdEraseInDisplay is CSI Ps J (ED) and CSI ? Ps J (DECSED): Ps=0 erases
// cursor-to-end, Ps=1 erases start-to-cursor, Ps=2/3 erases everything.
func (e *Emulator) cmdEraseInDisplay(m *xtermproto.Machine) {
	switch intVar(m, 0, 0) {
	case 0:
		e.currentRow().Erase(e.Cursor.X, e.Cols)
		for y := e.CursorY + 1; y < e.NumRows; y++ {
			e.Rows[y].Erase(0, e.Cols)
		}
	case 1:
		e.currentRow().Erase(0, e.Cursor.X+1)
		for y := 0; y < e.CursorY; y++ {
			e.Rows[y].Erase(0, e.Cols)
		}
	case 2, 3:
		for _, r := range e.Rows {
			r.Erase(0, e.Cols)
		}
	}
}

// cmdEraseInLine is CSI Ps K (EL) and CSI ? Ps K (DECSEL): Ps=0 erases
// cursor-to-end-of-line, Ps=1 erases start-of-line-to-cursor, Ps=2 erases
// the whole line.
func (e *Emulator) cmdEraseInLine(m *xtermproto.Machine) {
	switch intVar(m, 0, 0) {
	case 0:
		e.currentRow().Erase(e.Cursor.X, e.Cols)
	case 1:
		e.currentRow().Erase(0, e.Cursor.X+1)
	case 2:
		e.currentRow().Erase(0, e.Cols)
	}
}

// cmdEraseCharacters is CSI Ps X (ECH): blank Ps columns starting at the
// cursor without shifting anything, unlike cmdDeleteCharacters.
func (e *Emulator) cmdEraseCharacters(m *xtermproto.Machine) {
	n := intVar(m, 0, 1)
	end := e.Cursor.X + n
	if end > e.Cols {
		end = e.Cols
	}
	e.currentRow().Erase(e.Cursor.X, end)
}
