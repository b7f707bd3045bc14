package emulator

import (
	"fmt"

	"github.com/xtermgo/xtermcore/xtermproto"
)

// modeKey namespaces ANSI mode numbers (CSI Ps h/l) from DEC private mode
// numbers (CSI ? Ps h/l), since e.g. mode 4 (IRM) and DEC private mode 4
// (smooth scroll) are unrelated.
func modeKey(n int, private bool) int {
	if private {
		return -n
	}
	return n
}

// cmdSetMode is CSI Pm h / CSI ? Pm h: sets every listed mode number.
func (e *Emulator) cmdSetMode(m *xtermproto.Machine, private bool) {
	for _, n := range intVarList(m, 0) {
		e.setOneMode(n, private, true)
	}
}

// cmdResetMode is CSI Pm l / CSI ? Pm l: clears every listed mode number.
func (e *Emulator) cmdResetMode(m *xtermproto.Machine, private bool) {
	for _, n := range intVarList(m, 0) {
		e.setOneMode(n, private, false)
	}
}

func (e *Emulator) setOneMode(n int, private, on bool) {
	e.Modes[modeKey(n, private)] = on
	if private && n == 25 {
		// DECTCEM: cursor visibility lives in Modes only; nothing else to
		// synchronize since this core has no separate render loop.
	}
}

// cmdSaveModes is CSI ? Pm s (XTSAVE): snapshot the listed DEC private
// modes' current values.
func (e *Emulator) cmdSaveModes(m *xtermproto.Machine) {
	for _, n := range intVarList(m, 0) {
		key := modeKey(n, true)
		e.SavedModes[key] = e.Modes[key]
	}
}

// cmdRestoreModes is XTRESTORE: reapply whatever cmdSaveModes last
// captured for the listed modes.
func (e *Emulator) cmdRestoreModes(m *xtermproto.Machine) {
	for _, n := range intVarList(m, 0) {
		key := modeKey(n, true)
		if v, ok := e.SavedModes[key]; ok {
			e.Modes[key] = v
		}
	}
}

// cmdModeRequest is CSI Ps $ p / CSI ? Ps $ p (DECRQM): report whether
// mode Ps is set, reset, or not recognized.
func (e *Emulator) cmdModeRequest(m *xtermproto.Machine, private bool) {
	n := intVar(m, 0, 0)
	key := modeKey(n, private)
	status := 2
	if v, ok := e.Modes[key]; ok {
		if v {
			status = 1
		} else {
			status = 2
		}
	} else {
		status = 0
	}
	prefix := ""
	if private {
		prefix = "?"
	}
	e.Reply(fmt.Sprintf("\x1b[%s%d;%d$y", prefix, n, status))
}

// cmdSetCursorStyle is CSI Ps SP q (DECSCUSR).
func (e *Emulator) cmdSetCursorStyle(m *xtermproto.Machine) {
	e.cursorStyle = intVar(m, 0, 1)
}

// cmdSetTopBottomMargins is CSI Ps ; Ps r (DECSTBM): sets the scrolling
// region, defaulting to the whole screen, and homes the cursor.
func (e *Emulator) cmdSetTopBottomMargins(m *xtermproto.Machine) {
	fields := intVarList(m, 0)
	top := intAt(fields, 0, 1) - 1
	bottom := intAt(fields, 1, e.NumRows) - 1
	if top < 0 {
		top = 0
	}
	if bottom >= e.NumRows {
		bottom = e.NumRows - 1
	}
	if top >= bottom {
		top, bottom = 0, e.NumRows-1
	}
	e.scrollTop = top
	e.scrollBottom = bottom
	e.moveCursorY(top)
	e.moveCursorX(0)
}

// cmdDeviceStatusReport is CSI Ps n (DSR): Ps=5 reports device OK, Ps=6
// reports the cursor position.
func (e *Emulator) cmdDeviceStatusReport(m *xtermproto.Machine) {
	switch intVar(m, 0, 0) {
	case 5:
		e.Reply("\x1b[0n")
	case 6:
		e.Reply(fmt.Sprintf("\x1b[%d;%dR", e.CursorY+1, e.Cursor.X+1))
	}
}

// cmdSendDeviceAttributes is CSI Ps c (DA1): identify as a VT420-class
// terminal with the feature set this core implements.
func (e *Emulator) cmdSendDeviceAttributes() {
	e.Reply("\x1b[?64;1;9;15;21;22c")
}

// cmdSendDeviceAttributes2 is CSI > Ps c (DA2): identify terminal type,
// firmware version, and keyboard type.
func (e *Emulator) cmdSendDeviceAttributes2() {
	e.Reply("\x1b[>41;1;0c")
}
