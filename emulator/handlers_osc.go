package emulator

import (
	"strconv"

	"github.com/xtermgo/xtermcore/xtermproto"
)

// oscMain is every OSC Ps ; Pt sequence this core recognizes: title
// setting (0/1/2) is handled directly, everything else is accepted and
// discarded since it targets a window manager or clipboard this core
// doesn't own.
func (e *Emulator) oscMain(m *xtermproto.Machine) {
	ps, err := strconv.Atoi(m.Var(0))
	if err != nil {
		return
	}
	pt := m.Var(1)
	switch ps {
	case 0:
		e.Title = pt
		e.Title2 = pt
	case 1:
		e.Title2 = pt
	case 2:
		e.Title = pt
	}
}

// cmdWindowOps is CSI Ps ; Ps ; Ps t (XTWINOPS): this core only honors the
// title stack operations (22 push, 23 pop); geometry/iconify/report
// operations target a real window it doesn't own.
func (e *Emulator) cmdWindowOps(m *xtermproto.Machine) {
	params := intVarList(m, 0)
	if len(params) == 0 {
		return
	}
	switch params[0] {
	case 22:
		which := 0
		if len(params) > 1 {
			which = params[1]
		}
		if which == 0 || which == 2 {
			e.TitleStack = append(e.TitleStack, e.Title)
		}
		if which == 0 || which == 1 {
			e.Title2Stack = append(e.Title2Stack, e.Title2)
		}
	case 23:
		which := 0
		if len(params) > 1 {
			which = params[1]
		}
		if (which == 0 || which == 2) && len(e.TitleStack) > 0 {
			n := len(e.TitleStack) - 1
			e.Title = e.TitleStack[n]
			e.TitleStack = e.TitleStack[:n]
		}
		if (which == 0 || which == 1) && len(e.Title2Stack) > 0 {
			n := len(e.Title2Stack) - 1
			e.Title2 = e.Title2Stack[n]
			e.Title2Stack = e.Title2Stack[:n]
		}
	}
}

// cmdRequestStatusString is DCS $ q Pt ST (DECRQSS): this core doesn't
// track enough renderer state to answer meaningfully, so it reports the
// "not recognized" form for whatever was requested.
func (e *Emulator) cmdRequestStatusString(m *xtermproto.Machine) {
	e.Reply("\x1bP0$r\x1b\\")
}
