package xtermproto

import "testing"

type recordedDispatch struct {
	id   HandlerID
	vars map[int]string
	list map[int][]string
}

type fakeHandler struct {
	calls  []recordedDispatch
	errors []string
}

func (h *fakeHandler) Dispatch(id HandlerID, m *Machine) {
	vars := map[int]string{}
	list := map[int][]string{}
	for i := 0; i < 8; i++ {
		if v := m.Var(i); v != "" {
			vars[i] = v
		}
		if l := m.VarList(i); len(l) > 0 {
			list[i] = l
		}
	}
	h.calls = append(h.calls, recordedDispatch{id: id, vars: vars, list: list})
}

func (h *fakeHandler) OnError(msg string, m *Machine) {
	h.errors = append(h.errors, msg)
}

func feed(m *Machine, s string) {
	for _, c := range s {
		m.Process(c)
	}
}

func TestCursorPositionDispatch(t *testing.T) {
	h := &fakeHandler{}
	m := NewMachine(Build(), h)

	feed(m, "\x1b[12;34H")

	if len(h.calls) != 1 {
		t.Fatalf("got %d dispatches, want 1: %+v", len(h.calls), h.calls)
	}
	if h.calls[0].id != HCursorPosition {
		t.Errorf("dispatched %v, want HCursorPosition", h.calls[0].id)
	}
	list := h.calls[0].list[0]
	if len(list) != 2 || list[0] != "12" || list[1] != "34" {
		t.Errorf("VarList(0) = %+v, want [12 34]", list)
	}
}

func TestCursorPosition8BitEquivalent(t *testing.T) {
	h := &fakeHandler{}
	m := NewMachine(Build(), h)

	feed(m, "\u009b12;34H")

	if len(h.calls) != 1 || h.calls[0].id != HCursorPosition {
		t.Fatalf("calls = %+v, want one HCursorPosition dispatch", h.calls)
	}
}

func TestEscapePromotionMatches8BitForm(t *testing.T) {
	h7 := &fakeHandler{}
	m7 := NewMachine(Build(), h7)
	feed(m7, "\x1b[1A")

	h8 := &fakeHandler{}
	m8 := NewMachine(Build(), h8)
	feed(m8, "\u009b1A")

	if len(h7.calls) != 1 || len(h8.calls) != 1 {
		t.Fatalf("want exactly one dispatch each, got %d and %d", len(h7.calls), len(h8.calls))
	}
	if h7.calls[0].id != h8.calls[0].id {
		t.Errorf("7-bit dispatched %v, 8-bit dispatched %v, want equal", h7.calls[0].id, h8.calls[0].id)
	}
	if h7.calls[0].vars[0] != h8.calls[0].vars[0] {
		t.Errorf("7-bit var %q != 8-bit var %q", h7.calls[0].vars[0], h8.calls[0].vars[0])
	}
}

func TestCursorPositionNoSemicolonDefaultsOneField(t *testing.T) {
	// a lone numeric value with no separator ever reaches the multi-numeric
	// edge's terminator case directly, producing a one-element VarList.
	h := &fakeHandler{}
	m := NewMachine(Build(), h)

	feed(m, "\x1b[5H")

	if len(h.calls) != 1 || h.calls[0].id != HCursorPosition {
		t.Fatalf("calls = %+v, want one HCursorPosition dispatch", h.calls)
	}
	list := h.calls[0].list[0]
	if len(list) != 1 || list[0] != "5" {
		t.Errorf("VarList(0) = %+v, want [5]", list)
	}
}

func TestOSCTitleDispatch(t *testing.T) {
	h := &fakeHandler{}
	m := NewMachine(Build(), h)

	feed(m, "\x1b]0;my title\x07")

	if len(h.calls) != 1 || h.calls[0].id != HOSCMain {
		t.Fatalf("calls = %+v, want one HOSCMain dispatch", h.calls)
	}
	if h.calls[0].vars[0] != "0" || h.calls[0].vars[1] != "my title" {
		t.Errorf("vars = %+v, want {0:0 1:\"my title\"}", h.calls[0].vars)
	}
}

func TestOSCTitleST8Bit(t *testing.T) {
	h := &fakeHandler{}
	m := NewMachine(Build(), h)

	feed(m, "\u009d0;another\u009c")

	if len(h.calls) != 1 || h.calls[0].id != HOSCMain {
		t.Fatalf("calls = %+v, want one HOSCMain dispatch", h.calls)
	}
}

func TestUnrecognizedSequenceReportsErrorAndResets(t *testing.T) {
	h := &fakeHandler{}
	m := NewMachine(Build(), h)

	// ESC '0' is neither a 7-bit escape final byte nor the start of any
	// registered command, so it should be reported and the machine should
	// recover to accept further input cleanly.
	feed(m, "\x1b0")

	if len(h.errors) == 0 {
		t.Fatalf("expected at least one OnError call")
	}

	// machine should have recovered; a subsequent valid sequence dispatches.
	feed(m, "\x1b[1A")
	if len(h.calls) == 0 {
		t.Fatalf("expected machine to recover and dispatch a later valid sequence")
	}
}

func TestEmbeddedControlCodeDoesNotDisturbSequence(t *testing.T) {
	h := &fakeHandler{}
	m := NewMachine(Build(), h)

	// a bare LF embedded mid-CSI-sequence should be dispatched immediately
	// via Call without corrupting the in-progress cursor-position sequence.
	feed(m, "\x1b[12")
	m.Process('\n')
	feed(m, ";34H")

	if len(h.calls) != 2 {
		t.Fatalf("got %d dispatches, want 2 (embedded control + final)", len(h.calls))
	}
	if h.calls[0].id != HProcess {
		t.Errorf("first dispatch = %v, want HProcess (embedded control)", h.calls[0].id)
	}
	if h.calls[1].id != HCursorPosition {
		t.Errorf("second dispatch = %v, want HCursorPosition", h.calls[1].id)
	}
	list := h.calls[1].list[0]
	if len(list) != 2 || list[0] != "12" || list[1] != "34" {
		t.Errorf("VarList(0) = %+v, want [12 34]", list)
	}
}
