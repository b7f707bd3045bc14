// Package xtermproto implements the control-sequence state machine: a
// graph of nodes connected by typed edges, built once from a static
// command table and then driven one codepoint at a time by Machine.
package xtermproto

// Disposition is what an edge's Process tells the machine to do next, per
// spec §4.4/§4.5.
type Disposition int

const (
	// Stay keeps the current node; more codepoints are expected before this
	// edge's captured variable is complete (numeric/text accumulation).
	Stay Disposition = iota
	// Move advances to the edge's target node, completing the node's leaf
	// dispatch (if any) and resetting the machine.
	Move
	// Skip re-dispatches the same codepoint from the edge's target node
	// without consuming it, used to both close a captured variable and
	// immediately route the terminator codepoint onward.
	Skip
	// Restart abandons the in-progress sequence and reprocesses c as if it
	// had just arrived at the machine's idle state.
	Restart
	// Reset abandons the in-progress sequence with no further action.
	Reset
	// Call invokes the edge's target node's handler immediately without
	// moving the machine's current node or clearing the accumulated
	// sequence — used for a control code embedded mid-sequence.
	Call
)

// Edge kind tags, mirroring the single-byte markers the original command
// table used inline to mark which builder a byte in a sequence pattern
// should invoke.
const (
	KindSingleNumeric byte = 0xff
	KindMultiNumeric  byte = 0xfe
	KindSingleText    byte = 0xfd
	KindSingleChar    byte = 0xfc
	KindOther         byte = 0x00
)

// Edge is the sum type for every edge kind the graph can contain: a literal
// byte match, a control-code interceptor, or one of the three variable-
// capturing edges (single char, numeric, text).
type Edge interface {
	Kind() byte
	// Matches reports whether c can be consumed by this edge from the
	// current machine state. Edges reached via Node's exact-match map never
	// need this called since the map lookup already matched c precisely;
	// Matches is only consulted for Node's fallback edge list.
	Matches(m *Machine, c rune) bool
	// Process consumes c, updates m, and reports the resulting disposition.
	Process(m *Machine, c rune) Disposition
}

// LiteralEdge matches any codepoint unconditionally (used for exact literal
// bytes in a command pattern, always reached via Node's edge map, and for
// the root print/control fallback edges) and the non-capturing default
// behavior every other edge kind falls back to: push c and advance.
type LiteralEdge struct{}

func (LiteralEdge) Kind() byte                       { return KindOther }
func (LiteralEdge) Matches(*Machine, rune) bool      { return true }
func (LiteralEdge) Process(m *Machine, c rune) Disposition {
	m.push(c)
	m.next()
	return Move
}

// ControlEdge intercepts control codes (C0/C1) that appear anywhere in a
// sequence: a restart code (ESC, DCS, CSI, OSC, PM, APC) restarts the
// sequence in progress, or moves like a literal when none is in progress;
// any other control code is dispatched immediately via Call without
// disturbing the sequence in progress.
type ControlEdge struct{}

func (ControlEdge) Kind() byte { return KindOther }

func (ControlEdge) Matches(_ *Machine, c rune) bool {
	return IsControlCode(c)
}

func (ControlEdge) Process(m *Machine, c rune) Disposition {
	var rc Disposition
	if IsRestartCode(c) {
		if len(m.allSequence) == 0 {
			rc = Move
		} else {
			rc = Restart
		}
	} else {
		rc = Call
	}
	m.push(c)
	return rc
}

// SingleCharEdge captures exactly one codepoint into varnum and advances.
type SingleCharEdge struct {
	Varnum int
}

func (SingleCharEdge) Kind() byte                  { return KindSingleChar }
func (SingleCharEdge) Matches(*Machine, rune) bool { return true }

func (e SingleCharEdge) Process(m *Machine, c rune) Disposition {
	m.pushVar(e.Varnum, string(c))
	m.push(c)
	m.next()
	return Move
}

const maxCaptureLength = 32

// SingleNumericEdge accumulates ASCII digits until one of its terminators
// arrives, then captures the accumulated digit string into varnum.
type SingleNumericEdge struct {
	Varnum      int
	Terminators []rune
}

func (SingleNumericEdge) Kind() byte { return KindSingleNumeric }

func (e SingleNumericEdge) Matches(m *Machine, c rune) bool {
	if containsRune(e.Terminators, c) {
		return true
	}
	if len(m.curSequence) > maxCaptureLength {
		return false
	}
	return c >= '0' && c <= '9'
}

func (e SingleNumericEdge) Process(m *Machine, c rune) Disposition {
	if containsRune(e.Terminators, c) {
		m.pushVar(e.Varnum, string(m.curSequence))
		m.next()
		return Skip
	}
	m.push(c)
	return Stay
}

// MultiNumericEdge accumulates ASCII digits, capturing one varnum entry per
// separator-delimited field, then a final capture at the terminator — used
// for `;`-separated parameter lists (CSI Ps;Ps;...).
type MultiNumericEdge struct {
	Varnum      int
	Separator   rune
	Terminators []rune
}

func (MultiNumericEdge) Kind() byte { return KindMultiNumeric }

func (e MultiNumericEdge) Matches(m *Machine, c rune) bool {
	if containsRune(e.Terminators, c) || c == e.Separator {
		return true
	}
	if len(m.curSequence) > maxCaptureLength {
		return false
	}
	return c >= '0' && c <= '9'
}

func (e MultiNumericEdge) Process(m *Machine, c rune) Disposition {
	switch {
	case containsRune(e.Terminators, c):
		m.pushVar(e.Varnum, string(m.curSequence))
		m.next()
		return Skip
	case c == e.Separator:
		m.pushVar(e.Varnum, string(m.curSequence))
		m.push(c)
		m.next()
		return Stay
	}
	m.push(c)
	return Stay
}

// SingleTextEdge accumulates any non-restart codepoint until one of its
// terminators arrives — used for OSC/DCS free-text payloads.
type SingleTextEdge struct {
	Varnum      int
	Terminators []rune
}

const textCaptureMax = 8192

func (SingleTextEdge) Kind() byte { return KindSingleText }

func (e SingleTextEdge) Matches(m *Machine, c rune) bool {
	if containsRune(e.Terminators, c) {
		return true
	}
	if len(m.curSequence) > textCaptureMax {
		return false
	}
	return !IsRestartCode(c)
}

func (e SingleTextEdge) Process(m *Machine, c rune) Disposition {
	if containsRune(e.Terminators, c) {
		m.pushVar(e.Varnum, string(m.curSequence))
		m.next()
		return Skip
	}
	m.push(c)
	return Stay
}

func containsRune(list []rune, c rune) bool {
	for _, r := range list {
		if r == c {
			return true
		}
	}
	return false
}
