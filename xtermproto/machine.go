package xtermproto

import (
	"fmt"
	"strings"
)

const esc rune = 0x1b

const escapeCodes = "DEHMNOPVWXZ[\\]^_"
const restartCodes = "\x1b\x90\x9b\x9d\x9e\x9f"

// IsControlCode reports whether c is a C0 or C1 control code, per spec
// §6.1.
func IsControlCode(c rune) bool {
	return c <= 0x1f || (c >= 0x7f && c <= 0x9f)
}

// IsRestartCode reports whether c is one of the codes that abandons any
// sequence in progress: ESC, DCS, CSI, OSC, PM, APC (7-bit ESC or their
// 8-bit equivalents).
func IsRestartCode(c rune) bool {
	for _, r := range restartCodes {
		if r == c {
			return true
		}
	}
	return false
}

func isEscapeFinalByte(c rune) bool {
	for _, r := range escapeCodes {
		if r == c {
			return true
		}
	}
	return false
}

// varEntry is one captured variable value, tagged by the varnum the
// capturing edge assigned it — a flat vector standing in for the
// original's std::multimap<int,Codestring>, per spec §9's call to replace
// multimaps with flat vectors searched linearly.
type varEntry struct {
	varnum int
	value  string
}

// Machine is the control-sequence parser runtime: a fixed Graph plus the
// mutable state of the sequence currently in progress, per spec §3.6.
type Machine struct {
	graph   *Graph
	node    nodeIdx
	handler Handler

	curSequence []rune
	allSequence []rune
	vars        []varEntry

	haveEsc bool
}

// NewMachine returns a Machine driving graph and dispatching leaf handlers
// to handler.
func NewMachine(graph *Graph, handler Handler) *Machine {
	return &Machine{graph: graph, node: graph.root, handler: handler}
}

// Reset abandons any sequence in progress and returns the machine to its
// root node, per spec §4.5.
func (m *Machine) Reset() {
	m.node = m.graph.root
	m.curSequence = m.curSequence[:0]
	m.allSequence = m.allSequence[:0]
	m.vars = m.vars[:0]
	m.haveEsc = false
}

// CurSequence returns the bytes accumulated since the last captured
// variable was closed.
func (m *Machine) CurSequence() string { return string(m.curSequence) }

// AllSequence returns every byte consumed since the sequence began.
func (m *Machine) AllSequence() string { return string(m.allSequence) }

// Var returns the first captured value for varnum, or "" if none was
// captured.
func (m *Machine) Var(varnum int) string {
	for _, v := range m.vars {
		if v.varnum == varnum {
			return v.value
		}
	}
	return ""
}

// VarList returns every captured value for varnum in capture order, for
// multi-valued parameter lists (CSI Ps;Ps;...).
func (m *Machine) VarList(varnum int) []string {
	var list []string
	for _, v := range m.vars {
		if v.varnum == varnum {
			list = append(list, v.value)
		}
	}
	return list
}

// VarCount returns how many values were captured for varnum.
func (m *Machine) VarCount(varnum int) int {
	n := 0
	for _, v := range m.vars {
		if v.varnum == varnum {
			n++
		}
	}
	return n
}

func (m *Machine) push(c rune) {
	m.curSequence = append(m.curSequence, c)
	m.allSequence = append(m.allSequence, c)
}

func (m *Machine) pushVar(varnum int, value string) {
	m.vars = append(m.vars, varEntry{varnum: varnum, value: value})
}

func (m *Machine) next() {
	m.curSequence = m.curSequence[:0]
}

func (m *Machine) call(n nodeIdx) {
	m.handler.Dispatch(m.graph.nodes[n].slot, m)
}

// Process feeds one codepoint to the machine, promoting a 7-bit ESC Fe
// sequence (ESC followed by one of the final bytes listed in escapeCodes)
// to its 8-bit C1 equivalent before dispatch, per spec §4.5/§6.1; ESC
// followed by any other codepoint is processed as ESC and then that
// codepoint. A NUL byte is ignored.
func (m *Machine) Process(c rune) {
	if c == 0 {
		return
	}

	if m.haveEsc {
		m.haveEsc = false
		if isEscapeFinalByte(c) {
			m.processMain(c + 0x40)
		} else {
			m.processMain(esc)
			m.processMain(c)
		}
		return
	}

	if c == esc {
		m.haveEsc = true
		return
	}

	m.processMain(c)
}

// dumpStateLimit caps the trace dumpState renders for an unrecognized
// sequence, so a runaway or adversarial input never grows the error message
// without bound.
const dumpStateLimit = 100

// dumpState renders the unrecognized sequence as a human-readable trace:
// caret notation for a single control byte, otherwise each codepoint
// either printed literally (printable ASCII) or parenthesized, truncated to
// dumpStateLimit codepoints.
func (m *Machine) dumpState() string {
	if len(m.allSequence) == 1 {
		c := m.allSequence[0]
		switch {
		case c < 32:
			return fmt.Sprintf("^%c", '@'+c)
		case c == 0x7f:
			return "^?"
		}
	}

	seq := m.allSequence
	truncated := false
	if len(seq) > dumpStateLimit {
		seq = seq[:dumpStateLimit]
		truncated = true
	}

	var b strings.Builder
	for i, c := range seq {
		if i > 0 {
			b.WriteByte(' ')
		}
		if c >= 0x20 && c <= 0x7e {
			b.WriteRune(c)
		} else {
			fmt.Fprintf(&b, "(%d)", c)
		}
	}
	if truncated {
		b.WriteString(" ...")
	}
	return b.String()
}

func (m *Machine) processMain(c rune) {
	ei, ok := m.graph.lookup(m.node, m, c)
	if !ok {
		m.allSequence = append(m.allSequence, c)
		msg := m.dumpState()
		m.Reset()
		m.handler.OnError(msg, m)
		return
	}

	rec := m.graph.edges[ei]
	switch rec.edge.Process(m, c) {
	case Move:
		m.node = rec.next
		if m.graph.nodes[m.node].isLeaf {
			m.call(m.node)
			m.Reset()
		}
	case Call:
		m.call(rec.next)
		if len(m.curSequence) > 0 {
			m.curSequence = m.curSequence[:len(m.curSequence)-1]
		}
		if len(m.allSequence) > 0 {
			m.allSequence = m.allSequence[:len(m.allSequence)-1]
		}
	case Skip:
		m.node = rec.next
		m.processMain(c)
	case Reset:
		m.Reset()
	case Restart:
		m.Reset()
		m.Process(c)
	case Stay:
	}
}
