package emulator

import (
	"strconv"

	"github.com/xtermgo/xtermcore/xtermproto"
)

// intVar parses the varnum-th captured numeric parameter, returning def if
// it was not captured, empty, or "0" (xterm's convention: an omitted or
// zero numeric argument means "use the default").
func intVar(m *xtermproto.Machine, varnum, def int) int {
	s := m.Var(varnum)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n == 0 {
		return def
	}
	return n
}

// intVarList parses every captured value of varnum as an integer, turning
// an empty or unparsable field into 0 (xterm treats ";;" as an omitted
// middle parameter, which intAt then maps to its default) rather than
// erroring.
func intVarList(m *xtermproto.Machine, varnum int) []int {
	list := m.VarList(varnum)
	out := make([]int, 0, len(list))
	for _, s := range list {
		if s == "" {
			out = append(out, 0)
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			n = 0
		}
		out = append(out, n)
	}
	return out
}

// intAt returns list[idx], or def if idx is out of range or list[idx] is 0
// — a multi-numeric capture's fields all land in the same Var slot as a
// list (see intVarList), so a command with several positional parameters
// (CUP's row;col, DECSTBM's top;bottom) must index into that list rather
// than read further Var slots, which are never populated for it.
func intAt(list []int, idx, def int) int {
	if idx >= len(list) || list[idx] == 0 {
		return def
	}
	return list[idx]
}

// lastRune returns the codepoint that completed the sequence currently
// being dispatched — the parser always leaves it as the final rune of
// AllSequence at call time, whether reached via a Move (bare printable) or
// a Call (control code embedded mid-sequence).
func lastRune(m *xtermproto.Machine) rune {
	seq := []rune(m.AllSequence())
	if len(seq) == 0 {
		return 0
	}
	return seq[len(seq)-1]
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
