package emulator

import (
	"github.com/xtermgo/xtermcore/charset"
	"github.com/xtermgo/xtermcore/xtermproto"
)

// charsetTableFor maps a designation's final byte to the table it selects;
// anything this core doesn't recognize falls back to ASCII, matching
// xterm's behavior for unsupported national replacement sets.
func charsetTableFor(final rune) *charset.Table {
	switch final {
	case '0':
		return charset.DECSpecialGraphics
	case 'A':
		return charset.UK
	default:
		return charset.ASCII
	}
}

// cmdDesignateCharset loads the table named by the captured final byte
// into the slot selected by the sequence's intermediate byte (the second
// rune of the full sequence: '(' ')' '*' '+' for 94-char sets, '-' '.' '/'
// for 96-char sets).
func (e *Emulator) cmdDesignateCharset(m *xtermproto.Machine) {
	seq := []rune(m.AllSequence())
	if len(seq) < 2 {
		return
	}
	slot := 0
	switch seq[1] {
	case '(':
		slot = 0
	case ')', '-':
		slot = 1
	case '*', '.':
		slot = 2
	case '+', '/':
		slot = 3
	}
	final := lastRune(m)
	e.Charset.SetCharset(slot, charsetTableFor(final))
}

// cmdInvokeCharset is the ESC n/o/|/}/~ locking-shift family: which slot
// moves into GL or GR depends on which final byte closed the sequence.
func (e *Emulator) cmdInvokeCharset(m *xtermproto.Machine) {
	switch lastRune(m) {
	case 'n': // LS2: invoke G2 into GL
		e.Charset.SetLeft(2)
	case 'o': // LS3: invoke G3 into GL
		e.Charset.SetLeft(3)
	case '|': // LS3R: invoke G3 into GR
		e.Charset.SetRight(3)
	case '}': // LS2R: invoke G2 into GR
		e.Charset.SetRight(2)
	case '~': // LS1R: invoke G1 into GR
		e.Charset.SetRight(1)
	}
}
