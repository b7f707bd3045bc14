// Package charset implements the G0–G3 character-set designation slots and
// GL/GR invocation used by the DEC/xterm character-set model: four
// designatable 96/94-character tables, two of which are invoked over the
// low (GL) and high (GR) halves of the byte range, plus a one-shot single
// shift that reverts after the next mapped codepoint.
package charset

// Table maps bytes 0x00-0x7F to the codepoints a charset slot designates. A
// zero entry means "no override, pass the byte through as its own
// codepoint" — every concrete table below only fills in the entries where
// it actually differs from ASCII.
type Table [128]rune

// Map holds the four designation slots and resolved 256-entry lookup table
// used to translate a single byte into a codepoint, per spec §4.3.
type Map struct {
	slots    [4]*Table
	left     int
	right    int
	nextLeft int

	leftSet  *Table
	rightSet *Table
	set      [256]rune
}

// NewMap constructs a Map with slot a/b/c/d designated to G0-G3 and left/
// right initially invoking slots at index left/right.
func NewMap(left, right int, a, b, c, d *Table) *Map {
	m := &Map{
		slots:    [4]*Table{a, b, c, d},
		left:     left,
		right:    right,
		nextLeft: -1,
	}
	m.loadLeft(m.slots[left])
	m.loadRight(m.slots[right])
	return m
}

func (m *Map) loadLeft(t *Table) {
	for i := 0; i < 128; i++ {
		c := rune(0)
		if t != nil {
			c = t[i]
		}
		if c != 0 {
			m.set[i] = c
		} else {
			m.set[i] = rune(i)
		}
	}
	m.leftSet = t
}

func (m *Map) loadRight(t *Table) {
	for i, j := 0, 128; i < 128; i, j = i+1, j+1 {
		c := rune(0)
		if t != nil {
			c = t[i]
		}
		if c != 0 {
			m.set[j] = c
		} else {
			m.set[j] = rune(j)
		}
	}
	m.rightSet = t
}

// Left returns the slot index currently invoked over GL.
func (m *Map) Left() int { return m.left }

// Right returns the slot index currently invoked over GR.
func (m *Map) Right() int { return m.right }

// NextLeft returns the slot a pending single shift will revert GL to, or -1
// if no single shift is pending.
func (m *Map) NextLeft() int { return m.nextLeft }

// Slot returns the table currently designated into slot pos (0-3).
func (m *Map) Slot(pos int) *Table { return m.slots[pos] }

// SetCharset designates table t into slot pos (0-3), reloading GL/GR if
// that slot is currently invoked.
func (m *Map) SetCharset(pos int, t *Table) {
	if m.slots[pos] == t {
		return
	}
	m.slots[pos] = t
	if m.left == pos {
		m.loadLeft(t)
	}
	if m.right == pos {
		m.loadRight(t)
	}
}

// SetLeft invokes slot left over GL (a locking shift, e.g. LS0/LS1).
func (m *Map) SetLeft(left int) {
	if m.left == left {
		return
	}
	m.left = left
	if t := m.slots[left]; m.leftSet != t {
		m.loadLeft(t)
	}
}

// SetRight invokes slot right over GR (e.g. LS2R/LS3R).
func (m *Map) SetRight(right int) {
	if m.right == right {
		return
	}
	m.right = right
	if t := m.slots[right]; m.rightSet != t {
		m.loadRight(t)
	}
}

// SetSingleLeft invokes slot left over GL for exactly the next mapped
// codepoint (SS2/SS3), then reverts to the previously invoked slot.
func (m *Map) SetSingleLeft(left int) {
	m.nextLeft = m.left
	m.SetLeft(left)
}

// Translate maps one incoming codepoint through the currently invoked
// tables, consuming a pending single shift if one was armed by
// SetSingleLeft. Codepoints at or above 256 pass through unchanged.
func (m *Map) Translate(c rune) rune {
	result := c
	if c < 256 {
		result = m.set[c]
	}
	if m.nextLeft != -1 {
		m.SetLeft(m.nextLeft)
		m.nextLeft = -1
	}
	return result
}
