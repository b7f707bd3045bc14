package charset

// ASCII is the identity table: nil means every designation slot defaults to
// it, since a zero Table entry already passes its byte through unchanged.
var ASCII *Table

// UK designates '#' (0x23) to the pound sign, the one difference from ASCII
// in the classic DEC national replacement character sets.
var UK = &Table{
	0x23: '£',
}

// DECSpecialGraphics is the VT100 line-drawing and symbol set, invoked by
// `ESC ( 0`. Mappings follow the standard xterm-published table for the
// 0x5f-0x7e byte range; everything outside it is identity.
var DECSpecialGraphics = &Table{
	0x5F: ' ',      // blank
	0x60: '◆',      // diamond
	0x61: '▒',      // checkerboard
	0x62: '␉',      // HT symbol
	0x63: '␌',      // FF symbol
	0x64: '␍',      // CR symbol
	0x65: '␊',      // LF symbol
	0x66: '°',      // degree
	0x67: '±',      // plus/minus
	0x68: '␤',      // NL symbol
	0x69: '␋',      // VT symbol
	0x6A: '┘',      // lower-right corner
	0x6B: '┐',      // upper-right corner
	0x6C: '┌',      // upper-left corner
	0x6D: '└',      // lower-left corner
	0x6E: '┼',      // crossing lines
	0x6F: '⎺',      // scan line 1
	0x70: '⎻',      // scan line 3
	0x71: '─',      // horizontal line (scan line 5)
	0x72: '⎼',      // scan line 7
	0x73: '⎽',      // scan line 9
	0x74: '├',      // left "T"
	0x75: '┤',      // right "T"
	0x76: '┴',      // bottom "T"
	0x77: '┬',      // top "T"
	0x78: '│',      // vertical bar
	0x79: '≤',      // less-than-or-equal
	0x7A: '≥',      // greater-than-or-equal
	0x7B: 'π',      // pi
	0x7C: '≠',      // not equal
	0x7D: '£',      // pound sterling
	0x7E: '·',      // centered dot
}
