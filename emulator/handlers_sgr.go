package emulator

import (
	"github.com/xtermgo/xtermcore/cellattr"
	"github.com/xtermgo/xtermcore/xtermproto"
)

// cmdCharacterAttributes is CSI Pm m (SGR): walk every captured parameter
// and fold it into the current drawing attributes, which subsequent
// printable() calls stamp onto the cells they write.
func (e *Emulator) cmdCharacterAttributes(m *xtermproto.Machine) {
	params := intVarList(m, 0)
	if len(params) == 0 {
		params = []int{0}
	}
	for i := 0; i < len(params); i++ {
		p := params[i]
		switch {
		case p == 0:
			e.Attrs = cellattr.Attributes{}
		case p == 1:
			e.Attrs.Flags |= cellattr.Bold
		case p == 2:
			e.Attrs.Flags |= cellattr.Faint
		case p == 3:
			e.Attrs.Flags |= cellattr.Italic
		case p == 4:
			e.Attrs.Flags |= cellattr.Underline
		case p == 5 || p == 6:
			e.Attrs.Flags |= cellattr.Blink
		case p == 7:
			e.Attrs.Flags |= cellattr.Inverse
		case p == 8:
			e.Attrs.Flags |= cellattr.Invisible
		case p == 9:
			e.Attrs.Flags |= cellattr.Strikethrough
		case p == 22:
			e.Attrs.Flags &^= cellattr.Bold | cellattr.Faint
		case p == 23:
			e.Attrs.Flags &^= cellattr.Italic
		case p == 24:
			e.Attrs.Flags &^= cellattr.Underline
		case p == 25:
			e.Attrs.Flags &^= cellattr.Blink
		case p == 27:
			e.Attrs.Flags &^= cellattr.Inverse
		case p == 28:
			e.Attrs.Flags &^= cellattr.Invisible
		case p == 29:
			e.Attrs.Flags &^= cellattr.Strikethrough
		case p >= 30 && p <= 37:
			e.Attrs.Fg = cellattr.Palette(uint8(p - 30))
		case p == 38:
			color, consumed := e.parseExtendedColor(params[i+1:])
			e.Attrs.Fg = color
			i += consumed
		case p == 39:
			e.Attrs.Fg = cellattr.DefaultColor
		case p >= 40 && p <= 47:
			e.Attrs.Bg = cellattr.Palette(uint8(p - 40))
		case p == 48:
			color, consumed := e.parseExtendedColor(params[i+1:])
			e.Attrs.Bg = color
			i += consumed
		case p == 49:
			e.Attrs.Bg = cellattr.DefaultColor
		case p >= 90 && p <= 97:
			e.Attrs.Fg = cellattr.Palette(uint8(p - 90 + 8))
		case p >= 100 && p <= 107:
			e.Attrs.Bg = cellattr.Palette(uint8(p - 100 + 8))
		}
	}
}

// parseExtendedColor decodes the 38/48 sub-parameter forms this core
// supports (`5 ; index` for a palette color, `2 ; r ; g ; b` for direct
// color) from rest, returning the color and how many extra parameters it
// consumed beyond the selector itself.
func (e *Emulator) parseExtendedColor(rest []int) (cellattr.Color, int) {
	if len(rest) == 0 {
		return cellattr.DefaultColor, 0
	}
	switch rest[0] {
	case 5:
		if len(rest) < 2 {
			return cellattr.DefaultColor, len(rest)
		}
		return cellattr.Palette(uint8(rest[1])), 2
	case 2:
		if len(rest) < 4 {
			return cellattr.DefaultColor, len(rest)
		}
		return cellattr.RGB(uint8(rest[1]), uint8(rest[2]), uint8(rest[3])), 4
	default:
		return cellattr.DefaultColor, 1
	}
}

// cmdProtectionAttribute is CSI Ps " q (DECSCA): Ps=1 sets
// cellattr.Protected in the drawing attributes of subsequently written
// cells, Ps=0/2 clears it. The selective erase commands (DECSED/DECSEL) do
// not consult this flag; they erase protected cells like ED/EL do.
func (e *Emulator) cmdProtectionAttribute(m *xtermproto.Machine) {
	if intVar(m, 0, 0) == 1 {
		e.Attrs.Flags |= cellattr.Protected
	} else {
		e.Attrs.Flags &^= cellattr.Protected
	}
}
