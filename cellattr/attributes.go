// Package cellattr holds the immutable value types describing how a single
// terminal cell is rendered: its SGR flags and its foreground/background
// color.
package cellattr

// Flags is a bitset of the visual/semantic markers a cell can carry.
type Flags uint32

const (
	Bold Flags = 1 << iota
	Faint
	Italic
	Underline
	Blink
	Inverse
	Invisible
	Strikethrough
	// DblWidthChar marks the left half of a double-width cluster's run. It
	// is cleared whenever that cluster is split into independent blanks.
	DblWidthChar
	Protected
	PromptMarker
	CommandMarker
	AnnotationMarker
	SearchMarker
)

// Has reports whether all bits in want are set in f.
func (f Flags) Has(want Flags) bool {
	return f&want == want
}

// ColorKind distinguishes a palette-indexed color from a direct RGB color.
type ColorKind uint8

const (
	ColorDefault ColorKind = iota
	ColorPalette
	ColorRGB
)

// Color is a value type holding either a palette index or an RGB triple.
type Color struct {
	Kind    ColorKind
	Index   uint8
	R, G, B uint8
}

// DefaultColor is the zero Color: "use the terminal's default".
var DefaultColor = Color{Kind: ColorDefault}

// Palette constructs a palette-indexed color.
func Palette(index uint8) Color {
	return Color{Kind: ColorPalette, Index: index}
}

// RGB constructs a direct-color value.
func RGB(r, g, b uint8) Color {
	return Color{Kind: ColorRGB, R: r, G: g, B: b}
}

// Attributes is the invariant value type attached to each column of a row
// via an attribute run (see package row). Equality is bitwise per spec §3.2.
type Attributes struct {
	Flags      Flags
	Fg, Bg     Color
	Protection int
}

// Equal reports bitwise equality, per spec §3.2.
func (a Attributes) Equal(other Attributes) bool {
	return a == other
}

// WithFlag returns a with want set.
func (a Attributes) WithFlag(want Flags) Attributes {
	a.Flags |= want
	return a
}

// WithoutFlag returns a with want cleared.
func (a Attributes) WithoutFlag(want Flags) Attributes {
	a.Flags &^= want
	return a
}
