package cellattr

import "testing"

func TestAttributesEqual(t *testing.T) {
	a := Attributes{Flags: Bold, Fg: Palette(1)}
	b := Attributes{Flags: Bold, Fg: Palette(1)}
	c := Attributes{Flags: Bold | Underline, Fg: Palette(1)}

	if !a.Equal(b) {
		t.Error("expected a == b")
	}
	if a.Equal(c) {
		t.Error("expected a != c")
	}
}

func TestWithFlagWithoutFlag(t *testing.T) {
	a := Attributes{}
	a = a.WithFlag(Bold | Italic)
	if !a.Flags.Has(Bold) || !a.Flags.Has(Italic) {
		t.Fatalf("expected Bold|Italic set, got %b", a.Flags)
	}
	a = a.WithoutFlag(Italic)
	if a.Flags.Has(Italic) {
		t.Fatal("expected Italic cleared")
	}
	if !a.Flags.Has(Bold) {
		t.Fatal("expected Bold still set")
	}
}

func TestDblWidthCharFlag(t *testing.T) {
	a := Attributes{Flags: DblWidthChar}
	if !a.Flags.Has(DblWidthChar) {
		t.Fatal("expected DblWidthChar set")
	}
	cleared := a.WithoutFlag(DblWidthChar)
	if cleared.Flags.Has(DblWidthChar) {
		t.Fatal("expected DblWidthChar cleared")
	}
}

func TestColorConstructors(t *testing.T) {
	if Palette(5).Kind != ColorPalette {
		t.Error("expected ColorPalette kind")
	}
	rgb := RGB(10, 20, 30)
	if rgb.Kind != ColorRGB || rgb.R != 10 || rgb.G != 20 || rgb.B != 30 {
		t.Errorf("unexpected RGB color: %+v", rgb)
	}
	if DefaultColor.Kind != ColorDefault {
		t.Error("expected ColorDefault kind")
	}
}
