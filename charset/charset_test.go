package charset

import "testing"

func TestIdentityByDefault(t *testing.T) {
	m := NewMap(0, 1, ASCII, ASCII, ASCII, ASCII)
	if got := m.Translate('A'); got != 'A' {
		t.Errorf("Translate('A') = %q, want 'A'", got)
	}
}

func TestUKPoundSign(t *testing.T) {
	m := NewMap(0, 1, UK, ASCII, ASCII, ASCII)
	if got := m.Translate('#'); got != '£' {
		t.Errorf("Translate('#') = %q, want '£'", got)
	}
	if got := m.Translate('A'); got != 'A' {
		t.Errorf("Translate('A') = %q, want 'A' (unaffected byte)", got)
	}
}

func TestDECSpecialGraphicsLineDrawing(t *testing.T) {
	m := NewMap(0, 1, DECSpecialGraphics, ASCII, ASCII, ASCII)
	if got := m.Translate('q'); got != '─' {
		t.Errorf("Translate('q') = %q, want '─'", got)
	}
}

func TestSetCharsetReloadsActiveSlot(t *testing.T) {
	m := NewMap(0, 1, ASCII, ASCII, ASCII, ASCII)
	m.SetCharset(0, DECSpecialGraphics)
	if got := m.Translate('q'); got != '─' {
		t.Errorf("Translate('q') after SetCharset(0, ...) = %q, want '─'", got)
	}
}

func TestSetLeftSwitchesInvokedSlot(t *testing.T) {
	m := NewMap(0, 1, ASCII, DECSpecialGraphics, ASCII, ASCII)
	if got := m.Translate('q'); got != 'q' {
		t.Fatalf("precondition: Translate('q') = %q, want 'q'", got)
	}
	m.SetLeft(1)
	if got := m.Translate('q'); got != '─' {
		t.Errorf("Translate('q') after SetLeft(1) = %q, want '─'", got)
	}
}

func TestSetSingleLeftRevertsAfterOneTranslate(t *testing.T) {
	m := NewMap(0, 1, ASCII, DECSpecialGraphics, ASCII, ASCII)
	m.SetSingleLeft(1)

	if got := m.Translate('q'); got != '─' {
		t.Errorf("first Translate after single shift = %q, want '─'", got)
	}
	if got := m.Translate('q'); got != 'q' {
		t.Errorf("second Translate should have reverted, got %q, want 'q'", got)
	}
}

func TestRightHalfInvocation(t *testing.T) {
	m := NewMap(0, 1, ASCII, DECSpecialGraphics, ASCII, ASCII)
	if got := m.Translate(0x80 + 'q'); got != '─' {
		t.Errorf("Translate(GR 'q') = %q, want '─'", got)
	}
}
