package mouseproto

import "testing"

func TestX10LeftPressAllWires(t *testing.T) {
	ev := Event{Button: ButtonLeft}

	if got, ok := Encode(ProtocolX10, WireUTF8, ev, 0, 0); !ok || got != "\x1b[M"+string(rune(32))+string(rune(33))+string(rune(33)) {
		t.Errorf("utf8 = %q, %v", got, ok)
	}
	if got, ok := Encode(ProtocolX10, WireSGR, ev, 0, 0); !ok || got != "\x1b[<0;1;1M" {
		t.Errorf("sgr = %q, %v", got, ok)
	}
	if got, ok := Encode(ProtocolX10, WireURxvt, ev, 0, 0); !ok || got != "\x1b[32;1;1M" {
		t.Errorf("urxvt = %q, %v", got, ok)
	}
}

func TestX10SuppressesReleaseMotionAndWheel(t *testing.T) {
	cases := []Event{
		{Button: ButtonLeft, Release: true},
		{Button: ButtonLeft, Motion: true},
		{Button: ButtonNone},
		{Button: ButtonWheelUp},
	}
	for _, ev := range cases {
		if _, ok := Encode(ProtocolX10, WireSGR, ev, 0, 0); ok {
			t.Errorf("Encode(%+v) reported a sequence, want suppressed", ev)
		}
	}
}

func TestNormalSuppressesMotionButReportsClicksAndWheel(t *testing.T) {
	if _, ok := Encode(ProtocolNormal, WireSGR, Event{Button: ButtonLeft, Motion: true}, 0, 0); ok {
		t.Error("expected plain motion to be suppressed in normal mode")
	}

	got, ok := Encode(ProtocolNormal, WireSGR, Event{Button: ButtonRight}, 5, 10)
	if !ok || got != "\x1b[<2;6;11M" {
		t.Errorf("right click = %q, %v, want \"\\x1b[<2;6;11M\"", got, ok)
	}

	got, ok = Encode(ProtocolNormal, WireSGR, Event{Button: ButtonWheelUp}, 0, 0)
	if !ok || got != "\x1b[<64;1;1M" {
		t.Errorf("wheel up = %q, %v, want \"\\x1b[<64;1;1M\"", got, ok)
	}
}

func TestNormalReleaseEncodingDiffersByWire(t *testing.T) {
	ev := Event{Button: ButtonLeft, Release: true}

	// SGR carries release in the trailing byte, never folds it into the
	// button code.
	if got, ok := Encode(ProtocolNormal, WireSGR, ev, 0, 0); !ok || got != "\x1b[<0;1;1m" {
		t.Errorf("sgr release = %q, %v, want \"\\x1b[<0;1;1m\"", got, ok)
	}
	// urxvt and utf8 fold a low-button release into code 3 (button-agnostic
	// release) since they have no separate release byte.
	if got, ok := Encode(ProtocolNormal, WireURxvt, ev, 0, 0); !ok || got != "\x1b[35;1;1M" {
		t.Errorf("urxvt release = %q, %v, want \"\\x1b[35;1;1M\"", got, ok)
	}
}

func TestButtonEventReportsDragButNotBareMotion(t *testing.T) {
	if _, ok := Encode(ProtocolButtonEvent, WireSGR, Event{Button: ButtonNone, Motion: true}, 0, 0); ok {
		t.Error("expected bare motion with no button held to be suppressed")
	}

	got, ok := Encode(ProtocolButtonEvent, WireSGR, Event{Button: ButtonLeft, Motion: true}, 0, 0)
	if !ok || got != "\x1b[<32;1;1M" {
		t.Errorf("drag = %q, %v, want \"\\x1b[<32;1;1M\" (button code | 32)", got, ok)
	}
}

func TestAnyEventReportsBareMotion(t *testing.T) {
	got, ok := Encode(ProtocolAnyEvent, WireSGR, Event{Button: ButtonNone, Motion: true}, 2, 3)
	if !ok || got != "\x1b[<35;3;4M" {
		t.Errorf("bare motion = %q, %v, want \"\\x1b[<35;3;4M\" (code 3 | motion 32)", got, ok)
	}
}

func TestModifiersFoldIntoCode(t *testing.T) {
	ev := Event{Button: ButtonLeft, Modifiers: ModShift | ModControl}
	got, ok := Encode(ProtocolNormal, WireSGR, ev, 0, 0)
	// base code 0, | shift(4) | control(16) = 20
	if !ok || got != "\x1b[<20;1;1M" {
		t.Errorf("modified click = %q, %v, want \"\\x1b[<20;1;1M\"", got, ok)
	}
}

func TestHighlightProtocolAlwaysSuppressed(t *testing.T) {
	if _, ok := Encode(ProtocolHighlight, WireSGR, Event{Button: ButtonLeft}, 0, 0); ok {
		t.Error("expected highlight-tracking reports to be suppressed")
	}
}

func TestUTF8CoordinateClampsAt2047(t *testing.T) {
	got, ok := Encode(ProtocolX10, WireUTF8, Event{Button: ButtonLeft}, 5000, 0)
	if !ok {
		t.Fatal("expected a report")
	}
	want := "\x1b[M" + string(rune(32)) + string(rune(2047)) + string(rune(33))
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
