// Package mouseproto encodes mouse activity into the escape sequences
// xterm's various mouse-tracking modes send to the application: X10
// (clicks only), Normal (clicks, no drag), Button-Event (clicks plus
// drag), and Any-Event (clicks, drag, and bare motion), each renderable
// in the coordinate-extending UTF-8 form, the SGR form, or the urxvt form.
package mouseproto

import "fmt"

// Button identifies which physical button an event concerns. The values
// match the button field xterm packs into its event codes, so arithmetic
// against them (button-1, button+60, button<4) carries over unchanged.
type Button uint8

const (
	ButtonNone      Button = 0
	ButtonLeft      Button = 1
	ButtonMiddle    Button = 2
	ButtonRight     Button = 3
	ButtonWheelUp   Button = 4
	ButtonWheelDown Button = 5
)

// Modifiers is a bitmask of keys held during the event. The bit values
// match the positions xterm ORs into its button code (4/8/16) so they can
// be folded into an encoded code directly.
type Modifiers uint8

const (
	ModShift   Modifiers = 4
	ModMeta    Modifiers = 8
	ModControl Modifiers = 16
)

func (m Modifiers) HasShift() bool   { return m&ModShift != 0 }
func (m Modifiers) HasMeta() bool    { return m&ModMeta != 0 }
func (m Modifiers) HasControl() bool { return m&ModControl != 0 }

// Event is one reported mouse action.
type Event struct {
	Button    Button
	Release   bool
	Motion    bool
	Modifiers Modifiers
}

// Protocol selects which subset of mouse activity is reported: clicks
// only, clicks with drag, or every motion, per DECSET 9/1000/1001/1002/1003.
type Protocol int

const (
	ProtocolX10 Protocol = iota
	ProtocolNormal
	ProtocolHighlight
	ProtocolButtonEvent
	ProtocolAnyEvent
)

// Wire selects the byte encoding of the reported button code and
// coordinates, per DECSET 1005/1006/1015.
type Wire int

const (
	WireUTF8 Wire = iota
	WireSGR
	WireURxvt
)

// Encode renders ev at the 0-based screen position (x, y) as the escape
// sequence xterm would send for proto/wire. It reports false when this
// combination of protocol, button and release/motion state produces no
// report at all — xterm drops those silently rather than sending an empty
// sequence.
func Encode(proto Protocol, wire Wire, ev Event, x, y int) (string, bool) {
	switch proto {
	case ProtocolX10:
		return encodeX10(wire, ev, x, y)
	case ProtocolNormal:
		return encodeLevel(wire, ev, x, y, false)
	case ProtocolHighlight:
		// Highlight tracking additionally requires the application to
		// answer a locator request identifying the highlighted region;
		// xterm itself never completed this mode's report encoder either.
		return "", false
	case ProtocolButtonEvent:
		return encodeLevel(wire, ev, x, y, true)
	case ProtocolAnyEvent:
		return encodeAny(wire, ev, x, y)
	default:
		return "", false
	}
}

func encodeX10(wire Wire, ev Event, x, y int) (string, bool) {
	if ev.Release || ev.Motion || ev.Button == ButtonNone || ev.Button >= 4 {
		return "", false
	}
	code := uint32(ev.Button) - 1
	return formatWire(wire, code, x, y, false), true
}

func encodeLevel(wire Wire, ev Event, x, y int, reportMotion bool) (string, bool) {
	if !reportMotion && ev.Motion {
		return "", false
	}
	code, ok := baseCode(ev, false, wire == WireSGR)
	if !ok {
		return "", false
	}
	if reportMotion && ev.Motion {
		code |= 32
	}
	return formatWire(wire, code, x, y, ev.Release), true
}

func encodeAny(wire Wire, ev Event, x, y int) (string, bool) {
	code, ok := baseCode(ev, true, wire == WireSGR)
	if !ok {
		return "", false
	}
	if ev.Motion {
		code |= 32
	}
	return formatWire(wire, code, x, y, ev.Release), true
}

// baseCode computes the shared button/modifier code for the normal,
// button-event and any-event protocols. reportIdle makes a no-button event
// encode as a bare motion report (code 3) instead of being suppressed,
// which only the any-event protocol wants. SGR's trailing M/m byte already
// carries the release/press distinction, so it never folds release into
// the code for an ordinary button the way the other two wire formats do.
func baseCode(ev Event, reportIdle, sgr bool) (uint32, bool) {
	var code uint32
	switch {
	case ev.Button == ButtonNone:
		if !reportIdle {
			return 0, false
		}
		code = 3
	case ev.Button < 4:
		if !sgr && ev.Release {
			code = 3
		} else {
			code = uint32(ev.Button) - 1
		}
	case !ev.Release && ev.Button < 6:
		code = uint32(ev.Button) + 60
	default:
		return 0, false
	}

	if ev.Modifiers.HasShift() {
		code |= 4
	}
	if ev.Modifiers.HasMeta() {
		code |= 8
	}
	if ev.Modifiers.HasControl() {
		code |= 16
	}
	return code, true
}

func formatWire(wire Wire, code uint32, x, y int, release bool) string {
	switch wire {
	case WireUTF8:
		return formatUTF8(code, x, y)
	case WireSGR:
		suffix := byte('M')
		if release {
			suffix = 'm'
		}
		return fmt.Sprintf("\x1b[<%d;%d;%d%c", code, x+1, y+1, suffix)
	case WireURxvt:
		return fmt.Sprintf("\x1b[%d;%d;%dM", code+32, x+1, y+1)
	default:
		return ""
	}
}

// formatUTF8 renders the legacy wire format, where the button code and
// each coordinate are single values offset by 32 (so printable-range
// values land in the printable ASCII band) and then encoded as a Unicode
// codepoint rather than truncated to a byte — exactly as converting to a
// rune and back to a string does in Go — which is how this format extends
// coordinate range past the 223-column ceiling of a true single byte.
func formatUTF8(code uint32, x, y int) string {
	cx := clampCoord(x + 33)
	cy := clampCoord(y + 33)
	return "\x1b[M" + string(rune(code+32)) + string(rune(cx)) + string(rune(cy))
}

func clampCoord(v int) int {
	if v > 2047 {
		return 2047
	}
	return v
}
