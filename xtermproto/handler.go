package xtermproto

// HandlerID names one dispatch target in the command graph. The machine
// never holds a pointer-to-method the way the original did (DESIGN NOTES,
// spec §9); it reaches a leaf node carrying a HandlerID and hands that ID
// to Handler.Dispatch, which is free to implement it as a big switch.
type HandlerID int

const (
	HNone HandlerID = iota

	// Control/print fallback, reached for every raw control code or
	// printable codepoint that isn't the start of a recognized sequence.
	HProcess

	HDisable8BitControls
	HEnable8BitControls
	HDECDoubleHeightTop
	HDECDoubleHeightBottom
	HDECSingleWidth
	HDECDoubleWidth
	HDECScreenAlignmentTest
	HDesignateCharset94
	HDesignateCharset96
	HSaveCursor
	HRestoreCursor
	HApplicationKeypad
	HNormalKeypad
	HResetEmulator
	HInvokeCharset

	HInsertCharacters
	HCursorUp
	HCursorDown
	HCursorForward
	HCursorBackward
	HCursorNextLine
	HCursorPreviousLine
	HCursorHorizontalAbsolute
	HCursorPosition
	HTabForward
	HEraseInDisplay
	HSelectiveEraseInDisplay
	HEraseInLine
	HSelectiveEraseInLine
	HInsertLines
	HDeleteLines
	HDeleteCharacters
	HScrollUp
	HScrollDown
	HResetTitleModes
	HSetTitleModes
	HEraseCharacters
	HTabBackward
	HRepeatCharacter
	HSendDeviceAttributes
	HSendDeviceAttributes2
	HCursorVerticalAbsolute
	HTabClear
	HSetMode
	HDECPrivateModeSet
	HDECPrivateModeSave
	HResetMode
	HDECPrivateModeReset
	HDECPrivateModeRestore
	HModeRequest
	HDECPrivateModeRequest
	HCharacterAttributes
	HDeviceStatusReport
	HSetCursorStyle
	HProtectionAttribute
	HSetTopBottomMargins
	HSetLeftRightMargins
	HWindowOps
	HIgnored

	HDCSRequestStatusString
	HOSCMain

	handlerIDCount
)

// Handler is implemented by the emulator and invoked once the machine
// reaches a leaf node. Dispatch is expected to read its parameters back out
// of the Machine via Var/VarList/VarCount.
type Handler interface {
	Dispatch(id HandlerID, m *Machine)
	// OnError is called when no edge in the graph can consume the current
	// codepoint; the sequence in progress has already been abandoned by
	// the time this is called, per spec §7.
	OnError(msg string, m *Machine)
}
