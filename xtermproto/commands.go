package xtermproto

// command is one entry of the static table the graph is built from: a
// pattern string where KindSingleNumeric/KindMultiNumeric/KindSingleText/
// KindSingleChar bytes mark a variable capture (consuming the following
// byte(s) of the pattern as separator/terminator), and every other byte is
// matched literally.
type command struct {
	sequence string
	id       HandlerID
	name     string
}

// commandTable is the direct transcription of the xterm command graph,
// covering 7-bit ESC-introduced sequences, 8-bit (and ESC-promoted 7-bit)
// CSI sequences, and DCS/OSC/PM/APC string sequences, per spec §6.2.
var commandTable = []command{
	{"\x1b F", HDisable8BitControls, "cmdDisable8BitControls"},
	{"\x1b G", HEnable8BitControls, "cmdEnable8BitControls"},
	{"\x1b#3", HDECDoubleHeightTop, "cmdDECDoubleHeightTop"},
	{"\x1b#4", HDECDoubleHeightBottom, "cmdDECDoubleHeightBottom"},
	{"\x1b#5", HDECSingleWidth, "cmdDECSingleWidth"},
	{"\x1b#6", HDECDoubleWidth, "cmdDECDoubleWidth"},
	{"\x1b#8", HDECScreenAlignmentTest, "cmdDECScreenAlignmentTest"},
	{"\x1b%\xfc", HIgnored, "cmdIgnored"},
	{"\x1b(\xfc", HDesignateCharset94, "cmdDesignateCharset94"},
	{"\x1b)\xfc", HDesignateCharset94, "cmdDesignateCharset94"},
	{"\x1b*\xfc", HDesignateCharset94, "cmdDesignateCharset94"},
	{"\x1b+\xfc", HDesignateCharset94, "cmdDesignateCharset94"},
	{"\x1b-\xfc", HDesignateCharset96, "cmdDesignateCharset96"},
	{"\x1b.\xfc", HDesignateCharset96, "cmdDesignateCharset96"},
	{"\x1b/\xfc", HDesignateCharset96, "cmdDesignateCharset96"},
	{"\x1b7", HSaveCursor, "cmdSaveCursor"},
	{"\x1b8", HRestoreCursor, "cmdRestoreCursor"},
	{"\x1b=", HApplicationKeypad, "cmdApplicationKeypad"},
	{"\x1b>", HNormalKeypad, "cmdNormalKeypad"},
	{"\x1bc", HResetEmulator, "cmdResetEmulator"},
	{"\x1bn", HInvokeCharset, "cmdInvokeCharset"},
	{"\x1bo", HInvokeCharset, "cmdInvokeCharset"},
	{"\x1b|", HInvokeCharset, "cmdInvokeCharset"},
	{"\x1b}", HInvokeCharset, "cmdInvokeCharset"},
	{"\x1b~", HInvokeCharset, "cmdInvokeCharset"},

	{"\x9b\xff@", HInsertCharacters, "cmdInsertCharacters"},
	{"\x9b\xffA", HCursorUp, "cmdCursorUp"},
	{"\x9b\xffB", HCursorDown, "cmdCursorDown"},
	{"\x9b\xffC", HCursorForward, "cmdCursorForward"},
	{"\x9b\xffD", HCursorBackward, "cmdCursorBackward"},
	{"\x9b\xffE", HCursorNextLine, "cmdCursorNextLine"},
	{"\x9b\xffF", HCursorPreviousLine, "cmdCursorPreviousLine"},
	{"\x9b\xffG", HCursorHorizontalAbsolute, "cmdCursorHorizontalAbsolute"},
	{"\x9b\xfe;H", HCursorPosition, "cmdCursorPosition"},
	{"\x9b\xffI", HTabForward, "cmdTabForward"},
	{"\x9b\xffJ", HEraseInDisplay, "cmdEraseInDisplay"},
	{"\x9b?\xffJ", HSelectiveEraseInDisplay, "cmdSelectiveEraseInDisplay"},
	{"\x9b\xffK", HEraseInLine, "cmdEraseInLine"},
	{"\x9b?\xffK", HSelectiveEraseInLine, "cmdSelectiveEraseInLine"},
	{"\x9b\xffL", HInsertLines, "cmdInsertLines"},
	{"\x9b\xffM", HDeleteLines, "cmdDeleteLines"},
	{"\x9b\xffP", HDeleteCharacters, "cmdDeleteCharacters"},
	{"\x9b\xffS", HScrollUp, "cmdScrollUp"},
	{"\x9b\xffT", HScrollDown, "cmdScrollDown"},
	{"\x9b>\xfe;T", HResetTitleModes, "cmdResetTitleModes"},
	{"\x9b\xffX", HEraseCharacters, "cmdEraseCharacters"},
	{"\x9b\xffZ", HTabBackward, "cmdTabBackward"},
	{"\x9b\xff`", HCursorHorizontalAbsolute, "cmdCursorHorizontalAbsolute"},
	{"\x9b\xffa", HCursorForward, "cmdCursorForward"},
	{"\x9b\xffb", HRepeatCharacter, "cmdRepeatCharacter"},
	{"\x9b\xffc", HSendDeviceAttributes, "cmdSendDeviceAttributes"},
	{"\x9b>\xffc", HSendDeviceAttributes2, "cmdSendDeviceAttributes2"},
	{"\x9b\xffd", HCursorVerticalAbsolute, "cmdCursorVerticalAbsolute"},
	{"\x9b\xffe", HCursorDown, "cmdCursorDown"},
	{"\x9b\xfe;f", HCursorPosition, "cmdCursorPosition"},
	{"\x9b\xffg", HTabClear, "cmdTabClear"},
	{"\x9b\xfe;h", HSetMode, "cmdSetMode"},
	{"\x9b?\xfe;h", HDECPrivateModeSet, "cmdDECPrivateModeSet"},
	{"\x9b\xfe;l", HResetMode, "cmdResetMode"},
	{"\x9b?\xfe;l", HDECPrivateModeReset, "cmdDECPrivateModeReset"},
	{"\x9b\xfe;m", HCharacterAttributes, "cmdCharacterAttributes"},
	{"\x9b\xffn", HDeviceStatusReport, "cmdDeviceStatusReport"},
	{"\x9b!p", HResetEmulator, "cmdResetEmulator"},
	{"\x9b\xff$p", HModeRequest, "cmdModeRequest"},
	{"\x9b?\xff$p", HDECPrivateModeRequest, "cmdDECPrivateModeRequest"},
	{"\x9b\xfe;\"p", HIgnored, "cmdIgnored"},
	{"\x9b\xff\"q", HProtectionAttribute, "cmdProtectionAttribute"},
	{"\x9b\xff q", HSetCursorStyle, "cmdSetCursorStyle"},
	{"\x9b\xfe;r", HSetTopBottomMargins, "cmdSetTopBottomMargins"},
	{"\x9b?\xfe;r", HDECPrivateModeRestore, "cmdDECPrivateModeRestore"},
	{"\x9b\xfe;s", HSetLeftRightMargins, "cmdSetLeftRightMargins"},
	{"\x9b?\xfe;s", HDECPrivateModeSave, "cmdDECPrivateModeSave"},
	{"\x9b\xfe;t", HWindowOps, "cmdWindowOps"},
	{"\x9b>\xfe;t", HSetTitleModes, "cmdSetTitleModes"},
	{"\x9bu", HRestoreCursor, "cmdRestoreCursor"},

	{"\x90+p\xfd\x9c", HIgnored, "cmdIgnored"},
	{"\x90+q\xfd\x9c", HIgnored, "cmdIgnored"},
	{"\x90\xff;\xff|\xfd\x9c", HIgnored, "cmdIgnored"},
	{"\x90$q\xfd\x9c", HDCSRequestStatusString, "dcsRequestStatusString"},
	{"\x9d\xff\x07", HOSCMain, "oscMain"},
	{"\x9d\xff\x9c", HOSCMain, "oscMain"},
	{"\x9d\xff;\xfd\x07", HOSCMain, "oscMain"},
	{"\x9d\xff;\xfd\x9c", HOSCMain, "oscMain"},
	{"\x9e\xfd\x9c", HIgnored, "cmdIgnored"},
	{"\x9f\xfd\x9c", HIgnored, "cmdIgnored"},
}
