// Package hidcode holds the USB HID keyboard usage IDs and modifier masks
// used when building keyboard reports, plus the ASCII to keycode table for a
// standard US layout.
package hidcode

// Modifier bit masks, as they appear in byte 0 of a boot keyboard report.
const (
	ModLeftCtrl   = 0x01
	ModLeftShift  = 0x02
	ModLeftAlt    = 0x04
	ModLeftGUI    = 0x08
	ModRightCtrl  = 0x10
	ModRightShift = 0x20
	ModRightAlt   = 0x40
	ModRightGUI   = 0x80
)

// Keyboard usage IDs (HID usage page 0x07). Only the keys this firmware can
// produce are named here.
const (
	KeyA = 0x04 + iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0
)

const (
	KeyEnter        = 0x28
	KeyEscape       = 0x29
	KeyBackspace    = 0x2A
	KeyTab          = 0x2B
	KeySpace        = 0x2C
	KeyMinus        = 0x2D
	KeyEqual        = 0x2E
	KeyLeftBracket  = 0x2F
	KeyRightBracket = 0x30
	KeyBackslash    = 0x31
	KeySemicolon    = 0x33
	KeyApostrophe   = 0x34
	KeyGrave        = 0x35
	KeyComma        = 0x36
	KeyPeriod       = 0x37
	KeySlash        = 0x38

	KeyF1  = 0x3A
	KeyF2  = 0x3B
	KeyF3  = 0x3C
	KeyF4  = 0x3D
	KeyF5  = 0x3E
	KeyF6  = 0x3F
	KeyF7  = 0x40
	KeyF8  = 0x41
	KeyF9  = 0x42
	KeyF10 = 0x43
	KeyF11 = 0x44
	KeyF12 = 0x45

	KeyInsert     = 0x49
	KeyHome       = 0x4A
	KeyPageUp     = 0x4B
	KeyDelete     = 0x4C
	KeyEnd        = 0x4D
	KeyPageDown   = 0x4E
	KeyArrowRight = 0x4F
	KeyArrowLeft  = 0x50
	KeyArrowDown  = 0x51
	KeyArrowUp    = 0x52

	KeyKeypadEnter = 0x58

	KeyControlLeft = 0xE0
	KeyShiftLeft   = 0xE1
	KeyAltLeft     = 0xE2
	KeyGUILeft     = 0xE3
	KeyAltRight    = 0xE6
)
