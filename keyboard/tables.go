package keyboard

import "picowriter-go/hidcode"

// Code is a decoded output: either a printable character (32..255, including
// the legacy 8-bit codes below) or a private control code in 1..31. Zero
// means "nothing".
type Code uint8

// Private control codes (1..31). The gaps at 8 and 23 are deliberate: 8 is
// unused and 23 is the Alt+Ctrl two-stage marker with no keycode of its own.
const (
	codeDelete   Code = 1
	codeUp       Code = 2
	codeForward  Code = 3 // cursor right
	codePageUp   Code = 4
	codeInsert   Code = 5
	codeCtrl     Code = 6 // left-ctrl, starts a two-stage modifier
	codeKpEnter  Code = 7
	codeTab      Code = '\t' // 9
	codeReturn   Code = '\n' // 10
	codeF1       Code = 11
	codeF2       Code = 12
	codeF3       Code = 13
	codeF4       Code = 14
	codeF5       Code = 15
	codeF6       Code = 16
	codeF7       Code = 17
	codeF8       Code = 18
	codeF9       Code = 19
	codeF10      Code = 20
	codeF11      Code = 21
	codeF12      Code = 22
	codeAltCtrl  Code = 23 // Alt+Ctrl+<next key> marker
	codeHome     Code = 24
	codeBack     Code = 25 // cursor left
	codeEnd      Code = 26
	codeDown     Code = 27
	codePageDown Code = 28
	codeEscape   Code = 29
	codeBksp     Code = 30
	codeAlt      Code = 31 // left-alt, starts a two-stage modifier
)

// Legacy 8-bit printable codes (Windows-1252 positions for the currency
// symbols, private positions for the Win key forms).
const (
	codeEuro   Code = 128 // € (1252)
	codeWinMod Code = 129 // Win key armed as a modifier
	codeWinKey Code = 130 // Win key sent as a key
	codePound  Code = 163 // £ (1252)
)

// controlKeycodes converts a private control code (1..31) into a USB HID
// usage ID. Entries 0, 8 and 23 are placeholders.
var controlKeycodes = [32]uint8{
	0,
	hidcode.KeyDelete,
	hidcode.KeyArrowUp,
	hidcode.KeyArrowRight,
	hidcode.KeyPageUp,
	hidcode.KeyInsert,
	hidcode.KeyControlLeft, // can be a modifier
	hidcode.KeyKeypadEnter,
	0, // 8 - unused
	hidcode.KeyTab,
	hidcode.KeyEnter,
	hidcode.KeyF1,
	hidcode.KeyF2,
	hidcode.KeyF3,
	hidcode.KeyF4,
	hidcode.KeyF5,
	hidcode.KeyF6,
	hidcode.KeyF7,
	hidcode.KeyF8,
	hidcode.KeyF9,
	hidcode.KeyF10,
	hidcode.KeyF11,
	hidcode.KeyF12,
	0, // 23 - Alt+Ctrl two-stage marker
	hidcode.KeyHome,
	hidcode.KeyArrowLeft,
	hidcode.KeyEnd,
	hidcode.KeyArrowDown,
	hidcode.KeyPageDown,
	hidcode.KeyEscape,
	hidcode.KeyBackspace,
	hidcode.KeyAltLeft, // can be a modifier
}

// The finger-key lookup tables, indexed by the chord's low nibble. One table
// per shift selection; precedence between them lives in Decoder.Decode.

// No modifier active.
var basicCodes = [16]Code{
	0, 'u', 's', 'g',
	'o', 'q', 'n', 'b',
	'e', 'v', 't', ',',
	'a', codeReturn, '.', 'm',
}

// Thumb modifier. Index 0 (thumb alone) is space.
var thumbCodes = [16]Code{
	' ', 'h', 'k', 'j',
	'c', 'z', 'y', 'x',
	'i', 'l', 'r', 'w',
	'd', '\'', 'f', 'p',
}

// Num modifier.
var numberCodes = [16]Code{
	'1', '6', '$', '7',
	'0', codeKpEnter, '#', '8',
	'2', codePound, '+', '9',
	'3', '-', '4', '5',
}

// Num shift applied to plain finger chords.
var numShiftCodes = [16]Code{
	0, '_', '[', '>',
	'(', '/', '-', '{',
	'=', '!', codeTab, ',',
	'+', codeReturn, '.', '*',
}

// eShift applied to plain finger chords.
var eShiftCodes = [16]Code{
	0, '^', ']', '<',
	')', '\\', '~', '}',
	codeF11, '|', codeF12, ';',
	'@', codeReturn, ':', codeAltCtrl,
}

// eShift applied to thumb chords. Index 0 (thumb alone) is F1.
var eThumbCodes = [16]Code{
	codeF1, codeF6, '&', codeF7,
	codeF10, '%', '?', codeF8,
	codeF2, codeEuro, '-', codeF9,
	codeF3, '"', codeF4, codeF5,
}

// Command codes: Caps modifier held with finger keys.
var commandCodes = [16]Code{
	0, codeHome, codeBack, codeEnd,
	codeKpEnter, codeDown, codePageDown, codeEscape,
	codeBksp, codeAlt, codeTab, codeDelete,
	codeBksp, codeUp, codeForward, codePageUp,
}

// Countermand codes: Num+Caps with finger keys, or an eShift followed by a
// Num chord.
var countermandCodes = [16]Code{
	0, 0, 0, codeHome,
	0, codeUp, codePageUp, codeWinKey,
	codeInsert, codeCtrl, 0, codeWinMod,
	codeDelete, 0, codeBack, 0,
}
