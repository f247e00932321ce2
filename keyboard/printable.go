package keyboard

// Printable renders a decoded code as observable ASCII for the diagnostics
// side channel. It is advisory only and never feeds back into decoding.
// Backspace comes out as '\b' so the console writer can erase; control codes
// are elided as '.'; the currency and Win codes get stand-in glyphs.
func Printable(code Code) byte {
	switch {
	case code == codeReturn:
		return byte(code)
	case code == codeKpEnter:
		return '\n'
	case code == codeBksp:
		return '\b'
	case code < ' ':
		return '.'
	case code == codeEuro:
		return '*'
	case code == codeWinMod || code == codeWinKey:
		return 'W'
	}
	return byte(code)
}
