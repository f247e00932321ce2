package hidcode

// Entry is one ASCII mapping: whether left-shift must be held, and the usage
// ID to send. A zero Key means the character has no keyboard equivalent.
type Entry struct {
	Shift bool
	Key   uint8
}

// ForASCII maps a 7-bit ASCII byte to its keycode on a US layout. Bytes
// outside 0..127 return the zero Entry.
func ForASCII(c byte) Entry {
	if c >= 128 {
		return Entry{}
	}
	return asciiTable[c]
}

// asciiTable follows the usual boot-keyboard ASCII mapping for a US layout.
// Control characters map to nothing except backspace, tab, newline and
// escape.
var asciiTable = [128]Entry{
	0x08: {false, KeyBackspace},
	0x09: {false, KeyTab},
	0x0A: {false, KeyEnter},
	0x1B: {false, KeyEscape},

	' ':  {false, KeySpace},
	'!':  {true, Key1},
	'"':  {true, KeyApostrophe},
	'#':  {true, Key3},
	'$':  {true, Key4},
	'%':  {true, Key5},
	'&':  {true, Key7},
	'\'': {false, KeyApostrophe},
	'(':  {true, Key9},
	')':  {true, Key0},
	'*':  {true, Key8},
	'+':  {true, KeyEqual},
	',':  {false, KeyComma},
	'-':  {false, KeyMinus},
	'.':  {false, KeyPeriod},
	'/':  {false, KeySlash},

	'0': {false, Key0},
	'1': {false, Key1},
	'2': {false, Key2},
	'3': {false, Key3},
	'4': {false, Key4},
	'5': {false, Key5},
	'6': {false, Key6},
	'7': {false, Key7},
	'8': {false, Key8},
	'9': {false, Key9},

	':': {true, KeySemicolon},
	';': {false, KeySemicolon},
	'<': {true, KeyComma},
	'=': {false, KeyEqual},
	'>': {true, KeyPeriod},
	'?': {true, KeySlash},
	'@': {true, Key2},

	'A': {true, KeyA},
	'B': {true, KeyB},
	'C': {true, KeyC},
	'D': {true, KeyD},
	'E': {true, KeyE},
	'F': {true, KeyF},
	'G': {true, KeyG},
	'H': {true, KeyH},
	'I': {true, KeyI},
	'J': {true, KeyJ},
	'K': {true, KeyK},
	'L': {true, KeyL},
	'M': {true, KeyM},
	'N': {true, KeyN},
	'O': {true, KeyO},
	'P': {true, KeyP},
	'Q': {true, KeyQ},
	'R': {true, KeyR},
	'S': {true, KeyS},
	'T': {true, KeyT},
	'U': {true, KeyU},
	'V': {true, KeyV},
	'W': {true, KeyW},
	'X': {true, KeyX},
	'Y': {true, KeyY},
	'Z': {true, KeyZ},

	'[':  {false, KeyLeftBracket},
	'\\': {false, KeyBackslash},
	']':  {false, KeyRightBracket},
	'^':  {true, Key6},
	'_':  {true, KeyMinus},
	'`':  {false, KeyGrave},

	'a': {false, KeyA},
	'b': {false, KeyB},
	'c': {false, KeyC},
	'd': {false, KeyD},
	'e': {false, KeyE},
	'f': {false, KeyF},
	'g': {false, KeyG},
	'h': {false, KeyH},
	'i': {false, KeyI},
	'j': {false, KeyJ},
	'k': {false, KeyK},
	'l': {false, KeyL},
	'm': {false, KeyM},
	'n': {false, KeyN},
	'o': {false, KeyO},
	'p': {false, KeyP},
	'q': {false, KeyQ},
	'r': {false, KeyR},
	's': {false, KeyS},
	't': {false, KeyT},
	'u': {false, KeyU},
	'v': {false, KeyV},
	'w': {false, KeyW},
	'x': {false, KeyX},
	'y': {false, KeyY},
	'z': {false, KeyZ},

	'{': {true, KeyLeftBracket},
	'|': {true, KeyBackslash},
	'}': {true, KeyRightBracket},
	'~': {true, KeyGrave},

	0x7F: {false, KeyDelete},
}
