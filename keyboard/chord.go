// Package keyboard implements the chord decoding core for an 8-switch
// Microwriter / CyKey style keyboard.
//
// The 8 key switches are mapped into a byte as follows:
//
//	    ---------------------------------
//	msb | 7 | 6 | 5 | 4 | 3 | 2 | 1 | 0 | lsb
//	    ---------------------------------
//	    | R | N | C | T | I | M | R | P |
//	    | e | u | a | h | n | i | i | i |
//	    | p | m | p | u | d | d | n | n |
//	    | t |   | s | m | e |   | g | k |
//	    |   |   |   | b | x |   |   | y |
//	    ---------------------------------
//
// The low nibble is the finger-key set, the high nibble carries the Thumb,
// Caps, Num and Repeat modifier flags. A chord is the OR of every switch seen
// down between the first press and the moment all switches are released, not
// a momentary snapshot.
package keyboard

// Chord is one finalized switch combination.
type Chord uint8

const (
	ThumbBit  Chord = 0x10
	CapsBit   Chord = 0x20
	NumBit    Chord = 0x40
	RepeatBit Chord = 0x80 // reserved; masked in but never matched

	ModifierMask Chord = 0xF0
	FingerMask   Chord = 0x0F
)

// Fingers returns the low-nibble finger-key set as a table index.
func (c Chord) Fingers() uint8 { return uint8(c & FingerMask) }

// Modifiers returns the high-nibble modifier flags.
func (c Chord) Modifiers() Chord { return c & ModifierMask }

// Accumulator builds a Chord from successive switch samples. Samples are
// "pressed" masks: bit set means the switch is down (active-low inversion has
// already happened at the pin read).
type Accumulator struct {
	sum uint8
}

// Sample folds one poll reading into the accumulator. When the reading shows
// all switches up and something had been pressed since the last emit, the
// accumulated chord is returned with ok=true and the accumulator resets.
func (a *Accumulator) Sample(pressed uint8) (Chord, bool) {
	if pressed != 0 {
		a.sum |= pressed
		return 0, false
	}
	if a.sum == 0 {
		return 0, false
	}
	c := Chord(a.sum)
	a.sum = 0
	return c, true
}

// Pending reports whether a chord is currently being accumulated.
func (a *Accumulator) Pending() bool { return a.sum != 0 }
