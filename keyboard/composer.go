package keyboard

import "picowriter-go/hidcode"

// KeyMessage is one outgoing key-down: a modifier mask and up to three
// keycodes. The zero value is "no event" and doubles as the key-up sentinel
// on the reporting side.
type KeyMessage struct {
	Mods uint8
	Keys [3]uint8
}

// Word packs the message into one 32-bit transfer unit for the handoff ring.
func (m KeyMessage) Word() uint32 {
	return uint32(m.Mods)<<24 | uint32(m.Keys[0])<<16 | uint32(m.Keys[1])<<8 | uint32(m.Keys[2])
}

// MessageFromWord is the inverse of Word.
func MessageFromWord(w uint32) KeyMessage {
	return KeyMessage{
		Mods: uint8(w >> 24),
		Keys: [3]uint8{uint8(w >> 16), uint8(w >> 8), uint8(w)},
	}
}

// Composer turns output codes into key messages. It owns the pending
// two-stage modifier: a Ctrl, Alt, Alt+Ctrl or Win chord arms the modifier
// and sends nothing; the next composed key carries it.
type Composer struct {
	pending uint8
}

// pendingAltCtrl marks an armed Alt+Ctrl pair. It shares the value of the
// Alt+Ctrl control code, which has no keycode of its own, so it cannot
// collide with the 0xE0-range modifier keycodes also stored in pending.
const pendingAltCtrl = uint8(codeAltCtrl)

func NewComposer() *Composer { return &Composer{} }

// Armed reports whether a two-stage modifier is waiting for its key.
func (c *Composer) Armed() bool { return c.pending != 0 }

// Compose builds the key message for one output code. ok is false when
// nothing should be queued this cycle: the code armed a pending modifier, or
// it resolved to no keycode.
func (c *Composer) Compose(code Code) (KeyMessage, bool) {
	var mods, keycode, start uint8

	switch {
	case code < 32:
		keycode = controlKeycodes[code]
		if keycode == hidcode.KeyControlLeft || keycode == hidcode.KeyAltLeft || code == codeAltCtrl {
			if keycode != 0 {
				start = keycode
				keycode = 0
			} else {
				start = pendingAltCtrl
			}
		}
	case code < 128:
		e := hidcode.ForASCII(byte(code))
		if e.Shift {
			mods = hidcode.ModLeftShift
		}
		keycode = e.Key
	case code == codeEuro:
		// AltGr+4 produces € on UK layouts.
		mods = hidcode.ModRightAlt
		keycode = hidcode.Key4
	case code == codePound:
		// Shift-3 is £ on UK layouts.
		mods = hidcode.ModLeftShift
		keycode = hidcode.Key3
	case code == codeWinMod:
		start = hidcode.KeyGUILeft
	case code == codeWinKey:
		mods = hidcode.ModLeftGUI
		keycode = hidcode.KeyGUILeft
	}

	if start != 0 {
		// Arm (or re-arm) the pending modifier; nothing is sent this cycle.
		c.pending = start
		return KeyMessage{}, false
	}

	var msg KeyMessage
	if p := c.pending; p != 0 {
		// Merge the armed modifier with this key. The modifier's own keycode
		// is held alongside the new key so the host sees a combination.
		c.pending = 0
		switch p {
		case pendingAltCtrl:
			msg = KeyMessage{
				Mods: hidcode.ModLeftCtrl | hidcode.ModLeftAlt,
				Keys: [3]uint8{hidcode.KeyControlLeft, hidcode.KeyAltLeft, keycode},
			}
		case hidcode.KeyControlLeft:
			msg = KeyMessage{
				Mods: hidcode.ModLeftCtrl,
				Keys: [3]uint8{hidcode.KeyControlLeft, keycode, 0},
			}
		case hidcode.KeyAltLeft:
			msg = KeyMessage{
				Mods: hidcode.ModLeftAlt,
				Keys: [3]uint8{hidcode.KeyAltLeft, keycode, 0},
			}
		case hidcode.KeyGUILeft:
			msg = KeyMessage{
				Mods: hidcode.ModLeftGUI,
				Keys: [3]uint8{hidcode.KeyGUILeft, keycode, 0},
			}
		}
	} else {
		msg = KeyMessage{Mods: mods, Keys: [3]uint8{keycode, 0, 0}}
	}

	if keycode == 0 {
		// Nothing to send. A pending modifier consumed above stays
		// consumed.
		return KeyMessage{}, false
	}
	return msg, true
}
