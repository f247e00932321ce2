package keyboard

// ShiftLevel is one of the three persistent shift states.
type ShiftLevel uint8

const (
	ShiftOff ShiftLevel = iota
	ShiftTransient
	ShiftLocked
)

// cycle advances a shift through Off -> Transient -> Locked -> Off.
func cycle(l ShiftLevel) ShiftLevel {
	if l >= ShiftLocked {
		return ShiftOff
	}
	return l + 1
}

// ShiftState is a snapshot of the decoder's persistent shifts, published for
// observation (indicator LED, diagnostics). It never feeds back into decode.
type ShiftState struct {
	Caps    ShiftLevel
	NumLock ShiftLevel
	ShiftE  ShiftLevel // never Locked
}

// Decoder turns finalized chords into output codes. It owns the persistent
// shift state, so independent instances decode independently.
type Decoder struct {
	caps    ShiftLevel
	numLock ShiftLevel
	shiftE  ShiftLevel
}

func NewDecoder() *Decoder { return &Decoder{} }

// Shifts returns a snapshot of the current shift state.
func (d *Decoder) Shifts() ShiftState {
	return ShiftState{Caps: d.caps, NumLock: d.numLock, ShiftE: d.shiftE}
}

// Reset clears every shift, as the Thumb+Caps chord does.
func (d *Decoder) Reset() {
	d.caps = ShiftOff
	d.numLock = ShiftOff
	d.shiftE = ShiftOff
}

// Decode maps a chord to an output code, mutating shift state as a side
// effect. ok is false when the chord produces no output (shift toggles,
// unassigned combinations, the all-zero chord). The branches are ordered;
// a chord is handled by the first one it matches.
func (d *Decoder) Decode(c Chord) (Code, bool) {
	fingers := c.Fingers()
	mods := c.Modifiers()

	switch {
	case mods == 0 && fingers != 0:
		// Plain finger chord: shift priority is eShift > NumLock > Caps.
		if d.shiftE != ShiftOff {
			return d.emitEShift(eShiftCodes[fingers])
		}
		if d.numLock != ShiftOff {
			return d.emitNumLock(numShiftCodes[fingers])
		}
		if d.caps != ShiftOff {
			return d.emitCaps(upper(basicCodes[fingers]))
		}
		return emit(basicCodes[fingers])

	case mods == ThumbBit:
		// Thumb chord, same shift priority. Thumb alone is space.
		if d.shiftE != ShiftOff {
			return d.emitEShift(eThumbCodes[fingers])
		}
		if d.numLock != ShiftOff {
			return d.emitNumLock(numberCodes[fingers])
		}
		if d.caps != ShiftOff {
			return d.emitCaps(upper(thumbCodes[fingers]))
		}
		return emit(thumbCodes[fingers])

	case mods == NumBit:
		// An eShift followed by a Num chord is a countermand; the pending
		// eShift is spent even when the countermand slot is empty.
		if d.shiftE != ShiftOff {
			d.shiftE = ShiftOff
			return emit(countermandCodes[fingers])
		}
		return emit(numberCodes[fingers])

	case c == CapsBit:
		// Caps alone: Off -> Transient -> Locked -> Off. No output.
		d.caps = cycle(d.caps)
		return 0, false

	case mods == CapsBit:
		// Caps held with finger keys: command codes, independent of the
		// Caps shift state.
		return emit(commandCodes[fingers])

	case c == ThumbBit|NumBit:
		// NumLock toggle, same cycle as Caps. No output.
		d.numLock = cycle(d.numLock)
		return 0, false

	case c == ThumbBit|CapsBit:
		// Global shift reset.
		d.Reset()
		return 0, false

	case c == NumBit|CapsBit:
		// Arm a one-shot eShift.
		d.shiftE = ShiftTransient
		return 0, false

	case mods == NumBit|CapsBit:
		return emit(countermandCodes[fingers])
	}

	// Unassigned combination (including anything with the Repeat bit set).
	return 0, false
}

// emit wraps a table result; a zero entry means no output.
func emit(code Code) (Code, bool) { return code, code != 0 }

// emitEShift consumes the one-shot eShift when the lookup produced output.
func (d *Decoder) emitEShift(code Code) (Code, bool) {
	if code != 0 {
		d.shiftE = ShiftOff
	}
	return code, code != 0
}

// emitNumLock consumes a transient NumLock; a locked one persists.
func (d *Decoder) emitNumLock(code Code) (Code, bool) {
	if code != 0 && d.numLock == ShiftTransient {
		d.numLock = ShiftOff
	}
	return code, code != 0
}

// emitCaps consumes a transient Caps; a locked one persists.
func (d *Decoder) emitCaps(code Code) (Code, bool) {
	if code != 0 && d.caps == ShiftTransient {
		d.caps = ShiftOff
	}
	return code, code != 0
}

// upper shifts alphabetic codes to upper case; everything else passes
// through.
func upper(code Code) Code {
	if code >= 'a' && code <= 'z' {
		return code - ('a' - 'A')
	}
	return code
}
