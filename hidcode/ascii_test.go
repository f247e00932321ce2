package hidcode

import "testing"

func TestForASCIISpotChecks(t *testing.T) {
	cases := []struct {
		c     byte
		shift bool
		key   uint8
	}{
		{'a', false, KeyA},
		{'z', false, KeyZ},
		{'A', true, KeyA},
		{'Z', true, KeyZ},
		{'0', false, Key0},
		{'9', false, Key9},
		{'!', true, Key1},
		{'@', true, Key2},
		{'#', true, Key3},
		{' ', false, KeySpace},
		{'\n', false, KeyEnter},
		{'\t', false, KeyTab},
		{0x08, false, KeyBackspace},
		{0x1B, false, KeyEscape},
		{'\'', false, KeyApostrophe},
		{'"', true, KeyApostrophe},
		{',', false, KeyComma},
		{'<', true, KeyComma},
		{'{', true, KeyLeftBracket},
		{'~', true, KeyGrave},
		{'_', true, KeyMinus},
		{0x7F, false, KeyDelete},
	}
	for _, c := range cases {
		e := ForASCII(c.c)
		if e.Shift != c.shift || e.Key != c.key {
			t.Errorf("ForASCII(%q) = %+v, want {%v %#x}", c.c, e, c.shift, c.key)
		}
	}
}

func TestForASCIILetterCasePairs(t *testing.T) {
	for c := byte('a'); c <= 'z'; c++ {
		lo := ForASCII(c)
		up := ForASCII(c - 32)
		if lo.Key != up.Key {
			t.Errorf("%q and %q map to different keys", c, c-32)
		}
		if lo.Shift || !up.Shift {
			t.Errorf("%q shift flags wrong: %v/%v", c, lo.Shift, up.Shift)
		}
	}
}

func TestForASCIIOutOfRange(t *testing.T) {
	for _, c := range []byte{128, 163, 255} {
		if e := ForASCII(c); e != (Entry{}) {
			t.Errorf("ForASCII(%d) = %+v, want zero", c, e)
		}
	}
	// Most control characters have no key.
	if e := ForASCII(0x01); e != (Entry{}) {
		t.Errorf("ForASCII(0x01) = %+v, want zero", e)
	}
}
