package keyboard

import "testing"

// The tables are the keyboard's ground truth; these checks audit their shape
// rather than re-stating every entry.

func TestControlKeycodesPlaceholders(t *testing.T) {
	for _, i := range []int{0, 8, 23} {
		if controlKeycodes[i] != 0 {
			t.Errorf("controlKeycodes[%d] = %#x, want placeholder 0", i, controlKeycodes[i])
		}
	}
	for i, k := range controlKeycodes {
		if i == 0 || i == 8 || i == 23 {
			continue
		}
		if k == 0 {
			t.Errorf("controlKeycodes[%d] missing", i)
		}
	}
}

func TestFingerTablesFullyPopulated(t *testing.T) {
	// Only index 0 may be empty in the plain-shift tables; the thumb tables
	// assign even index 0 (space / F1).
	for name, tbl := range map[string]*[16]Code{
		"basic":    &basicCodes,
		"numShift": &numShiftCodes,
		"eShift":   &eShiftCodes,
	} {
		for f := 1; f < 16; f++ {
			if tbl[f] == 0 {
				t.Errorf("%s[%d] empty", name, f)
			}
		}
	}
	for name, tbl := range map[string]*[16]Code{
		"thumb":  &thumbCodes,
		"number": &numberCodes,
		"eThumb": &eThumbCodes,
	} {
		for f := 0; f < 16; f++ {
			if tbl[f] == 0 {
				t.Errorf("%s[%d] empty", name, f)
			}
		}
	}
}

func TestCommandCodesAreAllControlCodes(t *testing.T) {
	for f, c := range commandCodes {
		if c >= ' ' {
			t.Errorf("command[%d] = %d is printable; expected a control code", f, c)
		}
	}
}

func TestCountermandCodesStayOutOfASCIIRange(t *testing.T) {
	// Countermand entries are control codes or the private Win codes, never
	// plain printable ASCII.
	for f, c := range countermandCodes {
		if c >= ' ' && c < 128 {
			t.Errorf("countermand[%d] = %d is printable ASCII", f, c)
		}
	}
}
