package keyboard

import "testing"

func TestPrintable(t *testing.T) {
	cases := []struct {
		code Code
		want byte
	}{
		{'a', 'a'},
		{codeReturn, '\n'},
		{codeKpEnter, '\n'},
		{codeBksp, '\b'},
		{codeEscape, '.'},
		{codeF7, '.'},
		{codeEuro, '*'},
		{codeWinMod, 'W'},
		{codeWinKey, 'W'},
		{codePound, byte(codePound)},
	}
	for _, c := range cases {
		if got := Printable(c.code); got != c.want {
			t.Errorf("Printable(%d) = %q, want %q", c.code, got, c.want)
		}
	}
}
