package keyboard

import "testing"

func TestAccumulatorIdle(t *testing.T) {
	var a Accumulator
	for i := 0; i < 5; i++ {
		if c, ok := a.Sample(0); ok || c != 0 {
			t.Fatalf("idle sample %d emitted (%#x,%v)", i, c, ok)
		}
	}
}

func TestAccumulatorRollingPress(t *testing.T) {
	var a Accumulator

	// Staggered press: thumb first, then a finger joins, then only the
	// finger remains. The chord is the union.
	for _, s := range []uint8{0x10, 0x18, 0x08} {
		if _, ok := a.Sample(s); ok {
			t.Fatalf("emitted while a switch was still down (sample %#x)", s)
		}
	}
	if !a.Pending() {
		t.Fatalf("accumulator lost the partial chord")
	}

	c, ok := a.Sample(0)
	if !ok || c != Chord(0x18) {
		t.Fatalf("got (%#x,%v), want (0x18,true)", c, ok)
	}
	if a.Pending() {
		t.Fatalf("accumulator not reset after emit")
	}
}

func TestAccumulatorEmitsOncePerCycle(t *testing.T) {
	var a Accumulator
	a.Sample(0x03)
	if _, ok := a.Sample(0); !ok {
		t.Fatalf("no emit on release")
	}
	if _, ok := a.Sample(0); ok {
		t.Fatalf("second emit without a new press")
	}
}

func TestChordSplit(t *testing.T) {
	c := Chord(0xA5)
	if c.Fingers() != 0x05 {
		t.Fatalf("fingers: got %#x", c.Fingers())
	}
	if c.Modifiers() != Chord(0xA0) {
		t.Fatalf("modifiers: got %#x", c.Modifiers())
	}
}
