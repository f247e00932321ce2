package decode

import (
	"context"
	"testing"
	"time"

	"picowriter-go/bus"
	"picowriter-go/hidcode"
	"picowriter-go/keyboard"
	"picowriter-go/x/msgring"
)

// scriptedRead returns each sample once, then reads as all-up. Only the
// decode goroutine touches the index.
func scriptedRead(samples []uint8) func() uint8 {
	i := 0
	return func() uint8 {
		if i >= len(samples) {
			return 0
		}
		s := samples[i]
		i++
		return s
	}
}

func popWithin(t *testing.T, r *msgring.Ring, d time.Duration) uint32 {
	t.Helper()
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if w := r.Pop(); w != 0 {
			return w
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("timeout waiting for a key message")
	return 0
}

func TestCapsChordThenLetterYieldsShiftedKey(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := bus.NewBus(8)
	ring := msgring.New(8)
	ready := make(chan uint32, 1)

	// Caps chord pressed and released, then the 'a' finger set.
	samples := []uint8{0x20, 0, 0x0C, 0}

	go Run(ctx, b.NewConnection("decode"), Params{
		Poll:  time.Millisecond,
		Read:  scriptedRead(samples),
		Ring:  ring,
		Ready: ready,
	})

	select {
	case tok := <-ready:
		if tok != ReadyToken {
			t.Fatalf("ready token = %d, want %d", tok, ReadyToken)
		}
	case <-time.After(time.Second):
		t.Fatal("decode loop never signalled ready")
	}

	m := keyboard.MessageFromWord(popWithin(t, ring, time.Second))
	if m.Mods != hidcode.ModLeftShift || m.Keys[0] != hidcode.KeyA {
		t.Fatalf("got %+v, want shift+A", m)
	}

	// The transient caps was consumed, so the retained shift state is back
	// to all-off.
	sub := b.NewConnection("test").Subscribe(bus.T("kb", "shift"))
	select {
	case msg := <-sub.Channel():
		if s := msg.Payload.(keyboard.ShiftState); s != (keyboard.ShiftState{}) {
			t.Fatalf("retained shift state %+v, want zero", s)
		}
	case <-time.After(time.Second):
		t.Fatal("no retained shift state")
	}
}

func TestDecodePublishesCharForDiagnostics(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := bus.NewBus(8)
	ring := msgring.New(8)

	sub := b.NewConnection("test").Subscribe(bus.T("kb", "char"))

	go Run(ctx, b.NewConnection("decode"), Params{
		Poll: time.Millisecond,
		Read: scriptedRead([]uint8{0x0C, 0}), // 'a'
		Ring: ring,
	})

	select {
	case msg := <-sub.Channel():
		if c := msg.Payload.(keyboard.Code); c != 'a' {
			t.Fatalf("kb/char = %q, want 'a'", c)
		}
	case <-time.After(time.Second):
		t.Fatal("no kb/char message")
	}
}

func TestShiftOnlyChordQueuesNothing(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := bus.NewBus(8)
	ring := msgring.New(8)
	ready := make(chan uint32, 1)

	go Run(ctx, b.NewConnection("decode"), Params{
		Poll:  time.Millisecond,
		Read:  scriptedRead([]uint8{0x20, 0}), // caps toggle only
		Ring:  ring,
		Ready: ready,
	})

	<-ready
	time.Sleep(20 * time.Millisecond)
	if w := ring.Pop(); w != 0 {
		t.Fatalf("shift toggle queued a key message: %#x", w)
	}
}
