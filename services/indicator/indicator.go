// Package indicator drives the status LED. The blink pattern follows the
// USB transport state (published retained on usb/state); a locked Caps or
// NumLock shift holds the LED solid instead so the lock is visible at a
// glance.
package indicator

import (
	"context"
	"time"

	"picowriter-go/bus"
	"picowriter-go/keyboard"
)

var (
	topicUSB   = bus.Topic{"usb", "state"}
	topicShift = bus.Topic{"kb", "shift"}
)

// LED is a one-bit status lamp. Backed by a plain GPIO or a WS2812 pixel on
// boards that have one instead.
type LED interface {
	Set(on bool)
}

// Pattern is two on/off pairs in milliseconds.
type Pattern [4]uint16

var (
	// SHORT, long, SHORT, long
	PatternDetached = Pattern{80, 500, 80, 500}
	// SHORT, short, SHORT, long
	PatternMounted = Pattern{80, 80, 80, 1900}
	// SHORT, very long, SHORT, very long
	PatternSuspended = Pattern{80, 1700, 80, 1700}
)

func patternFor(state string) Pattern {
	switch state {
	case "mounted":
		return PatternMounted
	case "suspended":
		return PatternSuspended
	default:
		return PatternDetached
	}
}

// Stepper walks a pattern: even phases are "on", each phase lasts its
// pattern entry.
type Stepper struct {
	p     Pattern
	phase uint8
}

func NewStepper(p Pattern) *Stepper { return &Stepper{p: p} }

// SetPattern switches patterns, restarting the phase so the first flash of
// the new pattern is seen whole.
func (s *Stepper) SetPattern(p Pattern) {
	if p == s.p {
		return
	}
	s.p = p
	s.phase = 0
}

// Step returns the LED level for the current phase and how long to hold it,
// then advances.
func (s *Stepper) Step() (on bool, d time.Duration) {
	on = s.phase%2 == 0
	d = time.Duration(s.p[s.phase&3]) * time.Millisecond
	s.phase = (s.phase + 1) & 3
	return on, d
}

// Params configures the indicator loop.
type Params struct {
	LED LED
}

// Run drives the LED until ctx is cancelled.
func Run(ctx context.Context, conn *bus.Connection, p Params) {
	usbSub := conn.Subscribe(topicUSB)
	defer usbSub.Unsubscribe()
	shiftSub := conn.Subscribe(topicShift)
	defer shiftSub.Unsubscribe()

	st := NewStepper(PatternDetached)
	locked := false

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-usbSub.Channel():
			if s, ok := msg.Payload.(string); ok {
				st.SetPattern(patternFor(s))
			}
		case msg := <-shiftSub.Channel():
			if s, ok := msg.Payload.(keyboard.ShiftState); ok {
				locked = s.Caps == keyboard.ShiftLocked || s.NumLock == keyboard.ShiftLocked
			}
		case <-timer.C:
			on, d := st.Step()
			if locked {
				on = true // lock override, blink cadence unchanged
			}
			p.LED.Set(on)
			timer.Reset(d)
		}
	}
}
