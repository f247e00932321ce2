// Package decode runs the decoding context: the fixed-interval switch scan,
// chord accumulation, decode and key-sequence composition, ending in a push
// onto the handoff ring. All shift and pending-modifier state lives on this
// side; the reporting context only ever sees packed key words.
package decode

import (
	"context"
	"time"

	"picowriter-go/bus"
	"picowriter-go/keyboard"
	"picowriter-go/x/msgring"
)

var (
	topicChar  = bus.Topic{"kb", "char"}
	topicChord = bus.Topic{"kb", "chord"}
	topicShift = bus.Topic{"kb", "shift"}
)

// ReadyToken is sent on Params.Ready once the scan loop is running; the boot
// sequence checks it as a cursory liveness probe before starting the report
// path.
const ReadyToken uint32 = 99

// Params configures one decode loop.
type Params struct {
	// Poll is the switch scan interval.
	Poll time.Duration
	// Read samples the 8 switch lines and returns a "pressed" mask: bit set
	// means switch down. Implementations invert active-low lines before
	// returning.
	Read func() uint8
	// Ring receives packed key messages for the reporting context.
	Ring *msgring.Ring
	// Ready, if non-nil, receives ReadyToken when the loop starts.
	Ready chan<- uint32
	// Trace publishes every finalized chord on kb/chord for verbose
	// diagnostics.
	Trace bool
}

// Run executes the decode loop until ctx is cancelled. It publishes decoded
// characters on kb/char (advisory, for the diagnostics console) and the
// shift state, retained, on kb/shift whenever it changes.
func Run(ctx context.Context, conn *bus.Connection, p Params) {
	if p.Poll <= 0 {
		p.Poll = 20 * time.Millisecond
	}

	var acc keyboard.Accumulator
	dec := keyboard.NewDecoder()
	comp := keyboard.NewComposer()

	shifts := dec.Shifts()
	conn.Publish(&bus.Message{Topic: topicShift, Payload: shifts, Retained: true})

	if p.Ready != nil {
		p.Ready <- ReadyToken
	}

	tick := time.NewTicker(p.Poll)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
		}

		chord, ok := acc.Sample(p.Read())
		if !ok {
			continue
		}
		if p.Trace {
			conn.Publish(&bus.Message{Topic: topicChord, Payload: chord})
		}

		code, ok := dec.Decode(chord)
		if s := dec.Shifts(); s != shifts {
			shifts = s
			conn.Publish(&bus.Message{Topic: topicShift, Payload: shifts, Retained: true})
		}
		if !ok {
			continue
		}

		conn.Publish(&bus.Message{Topic: topicChar, Payload: code})

		if msg, ok := comp.Compose(code); ok {
			// Drop-on-full: a lost keystroke beats a stalled scan loop.
			p.Ring.Push(msg.Word())
		}
	}
}
