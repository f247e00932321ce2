// Package report runs the reporting context: it drains the handoff ring on
// the transport tick and turns key words into keyboard reports. An empty
// ring after a key-down produces exactly one release, so key-up is
// synthesized by the absence of new events, never queued.
package report

import (
	"context"
	"time"

	"picowriter-go/bus"
	"picowriter-go/keyboard"
	"picowriter-go/x/msgring"
)

var topicUSB = bus.Topic{"usb", "state"}

// Sink is the protocol-level keyboard transport. The firmware backs it with
// the USB HID device port; tests use a recording fake.
type Sink interface {
	// Ready reports whether the transport can accept a report right now.
	Ready() bool
	// SendKeys emits one key-down report.
	SendKeys(mods uint8, keys [3]uint8) error
	// Release emits one all-up report.
	Release() error
	// State returns the transport power state: "detached", "mounted" or
	// "suspended". The core treats it as opaque and only republishes it.
	State() string
}

// Params configures one report loop.
type Params struct {
	// Tick is the report cadence.
	Tick time.Duration
	// Ring is drained one message per tick.
	Ring *msgring.Ring
	// Sink receives the reports.
	Sink Sink
}

// Run executes the report loop until ctx is cancelled, republishing sink
// state transitions retained on usb/state for the indicator.
func Run(ctx context.Context, conn *bus.Connection, p Params) {
	if p.Tick <= 0 {
		p.Tick = 10 * time.Millisecond
	}

	tick := time.NewTicker(p.Tick)
	defer tick.Stop()

	hasKey := false
	state := ""

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
		}

		if s := p.Sink.State(); s != state {
			state = s
			conn.Publish(&bus.Message{Topic: topicUSB, Payload: state, Retained: true})
		}

		if !p.Sink.Ready() {
			continue
		}

		if w := p.Ring.Pop(); w != 0 {
			m := keyboard.MessageFromWord(w)
			if p.Sink.SendKeys(m.Mods, m.Keys) == nil {
				hasKey = true
			}
		} else if hasKey {
			// One empty report after the last key-down; never repeated.
			if p.Sink.Release() == nil {
				hasKey = false
			}
		}
	}
}
