// Package diag renders decode activity on the serial console. It is purely
// advisory: it observes the bus and writes text, and can never affect a
// decode outcome.
package diag

import (
	"context"
	"io"

	"picowriter-go/bus"
	"picowriter-go/keyboard"
	"picowriter-go/x/conv"
)

var (
	topicChar  = bus.Topic{"kb", "char"}
	topicChord = bus.Topic{"kb", "chord"}
	topicShift = bus.Topic{"kb", "shift"}
)

// Params configures the diagnostics writer.
type Params struct {
	// Out receives the rendered text (a UART on hardware).
	Out io.Writer
	// Verbose adds a hex trace line per chord.
	Verbose bool
}

// Run consumes kb/char (and, verbose, kb/chord + kb/shift) until ctx is
// cancelled.
func Run(ctx context.Context, conn *bus.Connection, p Params) {
	if p.Out == nil {
		return
	}

	chars := conn.Subscribe(topicChar)
	defer chars.Unsubscribe()

	// Chord tracing only subscribes when wanted; a nil channel never fires.
	var chordCh, shiftCh <-chan *bus.Message
	if p.Verbose {
		chords := conn.Subscribe(topicChord)
		defer chords.Unsubscribe()
		chordCh = chords.Channel()

		shiftSub := conn.Subscribe(topicShift)
		defer shiftSub.Unsubscribe()
		shiftCh = shiftSub.Channel()
	}

	shifts := keyboard.ShiftState{}

	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-chars.Channel():
			code, ok := msg.Payload.(keyboard.Code)
			if !ok {
				continue
			}
			writeChar(p.Out, keyboard.Printable(code))
		case msg := <-shiftCh:
			if s, ok := msg.Payload.(keyboard.ShiftState); ok {
				shifts = s
			}
		case msg := <-chordCh:
			if c, ok := msg.Payload.(keyboard.Chord); ok {
				writeTrace(p.Out, c, shifts)
			}
		}
	}
}

func writeChar(w io.Writer, b byte) {
	if b == '\b' {
		// Erase the previous glyph on the console.
		_, _ = w.Write([]byte{'\b', ' ', '\b'})
		return
	}
	_, _ = w.Write([]byte{b})
}

// writeTrace emits one line like "\nchord 0x35 = 0x30 | 0x05 (0,1,0) -- ".
func writeTrace(w io.Writer, c keyboard.Chord, s keyboard.ShiftState) {
	var hx [2]byte
	line := make([]byte, 0, 48)

	line = append(line, "\nchord 0x"...)
	line = append(line, conv.U8Hex(hx[:], uint8(c))...)
	line = append(line, " = 0x"...)
	line = append(line, conv.U8Hex(hx[:], uint8(c.Modifiers()))...)
	line = append(line, " | 0x"...)
	line = append(line, conv.U8Hex(hx[:], c.Fingers())...)
	line = append(line, " ("...)
	line = append(line, '0'+byte(s.Caps), ',', '0'+byte(s.NumLock), ',', '0'+byte(s.ShiftE))
	line = append(line, ") -- "...)

	_, _ = w.Write(line)
}
