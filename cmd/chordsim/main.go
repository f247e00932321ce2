// chordsim feeds chord bytes through the real decode pipeline on a host
// machine, for exercising the tables without hardware.
//
// Enter one chord per line as a hex byte ("35" or "0x35"); EOF quits. The
// decoded characters appear via the diagnostics writer and the HID-level
// reports via a printing sink.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"picowriter-go/bus"
	"picowriter-go/services/decode"
	"picowriter-go/services/diag"
	"picowriter-go/services/report"
	"picowriter-go/x/msgring"
)

// printSink renders reports as text instead of sending them anywhere.
type printSink struct{}

func (printSink) Ready() bool   { return true }
func (printSink) State() string { return "mounted" }

func (printSink) SendKeys(mods uint8, keys [3]uint8) error {
	fmt.Printf("\n  report mods=%02X keys=%02X %02X %02X\n", mods, keys[0], keys[1], keys[2])
	return nil
}

func (printSink) Release() error {
	fmt.Println("  report release")
	return nil
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := bus.NewBus(8)
	ring := msgring.New(8)

	// One chord becomes a single pressed sample followed by an all-up
	// sample, which is all the accumulator needs to finalize it.
	chords := make(chan uint8, 16)
	var cur uint8
	down := false
	read := func() uint8 {
		if down {
			down = false
			return cur
		}
		select {
		case cur = <-chords:
			down = true
			return cur
		default:
			return 0
		}
	}

	go decode.Run(ctx, b.NewConnection("decode"), decode.Params{
		Poll:  time.Millisecond,
		Read:  read,
		Ring:  ring,
		Trace: true,
	})
	go diag.Run(ctx, b.NewConnection("diag"), diag.Params{Out: os.Stdout, Verbose: true})
	go report.Run(ctx, b.NewConnection("report"), report.Params{
		Tick: time.Millisecond,
		Ring: ring,
		Sink: printSink{},
	})

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := strings.TrimSpace(strings.TrimPrefix(sc.Text(), "0x"))
		if line == "" {
			continue
		}
		v, err := strconv.ParseUint(line, 16, 8)
		if err != nil {
			fmt.Fprintln(os.Stderr, "bad chord byte:", line)
			continue
		}
		chords <- uint8(v)
		// Let the pipeline drain before the next prompt line.
		time.Sleep(20 * time.Millisecond)
	}
	time.Sleep(50 * time.Millisecond)
}
