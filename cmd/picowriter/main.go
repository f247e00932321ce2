//go:build rp2040

// Firmware entry for the PicoWriter: an 8-switch Microwriter/CyKey style
// chorded keyboard on a Raspberry Pi Pico, presented to the host as a USB
// HID keyboard.
package main

import (
	"context"
	"image/color"
	"machine"
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"picowriter-go/bus"
	"picowriter-go/services/config"
	"picowriter-go/services/decode"
	"picowriter-go/services/diag"
	"picowriter-go/services/indicator"
	"picowriter-go/services/report"
	"picowriter-go/x/msgring"
)

const switchCount = 8

func main() {
	// Allow USB to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("-- picowriter starting --")

	ctx := context.WithValue(context.Background(), config.CtxDeviceKey, "pico")

	b := bus.NewBus(8)
	config.NewService().Start(ctx, b.NewConnection("config"))

	boot := b.NewConnection("boot")
	kbCfg := config.Section(boot, "keyboard", time.Second)
	rpCfg := config.Section(boot, "report", time.Second)
	ledCfg := config.Section(boot, "indicator", time.Second)
	diagCfg := config.Section(boot, "diag", time.Second)

	// Switch lines, input with pull-ups.
	pinBase := config.Int(kbCfg, "pin_base", 2)
	activeLow := config.Bool(kbCfg, "active_low", true)
	var pins [switchCount]machine.Pin
	for i := range pins {
		pins[i] = machine.Pin(pinBase + i)
		pins[i].Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
	read := func() uint8 {
		var m uint8
		for i := range pins {
			lvl := pins[i].Get()
			if activeLow {
				lvl = !lvl
			}
			if lvl {
				m |= 1 << i
			}
		}
		return m
	}

	// Diagnostics UART.
	uart := uartx.UART0
	if config.Int(diagCfg, "uart", 0) == 1 {
		uart = uartx.UART1
	}
	_ = uart.Configure(uartx.UARTConfig{
		BaudRate: uint32(config.Int(diagCfg, "baud", 115200)),
		TX:       machine.UART0_TX_PIN,
		RX:       machine.UART0_RX_PIN,
	})

	// Status LED.
	var led indicator.LED
	ledPin := machine.Pin(config.Int(ledCfg, "pin", 25))
	if config.Str(ledCfg, "style", "gpio") == "ws2812" {
		led = indicator.NewNeoPixelLED(ledPin, color.RGBA{G: 0x20})
	} else {
		led = indicator.NewGPIOLED(ledPin)
	}

	ring := msgring.New(config.Int(rpCfg, "queue", 8))
	ready := make(chan uint32, 1)

	go decode.Run(ctx, b.NewConnection("decode"), decode.Params{
		Poll:  time.Duration(config.Int(kbCfg, "poll_ms", 20)) * time.Millisecond,
		Read:  read,
		Ring:  ring,
		Ready: ready,
		Trace: config.Bool(diagCfg, "verbose", false),
	})
	go diag.Run(ctx, b.NewConnection("diag"), diag.Params{
		Out:     uart,
		Verbose: config.Bool(diagCfg, "verbose", false),
	})
	go indicator.Run(ctx, b.NewConnection("indicator"), indicator.Params{LED: led})

	// Cursory check that the scan loop came up before reporting starts.
	if tok := <-ready; tok == decode.ReadyToken {
		println("scan loop OK")
	} else {
		println("bad response from scan loop")
	}

	report.Run(ctx, b.NewConnection("report"), report.Params{
		Tick: time.Duration(config.Int(rpCfg, "tick_ms", 10)) * time.Millisecond,
		Ring: ring,
		Sink: newUSBSink(),
	})
}
