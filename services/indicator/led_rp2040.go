//go:build rp2040

package indicator

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ws2812"
)

// GPIOLED is the plain board LED (GPIO 25 on the Pico).
type GPIOLED struct {
	Pin machine.Pin
}

func NewGPIOLED(pin machine.Pin) *GPIOLED {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &GPIOLED{Pin: pin}
}

func (l *GPIOLED) Set(on bool) { l.Pin.Set(on) }

// NeoPixelLED drives boards whose status LED is a single WS2812 (e.g. the
// RP2040-Zero) through the one-bit LED contract.
type NeoPixelLED struct {
	dev ws2812.Device
	on  color.RGBA
}

func NewNeoPixelLED(pin machine.Pin, on color.RGBA) *NeoPixelLED {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &NeoPixelLED{dev: ws2812.NewWS2812(pin), on: on}
}

func (l *NeoPixelLED) Set(on bool) {
	c := color.RGBA{}
	if on {
		c = l.on
	}
	_ = l.dev.WriteColors([]color.RGBA{c})
}
