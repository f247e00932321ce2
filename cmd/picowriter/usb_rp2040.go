//go:build rp2040

package main

import (
	kbd "machine/usb/hid/keyboard"
)

// hidPort covers the methods we use on the USB keyboard port, whose concrete
// type is unexported.
type hidPort interface {
	Down(kbd.Keycode) error
	Up(kbd.Keycode) error
}

// usbSink adapts the TinyGo USB HID keyboard to the report.Sink contract.
// Keycodes are Teensy-encoded: 0xE000|mask for modifiers, 0xF000|usage for
// normal keys.
type usbSink struct {
	port hidPort
	held []kbd.Keycode
}

func newUSBSink() *usbSink {
	return &usbSink{
		port: kbd.Port(),
		held: make([]kbd.Keycode, 0, 4),
	}
}

func (s *usbSink) Ready() bool { return true }

// State reports the transport power state. The TinyGo device stack does not
// surface suspend or unmount, so the port counts as mounted once it is up;
// remote wakeup stays inside the stack.
func (s *usbSink) State() string { return "mounted" }

func (s *usbSink) SendKeys(mods uint8, keys [3]uint8) error {
	s.releaseHeld()
	if mods != 0 {
		kc := kbd.Keycode(0xE000 | uint16(mods))
		if err := s.port.Down(kc); err != nil {
			return err
		}
		s.held = append(s.held, kc)
	}
	for _, key := range keys {
		// Modifier usages (0xE0..) in the key slots are already covered by
		// the mask.
		if key == 0 || key >= 0xE0 {
			continue
		}
		kc := kbd.Keycode(0xF000 | uint16(key))
		if err := s.port.Down(kc); err != nil {
			return err
		}
		s.held = append(s.held, kc)
	}
	return nil
}

func (s *usbSink) Release() error {
	s.releaseHeld()
	return nil
}

func (s *usbSink) releaseHeld() {
	for _, kc := range s.held {
		_ = s.port.Up(kc)
	}
	s.held = s.held[:0]
}
