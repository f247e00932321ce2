package config

// -----------------------------------------------------------------------------
// Embedded configuration
//
// Populate embeddedConfigs at build time (e.g. via code generation) or
// manually during development.
// Key: device ID (same value placed in ctx under CtxDeviceKey)
// Val: raw JSON bytes for that device
// -----------------------------------------------------------------------------

// Switch lines sit on GPIO 2..9 because GPIO 0,1 carry the diagnostics
// serial port.
const cfgPico = `{
  "keyboard": {
      "pin_base": 2,
      "poll_ms": 20,
      "active_low": true
  },
  "report": {
      "tick_ms": 10,
      "queue": 8
  },
  "indicator": {
      "pin": 25,
      "style": "gpio"
  },
  "diag": {
      "uart": 0,
      "baud": 115200,
      "verbose": false
  }
}`

var embeddedConfigs = map[string][]byte{
	"pico": []byte(cfgPico),
}
