// config/config_test.go
package config

import (
	"context"
	"testing"
	"time"

	"picowriter-go/bus"
)

func TestConfig_PublishEmbedded_RetainedPerSection(t *testing.T) {
	// Override lookup for this test.
	oldLookup := EmbeddedConfigLookup
	EmbeddedConfigLookup = func(device string) ([]byte, bool) {
		if device != "pico" {
			return nil, false
		}
		return []byte(`{
			"keyboard": {"pin_base": 2, "active_low": true},
			"diag": {"verbose": false}
		}`), true
	}
	t.Cleanup(func() { EmbeddedConfigLookup = oldLookup })

	b := bus.NewBus(16)
	conn := b.NewConnection("test-config")
	svc := NewService()

	ctx := context.WithValue(context.Background(), CtxDeviceKey, "pico")
	svc.Start(ctx, conn)

	// Retained sections arrive even when the subscription comes later.
	kb := Section(conn, "keyboard", 600*time.Millisecond)
	if kb == nil {
		t.Fatal("missing 'keyboard' section")
	}
	if got := Int(kb, "pin_base", -1); got != 2 {
		t.Fatalf("pin_base = %d, want 2", got)
	}
	if !Bool(kb, "active_low", false) {
		t.Fatal("active_low = false, want true")
	}

	dg := Section(conn, "diag", 600*time.Millisecond)
	if dg == nil {
		t.Fatal("missing 'diag' section")
	}
	if Bool(dg, "verbose", true) {
		t.Fatal("verbose = true, want false")
	}
}

func TestConfig_PublishConfig_MissingDevice(t *testing.T) {
	b := bus.NewBus(4)
	conn := b.NewConnection("test-missing-device")
	svc := NewService()

	// No device ID in context
	if err := svc.publishConfig(context.Background(), conn); err == nil {
		t.Fatal("expected error for missing device ID, got nil")
	}
}

func TestConfig_PublishConfig_NoConfigFound(t *testing.T) {
	// Override lookup to simulate absence.
	oldLookup := EmbeddedConfigLookup
	EmbeddedConfigLookup = func(device string) ([]byte, bool) { return nil, false }
	t.Cleanup(func() { EmbeddedConfigLookup = oldLookup })

	b := bus.NewBus(4)
	conn := b.NewConnection("test-no-config")
	svc := NewService()

	ctx := context.WithValue(context.Background(), CtxDeviceKey, "unknown-device")
	if err := svc.publishConfig(ctx, conn); err == nil {
		t.Fatal("expected error for missing embedded config, got nil")
	}
}

func TestSectionAccessorDefaults(t *testing.T) {
	if Int(nil, "x", 7) != 7 || Bool(nil, "x", true) != true || Str(nil, "x", "d") != "d" {
		t.Fatal("nil section must yield defaults")
	}
	m := map[string]any{"n": float64(42), "s": "gpio", "b": true}
	if Int(m, "n", 0) != 42 {
		t.Fatal("float64 number not converted")
	}
	if Str(m, "s", "") != "gpio" {
		t.Fatal("string field lost")
	}
	if !Bool(m, "b", false) {
		t.Fatal("bool field lost")
	}
	if Int(m, "missing", 9) != 9 {
		t.Fatal("missing key must yield default")
	}
}
