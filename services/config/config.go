package config

import (
	"context"
	"time"

	"picowriter-go/bus"
	"picowriter-go/errcode"

	"github.com/andreyvit/tinyjson"
)

// -----------------------------------------------------------------------------
// String constants (live in flash, not RAM)
// -----------------------------------------------------------------------------

const (
	serviceName  = "config"
	configPrefix = "config"
	CtxDeviceKey = "device" // context key used for device ID
)

// EmbeddedConfigLookup allows overriding how configs are resolved.
var EmbeddedConfigLookup = func(device string) ([]byte, bool) {
	b, ok := embeddedConfigs[device]
	return b, ok
}

// -----------------------------------------------------------------------------
// Config Service
// -----------------------------------------------------------------------------

type Service struct {
	Name string
}

func NewService() *Service {
	return &Service{Name: serviceName}
}

// publishConfig reads the device config from embedded data and publishes each
// top-level section as a retained message under config/<section>.
func (s *Service) publishConfig(ctx context.Context, conn *bus.Connection) error {
	device, _ := ctx.Value(CtxDeviceKey).(string)
	if device == "" {
		return &errcode.E{C: errcode.InvalidParams, Op: "config", Msg: "missing device ID in context"}
	}

	raw, ok := EmbeddedConfigLookup(device)
	if !ok || len(raw) == 0 {
		return &errcode.E{C: errcode.UnknownDevice, Op: "config", Msg: device}
	}

	r := tinyjson.Raw(raw)
	val := r.Value()
	r.EnsureEOF()

	m, ok := val.(map[string]any)
	if !ok {
		return errcode.InvalidPayload
	}

	for k, v := range m {
		conn.Publish(&bus.Message{
			Topic:    bus.T(configPrefix, k),
			Payload:  v,
			Retained: true,
		})
	}

	return nil
}

// Start launches the config publisher in a goroutine.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) {
	go func() {
		if err := s.publishConfig(ctx, conn); err != nil {
			println("config:", err.Error())
		}
	}()
}

// Section fetches the retained config section for key, waiting up to the
// given timeout. Returns nil when the section never arrives (callers fall
// back to defaults).
func Section(conn *bus.Connection, key string, timeout time.Duration) map[string]any {
	sub := conn.Subscribe(bus.T(configPrefix, key))
	defer sub.Unsubscribe()

	select {
	case msg := <-sub.Channel():
		if m, ok := msg.Payload.(map[string]any); ok {
			return m
		}
	case <-time.After(timeout):
	}
	return nil
}

// -----------------------------------------------------------------------------
// Typed section accessors
// -----------------------------------------------------------------------------

// Int reads an integer field from a section, with a default. tinyjson
// surfaces JSON numbers as float64.
func Int(m map[string]any, key string, def int) int {
	if m == nil {
		return def
	}
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}

// Bool reads a boolean field from a section, with a default.
func Bool(m map[string]any, key string, def bool) bool {
	if m == nil {
		return def
	}
	if v, ok := m[key].(bool); ok {
		return v
	}
	return def
}

// Str reads a string field from a section, with a default.
func Str(m map[string]any, key string, def string) string {
	if m == nil {
		return def
	}
	if v, ok := m[key].(string); ok {
		return v
	}
	return def
}
