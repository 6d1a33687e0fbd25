// Package timex provides a time.Duration wrapper that config files can
// express either as a Go duration string ("30s") or as integer nanoseconds.
package timex

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Duration decodes from JSON and YAML.
type Duration struct {
	time.Duration
}

// UnmarshalJSON accepts "1m30s" or 90000000000.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	return d.set(raw)
}

// MarshalJSON writes the duration as a string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalYAML follows the same rules as UnmarshalJSON.
func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	return d.set(raw)
}

func (d *Duration) set(raw any) error {
	switch v := raw.(type) {
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", v, err)
		}
		d.Duration = parsed
	case float64:
		if v != math.Trunc(v) {
			return fmt.Errorf("invalid duration %v: fractional nanoseconds", v)
		}
		d.Duration = time.Duration(v)
	case int:
		d.Duration = time.Duration(v)
	case int64:
		d.Duration = time.Duration(v)
	case uint64:
		d.Duration = time.Duration(v)
	case nil:
		d.Duration = 0
	default:
		return fmt.Errorf("invalid duration type %T", raw)
	}
	return nil
}
