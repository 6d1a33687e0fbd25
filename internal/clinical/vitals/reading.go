package vitals

import "strings"

// Field identifies one of the five vital-sign inputs.
type Field int

const (
	HeartRate Field = iota
	MeanArterialPressure
	Temperature
	RespiratoryRate
	OxygenSaturation
)

// Fields lists every Field in entry order.
var Fields = []Field{HeartRate, MeanArterialPressure, Temperature, RespiratoryRate, OxygenSaturation}

func (f Field) String() string {
	switch f {
	case HeartRate:
		return "Heart Rate (bpm)"
	case MeanArterialPressure:
		return "Blood Pressure Mean (mmHg)"
	case Temperature:
		return "Temperature (°F/°C)"
	case RespiratoryRate:
		return "Respiratory Rate (breaths/min)"
	case OxygenSaturation:
		return "Oxygen Saturation (%)"
	default:
		return "unknown"
	}
}

// Placeholder is an example value shown when prompting for f.
func (f Field) Placeholder() string {
	switch f {
	case HeartRate:
		return "e.g. 75"
	case MeanArterialPressure:
		return "e.g. 40"
	case Temperature:
		return "e.g. 98.6 or 37"
	case RespiratoryRate:
		return "e.g. 60"
	case OxygenSaturation:
		return "e.g. 98"
	default:
		return ""
	}
}

// Reading holds the raw text of one assessment's vitals together with the
// patient's age bracket, which selects the MAP range.
type Reading struct {
	HeartRate            string
	MeanArterialPressure string
	Temperature          string
	RespiratoryRate      string
	OxygenSaturation     string
	Age                  string
}

func (r *Reading) field(f Field) *string {
	switch f {
	case HeartRate:
		return &r.HeartRate
	case MeanArterialPressure:
		return &r.MeanArterialPressure
	case Temperature:
		return &r.Temperature
	case RespiratoryRate:
		return &r.RespiratoryRate
	case OxygenSaturation:
		return &r.OxygenSaturation
	default:
		return nil
	}
}

// Value returns the raw text entered for f.
func (r Reading) Value(f Field) string {
	if p := r.field(f); p != nil {
		return *p
	}
	return ""
}

// Set stores raw text for f. Unknown fields are ignored.
func (r *Reading) Set(f Field, text string) {
	if p := r.field(f); p != nil {
		*p = text
	}
}

// Warning reports the out-of-range prompt for f, if any.
func (r Reading) Warning(f Field) (string, bool) {
	raw := r.Value(f)
	switch f {
	case HeartRate:
		v, ok := ParseNumeric(raw)
		return RangeCheck(raw, v, ok, HeartRateRange)
	case MeanArterialPressure:
		rng, defined := MAPRangeForAge(r.Age)
		if !defined {
			return "", false
		}
		v, ok := ParseNumeric(raw)
		return RangeCheck(raw, v, ok, rng)
	case Temperature:
		v, ok := TemperatureToCelsius(raw)
		return RangeCheck(raw, v, ok, TemperatureRange)
	case RespiratoryRate:
		v, ok := ParseNumeric(raw)
		return RangeCheck(raw, v, ok, RespiratoryRateRange)
	case OxygenSaturation:
		v, ok := ParseNumeric(raw)
		return RangeCheck(raw, v, ok, OxygenSaturationRange)
	default:
		return "", false
	}
}

// Warnings collects the prompt of every field that has one.
func (r Reading) Warnings() map[Field]string {
	out := make(map[Field]string)
	for _, f := range Fields {
		if msg, ok := r.Warning(f); ok {
			out[f] = msg
		}
	}
	return out
}

// IsFormComplete reports whether all five fields are filled in and none of
// them is out of range.
func IsFormComplete(r Reading) bool {
	for _, f := range Fields {
		if strings.TrimSpace(r.Value(f)) == "" {
			return false
		}
		if _, warn := r.Warning(f); warn {
			return false
		}
	}
	return true
}
