package vitals

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Range is an inclusive [Min, Max] interval.
type Range struct {
	Min float64
	Max float64
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

var (
	HeartRateRange        = Range{Min: 70, Max: 180}
	RespiratoryRateRange  = Range{Min: 20, Max: 80}
	OxygenSaturationRange = Range{Min: 85, Max: 100}
	// TemperatureRange is in °C.
	TemperatureRange = Range{Min: 36.4, Max: 38.0}
)

// Readings below this are taken as Celsius, anything else as Fahrenheit.
const celsiusCutoff = 70

// MAP ranges keyed by gestational-age bracket. Order matters: the first
// marker found in the age text wins.
var mapBrackets = []struct {
	markers []string
	rng     Range
}{
	{[]string{"24.0 - 29.9"}, Range{Min: 24, Max: 40}},
	{[]string{"30.0 - 35.9"}, Range{Min: 30, Max: 45}},
	{[]string{"36+", "36.0+"}, Range{Min: 35, Max: 50}},
}

// ParseNumeric reads a decimal number, accepting a comma as the decimal
// separator. Blank, malformed and non-finite input is absent.
func ParseNumeric(text string) (float64, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// TemperatureToCelsius parses text and converts it from Fahrenheit unless the
// value is already plausible as Celsius.
func TemperatureToCelsius(text string) (float64, bool) {
	v, ok := ParseNumeric(text)
	if !ok {
		return 0, false
	}
	if v < celsiusCutoff {
		return v, true
	}
	return (v - 32) * 5 / 9, true
}

func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// FormatTemperature renders text in its detected unit first and the other
// unit second, e.g. "37.0 °C | 98.6 °F". Unparseable text is returned as is.
func FormatTemperature(text string) string {
	v, ok := ParseNumeric(text)
	if !ok {
		return text
	}
	if v < celsiusCutoff {
		return fmt.Sprintf("%.1f °C | %.1f °F", v, CelsiusToFahrenheit(v))
	}
	return fmt.Sprintf("%.1f °F | %.1f °C", v, (v-32)*5/9)
}

// RangeCheck returns the confirmation prompt for a present value outside r.
func RangeCheck(raw string, value float64, present bool, r Range) (string, bool) {
	if !present || strings.TrimSpace(raw) == "" {
		return "", false
	}
	if r.Contains(value) {
		return "", false
	}
	return fmt.Sprintf("Did you mean %s? If yes, contact your doctor immediately.", raw), true
}

// MAPRangeForAge returns the mean-arterial-pressure range for a gestational
// age bracket. Other age texts have no range and are never checked.
func MAPRangeForAge(age string) (Range, bool) {
	lower := strings.ToLower(age)
	for _, b := range mapBrackets {
		for _, m := range b.markers {
			if strings.Contains(lower, m) {
				return b.rng, true
			}
		}
	}
	return Range{}, false
}
