package vitals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func goodReading() Reading {
	return Reading{
		HeartRate:            "140",
		MeanArterialPressure: "35",
		Temperature:          "98.6",
		RespiratoryRate:      "45",
		OxygenSaturation:     "96",
		Age:                  "30.0 - 35.9 weeks",
	}
}

func TestIsFormComplete(t *testing.T) {
	assert.True(t, IsFormComplete(goodReading()))

	for _, f := range Fields {
		r := goodReading()
		r.Set(f, "  ")
		assert.False(t, IsFormComplete(r), "blank %s", f)
	}

	r := goodReading()
	r.HeartRate = "250"
	assert.False(t, IsFormComplete(r))
}

func TestIsFormComplete_UnparseableIsNotAWarning(t *testing.T) {
	r := goodReading()
	r.OxygenSaturation = "ninety"

	_, warn := r.Warning(OxygenSaturation)
	assert.False(t, warn)
	assert.True(t, IsFormComplete(r), "non-blank and no warning")
}

func TestWarning_MAPSkippedOutsideNICU(t *testing.T) {
	r := goodReading()
	r.Age = "18-65 years"
	r.MeanArterialPressure = "200"

	_, warn := r.Warning(MeanArterialPressure)
	assert.False(t, warn)
	assert.True(t, IsFormComplete(r))

	r.Age = "24.0 - 29.9 weeks"
	msg, warn := r.Warning(MeanArterialPressure)
	assert.True(t, warn)
	assert.Equal(t, "Did you mean 200? If yes, contact your doctor immediately.", msg)
}

func TestWarnings(t *testing.T) {
	r := Reading{
		HeartRate:            "40",
		MeanArterialPressure: "",
		Temperature:          "40",
		RespiratoryRate:      "30",
		OxygenSaturation:     "101",
		Age:                  "36.0+ weeks",
	}

	got := r.Warnings()
	assert.Len(t, got, 3)
	assert.Contains(t, got, HeartRate)
	assert.Contains(t, got, Temperature)
	assert.Contains(t, got, OxygenSaturation)
}

func TestReading_SetValue(t *testing.T) {
	var r Reading
	for i, f := range Fields {
		r.Set(f, string(rune('a'+i)))
	}
	assert.Equal(t, Reading{
		HeartRate:            "a",
		MeanArterialPressure: "b",
		Temperature:          "c",
		RespiratoryRate:      "d",
		OxygenSaturation:     "e",
	}, r)

	r.Set(Field(99), "ignored")
	assert.Equal(t, "", r.Value(Field(99)))
	assert.Equal(t, "unknown", Field(99).String())
}
