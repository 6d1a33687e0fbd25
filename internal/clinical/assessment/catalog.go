// Package assessment models the guided patient-assessment flow:
// unit, age, vitals, signs and symptoms, then a summary.
// An Assessment lives only for one pass through the flow and is never stored.
package assessment

import "slices"

const UnitNICU = "NICU"

// Units are the care units an assessment can start from.
var Units = []string{UnitNICU, "ICU", "Emergency", "Surgery", "Pediatrics", "Cardiac"}

// GestationalAges are offered for NICU patients; the MAP range depends on them.
var GestationalAges = []string{"24.0 - 29.9 weeks", "30.0 - 35.9 weeks", "36.0+ weeks"}

// AgeRanges are offered for every other unit.
var AgeRanges = []string{"0-1 years", "1-3 years", "3-12 years", "12-18 years", "18-65 years", "65+ years"}

const OtherColor = "Other"

var ColorOptions = []string{
	"Pink", "Pale", "Dusky", "Yellow", "Ruddy", "Bruised",
	"Mottled", "Acrocyanosis", OtherColor,
}

var RespiratoryOptions = []string{
	"Labored", "Retractions", "Nasal Flaring", "Tachypnea", "Shallow",
	"Stridor", "Decreased Lung sounds", "Nasal Respiratory Support",
	"Increased O2 Needs", "Increased Suctioning", "Intubated",
}

var AbdomenOptions = []string{
	"Soft", "Firm", "Distended", "No bowel sounds", "Loops of bowel",
	"Increased spits", "Bright green spits", "Poor feeding",
	"Bloody stool", "NG or OG tube", "Dark Abdomen",
}

var AlarmOptions = []string{
	"Increased Brady HR", "Increased Tachy HR", "Increased Apnea",
	"Increased Tachypnea", "Increased Desats",
	"Increased Bed Alarms", "Increased Vent Alarms",
}

func IsNICU(unit string) bool {
	return unit == UnitNICU
}

// AgeOptions returns the age choices for unit.
func AgeOptions(unit string) []string {
	if IsNICU(unit) {
		return GestationalAges
	}
	return AgeRanges
}

// AgePrompt is the question asked on the age step.
func AgePrompt(unit string) string {
	if IsNICU(unit) {
		return "Current Gestational Age"
	}
	return "Patient Age"
}

func ValidateUnit(unit string) error {
	if !slices.Contains(Units, unit) {
		return ErrUnknownUnit
	}
	return nil
}

// ValidateAge checks that age is one of the options offered for unit.
func ValidateAge(unit, age string) error {
	if err := ValidateUnit(unit); err != nil {
		return err
	}
	if !slices.Contains(AgeOptions(unit), age) {
		return ErrUnknownAge
	}
	return nil
}
