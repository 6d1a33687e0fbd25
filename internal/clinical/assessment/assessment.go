package assessment

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/luca/internal/clinical/vitals"
)

var (
	ErrUnknownUnit      = errors.New("unknown unit")
	ErrUnknownAge       = errors.New("age not offered for this unit")
	ErrUnknownOption    = errors.New("unknown option")
	ErrIncompleteVitals = errors.New("vitals are missing or out of range")
	ErrNoSigns          = errors.New("select at least one sign or symptom")
)

// Assessment accumulates the answers of one pass through the flow.
type Assessment struct {
	Unit   string
	Age    string
	Vitals vitals.Reading
	Signs  Signs
}

// SetUnit starts the flow over for unit; the age must be chosen again.
func (a *Assessment) SetUnit(unit string) error {
	if err := ValidateUnit(unit); err != nil {
		return err
	}
	a.Unit = unit
	a.Age = ""
	a.Vitals.Age = ""
	return nil
}

// SetAge records the age bracket, which also selects the MAP range.
func (a *Assessment) SetAge(age string) error {
	if err := ValidateAge(a.Unit, age); err != nil {
		return err
	}
	a.Age = age
	a.Vitals.Age = age
	return nil
}

// Validate checks every step in order and returns the first failure.
func (a *Assessment) Validate() error {
	if err := ValidateAge(a.Unit, a.Age); err != nil {
		return err
	}
	if !vitals.IsFormComplete(a.Vitals) {
		return ErrIncompleteVitals
	}
	if !a.Signs.HasSelection() {
		return ErrNoSigns
	}
	return nil
}

type Row struct {
	Label string
	Value string
}

type Section struct {
	Title string
	Rows  []Row
}

type Summary struct {
	Sections []Section
}

func list(items []string) string {
	if len(items) == 0 {
		return "—"
	}
	return strings.Join(items, ", ")
}

// Summary lays out the collected answers for review.
func (a *Assessment) Summary() Summary {
	v := a.Vitals
	signs := Section{
		Title: "Signs & Symptoms",
		Rows:  []Row{{"Color", a.Signs.Color()}},
	}
	for _, c := range Categories {
		signs.Rows = append(signs.Rows, Row{c.String(), list(a.Signs.Selected(c))})
	}

	return Summary{Sections: []Section{
		{
			Title: "Patient Context",
			Rows:  []Row{{"Unit", a.Unit}, {"Age", a.Age}},
		},
		{
			Title: "Vital Signs",
			Rows: []Row{
				{"Heart Rate (bpm)", v.HeartRate},
				{"Blood Pressure Mean (mmHg)", v.MeanArterialPressure},
				{"Temperature", vitals.FormatTemperature(v.Temperature)},
				{"Respiratory Rate", v.RespiratoryRate},
				{"Oxygen Saturation (%)", v.OxygenSaturation},
			},
		},
		signs,
	}}
}

// Render writes the summary as aligned plain text.
func (s Summary) Render(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, sec := range s.Sections {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "%s\n", sec.Title)
		for _, r := range sec.Rows {
			fmt.Fprintf(tw, "  %s\t%s\n", r.Label, r.Value)
		}
	}
	return tw.Flush()
}
