package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/luca/internal/clinical/assessment"
	"github.com/dmitrijs2005/luca/internal/clinical/vitals"
)

var errAssessmentCancelled = errors.New("assessment cancelled")

// choose repeats GetChoice until a valid option is picked. An empty answer
// cancels the assessment.
func (a *App) choose(prompt string, options []string) (string, error) {
	for {
		v, err := GetChoice(a.reader, prompt, options, a.out)
		switch {
		case err == nil:
			return v, nil
		case errors.Is(err, errNoChoice):
			return "", errAssessmentCancelled
		case errors.Is(err, errInvalidChoice):
			fmt.Fprintln(a.out, err)
		default:
			return "", err
		}
	}
}

// Assess runs the assessment flow: unit, age, vitals, signs and symptoms,
// then the summary. Nothing is stored or sent.
func (a *App) Assess(ctx context.Context) error {
	var as assessment.Assessment

	fmt.Fprintln(a.out, "Select Your Unit")
	unit, err := a.choose("Unit", assessment.Units)
	if err != nil {
		return err
	}
	if err := as.SetUnit(unit); err != nil {
		return err
	}

	age, err := a.choose(assessment.AgePrompt(unit), assessment.AgeOptions(unit))
	if err != nil {
		return err
	}
	if err := as.SetAge(age); err != nil {
		return err
	}

	if err := a.collectVitals(&as.Vitals); err != nil {
		return err
	}
	if err := a.collectSigns(&as.Signs); err != nil {
		return err
	}

	if err := as.Validate(); err != nil {
		return err
	}
	fmt.Fprintln(a.out)
	return as.Summary().Render(a.out)
}

// collectVitals asks for each vital sign until the value is present and in
// range. Out-of-range values are shown back with the range prompt.
func (a *App) collectVitals(r *vitals.Reading) error {
	fmt.Fprintln(a.out, "Vital Signs")
	for _, f := range vitals.Fields {
		if f == vitals.MeanArterialPressure {
			if rng, ok := vitals.MAPRangeForAge(r.Age); ok {
				fmt.Fprintf(a.out, "Expected MAP range: %g - %g\n", rng.Min, rng.Max)
			}
		}
		for {
			text, err := getSimpleText(a.reader, fmt.Sprintf("%s (%s)", f, f.Placeholder()), a.out)
			if err != nil {
				return err
			}
			if text == "" {
				fmt.Fprintln(a.out, "This field is required")
				continue
			}
			r.Set(f, text)
			if msg, bad := r.Warning(f); bad {
				fmt.Fprintln(a.out, msg)
				continue
			}
			if f == vitals.Temperature {
				fmt.Fprintln(a.out, vitals.FormatTemperature(text))
			}
			break
		}
	}
	if !vitals.IsFormComplete(*r) {
		return assessment.ErrIncompleteVitals
	}
	return nil
}

// collectSigns asks for a colour and the three multi-select groups, and
// starts over while nothing at all was chosen.
func (a *App) collectSigns(s *assessment.Signs) error {
	for {
		fmt.Fprintln(a.out, "Signs & Symptoms")
		s.ClearColor()

		fmt.Fprintln(a.out, "Color (empty for none)")
		color, err := GetChoice(a.reader, "Color", assessment.ColorOptions, a.out)
		switch {
		case err == nil:
			if err := s.SelectColor(color); err != nil {
				return err
			}
			if color == assessment.OtherColor {
				text, err := getSimpleText(a.reader, "Describe the color", a.out)
				if err != nil {
					return err
				}
				s.DescribeOther(text)
			}
		case errors.Is(err, errNoChoice):
		case errors.Is(err, errInvalidChoice):
			fmt.Fprintln(a.out, err)
		default:
			return err
		}

		for _, c := range assessment.Categories {
			if err := a.collectCategory(s, c); err != nil {
				return err
			}
		}

		if s.HasSelection() {
			return nil
		}
		fmt.Fprintln(a.out, "Please select at least one sign or symptom")
	}
}

// collectCategory reads a comma or space separated list of option numbers
// and toggles each of them in c.
func (a *App) collectCategory(s *assessment.Signs, c assessment.Category) error {
	opts := c.Options()
	for i, o := range opts {
		fmt.Fprintf(a.out, "  %d) %s\n", i+1, o)
	}
	for {
		answer, err := getSimpleText(a.reader, c.String()+" (numbers separated by commas, empty for none)", a.out)
		if err != nil {
			return err
		}
		picks, err := parsePicks(answer, len(opts))
		if err != nil {
			fmt.Fprintln(a.out, err)
			continue
		}
		for _, n := range picks {
			if _, err := s.Toggle(c, opts[n-1]); err != nil {
				return err
			}
		}
		return nil
	}
}

// parsePicks parses "1, 3 4" into distinct 1-based indexes not above max.
func parsePicks(answer string, max int) ([]int, error) {
	fields := strings.FieldsFunc(answer, func(r rune) bool { return r == ',' || r == ' ' })
	seen := make(map[int]bool, len(fields))
	picks := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 || n > max {
			return nil, fmt.Errorf("%q is not a number between 1 and %d", f, max)
		}
		if !seen[n] {
			seen[n] = true
			picks = append(picks, n)
		}
	}
	return picks, nil
}
