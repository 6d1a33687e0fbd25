package assessment

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Category is one of the multi-select sign groups.
type Category int

const (
	Respiratory Category = iota
	Abdomen
	Alarms
)

var Categories = []Category{Respiratory, Abdomen, Alarms}

func (c Category) String() string {
	switch c {
	case Respiratory:
		return "Respiratory"
	case Abdomen:
		return "Abdomen"
	case Alarms:
		return "Alarms"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Options lists the selectable items of c.
func (c Category) Options() []string {
	switch c {
	case Respiratory:
		return RespiratoryOptions
	case Abdomen:
		return AbdomenOptions
	case Alarms:
		return AlarmOptions
	default:
		return nil
	}
}

// Signs holds the signs-and-symptoms step: a single colour plus three
// multi-select groups. The zero value is empty and ready to use.
type Signs struct {
	color      string
	otherColor string
	selected   map[Category]map[string]struct{}
}

// SelectColor picks a colour option. Choosing anything but Other drops the
// free-text description.
func (s *Signs) SelectColor(color string) error {
	if !slices.Contains(ColorOptions, color) {
		return fmt.Errorf("%w: colour %q", ErrUnknownOption, color)
	}
	s.color = color
	if !strings.EqualFold(color, OtherColor) {
		s.otherColor = ""
	}
	return nil
}

// DescribeOther sets the description shown with the Other colour.
func (s *Signs) DescribeOther(text string) {
	s.otherColor = strings.TrimSpace(text)
}

func (s *Signs) ClearColor() {
	s.color = ""
	s.otherColor = ""
}

// Color renders the colour for display: "—" when none was chosen and
// "Other: <text>" for a described Other.
func (s *Signs) Color() string {
	switch {
	case s.color == "":
		return "—"
	case strings.EqualFold(s.color, OtherColor) && s.otherColor != "":
		return OtherColor + ": " + s.otherColor
	default:
		return s.color
	}
}

// Toggle flips item in c and reports whether it is now selected.
func (s *Signs) Toggle(c Category, item string) (bool, error) {
	if !slices.Contains(c.Options(), item) {
		return false, fmt.Errorf("%w: %s %q", ErrUnknownOption, strings.ToLower(c.String()), item)
	}
	if s.selected == nil {
		s.selected = make(map[Category]map[string]struct{})
	}
	set := s.selected[c]
	if set == nil {
		set = make(map[string]struct{})
		s.selected[c] = set
	}
	if _, on := set[item]; on {
		delete(set, item)
		return false, nil
	}
	set[item] = struct{}{}
	return true, nil
}

// Selected returns the chosen items of c in sorted order.
func (s *Signs) Selected(c Category) []string {
	out := make([]string, 0, len(s.selected[c]))
	for item := range s.selected[c] {
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}

// HasSelection reports whether anything at all was chosen.
func (s *Signs) HasSelection() bool {
	if s.color != "" {
		return true
	}
	for _, c := range Categories {
		if len(s.selected[c]) > 0 {
			return true
		}
	}
	return false
}
