package models

import "strings"

// PhoneDigitCount is the length of a valid phone number.
const PhoneDigitCount = 10

// PhoneDigits drops everything but ASCII digits.
func PhoneDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhone renders the first ten digits of s as (123) 456-7890, formatting
// partial input progressively: "(12", "(123) 45", "(123) 456-7".
func FormatPhone(s string) string {
	digits := PhoneDigits(s)
	if len(digits) > PhoneDigitCount {
		digits = digits[:PhoneDigitCount]
	}

	switch n := len(digits); {
	case n == 0:
		return ""
	case n <= 3:
		return "(" + digits
	case n <= 6:
		return "(" + digits[:3] + ") " + digits[3:]
	default:
		return "(" + digits[:3] + ") " + digits[3:6] + "-" + digits[6:]
	}
}
