package schedule

import (
	"strconv"
	"strings"
	"unicode"

	"drd/internal/models"
)

// ParseTimeOfDay normalizes a free-form configured publish time into a
// canonical HH:MM value. Digits from any numeral system are folded to
// ASCII, every other non-colon character becomes a separator, and the
// first one or two numeric groups are read as hour and minute.
// Returns false for anything that does not yield a valid time.
func ParseTimeOfDay(raw string) (models.CanonicalTime, bool) {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsDigit(r):
			b.WriteRune('0' + rune(digitValue(r)))
		default:
			b.WriteRune(':')
		}
	}

	groups := strings.FieldsFunc(b.String(), func(r rune) bool { return r == ':' })
	if len(groups) == 0 {
		return models.CanonicalTime{}, false
	}

	hourPart := twoDigits(groups[0])
	minutePart := "00"
	if len(groups) > 1 {
		minutePart = twoDigits(groups[1])
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return models.CanonicalTime{}, false
	}
	minute, err := strconv.Atoi(minutePart)
	if err != nil {
		return models.CanonicalTime{}, false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return models.CanonicalTime{}, false
	}
	return models.CanonicalTime{Hour: hour, Minute: minute}, true
}

// digitValue maps a Unicode decimal digit to its numeric value. Nd runs
// are contiguous with the zero digit first, so the value is the distance
// walked back to the start of the run.
func digitValue(r rune) int {
	v := 0
	for v < 9 && unicode.IsDigit(r-rune(v)-1) {
		v++
	}
	return v
}

// twoDigits left-pads or truncates a numeric group to exactly 2 digits.
func twoDigits(s string) string {
	if len(s) >= 2 {
		return s[:2]
	}
	return "0" + s
}
