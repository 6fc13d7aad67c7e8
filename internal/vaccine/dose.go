package vaccine

import (
	"time"

	dErrors "vaxreg/pkg/domain-errors"
)

// DoseLabel distinguishes first and second doses. Vaccines configured with a
// single dose still use D1; nothing beyond D2 is tracked.
type DoseLabel string

const (
	DoseFirst  DoseLabel = "D1"
	DoseSecond DoseLabel = "D2"
)

// DoseLabels lists the labels in form order.
var DoseLabels = []DoseLabel{DoseFirst, DoseSecond}

func (l DoseLabel) String() string {
	return string(l)
}

// ParseDoseLabel accepts exactly "D1" or "D2".
func ParseDoseLabel(s string) (DoseLabel, error) {
	switch l := DoseLabel(s); l {
	case DoseFirst, DoseSecond:
		return l, nil
	default:
		return "", dErrors.New(dErrors.CodeValidation, "invalid dose, use D1 or D2")
	}
}

// DateLayout is the only accepted date format: 4-digit year, 2-digit month,
// 2-digit day, hyphen separated.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date in DateLayout. The result is UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, dErrors.New(dErrors.CodeValidation, "invalid date format, use YYYY-MM-DD")
	}
	return t, nil
}

// Day truncates t to its calendar date at UTC midnight.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole number of days from a to b, negative when b
// is earlier than a.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)) / (24 * time.Hour))
}
