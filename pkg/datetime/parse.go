// Package datetime provides date and time utility functions.
package datetime

import (
	"time"

	"github.com/jgviray/networth-forecast/pkg/constants"
)

const (
	// DateTimeLayout is the format used for optional calendar labeling of
	// projection months.
	DateTimeLayout = constants.DateTimeLayout
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// OffsetDate returns the string-formatted date offset by the given number of
// months relative to the given date.
func OffsetDate(date, layout string, months int) (string, error) {
	t, err := time.Parse(layout, date)
	if err != nil {
		return date, err
	}
	return t.AddDate(0, months, 0).Format(layout), nil
}

// ValidDate reports whether the given date parses with the standard layout.
func ValidDate(date string) bool {
	_, err := time.Parse(DateTimeLayout, date)
	return err == nil
}
