package predicate

import (
	"regexp"
	"time"
)

var (
	isoWeekRegex    = regexp.MustCompile(`^[-+]?\d{4}-?W(?:0[1-9]|[1-4]\d|5[0-3])(?:-?[1-7])?$`)
	isoOrdinalRegex = regexp.MustCompile(`^[-+]?\d{4}-?(?:00[1-9]|0[1-9]\d|[12]\d{2}|3(?:[0-5]\d|6[0-6]))$`)

	// iso8601Layouts covers calendar dates with optional time, fraction and zone.
	iso8601Layouts = []string{
		"2006",
		"2006-01",
		"2006-01-02",
		"20060102",
		"2006-01-02T15:04",
		"2006-01-02T15:04Z07:00",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05Z07:00",
		"2006-01-02T15:04:05Z0700",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04:05Z07:00",
		"20060102T150405Z0700",
		"20060102T150405",
	}

	// dateLayouts is the lenient set accepted when a string has to become a time.Time.
	dateLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
		time.RFC1123Z,
		time.RFC1123,
		time.RFC850,
		time.ANSIC,
		"01/02/2006",
		"2006/01/02",
	}
)

// IsISO8601 reports whether s is an ISO 8601 date: calendar, week or
// ordinal form, optionally followed by a time and a zone.
func IsISO8601(s string) bool {
	if s == "" {
		return false
	}
	if isoWeekRegex.MatchString(s) || isoOrdinalRegex.MatchString(s) {
		return true
	}
	for _, layout := range iso8601Layouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// ParseDate converts s into a time using the first layout that fits.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsDate reports whether s can be parsed by ParseDate.
func IsDate(s string) bool {
	_, ok := ParseDate(s)
	return ok
}
