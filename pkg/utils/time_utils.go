package utils

import (
	"regexp"
	"time"
)

// Jakarta time location (WIB, +07:00)
var wibLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Jakarta"); err == nil {
		return loc
	}
	return time.FixedZone("WIB", 7*3600)
}()

func LocationWIB() *time.Location { return wibLoc }

var clockRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ParseDateWIB parses a "2006-01-02" calendar day as WIB midnight.
func ParseDateWIB(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, wibLoc)
}

// ValidClock reports whether s is an "HH:MM" slot label.
func ValidClock(s string) bool { return clockRe.MatchString(s) }

// ClockHour returns the hour component of a valid "HH:MM" label.
func ClockHour(s string) int {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0
	}
	return t.Hour()
}

// StartOfDayWIB truncates t to WIB midnight.
func StartOfDayWIB(t time.Time) time.Time {
	local := t.In(wibLoc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, wibLoc)
}

func FormatDate(t time.Time) string {
	return t.In(wibLoc).Format("2006-01-02")
}

func FormatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatDate(*t)
}
