package util

import "time"

// dateLayouts are tried in order when parsing series and request dates.
// The CSV exports use m/d/yy; the HTTP API uses ISO dates.
var dateLayouts = []string{
	"2006-01-02",
	"1/2/06",
	"01/02/2006",
	time.RFC3339,
}

// ParseDate parses s into a UTC calendar day. Returns (t, true) if any layout worked.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Day(t), true
		}
	}
	return time.Time{}, false
}

// Day truncates t to its UTC calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders t as an ISO date.
func FormatDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// AbsDuration returns the absolute distance between two instants.
func AbsDuration(a, b time.Time) time.Duration {
	d := a.Sub(b)
	if d < 0 {
		return -d
	}
	return d
}
