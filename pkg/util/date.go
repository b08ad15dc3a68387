package util

import "time"

// AlertTimeLayout is the human-readable timestamp embedded in relayed messages.
const AlertTimeLayout = "2006-01-02 15:04:05"

// FormatLocal renders t in the process-local timezone using AlertTimeLayout.
func FormatLocal(t time.Time) string {
	return t.Local().Format(AlertTimeLayout)
}

// ParseTime tries RFC3339, RFC3339Nano, and unix seconds. Returns (t, true) if any worked.
func ParseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	if ts, err := time.Parse(AlertTimeLayout, s); err == nil {
		return ts, true
	}
	return time.Time{}, false
}
