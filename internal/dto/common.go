package dto

import "time"

// DateLayout is the wire format for all date fields.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD wire date. Dates are parsed once at the
// boundary; malformed input is rejected before it reaches the services.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate serializes a date in the YYYY-MM-DD wire format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDatePtr serializes an optional date, returning nil when absent.
func FormatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}
