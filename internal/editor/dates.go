package editor

import "time"

// dateLayouts are tried in order; the first successful parse wins.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"01/02/2006",
}

// ParseDate parses a date string in ISO 8601 or MM/dd/yyyy form.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a parsable date as MM/dd/yyyy. Unparsable strings pass
// through unchanged as display text; they are never an error.
func FormatDate(s string) string {
	if t, ok := ParseDate(s); ok {
		return t.Format("01/02/2006")
	}
	return s
}
