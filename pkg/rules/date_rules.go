package rules

import (
	"time"
)

// dateLayouts are tried in order when parsing Date values.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
	"01/02/2006",
}

// Date checks that value is a non-empty string holding a calendar date or
// timestamp. time.Time values are accepted as is.
func Date(value any, _ Options) error {
	if t, ok := value.(time.Time); ok {
		if t.IsZero() {
			return fail("must be a valid date!")
		}
		return nil
	}
	s, err := nonEmptyString(value)
	if err != nil {
		return err
	}
	if _, ok := ParseDate(s); !ok {
		return fail("must be a valid date!")
	}
	return nil
}

// ParseDate parses s with the first matching supported layout.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
