package rules

import (
	"errors"
	"strings"
)

// Separator joins individual problems in aggregated messages.
const Separator = " | "

var (
	// ErrInvalidBounds is raised when a lower bound is greater than the upper one.
	ErrInvalidBounds = errors.New("invalid bounds")

	// ErrUnknownType is raised for a Type value outside the supported set.
	ErrUnknownType = errors.New("unknown type")

	// ErrUnknownLocale is raised for a locale without a character table.
	ErrUnknownLocale = errors.New("unknown locale")

	// ErrUnknownCharset is raised for an unsupported Include value.
	ErrUnknownCharset = errors.New("unknown charset")
)

// Violation describes why a value failed a rule.
// Each message is a lower-case sentence without the field name.
type Violation struct {
	Messages []string
}

func (v *Violation) Error() string {
	return strings.Join(v.Messages, Separator)
}

// IsViolation reports whether err carries a rule violation.
func IsViolation(err error) bool {
	var v *Violation
	return errors.As(err, &v)
}

// fail returns nil when msgs is empty so callers never get a typed nil error.
func fail(msgs ...string) error {
	if len(msgs) == 0 {
		return nil
	}
	return &Violation{Messages: msgs}
}
