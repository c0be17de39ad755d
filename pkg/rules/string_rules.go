package rules

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// String checks that value is a string and applies every configured string
// constraint. All violated constraints are reported together.
func String(value any, opts Options) error {
	if opts.MinSymbols != nil && opts.MaxSymbols != nil && *opts.MinSymbols > *opts.MaxSymbols {
		panic(fmt.Errorf("%w: minSymbols %d > maxSymbols %d", ErrInvalidBounds, *opts.MinSymbols, *opts.MaxSymbols))
	}
	if value == nil {
		return fail("missing value!")
	}
	s, ok := value.(string)
	if !ok {
		return fail("must be a string!")
	}

	trimmed := strings.TrimSpace(s)
	if isFalse(opts.CanBeEmpty) && trimmed == "" {
		return fail("can not be empty!")
	}

	var msgs []string
	if isFalse(opts.AllowSpaces) && strings.Contains(s, " ") {
		msgs = append(msgs, "can not contain spaces!")
	}
	if msg := checkSymbols(trimmed, opts.MinSymbols, opts.MaxSymbols); msg != "" {
		msgs = append(msgs, msg)
	}
	if opts.Include != "" {
		if msg := checkCharset(s, opts); msg != "" {
			msgs = append(msgs, msg)
		}
	}
	for _, banned := range opts.BlackList {
		if banned != "" && strings.Contains(s, banned) {
			msgs = append(msgs, fmt.Sprintf("can not contain '%s'!", banned))
			break
		}
	}
	if opts.MaxWords != nil && countWords(trimmed) > *opts.MaxWords {
		msgs = append(msgs, fmt.Sprintf("must be max. %d words!", *opts.MaxWords))
	}
	if len(opts.Enum) > 0 && !slices.Contains(opts.Enum, s) {
		quoted := make([]string, len(opts.Enum))
		for i, v := range opts.Enum {
			quoted[i] = "'" + v + "'"
		}
		msgs = append(msgs, fmt.Sprintf("must be %s!", strings.Join(quoted, " or ")))
	}
	return fail(msgs...)
}

// nonEmptyString is the common prelude of the format rules.
func nonEmptyString(value any) (string, error) {
	if err := String(value, Options{CanBeEmpty: Ptr(false)}); err != nil {
		return "", err
	}
	return strings.TrimSpace(value.(string)), nil
}

func checkSymbols(s string, minSymbols, maxSymbols *int) string {
	n := utf8.RuneCountInString(s)
	tooShort := minSymbols != nil && n < *minSymbols
	tooLong := maxSymbols != nil && n > *maxSymbols
	if !tooShort && !tooLong {
		return ""
	}
	var parts []string
	if minSymbols != nil {
		parts = append(parts, fmt.Sprintf("must be min. %d characters", *minSymbols))
	}
	if maxSymbols != nil {
		parts = append(parts, fmt.Sprintf("must be max. %d characters", *maxSymbols))
	}
	return strings.Join(parts, " and ") + "!"
}

func checkCharset(s string, opts Options) string {
	set, err := lookupLocales(opts.Locales)
	if err != nil {
		panic(err)
	}
	spaceOK := isTrue(opts.AllowSpaces)

	switch opts.Include {
	case LettersOnly:
		for _, r := range s {
			if !isLetter(r, set) && !(spaceOK && r == ' ') {
				return "must contain only letters!"
			}
		}
	case NumbersOnly:
		for _, r := range s {
			if !isDigit(r) && !(spaceOK && r == ' ') {
				return "must contain only numbers!"
			}
		}
	case LettersAndNumbers:
		for _, r := range s {
			if !isLetter(r, set) && !isDigit(r) && !(spaceOK && r == ' ') {
				return "must contain only letters and numbers!"
			}
		}
	default:
		panic(fmt.Errorf("%w: %q", ErrUnknownCharset, opts.Include))
	}
	return ""
}

func countWords(s string) int {
	n := 0
	for _, w := range strings.Split(s, " ") {
		if w != "" {
			n++
		}
	}
	return n
}
