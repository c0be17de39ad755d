package rules

import (
	"fmt"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/unicode/rangetable"
)

// DefaultLocales are consulted by the charset checks when Options.Locales is empty.
var DefaultLocales = []string{"en-US", "bg-BG"}

type alphabet struct {
	letters *unicode.RangeTable
}

func newAlphabet(upper, lower string) alphabet {
	return alphabet{letters: rangetable.New([]rune(upper + lower)...)}
}

var digits = rangetable.New([]rune("0123456789")...)

var alphabets = map[language.Tag]alphabet{
	language.MustParse("en-US"): newAlphabet(
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ",
		"abcdefghijklmnopqrstuvwxyz",
	),
	language.MustParse("bg-BG"): newAlphabet(
		"АБВГДЕЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЬЮЯ",
		"абвгдежзийклмнопрстуфхцчшщъьюя",
	),
	language.MustParse("ru-RU"): newAlphabet(
		"АБВГДЕЁЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯ",
		"абвгдеёжзийклмнопрстуфхцчшщъыьэюя",
	),
	language.MustParse("de-DE"): newAlphabet(
		"ABCDEFGHIJKLMNOPQRSTUVWXYZÄÖÜ",
		"abcdefghijklmnopqrstuvwxyzäöüß",
	),
}

// SupportedLocales lists the locales with a character table.
func SupportedLocales() []string {
	out := make([]string, 0, len(alphabets))
	for tag := range alphabets {
		out = append(out, tag.String())
	}
	return out
}

func lookupLocales(names []string) ([]alphabet, error) {
	if len(names) == 0 {
		names = DefaultLocales
	}
	out := make([]alphabet, 0, len(names))
	for _, name := range names {
		tag, err := language.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, name)
		}
		a, ok := alphabets[tag]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, name)
		}
		out = append(out, a)
	}
	return out, nil
}

// isLetter accepts r when any of the alphabets knows it.
func isLetter(r rune, set []alphabet) bool {
	for _, a := range set {
		if unicode.Is(a.letters, r) {
			return true
		}
	}
	return false
}

func isDigit(r rune) bool {
	return unicode.Is(digits, r)
}
