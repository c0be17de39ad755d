package rules

import (
	"net/url"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultProtocols are accepted by URL when Options.Protocols is empty.
var DefaultProtocols = []string{"http", "https", "ftp"}

var grammar = validator.New()

// Email checks that value is a non-empty string with a valid address.
func Email(value any, _ Options) error {
	s, err := nonEmptyString(value)
	if err != nil {
		return err
	}
	if grammar.Var(s, "email") != nil {
		return fail("must be a valid email!")
	}
	return nil
}

// URL checks that value is an absolute URL with a host and an allowed scheme.
func URL(value any, opts Options) error {
	s, err := nonEmptyString(value)
	if err != nil {
		return err
	}
	if grammar.Var(s, "url") != nil {
		return fail("must be a valid URL!")
	}

	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return fail("must be a valid URL!")
	}
	protocols := opts.Protocols
	if len(protocols) == 0 {
		protocols = DefaultProtocols
	}
	scheme := strings.ToLower(u.Scheme)
	if !slices.ContainsFunc(protocols, func(p string) bool { return strings.EqualFold(p, scheme) }) {
		return fail("must be a valid URL!")
	}
	return nil
}
