// Package rules implements the per-type value checks used by the schema
// package: one pure function per data type, each taking a raw value and an
// Options bundle and returning nil on success or a *Violation describing every
// problem found.
//
// Rules hold no state and know nothing about schemas, so they are safe for
// concurrent use and can be called directly:
//
//	err := rules.Number(150, rules.Options{Min: rules.Ptr(0.0), Max: rules.Ptr(99.0)})
//	// err.Error() == "must be max 99!"
//
// # Violations and definition errors
//
// Bad input data is always reported through a *Violation. Contradictory
// options (min greater than max, unknown locale or charset) are programmer
// mistakes: Options.Validate reports them as errors at registration time and
// the rules panic if they are handed such options anyway.
//
// # Dispatch
//
// Check selects the rule for a Type with an exhaustive switch. Array values
// use Check for their elements, which is how arrays of typed values are
// validated.
package rules
