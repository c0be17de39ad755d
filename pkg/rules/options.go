package rules

import (
	"fmt"
	"slices"
)

// Charset restricts the characters a String value may contain.
type Charset string

const (
	LettersOnly       Charset = "lettersOnly"
	NumbersOnly       Charset = "numbersOnly"
	LettersAndNumbers Charset = "lettersAndNumbers"
)

// Options is the constraint bundle shared by all rules. Each rule reads only
// the keys that apply to its type. Pointer fields are optional: nil means the
// constraint is not set.
type Options struct {
	// String
	CanBeEmpty  *bool    `yaml:"canBeEmpty,omitempty" json:"canBeEmpty,omitempty"`
	AllowSpaces *bool    `yaml:"allowSpaces,omitempty" json:"allowSpaces,omitempty"`
	MinSymbols  *int     `yaml:"minSymbols,omitempty" json:"minSymbols,omitempty"`
	MaxSymbols  *int     `yaml:"maxSymbols,omitempty" json:"maxSymbols,omitempty"`
	Include     Charset  `yaml:"include,omitempty" json:"include,omitempty"`
	Locales     []string `yaml:"locales,omitempty" json:"locales,omitempty"`
	BlackList   []string `yaml:"blackList,omitempty" json:"blackList,omitempty"`
	MaxWords    *int     `yaml:"maxWords,omitempty" json:"maxWords,omitempty"`
	Enum        []string `yaml:"enum,omitempty" json:"enum,omitempty"`

	// Number
	Min *float64 `yaml:"min,omitempty" json:"min,omitempty"`
	Max *float64 `yaml:"max,omitempty" json:"max,omitempty"`

	// URL
	Protocols []string `yaml:"protocols,omitempty" json:"protocols,omitempty"`

	// Array
	MinRecords         *int     `yaml:"minRecords,omitempty" json:"minRecords,omitempty"`
	MaxRecords         *int     `yaml:"maxRecords,omitempty" json:"maxRecords,omitempty"`
	ArrayValuesType    Type     `yaml:"arrayValuesType,omitempty" json:"arrayValuesType,omitempty"`
	ArrayValuesOptions *Options `yaml:"arrayValuesOptions,omitempty" json:"arrayValuesOptions,omitempty"`
}

// Ptr returns a pointer to v. Handy for optional bounds in literals.
func Ptr[T any](v T) *T {
	return &v
}

// Validate reports contradictory or unknown settings. It checks nested
// ArrayValuesOptions too.
func (o Options) Validate() error {
	if o.MinSymbols != nil && o.MaxSymbols != nil && *o.MinSymbols > *o.MaxSymbols {
		return fmt.Errorf("%w: minSymbols %d > maxSymbols %d", ErrInvalidBounds, *o.MinSymbols, *o.MaxSymbols)
	}
	if o.Min != nil && o.Max != nil && *o.Min > *o.Max {
		return fmt.Errorf("%w: min %v > max %v", ErrInvalidBounds, *o.Min, *o.Max)
	}
	if o.MinRecords != nil && o.MaxRecords != nil && *o.MinRecords > *o.MaxRecords {
		return fmt.Errorf("%w: minRecords %d > maxRecords %d", ErrInvalidBounds, *o.MinRecords, *o.MaxRecords)
	}
	switch o.Include {
	case "", LettersOnly, NumbersOnly, LettersAndNumbers:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCharset, o.Include)
	}
	if _, err := lookupLocales(o.Locales); err != nil {
		return err
	}
	if o.ArrayValuesType != 0 && !o.ArrayValuesType.Valid() {
		return fmt.Errorf("%w: arrayValuesType %d", ErrUnknownType, uint8(o.ArrayValuesType))
	}
	if o.ArrayValuesOptions != nil {
		if err := o.ArrayValuesOptions.Validate(); err != nil {
			return fmt.Errorf("arrayValuesOptions: %w", err)
		}
	}
	return nil
}

// Clone returns a deep copy, so a registered field keeps its own snapshot.
func (o Options) Clone() Options {
	c := o
	c.CanBeEmpty = clonePtr(o.CanBeEmpty)
	c.AllowSpaces = clonePtr(o.AllowSpaces)
	c.MinSymbols = clonePtr(o.MinSymbols)
	c.MaxSymbols = clonePtr(o.MaxSymbols)
	c.MaxWords = clonePtr(o.MaxWords)
	c.Min = clonePtr(o.Min)
	c.Max = clonePtr(o.Max)
	c.MinRecords = clonePtr(o.MinRecords)
	c.MaxRecords = clonePtr(o.MaxRecords)
	c.Locales = slices.Clone(o.Locales)
	c.BlackList = slices.Clone(o.BlackList)
	c.Enum = slices.Clone(o.Enum)
	c.Protocols = slices.Clone(o.Protocols)
	if o.ArrayValuesOptions != nil {
		nested := o.ArrayValuesOptions.Clone()
		c.ArrayValuesOptions = &nested
	}
	return c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// isFalse reports whether an optional flag was explicitly set to false.
func isFalse(p *bool) bool {
	return p != nil && !*p
}

func isTrue(p *bool) bool {
	return p != nil && *p
}
