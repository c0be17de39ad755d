package schema

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrymomot/formschema/pkg/rules"
)

// Field describes one validated field.
type Field struct {
	// Name may contain dots to address nested objects, e.g. "address.city".
	Name     string
	Type     rules.Type
	Options  rules.Options
	Required bool

	// Nested validates the elements of an Array field as sub-records.
	Nested *Schema
}

// Schema is an ordered, append-only collection of fields.
// AddField must not be called once the schema is shared between goroutines.
// A schema used as Field.Nested is sealed and accepts no further fields.
type Schema struct {
	fields []Field
	index  map[string]int
	sealed bool
}

// New returns an empty schema.
func New() *Schema {
	return &Schema{index: make(map[string]int)}
}

// AddField registers a field. It returns an error wrapping ErrDefinition when
// the descriptor is malformed.
func (s *Schema) AddField(f Field) error {
	if s.sealed {
		return definitionError(ErrSealedSchema, f.Name)
	}
	if strings.TrimSpace(f.Name) == "" {
		return definitionError(ErrMissingName, "")
	}
	if f.Type == 0 {
		return definitionError(ErrMissingType, f.Name)
	}
	if !f.Type.Valid() {
		return definitionError(ErrUnknownType, f.Name)
	}
	if _, ok := s.index[f.Name]; ok {
		return definitionError(ErrDuplicateField, f.Name)
	}
	if f.Nested != nil {
		if f.Type != rules.TypeArray {
			return fmt.Errorf("%w: %w: field %q: nested schema requires type %s", ErrDefinition, ErrInvalidNested, f.Name, rules.TypeArray)
		}
		if f.Nested == s || f.Nested.contains(s) {
			return fmt.Errorf("%w: %w: field %q: schema can not nest itself", ErrDefinition, ErrInvalidNested, f.Name)
		}
	}
	if err := f.Options.Validate(); err != nil {
		return fmt.Errorf("%w: field %q: %w", ErrDefinition, f.Name, err)
	}

	f.Options = f.Options.Clone()
	if f.Nested != nil {
		f.Nested.sealed = true
	}
	s.index[f.Name] = len(s.fields)
	s.fields = append(s.fields, f)
	return nil
}

// MustAddField is AddField that panics on error. It returns s for chaining.
func (s *Schema) MustAddField(f Field) *Schema {
	if err := s.AddField(f); err != nil {
		panic(err)
	}
	return s
}

// Fields returns a copy of the registered fields in registration order.
// Nested schemas are shared, not copied; they are sealed, so AddField on
// them fails with ErrSealedSchema.
func (s *Schema) Fields() []Field {
	return slices.Clone(s.fields)
}

// Len returns the number of registered fields.
func (s *Schema) Len() int {
	return len(s.fields)
}

// contains reports whether target is reachable through nested schemas of s.
func (s *Schema) contains(target *Schema) bool {
	for _, f := range s.fields {
		if f.Nested == nil {
			continue
		}
		if f.Nested == target || f.Nested.contains(target) {
			return true
		}
	}
	return false
}

func definitionError(kind error, name string) error {
	if name == "" {
		return fmt.Errorf("%w: %w", ErrDefinition, kind)
	}
	return fmt.Errorf("%w: %w: %q", ErrDefinition, kind, name)
}
