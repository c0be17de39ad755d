package schema

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"

	"github.com/goccy/go-json"

	"github.com/dmitrymomot/formschema/pkg/rules"
)

// Validate checks record against every registered field. record may be an
// object or an array of objects. In strict mode absent required fields are
// reported as missing.
func (s *Schema) Validate(record any, strict bool) Result {
	return newResult(validateRecord(s.fields, record, strict))
}

// ValidateFields is Validate restricted to the space-delimited field names.
// Names that are not registered are ignored.
func (s *Schema) ValidateFields(names string, record any, strict bool) Result {
	return newResult(validateRecord(s.subset(names), record, strict))
}

// ValidateSingle runs the rule of one registered field against value and
// returns the raw rule outcome: nil or a *rules.Violation.
func (s *Schema) ValidateSingle(name string, value any) error {
	i, ok := s.index[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	if value == nil {
		return fmt.Errorf("%w: field %q", ErrUndefinedValue, name)
	}
	f := s.fields[i]
	return rules.Check(f.Type, value, f.Options)
}

// ValidateJSON decodes data and validates the result. An empty payload is
// validated as an absent record.
func (s *Schema) ValidateJSON(data []byte, strict bool) (Result, error) {
	record, err := decodeJSON(data)
	if err != nil {
		return Result{}, err
	}
	return s.Validate(record, strict), nil
}

// ResolveField follows a dotted path through nested objects. It reports
// false when a segment is absent or an intermediate value is not an object.
func ResolveField(record any, path string) (any, bool) {
	cur := record
	for _, key := range strings.Split(path, ".") {
		next, ok := lookup(cur, key)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func (s *Schema) subset(names string) []Field {
	wanted := strings.Fields(names)
	out := make([]Field, 0, len(wanted))
	for _, f := range s.fields {
		for _, n := range wanted {
			if n == f.Name {
				out = append(out, f)
				break
			}
		}
	}
	return out
}

// validateRecord validates every element of an array record independently.
// Problems are not tagged with the element index.
func validateRecord(fields []Field, record any, strict bool) []string {
	record = normalize(record)
	items, ok := record.([]any)
	if !ok {
		return validateObject(fields, record, strict)
	}
	var problems []string
	for _, item := range items {
		problems = append(problems, validateObject(fields, normalize(item), strict)...)
	}
	return problems
}

func validateObject(fields []Field, obj any, strict bool) []string {
	var problems []string
	for _, f := range fields {
		value, ok := ResolveField(obj, f.Name)
		if !ok {
			if f.Required && strict {
				problems = append(problems, fmt.Sprintf("Missing field '%s'", f.Name))
			}
			continue
		}

		if err := rules.Check(f.Type, value, f.Options); err != nil {
			problems = append(problems, fmt.Sprintf("'%s' %s", f.Name, err))
		}

		if f.Type != rules.TypeArray || f.Nested == nil {
			continue
		}
		if _, isArray := rules.AsSlice(value); !isArray {
			continue
		}
		if nested := f.Nested.Validate(value, strict); !nested.Success {
			problems = append(problems, fmt.Sprintf("'%s' %s", f.Name, nested.Errors))
		}
	}
	return problems
}

func lookup(obj any, key string) (any, bool) {
	switch m := obj.(type) {
	case nil:
		return nil, false
	case map[string]any:
		v, ok := m[key]
		return v, ok
	}

	rv := reflect.ValueOf(obj)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	v := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
	if !v.IsValid() {
		return nil, false
	}
	return v.Interface(), true
}

// normalize converts Go values that are neither generic objects nor arrays
// (structs, pointers to structs) into their JSON form so dotted paths follow
// the JSON field names.
func normalize(record any) any {
	switch record.(type) {
	case nil, map[string]any, []any:
		return record
	}
	switch reflect.Indirect(reflect.ValueOf(record)).Kind() {
	case reflect.Struct:
	case reflect.Slice, reflect.Array:
		if items, ok := rules.AsSlice(record); ok {
			return items
		}
		return record
	default:
		return record
	}

	data, err := json.Marshal(record)
	if err != nil {
		return record
	}
	out, err := decodeJSON(data)
	if err != nil {
		return record
	}
	return out
}

func decodeJSON(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}
	return out, nil
}
