package rules

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/goccy/go-json"
)

// Array checks that value is a slice or array, that its length fits the
// MinRecords/MaxRecords bounds and, when ArrayValuesType is set, that every
// element passes that type's rule with ArrayValuesOptions.
func Array(value any, opts Options) error {
	if opts.MinRecords != nil && opts.MaxRecords != nil && *opts.MinRecords > *opts.MaxRecords {
		panic(fmt.Errorf("%w: minRecords %d > maxRecords %d", ErrInvalidBounds, *opts.MinRecords, *opts.MaxRecords))
	}

	items, ok := AsSlice(value)
	if !ok {
		return fail("must be an array!")
	}

	var msgs []string
	if opts.MinRecords != nil && len(items) < *opts.MinRecords {
		msgs = append(msgs, fmt.Sprintf("must have min %d records!", *opts.MinRecords))
	}
	if opts.MaxRecords != nil && len(items) > *opts.MaxRecords {
		msgs = append(msgs, fmt.Sprintf("must have max %d records!", *opts.MaxRecords))
	}

	if opts.ArrayValuesType != 0 {
		var itemOpts Options
		if opts.ArrayValuesOptions != nil {
			itemOpts = *opts.ArrayValuesOptions
		}
		var invalid []string
		for _, item := range items {
			if err := Check(opts.ArrayValuesType, item, itemOpts); err != nil {
				invalid = append(invalid, fmt.Sprintf("'%s' %s", Stringify(item), err))
			}
		}
		if len(invalid) > 0 {
			msgs = append(msgs, "has invalid values: "+strings.Join(invalid, "; "))
		}
	}
	return fail(msgs...)
}

// AsSlice returns the elements of any slice or array value. Strings and
// byte slices are not treated as arrays.
func AsSlice(value any) ([]any, bool) {
	switch v := value.(type) {
	case nil, string, []byte:
		return nil, false
	case []any:
		return v, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// Stringify renders a value for use in messages: scalars as-is, composite
// values as JSON.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct, reflect.Pointer:
		if b, err := json.Marshal(value); err == nil {
			return string(b)
		}
	}
	return fmt.Sprint(value)
}
