package rules

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// float64er is satisfied by json.Number and compatible number literals.
type float64er interface {
	Float64() (float64, error)
}

// Number checks that value is numeric (a Go number, a json.Number or a
// numeric string) and within the optional Min/Max bounds.
func Number(value any, opts Options) error {
	if opts.Min != nil && opts.Max != nil && *opts.Min > *opts.Max {
		panic(fmt.Errorf("%w: min %v > max %v", ErrInvalidBounds, *opts.Min, *opts.Max))
	}

	n, msg := toFloat(value)
	if msg != "" {
		return fail(msg)
	}

	var msgs []string
	if opts.Min != nil && n < *opts.Min {
		msgs = append(msgs, fmt.Sprintf("must be min %s!", formatFloat(*opts.Min)))
	}
	if opts.Max != nil && n > *opts.Max {
		msgs = append(msgs, fmt.Sprintf("must be max %s!", formatFloat(*opts.Max)))
	}
	return fail(msgs...)
}

func toFloat(value any) (float64, string) {
	const notNumber = "must be a number!"

	switch v := value.(type) {
	case nil:
		return 0, "missing value!"
	case bool:
		if !v {
			return 0, "missing value!"
		}
		return 0, notNumber
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, "missing value!"
		}
		if !decimalLiteral(s) {
			return 0, notNumber
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, notNumber
		}
		return n, ""
	case float64er:
		if str, ok := v.(fmt.Stringer); ok && !decimalLiteral(str.String()) {
			return 0, notNumber
		}
		n, err := v.Float64()
		if err != nil {
			return 0, notNumber
		}
		return n, ""
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), ""
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), ""
	case reflect.Float32, reflect.Float64:
		n := rv.Float()
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, notNumber
		}
		return n, ""
	}
	return 0, notNumber
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// decimalLiteral rejects the hex and digit-separator forms strconv accepts
// beyond plain decimal or exponent notation.
func decimalLiteral(s string) bool {
	s = strings.TrimLeft(s, "+-")
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return false
	}
	return !strings.Contains(s, "_")
}
