package rules

import "fmt"

// Check runs the rule matching t. It panics with ErrUnknownType for an unset
// or unknown type.
func Check(t Type, value any, opts Options) error {
	switch t {
	case TypeString:
		return String(value, opts)
	case TypeNumber:
		return Number(value, opts)
	case TypeDate:
		return Date(value, opts)
	case TypeBoolean:
		return Boolean(value, opts)
	case TypeEmail:
		return Email(value, opts)
	case TypeURL:
		return URL(value, opts)
	case TypeIdentifier:
		return Identifier(value, opts)
	case TypeArray:
		return Array(value, opts)
	case TypeUUID:
		return UUID(value, opts)
	default:
		panic(fmt.Errorf("%w: %s", ErrUnknownType, t))
	}
}
