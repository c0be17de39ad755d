package schema

import "errors"

var (
	// ErrDefinition marks every schema definition mistake. Such errors come
	// from programming bugs, never from validated data.
	ErrDefinition = errors.New("invalid schema definition")

	ErrMissingName    = errors.New("field name is required")
	ErrMissingType    = errors.New("field type is required")
	ErrUnknownType    = errors.New("unknown field type")
	ErrDuplicateField = errors.New("field already registered")
	ErrInvalidNested  = errors.New("invalid nested schema")
	ErrSealedSchema   = errors.New("schema is nested in another schema")

	// ErrUnknownField is returned by ValidateSingle for unregistered names.
	ErrUnknownField = errors.New("unknown field")

	// ErrUndefinedValue is returned by ValidateSingle when the value is nil.
	ErrUndefinedValue = errors.New("undefined value")

	// ErrMalformedJSON is returned when a JSON payload cannot be decoded.
	ErrMalformedJSON = errors.New("malformed JSON")
)
