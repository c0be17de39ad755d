package rules

import (
	"fmt"
	"strings"
)

// Type enumerates the supported value types. The zero value means "unset".
type Type uint8

const (
	TypeString Type = iota + 1
	TypeNumber
	TypeDate
	TypeBoolean
	TypeEmail
	TypeURL
	TypeIdentifier
	TypeArray
	TypeUUID
)

var typeNames = [...]string{
	TypeString:     "String",
	TypeNumber:     "Number",
	TypeDate:       "Date",
	TypeBoolean:    "Boolean",
	TypeEmail:      "Email",
	TypeURL:        "URL",
	TypeIdentifier: "Identifier",
	TypeArray:      "Array",
	TypeUUID:       "UUID",
}

// Valid reports whether t is one of the declared types.
func (t Type) Valid() bool {
	return t >= TypeString && t <= TypeUUID
}

func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
	return typeNames[t]
}

// ParseType converts a type name such as "String" or "url" into a Type.
func ParseType(name string) (Type, error) {
	name = strings.TrimSpace(name)
	for i, n := range typeNames {
		if n != "" && strings.EqualFold(n, name) {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, uint8(t))
	}
	return []byte(typeNames[t]), nil
}

func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
