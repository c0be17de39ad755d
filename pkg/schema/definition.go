package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formschema/pkg/rules"
)

// fieldDefinition is the YAML shape of a Field.
//
//	fields:
//	  - name: age
//	    type: Number
//	    required: true
//	    options: {min: 0, max: 99}
//	  - name: previousTeams
//	    type: Array
//	    fields:
//	      - {name: team, type: Identifier, required: true}
type fieldDefinition struct {
	Name     string            `yaml:"name"`
	Type     rules.Type        `yaml:"type"`
	Options  rules.Options     `yaml:"options"`
	Required bool              `yaml:"required"`
	Fields   []fieldDefinition `yaml:"fields"`
}

type definition struct {
	Fields []fieldDefinition `yaml:"fields"`
}

// Parse builds a schema from a YAML definition.
func Parse(data []byte) (*Schema, error) {
	return Load(bytes.NewReader(data))
}

// Load reads a YAML definition from r and builds a schema from it.
func Load(r io.Reader) (*Schema, error) {
	var def definition
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrDefinition, err)
	}
	return build(def.Fields, "")
}

func build(defs []fieldDefinition, prefix string) (*Schema, error) {
	s := New()
	for _, d := range defs {
		var nested *Schema
		if len(d.Fields) > 0 {
			var err error
			if nested, err = build(d.Fields, prefix+d.Name+"."); err != nil {
				return nil, err
			}
		}
		err := s.AddField(Field{
			Name:     d.Name,
			Type:     d.Type,
			Options:  d.Options,
			Required: d.Required,
			Nested:   nested,
		})
		if err != nil {
			if prefix != "" {
				return nil, fmt.Errorf("in %q: %w", prefix[:len(prefix)-1], err)
			}
			return nil, err
		}
	}
	return s, nil
}
