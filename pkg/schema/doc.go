// Package schema validates structured records against an ordered set of
// typed field descriptors.
//
// A Schema is built once by registering fields and is read-only afterwards,
// so one instance can serve concurrent validations:
//
//	teams := schema.New().
//		MustAddField(schema.Field{Name: "team", Type: rules.TypeIdentifier, Required: true})
//
//	players := schema.New().
//		MustAddField(schema.Field{
//			Name:     "age",
//			Type:     rules.TypeNumber,
//			Options:  rules.Options{Min: rules.Ptr(0.0), Max: rules.Ptr(99.0)},
//			Required: true,
//		}).
//		MustAddField(schema.Field{Name: "address.city", Type: rules.TypeString}).
//		MustAddField(schema.Field{Name: "previousTeams", Type: rules.TypeArray, Nested: teams})
//
//	res := players.Validate(record, true)
//	if !res.Success {
//		fmt.Println(res.Errors) // 'age' must be max 99! | ...
//	}
//
// Field names may contain dots to reach into nested objects. Records may be
// a single object or an array of objects; in the latter case every element
// is validated and all problems are reported together, without the element
// index.
//
// # Strict mode
//
// Missing required fields are reported only in strict mode. Optional fields
// that are absent are skipped silently in both modes.
//
// # Errors
//
// Definition mistakes (duplicate names, unknown types, contradictory bounds,
// cyclic nesting) are returned by AddField wrapped with ErrDefinition. Bad
// input data never produces an error value: it is described by Result.
//
// # HTTP
//
// Middleware adapts a Schema to net/http and chi middleware chains. Failed
// requests are answered with {"success":false,"errors":"..."} and the
// configured status (422 by default).
//
// # Definitions
//
// Parse and Load build schemas from YAML documents with a "fields" list;
// nested "fields" turn into a nested schema of an Array field.
package schema
