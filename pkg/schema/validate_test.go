package schema_test

import (
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formschema/pkg/rules"
	"github.com/dmitrymomot/formschema/pkg/schema"
)

func playersSchema() *schema.Schema {
	teams := schema.New().MustAddField(schema.Field{Name: "team", Type: rules.TypeIdentifier, Required: true})

	return schema.New().
		MustAddField(schema.Field{
			Name:     "age",
			Type:     rules.TypeNumber,
			Options:  rules.Options{Min: rules.Ptr(0.0), Max: rules.Ptr(99.0)},
			Required: true,
		}).
		MustAddField(schema.Field{Name: "email", Type: rules.TypeEmail}).
		MustAddField(schema.Field{Name: "address.city", Type: rules.TypeString, Options: rules.Options{Include: rules.LettersOnly}}).
		MustAddField(schema.Field{
			Name:    "previousTeams",
			Type:    rules.TypeArray,
			Options: rules.Options{ArrayValuesType: rules.TypeString},
			Nested:  teams,
		})
}

func TestValidate_Scenarios(t *testing.T) {
	t.Parallel()

	t.Run("number above max", func(t *testing.T) {
		s := schema.New().MustAddField(schema.Field{
			Name:     "age",
			Type:     rules.TypeNumber,
			Options:  rules.Options{Min: rules.Ptr(0.0), Max: rules.Ptr(99.0)},
			Required: true,
		})
		res := s.Validate(map[string]any{"age": 150}, true)
		assert.False(t, res.Success)
		assert.Equal(t, "'age' must be max 99!", res.Errors)
	})

	t.Run("empty array below min records", func(t *testing.T) {
		s := schema.New().MustAddField(schema.Field{
			Name:    "tags",
			Type:    rules.TypeArray,
			Options: rules.Options{MinRecords: rules.Ptr(1), ArrayValuesType: rules.TypeString},
		})
		res := s.Validate(map[string]any{"tags": []any{}}, true)
		assert.False(t, res.Success)
		assert.Equal(t, "'tags' must have min 1 records!", res.Errors)
	})

	t.Run("nested schema and element type both report", func(t *testing.T) {
		res := playersSchema().Validate(map[string]any{
			"age":           20,
			"previousTeams": []any{map[string]any{"team": "not-an-id"}},
		}, true)
		assert.False(t, res.Success)
		assert.Equal(t, []string{
			`'previousTeams' has invalid values: '{"team":"not-an-id"}' must be a string!`,
			"'previousTeams' 'team' must be a valid identifier!",
		}, res.Problems())
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	s := playersSchema()

	t.Run("valid record", func(t *testing.T) {
		res := s.Validate(map[string]any{
			"age":     30,
			"email":   "ivan@example.com",
			"address": map[string]any{"city": "Sofia"},
		}, true)
		assert.True(t, res.Success)
		assert.Empty(t, res.Errors)
		assert.NoError(t, res.Err())
	})

	t.Run("required only in strict mode", func(t *testing.T) {
		record := map[string]any{"email": "ivan@example.com"}

		strict := s.Validate(record, true)
		assert.Equal(t, "Missing field 'age'", strict.Errors)

		loose := s.Validate(record, false)
		assert.True(t, loose.Success)
	})

	t.Run("absent optional fields are skipped", func(t *testing.T) {
		assert.True(t, s.Validate(map[string]any{"age": 1}, true).Success)
	})

	t.Run("dotted path treats null and missing parents as absent", func(t *testing.T) {
		city := schema.New().MustAddField(schema.Field{Name: "address.city", Type: rules.TypeString, Required: true})

		assert.True(t, city.Validate(map[string]any{"address": map[string]any{"city": "Sofia"}}, true).Success)
		assert.Equal(t, "Missing field 'address.city'", city.Validate(map[string]any{"address": nil}, true).Errors)
		assert.Equal(t, "Missing field 'address.city'", city.Validate(map[string]any{}, true).Errors)
		assert.True(t, city.Validate(map[string]any{"address": nil}, false).Success)
	})

	t.Run("explicit null is a present value", func(t *testing.T) {
		res := s.Validate(map[string]any{"age": nil}, true)
		assert.Equal(t, "'age' missing value!", res.Errors)
	})

	t.Run("errors follow registration order", func(t *testing.T) {
		res := s.Validate(map[string]any{
			"address": map[string]any{"city": "Sofia1"},
			"email":   "nope",
		}, true)
		assert.Equal(t, "Missing field 'age' | 'email' must be a valid email! | 'address.city' must contain only letters!", res.Errors)
	})

	t.Run("array of records flattens errors without index", func(t *testing.T) {
		res := s.Validate([]any{
			map[string]any{"age": 10},
			map[string]any{"age": 200},
			map[string]any{"email": "x"},
		}, true)
		assert.Equal(t, []string{
			"'age' must be max 99!",
			"Missing field 'age'",
			"'email' must be a valid email!",
		}, res.Problems())
	})

	t.Run("nested schema honours strict mode", func(t *testing.T) {
		record := map[string]any{"age": 1, "previousTeams": []any{}}
		assert.True(t, s.Validate(record, true).Success)

		withEmpty := map[string]any{"age": 1, "previousTeams": []any{map[string]any{}}}
		assert.Contains(t, s.Validate(withEmpty, true).Errors, "'previousTeams' Missing field 'team'")
	})

	t.Run("nested schema is skipped for non arrays", func(t *testing.T) {
		res := s.Validate(map[string]any{"age": 1, "previousTeams": "x"}, true)
		assert.Equal(t, "'previousTeams' must be an array!", res.Errors)
	})

	t.Run("idempotent", func(t *testing.T) {
		record := map[string]any{"age": 150, "email": "bad", "previousTeams": []any{map[string]any{"team": "x"}}}
		first := s.Validate(record, true)
		second := s.Validate(record, true)
		assert.Equal(t, first, second)
		assert.Equal(t, 150, record["age"])
	})

	t.Run("failed result converts to error", func(t *testing.T) {
		err := s.Validate(map[string]any{}, true).Err()
		var verr *schema.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"Missing field 'age'"}, verr.Problems)
		assert.EqualError(t, err, "validation failed: Missing field 'age'")
	})
}

func TestValidate_GoValues(t *testing.T) {
	t.Parallel()

	type address struct {
		City string `json:"city"`
	}
	type player struct {
		Age     int      `json:"age"`
		Address address  `json:"address"`
		Tags    []string `json:"tags,omitempty"`
	}

	s := schema.New().
		MustAddField(schema.Field{Name: "age", Type: rules.TypeNumber, Options: rules.Options{Max: rules.Ptr(99.0)}, Required: true}).
		MustAddField(schema.Field{Name: "address.city", Type: rules.TypeString, Options: rules.Options{CanBeEmpty: rules.Ptr(false)}}).
		MustAddField(schema.Field{Name: "tags", Type: rules.TypeArray, Options: rules.Options{MaxRecords: rules.Ptr(1)}})

	t.Run("structs use json names", func(t *testing.T) {
		res := s.Validate(player{Age: 100, Address: address{City: ""}, Tags: []string{"a", "b"}}, true)
		assert.Equal(t, "'age' must be max 99! | 'address.city' can not be empty! | 'tags' must have max 1 records!", res.Errors)
	})

	t.Run("pointer to struct", func(t *testing.T) {
		assert.True(t, s.Validate(&player{Age: 5, Address: address{City: "Sofia"}}, true).Success)
	})

	t.Run("typed slice of maps", func(t *testing.T) {
		res := s.Validate([]map[string]any{{"age": 1}, {"age": 120}}, true)
		assert.Equal(t, "'age' must be max 99!", res.Errors)
	})
}

func TestValidateFields(t *testing.T) {
	t.Parallel()

	s := playersSchema()
	record := map[string]any{"email": "bad", "address": map[string]any{"city": "1"}}

	res := s.ValidateFields("email", record, true)
	assert.Equal(t, "'email' must be a valid email!", res.Errors)

	res = s.ValidateFields("  age   email ", record, true)
	assert.Equal(t, "Missing field 'age' | 'email' must be a valid email!", res.Errors)

	assert.False(t, s.ValidateFields("age", record, true).Success)
	assert.True(t, s.ValidateFields("age", record, false).Success)
	assert.True(t, s.ValidateFields("unknown", record, true).Success)
}

func TestValidateJSON(t *testing.T) {
	t.Parallel()

	s := playersSchema()

	t.Run("decodes numbers exactly", func(t *testing.T) {
		res, err := s.ValidateJSON([]byte(`{"age": 99.5}`), true)
		require.NoError(t, err)
		assert.Equal(t, "'age' must be max 99!", res.Errors)
	})

	t.Run("array payload", func(t *testing.T) {
		res, err := s.ValidateJSON([]byte(`[{"age": 1}, {"age": 2}]`), true)
		require.NoError(t, err)
		assert.True(t, res.Success)
	})

	t.Run("empty payload is an absent record", func(t *testing.T) {
		res, err := s.ValidateJSON(nil, true)
		require.NoError(t, err)
		assert.Equal(t, "Missing field 'age'", res.Errors)
	})

	t.Run("malformed payload", func(t *testing.T) {
		_, err := s.ValidateJSON([]byte(`{"age":`), true)
		assert.ErrorIs(t, err, schema.ErrMalformedJSON)
	})
}

func TestResult_MarshalJSON(t *testing.T) {
	t.Parallel()

	s := playersSchema()

	ok, err := json.Marshal(s.Validate(map[string]any{"age": 1}, true))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"errors":null}`, string(ok))

	failed, err := json.Marshal(s.Validate(map[string]any{"age": 100}, true))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"errors":"'age' must be max 99!"}`, string(failed))
}

func TestArrayProperty(t *testing.T) {
	t.Parallel()

	s := schema.New().MustAddField(schema.Field{
		Name:    "scores",
		Type:    rules.TypeArray,
		Options: rules.Options{ArrayValuesType: rules.TypeNumber, ArrayValuesOptions: &rules.Options{Min: rules.Ptr(0.0)}},
	})

	assert.True(t, s.Validate(map[string]any{"scores": []any{0, 1, 2.5}}, true).Success)

	bad := []any{-1, "abc", 5, -7}
	res := s.Validate(map[string]any{"scores": bad}, true)
	require.False(t, res.Success)
	for _, v := range []string{"'-1'", "'abc'", "'-7'"} {
		assert.Contains(t, res.Errors, v)
	}
	assert.False(t, strings.Contains(res.Errors, "'5'"))
}

// Run with -race: a built schema is shared by every goroutine without locking.
func TestValidate_Concurrent(t *testing.T) {
	t.Parallel()

	s := playersSchema()
	records := []any{
		[]any{
			map[string]any{"age": 150, "email": "bad", "previousTeams": []any{map[string]any{"team": "x"}, 5}},
			map[string]any{"address": map[string]any{"city": "Sofia1"}},
		},
		map[string]any{"age": 30, "address": map[string]any{"city": "Sofia"}},
		map[string]any{"email": "ivan@example.com"},
	}

	type outcome struct {
		full, subset schema.Result
	}
	run := func(strict bool) []outcome {
		out := make([]outcome, len(records))
		for i, r := range records {
			out[i] = outcome{s.Validate(r, strict), s.ValidateFields("age previousTeams", r, strict)}
		}
		return out
	}
	want := map[bool][]outcome{true: run(true), false: run(false)}
	require.False(t, want[true][0].full.Success)
	require.True(t, want[true][1].full.Success)
	require.False(t, want[true][2].subset.Success)
	require.True(t, want[false][2].subset.Success)

	const workers = 50
	got := make([][]outcome, workers)
	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[w] = run(w%2 == 0)
		}()
	}
	wg.Wait()

	for w := range workers {
		assert.Equal(t, want[w%2 == 0], got[w], "worker %d", w)
	}
}
