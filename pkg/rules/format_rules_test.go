package rules_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/formschema/pkg/rules"
)

func TestDate(t *testing.T) {
	t.Parallel()

	t.Run("accepts supported layouts", func(t *testing.T) {
		for _, v := range []string{
			"2024-02-29",
			"2024-02-29T10:30:00Z",
			"2024-02-29T10:30:00.123+02:00",
			"2024-02-29T10:30:00",
			"2024-02-29 10:30:00",
			"Thu, 29 Feb 2024 10:30:00 GMT",
			"02/29/2024",
		} {
			assert.NoError(t, rules.Date(v, rules.Options{}), v)
		}
	})

	t.Run("accepts time values", func(t *testing.T) {
		assert.NoError(t, rules.Date(time.Now(), rules.Options{}))
		assert.EqualError(t, rules.Date(time.Time{}, rules.Options{}), "must be a valid date!")
	})

	t.Run("rejects impossible dates", func(t *testing.T) {
		for _, v := range []string{"2023-02-29", "2024-13-01", "yesterday", "29.02.2024"} {
			assert.EqualError(t, rules.Date(v, rules.Options{}), "must be a valid date!", v)
		}
	})

	t.Run("requires a non-empty string first", func(t *testing.T) {
		assert.EqualError(t, rules.Date("  ", rules.Options{}), "can not be empty!")
		assert.EqualError(t, rules.Date(20240229, rules.Options{}), "must be a string!")
		assert.EqualError(t, rules.Date(nil, rules.Options{}), "missing value!")
	})
}

func TestBoolean(t *testing.T) {
	t.Parallel()

	assert.NoError(t, rules.Boolean(true, rules.Options{}))
	assert.NoError(t, rules.Boolean(false, rules.Options{}))
	for _, v := range []any{"true", 1, 0, nil} {
		assert.EqualError(t, rules.Boolean(v, rules.Options{}), "must be a boolean!")
	}
}

func TestEmail(t *testing.T) {
	t.Parallel()

	t.Run("valid addresses", func(t *testing.T) {
		for _, v := range []string{"user@example.com", "first.last+tag@sub.example.org"} {
			assert.NoError(t, rules.Email(v, rules.Options{}), v)
		}
	})

	t.Run("invalid addresses", func(t *testing.T) {
		for _, v := range []string{"not-an-email", "user@", "@example.com", "a b@example.com"} {
			assert.EqualError(t, rules.Email(v, rules.Options{}), "must be a valid email!", v)
		}
	})

	t.Run("empty value fails the string prelude", func(t *testing.T) {
		assert.EqualError(t, rules.Email("", rules.Options{}), "can not be empty!")
	})
}

func TestURL(t *testing.T) {
	t.Parallel()

	t.Run("absolute urls with known protocols", func(t *testing.T) {
		for _, v := range []string{"https://example.com", "http://localhost:8080/path?q=1", "ftp://files.example.com/a.txt"} {
			assert.NoError(t, rules.URL(v, rules.Options{}), v)
		}
	})

	t.Run("rejects urls without protocol or host", func(t *testing.T) {
		for _, v := range []string{"example.com", "/relative/path", "mailto:user@example.com", "https://"} {
			assert.EqualError(t, rules.URL(v, rules.Options{}), "must be a valid URL!", v)
		}
	})

	t.Run("honours configured protocols", func(t *testing.T) {
		opts := rules.Options{Protocols: []string{"wss"}}
		assert.NoError(t, rules.URL("wss://example.com/socket", opts))
		assert.EqualError(t, rules.URL("https://example.com", opts), "must be a valid URL!")
	})
}

func TestIdentifier(t *testing.T) {
	t.Parallel()

	assert.NoError(t, rules.Identifier("507f1f77bcf86cd799439011", rules.Options{}))
	assert.NoError(t, rules.Identifier(bson.NewObjectID(), rules.Options{}))
	for _, v := range []string{"not-an-id", "507f1f77bcf86cd79943901", "507f1f77bcf86cd79943901z"} {
		assert.EqualError(t, rules.Identifier(v, rules.Options{}), "must be a valid identifier!", v)
	}
	assert.EqualError(t, rules.Identifier(42, rules.Options{}), "must be a string!")
}

func TestUUID(t *testing.T) {
	t.Parallel()

	assert.NoError(t, rules.UUID("6ba7b810-9dad-11d1-80b4-00c04fd430c8", rules.Options{}))
	assert.NoError(t, rules.UUID(uuid.New(), rules.Options{}))
	assert.EqualError(t, rules.UUID("6ba7b810-9dad", rules.Options{}), "must be a valid UUID!")
	assert.EqualError(t, rules.UUID("", rules.Options{}), "can not be empty!")
}
