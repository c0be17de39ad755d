package rules

import (
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Identifier checks that value is a 24 character hex object id.
func Identifier(value any, _ Options) error {
	if _, ok := value.(bson.ObjectID); ok {
		return nil
	}
	s, err := nonEmptyString(value)
	if err != nil {
		return err
	}
	if _, err := bson.ObjectIDFromHex(s); err != nil {
		return fail("must be a valid identifier!")
	}
	return nil
}

// UUID checks that value is a textual UUID.
func UUID(value any, _ Options) error {
	if _, ok := value.(uuid.UUID); ok {
		return nil
	}
	s, err := nonEmptyString(value)
	if err != nil {
		return err
	}
	if _, err := uuid.Parse(s); err != nil {
		return fail("must be a valid UUID!")
	}
	return nil
}
