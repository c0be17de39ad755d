package rules

// Boolean accepts only bool values; "true" strings and 0/1 numbers fail.
func Boolean(value any, _ Options) error {
	if _, ok := value.(bool); !ok {
		return fail("must be a boolean!")
	}
	return nil
}
