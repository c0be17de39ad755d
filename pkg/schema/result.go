package schema

import (
	"slices"
	"strings"

	"github.com/goccy/go-json"

	"github.com/dmitrymomot/formschema/pkg/rules"
)

// Result is the outcome of one validation pass.
// Errors holds every problem joined with " | " and is empty on success.
type Result struct {
	Success bool
	Errors  string

	problems []string
}

func newResult(problems []string) Result {
	if len(problems) == 0 {
		return Result{Success: true}
	}
	return Result{
		Success:  false,
		Errors:   strings.Join(problems, rules.Separator),
		problems: problems,
	}
}

// Problems returns the individual problems in discovery order.
func (r Result) Problems() []string {
	return slices.Clone(r.problems)
}

// Err converts a failed result into a *ValidationError and returns nil on success.
func (r Result) Err() error {
	if r.Success {
		return nil
	}
	return &ValidationError{Problems: r.Problems()}
}

// MarshalJSON renders {"success":true,"errors":null} or
// {"success":false,"errors":"..."}.
func (r Result) MarshalJSON() ([]byte, error) {
	payload := struct {
		Success bool    `json:"success"`
		Errors  *string `json:"errors"`
	}{Success: r.Success}
	if !r.Success {
		payload.Errors = &r.Errors
	}
	return json.Marshal(payload)
}

// ValidationError wraps the problems of a failed Result.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Problems, rules.Separator)
}
