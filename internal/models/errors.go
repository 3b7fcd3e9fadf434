package models

import "fmt"

// InputError marks invalid boundary input: an empty app subset or a
// non-positive threshold. The analytics pipeline rejects these before
// any computation runs.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}
