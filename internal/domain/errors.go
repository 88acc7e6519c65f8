package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the referenced product or cart line does not exist.
	ErrNotFound = errors.New("not found")
)

// ValidationError carries the per-field messages of a failed form
// validation. It blocks order submission.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}
