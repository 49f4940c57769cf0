// internal/store/errors.go
package store

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that no facility with the requested ID exists.
var ErrNotFound = errors.New("facility not found")

// ErrConflict indicates an insert with an ID that is already taken.
var ErrConflict = errors.New("facility ID already exists")

// ValidationError carries the list of required fields missing from a record.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %v", e.Missing)
}
