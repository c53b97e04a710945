package resource

import (
	"errors"
	"fmt"

	"github.com/langkit/langkit/pkg/culture"
)

var (
	// ErrEmptyKey indicates an empty resource key where a non-empty one is required.
	ErrEmptyKey = errors.New("resource: key must not be empty")

	// ErrDuplicateKey indicates that a key is already in use within the table's culture set.
	ErrDuplicateKey = errors.New("resource: duplicate key")

	// ErrImmutable indicates that at least one culture's language refuses modification.
	ErrImmutable = errors.New("resource: language cannot be changed")

	// ErrCultureNotFound indicates a query for a culture that is not part of
	// the entry's culture set. This is a caller bug, not a recoverable state.
	ErrCultureNotFound = errors.New("resource: culture not found")

	// ErrKeyNotFound indicates an operation on a key the table does not hold.
	ErrKeyNotFound = errors.New("resource: key not found")

	// ErrNoCultures indicates a table constructed without any cultures.
	ErrNoCultures = errors.New("resource: at least one culture is required")
)

// DuplicateKeyError reports which culture already holds the colliding key.
// It unwraps to ErrDuplicateKey.
type DuplicateKeyError struct {
	Key     string
	Culture culture.ID
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("resource: key %q already exists in culture %q", e.Key, e.Culture)
}

func (e *DuplicateKeyError) Unwrap() error { return ErrDuplicateKey }

// ImmutableError reports which culture refused a modification.
// It unwraps to ErrImmutable.
type ImmutableError struct {
	Culture culture.ID
}

func (e *ImmutableError) Error() string {
	return fmt.Sprintf("resource: language for culture %q cannot be changed", e.Culture)
}

func (e *ImmutableError) Unwrap() error { return ErrImmutable }
