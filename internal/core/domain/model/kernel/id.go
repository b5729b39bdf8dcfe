package kernel

import (
	"strings"

	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrIDIsRequired is returned for empty or blank identifiers.
var ErrIDIsRequired = errs.NewValueIsRequiredError("id")

// ID is an opaque, non-empty string identifier for orders. Seed data and
// clients may supply their own identifiers, so ID does not insist on UUID
// syntax; NewID generates a random UUID string.
//
// The zero value is invalid.
type ID struct {
	value string
}

// NewID generates a fresh random identifier.
func NewID() ID {
	return ID{value: uuid.NewString()}
}

// IDFromString wraps an existing identifier. Surrounding whitespace is
// trimmed; an empty result is rejected with ErrIDIsRequired.
func IDFromString(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ID{}, ErrIDIsRequired
	}
	return ID{value: s}, nil
}

// String returns the identifier text.
func (id ID) String() string {
	return id.value
}

// IsEqual compares two identifiers by value.
func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}

// Validate fails for the zero value.
func (id ID) Validate() error {
	if id.value == "" {
		return ErrIDIsRequired
	}
	return nil
}
