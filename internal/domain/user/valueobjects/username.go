package valueobjects

import (
	"fmt"
	"regexp"
	"strings"
)

// usernameRegex allows letters, digits, dots, underscores and hyphens.
var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// Username represents a unique login name value object
type Username struct {
	value string
}

// NewUsername creates a new Username value object with validation
func NewUsername(value string) (*Username, error) {
	normalized := strings.TrimSpace(value)

	if normalized == "" {
		return nil, fmt.Errorf("username cannot be empty")
	}

	if len(normalized) < 3 {
		return nil, fmt.Errorf("username must be at least 3 characters")
	}

	if len(normalized) > 50 {
		return nil, fmt.Errorf("username cannot exceed 50 characters")
	}

	if !usernameRegex.MatchString(normalized) {
		return nil, fmt.Errorf("username may only contain letters, digits, '.', '_' and '-'")
	}

	return &Username{value: normalized}, nil
}

// String returns the string representation of the username
func (u *Username) String() string {
	return u.value
}

// Equals checks if two username objects are equal
func (u *Username) Equals(other *Username) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.value == other.value
}
