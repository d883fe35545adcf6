package valueobjects

import (
	"fmt"
)

// Password holds a plaintext password that passed validation. It exists only
// in memory on the way to the hasher and is never persisted or logged.
type Password struct {
	value string
}

func NewPassword(plainPassword string) (*Password, error) {
	if len(plainPassword) == 0 {
		return nil, fmt.Errorf("password cannot be empty")
	}

	if len(plainPassword) > 72 {
		return nil, fmt.Errorf("password must not exceed 72 characters (bcrypt limitation)")
	}

	return &Password{value: plainPassword}, nil
}

func (p *Password) String() string {
	return p.value
}
