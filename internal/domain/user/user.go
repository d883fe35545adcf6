// Package user contains the user aggregate and its repository contract.
package user

import (
	"fmt"
	"time"

	vo "github.com/supportsync-io/supportsync/internal/domain/user/valueobjects"
	"github.com/supportsync-io/supportsync/internal/shared/authorization"
)

// User represents the user aggregate root (pure domain model without
// persistence concerns). Users are never hard-deleted by the core;
// deactivation flips isActive and immediately invalidates outstanding tokens
// through the identity resolution step.
type User struct {
	id           uint
	username     *vo.Username
	email        *vo.Email
	passwordHash string
	role         authorization.UserRole
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

// PasswordHasher abstracts the credential verifier. A verification mismatch
// returns an error indistinguishable from any other verification failure.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// NewUser creates a new user aggregate with the default role.
func NewUser(username *vo.Username, email *vo.Email) (*User, error) {
	if username == nil {
		return nil, fmt.Errorf("username is required")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}

	now := time.Now().UTC()
	return &User{
		username:  username,
		email:     email,
		role:      authorization.RoleUser,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructUser reconstructs a user from persistence.
func ReconstructUser(
	id uint,
	username *vo.Username,
	email *vo.Email,
	passwordHash string,
	role authorization.UserRole,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if username == nil {
		return nil, fmt.Errorf("username is required")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Username() *vo.Username {
	return u.username
}

func (u *User) Email() *vo.Email {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

func (u *User) IsActive() bool {
	return u.isActive
}

func (u *User) IsAdmin() bool {
	return u.role.IsAdmin()
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// SetPassword hashes and stores the password. The plaintext never leaves
// this call.
func (u *User) SetPassword(password *vo.Password, hasher PasswordHasher) error {
	if password == nil {
		return fmt.Errorf("password is required")
	}

	hash, err := hasher.Hash(password.String())
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	u.passwordHash = hash
	u.updatedAt = time.Now().UTC()
	return nil
}

// VerifyPassword checks the plaintext against the stored hash.
func (u *User) VerifyPassword(password string, hasher PasswordHasher) error {
	if u.passwordHash == "" {
		return fmt.Errorf("user has no password set")
	}
	return hasher.Verify(password, u.passwordHash)
}

// ChangeRole assigns a new role. Unknown roles are rejected at this boundary.
func (u *User) ChangeRole(role authorization.UserRole) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}

	if u.role == role {
		return nil
	}

	u.role = role
	u.updatedAt = time.Now().UTC()
	return nil
}

func (u *User) Activate() {
	if u.isActive {
		return
	}
	u.isActive = true
	u.updatedAt = time.Now().UTC()
}

func (u *User) Deactivate() {
	if !u.isActive {
		return
	}
	u.isActive = false
	u.updatedAt = time.Now().UTC()
}
