package user

import (
	"fmt"
	"time"

	vo "github.com/supportsync-io/supportsync/internal/domain/user/valueobjects"
	"github.com/supportsync-io/supportsync/internal/shared/authorization"
)

// Patch carries the optional fields of a partial user update. Only non-nil
// fields are applied; no reflection is involved.
type Patch struct {
	Username     *vo.Username
	Email        *vo.Email
	PasswordHash *string
	Role         *authorization.UserRole
	IsActive     *bool
}

// IsEmpty reports whether the patch carries no changes.
func (p Patch) IsEmpty() bool {
	return p.Username == nil && p.Email == nil && p.PasswordHash == nil &&
		p.Role == nil && p.IsActive == nil
}

// Apply applies the patch to the aggregate. updatedAt advances only when at
// least one field actually changes.
func (u *User) Apply(p Patch) (bool, error) {
	changed := false

	if p.Username != nil && !p.Username.Equals(u.username) {
		u.username = p.Username
		changed = true
	}

	if p.Email != nil && !p.Email.Equals(u.email) {
		u.email = p.Email
		changed = true
	}

	if p.PasswordHash != nil && *p.PasswordHash != u.passwordHash {
		if *p.PasswordHash == "" {
			return false, fmt.Errorf("password hash cannot be empty")
		}
		u.passwordHash = *p.PasswordHash
		changed = true
	}

	if p.Role != nil && *p.Role != u.role {
		if !p.Role.IsValid() {
			return false, fmt.Errorf("invalid role: %s", *p.Role)
		}
		u.role = *p.Role
		changed = true
	}

	if p.IsActive != nil && *p.IsActive != u.isActive {
		u.isActive = *p.IsActive
		changed = true
	}

	if changed {
		u.updatedAt = time.Now().UTC()
	}

	return changed, nil
}
