// Package mappers converts between domain entities and persistence models.
package mappers

import (
	"fmt"
	"time"

	"github.com/supportsync-io/supportsync/internal/domain/user"
	vo "github.com/supportsync-io/supportsync/internal/domain/user/valueobjects"
	"github.com/supportsync-io/supportsync/internal/infrastructure/persistence/models"
	"github.com/supportsync-io/supportsync/internal/shared/authorization"
)

// UserMapper handles the conversion between User domain entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Username:     u.Username().String(),
		Email:        u.Email().String(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	username, err := vo.NewUsername(model.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to map user (id=%d): %w", model.ID, err)
	}

	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to map user (id=%d): %w", model.ID, err)
	}

	role, err := authorization.ParseUserRole(model.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to map user (id=%d): %w", model.ID, err)
	}

	u, err := user.ReconstructUser(
		model.ID,
		username,
		email,
		model.PasswordHash,
		role,
		model.IsActive,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user (id=%d): %w", model.ID, err)
	}
	return u, nil
}

func millisToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
