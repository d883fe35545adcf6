package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supportsync-io/supportsync/internal/domain/user"
	apperrors "github.com/supportsync-io/supportsync/internal/shared/errors"
)

func TestCreateUserUseCase_HonorsRequestedRole(t *testing.T) {
	repo := &mockUserRepository{
		CreateFunc: func(ctx context.Context, u *user.User) error {
			return u.SetID(1)
		},
	}

	uc := NewCreateUserUseCase(repo, stubHasher{}, &mockLogger{})
	dto, err := uc.Execute(context.Background(), CreateUserCommand{
		Username: "agent1",
		Email:    "agent1@example.com",
		Password: "pw123",
		Role:     "agent",
	})

	require.NoError(t, err)
	assert.Equal(t, "agent", dto.Role)
}

func TestCreateUserUseCase_DefaultRoleWhenOmitted(t *testing.T) {
	repo := &mockUserRepository{
		CreateFunc: func(ctx context.Context, u *user.User) error {
			return u.SetID(1)
		},
	}

	uc := NewCreateUserUseCase(repo, stubHasher{}, &mockLogger{})
	dto, err := uc.Execute(context.Background(), CreateUserCommand{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "pw123",
	})

	require.NoError(t, err)
	assert.Equal(t, "user", dto.Role)
}

func TestCreateUserUseCase_UnknownRoleRejected(t *testing.T) {
	uc := NewCreateUserUseCase(&mockUserRepository{}, stubHasher{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), CreateUserCommand{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "pw123",
		Role:     "superuser",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestCreateUserUseCase_EmailConflict(t *testing.T) {
	repo := &mockUserRepository{
		ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) {
			return true, nil
		},
	}

	uc := NewCreateUserUseCase(repo, stubHasher{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), CreateUserCommand{
		Username: "bob",
		Email:    "taken@example.com",
		Password: "pw123",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
}
