package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supportsync-io/supportsync/internal/domain/user"
	vo "github.com/supportsync-io/supportsync/internal/domain/user/valueobjects"
	apperrors "github.com/supportsync-io/supportsync/internal/shared/errors"
)

func storedUser(t *testing.T, active bool) *user.User {
	t.Helper()

	un, err := vo.NewUsername("alice")
	require.NoError(t, err)
	em, err := vo.NewEmail("alice@example.com")
	require.NoError(t, err)
	pw, err := vo.NewPassword("pw123")
	require.NoError(t, err)

	u, err := user.NewUser(un, em)
	require.NoError(t, err)
	require.NoError(t, u.SetPassword(pw, stubHasher{}))
	require.NoError(t, u.SetID(1))
	if !active {
		u.Deactivate()
	}
	return u
}

func TestLoginUseCase_Success(t *testing.T) {
	repo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return storedUser(t, true), nil
		},
	}

	var resetKey string
	limiter := &mockLimiter{
		ResetFunc: func(ctx context.Context, key string) error {
			resetKey = key
			return nil
		},
	}

	uc := NewLoginUseCase(repo, stubHasher{}, &mockTokenIssuer{}, limiter, &mockLogger{})
	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:     "alice@example.com",
		Password:  "pw123",
		ClientKey: "1.2.3.4",
	})

	require.NoError(t, err)
	assert.Equal(t, "token-for-alice@example.com", result.AccessToken)
	assert.Equal(t, "bearer", result.TokenType)
	assert.Equal(t, int64(30*60), result.ExpiresIn)
	assert.Equal(t, "1.2.3.4", resetKey, "successful login clears the rate limit window")
}

func TestLoginUseCase_FailureModesAreIndistinguishable(t *testing.T) {
	tests := []struct {
		name string
		repo *mockUserRepository
		cmd  LoginCommand
	}{
		{
			name: "unknown email",
			repo: &mockUserRepository{
				GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
					return nil, apperrors.NewNotFoundError("user not found")
				},
			},
			cmd: LoginCommand{Email: "ghost@example.com", Password: "pw123"},
		},
		{
			name: "wrong password",
			repo: &mockUserRepository{
				GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
					return storedUser(t, true), nil
				},
			},
			cmd: LoginCommand{Email: "alice@example.com", Password: "wrong"},
		},
		{
			name: "deactivated account with correct password",
			repo: &mockUserRepository{
				GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
					return storedUser(t, false), nil
				},
			},
			cmd: LoginCommand{Email: "alice@example.com", Password: "pw123"},
		},
	}

	var messages []string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewLoginUseCase(tt.repo, stubHasher{}, &mockTokenIssuer{}, &mockLimiter{}, &mockLogger{})
			_, err := uc.Execute(context.Background(), tt.cmd)

			require.Error(t, err)
			appErr := apperrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, 401, appErr.Code)
			messages = append(messages, appErr.Message)
		})
	}

	for _, msg := range messages {
		assert.Equal(t, messages[0], msg, "all failure modes share one message")
	}
}

func TestLoginUseCase_RateLimited(t *testing.T) {
	limiter := &mockLimiter{
		AllowFunc: func(ctx context.Context, key string) (bool, error) {
			return false, nil
		},
	}

	uc := NewLoginUseCase(&mockUserRepository{}, stubHasher{}, &mockTokenIssuer{}, limiter, &mockLogger{})
	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:     "alice@example.com",
		Password:  "pw123",
		ClientKey: "1.2.3.4",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "too many login attempts")
}

func TestLoginUseCase_MissingFields(t *testing.T) {
	uc := NewLoginUseCase(&mockUserRepository{}, stubHasher{}, &mockTokenIssuer{}, &mockLimiter{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), LoginCommand{Email: "", Password: "pw123"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}
