// Package usecases implements the authentication flows.
package usecases

import (
	"context"
	"time"

	"github.com/supportsync-io/supportsync/internal/domain/user"
	vo "github.com/supportsync-io/supportsync/internal/domain/user/valueobjects"
	"github.com/supportsync-io/supportsync/internal/shared/errors"
	"github.com/supportsync-io/supportsync/internal/shared/logger"
)

type RegisterCommand struct {
	Username string
	Email    string
	Password string
}

type RegisterResult struct {
	UserID    uint
	Username  string
	Email     string
	Role      string
	CreatedAt time.Time
}

type RegisterUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// Execute registers a new account. Self-registered users always get the
// default role; the email conflict is checked before the username one so the
// reported reason is stable.
func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	username, err := vo.NewUsername(cmd.Username)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	password, err := vo.NewPassword(cmd.Password)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	emailTaken, err := uc.userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, err
	}
	if emailTaken {
		return nil, errors.NewConflictError("email already registered")
	}

	usernameTaken, err := uc.userRepo.ExistsByUsername(ctx, username.String())
	if err != nil {
		uc.logger.Errorw("failed to check username existence", "error", err)
		return nil, err
	}
	if usernameTaken {
		return nil, errors.NewConflictError("username already taken")
	}

	newUser, err := user.NewUser(username, email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := newUser.SetPassword(password, uc.hasher); err != nil {
		uc.logger.Errorw("failed to set password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, err
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "username", newUser.Username().String())

	return &RegisterResult{
		UserID:    newUser.ID(),
		Username:  newUser.Username().String(),
		Email:     newUser.Email().String(),
		Role:      newUser.Role().String(),
		CreatedAt: newUser.CreatedAt(),
	}, nil
}
