package usecases

import (
	"context"

	"github.com/supportsync-io/supportsync/internal/domain/user"
	vo "github.com/supportsync-io/supportsync/internal/domain/user/valueobjects"
	"github.com/supportsync-io/supportsync/internal/shared/errors"
	"github.com/supportsync-io/supportsync/internal/shared/logger"
)

// UpdateUserCommand is a partial update. Nil fields are left unchanged.
type UpdateUserCommand struct {
	UserID   uint
	Username *string
	Email    *string
	Password *string
	Role     *string
	IsActive *bool
}

type UpdateUserUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

func NewUpdateUserUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*UserDTO, error) {
	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	patch := user.Patch{IsActive: cmd.IsActive}

	if cmd.Username != nil {
		username, err := vo.NewUsername(*cmd.Username)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		patch.Username = username
	}

	if cmd.Email != nil {
		email, err := vo.NewEmail(*cmd.Email)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		patch.Email = email
	}

	if cmd.Role != nil {
		role, err := parseRole(*cmd.Role)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		patch.Role = &role
	}

	if cmd.Password != nil {
		password, err := vo.NewPassword(*cmd.Password)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		hash, err := uc.hasher.Hash(password.String())
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, errors.NewInternalError("failed to process password")
		}
		patch.PasswordHash = &hash
	}

	changed, err := u.Apply(patch)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if changed {
		if err := uc.userRepo.Update(ctx, u); err != nil {
			uc.logger.Errorw("failed to update user", "error", err, "user_id", u.ID())
			return nil, err
		}
	}

	dto := toUserDTO(u)
	return &dto, nil
}
