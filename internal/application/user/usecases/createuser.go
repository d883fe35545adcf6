package usecases

import (
	"context"

	"github.com/supportsync-io/supportsync/internal/domain/user"
	vo "github.com/supportsync-io/supportsync/internal/domain/user/valueobjects"
	"github.com/supportsync-io/supportsync/internal/shared/authorization"
	"github.com/supportsync-io/supportsync/internal/shared/errors"
	"github.com/supportsync-io/supportsync/internal/shared/logger"
)

type CreateUserCommand struct {
	Username string
	Email    string
	Password string
	Role     string
}

type CreateUserUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// Execute creates an account with an explicit role. Unlike self-registration
// this honors the requested role, which is why the route is admin-only.
func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*UserDTO, error) {
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

	role := authorization.RoleUser
	if cmd.Role != "" {
		role, err = parseRole(cmd.Role)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	emailTaken, err := uc.userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if emailTaken {
		return nil, errors.NewConflictError("email already registered")
	}

	usernameTaken, err := uc.userRepo.ExistsByUsername(ctx, username.String())
	if err != nil {
		return nil, err
	}
	if usernameTaken {
		return nil, errors.NewConflictError("username already taken")
	}

	newUser, err := user.NewUser(username, email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := newUser.ChangeRole(role); err != nil {
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

	uc.logger.Infow("user created by admin", "user_id", newUser.ID(), "role", newUser.Role().String())

	dto := toUserDTO(newUser)
	return &dto, nil
}

func parseRole(s string) (authorization.UserRole, error) {
	return authorization.ParseUserRole(s)
}
