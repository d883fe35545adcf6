package usecases

import (
	"context"

	"github.com/supportsync-io/supportsync/internal/domain/user"
	"github.com/supportsync-io/supportsync/internal/infrastructure/ratelimit"
	"github.com/supportsync-io/supportsync/internal/shared/authorization"
	"github.com/supportsync-io/supportsync/internal/shared/errors"
	"github.com/supportsync-io/supportsync/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
	// ClientKey identifies the caller for rate limiting, typically the
	// client IP.
	ClientKey string
}

type LoginResult struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64
	UserID      uint
	Username    string
	Role        string
}

// TokenIssuer signs an access token for a verified identity.
type TokenIssuer interface {
	Issue(email string, role authorization.UserRole) (string, error)
	AccessExpMinutes() int
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	tokens   TokenIssuer
	limiter  ratelimit.LoginLimiter
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokens TokenIssuer,
	limiter ratelimit.LoginLimiter,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		limiter:  limiter,
		logger:   logger,
	}
}

// Execute verifies credentials and issues a bearer token. Every failure mode
// surfaces as the same invalid-credentials error: a missing account, a wrong
// password, and a deactivated account are indistinguishable to the caller.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	if cmd.ClientKey != "" {
		allowed, err := uc.limiter.Allow(ctx, cmd.ClientKey)
		if err != nil {
			uc.logger.Warnw("login rate limiter unavailable", "error", err)
		} else if !allowed {
			return nil, errors.NewValidationError("too many login attempts, try again later")
		}
	}

	u, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewInvalidCredentialsError()
		}
		uc.logger.Errorw("failed to look up user", "error", err)
		return nil, err
	}

	if err := u.VerifyPassword(cmd.Password, uc.hasher); err != nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	if !u.IsActive() {
		return nil, errors.NewInvalidCredentialsError()
	}

	token, err := uc.tokens.Issue(u.Email().String(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	if cmd.ClientKey != "" {
		if err := uc.limiter.Reset(ctx, cmd.ClientKey); err != nil {
			uc.logger.Warnw("failed to reset login rate limit", "error", err)
		}
	}

	uc.logger.Infow("user logged in", "user_id", u.ID())

	return &LoginResult{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(uc.tokens.AccessExpMinutes()) * 60,
		UserID:      u.ID(),
		Username:    u.Username().String(),
		Role:        u.Role().String(),
	}, nil
}
