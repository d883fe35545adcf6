package usecases

import (
	"context"

	"github.com/supportsync-io/supportsync/internal/domain/featurerequest"
	vo "github.com/supportsync-io/supportsync/internal/domain/featurerequest/valueobjects"
	"github.com/supportsync-io/supportsync/internal/shared/authorization"
	"github.com/supportsync-io/supportsync/internal/shared/errors"
	"github.com/supportsync-io/supportsync/internal/shared/logger"
)

type UpdateFeatureRequestCommand struct {
	FeatureRequestID uint
	SubjectID        uint
	SubjectRole      authorization.UserRole

	Title       *string
	Description *string
	Priority    *string
	Status      *string
}

type UpdateFeatureRequestUseCase struct {
	frRepo featurerequest.Repository
	logger logger.Interface
}

func NewUpdateFeatureRequestUseCase(frRepo featurerequest.Repository, logger logger.Interface) *UpdateFeatureRequestUseCase {
	return &UpdateFeatureRequestUseCase{
		frRepo: frRepo,
		logger: logger,
	}
}

// Execute applies a partial update. Existence is settled before permission,
// then only the requester or an admin may change the request. Status may move
// to any defined value; there is no review pipeline order to enforce.
func (uc *UpdateFeatureRequestUseCase) Execute(ctx context.Context, cmd UpdateFeatureRequestCommand) (*FeatureRequestDTO, error) {
	fr, err := uc.frRepo.GetByID(ctx, cmd.FeatureRequestID)
	if err != nil {
		return nil, err
	}

	if !authorization.CanAccessResource(cmd.SubjectID, cmd.SubjectRole, fr) {
		return nil, errors.NewForbiddenError("not authorized to modify this feature request")
	}

	patch := featurerequest.Patch{
		Title:       cmd.Title,
		Description: cmd.Description,
	}

	if cmd.Priority != nil {
		priority, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		patch.Priority = &priority
	}

	if cmd.Status != nil {
		status, err := vo.NewStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		patch.Status = &status
	}

	changed, err := fr.Apply(patch)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if changed {
		if err := uc.frRepo.Update(ctx, fr); err != nil {
			uc.logger.Errorw("failed to update feature request", "error", err, "feature_request_id", fr.ID())
			return nil, err
		}
	}

	upvotes, err := uc.frRepo.CountUpvotes(ctx, fr.ID())
	if err != nil {
		return nil, err
	}

	dto := toFeatureRequestDTO(fr, upvotes)
	return &dto, nil
}
