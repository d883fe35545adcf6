package usecases

import (
	"context"

	"github.com/supportsync-io/supportsync/internal/domain/featurerequest"
	"github.com/supportsync-io/supportsync/internal/shared/authorization"
	"github.com/supportsync-io/supportsync/internal/shared/errors"
	"github.com/supportsync-io/supportsync/internal/shared/logger"
)

type DeleteFeatureRequestCommand struct {
	FeatureRequestID uint
	SubjectID        uint
	SubjectRole      authorization.UserRole
}

type DeleteFeatureRequestUseCase struct {
	frRepo featurerequest.Repository
	logger logger.Interface
}

func NewDeleteFeatureRequestUseCase(frRepo featurerequest.Repository, logger logger.Interface) *DeleteFeatureRequestUseCase {
	return &DeleteFeatureRequestUseCase{
		frRepo: frRepo,
		logger: logger,
	}
}

// Execute removes a feature request plus its comments, upvotes, and
// attachments in one transaction. Only the requester or an admin may delete.
func (uc *DeleteFeatureRequestUseCase) Execute(ctx context.Context, cmd DeleteFeatureRequestCommand) error {
	fr, err := uc.frRepo.GetByID(ctx, cmd.FeatureRequestID)
	if err != nil {
		return err
	}

	if !authorization.CanAccessResource(cmd.SubjectID, cmd.SubjectRole, fr) {
		return errors.NewForbiddenError("not authorized to delete this feature request")
	}

	if err := uc.frRepo.DeleteCascade(ctx, fr.ID()); err != nil {
		uc.logger.Errorw("failed to delete feature request", "error", err, "feature_request_id", fr.ID())
		return err
	}

	uc.logger.Infow("feature request deleted", "feature_request_id", fr.ID(), "subject_id", cmd.SubjectID)
	return nil
}
