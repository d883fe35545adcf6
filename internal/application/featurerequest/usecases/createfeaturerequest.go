package usecases

import (
	"context"

	"github.com/supportsync-io/supportsync/internal/domain/featurerequest"
	"github.com/supportsync-io/supportsync/internal/shared/errors"
	"github.com/supportsync-io/supportsync/internal/shared/logger"
)

type CreateFeatureRequestCommand struct {
	Title       string
	Description string
	Priority    string
	Status      string
	RequesterID uint
}

type CreateFeatureRequestUseCase struct {
	frRepo featurerequest.Repository
	logger logger.Interface
}

func NewCreateFeatureRequestUseCase(frRepo featurerequest.Repository, logger logger.Interface) *CreateFeatureRequestUseCase {
	return &CreateFeatureRequestUseCase{
		frRepo: frRepo,
		logger: logger,
	}
}

func (uc *CreateFeatureRequestUseCase) Execute(ctx context.Context, cmd CreateFeatureRequestCommand) (*FeatureRequestDTO, error) {
	fr, err := featurerequest.NewFeatureRequest(cmd.Title, cmd.Description, cmd.Priority, cmd.Status, cmd.RequesterID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.frRepo.Save(ctx, fr); err != nil {
		uc.logger.Errorw("failed to save feature request", "error", err)
		return nil, err
	}

	uc.logger.Infow("feature request created", "feature_request_id", fr.ID(), "requester_id", cmd.RequesterID)

	dto := toFeatureRequestDTO(fr, 0)
	return &dto, nil
}
