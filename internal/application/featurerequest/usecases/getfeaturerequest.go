package usecases

import (
	"context"

	"github.com/supportsync-io/supportsync/internal/domain/featurerequest"
	"github.com/supportsync-io/supportsync/internal/shared/logger"
)

type GetFeatureRequestQuery struct {
	FeatureRequestID uint
}

type GetFeatureRequestUseCase struct {
	frRepo featurerequest.Repository
	logger logger.Interface
}

func NewGetFeatureRequestUseCase(frRepo featurerequest.Repository, logger logger.Interface) *GetFeatureRequestUseCase {
	return &GetFeatureRequestUseCase{
		frRepo: frRepo,
		logger: logger,
	}
}

// Execute loads a single feature request. Any authenticated user may read any
// request; there is no ownership gate on this path.
func (uc *GetFeatureRequestUseCase) Execute(ctx context.Context, query GetFeatureRequestQuery) (*FeatureRequestDTO, error) {
	fr, err := uc.frRepo.GetByID(ctx, query.FeatureRequestID)
	if err != nil {
		return nil, err
	}

	upvotes, err := uc.frRepo.CountUpvotes(ctx, fr.ID())
	if err != nil {
		uc.logger.Errorw("failed to count upvotes", "error", err, "feature_request_id", fr.ID())
		return nil, err
	}

	dto := toFeatureRequestDTO(fr, upvotes)
	return &dto, nil
}
