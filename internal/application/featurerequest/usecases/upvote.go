package usecases

import (
	"context"

	"github.com/supportsync-io/supportsync/internal/domain/featurerequest"
	"github.com/supportsync-io/supportsync/internal/shared/logger"
)

type UpvoteCommand struct {
	FeatureRequestID uint
	SubjectID        uint
}

type UpvoteResult struct {
	FeatureRequestID uint  `json:"feature_request_id"`
	UpvotesCount     int64 `json:"upvotes_count"`
}

type UpvoteUseCase struct {
	frRepo featurerequest.Repository
	logger logger.Interface
}

func NewUpvoteUseCase(frRepo featurerequest.Repository, logger logger.Interface) *UpvoteUseCase {
	return &UpvoteUseCase{
		frRepo: frRepo,
		logger: logger,
	}
}

// Execute records one upvote per user per request. Duplicate detection is left
// to the storage unique key: a second vote surfaces as a conflict from
// AddUpvote, with no read-then-write race. The returned count is re-derived
// from the ledger after the insert.
func (uc *UpvoteUseCase) Execute(ctx context.Context, cmd UpvoteCommand) (*UpvoteResult, error) {
	fr, err := uc.frRepo.GetByID(ctx, cmd.FeatureRequestID)
	if err != nil {
		return nil, err
	}

	if err := uc.frRepo.AddUpvote(ctx, fr.ID(), cmd.SubjectID); err != nil {
		return nil, err
	}

	count, err := uc.frRepo.CountUpvotes(ctx, fr.ID())
	if err != nil {
		uc.logger.Errorw("failed to count upvotes", "error", err, "feature_request_id", fr.ID())
		return nil, err
	}

	uc.logger.Infow("feature request upvoted", "feature_request_id", fr.ID(), "user_id", cmd.SubjectID)

	return &UpvoteResult{
		FeatureRequestID: fr.ID(),
		UpvotesCount:     count,
	}, nil
}
