package usecases

import (
	"context"

	"github.com/supportsync-io/supportsync/internal/domain/featurerequest"
	"github.com/supportsync-io/supportsync/internal/shared/logger"
)

type ListCommentsQuery struct {
	FeatureRequestID uint
}

type ListCommentsUseCase struct {
	frRepo featurerequest.Repository
	logger logger.Interface
}

func NewListCommentsUseCase(frRepo featurerequest.Repository, logger logger.Interface) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		frRepo: frRepo,
		logger: logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) ([]CommentDTO, error) {
	fr, err := uc.frRepo.GetByID(ctx, query.FeatureRequestID)
	if err != nil {
		return nil, err
	}

	comments, err := uc.frRepo.ListComments(ctx, fr.ID())
	if err != nil {
		uc.logger.Errorw("failed to list comments", "error", err, "feature_request_id", fr.ID())
		return nil, err
	}

	dtos := make([]CommentDTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, toCommentDTO(c))
	}
	return dtos, nil
}
