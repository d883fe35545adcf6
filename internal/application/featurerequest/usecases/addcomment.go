package usecases

import (
	"context"

	"github.com/supportsync-io/supportsync/internal/domain/featurerequest"
	"github.com/supportsync-io/supportsync/internal/shared/errors"
	"github.com/supportsync-io/supportsync/internal/shared/logger"
)

type AddCommentCommand struct {
	FeatureRequestID uint
	AuthorID         uint
	Content          string
}

type AddCommentUseCase struct {
	frRepo featurerequest.Repository
	logger logger.Interface
}

func NewAddCommentUseCase(frRepo featurerequest.Repository, logger logger.Interface) *AddCommentUseCase {
	return &AddCommentUseCase{
		frRepo: frRepo,
		logger: logger,
	}
}

// Execute appends an immutable comment. Any authenticated user may comment on
// any feature request; only existence is checked first.
func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*CommentDTO, error) {
	fr, err := uc.frRepo.GetByID(ctx, cmd.FeatureRequestID)
	if err != nil {
		return nil, err
	}

	comment, err := featurerequest.NewComment(fr.ID(), cmd.AuthorID, cmd.Content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.frRepo.SaveComment(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "error", err, "feature_request_id", fr.ID())
		return nil, err
	}

	dto := toCommentDTO(comment)
	return &dto, nil
}
