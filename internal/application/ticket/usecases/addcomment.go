package usecases

import (
	"context"

	"github.com/supportsync-io/supportsync/internal/domain/ticket"
	"github.com/supportsync-io/supportsync/internal/shared/authorization"
	"github.com/supportsync-io/supportsync/internal/shared/errors"
	"github.com/supportsync-io/supportsync/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID    uint
	SubjectID   uint
	SubjectRole authorization.UserRole
	Content     string
}

type AddCommentUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewAddCommentUseCase(ticketRepo ticket.Repository, logger logger.Interface) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute appends an immutable comment to a ticket the subject may access.
func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*CommentDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if !authorization.CanAccessResource(cmd.SubjectID, cmd.SubjectRole, t) {
		return nil, errors.NewForbiddenError("not authorized to comment on this ticket")
	}

	comment, err := ticket.NewComment(cmd.TicketID, cmd.SubjectID, cmd.Content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.SaveComment(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	dto := toCommentDTO(comment)
	return &dto, nil
}
