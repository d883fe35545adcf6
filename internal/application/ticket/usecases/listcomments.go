package usecases

import (
	"context"

	"github.com/supportsync-io/supportsync/internal/domain/ticket"
	"github.com/supportsync-io/supportsync/internal/shared/authorization"
	"github.com/supportsync-io/supportsync/internal/shared/errors"
	"github.com/supportsync-io/supportsync/internal/shared/logger"
)

type ListCommentsQuery struct {
	TicketID    uint
	SubjectID   uint
	SubjectRole authorization.UserRole
}

type ListCommentsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListCommentsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) ([]CommentDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	if !authorization.CanAccessResource(query.SubjectID, query.SubjectRole, t) {
		return nil, errors.NewForbiddenError("not authorized to view this ticket's comments")
	}

	comments, err := uc.ticketRepo.ListComments(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list comments", "error", err, "ticket_id", query.TicketID)
		return nil, err
	}

	dtos := make([]CommentDTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, toCommentDTO(c))
	}
	return dtos, nil
}
