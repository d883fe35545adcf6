package usecases

import (
	"context"

	"github.com/supportsync-io/supportsync/internal/domain/ticket"
	"github.com/supportsync-io/supportsync/internal/shared/authorization"
	"github.com/supportsync-io/supportsync/internal/shared/errors"
	"github.com/supportsync-io/supportsync/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID    uint
	SubjectID   uint
	SubjectRole authorization.UserRole
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute loads a ticket. Existence is settled first: an unknown ID is not
// found even for callers who would have been denied access to it.
func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*TicketDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	if !authorization.CanAccessResource(query.SubjectID, query.SubjectRole, t) {
		return nil, errors.NewForbiddenError("not authorized to access this ticket")
	}

	dto := toTicketDTO(t)
	return &dto, nil
}
