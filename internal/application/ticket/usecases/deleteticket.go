package usecases

import (
	"context"

	"github.com/supportsync-io/supportsync/internal/domain/ticket"
	"github.com/supportsync-io/supportsync/internal/shared/authorization"
	"github.com/supportsync-io/supportsync/internal/shared/errors"
	"github.com/supportsync-io/supportsync/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID    uint
	SubjectID   uint
	SubjectRole authorization.UserRole
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewDeleteTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}

	if !authorization.CanAccessResource(cmd.SubjectID, cmd.SubjectRole, t) {
		return errors.NewForbiddenError("not authorized to delete this ticket")
	}

	if err := uc.ticketRepo.DeleteCascade(ctx, cmd.TicketID); err != nil {
		uc.logger.Errorw("failed to delete ticket", "error", err, "ticket_id", cmd.TicketID)
		return err
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID, "subject_id", cmd.SubjectID)
	return nil
}
