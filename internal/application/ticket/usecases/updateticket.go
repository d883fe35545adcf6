package usecases

import (
	"context"

	"github.com/supportsync-io/supportsync/internal/domain/ticket"
	vo "github.com/supportsync-io/supportsync/internal/domain/ticket/valueobjects"
	"github.com/supportsync-io/supportsync/internal/domain/user"
	"github.com/supportsync-io/supportsync/internal/shared/authorization"
	"github.com/supportsync-io/supportsync/internal/shared/errors"
	"github.com/supportsync-io/supportsync/internal/shared/logger"
)

// UpdateTicketCommand is a partial update. AssigneeID distinguishes "leave
// unchanged" (outer nil) from "clear" (inner nil).
type UpdateTicketCommand struct {
	TicketID    uint
	SubjectID   uint
	SubjectRole authorization.UserRole
	Title       *string
	Description *string
	Priority    *string
	Status      *string
	AssigneeID  **uint
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*TicketDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if !authorization.CanAccessResource(cmd.SubjectID, cmd.SubjectRole, t) {
		return nil, errors.NewForbiddenError("not authorized to modify this ticket")
	}

	patch := ticket.Patch{
		Title:       cmd.Title,
		Description: cmd.Description,
	}

	if cmd.Priority != nil {
		priority, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		patch.Priority = &priority
	}

	if cmd.Status != nil {
		status, err := vo.NewStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		patch.Status = &status
	}

	if cmd.AssigneeID != nil {
		if assignee := *cmd.AssigneeID; assignee != nil {
			candidate, err := uc.userRepo.GetByID(ctx, *assignee)
			if err != nil {
				if errors.IsNotFoundError(err) {
					return nil, errors.NewValidationError("assignee does not exist")
				}
				return nil, err
			}
			if !candidate.IsActive() {
				return nil, errors.NewValidationError("assignee is not an active user")
			}
		}
		patch.AssigneeID = cmd.AssigneeID
	}

	changed, err := t.Apply(patch)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if changed {
		if err := uc.ticketRepo.Update(ctx, t); err != nil {
			uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", t.ID())
			return nil, err
		}
	}

	dto := toTicketDTO(t)
	return &dto, nil
}
