package usecases

import (
	"context"

	"github.com/supportsync-io/supportsync/internal/domain/ticket"
	vo "github.com/supportsync-io/supportsync/internal/domain/ticket/valueobjects"
	"github.com/supportsync-io/supportsync/internal/shared/authorization"
	"github.com/supportsync-io/supportsync/internal/shared/errors"
	"github.com/supportsync-io/supportsync/internal/shared/logger"
)

// ListScope selects which slice of tickets the caller is asking for.
type ListScope string

const (
	// ScopeAll is everything the subject may see: all tickets for admins,
	// own tickets for everyone else.
	ScopeAll ListScope = "all"
	// ScopeMine is the subject's own tickets regardless of role.
	ScopeMine ListScope = "mine"
	// ScopeAssigned is tickets currently assigned to the subject.
	ScopeAssigned ListScope = "assigned"
)

type ListTicketsQuery struct {
	SubjectID   uint
	SubjectRole authorization.UserRole
	Scope       ListScope
	Status      string
	Priority    string
	Search      string
	Page        int
	PageSize    int
}

type ListTicketsResult struct {
	Tickets  []TicketDTO
	Total    int64
	Page     int
	PageSize int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute lists tickets. Authorization here is a query filter, not a
// per-item check: the ownership constraint is folded into the repository
// filter before counting and pagination, so totals and pages never leak the
// existence of tickets outside the subject's scope.
func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter := ticket.Filter{
		Search:   query.Search,
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	if query.Status != "" {
		status, err := vo.NewStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}

	switch query.Scope {
	case ScopeMine:
		subject := query.SubjectID
		filter.CreatorID = &subject
	case ScopeAssigned:
		subject := query.SubjectID
		filter.AssigneeID = &subject
	default:
		if !query.SubjectRole.IsAdmin() {
			subject := query.SubjectID
			filter.CreatorID = &subject
		}
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	dtos := make([]TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		dtos = append(dtos, toTicketDTO(t))
	}

	return &ListTicketsResult{
		Tickets:  dtos,
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}
