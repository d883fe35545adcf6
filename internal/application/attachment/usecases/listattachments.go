package usecases

import (
	"context"

	"github.com/supportsync-io/supportsync/internal/domain/attachment"
	"github.com/supportsync-io/supportsync/internal/domain/featurerequest"
	"github.com/supportsync-io/supportsync/internal/domain/ticket"
	"github.com/supportsync-io/supportsync/internal/shared/authorization"
	"github.com/supportsync-io/supportsync/internal/shared/errors"
	"github.com/supportsync-io/supportsync/internal/shared/logger"
)

type ListAttachmentsQuery struct {
	SubjectID   uint
	SubjectRole authorization.UserRole

	// exactly one of these selects the parent
	TicketID         *uint
	FeatureRequestID *uint
}

type ListAttachmentsUseCase struct {
	attachmentRepo attachment.Repository
	ticketRepo     ticket.Repository
	frRepo         featurerequest.Repository
	logger         logger.Interface
}

func NewListAttachmentsUseCase(
	attachmentRepo attachment.Repository,
	ticketRepo ticket.Repository,
	frRepo featurerequest.Repository,
	logger logger.Interface,
) *ListAttachmentsUseCase {
	return &ListAttachmentsUseCase{
		attachmentRepo: attachmentRepo,
		ticketRepo:     ticketRepo,
		frRepo:         frRepo,
		logger:         logger,
	}
}

// Execute lists a parent's attachments, applying the parent's own visibility
// rule first.
func (uc *ListAttachmentsUseCase) Execute(ctx context.Context, query ListAttachmentsQuery) ([]AttachmentDTO, error) {
	var items []*attachment.Attachment

	switch {
	case query.TicketID != nil:
		parent, err := uc.ticketRepo.GetByID(ctx, *query.TicketID)
		if err != nil {
			return nil, err
		}
		if !authorization.CanAccessResource(query.SubjectID, query.SubjectRole, parent) {
			return nil, errors.NewForbiddenError("not authorized to view this ticket's attachments")
		}
		if items, err = uc.attachmentRepo.ListByTicket(ctx, parent.ID()); err != nil {
			return nil, err
		}
	case query.FeatureRequestID != nil:
		parent, err := uc.frRepo.GetByID(ctx, *query.FeatureRequestID)
		if err != nil {
			return nil, err
		}
		if items, err = uc.attachmentRepo.ListByFeatureRequest(ctx, parent.ID()); err != nil {
			return nil, err
		}
	default:
		return nil, errors.NewValidationError("a ticket or feature request must be specified")
	}

	dtos := make([]AttachmentDTO, 0, len(items))
	for _, a := range items {
		dtos = append(dtos, toAttachmentDTO(a))
	}
	return dtos, nil
}
