package usecases

import (
	"context"
	"io"

	"github.com/supportsync-io/supportsync/internal/domain/attachment"
	"github.com/supportsync-io/supportsync/internal/domain/ticket"
	"github.com/supportsync-io/supportsync/internal/shared/authorization"
	"github.com/supportsync-io/supportsync/internal/shared/errors"
	"github.com/supportsync-io/supportsync/internal/shared/logger"
)

type DownloadAttachmentQuery struct {
	AttachmentID uint
	SubjectID    uint
	SubjectRole  authorization.UserRole
}

type DownloadAttachmentResult struct {
	Filename string
	FileType string
	FileSize int64
	Content  io.ReadCloser
}

type DownloadAttachmentUseCase struct {
	attachmentRepo attachment.Repository
	ticketRepo     ticket.Repository
	fileStore      FileStore
	logger         logger.Interface
}

func NewDownloadAttachmentUseCase(
	attachmentRepo attachment.Repository,
	ticketRepo ticket.Repository,
	fileStore FileStore,
	logger logger.Interface,
) *DownloadAttachmentUseCase {
	return &DownloadAttachmentUseCase{
		attachmentRepo: attachmentRepo,
		ticketRepo:     ticketRepo,
		fileStore:      fileStore,
		logger:         logger,
	}
}

// Execute opens the stored content for streaming. Visibility follows the
// parent: a ticket attachment is readable by whoever can read the ticket, a
// feature request attachment by any authenticated user, and a parentless
// attachment only by its uploader or an admin. The caller closes Content.
func (uc *DownloadAttachmentUseCase) Execute(ctx context.Context, query DownloadAttachmentQuery) (*DownloadAttachmentResult, error) {
	att, err := uc.attachmentRepo.GetByID(ctx, query.AttachmentID)
	if err != nil {
		return nil, err
	}

	switch {
	case att.TicketID() != nil:
		parent, err := uc.ticketRepo.GetByID(ctx, *att.TicketID())
		if err != nil {
			return nil, err
		}
		if !authorization.CanAccessResource(query.SubjectID, query.SubjectRole, parent) {
			return nil, errors.NewForbiddenError("not authorized to download this attachment")
		}
	case att.FeatureRequestID() != nil:
		// feature requests are visible to every authenticated user
	default:
		if !authorization.CanAccessResource(query.SubjectID, query.SubjectRole, att) {
			return nil, errors.NewForbiddenError("not authorized to download this attachment")
		}
	}

	content, err := uc.fileStore.Open(att.StoredName())
	if err != nil {
		uc.logger.Errorw("failed to open stored file", "error", err, "stored_name", att.StoredName())
		return nil, errors.NewInternalError("failed to open stored file")
	}

	return &DownloadAttachmentResult{
		Filename: att.Filename(),
		FileType: att.FileType(),
		FileSize: att.FileSize(),
		Content:  content,
	}, nil
}
