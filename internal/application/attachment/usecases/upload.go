package usecases

import (
	"context"
	"io"

	"github.com/supportsync-io/supportsync/internal/domain/attachment"
	"github.com/supportsync-io/supportsync/internal/domain/featurerequest"
	"github.com/supportsync-io/supportsync/internal/domain/ticket"
	"github.com/supportsync-io/supportsync/internal/shared/authorization"
	"github.com/supportsync-io/supportsync/internal/shared/errors"
	"github.com/supportsync-io/supportsync/internal/shared/logger"
)

type UploadAttachmentCommand struct {
	Filename         string
	FileType         string
	FileSize         int64
	Content          io.Reader
	SubjectID        uint
	SubjectRole      authorization.UserRole
	TicketID         *uint
	FeatureRequestID *uint
}

type UploadAttachmentUseCase struct {
	attachmentRepo attachment.Repository
	ticketRepo     ticket.Repository
	frRepo         featurerequest.Repository
	fileStore      FileStore
	logger         logger.Interface
}

func NewUploadAttachmentUseCase(
	attachmentRepo attachment.Repository,
	ticketRepo ticket.Repository,
	frRepo featurerequest.Repository,
	fileStore FileStore,
	logger logger.Interface,
) *UploadAttachmentUseCase {
	return &UploadAttachmentUseCase{
		attachmentRepo: attachmentRepo,
		ticketRepo:     ticketRepo,
		frRepo:         frRepo,
		fileStore:      fileStore,
		logger:         logger,
	}
}

// Execute stores an uploaded file and its metadata. The parent, if any, must
// exist before any bytes are written; a ticket parent additionally requires
// the subject to have access to that ticket. When the metadata insert fails
// after the file was written, the stored file is removed again so the content
// store never accumulates orphans.
func (uc *UploadAttachmentUseCase) Execute(ctx context.Context, cmd UploadAttachmentCommand) (*AttachmentDTO, error) {
	if cmd.TicketID != nil && cmd.FeatureRequestID != nil {
		return nil, errors.NewValidationError("attachment cannot belong to both a ticket and a feature request")
	}
	if cmd.FileSize <= 0 {
		return nil, errors.NewValidationError("file is empty")
	}
	if cmd.FileSize > attachment.MaxFileSize {
		return nil, errors.NewValidationError("file size exceeds the 10MB limit")
	}

	if cmd.TicketID != nil {
		parent, err := uc.ticketRepo.GetByID(ctx, *cmd.TicketID)
		if err != nil {
			return nil, err
		}
		if !authorization.CanAccessResource(cmd.SubjectID, cmd.SubjectRole, parent) {
			return nil, errors.NewForbiddenError("not authorized to attach files to this ticket")
		}
	}

	if cmd.FeatureRequestID != nil {
		if _, err := uc.frRepo.GetByID(ctx, *cmd.FeatureRequestID); err != nil {
			return nil, err
		}
	}

	storedName, err := uc.fileStore.Save(cmd.Filename, cmd.Content)
	if err != nil {
		uc.logger.Errorw("failed to store upload", "error", err, "filename", cmd.Filename)
		return nil, errors.NewInternalError("failed to store uploaded file")
	}

	att, err := attachment.NewAttachment(
		cmd.Filename, storedName, cmd.FileType, cmd.FileSize,
		cmd.SubjectID, cmd.TicketID, cmd.FeatureRequestID,
	)
	if err != nil {
		_ = uc.fileStore.Remove(storedName)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.attachmentRepo.Save(ctx, att); err != nil {
		_ = uc.fileStore.Remove(storedName)
		uc.logger.Errorw("failed to save attachment metadata", "error", err)
		return nil, err
	}

	uc.logger.Infow("attachment uploaded",
		"attachment_id", att.ID(), "owner_id", cmd.SubjectID, "size", cmd.FileSize)

	dto := toAttachmentDTO(att)
	return &dto, nil
}
