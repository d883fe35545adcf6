package usecases

import (
	"context"

	"github.com/supportsync-io/supportsync/internal/domain/attachment"
	"github.com/supportsync-io/supportsync/internal/shared/authorization"
	"github.com/supportsync-io/supportsync/internal/shared/errors"
	"github.com/supportsync-io/supportsync/internal/shared/logger"
)

type DeleteAttachmentCommand struct {
	AttachmentID uint
	SubjectID    uint
	SubjectRole  authorization.UserRole
}

type DeleteAttachmentUseCase struct {
	attachmentRepo attachment.Repository
	fileStore      FileStore
	logger         logger.Interface
}

func NewDeleteAttachmentUseCase(attachmentRepo attachment.Repository, fileStore FileStore, logger logger.Interface) *DeleteAttachmentUseCase {
	return &DeleteAttachmentUseCase{
		attachmentRepo: attachmentRepo,
		fileStore:      fileStore,
		logger:         logger,
	}
}

// Execute removes attachment metadata and the stored file. Only the uploader
// or an admin may delete. Metadata goes first; a failure to remove the file
// afterwards is logged, not surfaced, since the attachment is already gone
// from every listing.
func (uc *DeleteAttachmentUseCase) Execute(ctx context.Context, cmd DeleteAttachmentCommand) error {
	att, err := uc.attachmentRepo.GetByID(ctx, cmd.AttachmentID)
	if err != nil {
		return err
	}

	if !authorization.CanAccessResource(cmd.SubjectID, cmd.SubjectRole, att) {
		return errors.NewForbiddenError("not authorized to delete this attachment")
	}

	if err := uc.attachmentRepo.Delete(ctx, att.ID()); err != nil {
		uc.logger.Errorw("failed to delete attachment", "error", err, "attachment_id", att.ID())
		return err
	}

	if err := uc.fileStore.Remove(att.StoredName()); err != nil {
		uc.logger.Warnw("failed to remove stored file", "error", err, "stored_name", att.StoredName())
	}

	uc.logger.Infow("attachment deleted", "attachment_id", att.ID(), "subject_id", cmd.SubjectID)
	return nil
}
