package mappers

import (
	"fmt"

	"github.com/supportsync-io/supportsync/internal/domain/attachment"
	"github.com/supportsync-io/supportsync/internal/infrastructure/persistence/models"
)

// AttachmentMapper handles the conversion between Attachment domain entities
// and persistence models.
type AttachmentMapper interface {
	ToModel(a *attachment.Attachment) *models.AttachmentModel
	ToDomain(model *models.AttachmentModel) (*attachment.Attachment, error)
}

type AttachmentMapperImpl struct{}

func NewAttachmentMapper() AttachmentMapper {
	return &AttachmentMapperImpl{}
}

func (m *AttachmentMapperImpl) ToModel(a *attachment.Attachment) *models.AttachmentModel {
	return &models.AttachmentModel{
		ID:               a.ID(),
		Filename:         a.Filename(),
		StoredName:       a.StoredName(),
		FileType:         a.FileType(),
		FileSize:         a.FileSize(),
		OwnerID:          a.OwnerID(),
		TicketID:         a.TicketID(),
		FeatureRequestID: a.FeatureRequestID(),
		CreatedAt:        a.CreatedAt().UnixMilli(),
	}
}

func (m *AttachmentMapperImpl) ToDomain(model *models.AttachmentModel) (*attachment.Attachment, error) {
	a, err := attachment.ReconstructAttachment(
		model.ID,
		model.Filename,
		model.StoredName,
		model.FileType,
		model.FileSize,
		model.OwnerID,
		model.TicketID,
		model.FeatureRequestID,
		millisToTime(model.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct attachment (id=%d): %w", model.ID, err)
	}
	return a, nil
}
