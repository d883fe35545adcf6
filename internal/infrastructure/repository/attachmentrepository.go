package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/supportsync-io/supportsync/internal/domain/attachment"
	"github.com/supportsync-io/supportsync/internal/infrastructure/persistence/mappers"
	"github.com/supportsync-io/supportsync/internal/infrastructure/persistence/models"
	db "github.com/supportsync-io/supportsync/internal/shared/db"
	apperrors "github.com/supportsync-io/supportsync/internal/shared/errors"
)

type AttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.AttachmentMapper
}

func NewAttachmentRepository(database *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{
		db:     database,
		mapper: mappers.NewAttachmentMapper(),
	}
}

func (r *AttachmentRepository) Save(ctx context.Context, a *attachment.Attachment) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save attachment: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *AttachmentRepository) GetByID(ctx context.Context, id uint) (*attachment.Attachment, error) {
	var model models.AttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("attachment not found")
		}
		return nil, fmt.Errorf("failed to find attachment: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AttachmentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*attachment.Attachment, error) {
	return r.list(ctx, "ticket_id = ?", ticketID)
}

func (r *AttachmentRepository) ListByFeatureRequest(ctx context.Context, featureRequestID uint) ([]*attachment.Attachment, error) {
	return r.list(ctx, "feature_request_id = ?", featureRequestID)
}

func (r *AttachmentRepository) list(ctx context.Context, cond string, arg uint) ([]*attachment.Attachment, error) {
	var modelList []models.AttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where(cond, arg).Order("created_at ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	attachments := make([]*attachment.Attachment, 0, len(modelList))
	for i := range modelList {
		a, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, a)
	}

	return attachments, nil
}

func (r *AttachmentRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.AttachmentModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete attachment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("attachment not found")
	}
	return nil
}
