package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/supportsync-io/supportsync/internal/domain/featurerequest"
	"github.com/supportsync-io/supportsync/internal/infrastructure/persistence/mappers"
	"github.com/supportsync-io/supportsync/internal/infrastructure/persistence/models"
	db "github.com/supportsync-io/supportsync/internal/shared/db"
	apperrors "github.com/supportsync-io/supportsync/internal/shared/errors"
)

type FeatureRequestRepository struct {
	db        *gorm.DB
	txManager *db.TransactionManager
	mapper    mappers.FeatureRequestMapper
}

func NewFeatureRequestRepository(database *gorm.DB) *FeatureRequestRepository {
	return &FeatureRequestRepository{
		db:        database,
		txManager: db.NewTransactionManager(database),
		mapper:    mappers.NewFeatureRequestMapper(),
	}
}

func (r *FeatureRequestRepository) Save(ctx context.Context, fr *featurerequest.FeatureRequest) error {
	model := r.mapper.ToModel(fr)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save feature request: %w", err)
	}

	return fr.SetID(model.ID)
}

func (r *FeatureRequestRepository) Update(ctx context.Context, fr *featurerequest.FeatureRequest) error {
	model := r.mapper.ToModel(fr)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.FeatureRequestModel{}).
		Where("id = ?", model.ID).
		Select("title", "description", "priority", "status", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update feature request: %w", result.Error)
	}

	return nil
}

func (r *FeatureRequestRepository) GetByID(ctx context.Context, id uint) (*featurerequest.FeatureRequest, error) {
	var model models.FeatureRequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("feature request not found")
		}
		return nil, fmt.Errorf("failed to find feature request: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *FeatureRequestRepository) List(ctx context.Context, filter featurerequest.Filter) ([]*featurerequest.FeatureRequest, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.FeatureRequestModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.RequesterID != nil {
		query = query.Where("requester_id = ?", *filter.RequesterID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count feature requests: %w", err)
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var modelList []models.FeatureRequestModel
	if err := query.Order("created_at DESC").Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list feature requests: %w", err)
	}

	requests := make([]*featurerequest.FeatureRequest, 0, len(modelList))
	for i := range modelList {
		fr, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, fr)
	}

	return requests, total, nil
}

// DeleteCascade removes the request together with its comments, upvotes, and
// attachment rows inside one transaction.
func (r *FeatureRequestRepository) DeleteCascade(ctx context.Context, id uint) error {
	return r.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		tx := db.GetTxFromContext(txCtx, r.db)

		if err := tx.Where("feature_request_id = ?", id).Delete(&models.FeatureRequestCommentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete feature request comments: %w", err)
		}

		if err := tx.Where("feature_request_id = ?", id).Delete(&models.FeatureRequestUpvoteModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete feature request upvotes: %w", err)
		}

		if err := tx.Where("feature_request_id = ?", id).Delete(&models.AttachmentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete feature request attachments: %w", err)
		}

		result := tx.Delete(&models.FeatureRequestModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete feature request: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("feature request not found")
		}

		return nil
	})
}

func (r *FeatureRequestRepository) SaveComment(ctx context.Context, c *featurerequest.Comment) error {
	model := r.mapper.CommentToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save feature request comment: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *FeatureRequestRepository) ListComments(ctx context.Context, featureRequestID uint) ([]*featurerequest.Comment, error) {
	var modelList []models.FeatureRequestCommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("feature_request_id = ?", featureRequestID).
		Order("created_at ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list feature request comments: %w", err)
	}

	comments := make([]*featurerequest.Comment, 0, len(modelList))
	for i := range modelList {
		c, err := r.mapper.CommentToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	return comments, nil
}

// AddUpvote inserts a ledger row. Uniqueness rides on the composite index;
// there is deliberately no prior existence check, so concurrent duplicates
// collapse into the same conflict error.
func (r *FeatureRequestRepository) AddUpvote(ctx context.Context, featureRequestID, userID uint) error {
	model := &models.FeatureRequestUpvoteModel{
		FeatureRequestID: featureRequestID,
		UserID:           userID,
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("already upvoted")
		}
		return fmt.Errorf("failed to add upvote: %w", err)
	}

	return nil
}

func (r *FeatureRequestRepository) CountUpvotes(ctx context.Context, featureRequestID uint) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.FeatureRequestUpvoteModel{}).
		Where("feature_request_id = ?", featureRequestID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count upvotes: %w", err)
	}
	return count, nil
}

func (r *FeatureRequestRepository) CountUpvotesBatch(ctx context.Context, featureRequestIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(featureRequestIDs))
	if len(featureRequestIDs) == 0 {
		return counts, nil
	}

	type upvoteCount struct {
		FeatureRequestID uint
		Total            int64
	}

	var rows []upvoteCount
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.FeatureRequestUpvoteModel{}).
		Select("feature_request_id, COUNT(*) AS total").
		Where("feature_request_id IN ?", featureRequestIDs).
		Group("feature_request_id").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count upvotes: %w", err)
	}

	for _, row := range rows {
		counts[row.FeatureRequestID] = row.Total
	}
	return counts, nil
}

func (r *FeatureRequestRepository) HasUpvoted(ctx context.Context, featureRequestID, userID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.FeatureRequestUpvoteModel{}).
		Where("feature_request_id = ? AND user_id = ?", featureRequestID, userID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check upvote: %w", err)
	}
	return count > 0, nil
}
