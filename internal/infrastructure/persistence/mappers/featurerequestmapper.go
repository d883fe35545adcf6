package mappers

import (
	"fmt"

	"github.com/supportsync-io/supportsync/internal/domain/featurerequest"
	vo "github.com/supportsync-io/supportsync/internal/domain/featurerequest/valueobjects"
	"github.com/supportsync-io/supportsync/internal/infrastructure/persistence/models"
)

// FeatureRequestMapper handles the conversion between FeatureRequest domain
// entities and persistence models.
type FeatureRequestMapper interface {
	ToModel(fr *featurerequest.FeatureRequest) *models.FeatureRequestModel
	ToDomain(model *models.FeatureRequestModel) (*featurerequest.FeatureRequest, error)
	CommentToModel(c *featurerequest.Comment) *models.FeatureRequestCommentModel
	CommentToDomain(model *models.FeatureRequestCommentModel) (*featurerequest.Comment, error)
}

type FeatureRequestMapperImpl struct{}

func NewFeatureRequestMapper() FeatureRequestMapper {
	return &FeatureRequestMapperImpl{}
}

func (m *FeatureRequestMapperImpl) ToModel(fr *featurerequest.FeatureRequest) *models.FeatureRequestModel {
	return &models.FeatureRequestModel{
		ID:          fr.ID(),
		Title:       fr.Title(),
		Description: fr.Description(),
		Priority:    fr.Priority().String(),
		Status:      fr.Status().String(),
		RequesterID: fr.RequesterID(),
		CreatedAt:   fr.CreatedAt().UnixMilli(),
		UpdatedAt:   fr.UpdatedAt().UnixMilli(),
	}
}

func (m *FeatureRequestMapperImpl) ToDomain(model *models.FeatureRequestModel) (*featurerequest.FeatureRequest, error) {
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("failed to map feature request (id=%d): %w", model.ID, err)
	}

	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to map feature request (id=%d): %w", model.ID, err)
	}

	fr, err := featurerequest.ReconstructFeatureRequest(
		model.ID,
		model.Title,
		model.Description,
		priority,
		status,
		model.RequesterID,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct feature request (id=%d): %w", model.ID, err)
	}
	return fr, nil
}

func (m *FeatureRequestMapperImpl) CommentToModel(c *featurerequest.Comment) *models.FeatureRequestCommentModel {
	return &models.FeatureRequestCommentModel{
		ID:               c.ID(),
		FeatureRequestID: c.FeatureRequestID(),
		AuthorID:         c.AuthorID(),
		Content:          c.Content(),
		CreatedAt:        c.CreatedAt().UnixMilli(),
	}
}

func (m *FeatureRequestMapperImpl) CommentToDomain(model *models.FeatureRequestCommentModel) (*featurerequest.Comment, error) {
	c, err := featurerequest.ReconstructComment(
		model.ID,
		model.FeatureRequestID,
		model.AuthorID,
		model.Content,
		millisToTime(model.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct feature request comment (id=%d): %w", model.ID, err)
	}
	return c, nil
}
