package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supportsync-io/supportsync/internal/domain/featurerequest"
	apperrors "github.com/supportsync-io/supportsync/internal/shared/errors"
)

func TestAddCommentUseCase_AnyAuthenticatedUserMayComment(t *testing.T) {
	repo := &mockFeatureRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*featurerequest.FeatureRequest, error) {
			return storedFeatureRequest(t, 9, 1), nil
		},
		SaveCommentFunc: func(ctx context.Context, c *featurerequest.Comment) error {
			return c.SetID(77)
		},
	}
	uc := NewAddCommentUseCase(repo, &mockLogger{})

	// author 5 is neither requester nor admin
	dto, err := uc.Execute(context.Background(), AddCommentCommand{
		FeatureRequestID: 9,
		AuthorID:         5,
		Content:          "this would save us hours",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(77), dto.ID)
	assert.Equal(t, uint(5), dto.AuthorID)
	assert.Equal(t, uint(9), dto.FeatureRequestID)
}

func TestAddCommentUseCase_EmptyContent(t *testing.T) {
	repo := &mockFeatureRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*featurerequest.FeatureRequest, error) {
			return storedFeatureRequest(t, 9, 1), nil
		},
	}
	uc := NewAddCommentUseCase(repo, &mockLogger{})

	_, err := uc.Execute(context.Background(), AddCommentCommand{
		FeatureRequestID: 9,
		AuthorID:         5,
		Content:          "",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestAddCommentUseCase_MissingRequestIsNotFound(t *testing.T) {
	repo := &mockFeatureRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*featurerequest.FeatureRequest, error) {
			return nil, apperrors.NewNotFoundError("feature request not found")
		},
	}
	uc := NewAddCommentUseCase(repo, &mockLogger{})

	_, err := uc.Execute(context.Background(), AddCommentCommand{
		FeatureRequestID: 404,
		AuthorID:         5,
		Content:          "hello",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestListCommentsUseCase_ReturnsCommentsInStoredOrder(t *testing.T) {
	repo := &mockFeatureRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*featurerequest.FeatureRequest, error) {
			return storedFeatureRequest(t, 9, 1), nil
		},
		ListCommentsFunc: func(ctx context.Context, featureRequestID uint) ([]*featurerequest.Comment, error) {
			first, err := featurerequest.NewComment(featureRequestID, 5, "first")
			if err != nil {
				return nil, err
			}
			second, err := featurerequest.NewComment(featureRequestID, 6, "second")
			if err != nil {
				return nil, err
			}
			return []*featurerequest.Comment{first, second}, nil
		},
	}
	uc := NewListCommentsUseCase(repo, &mockLogger{})

	comments, err := uc.Execute(context.Background(), ListCommentsQuery{FeatureRequestID: 9})

	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Content)
	assert.Equal(t, "second", comments[1].Content)
}
