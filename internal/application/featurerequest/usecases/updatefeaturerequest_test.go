package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supportsync-io/supportsync/internal/domain/featurerequest"
	"github.com/supportsync-io/supportsync/internal/shared/authorization"
	apperrors "github.com/supportsync-io/supportsync/internal/shared/errors"
)

func TestUpdateFeatureRequestUseCase_RequesterCanPatch(t *testing.T) {
	var updated *featurerequest.FeatureRequest
	repo := &mockFeatureRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*featurerequest.FeatureRequest, error) {
			return storedFeatureRequest(t, 9, 1), nil
		},
		UpdateFunc: func(ctx context.Context, fr *featurerequest.FeatureRequest) error {
			updated = fr
			return nil
		},
		CountUpvotesFunc: func(ctx context.Context, featureRequestID uint) (int64, error) {
			return 3, nil
		},
	}
	uc := NewUpdateFeatureRequestUseCase(repo, &mockLogger{})

	status := "Approved"
	priority := "High"
	dto, err := uc.Execute(context.Background(), UpdateFeatureRequestCommand{
		FeatureRequestID: 9,
		SubjectID:        1,
		SubjectRole:      authorization.RoleUser,
		Status:           &status,
		Priority:         &priority,
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Approved", dto.Status)
	assert.Equal(t, "High", dto.Priority)
	assert.Equal(t, int64(3), dto.UpvotesCount)
}

func TestUpdateFeatureRequestUseCase_NonOwnerForbidden(t *testing.T) {
	repo := &mockFeatureRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*featurerequest.FeatureRequest, error) {
			return storedFeatureRequest(t, 9, 1), nil
		},
		UpdateFunc: func(ctx context.Context, fr *featurerequest.FeatureRequest) error {
			t.Fatal("update should not be reached for a denied subject")
			return nil
		},
	}
	uc := NewUpdateFeatureRequestUseCase(repo, &mockLogger{})

	title := "hijacked"
	_, err := uc.Execute(context.Background(), UpdateFeatureRequestCommand{
		FeatureRequestID: 9,
		SubjectID:        2,
		SubjectRole:      authorization.RoleUser,
		Title:            &title,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsForbiddenError(err))
}

func TestUpdateFeatureRequestUseCase_AdminCanPatchAny(t *testing.T) {
	repo := &mockFeatureRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*featurerequest.FeatureRequest, error) {
			return storedFeatureRequest(t, 9, 1), nil
		},
	}
	uc := NewUpdateFeatureRequestUseCase(repo, &mockLogger{})

	status := "Rejected"
	dto, err := uc.Execute(context.Background(), UpdateFeatureRequestCommand{
		FeatureRequestID: 9,
		SubjectID:        99,
		SubjectRole:      authorization.RoleAdmin,
		Status:           &status,
	})

	require.NoError(t, err)
	assert.Equal(t, "Rejected", dto.Status)
}

func TestUpdateFeatureRequestUseCase_NoChangeSkipsPersist(t *testing.T) {
	repo := &mockFeatureRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*featurerequest.FeatureRequest, error) {
			return storedFeatureRequest(t, 9, 1), nil
		},
		UpdateFunc: func(ctx context.Context, fr *featurerequest.FeatureRequest) error {
			t.Fatal("no-op patch should not hit the repository")
			return nil
		},
	}
	uc := NewUpdateFeatureRequestUseCase(repo, &mockLogger{})

	title := "Dark mode"
	_, err := uc.Execute(context.Background(), UpdateFeatureRequestCommand{
		FeatureRequestID: 9,
		SubjectID:        1,
		SubjectRole:      authorization.RoleUser,
		Title:            &title,
	})

	require.NoError(t, err)
}

func TestUpdateFeatureRequestUseCase_InvalidEnums(t *testing.T) {
	repo := &mockFeatureRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*featurerequest.FeatureRequest, error) {
			return storedFeatureRequest(t, 9, 1), nil
		},
	}
	uc := NewUpdateFeatureRequestUseCase(repo, &mockLogger{})

	bad := "Done"
	_, err := uc.Execute(context.Background(), UpdateFeatureRequestCommand{
		FeatureRequestID: 9,
		SubjectID:        1,
		SubjectRole:      authorization.RoleUser,
		Status:           &bad,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}
