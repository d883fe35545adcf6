package usecases

import (
	"context"

	"github.com/supportsync-io/supportsync/internal/domain/featurerequest"
	"github.com/supportsync-io/supportsync/internal/shared/logger"
)

type mockFeatureRequestRepository struct {
	SaveFunc              func(ctx context.Context, fr *featurerequest.FeatureRequest) error
	UpdateFunc            func(ctx context.Context, fr *featurerequest.FeatureRequest) error
	GetByIDFunc           func(ctx context.Context, id uint) (*featurerequest.FeatureRequest, error)
	ListFunc              func(ctx context.Context, filter featurerequest.Filter) ([]*featurerequest.FeatureRequest, int64, error)
	DeleteCascadeFunc     func(ctx context.Context, id uint) error
	SaveCommentFunc       func(ctx context.Context, c *featurerequest.Comment) error
	ListCommentsFunc      func(ctx context.Context, featureRequestID uint) ([]*featurerequest.Comment, error)
	AddUpvoteFunc         func(ctx context.Context, featureRequestID, userID uint) error
	CountUpvotesFunc      func(ctx context.Context, featureRequestID uint) (int64, error)
	CountUpvotesBatchFunc func(ctx context.Context, featureRequestIDs []uint) (map[uint]int64, error)
	HasUpvotedFunc        func(ctx context.Context, featureRequestID, userID uint) (bool, error)
}

func (m *mockFeatureRequestRepository) Save(ctx context.Context, fr *featurerequest.FeatureRequest) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, fr)
	}
	return nil
}

func (m *mockFeatureRequestRepository) Update(ctx context.Context, fr *featurerequest.FeatureRequest) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, fr)
	}
	return nil
}

func (m *mockFeatureRequestRepository) GetByID(ctx context.Context, id uint) (*featurerequest.FeatureRequest, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockFeatureRequestRepository) List(ctx context.Context, filter featurerequest.Filter) ([]*featurerequest.FeatureRequest, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockFeatureRequestRepository) DeleteCascade(ctx context.Context, id uint) error {
	if m.DeleteCascadeFunc != nil {
		return m.DeleteCascadeFunc(ctx, id)
	}
	return nil
}

func (m *mockFeatureRequestRepository) SaveComment(ctx context.Context, c *featurerequest.Comment) error {
	if m.SaveCommentFunc != nil {
		return m.SaveCommentFunc(ctx, c)
	}
	return nil
}

func (m *mockFeatureRequestRepository) ListComments(ctx context.Context, featureRequestID uint) ([]*featurerequest.Comment, error) {
	if m.ListCommentsFunc != nil {
		return m.ListCommentsFunc(ctx, featureRequestID)
	}
	return nil, nil
}

func (m *mockFeatureRequestRepository) AddUpvote(ctx context.Context, featureRequestID, userID uint) error {
	if m.AddUpvoteFunc != nil {
		return m.AddUpvoteFunc(ctx, featureRequestID, userID)
	}
	return nil
}

func (m *mockFeatureRequestRepository) CountUpvotes(ctx context.Context, featureRequestID uint) (int64, error) {
	if m.CountUpvotesFunc != nil {
		return m.CountUpvotesFunc(ctx, featureRequestID)
	}
	return 0, nil
}

func (m *mockFeatureRequestRepository) CountUpvotesBatch(ctx context.Context, featureRequestIDs []uint) (map[uint]int64, error) {
	if m.CountUpvotesBatchFunc != nil {
		return m.CountUpvotesBatchFunc(ctx, featureRequestIDs)
	}
	return map[uint]int64{}, nil
}

func (m *mockFeatureRequestRepository) HasUpvoted(ctx context.Context, featureRequestID, userID uint) (bool, error) {
	if m.HasUpvotedFunc != nil {
		return m.HasUpvotedFunc(ctx, featureRequestID, userID)
	}
	return false, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
