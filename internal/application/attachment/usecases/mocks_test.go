package usecases

import (
	"context"
	"io"

	"github.com/supportsync-io/supportsync/internal/domain/attachment"
	"github.com/supportsync-io/supportsync/internal/domain/featurerequest"
	"github.com/supportsync-io/supportsync/internal/domain/ticket"
	"github.com/supportsync-io/supportsync/internal/shared/logger"
)

type mockAttachmentRepository struct {
	SaveFunc                 func(ctx context.Context, a *attachment.Attachment) error
	GetByIDFunc              func(ctx context.Context, id uint) (*attachment.Attachment, error)
	ListByTicketFunc         func(ctx context.Context, ticketID uint) ([]*attachment.Attachment, error)
	ListByFeatureRequestFunc func(ctx context.Context, featureRequestID uint) ([]*attachment.Attachment, error)
	DeleteFunc               func(ctx context.Context, id uint) error
}

func (m *mockAttachmentRepository) Save(ctx context.Context, a *attachment.Attachment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAttachmentRepository) GetByID(ctx context.Context, id uint) (*attachment.Attachment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*attachment.Attachment, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) ListByFeatureRequest(ctx context.Context, featureRequestID uint) ([]*attachment.Attachment, error) {
	if m.ListByFeatureRequestFunc != nil {
		return m.ListByFeatureRequestFunc(ctx, featureRequestID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockTicketRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error   { return nil }
func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error { return nil }

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	return nil, 0, nil
}

func (m *mockTicketRepository) DeleteCascade(ctx context.Context, id uint) error { return nil }

func (m *mockTicketRepository) SaveComment(ctx context.Context, c *ticket.Comment) error { return nil }

func (m *mockTicketRepository) ListComments(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	return nil, nil
}

type mockFeatureRequestRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*featurerequest.FeatureRequest, error)
}

func (m *mockFeatureRequestRepository) Save(ctx context.Context, fr *featurerequest.FeatureRequest) error {
	return nil
}

func (m *mockFeatureRequestRepository) Update(ctx context.Context, fr *featurerequest.FeatureRequest) error {
	return nil
}

func (m *mockFeatureRequestRepository) GetByID(ctx context.Context, id uint) (*featurerequest.FeatureRequest, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockFeatureRequestRepository) List(ctx context.Context, filter featurerequest.Filter) ([]*featurerequest.FeatureRequest, int64, error) {
	return nil, 0, nil
}

func (m *mockFeatureRequestRepository) DeleteCascade(ctx context.Context, id uint) error { return nil }

func (m *mockFeatureRequestRepository) SaveComment(ctx context.Context, c *featurerequest.Comment) error {
	return nil
}

func (m *mockFeatureRequestRepository) ListComments(ctx context.Context, featureRequestID uint) ([]*featurerequest.Comment, error) {
	return nil, nil
}

func (m *mockFeatureRequestRepository) AddUpvote(ctx context.Context, featureRequestID, userID uint) error {
	return nil
}

func (m *mockFeatureRequestRepository) CountUpvotes(ctx context.Context, featureRequestID uint) (int64, error) {
	return 0, nil
}

func (m *mockFeatureRequestRepository) CountUpvotesBatch(ctx context.Context, featureRequestIDs []uint) (map[uint]int64, error) {
	return map[uint]int64{}, nil
}

func (m *mockFeatureRequestRepository) HasUpvoted(ctx context.Context, featureRequestID, userID uint) (bool, error) {
	return false, nil
}

type mockFileStore struct {
	SaveFunc   func(originalFilename string, content io.Reader) (string, error)
	OpenFunc   func(storedName string) (io.ReadCloser, error)
	RemoveFunc func(storedName string) error

	removed []string
}

func (m *mockFileStore) Save(originalFilename string, content io.Reader) (string, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(originalFilename, content)
	}
	return "stored-name", nil
}

func (m *mockFileStore) Open(storedName string) (io.ReadCloser, error) {
	if m.OpenFunc != nil {
		return m.OpenFunc(storedName)
	}
	return io.NopCloser(nil), nil
}

func (m *mockFileStore) Remove(storedName string) error {
	m.removed = append(m.removed, storedName)
	if m.RemoveFunc != nil {
		return m.RemoveFunc(storedName)
	}
	return nil
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
