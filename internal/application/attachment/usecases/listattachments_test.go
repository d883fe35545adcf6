package usecases

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supportsync-io/supportsync/internal/domain/attachment"
	"github.com/supportsync-io/supportsync/internal/domain/ticket"
	"github.com/supportsync-io/supportsync/internal/shared/authorization"
	apperrors "github.com/supportsync-io/supportsync/internal/shared/errors"
)

func TestListAttachmentsUseCase_TicketParentFollowsTicketAccess(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return storedTicket(t, 10, 1), nil
		},
	}
	attRepo := &mockAttachmentRepository{
		ListByTicketFunc: func(ctx context.Context, ticketID uint) ([]*attachment.Attachment, error) {
			return []*attachment.Attachment{storedAttachment(t, 5, 1, uintPtr(ticketID), nil)}, nil
		},
	}
	uc := NewListAttachmentsUseCase(attRepo, ticketRepo, &mockFeatureRequestRepository{}, &mockLogger{})

	items, err := uc.Execute(context.Background(), ListAttachmentsQuery{
		SubjectID:   1,
		SubjectRole: authorization.RoleUser,
		TicketID:    uintPtr(10),
	})
	require.NoError(t, err)
	require.Len(t, items, 1)

	_, err = uc.Execute(context.Background(), ListAttachmentsQuery{
		SubjectID:   2,
		SubjectRole: authorization.RoleUser,
		TicketID:    uintPtr(10),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsForbiddenError(err))
}

func TestListAttachmentsUseCase_MissingParentSelector(t *testing.T) {
	uc := NewListAttachmentsUseCase(&mockAttachmentRepository{}, &mockTicketRepository{}, &mockFeatureRequestRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), ListAttachmentsQuery{
		SubjectID:   1,
		SubjectRole: authorization.RoleUser,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestDownloadAttachmentUseCase_StreamsContent(t *testing.T) {
	attRepo := &mockAttachmentRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*attachment.Attachment, error) {
			return storedAttachment(t, 5, 3, nil, nil), nil
		},
	}
	store := &mockFileStore{
		OpenFunc: func(storedName string) (io.ReadCloser, error) {
			assert.Equal(t, "abc123.pdf", storedName)
			return io.NopCloser(strings.NewReader("pdf bytes")), nil
		},
	}
	uc := NewDownloadAttachmentUseCase(attRepo, &mockTicketRepository{}, store, &mockLogger{})

	result, err := uc.Execute(context.Background(), DownloadAttachmentQuery{
		AttachmentID: 5,
		SubjectID:    3,
		SubjectRole:  authorization.RoleUser,
	})

	require.NoError(t, err)
	defer result.Content.Close()
	data, err := io.ReadAll(result.Content)
	require.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(data))
	assert.Equal(t, "report.pdf", result.Filename)
}

func TestDownloadAttachmentUseCase_TicketParentGatesDownload(t *testing.T) {
	attRepo := &mockAttachmentRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*attachment.Attachment, error) {
			return storedAttachment(t, 5, 3, uintPtr(10), nil), nil
		},
	}
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return storedTicket(t, 10, 1), nil
		},
	}
	uc := NewDownloadAttachmentUseCase(attRepo, ticketRepo, &mockFileStore{}, &mockLogger{})

	// subject 3 uploaded the file but cannot read ticket 10
	_, err := uc.Execute(context.Background(), DownloadAttachmentQuery{
		AttachmentID: 5,
		SubjectID:    3,
		SubjectRole:  authorization.RoleUser,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsForbiddenError(err))
}
