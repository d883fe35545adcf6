package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supportsync-io/supportsync/internal/domain/attachment"
	"github.com/supportsync-io/supportsync/internal/shared/authorization"
	apperrors "github.com/supportsync-io/supportsync/internal/shared/errors"
)

func TestDeleteAttachmentUseCase_UploaderDeletes(t *testing.T) {
	var deletedID uint
	attRepo := &mockAttachmentRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*attachment.Attachment, error) {
			return storedAttachment(t, 5, 3, nil, nil), nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deletedID = id
			return nil
		},
	}
	store := &mockFileStore{}
	uc := NewDeleteAttachmentUseCase(attRepo, store, &mockLogger{})

	err := uc.Execute(context.Background(), DeleteAttachmentCommand{
		AttachmentID: 5,
		SubjectID:    3,
		SubjectRole:  authorization.RoleUser,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(5), deletedID)
	assert.Equal(t, []string{"abc123.pdf"}, store.removed)
}

func TestDeleteAttachmentUseCase_NonUploaderForbidden(t *testing.T) {
	attRepo := &mockAttachmentRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*attachment.Attachment, error) {
			return storedAttachment(t, 5, 3, nil, nil), nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			t.Fatal("delete should not be reached for a denied subject")
			return nil
		},
	}
	uc := NewDeleteAttachmentUseCase(attRepo, &mockFileStore{}, &mockLogger{})

	err := uc.Execute(context.Background(), DeleteAttachmentCommand{
		AttachmentID: 5,
		SubjectID:    4,
		SubjectRole:  authorization.RoleUser,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsForbiddenError(err))
}

func TestDeleteAttachmentUseCase_AdminDeletesAny(t *testing.T) {
	attRepo := &mockAttachmentRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*attachment.Attachment, error) {
			return storedAttachment(t, 5, 3, nil, nil), nil
		},
	}
	uc := NewDeleteAttachmentUseCase(attRepo, &mockFileStore{}, &mockLogger{})

	err := uc.Execute(context.Background(), DeleteAttachmentCommand{
		AttachmentID: 5,
		SubjectID:    99,
		SubjectRole:  authorization.RoleAdmin,
	})

	require.NoError(t, err)
}

func TestDeleteAttachmentUseCase_FileRemovalFailureIsNotSurfaced(t *testing.T) {
	attRepo := &mockAttachmentRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*attachment.Attachment, error) {
			return storedAttachment(t, 5, 3, nil, nil), nil
		},
	}
	store := &mockFileStore{
		RemoveFunc: func(storedName string) error {
			return apperrors.NewInternalError("disk unavailable")
		},
	}
	uc := NewDeleteAttachmentUseCase(attRepo, store, &mockLogger{})

	err := uc.Execute(context.Background(), DeleteAttachmentCommand{
		AttachmentID: 5,
		SubjectID:    3,
		SubjectRole:  authorization.RoleUser,
	})

	require.NoError(t, err, "metadata removal already succeeded")
}
