// Package usecases implements file upload and attachment lifecycle flows. An
// attachment may be linked to a ticket, to a feature request, or to nothing
// at all; linking to a ticket requires access to that ticket, while feature
// requests accept uploads from any authenticated user.
package usecases

import (
	"io"
	"time"

	"github.com/supportsync-io/supportsync/internal/domain/attachment"
)

// FileStore persists uploaded file contents under opaque stored names.
type FileStore interface {
	Save(originalFilename string, content io.Reader) (string, error)
	Open(storedName string) (io.ReadCloser, error)
	Remove(storedName string) error
}

type AttachmentDTO struct {
	ID               uint      `json:"id"`
	Filename         string    `json:"filename"`
	FileType         string    `json:"file_type"`
	FileSize         int64     `json:"file_size"`
	OwnerID          uint      `json:"owner_id"`
	TicketID         *uint     `json:"ticket_id"`
	FeatureRequestID *uint     `json:"feature_request_id"`
	CreatedAt        time.Time `json:"created_at"`
}

func toAttachmentDTO(a *attachment.Attachment) AttachmentDTO {
	return AttachmentDTO{
		ID:               a.ID(),
		Filename:         a.Filename(),
		FileType:         a.FileType(),
		FileSize:         a.FileSize(),
		OwnerID:          a.OwnerID(),
		TicketID:         a.TicketID(),
		FeatureRequestID: a.FeatureRequestID(),
		CreatedAt:        a.CreatedAt(),
	}
}
