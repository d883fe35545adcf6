// Package attachment contains the uploaded-file entity and its repository
// contract.
package attachment

import (
	"fmt"
	"time"
)

// MaxFileSize is the upper bound for a single uploaded file.
const MaxFileSize = 10 * 1024 * 1024

// Attachment is an uploaded file linked to at most one parent: either a
// ticket or a feature request, never both. A parentless attachment is legal
// (uploaded first, linked later).
type Attachment struct {
	id               uint
	filename         string
	storedName       string
	fileType         string
	fileSize         int64
	ownerID          uint
	ticketID         *uint
	featureRequestID *uint
	createdAt        time.Time
}

func NewAttachment(filename, storedName, fileType string, fileSize int64, ownerID uint, ticketID, featureRequestID *uint) (*Attachment, error) {
	if len(filename) == 0 {
		return nil, fmt.Errorf("filename is required")
	}
	if len(filename) > 255 {
		return nil, fmt.Errorf("filename exceeds maximum length of 255 characters")
	}
	if len(storedName) == 0 {
		return nil, fmt.Errorf("stored name is required")
	}
	if fileSize <= 0 {
		return nil, fmt.Errorf("file size must be positive")
	}
	if fileSize > MaxFileSize {
		return nil, fmt.Errorf("file size exceeds maximum of %d bytes", MaxFileSize)
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if ticketID != nil && featureRequestID != nil {
		return nil, fmt.Errorf("attachment cannot belong to both a ticket and a feature request")
	}
	if ticketID != nil && *ticketID == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if featureRequestID != nil && *featureRequestID == 0 {
		return nil, fmt.Errorf("feature request ID cannot be zero")
	}

	return &Attachment{
		filename:         filename,
		storedName:       storedName,
		fileType:         fileType,
		fileSize:         fileSize,
		ownerID:          ownerID,
		ticketID:         ticketID,
		featureRequestID: featureRequestID,
		createdAt:        time.Now().UTC(),
	}, nil
}

// ReconstructAttachment reconstructs an attachment from persistence.
func ReconstructAttachment(
	id uint,
	filename, storedName, fileType string,
	fileSize int64,
	ownerID uint,
	ticketID, featureRequestID *uint,
	createdAt time.Time,
) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}
	if len(filename) == 0 {
		return nil, fmt.Errorf("filename is required")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if ticketID != nil && featureRequestID != nil {
		return nil, fmt.Errorf("attachment cannot belong to both a ticket and a feature request")
	}

	return &Attachment{
		id:               id,
		filename:         filename,
		storedName:       storedName,
		fileType:         fileType,
		fileSize:         fileSize,
		ownerID:          ownerID,
		ticketID:         ticketID,
		featureRequestID: featureRequestID,
		createdAt:        createdAt,
	}, nil
}

func (a *Attachment) ID() uint {
	return a.id
}

func (a *Attachment) Filename() string {
	return a.filename
}

// StoredName is the opaque name of the file on disk, distinct from the
// user-supplied filename.
func (a *Attachment) StoredName() string {
	return a.storedName
}

func (a *Attachment) FileType() string {
	return a.fileType
}

func (a *Attachment) FileSize() int64 {
	return a.fileSize
}

func (a *Attachment) OwnerID() uint {
	return a.ownerID
}

func (a *Attachment) TicketID() *uint {
	return a.ticketID
}

func (a *Attachment) FeatureRequestID() *uint {
	return a.featureRequestID
}

func (a *Attachment) CreatedAt() time.Time {
	return a.createdAt
}

// GetOwnerID implements authorization.OwnedResource.
func (a *Attachment) GetOwnerID() uint {
	return a.ownerID
}

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}
