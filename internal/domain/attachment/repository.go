package attachment

import "context"

// Repository is the persistence contract for attachment metadata. The file
// bytes themselves live in a separate content store keyed by StoredName.
type Repository interface {
	Save(ctx context.Context, a *Attachment) error
	GetByID(ctx context.Context, id uint) (*Attachment, error)
	ListByTicket(ctx context.Context, ticketID uint) ([]*Attachment, error)
	ListByFeatureRequest(ctx context.Context, featureRequestID uint) ([]*Attachment, error)
	Delete(ctx context.Context, id uint) error
}
