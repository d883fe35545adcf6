package ticket

import (
	"context"

	vo "github.com/supportsync-io/supportsync/internal/domain/ticket/valueobjects"
)

// Filter narrows List queries. CreatorID is how the ownership query filter is
// pushed into storage: for non-admin subjects it is always set before the
// count and pagination run, so totals reflect only what the subject may see.
type Filter struct {
	Status     *vo.Status
	Priority   *vo.Priority
	CreatorID  *uint
	AssigneeID *uint
	Search     string
	Page       int
	PageSize   int
}

// Repository is the persistence contract for tickets and their comments.
// DeleteCascade removes the ticket's comments and attachment rows together
// with the ticket inside one transaction.
type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)
	DeleteCascade(ctx context.Context, id uint) error

	SaveComment(ctx context.Context, c *Comment) error
	ListComments(ctx context.Context, ticketID uint) ([]*Comment, error)
}
