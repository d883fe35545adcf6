package featurerequest

import (
	"context"

	vo "github.com/supportsync-io/supportsync/internal/domain/featurerequest/valueobjects"
)

// Filter narrows List queries. Unlike tickets, feature requests are visible
// to every authenticated user, so RequesterID is an optional caller filter,
// not an ownership gate.
type Filter struct {
	Status      *vo.Status
	Priority    *vo.Priority
	RequesterID *uint
	Search      string
	Page        int
	PageSize    int
}

// Repository is the persistence contract for feature requests, their
// comments, and the upvote ledger.
//
// The ledger is the single source of truth for upvote counts: counts are
// always derived from stored rows, never cached on the aggregate. AddUpvote
// relies on a storage-level unique key over (feature request, user) and
// returns a conflict error on a duplicate; callers must not substitute a
// read-then-write check.
//
// DeleteCascade removes the request's comments, upvotes, and attachment rows
// together with the request inside one transaction.
type Repository interface {
	Save(ctx context.Context, fr *FeatureRequest) error
	Update(ctx context.Context, fr *FeatureRequest) error
	GetByID(ctx context.Context, id uint) (*FeatureRequest, error)
	List(ctx context.Context, filter Filter) ([]*FeatureRequest, int64, error)
	DeleteCascade(ctx context.Context, id uint) error

	SaveComment(ctx context.Context, c *Comment) error
	ListComments(ctx context.Context, featureRequestID uint) ([]*Comment, error)

	AddUpvote(ctx context.Context, featureRequestID, userID uint) error
	CountUpvotes(ctx context.Context, featureRequestID uint) (int64, error)
	CountUpvotesBatch(ctx context.Context, featureRequestIDs []uint) (map[uint]int64, error)
	HasUpvoted(ctx context.Context, featureRequestID, userID uint) (bool, error)
}
