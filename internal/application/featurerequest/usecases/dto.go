// Package usecases implements the feature request flows. Reads are open to
// every authenticated user; only updates and deletes fall back to the
// owner-or-admin rule. Upvote counts are always computed from the ledger at
// read time, never stored on the request itself.
package usecases

import (
	"time"

	"github.com/supportsync-io/supportsync/internal/domain/featurerequest"
)

type FeatureRequestDTO struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Priority     string    `json:"priority"`
	Status       string    `json:"status"`
	RequesterID  uint      `json:"requester_id"`
	UpvotesCount int64     `json:"upvotes_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CommentDTO struct {
	ID               uint      `json:"id"`
	FeatureRequestID uint      `json:"feature_request_id"`
	AuthorID         uint      `json:"author_id"`
	Content          string    `json:"content"`
	CreatedAt        time.Time `json:"created_at"`
}

func toFeatureRequestDTO(fr *featurerequest.FeatureRequest, upvotes int64) FeatureRequestDTO {
	return FeatureRequestDTO{
		ID:           fr.ID(),
		Title:        fr.Title(),
		Description:  fr.Description(),
		Priority:     fr.Priority().String(),
		Status:       fr.Status().String(),
		RequesterID:  fr.RequesterID(),
		UpvotesCount: upvotes,
		CreatedAt:    fr.CreatedAt(),
		UpdatedAt:    fr.UpdatedAt(),
	}
}

func toCommentDTO(c *featurerequest.Comment) CommentDTO {
	return CommentDTO{
		ID:               c.ID(),
		FeatureRequestID: c.FeatureRequestID(),
		AuthorID:         c.AuthorID(),
		Content:          c.Content(),
		CreatedAt:        c.CreatedAt(),
	}
}
