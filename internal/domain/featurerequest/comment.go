package featurerequest

import (
	"fmt"
	"time"
)

// Comment is an immutable remark on a feature request. Comments are never
// edited after creation; corrections are new comments.
type Comment struct {
	id               uint
	featureRequestID uint
	authorID         uint
	content          string
	createdAt        time.Time
}

func NewComment(featureRequestID, authorID uint, content string) (*Comment, error) {
	if featureRequestID == 0 {
		return nil, fmt.Errorf("feature request ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content is required")
	}
	if len(content) > 5000 {
		return nil, fmt.Errorf("content exceeds maximum length of 5000 characters")
	}

	return &Comment{
		featureRequestID: featureRequestID,
		authorID:         authorID,
		content:          content,
		createdAt:        time.Now().UTC(),
	}, nil
}

// ReconstructComment reconstructs a comment from persistence.
func ReconstructComment(id, featureRequestID, authorID uint, content string, createdAt time.Time) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if featureRequestID == 0 {
		return nil, fmt.Errorf("feature request ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content is required")
	}

	return &Comment{
		id:               id,
		featureRequestID: featureRequestID,
		authorID:         authorID,
		content:          content,
		createdAt:        createdAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) FeatureRequestID() uint {
	return c.featureRequestID
}

func (c *Comment) AuthorID() uint {
	return c.authorID
}

func (c *Comment) Content() string {
	return c.content
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

// GetOwnerID implements authorization.OwnedResource.
func (c *Comment) GetOwnerID() uint {
	return c.authorID
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
