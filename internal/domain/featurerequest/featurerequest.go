// Package featurerequest contains the feature request aggregate, its comments,
// the upvote ledger contract, and the repository interface.
package featurerequest

import (
	"fmt"
	"time"

	vo "github.com/supportsync-io/supportsync/internal/domain/featurerequest/valueobjects"
)

type FeatureRequest struct {
	id          uint
	title       string
	description string
	priority    vo.Priority
	status      vo.Status
	requesterID uint
	createdAt   time.Time
	updatedAt   time.Time
}

// NewFeatureRequest creates a feature request with documented defaults. Pass
// empty strings for priority/status to get Medium/Proposed; requesterID is
// immutable afterwards.
func NewFeatureRequest(title, description, priority, status string, requesterID uint) (*FeatureRequest, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if requesterID == 0 {
		return nil, fmt.Errorf("requester ID is required")
	}

	p := vo.DefaultPriority
	if priority != "" {
		parsed, err := vo.NewPriority(priority)
		if err != nil {
			return nil, err
		}
		p = parsed
	}

	s := vo.DefaultStatus
	if status != "" {
		parsed, err := vo.NewStatus(status)
		if err != nil {
			return nil, err
		}
		s = parsed
	}

	now := time.Now().UTC()
	return &FeatureRequest{
		title:       title,
		description: description,
		priority:    p,
		status:      s,
		requesterID: requesterID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructFeatureRequest reconstructs a feature request from persistence.
func ReconstructFeatureRequest(
	id uint,
	title string,
	description string,
	priority vo.Priority,
	status vo.Status,
	requesterID uint,
	createdAt, updatedAt time.Time,
) (*FeatureRequest, error) {
	if id == 0 {
		return nil, fmt.Errorf("feature request ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if requesterID == 0 {
		return nil, fmt.Errorf("requester ID is required")
	}

	return &FeatureRequest{
		id:          id,
		title:       title,
		description: description,
		priority:    priority,
		status:      status,
		requesterID: requesterID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (f *FeatureRequest) ID() uint {
	return f.id
}

func (f *FeatureRequest) Title() string {
	return f.title
}

func (f *FeatureRequest) Description() string {
	return f.description
}

func (f *FeatureRequest) Priority() vo.Priority {
	return f.priority
}

func (f *FeatureRequest) Status() vo.Status {
	return f.status
}

func (f *FeatureRequest) RequesterID() uint {
	return f.requesterID
}

func (f *FeatureRequest) CreatedAt() time.Time {
	return f.createdAt
}

func (f *FeatureRequest) UpdatedAt() time.Time {
	return f.updatedAt
}

// GetOwnerID implements authorization.OwnedResource.
func (f *FeatureRequest) GetOwnerID() uint {
	return f.requesterID
}

func (f *FeatureRequest) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("feature request ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("feature request ID cannot be zero")
	}
	f.id = id
	return nil
}
