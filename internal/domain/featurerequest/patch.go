package featurerequest

import (
	"fmt"
	"time"

	vo "github.com/supportsync-io/supportsync/internal/domain/featurerequest/valueobjects"
)

// Patch carries the optional fields of a partial feature request update.
// requester_id and created_at are not patchable, and upvote counts never live
// on the aggregate at all.
type Patch struct {
	Title       *string
	Description *string
	Priority    *vo.Priority
	Status      *vo.Status
}

// IsEmpty reports whether the patch carries no changes.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Priority == nil && p.Status == nil
}

// Apply applies the patch. updatedAt advances only when at least one field
// actually changes. Status moves freely between values; there is no enforced
// review pipeline order.
func (f *FeatureRequest) Apply(p Patch) (bool, error) {
	changed := false

	if p.Title != nil && *p.Title != f.title {
		if len(*p.Title) == 0 {
			return false, fmt.Errorf("title cannot be empty")
		}
		if len(*p.Title) > 200 {
			return false, fmt.Errorf("title exceeds maximum length of 200 characters")
		}
		f.title = *p.Title
		changed = true
	}

	if p.Description != nil && *p.Description != f.description {
		if len(*p.Description) > 5000 {
			return false, fmt.Errorf("description exceeds maximum length of 5000 characters")
		}
		f.description = *p.Description
		changed = true
	}

	if p.Priority != nil && *p.Priority != f.priority {
		if !p.Priority.IsValid() {
			return false, fmt.Errorf("invalid priority: %s", *p.Priority)
		}
		f.priority = *p.Priority
		changed = true
	}

	if p.Status != nil && *p.Status != f.status {
		if !p.Status.IsValid() {
			return false, fmt.Errorf("invalid status: %s", *p.Status)
		}
		f.status = *p.Status
		changed = true
	}

	if changed {
		f.updatedAt = time.Now().UTC()
	}

	return changed, nil
}
