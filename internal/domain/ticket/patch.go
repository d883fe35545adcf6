package ticket

import (
	"fmt"
	"time"

	vo "github.com/supportsync-io/supportsync/internal/domain/ticket/valueobjects"
)

// Patch carries the optional fields of a partial ticket update. AssigneeID
// uses a double pointer so that "clear the assignee" (inner nil) and "leave
// unchanged" (outer nil) stay distinguishable. creator_id and created_at are
// not patchable.
type Patch struct {
	Title       *string
	Description *string
	Priority    *vo.Priority
	Status      *vo.Status
	AssigneeID  **uint
}

// IsEmpty reports whether the patch carries no changes.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Priority == nil &&
		p.Status == nil && p.AssigneeID == nil
}

// Apply applies the patch. updatedAt advances only when at least one field
// actually changes. Enum fields accept any valid value in any order; there is
// no transition automaton.
func (t *Ticket) Apply(p Patch) (bool, error) {
	changed := false

	if p.Title != nil && *p.Title != t.title {
		if len(*p.Title) == 0 {
			return false, fmt.Errorf("title cannot be empty")
		}
		if len(*p.Title) > 200 {
			return false, fmt.Errorf("title exceeds maximum length of 200 characters")
		}
		t.title = *p.Title
		changed = true
	}

	if p.Description != nil && *p.Description != t.description {
		if len(*p.Description) > 5000 {
			return false, fmt.Errorf("description exceeds maximum length of 5000 characters")
		}
		t.description = *p.Description
		changed = true
	}

	if p.Priority != nil && *p.Priority != t.priority {
		if !p.Priority.IsValid() {
			return false, fmt.Errorf("invalid priority: %s", *p.Priority)
		}
		t.priority = *p.Priority
		changed = true
	}

	if p.Status != nil && *p.Status != t.status {
		if !p.Status.IsValid() {
			return false, fmt.Errorf("invalid status: %s", *p.Status)
		}
		t.status = *p.Status
		changed = true
	}

	if p.AssigneeID != nil {
		newAssignee := *p.AssigneeID
		if newAssignee == nil {
			if t.assigneeID != nil {
				t.assigneeID = nil
				changed = true
			}
		} else {
			if *newAssignee == 0 {
				return false, fmt.Errorf("assignee ID cannot be zero")
			}
			if t.assigneeID == nil || *t.assigneeID != *newAssignee {
				id := *newAssignee
				t.assigneeID = &id
				changed = true
			}
		}
	}

	if changed {
		t.updatedAt = time.Now().UTC()
	}

	return changed, nil
}
