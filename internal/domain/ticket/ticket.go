// Package ticket contains the ticket aggregate, its comments, and the
// repository contract.
package ticket

import (
	"fmt"
	"time"

	vo "github.com/supportsync-io/supportsync/internal/domain/ticket/valueobjects"
)

type Ticket struct {
	id          uint
	title       string
	description string
	priority    vo.Priority
	status      vo.Status
	creatorID   uint
	assigneeID  *uint
	createdAt   time.Time
	updatedAt   time.Time
}

// NewTicket creates a ticket with documented defaults. Pass empty strings for
// priority/status to get low/new; creatorID is immutable afterwards.
func NewTicket(title, description, priority, status string, creatorID uint) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
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
	return &Ticket{
		title:       title,
		description: description,
		priority:    p,
		status:      s,
		creatorID:   creatorID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructTicket reconstructs a ticket from persistence.
func ReconstructTicket(
	id uint,
	title string,
	description string,
	priority vo.Priority,
	status vo.Status,
	creatorID uint,
	assigneeID *uint,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
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
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		priority:    priority,
		status:      status,
		creatorID:   creatorID,
		assigneeID:  assigneeID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Status() vo.Status {
	return t.status
}

func (t *Ticket) CreatorID() uint {
	return t.creatorID
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

// GetOwnerID implements authorization.OwnedResource.
func (t *Ticket) GetOwnerID() uint {
	return t.creatorID
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// AssignTo sets the assignee. The caller is responsible for checking that the
// assignee references an existing active user.
func (t *Ticket) AssignTo(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}

	t.assigneeID = &assigneeID
	t.updatedAt = time.Now().UTC()
	return nil
}

// Unassign clears the assignee.
func (t *Ticket) Unassign() {
	if t.assigneeID == nil {
		return
	}
	t.assigneeID = nil
	t.updatedAt = time.Now().UTC()
}
