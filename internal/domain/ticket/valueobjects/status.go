package valueobjects

import "fmt"

// Status values form a plain enumeration. There is deliberately no transition
// table: the tracker allows any authorized writer to move a ticket between
// any two statuses, including reopening a resolved ticket by setting it back
// to new.
type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

// DefaultStatus is assigned when a ticket is created without a status.
const DefaultStatus = StatusNew

var validStatuses = map[Status]bool{
	StatusNew:        true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func NewStatus(v string) (Status, error) {
	s := Status(v)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid status: %s", v)
	}
	return s, nil
}
