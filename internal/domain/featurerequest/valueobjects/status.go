package valueobjects

import "fmt"

// Status tracks where a feature request sits in the review pipeline. Any
// status can be set from any other; there is no enforced progression.
type Status string

const (
	StatusProposed    Status = "Proposed"
	StatusUnderReview Status = "Under Review"
	StatusApproved    Status = "Approved"
	StatusRejected    Status = "Rejected"
)

// DefaultStatus is assigned when a feature request is created without one.
const DefaultStatus = StatusProposed

var validStatuses = map[Status]bool{
	StatusProposed:    true,
	StatusUnderReview: true,
	StatusApproved:    true,
	StatusRejected:    true,
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
