package domain

// Status is a task's position in the fixed forward-only progression.
// The string values are the exact tokens exchanged with API clients,
// including the space in "In Progress".
type Status string

const (
	Pending    Status = "Pending"
	InProgress Status = "In Progress"
	Completed  Status = "Completed"
)

func (s Status) String() string {
	return string(s)
}

// Rank encodes the position of a status in the progression.
// Pending=0, In Progress=1, Completed=2.
func (s Status) Rank() int {
	switch s {
	case Pending:
		return 0
	case InProgress:
		return 1
	case Completed:
		return 2
	}
	return -1
}

func (s Status) Valid() bool {
	return s.Rank() >= 0
}

// ParseStatus validates an untrusted status literal against the closed set.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case Pending, InProgress, Completed:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus(s)
	}
}

// Outcome classifies the result of a requested status transition.
type Outcome int

const (
	// Advanced means the requested status is strictly forward of the
	// current one and should be persisted.
	Advanced Outcome = iota
	// NoChange means the requested status equals the current one. The
	// request succeeds but nothing is written.
	NoChange
	// RejectedInvalid means the requested literal is not a recognized
	// status.
	RejectedInvalid
	// RejectedBackward means the requested status is behind the current
	// one. There is no path backward, for any role.
	RejectedBackward
)

// Decision is the outcome of the transition engine for one request.
// Next is only meaningful when Outcome is Advanced.
type Decision struct {
	Outcome Outcome
	Next    Status
}

// Decide is the single authoritative implementation of the status
// progression rule. It is a pure function: the caller persists Next on
// Advanced and treats every other outcome as a no-write.
//
// current must be a stored, valid status; requested is untrusted input.
func Decide(current Status, requested string) Decision {
	next, err := ParseStatus(requested)
	if err != nil {
		return Decision{Outcome: RejectedInvalid}
	}

	switch {
	case next == current:
		return Decision{Outcome: NoChange, Next: current}
	case next.Rank() < current.Rank():
		return Decision{Outcome: RejectedBackward}
	default:
		return Decision{Outcome: Advanced, Next: next}
	}
}
