package domain

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusComplete   Status = "complete"
)

// ValidStatuses returns the recognized task statuses in display order.
func ValidStatuses() []string {
	return []string{
		string(StatusPending),
		string(StatusInProgress),
		string(StatusComplete),
	}
}

// IsValid checks if the status is one of the recognized values.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusComplete:
		return true
	}
	return false
}

// String returns the status as a plain string.
func (s Status) String() string {
	return string(s)
}
