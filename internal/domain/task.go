package domain

import (
	"fmt"

	"project-manager/internal/validation"
)

// Task represents a task within a project.
type Task struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	AssignedTo string `json:"assigned_to"`
	Status     Status `json:"status"`
}

// NewTask creates a validated Task with a freshly allocated id and the
// default "pending" status. The title must be non-empty and is stored
// trimmed; the assignee may be empty.
func NewTask(alloc *Allocator, title, assignedTo string) (*Task, error) {
	trimmedTitle, err := validation.NewTaskValidator().GetValidTitle(title)
	if err != nil {
		return nil, err
	}

	return &Task{
		ID:         alloc.Next(),
		Title:      trimmedTitle,
		AssignedTo: assignedTo,
		Status:     StatusPending,
	}, nil
}

// SetTitle updates the task's title, rejecting empty values.
func (t *Task) SetTitle(title string) error {
	trimmed, err := validation.NewTaskValidator().GetValidTitle(title)
	if err != nil {
		return err
	}
	t.Title = trimmed
	return nil
}

// SetStatus updates the task's status. On an unrecognized value it
// returns a validation error and leaves the prior status unchanged.
func (t *Task) SetStatus(status Status) error {
	if err := validation.NewTaskValidator().ValidateStatus(string(status), ValidStatuses()); err != nil {
		return err
	}
	t.Status = status
	return nil
}

// Complete marks the task as complete regardless of its current status.
func (t *Task) Complete() {
	t.Status = StatusComplete
}

// String returns a one-line description of the task.
func (t *Task) String() string {
	assignee := ""
	if t.AssignedTo != "" {
		assignee = fmt.Sprintf(" | Assigned to: %s", t.AssignedTo)
	}
	return fmt.Sprintf("[Task #%d] %s | Status: %s%s", t.ID, t.Title, t.Status, assignee)
}
