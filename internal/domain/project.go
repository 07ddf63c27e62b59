package domain

import (
	"fmt"

	"project-manager/internal/validation"
)

// Project represents a project owned by a user. Each project can have
// multiple tasks. The due date is free text and not validated as a
// calendar date.
type Project struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	DueDate     string  `json:"due_date"`
	Tasks       []*Task `json:"tasks"`
}

// NewProject creates a validated Project with a freshly allocated id.
// The title must be non-empty and is stored trimmed; description and
// due date may be empty.
func NewProject(alloc *Allocator, title, description, dueDate string) (*Project, error) {
	trimmedTitle, err := validation.NewProjectValidator().GetValidTitle(title)
	if err != nil {
		return nil, err
	}

	return &Project{
		ID:          alloc.Next(),
		Title:       trimmedTitle,
		Description: description,
		DueDate:     dueDate,
		Tasks:       []*Task{},
	}, nil
}

// SetTitle updates the project's title, rejecting empty values.
func (p *Project) SetTitle(title string) error {
	trimmed, err := validation.NewProjectValidator().GetValidTitle(title)
	if err != nil {
		return err
	}
	p.Title = trimmed
	return nil
}

// AddTask appends a task to the project's owned list.
func (p *Project) AddTask(t *Task) {
	p.Tasks = append(p.Tasks, t)
}

// String returns a one-line description of the project.
func (p *Project) String() string {
	due := ""
	if p.DueDate != "" {
		due = fmt.Sprintf(" | Due: %s", p.DueDate)
	}
	return fmt.Sprintf("[Project #%d] %s%s | %d task(s)", p.ID, p.Title, due, len(p.Tasks))
}
