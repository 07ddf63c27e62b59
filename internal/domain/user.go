// Package domain defines the core entities: User, Project, and Task.
// Users own projects, projects own tasks; ownership is exclusive and
// tree-shaped. Entities serialize directly to the persisted JSON
// document layout.
package domain

import (
	"fmt"

	"project-manager/internal/validation"
)

// User represents a system user. Each user can own multiple projects.
type User struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Projects []*Project `json:"projects"`
}

// NewUser creates a validated User with a freshly allocated id.
// The name must be non-empty and the email must contain "@"; both are
// stored trimmed.
func NewUser(alloc *Allocator, name, email string) (*User, error) {
	v := validation.NewUserValidator()

	trimmedName, err := v.GetValidName(name)
	if err != nil {
		return nil, err
	}
	trimmedEmail, err := v.GetValidEmail(email)
	if err != nil {
		return nil, err
	}

	return &User{
		ID:       alloc.Next(),
		Name:     trimmedName,
		Email:    trimmedEmail,
		Projects: []*Project{},
	}, nil
}

// SetName updates the user's name, rejecting empty values.
func (u *User) SetName(name string) error {
	trimmed, err := validation.NewUserValidator().GetValidName(name)
	if err != nil {
		return err
	}
	u.Name = trimmed
	return nil
}

// SetEmail updates the user's email, rejecting values without "@".
func (u *User) SetEmail(email string) error {
	trimmed, err := validation.NewUserValidator().GetValidEmail(email)
	if err != nil {
		return err
	}
	u.Email = trimmed
	return nil
}

// AddProject appends a project to the user's owned list.
func (u *User) AddProject(p *Project) {
	u.Projects = append(u.Projects, p)
}

// String returns a one-line description of the user.
func (u *User) String() string {
	return fmt.Sprintf("[User #%d] %s <%s> | Projects: %d", u.ID, u.Name, u.Email, len(u.Projects))
}
