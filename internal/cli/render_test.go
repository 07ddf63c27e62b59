package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"project-manager/internal/domain"
)

func newTestRenderer() (*Renderer, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewRenderer(&buf, "—"), &buf
}

func TestRenderer_Messages(t *testing.T) {
	t.Run("should prefix success messages with a check mark", func(t *testing.T) {
		r, buf := newTestRenderer()
		r.Success("User 'Alex' created successfully.")
		assert.Contains(t, buf.String(), "✔ User 'Alex' created successfully.")
	})

	t.Run("should prefix error messages with a cross", func(t *testing.T) {
		r, buf := newTestRenderer()
		r.Error("User 'Alex' not found.")
		assert.Contains(t, buf.String(), "✘ User 'Alex' not found.")
	})

	t.Run("should print info messages verbatim", func(t *testing.T) {
		r, buf := newTestRenderer()
		r.Info("Operation cancelled by user.")
		assert.Contains(t, buf.String(), "Operation cancelled by user.")
	})
}

func TestRenderer_UsersTable(t *testing.T) {
	r, buf := newTestRenderer()
	alex := &domain.User{ID: 1, Name: "Alex", Email: "alex@email.com", Projects: []*domain.Project{{ID: 1, Title: "CLI Tool"}}}
	sam := &domain.User{ID: 2, Name: "Sam", Email: "sam@email.com", Projects: []*domain.Project{}}

	r.UsersTable([]*domain.User{alex, sam})

	out := buf.String()
	assert.Contains(t, out, "All Users")
	for _, want := range []string{"ID", "Name", "Email", "Projects", "Alex", "alex@email.com", "Sam", "sam@email.com"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderer_ProjectsTable(t *testing.T) {
	r, buf := newTestRenderer()
	projects := []*domain.Project{
		{ID: 1, Title: "CLI Tool", Description: "A cool project", DueDate: "2025-12-31", Tasks: []*domain.Task{{ID: 1, Title: "Implement storage"}}},
		{ID: 2, Title: "Docs"},
	}

	r.ProjectsTable("Alex", projects)

	out := buf.String()
	assert.Contains(t, out, "Projects for 'Alex'")
	for _, want := range []string{"Title", "Description", "Due Date", "CLI Tool", "A cool project", "2025-12-31", "Docs"} {
		assert.Contains(t, out, want)
	}
	// Blank optional fields render as the placeholder.
	assert.Contains(t, out, "—")
}

func TestRenderer_TasksTable(t *testing.T) {
	r, buf := newTestRenderer()
	tasks := []*domain.Task{
		{ID: 1, Title: "Implement storage", AssignedTo: "Alex", Status: domain.StatusPending},
		{ID: 2, Title: "Write docs", Status: domain.StatusComplete},
	}

	r.TasksTable("CLI Tool", tasks)

	out := buf.String()
	assert.Contains(t, out, "Tasks in 'CLI Tool'")
	for _, want := range []string{"Assigned To", "Status", "Implement storage", "pending", "Write docs", "complete"} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, "—")
}
