package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"project-manager/internal/domain"
)

var (
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)

	statusStyles = map[domain.Status]lipgloss.Style{
		domain.StatusPending:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		domain.StatusInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		domain.StatusComplete:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	}
)

// Renderer writes styled messages and entity tables to the terminal.
type Renderer struct {
	out       io.Writer
	emptyCell string
}

// NewRenderer creates a renderer writing to out. emptyCell is the
// placeholder shown for blank optional fields.
func NewRenderer(out io.Writer, emptyCell string) *Renderer {
	return &Renderer{
		out:       out,
		emptyCell: emptyCell,
	}
}

// Success prints a green success message.
func (r *Renderer) Success(message string) {
	fmt.Fprintln(r.out, successStyle.Render("✔ "+message))
}

// Error prints a red error message.
func (r *Renderer) Error(message string) {
	fmt.Fprintln(r.out, errorStyle.Render("✘ "+message))
}

// Info prints a cyan info message.
func (r *Renderer) Info(message string) {
	fmt.Fprintln(r.out, infoStyle.Render(message))
}

// UsersTable prints all users in a table.
func (r *Renderer) UsersTable(users []*domain.User) {
	t := r.newTable("ID", "Name", "Email", "Projects")
	for _, u := range users {
		t.Row(
			strconv.FormatInt(u.ID, 10),
			u.Name,
			u.Email,
			strconv.Itoa(len(u.Projects)),
		)
	}
	r.printTable("All Users", t)
}

// ProjectsTable prints a user's projects in a table.
func (r *Renderer) ProjectsTable(username string, projects []*domain.Project) {
	t := r.newTable("ID", "Title", "Description", "Due Date", "Tasks")
	for _, p := range projects {
		t.Row(
			strconv.FormatInt(p.ID, 10),
			p.Title,
			r.orEmpty(p.Description),
			r.orEmpty(p.DueDate),
			strconv.Itoa(len(p.Tasks)),
		)
	}
	r.printTable(fmt.Sprintf("Projects for '%s'", username), t)
}

// TasksTable prints a project's tasks in a table, color-coding status.
func (r *Renderer) TasksTable(projectTitle string, tasks []*domain.Task) {
	t := r.newTable("ID", "Title", "Assigned To", "Status")
	for _, task := range tasks {
		status := task.Status.String()
		if style, ok := statusStyles[task.Status]; ok {
			status = style.Render(status)
		}
		t.Row(
			strconv.FormatInt(task.ID, 10),
			task.Title,
			r.orEmpty(task.AssignedTo),
			status,
		)
	}
	r.printTable(fmt.Sprintf("Tasks in '%s'", projectTitle), t)
}

// newTable creates a rounded-border table with the given headers.
func (r *Renderer) newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

// printTable prints a title line followed by the rendered table.
func (r *Renderer) printTable(title string, t *table.Table) {
	fmt.Fprintln(r.out, headerStyle.Render(title))
	fmt.Fprintln(r.out, t.Render())
}

// orEmpty substitutes the placeholder for blank values.
func (r *Renderer) orEmpty(s string) string {
	if s == "" {
		return r.emptyCell
	}
	return s
}
