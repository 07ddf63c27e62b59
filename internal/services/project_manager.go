// Package services implements the user-facing operations. Every
// operation loads the entire document, locates its targets by
// case-insensitive name or title match, applies one business rule, and
// for writes persists the entire document back. Business failures are
// returned as results, never as errors.
package services

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"project-manager/internal/domain"
	"project-manager/internal/errors"
	"project-manager/internal/repository/jsonfile"
)

// ProjectManager orchestrates load, lookup, mutation, and save for all
// operations over users, projects, and tasks.
type ProjectManager struct {
	store  *jsonfile.Store
	logger *log.Logger
}

// New creates a new ProjectManager backed by the given store.
func New(store *jsonfile.Store, logger *log.Logger) *ProjectManager {
	return &ProjectManager{
		store:  store,
		logger: logger,
	}
}

// AddUser creates and persists a new user. It fails if a user with the
// same name (ignoring case) exists, or if the name or email is invalid.
func (m *ProjectManager) AddUser(ctx context.Context, name, email string) Result {
	doc, err := m.store.Load(ctx)
	if err != nil {
		return failure(errors.GetUserMessage(err))
	}

	if findUser(doc.Users, name) != nil {
		return failure(fmt.Sprintf("User '%s' already exists.", name))
	}

	user, err := domain.NewUser(doc.Counters.Users, name, email)
	if err != nil {
		return failure(errors.GetUserMessage(err))
	}

	doc.Users = append(doc.Users, user)
	if err := m.save(ctx, doc); err != nil {
		return failure(errors.GetUserMessage(err))
	}
	return success(fmt.Sprintf("User '%s' created successfully.", user.Name))
}

// ListUsers returns all users with a count message, or a failure when
// the document is empty.
func (m *ProjectManager) ListUsers(ctx context.Context) ListResult[*domain.User] {
	doc, err := m.store.Load(ctx)
	if err != nil {
		return listFailure[*domain.User](errors.GetUserMessage(err))
	}

	if len(doc.Users) == 0 {
		return listFailure[*domain.User]("No users found.")
	}
	return listSuccess(fmt.Sprintf("%d user(s) found.", len(doc.Users)), doc.Users)
}

// AddProject adds a project to an existing user. It fails if the user
// does not exist or already has a project with that title.
func (m *ProjectManager) AddProject(ctx context.Context, username, title, description, dueDate string) Result {
	doc, err := m.store.Load(ctx)
	if err != nil {
		return failure(errors.GetUserMessage(err))
	}

	user := findUser(doc.Users, username)
	if user == nil {
		return failure(fmt.Sprintf("User '%s' not found.", username))
	}

	if findProject(user, title) != nil {
		return failure(fmt.Sprintf("Project '%s' already exists for '%s'.", title, username))
	}

	project, err := domain.NewProject(doc.Counters.Projects, title, description, dueDate)
	if err != nil {
		return failure(errors.GetUserMessage(err))
	}

	user.AddProject(project)
	if err := m.save(ctx, doc); err != nil {
		return failure(errors.GetUserMessage(err))
	}
	return success(fmt.Sprintf("Project '%s' added to user '%s'.", project.Title, username))
}

// ListProjects returns a user's projects with a count message. It fails
// if the user does not exist or has no projects.
func (m *ProjectManager) ListProjects(ctx context.Context, username string) ListResult[*domain.Project] {
	doc, err := m.store.Load(ctx)
	if err != nil {
		return listFailure[*domain.Project](errors.GetUserMessage(err))
	}

	user := findUser(doc.Users, username)
	if user == nil {
		return listFailure[*domain.Project](fmt.Sprintf("User '%s' not found.", username))
	}

	if len(user.Projects) == 0 {
		return listFailure[*domain.Project](fmt.Sprintf("No projects found for '%s'.", username))
	}
	return listSuccess(fmt.Sprintf("%d project(s) found.", len(user.Projects)), user.Projects)
}

// AddTask adds a task to a project belonging to a user. It fails if the
// user or project does not exist, or if the project already has a task
// with that title.
func (m *ProjectManager) AddTask(ctx context.Context, username, projectTitle, title, assignedTo string) Result {
	doc, err := m.store.Load(ctx)
	if err != nil {
		return failure(errors.GetUserMessage(err))
	}

	user := findUser(doc.Users, username)
	if user == nil {
		return failure(fmt.Sprintf("User '%s' not found.", username))
	}

	project := findProject(user, projectTitle)
	if project == nil {
		return failure(fmt.Sprintf("Project '%s' not found for '%s'.", projectTitle, username))
	}

	if findTask(project, title) != nil {
		return failure(fmt.Sprintf("Task '%s' already exists in '%s'.", title, projectTitle))
	}

	task, err := domain.NewTask(doc.Counters.Tasks, title, assignedTo)
	if err != nil {
		return failure(errors.GetUserMessage(err))
	}

	project.AddTask(task)
	if err := m.save(ctx, doc); err != nil {
		return failure(errors.GetUserMessage(err))
	}
	return success(fmt.Sprintf("Task '%s' added to project '%s'.", task.Title, projectTitle))
}

// ListTasks returns a project's tasks with a count message. It fails if
// the user or project does not exist, or the project has no tasks.
func (m *ProjectManager) ListTasks(ctx context.Context, username, projectTitle string) ListResult[*domain.Task] {
	doc, err := m.store.Load(ctx)
	if err != nil {
		return listFailure[*domain.Task](errors.GetUserMessage(err))
	}

	user := findUser(doc.Users, username)
	if user == nil {
		return listFailure[*domain.Task](fmt.Sprintf("User '%s' not found.", username))
	}

	project := findProject(user, projectTitle)
	if project == nil {
		return listFailure[*domain.Task](fmt.Sprintf("Project '%s' not found.", projectTitle))
	}

	if len(project.Tasks) == 0 {
		return listFailure[*domain.Task](fmt.Sprintf("No tasks found in '%s'.", projectTitle))
	}
	return listSuccess(fmt.Sprintf("%d task(s) found.", len(project.Tasks)), project.Tasks)
}

// CompleteTask marks a task as complete. It fails if the user, project,
// or task does not exist, or if the task is already complete.
func (m *ProjectManager) CompleteTask(ctx context.Context, username, projectTitle, taskTitle string) Result {
	doc, err := m.store.Load(ctx)
	if err != nil {
		return failure(errors.GetUserMessage(err))
	}

	user := findUser(doc.Users, username)
	if user == nil {
		return failure(fmt.Sprintf("User '%s' not found.", username))
	}

	project := findProject(user, projectTitle)
	if project == nil {
		return failure(fmt.Sprintf("Project '%s' not found.", projectTitle))
	}

	task := findTask(project, taskTitle)
	if task == nil {
		return failure(fmt.Sprintf("Task '%s' not found in '%s'.", taskTitle, projectTitle))
	}

	if task.Status == domain.StatusComplete {
		return failure(fmt.Sprintf("Task '%s' is already complete.", taskTitle))
	}

	task.Complete()
	if err := m.save(ctx, doc); err != nil {
		return failure(errors.GetUserMessage(err))
	}
	return success(fmt.Sprintf("Task '%s' marked as complete.", taskTitle))
}

// save persists the full document. The store logs the cause of any
// failure; the error comes back here so the caller sees a failure
// result instead of a silent no-op.
func (m *ProjectManager) save(ctx context.Context, doc *jsonfile.Document) error {
	if err := m.store.Save(ctx, doc.Users); err != nil {
		return err
	}
	m.logger.Debug("document saved", "users", len(doc.Users))
	return nil
}
