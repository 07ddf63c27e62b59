package services

import (
	"strings"

	"project-manager/internal/domain"
)

// findUser returns the first user whose name matches, ignoring case.
func findUser(users []*domain.User, name string) *domain.User {
	for _, u := range users {
		if strings.EqualFold(u.Name, name) {
			return u
		}
	}
	return nil
}

// findProject returns the first of the user's projects whose title
// matches, ignoring case.
func findProject(user *domain.User, title string) *domain.Project {
	for _, p := range user.Projects {
		if strings.EqualFold(p.Title, title) {
			return p
		}
	}
	return nil
}

// findTask returns the first of the project's tasks whose title
// matches, ignoring case.
func findTask(project *domain.Project, title string) *domain.Task {
	for _, t := range project.Tasks {
		if strings.EqualFold(t.Title, title) {
			return t
		}
	}
	return nil
}
