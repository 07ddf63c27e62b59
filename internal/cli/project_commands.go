package cli

import (
	"github.com/spf13/cobra"
)

// newAddProjectCommand creates the add-project command.
func newAddProjectCommand(app *App) *cobra.Command {
	var user, title, desc, due string

	cmd := &cobra.Command{
		Use:   "add-project",
		Short: "Add a project to a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := app.manager.AddProject(cmd.Context(), user, title, desc, due)
			if result.Success {
				app.renderer.Success(result.Message)
			} else {
				app.renderer.Error(result.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Name of the user")
	cmd.Flags().StringVar(&title, "title", "", "Project title")
	cmd.Flags().StringVar(&desc, "desc", "", "Project description")
	cmd.Flags().StringVar(&due, "due", "", "Due date (e.g. 2025-12-31)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

// newListProjectsCommand creates the list-projects command.
func newListProjectsCommand(app *App) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "list-projects",
		Short: "List all projects for a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := app.manager.ListProjects(cmd.Context(), user)
			if !result.Success {
				app.renderer.Error(result.Message)
				return nil
			}
			app.renderer.ProjectsTable(user, result.Data)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Name of the user")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
