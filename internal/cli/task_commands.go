package cli

import (
	"github.com/spf13/cobra"
)

// newAddTaskCommand creates the add-task command.
func newAddTaskCommand(app *App) *cobra.Command {
	var user, project, title, assign string

	cmd := &cobra.Command{
		Use:   "add-task",
		Short: "Add a task to a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := app.manager.AddTask(cmd.Context(), user, project, title, assign)
			if result.Success {
				app.renderer.Success(result.Message)
			} else {
				app.renderer.Error(result.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Name of the user who owns the project")
	cmd.Flags().StringVar(&project, "project", "", "Project title")
	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&assign, "assign", "", "Name of person assigned to the task")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

// newListTasksCommand creates the list-tasks command.
func newListTasksCommand(app *App) *cobra.Command {
	var user, project string

	cmd := &cobra.Command{
		Use:   "list-tasks",
		Short: "List all tasks in a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := app.manager.ListTasks(cmd.Context(), user, project)
			if !result.Success {
				app.renderer.Error(result.Message)
				return nil
			}
			app.renderer.TasksTable(project, result.Data)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Name of the user")
	cmd.Flags().StringVar(&project, "project", "", "Project title")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

// newCompleteTaskCommand creates the complete-task command.
func newCompleteTaskCommand(app *App) *cobra.Command {
	var user, project, task string

	cmd := &cobra.Command{
		Use:   "complete-task",
		Short: "Mark a task as complete",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := app.manager.CompleteTask(cmd.Context(), user, project, task)
			if result.Success {
				app.renderer.Success(result.Message)
			} else {
				app.renderer.Error(result.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Name of the user")
	cmd.Flags().StringVar(&project, "project", "", "Project title")
	cmd.Flags().StringVar(&task, "task", "", "Task title to mark complete")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("task")

	return cmd
}
