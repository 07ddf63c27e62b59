package cli

import (
	"github.com/spf13/cobra"
)

// newRootCommand creates the root command with all subcommands attached.
func newRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "pm",
		Short: "A CLI tool for managing users, projects, and tasks",
		Long: `Project Manager (pm) is a command-line tool for tracking users, the
projects they own, and tasks within those projects. All data is kept in
a single JSON document.

EXAMPLES:
  pm add-user --name "Alex" --email "alex@email.com"
  pm list-users
  pm add-project --user "Alex" --title "CLI Tool" --desc "A cool project" --due "2025-12-31"
  pm list-projects --user "Alex"
  pm add-task --user "Alex" --project "CLI Tool" --title "Implement storage" --assign "Alex"
  pm list-tasks --user "Alex" --project "CLI Tool"
  pm complete-task --user "Alex" --project "CLI Tool" --task "Implement storage"

CONFIGURATION:
  PM_DATA_DIR               Data directory (default: data)
  PM_DATA_FILE              Data filename (default: users.json)
  PM_DISPLAY_EMPTY_CELL     Placeholder for blank fields (default: —)
  PM_VERBOSE                Enable verbose logging (default: false)`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newAddUserCommand(app),
		newListUsersCommand(app),
		newAddProjectCommand(app),
		newListProjectsCommand(app),
		newAddTaskCommand(app),
		newListTasksCommand(app),
		newCompleteTaskCommand(app),
	)

	return root
}
