package cli

import (
	"github.com/spf13/cobra"
)

// newAddUserCommand creates the add-user command.
func newAddUserCommand(app *App) *cobra.Command {
	var name, email string

	cmd := &cobra.Command{
		Use:   "add-user",
		Short: "Create a new user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := app.manager.AddUser(cmd.Context(), name, email)
			if result.Success {
				app.renderer.Success(result.Message)
			} else {
				app.renderer.Error(result.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "User's full name")
	cmd.Flags().StringVar(&email, "email", "", "User's email address")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

// newListUsersCommand creates the list-users command.
func newListUsersCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list-users",
		Short: "List all users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := app.manager.ListUsers(cmd.Context())
			if !result.Success {
				app.renderer.Error(result.Message)
				return nil
			}
			app.renderer.UsersTable(result.Data)
			return nil
		},
	}
}
