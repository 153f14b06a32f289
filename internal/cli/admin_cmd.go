package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmallek/compass/internal/cli/formatter"
	"github.com/jmallek/compass/internal/domain"
	"github.com/jmallek/compass/internal/service"
)

// localOperator is the actor for admin commands run from the local CLI.
// The machine owner already has the database file, so there is nothing
// to gate on; the HTTP gateway is where token auth applies.
func localOperator() *domain.User {
	return &domain.User{
		Email:  "operator@localhost",
		Role:   domain.RoleAdmin,
		Status: domain.UserApproved,
	}
}

func newAdminCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administer user accounts",
	}

	cmd.AddCommand(
		newAdminUserAddCmd(app),
		newAdminUserListCmd(app),
		newAdminUserActCmd(app, service.AdminApprove, "approve", "Approve a pending user"),
		newAdminUserActCmd(app, service.AdminReject, "reject", "Reject a pending user"),
		newAdminUserActCmd(app, service.AdminDelete, "remove", "Remove a user"),
	)

	return cmd
}

func newAdminUserAddCmd(app *App) *cobra.Command {
	var email, name, role string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a user account",
		RunE: func(cmd *cobra.Command, args []string) error {
			u := &domain.User{
				Email:          email,
				Name:           name,
				Role:           domain.UserRole(role),
				OrganizationID: app.Config.OrganizationID,
			}

			if err := app.Admin.CreateUser(context.Background(), u); err != nil {
				return err
			}

			// The token is shown exactly once, at creation. It never
			// appears in list output.
			fmt.Printf("Created user %s [%s]\n", u.Email, shortID(u.ID))
			fmt.Printf("API token: %s\n", u.APIToken)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "User email")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleMember), "Role (admin|member)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newAdminUserListCmd(app *App) *cobra.Command {
	var org string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List user accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if org == "" {
				org = app.Config.OrganizationID
			}
			users, err := app.Admin.ListUsers(context.Background(), org)
			if err != nil {
				return err
			}

			if len(users) == 0 {
				fmt.Println("No users found.")
				return nil
			}

			rows := make([][]string, 0, len(users))
			for _, u := range users {
				rows = append(rows, []string{
					formatter.TruncID(u.ID),
					u.Email,
					u.Name,
					string(u.Role),
					formatter.UserStatusPill(u.Status),
				})
			}
			fmt.Printf("%s\n", formatter.RenderTable(
				[]string{"ID", "Email", "Name", "Role", "Status"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&org, "org", "", "Organization filter (empty = all)")

	return cmd
}

func newAdminUserActCmd(app *App, action service.AdminAction, use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Admin.Act(context.Background(), localOperator(), action, args[0]); err != nil {
				return err
			}
			fmt.Printf("User %s: %s\n", args[0], use)
			return nil
		},
	}
}
