package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmallek/compass/internal/cli/formatter"
	"github.com/jmallek/compass/internal/domain"
)

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage goals within a program",
	}

	cmd.AddCommand(
		newGoalAddCmd(app),
		newGoalListCmd(app),
		newGoalUpdateCmd(app),
		newGoalRemoveCmd(app),
	)

	return cmd
}

func newGoalAddCmd(app *App) *cobra.Command {
	var program, name, description, owner, start, end string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a goal under a program",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			programID, err := resolveProgramID(ctx, app, program)
			if err != nil {
				return err
			}

			g := &domain.Goal{
				ProgramID:   programID,
				Name:        name,
				Description: description,
				Owner:       owner,
				StartDate:   time.Now(),
			}
			if start != "" {
				startDate, err := time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
				g.StartDate = startDate
			}
			if end != "" {
				endDate, err := time.Parse("2006-01-02", end)
				if err != nil {
					return fmt.Errorf("invalid end date %q: %w", end, err)
				}
				g.EndDate = &endDate
			}

			if err := app.Goals.Create(ctx, g); err != nil {
				return err
			}

			fmt.Printf("Created goal %s [%s]\n", g.Name, shortID(g.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&program, "program", "", "Program ID, prefix, or name")
	cmd.Flags().StringVar(&name, "name", "", "Goal name")
	cmd.Flags().StringVar(&description, "description", "", "Goal description")
	cmd.Flags().StringVar(&owner, "owner", "", "Goal owner")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("program")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newGoalListCmd(app *App) *cobra.Command {
	var program string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List goals for a program",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			programID, err := resolveProgramID(ctx, app, program)
			if err != nil {
				return err
			}
			goals, err := app.Goals.ListByProgram(ctx, programID)
			if err != nil {
				return err
			}

			if len(goals) == 0 {
				fmt.Println("No goals found.")
				return nil
			}

			rows := make([][]string, 0, len(goals))
			for _, g := range goals {
				rows = append(rows, []string{
					formatter.TruncID(g.ID),
					g.Name,
					formatter.StatusPill(g.Status),
					formatter.RenderProgress(float64(g.Progress)/100, 8),
					g.Owner,
				})
			}
			fmt.Printf("%s\n", formatter.RenderTable(
				[]string{"ID", "Name", "Status", "Progress", "Owner"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&program, "program", "", "Program ID, prefix, or name")
	_ = cmd.MarkFlagRequired("program")

	return cmd
}

func newGoalUpdateCmd(app *App) *cobra.Command {
	var name, status, owner string
	var progress int

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			g, err := app.Goals.GetByID(ctx, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				g.Name = name
			}
			if cmd.Flags().Changed("status") {
				g.Status = domain.Status(status)
			}
			if cmd.Flags().Changed("owner") {
				g.Owner = owner
			}
			if cmd.Flags().Changed("progress") {
				g.Progress = domain.ClampProgress(progress)
			}

			if err := app.Goals.Update(ctx, g); err != nil {
				return err
			}

			fmt.Printf("Updated goal %s\n", g.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Goal name")
	cmd.Flags().StringVar(&status, "status", "", "Status (not_started|in_progress|completed|at_risk|delayed)")
	cmd.Flags().StringVar(&owner, "owner", "", "Goal owner")
	cmd.Flags().IntVar(&progress, "progress", 0, "Progress percentage (0-100)")

	return cmd
}

func newGoalRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a goal and its milestones",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Goals.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed goal %s\n", args[0])
			return nil
		},
	}
}

// shortID trims a UUID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
