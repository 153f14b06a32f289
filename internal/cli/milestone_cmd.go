package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmallek/compass/internal/cli/formatter"
	"github.com/jmallek/compass/internal/domain"
)

func newMilestoneCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "milestone",
		Short: "Manage milestones, their dependencies and resources",
	}

	cmd.AddCommand(
		newMilestoneAddCmd(app),
		newMilestoneListCmd(app),
		newMilestoneUpdateCmd(app),
		newMilestoneRemoveCmd(app),
		newMilestoneDepsCmd(app),
		newMilestoneAssignCmd(app),
		newMilestoneMoveCmd(app),
	)

	return cmd
}

func newMilestoneAddCmd(app *App) *cobra.Command {
	var goal, title, description, owner, due string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a milestone under a goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := &domain.Milestone{
				GoalID:      goal,
				Title:       title,
				Description: description,
				Owner:       owner,
			}
			if due != "" {
				dueDate, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("invalid due date %q: %w", due, err)
				}
				m.DueDate = &dueDate
			}

			if err := app.Milestones.Create(context.Background(), m); err != nil {
				return err
			}

			fmt.Printf("Created milestone %s [%s]\n", m.Title, shortID(m.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&goal, "goal", "", "Goal ID")
	cmd.Flags().StringVar(&title, "title", "", "Milestone title")
	cmd.Flags().StringVar(&description, "description", "", "Milestone description")
	cmd.Flags().StringVar(&owner, "owner", "", "Milestone owner")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("goal")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newMilestoneListCmd(app *App) *cobra.Command {
	var goal string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List milestones for a goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			milestones, err := app.Milestones.ListByGoal(context.Background(), goal)
			if err != nil {
				return err
			}

			if len(milestones) == 0 {
				fmt.Println("No milestones found.")
				return nil
			}

			rows := make([][]string, 0, len(milestones))
			for _, m := range milestones {
				due := formatter.Dim("--")
				if m.DueDate != nil {
					due = formatter.RelativeDate(*m.DueDate)
				}
				rows = append(rows, []string{
					formatter.TruncID(m.ID),
					m.Title,
					formatter.StatusPill(m.Status),
					due,
					m.Owner,
				})
			}
			fmt.Printf("%s\n", formatter.RenderTable(
				[]string{"ID", "Title", "Status", "Due", "Owner"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&goal, "goal", "", "Goal ID")
	_ = cmd.MarkFlagRequired("goal")

	return cmd
}

func newMilestoneUpdateCmd(app *App) *cobra.Command {
	var title, status, owner, due string
	var progress int

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a milestone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			m, err := app.Milestones.GetByID(ctx, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("title") {
				m.Title = title
			}
			if cmd.Flags().Changed("status") {
				m.Status = domain.Status(status)
			}
			if cmd.Flags().Changed("owner") {
				m.Owner = owner
			}
			if cmd.Flags().Changed("due") {
				dueDate, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("invalid due date %q: %w", due, err)
				}
				m.DueDate = &dueDate
			}
			if cmd.Flags().Changed("progress") {
				m.Progress = domain.ClampProgress(progress)
			}

			if err := app.Milestones.Update(ctx, m); err != nil {
				return err
			}

			fmt.Printf("Updated milestone %s\n", m.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Milestone title")
	cmd.Flags().StringVar(&status, "status", "", "Status (not_started|in_progress|completed|at_risk|delayed)")
	cmd.Flags().StringVar(&owner, "owner", "", "Milestone owner")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&progress, "progress", 0, "Progress percentage (0-100)")

	return cmd
}

func newMilestoneRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a milestone and its dependency edges",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Milestones.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed milestone %s\n", args[0])
			return nil
		},
	}
}

func newMilestoneDepsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deps",
		Short: "Manage milestone dependencies",
	}

	var on string
	setCmd := &cobra.Command{
		Use:   "set ID",
		Short: "Replace a milestone's predecessor set",
		Long: "Replaces the full predecessor set atomically. An invalid edge\n" +
			"anywhere in the set leaves the existing edges untouched.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var predecessors []string
			if on != "" {
				predecessors = strings.Split(on, ",")
			}
			if err := app.Milestones.SetDependencies(context.Background(), args[0], predecessors); err != nil {
				return err
			}
			fmt.Printf("Milestone %s now depends on %d milestone(s)\n", shortID(args[0]), len(predecessors))
			return nil
		},
	}
	setCmd.Flags().StringVar(&on, "on", "", "Comma-separated predecessor milestone IDs (empty clears)")

	listCmd := &cobra.Command{
		Use:   "list ID",
		Short: "List a milestone's predecessors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			deps, err := app.Milestones.ListDependencies(ctx, args[0])
			if err != nil {
				return err
			}
			if len(deps) == 0 {
				fmt.Println("No dependencies.")
				return nil
			}
			for _, d := range deps {
				pred, err := app.Milestones.GetByID(ctx, d.PredecessorID)
				if err != nil {
					fmt.Printf("  %s\n", d.PredecessorID)
					continue
				}
				fmt.Printf("  %s %s %s\n", formatter.TruncID(pred.ID), pred.Title, formatter.StatusPill(pred.Status))
			}
			return nil
		},
	}

	cmd.AddCommand(setCmd, listCmd)
	return cmd
}

func newMilestoneAssignCmd(app *App) *cobra.Command {
	var users string

	cmd := &cobra.Command{
		Use:   "assign ID",
		Short: "Replace a milestone's resource assignments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var userIDs []string
			if users != "" {
				userIDs = strings.Split(users, ",")
			}
			if err := app.Milestones.AssignResources(context.Background(), args[0], userIDs); err != nil {
				return err
			}
			fmt.Printf("Assigned %d resource(s) to milestone %s\n", len(userIDs), shortID(args[0]))
			return nil
		},
	}

	cmd.Flags().StringVar(&users, "users", "", "Comma-separated user IDs (empty clears)")

	return cmd
}

func newMilestoneMoveCmd(app *App) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "move ID",
		Short: "Move a milestone under a different goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := app.Milestones.Move(context.Background(), args[0], to)
			if err != nil {
				return fmt.Errorf("move %s: %w", state, err)
			}
			fmt.Printf("Moved milestone %s to goal %s\n", shortID(args[0]), shortID(to))
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Target goal ID")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
