package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmallek/compass/internal/cli/formatter"
	"github.com/jmallek/compass/internal/domain"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks within a milestone",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskUpdateCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var milestone, title, description, assignee, due string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task under a milestone",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := &domain.Task{
				MilestoneID: milestone,
				Title:       title,
				Description: description,
				Assignee:    assignee,
			}
			if due != "" {
				dueDate, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("invalid due date %q: %w", due, err)
				}
				t.DueDate = &dueDate
			}

			if err := app.Tasks.Create(context.Background(), t); err != nil {
				return err
			}

			fmt.Printf("Created task %s [%s]\n", t.Title, shortID(t.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&milestone, "milestone", "", "Milestone ID")
	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&description, "description", "", "Task description")
	cmd.Flags().StringVar(&assignee, "assignee", "", "Assigned user")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("milestone")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var milestone string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks for a milestone",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.ListByMilestone(context.Background(), milestone)
			if err != nil {
				return err
			}

			if len(tasks) == 0 {
				fmt.Println("No tasks found.")
				return nil
			}

			rows := make([][]string, 0, len(tasks))
			for _, t := range tasks {
				due := formatter.Dim("--")
				if t.DueDate != nil {
					due = formatter.RelativeDate(*t.DueDate)
				}
				rows = append(rows, []string{
					formatter.TruncID(t.ID),
					t.Title,
					formatter.StatusPill(t.Status),
					due,
					t.Assignee,
				})
			}
			fmt.Printf("%s\n", formatter.RenderTable(
				[]string{"ID", "Title", "Status", "Due", "Assignee"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&milestone, "milestone", "", "Milestone ID")
	_ = cmd.MarkFlagRequired("milestone")

	return cmd
}

func newTaskUpdateCmd(app *App) *cobra.Command {
	var title, status, assignee string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			t, err := app.Tasks.GetByID(ctx, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("title") {
				t.Title = title
			}
			if cmd.Flags().Changed("status") {
				t.Status = domain.Status(status)
			}
			if cmd.Flags().Changed("assignee") {
				t.Assignee = assignee
			}

			if err := app.Tasks.Update(ctx, t); err != nil {
				return err
			}

			fmt.Printf("Updated task %s\n", t.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&status, "status", "", "Status (not_started|in_progress|completed|at_risk|delayed)")
	cmd.Flags().StringVar(&assignee, "assignee", "", "Assigned user")

	return cmd
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed task %s\n", args[0])
			return nil
		},
	}
}
