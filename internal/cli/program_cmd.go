package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmallek/compass/internal/cli/formatter"
	"github.com/jmallek/compass/internal/domain"
)

func newProgramCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "program",
		Short: "Manage programs",
	}

	cmd.AddCommand(
		newProgramAddCmd(app),
		newProgramListCmd(app),
		newProgramInspectCmd(app),
		newProgramUpdateCmd(app),
		newProgramRemoveCmd(app),
		newProgramImportCmd(app),
	)

	return cmd
}

func newProgramAddCmd(app *App) *cobra.Command {
	var name, description, start, end string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new program",
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				if app.IsInteractive != nil && !app.IsInteractive() {
					return fmt.Errorf("--interactive requires a terminal")
				}
				form := programForm(&name, &description, &start, &end)
				if err := form.Run(); err != nil {
					return err
				}
			}

			startDate, err := time.Parse("2006-01-02", start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}

			p := &domain.Program{
				Name:           name,
				Description:    description,
				StartDate:      startDate,
				OrganizationID: app.Config.OrganizationID,
			}
			if end != "" {
				endDate, err := time.Parse("2006-01-02", end)
				if err != nil {
					return fmt.Errorf("invalid end date %q: %w", end, err)
				}
				p.EndDate = &endDate
			}

			if err := app.Programs.Create(context.Background(), p); err != nil {
				return err
			}

			fmt.Printf("Created program %s [%s]\n", p.Name, p.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Program name")
	cmd.Flags().StringVar(&description, "description", "", "Program description")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill fields in a guided form")

	return cmd
}

func newProgramListCmd(app *App) *cobra.Command {
	var org string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List programs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if org == "" {
				org = app.Config.OrganizationID
			}
			programs, err := app.Programs.List(context.Background(), org)
			if err != nil {
				return err
			}

			if len(programs) == 0 {
				fmt.Println("No programs found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatProgramList(programs))
			return nil
		},
	}

	cmd.Flags().StringVar(&org, "org", "", "Organization filter (empty = all)")

	return cmd
}

func newProgramInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show program details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			programID, err := resolveProgramID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Programs.GetByID(ctx, programID)
			if err != nil {
				return err
			}

			goals, _ := app.Goals.ListByProgram(ctx, programID)
			risks, _ := app.Risks.Summarize(ctx, programID)

			fmt.Printf("%s\n", formatter.FormatProgramInspect(formatter.ProgramInspectData{
				Program: p,
				Goals:   goals,
				Risks:   risks,
			}))
			return nil
		},
	}
}

func newProgramUpdateCmd(app *App) *cobra.Command {
	var name, description, end string
	var progress int

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			programID, err := resolveProgramID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Programs.GetByID(ctx, programID)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				p.Name = name
			}
			if cmd.Flags().Changed("description") {
				p.Description = description
			}
			if cmd.Flags().Changed("end") {
				endDate, err := time.Parse("2006-01-02", end)
				if err != nil {
					return fmt.Errorf("invalid end date %q: %w", end, err)
				}
				p.EndDate = &endDate
			}
			if cmd.Flags().Changed("progress") {
				p.Progress = domain.ClampProgress(progress)
			}

			if err := app.Programs.Update(ctx, p); err != nil {
				return err
			}

			fmt.Printf("Updated program %s [%s]\n", p.Name, p.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Program name")
	cmd.Flags().StringVar(&description, "description", "", "Program description")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&progress, "progress", 0, "Progress percentage (0-100)")

	return cmd
}

func newProgramImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a program tree from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportProgram(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Imported program %s [%s] — %d goals, %d milestones, %d tasks, %d dependencies\n",
				result.Program.Name, result.Program.DisplayID(),
				result.GoalCount, result.MilestoneCount, result.TaskCount, result.DependencyCount)
			return nil
		},
	}
}

func newProgramRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a program and everything under it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			programID, err := resolveProgramID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Programs.Delete(ctx, programID); err != nil {
				return err
			}
			fmt.Printf("Removed program %s\n", programID)
			return nil
		},
	}
}
