package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmallek/compass/internal/cli/formatter"
	"github.com/jmallek/compass/internal/domain"
)

func newScenarioCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Explore and save what-if scenarios",
	}

	cmd.AddCommand(
		newScenarioSuggestCmd(app),
		newScenarioSaveCmd(app),
		newScenarioListCmd(app),
		newScenarioRemoveCmd(app),
	)

	return cmd
}

func newScenarioSuggestCmd(app *App) *cobra.Command {
	var program string

	cmd := &cobra.Command{
		Use:   "suggest QUERY",
		Short: "Generate suggestions for a free-form question",
		Long: "Asks the suggestion engine what to change, e.g.\n" +
			"  compass scenario suggest \"how do we finish sooner\" --program rollout",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			programID, err := resolveProgramID(ctx, app, program)
			if err != nil {
				return err
			}

			suggestions, err := app.Scenarios.Suggest(ctx, programID, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatSuggestions(suggestions))
			return nil
		},
	}

	cmd.Flags().StringVar(&program, "program", "", "Program ID, prefix, or name")
	_ = cmd.MarkFlagRequired("program")

	return cmd
}

func newScenarioSaveCmd(app *App) *cobra.Command {
	var program, title, description string
	var timeline, budget, resources float64

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save a what-if scenario against a program",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			programID, err := resolveProgramID(ctx, app, program)
			if err != nil {
				return err
			}

			s := &domain.Scenario{
				ProgramID:   programID,
				Title:       title,
				Description: description,
				Changes: domain.ImpactDelta{
					TimelineMonths: timeline,
					BudgetPct:      budget,
					ResourcesPct:   resources,
				},
			}

			if err := app.Scenarios.Create(ctx, s); err != nil {
				return err
			}

			fmt.Printf("Saved scenario %s [%s]\n", s.Title, shortID(s.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&program, "program", "", "Program ID, prefix, or name")
	cmd.Flags().StringVar(&title, "title", "", "Scenario title")
	cmd.Flags().StringVar(&description, "description", "", "Scenario description")
	cmd.Flags().Float64Var(&timeline, "timeline", 0, "Timeline change in months")
	cmd.Flags().Float64Var(&budget, "budget", 0, "Budget change in percent")
	cmd.Flags().Float64Var(&resources, "resources", 0, "Resource change in percent")
	_ = cmd.MarkFlagRequired("program")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newScenarioListCmd(app *App) *cobra.Command {
	var program string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved scenarios for a program",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			programID, err := resolveProgramID(ctx, app, program)
			if err != nil {
				return err
			}
			scenarios, err := app.Scenarios.ListByProgram(ctx, programID)
			if err != nil {
				return err
			}

			if len(scenarios) == 0 {
				fmt.Println("No scenarios found.")
				return nil
			}

			rows := make([][]string, 0, len(scenarios))
			for _, s := range scenarios {
				rows = append(rows, []string{
					formatter.TruncID(s.ID),
					s.Title,
					formatter.SignedDelta(s.Changes.TimelineMonths, "mo"),
					formatter.SignedDelta(s.Changes.BudgetPct, "%"),
					formatter.SignedDelta(s.Changes.ResourcesPct, "%"),
				})
			}
			fmt.Printf("%s\n", formatter.RenderTable(
				[]string{"ID", "Title", "Timeline", "Budget", "Resources"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&program, "program", "", "Program ID, prefix, or name")
	_ = cmd.MarkFlagRequired("program")

	return cmd
}

func newScenarioRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a saved scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Scenarios.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed scenario %s\n", args[0])
			return nil
		},
	}
}
