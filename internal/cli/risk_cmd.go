package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmallek/compass/internal/cli/formatter"
	"github.com/jmallek/compass/internal/domain"
)

func newRiskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "risk",
		Short: "Track program risks",
	}

	cmd.AddCommand(
		newRiskAddCmd(app),
		newRiskListCmd(app),
		newRiskCloseCmd(app),
		newRiskSummaryCmd(app),
		newRiskRemoveCmd(app),
	)

	return cmd
}

func newRiskAddCmd(app *App) *cobra.Command {
	var program, description, mitigation string
	var probability, impact float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a risk against a program",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			programID, err := resolveProgramID(ctx, app, program)
			if err != nil {
				return err
			}

			r := &domain.Risk{
				ProgramID:   programID,
				Description: description,
				Probability: domain.ClampProbability(probability),
				Impact:      impact,
				Mitigation:  mitigation,
				Status:      domain.RiskOpen,
			}

			if err := app.Risks.Create(ctx, r); err != nil {
				return err
			}

			fmt.Printf("Registered risk [%s] exposure %.1f\n", shortID(r.ID), r.Exposure())
			return nil
		},
	}

	cmd.Flags().StringVar(&program, "program", "", "Program ID, prefix, or name")
	cmd.Flags().StringVar(&description, "description", "", "Risk description")
	cmd.Flags().Float64Var(&probability, "probability", 0.5, "Probability (0.0-1.0)")
	cmd.Flags().Float64Var(&impact, "impact", 5, "Impact (1-10)")
	cmd.Flags().StringVar(&mitigation, "mitigation", "", "Mitigation plan")
	_ = cmd.MarkFlagRequired("program")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}

func newRiskListCmd(app *App) *cobra.Command {
	var program string
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List risks for a program",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			programID, err := resolveProgramID(ctx, app, program)
			if err != nil {
				return err
			}
			risks, err := app.Risks.ListByProgram(ctx, programID)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(risks))
			for _, r := range risks {
				if !all && r.Status == domain.RiskClosed {
					continue
				}
				exposure := r.Exposure()
				rows = append(rows, []string{
					formatter.TruncID(r.ID),
					r.Description,
					fmt.Sprintf("%.0f%%", r.Probability*100),
					fmt.Sprintf("%.0f", r.Impact),
					formatter.ExposureStyle(exposure).Render(fmt.Sprintf("%.1f", exposure)),
					string(r.Status),
				})
			}

			if len(rows) == 0 {
				fmt.Println("No risks found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.RenderTable(
				[]string{"ID", "Description", "Probability", "Impact", "Exposure", "Status"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&program, "program", "", "Program ID, prefix, or name")
	cmd.Flags().BoolVar(&all, "all", false, "Include closed risks")
	_ = cmd.MarkFlagRequired("program")

	return cmd
}

func newRiskCloseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "close ID",
		Short: "Close a risk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Risks.Close(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Closed risk %s\n", args[0])
			return nil
		},
	}
}

func newRiskSummaryCmd(app *App) *cobra.Command {
	var program string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show a program's aggregate risk posture",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			programID, err := resolveProgramID(ctx, app, program)
			if err != nil {
				return err
			}
			s, err := app.Risks.Summarize(ctx, programID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.Header("Risk summary"))
			fmt.Printf("Open      %d\n", s.Open)
			fmt.Printf("Closed    %d\n", s.Closed)
			fmt.Printf("Exposure  %s\n",
				formatter.ExposureStyle(s.TotalExposure).Render(fmt.Sprintf("%.1f", s.TotalExposure)))
			if s.Highest != nil {
				fmt.Printf("Highest   %s (%.1f)\n", s.Highest.Description, s.Highest.Exposure())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&program, "program", "", "Program ID, prefix, or name")
	_ = cmd.MarkFlagRequired("program")

	return cmd
}

func newRiskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a risk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Risks.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed risk %s\n", args[0])
			return nil
		},
	}
}
