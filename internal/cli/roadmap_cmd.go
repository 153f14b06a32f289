package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmallek/compass/internal/cli/formatter"
)

func newRoadmapCmd(app *App) *cobra.Command {
	var org string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "roadmap",
		Short: "Show the program → goal → milestone hierarchy",
		RunE: func(cmd *cobra.Command, args []string) error {
			if org == "" {
				org = app.Config.OrganizationID
			}

			tree, orphans, err := app.Roadmap.Build(context.Background(), org)
			if err != nil {
				return err
			}

			if interactive {
				if app.IsInteractive != nil && !app.IsInteractive() {
					return fmt.Errorf("--interactive requires a terminal")
				}
				return runRoadmapBrowser(tree, orphans)
			}

			fmt.Printf("%s\n", formatter.FormatRoadmap(tree, nil))
			if out := formatter.FormatOrphans(orphans); out != "" {
				fmt.Printf("\n%s", out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&org, "org", "", "Organization filter (empty = all)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Browse the roadmap in a collapsible tree view")

	return cmd
}
