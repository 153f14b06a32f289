// Package cli wires the service layer to cobra commands and the
// interactive terminal views.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmallek/compass/internal/config"
	"github.com/jmallek/compass/internal/scenario"
	"github.com/jmallek/compass/internal/service"
)

// App carries the service dependencies every command needs. Commands
// only ever touch services; repositories stay behind them.
type App struct {
	Programs   service.ProgramService
	Goals      service.GoalService
	Milestones service.MilestoneService
	Tasks      service.TaskService
	Risks      service.RiskService
	Scenarios  service.ScenarioService
	Invoices   service.InvoiceService
	Chat       service.ChatService
	Admin      service.AdminService
	Roadmap    service.RoadmapService
	Import     service.ImportService

	// Engine backs `serve`; the HTTP suggest endpoint calls it with
	// client-supplied context instead of going through ScenarioService.
	Engine *scenario.Engine

	// Config carries the resolved settings, used by list commands for
	// the default organization scope and by `serve` for the bind address.
	Config config.Config

	// IsInteractive reports whether stdin is a terminal. Interactive
	// views refuse to start when it returns false.
	IsInteractive func() bool
}

// NewRootCmd builds the compass root command with all subcommands attached.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "compass",
		Short:         "Program roadmap planner and what-if explorer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newProgramCmd(app),
		newGoalCmd(app),
		newMilestoneCmd(app),
		newTaskCmd(app),
		newRiskCmd(app),
		newScenarioCmd(app),
		newInvoiceCmd(app),
		newRoadmapCmd(app),
		newChatCmd(app),
		newAdminCmd(app),
		newServeCmd(app),
	)

	return root
}
