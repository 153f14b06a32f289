package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/jmallek/compass/internal/cli"
	"github.com/jmallek/compass/internal/config"
	"github.com/jmallek/compass/internal/db"
	"github.com/jmallek/compass/internal/llm"
	"github.com/jmallek/compass/internal/repository"
	"github.com/jmallek/compass/internal/scenario"
	"github.com/jmallek/compass/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	programRepo := repository.NewSQLiteProgramRepo(database)
	goalRepo := repository.NewSQLiteGoalRepo(database)
	milestoneRepo := repository.NewSQLiteMilestoneRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	depRepo := repository.NewSQLiteDependencyRepo(database)
	riskRepo := repository.NewSQLiteRiskRepo(database)
	scenarioRepo := repository.NewSQLiteScenarioRepo(database)
	invoiceRepo := repository.NewSQLiteInvoiceRepo(database)
	costRepo := repository.NewSQLiteCostRepo(database)
	chatRepo := repository.NewSQLiteChatRepo(database)
	userRepo := repository.NewSQLiteUserRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire the LLM client when enabled; everything degrades to the rule
	// table and canned replies without it.
	llmCfg := llm.LoadConfig()
	var llmClient llm.Client
	var provider scenario.SuggestionProvider
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		llmClient, err = llm.NewClient(llmCfg, observer)
		if err != nil {
			return fmt.Errorf("configuring llm client: %w", err)
		}
		provider = llm.NewScenarioSuggester(llmClient)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	engine := scenario.NewEngine(provider, logger)

	app := &cli.App{
		Programs:   service.NewProgramService(programRepo),
		Goals:      service.NewGoalService(goalRepo, programRepo),
		Milestones: service.NewMilestoneService(milestoneRepo, goalRepo, depRepo, uow),
		Tasks:      service.NewTaskService(taskRepo, milestoneRepo),
		Risks:      service.NewRiskService(riskRepo),
		Scenarios:  service.NewScenarioService(scenarioRepo, programRepo, riskRepo, goalRepo, milestoneRepo, engine),
		Invoices:   service.NewInvoiceService(invoiceRepo, costRepo),
		Chat:       service.NewChatService(chatRepo, llmClient),
		Admin:      service.NewAdminService(userRepo),
		Roadmap:    service.NewRoadmapService(programRepo, goalRepo, milestoneRepo),
		Import:     service.NewImportService(uow, cfg.OrganizationID),
		Engine:     engine,
		Config:     cfg,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
