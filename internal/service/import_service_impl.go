package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmallek/compass/internal/db"
	"github.com/jmallek/compass/internal/importer"
	"github.com/jmallek/compass/internal/repository"
)

type importService struct {
	uow            db.UnitOfWork
	organizationID string
}

func NewImportService(uow db.UnitOfWork, organizationID string) ImportService {
	return &importService{uow: uow, organizationID: organizationID}
}

func (s *importService) ImportProgram(ctx context.Context, path string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(path)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}
		return nil, fmt.Errorf("import file invalid:\n  %s", strings.Join(msgs, "\n  "))
	}

	converted := importer.ConvertImportSchema(schema, s.organizationID)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		programs := repository.NewSQLiteProgramRepo(tx)
		goals := repository.NewSQLiteGoalRepo(tx)
		milestones := repository.NewSQLiteMilestoneRepo(tx)
		tasks := repository.NewSQLiteTaskRepo(tx)
		deps := repository.NewSQLiteDependencyRepo(tx)

		if err := programs.Create(ctx, converted.Program); err != nil {
			return err
		}
		for _, g := range converted.Goals {
			if err := goals.Create(ctx, g); err != nil {
				return err
			}
		}
		for _, m := range converted.Milestones {
			if err := milestones.Create(ctx, m); err != nil {
				return err
			}
		}
		for _, t := range converted.Tasks {
			if err := tasks.Create(ctx, t); err != nil {
				return err
			}
		}
		for _, d := range converted.Dependencies {
			if err := deps.Create(ctx, d); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("importing program: %w", err)
	}

	return &ImportResult{
		Program:         converted.Program,
		GoalCount:       len(converted.Goals),
		MilestoneCount:  len(converted.Milestones),
		TaskCount:       len(converted.Tasks),
		DependencyCount: len(converted.Dependencies),
	}, nil
}
