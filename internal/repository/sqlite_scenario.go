package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmallek/compass/internal/db"
	"github.com/jmallek/compass/internal/domain"
)

// SQLiteScenarioRepo implements ScenarioRepo over a SQLite connection or
// transaction. The change and prediction triples are flattened into
// dedicated columns so the KPI views can aggregate without JSON parsing.
type SQLiteScenarioRepo struct {
	db db.DBTX
}

func NewSQLiteScenarioRepo(conn db.DBTX) *SQLiteScenarioRepo {
	return &SQLiteScenarioRepo{db: conn}
}

const scenarioColumns = `id, program_id, title, description,
	change_timeline_mo, change_budget_pct, change_resources_pct,
	predict_timeline_mo, predict_budget_pct, predict_resources_pct,
	created_at, updated_at`

func (r *SQLiteScenarioRepo) Create(ctx context.Context, s *domain.Scenario) error {
	query := `INSERT INTO scenarios (` + scenarioColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.ProgramID,
		s.Title,
		s.Description,
		s.Changes.TimelineMonths,
		s.Changes.BudgetPct,
		s.Changes.ResourcesPct,
		s.Predicted.TimelineMonths,
		s.Predicted.BudgetPct,
		s.Predicted.ResourcesPct,
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting scenario: %w", err)
	}
	return nil
}

func (r *SQLiteScenarioRepo) GetByID(ctx context.Context, id string) (*domain.Scenario, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+scenarioColumns+` FROM scenarios WHERE id = ?`, id)
	s, err := scanScenario(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("scenario not found")
	}
	return s, err
}

func (r *SQLiteScenarioRepo) ListByProgram(ctx context.Context, programID string) ([]*domain.Scenario, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+scenarioColumns+` FROM scenarios WHERE program_id = ? ORDER BY created_at`, programID)
	if err != nil {
		return nil, fmt.Errorf("listing scenarios: %w", err)
	}
	defer rows.Close()

	var scenarios []*domain.Scenario
	for rows.Next() {
		s, err := scanScenario(rows)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating scenarios: %w", err)
	}
	return scenarios, nil
}

func (r *SQLiteScenarioRepo) Update(ctx context.Context, s *domain.Scenario) error {
	query := `UPDATE scenarios SET title = ?, description = ?,
		change_timeline_mo = ?, change_budget_pct = ?, change_resources_pct = ?,
		predict_timeline_mo = ?, predict_budget_pct = ?, predict_resources_pct = ?,
		updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		s.Title,
		s.Description,
		s.Changes.TimelineMonths,
		s.Changes.BudgetPct,
		s.Changes.ResourcesPct,
		s.Predicted.TimelineMonths,
		s.Predicted.BudgetPct,
		s.Predicted.ResourcesPct,
		s.UpdatedAt.Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating scenario: %w", err)
	}
	return nil
}

func (r *SQLiteScenarioRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM scenarios WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting scenario: %w", err)
	}
	return nil
}

func scanScenario(row rowScanner) (*domain.Scenario, error) {
	var s domain.Scenario
	var createdStr, updatedStr string

	err := row.Scan(
		&s.ID, &s.ProgramID, &s.Title, &s.Description,
		&s.Changes.TimelineMonths, &s.Changes.BudgetPct, &s.Changes.ResourcesPct,
		&s.Predicted.TimelineMonths, &s.Predicted.BudgetPct, &s.Predicted.ResourcesPct,
		&createdStr, &updatedStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning scenario: %w", err)
	}

	if s.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if s.UpdatedAt, err = time.Parse(time.RFC3339, updatedStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	return &s, nil
}
