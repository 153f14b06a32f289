package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmallek/compass/internal/db"
	"github.com/jmallek/compass/internal/domain"
)

// SQLiteGoalRepo implements GoalRepo over a SQLite connection or transaction.
type SQLiteGoalRepo struct {
	db db.DBTX
}

func NewSQLiteGoalRepo(conn db.DBTX) *SQLiteGoalRepo {
	return &SQLiteGoalRepo{db: conn}
}

const goalColumns = `id, program_id, name, description, start_date, end_date, status, progress, owner, created_at, updated_at`

func (r *SQLiteGoalRepo) Create(ctx context.Context, g *domain.Goal) error {
	query := `INSERT INTO goals (` + goalColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		g.ID,
		g.ProgramID,
		g.Name,
		g.Description,
		g.StartDate.Format(dateLayout),
		nullableTimeToString(g.EndDate, dateLayout),
		string(g.Status),
		domain.ClampProgress(g.Progress),
		g.Owner,
		g.CreatedAt.Format(time.RFC3339),
		g.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting goal: %w", err)
	}
	return nil
}

func (r *SQLiteGoalRepo) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+goalColumns+` FROM goals WHERE id = ?`, id)
	g, err := scanGoal(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("goal not found")
	}
	return g, err
}

func (r *SQLiteGoalRepo) ListByProgram(ctx context.Context, programID string) ([]*domain.Goal, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+goalColumns+` FROM goals WHERE program_id = ? ORDER BY created_at`, programID)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()
	return collectGoals(rows)
}

func (r *SQLiteGoalRepo) ListByOrganization(ctx context.Context, organizationID string) ([]*domain.Goal, error) {
	query := `SELECT g.id, g.program_id, g.name, g.description, g.start_date, g.end_date,
			g.status, g.progress, g.owner, g.created_at, g.updated_at
		FROM goals g
		JOIN programs p ON p.id = g.program_id
		ORDER BY g.created_at`
	args := []any{}
	if organizationID != "" {
		query = `SELECT g.id, g.program_id, g.name, g.description, g.start_date, g.end_date,
				g.status, g.progress, g.owner, g.created_at, g.updated_at
			FROM goals g
			JOIN programs p ON p.id = g.program_id
			WHERE p.organization_id = ?
			ORDER BY g.created_at`
		args = append(args, organizationID)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing goals by organization: %w", err)
	}
	defer rows.Close()
	return collectGoals(rows)
}

func (r *SQLiteGoalRepo) Update(ctx context.Context, g *domain.Goal) error {
	query := `UPDATE goals SET program_id = ?, name = ?, description = ?, start_date = ?,
		end_date = ?, status = ?, progress = ?, owner = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		g.ProgramID,
		g.Name,
		g.Description,
		g.StartDate.Format(dateLayout),
		nullableTimeToString(g.EndDate, dateLayout),
		string(g.Status),
		domain.ClampProgress(g.Progress),
		g.Owner,
		g.UpdatedAt.Format(time.RFC3339),
		g.ID,
	)
	if err != nil {
		return fmt.Errorf("updating goal: %w", err)
	}
	return nil
}

func (r *SQLiteGoalRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}
	return nil
}

func collectGoals(rows *sql.Rows) ([]*domain.Goal, error) {
	var goals []*domain.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goals: %w", err)
	}
	return goals, nil
}

func scanGoal(row rowScanner) (*domain.Goal, error) {
	var g domain.Goal
	var startStr, statusStr, createdStr, updatedStr string
	var endStr sql.NullString

	err := row.Scan(
		&g.ID, &g.ProgramID, &g.Name, &g.Description,
		&startStr, &endStr, &statusStr, &g.Progress, &g.Owner,
		&createdStr, &updatedStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning goal: %w", err)
	}

	g.Status = domain.Status(statusStr)
	if g.StartDate, err = time.Parse(dateLayout, startStr); err != nil {
		return nil, fmt.Errorf("parsing start_date: %w", err)
	}
	if g.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if g.UpdatedAt, err = time.Parse(time.RFC3339, updatedStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	g.EndDate = parseNullableTime(endStr, dateLayout)

	return &g, nil
}
