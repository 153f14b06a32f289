package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmallek/compass/internal/db"
	"github.com/jmallek/compass/internal/domain"
)

// SQLiteDependencyRepo implements DependencyRepo over a SQLite connection
// or transaction. Edges are (predecessor, successor) milestone pairs.
type SQLiteDependencyRepo struct {
	db db.DBTX
}

func NewSQLiteDependencyRepo(conn db.DBTX) *SQLiteDependencyRepo {
	return &SQLiteDependencyRepo{db: conn}
}

func (r *SQLiteDependencyRepo) Create(ctx context.Context, d *domain.Dependency) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO milestone_dependencies (predecessor_id, successor_id) VALUES (?, ?)`,
		d.PredecessorID, d.SuccessorID)
	if err != nil {
		return fmt.Errorf("inserting dependency: %w", err)
	}
	return nil
}

func (r *SQLiteDependencyRepo) Delete(ctx context.Context, predecessorID, successorID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM milestone_dependencies WHERE predecessor_id = ? AND successor_id = ?`,
		predecessorID, successorID)
	if err != nil {
		return fmt.Errorf("deleting dependency: %w", err)
	}
	return nil
}

func (r *SQLiteDependencyRepo) ListPredecessors(ctx context.Context, milestoneID string) ([]domain.Dependency, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT predecessor_id, successor_id FROM milestone_dependencies WHERE successor_id = ?`,
		milestoneID)
	if err != nil {
		return nil, fmt.Errorf("listing predecessors: %w", err)
	}
	defer rows.Close()
	return scanDependencies(rows)
}

func (r *SQLiteDependencyRepo) ListSuccessors(ctx context.Context, milestoneID string) ([]domain.Dependency, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT predecessor_id, successor_id FROM milestone_dependencies WHERE predecessor_id = ?`,
		milestoneID)
	if err != nil {
		return nil, fmt.Errorf("listing successors: %w", err)
	}
	defer rows.Close()
	return scanDependencies(rows)
}

func (r *SQLiteDependencyRepo) ReplaceForSuccessor(ctx context.Context, successorID string, predecessorIDs []string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM milestone_dependencies WHERE successor_id = ?`, successorID); err != nil {
		return fmt.Errorf("clearing dependencies: %w", err)
	}
	for _, predID := range predecessorIDs {
		if _, err := r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO milestone_dependencies (predecessor_id, successor_id) VALUES (?, ?)`,
			predID, successorID); err != nil {
			return fmt.Errorf("inserting dependency: %w", err)
		}
	}
	return nil
}

func scanDependencies(rows *sql.Rows) ([]domain.Dependency, error) {
	var deps []domain.Dependency
	for rows.Next() {
		var d domain.Dependency
		if err := rows.Scan(&d.PredecessorID, &d.SuccessorID); err != nil {
			return nil, fmt.Errorf("scanning dependency: %w", err)
		}
		deps = append(deps, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dependencies: %w", err)
	}
	return deps, nil
}
