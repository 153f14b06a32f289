package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmallek/compass/internal/db"
	"github.com/jmallek/compass/internal/domain"
)

// SQLiteMilestoneRepo implements MilestoneRepo over a SQLite connection
// or transaction. Resource assignments live in a side table and are
// replaced wholesale, matching the modal-form edit semantics.
type SQLiteMilestoneRepo struct {
	db db.DBTX
}

func NewSQLiteMilestoneRepo(conn db.DBTX) *SQLiteMilestoneRepo {
	return &SQLiteMilestoneRepo{db: conn}
}

const milestoneColumns = `id, goal_id, title, description, due_date, status, progress, owner, created_at, updated_at`

func (r *SQLiteMilestoneRepo) Create(ctx context.Context, m *domain.Milestone) error {
	query := `INSERT INTO milestones (` + milestoneColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.GoalID,
		m.Title,
		m.Description,
		nullableTimeToString(m.DueDate, dateLayout),
		string(m.Status),
		domain.ClampProgress(m.Progress),
		m.Owner,
		m.CreatedAt.Format(time.RFC3339),
		m.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting milestone: %w", err)
	}
	return nil
}

func (r *SQLiteMilestoneRepo) GetByID(ctx context.Context, id string) (*domain.Milestone, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+milestoneColumns+` FROM milestones WHERE id = ?`, id)
	m, err := scanMilestone(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("milestone not found")
	}
	return m, err
}

func (r *SQLiteMilestoneRepo) ListByGoal(ctx context.Context, goalID string) ([]*domain.Milestone, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+milestoneColumns+` FROM milestones WHERE goal_id = ? ORDER BY created_at`, goalID)
	if err != nil {
		return nil, fmt.Errorf("listing milestones: %w", err)
	}
	defer rows.Close()
	return collectMilestones(rows)
}

func (r *SQLiteMilestoneRepo) ListByOrganization(ctx context.Context, organizationID string) ([]*domain.Milestone, error) {
	query := `SELECT m.id, m.goal_id, m.title, m.description, m.due_date,
			m.status, m.progress, m.owner, m.created_at, m.updated_at
		FROM milestones m
		JOIN goals g ON g.id = m.goal_id
		JOIN programs p ON p.id = g.program_id
		ORDER BY m.created_at`
	args := []any{}
	if organizationID != "" {
		query = `SELECT m.id, m.goal_id, m.title, m.description, m.due_date,
				m.status, m.progress, m.owner, m.created_at, m.updated_at
			FROM milestones m
			JOIN goals g ON g.id = m.goal_id
			JOIN programs p ON p.id = g.program_id
			WHERE p.organization_id = ?
			ORDER BY m.created_at`
		args = append(args, organizationID)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing milestones by organization: %w", err)
	}
	defer rows.Close()
	return collectMilestones(rows)
}

func (r *SQLiteMilestoneRepo) Update(ctx context.Context, m *domain.Milestone) error {
	query := `UPDATE milestones SET goal_id = ?, title = ?, description = ?, due_date = ?,
		status = ?, progress = ?, owner = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		m.GoalID,
		m.Title,
		m.Description,
		nullableTimeToString(m.DueDate, dateLayout),
		string(m.Status),
		domain.ClampProgress(m.Progress),
		m.Owner,
		m.UpdatedAt.Format(time.RFC3339),
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("updating milestone: %w", err)
	}
	return nil
}

func (r *SQLiteMilestoneRepo) UpdateGoal(ctx context.Context, milestoneID, newGoalID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE milestones SET goal_id = ?, updated_at = ? WHERE id = ?`,
		newGoalID, nowUTC(), milestoneID)
	if err != nil {
		return fmt.Errorf("re-parenting milestone: %w", err)
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return fmt.Errorf("milestone not found")
	}
	return nil
}

func (r *SQLiteMilestoneRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM milestones WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting milestone: %w", err)
	}
	return nil
}

func (r *SQLiteMilestoneRepo) ListResources(ctx context.Context, milestoneID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id FROM milestone_resources WHERE milestone_id = ? ORDER BY user_id`, milestoneID)
	if err != nil {
		return nil, fmt.Errorf("listing milestone resources: %w", err)
	}
	defer rows.Close()

	var userIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning resource: %w", err)
		}
		userIDs = append(userIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating resources: %w", err)
	}
	return userIDs, nil
}

func (r *SQLiteMilestoneRepo) ReplaceResources(ctx context.Context, milestoneID string, userIDs []string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM milestone_resources WHERE milestone_id = ?`, milestoneID); err != nil {
		return fmt.Errorf("clearing milestone resources: %w", err)
	}
	for _, userID := range userIDs {
		if _, err := r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO milestone_resources (milestone_id, user_id) VALUES (?, ?)`,
			milestoneID, userID); err != nil {
			return fmt.Errorf("inserting milestone resource: %w", err)
		}
	}
	return nil
}

func collectMilestones(rows *sql.Rows) ([]*domain.Milestone, error) {
	var milestones []*domain.Milestone
	for rows.Next() {
		m, err := scanMilestone(rows)
		if err != nil {
			return nil, err
		}
		milestones = append(milestones, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating milestones: %w", err)
	}
	return milestones, nil
}

func scanMilestone(row rowScanner) (*domain.Milestone, error) {
	var m domain.Milestone
	var statusStr, createdStr, updatedStr string
	var dueStr sql.NullString

	err := row.Scan(
		&m.ID, &m.GoalID, &m.Title, &m.Description,
		&dueStr, &statusStr, &m.Progress, &m.Owner,
		&createdStr, &updatedStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning milestone: %w", err)
	}

	m.Status = domain.Status(statusStr)
	if m.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if m.UpdatedAt, err = time.Parse(time.RFC3339, updatedStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	m.DueDate = parseNullableTime(dueStr, dateLayout)

	return &m, nil
}
