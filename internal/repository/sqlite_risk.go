package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmallek/compass/internal/db"
	"github.com/jmallek/compass/internal/domain"
)

// SQLiteRiskRepo implements RiskRepo over a SQLite connection or transaction.
type SQLiteRiskRepo struct {
	db db.DBTX
}

func NewSQLiteRiskRepo(conn db.DBTX) *SQLiteRiskRepo {
	return &SQLiteRiskRepo{db: conn}
}

const riskColumns = `id, program_id, milestone_id, description, probability, impact, mitigation, update_log, update_date, status, created_at, updated_at`

func (r *SQLiteRiskRepo) Create(ctx context.Context, risk *domain.Risk) error {
	query := `INSERT INTO risks (` + riskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		risk.ID,
		risk.ProgramID,
		nullableString(risk.MilestoneID),
		risk.Description,
		domain.ClampProbability(risk.Probability),
		risk.Impact,
		risk.Mitigation,
		risk.UpdateLog,
		nullableTimeToString(risk.UpdateDate, dateLayout),
		string(risk.Status),
		risk.CreatedAt.Format(time.RFC3339),
		risk.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting risk: %w", err)
	}
	return nil
}

func (r *SQLiteRiskRepo) GetByID(ctx context.Context, id string) (*domain.Risk, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+riskColumns+` FROM risks WHERE id = ?`, id)
	risk, err := scanRisk(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("risk not found")
	}
	return risk, err
}

func (r *SQLiteRiskRepo) ListByProgram(ctx context.Context, programID string) ([]*domain.Risk, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+riskColumns+` FROM risks WHERE program_id = ? ORDER BY created_at`, programID)
	if err != nil {
		return nil, fmt.Errorf("listing risks: %w", err)
	}
	defer rows.Close()

	var risks []*domain.Risk
	for rows.Next() {
		risk, err := scanRisk(rows)
		if err != nil {
			return nil, err
		}
		risks = append(risks, risk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating risks: %w", err)
	}
	return risks, nil
}

func (r *SQLiteRiskRepo) Update(ctx context.Context, risk *domain.Risk) error {
	query := `UPDATE risks SET milestone_id = ?, description = ?, probability = ?, impact = ?,
		mitigation = ?, update_log = ?, update_date = ?, status = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		nullableString(risk.MilestoneID),
		risk.Description,
		domain.ClampProbability(risk.Probability),
		risk.Impact,
		risk.Mitigation,
		risk.UpdateLog,
		nullableTimeToString(risk.UpdateDate, dateLayout),
		string(risk.Status),
		risk.UpdatedAt.Format(time.RFC3339),
		risk.ID,
	)
	if err != nil {
		return fmt.Errorf("updating risk: %w", err)
	}
	return nil
}

func (r *SQLiteRiskRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM risks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting risk: %w", err)
	}
	return nil
}

func scanRisk(row rowScanner) (*domain.Risk, error) {
	var risk domain.Risk
	var statusStr, createdStr, updatedStr string
	var milestoneStr, updateDateStr sql.NullString

	err := row.Scan(
		&risk.ID, &risk.ProgramID, &milestoneStr, &risk.Description,
		&risk.Probability, &risk.Impact, &risk.Mitigation,
		&risk.UpdateLog, &updateDateStr, &statusStr,
		&createdStr, &updatedStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning risk: %w", err)
	}

	risk.Status = domain.RiskStatus(statusStr)
	risk.MilestoneID = stringPtr(milestoneStr)
	risk.UpdateDate = parseNullableTime(updateDateStr, dateLayout)
	if risk.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if risk.UpdatedAt, err = time.Parse(time.RFC3339, updatedStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	return &risk, nil
}
