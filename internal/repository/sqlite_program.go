package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmallek/compass/internal/db"
	"github.com/jmallek/compass/internal/domain"
)

// SQLiteProgramRepo implements ProgramRepo over a SQLite connection or
// transaction.
type SQLiteProgramRepo struct {
	db db.DBTX
}

func NewSQLiteProgramRepo(conn db.DBTX) *SQLiteProgramRepo {
	return &SQLiteProgramRepo{db: conn}
}

const programColumns = `id, name, description, start_date, end_date, progress, organization_id, user_id, created_at, updated_at`

func (r *SQLiteProgramRepo) Create(ctx context.Context, p *domain.Program) error {
	query := `INSERT INTO programs (` + programColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Description,
		p.StartDate.Format(dateLayout),
		nullableTimeToString(p.EndDate, dateLayout),
		domain.ClampProgress(p.Progress),
		p.OrganizationID,
		p.UserID,
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting program: %w", err)
	}
	return nil
}

func (r *SQLiteProgramRepo) GetByID(ctx context.Context, id string) (*domain.Program, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+programColumns+` FROM programs WHERE id = ?`, id)
	p, err := scanProgram(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("program not found")
	}
	return p, err
}

func (r *SQLiteProgramRepo) List(ctx context.Context, organizationID string) ([]*domain.Program, error) {
	query := `SELECT ` + programColumns + ` FROM programs ORDER BY created_at`
	args := []any{}
	if organizationID != "" {
		query = `SELECT ` + programColumns + ` FROM programs WHERE organization_id = ? ORDER BY created_at`
		args = append(args, organizationID)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing programs: %w", err)
	}
	defer rows.Close()

	var programs []*domain.Program
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, err
		}
		programs = append(programs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating programs: %w", err)
	}
	return programs, nil
}

func (r *SQLiteProgramRepo) Update(ctx context.Context, p *domain.Program) error {
	query := `UPDATE programs SET name = ?, description = ?, start_date = ?, end_date = ?,
		progress = ?, organization_id = ?, user_id = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Description,
		p.StartDate.Format(dateLayout),
		nullableTimeToString(p.EndDate, dateLayout),
		domain.ClampProgress(p.Progress),
		p.OrganizationID,
		p.UserID,
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating program: %w", err)
	}
	return nil
}

func (r *SQLiteProgramRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM programs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting program: %w", err)
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProgram(row rowScanner) (*domain.Program, error) {
	var p domain.Program
	var startStr, createdStr, updatedStr string
	var endStr sql.NullString

	err := row.Scan(
		&p.ID, &p.Name, &p.Description,
		&startStr, &endStr, &p.Progress,
		&p.OrganizationID, &p.UserID,
		&createdStr, &updatedStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning program: %w", err)
	}

	if p.StartDate, err = time.Parse(dateLayout, startStr); err != nil {
		return nil, fmt.Errorf("parsing start_date: %w", err)
	}
	if p.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	p.EndDate = parseNullableTime(endStr, dateLayout)

	return &p, nil
}
