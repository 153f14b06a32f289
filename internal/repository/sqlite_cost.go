package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmallek/compass/internal/db"
	"github.com/jmallek/compass/internal/domain"
)

// SQLiteCostRepo implements CostRepo over a SQLite connection or transaction.
type SQLiteCostRepo struct {
	db db.DBTX
}

func NewSQLiteCostRepo(conn db.DBTX) *SQLiteCostRepo {
	return &SQLiteCostRepo{db: conn}
}

const costColumns = `id, program_id, invoice_id, category, amount, incurred_date, created_at`

func (r *SQLiteCostRepo) Create(ctx context.Context, c *domain.Cost) error {
	query := `INSERT INTO costs (` + costColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.ProgramID,
		c.InvoiceID,
		c.Category,
		c.Amount,
		c.IncurredDate.Format(dateLayout),
		c.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting cost: %w", err)
	}
	return nil
}

func (r *SQLiteCostRepo) ListByProgram(ctx context.Context, programID string) ([]*domain.Cost, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+costColumns+` FROM costs WHERE program_id = ? ORDER BY created_at`, programID)
	if err != nil {
		return nil, fmt.Errorf("listing costs: %w", err)
	}
	defer rows.Close()
	return collectCosts(rows)
}

func (r *SQLiteCostRepo) ListByInvoice(ctx context.Context, invoiceID string) ([]*domain.Cost, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+costColumns+` FROM costs WHERE invoice_id = ? ORDER BY created_at`, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("listing costs by invoice: %w", err)
	}
	defer rows.Close()
	return collectCosts(rows)
}

func (r *SQLiteCostRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM costs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting cost: %w", err)
	}
	return nil
}

func collectCosts(rows *sql.Rows) ([]*domain.Cost, error) {
	var costs []*domain.Cost
	for rows.Next() {
		var c domain.Cost
		var incurredStr, createdStr string
		if err := rows.Scan(&c.ID, &c.ProgramID, &c.InvoiceID, &c.Category,
			&c.Amount, &incurredStr, &createdStr); err != nil {
			return nil, fmt.Errorf("scanning cost: %w", err)
		}
		var err error
		if c.IncurredDate, err = time.Parse(dateLayout, incurredStr); err != nil {
			return nil, fmt.Errorf("parsing incurred_date: %w", err)
		}
		if c.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		costs = append(costs, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating costs: %w", err)
	}
	return costs, nil
}
