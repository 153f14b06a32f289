package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmallek/compass/internal/db"
	"github.com/jmallek/compass/internal/domain"
)

// SQLiteInvoiceRepo implements InvoiceRepo over a SQLite connection or
// transaction.
type SQLiteInvoiceRepo struct {
	db db.DBTX
}

func NewSQLiteInvoiceRepo(conn db.DBTX) *SQLiteInvoiceRepo {
	return &SQLiteInvoiceRepo{db: conn}
}

const invoiceColumns = `id, program_id, kind, vendor, amount, issued_date, notes, created_at, updated_at`

func (r *SQLiteInvoiceRepo) Create(ctx context.Context, i *domain.Invoice) error {
	query := `INSERT INTO invoices (` + invoiceColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		i.ID,
		i.ProgramID,
		string(i.Kind),
		i.Vendor,
		i.Amount,
		i.IssuedDate.Format(dateLayout),
		i.Notes,
		i.CreatedAt.Format(time.RFC3339),
		i.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting invoice: %w", err)
	}
	return nil
}

func (r *SQLiteInvoiceRepo) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE id = ?`, id)
	i, err := scanInvoice(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("invoice not found")
	}
	return i, err
}

func (r *SQLiteInvoiceRepo) ListByProgram(ctx context.Context, programID string) ([]*domain.Invoice, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE program_id = ? ORDER BY created_at`, programID)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*domain.Invoice
	for rows.Next() {
		i, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoices: %w", err)
	}
	return invoices, nil
}

func (r *SQLiteInvoiceRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM invoices WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting invoice: %w", err)
	}
	return nil
}

func scanInvoice(row rowScanner) (*domain.Invoice, error) {
	var i domain.Invoice
	var kindStr, issuedStr, createdStr, updatedStr string

	err := row.Scan(
		&i.ID, &i.ProgramID, &kindStr, &i.Vendor, &i.Amount,
		&issuedStr, &i.Notes, &createdStr, &updatedStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning invoice: %w", err)
	}

	i.Kind = domain.InvoiceKind(kindStr)
	if i.IssuedDate, err = time.Parse(dateLayout, issuedStr); err != nil {
		return nil, fmt.Errorf("parsing issued_date: %w", err)
	}
	if i.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if i.UpdatedAt, err = time.Parse(time.RFC3339, updatedStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	return &i, nil
}
