package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jmallek/compass/internal/domain"
	"github.com/jmallek/compass/internal/repository"
)

type invoiceService struct {
	invoices repository.InvoiceRepo
	costs    repository.CostRepo
	observer UseCaseObserver
}

func NewInvoiceService(invoices repository.InvoiceRepo, costs repository.CostRepo, observers ...UseCaseObserver) InvoiceService {
	return &invoiceService{
		invoices: invoices,
		costs:    costs,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Record writes the invoice, then its cost row. The two writes are
// deliberately sequential rather than transactional: when the cost
// write fails the invoice is deleted again so no invoice exists
// without its ledger row. A failed invoice write aborts with nothing
// to undo.
func (s *invoiceService) Record(ctx context.Context, inv *domain.Invoice) error {
	start := time.Now()

	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	inv.CreatedAt = now
	inv.UpdatedAt = now
	if inv.IssuedDate.IsZero() {
		inv.IssuedDate = now
	}
	if err := inv.Validate(); err != nil {
		return err
	}

	if err := s.invoices.Create(ctx, inv); err != nil {
		s.observe(ctx, start, inv, err, false)
		return fmt.Errorf("recording invoice: %w", err)
	}

	cost := &domain.Cost{
		ID:           uuid.New().String(),
		ProgramID:    inv.ProgramID,
		InvoiceID:    inv.ID,
		Category:     string(inv.Kind),
		Amount:       inv.Amount,
		IncurredDate: inv.IssuedDate,
		CreatedAt:    now,
	}
	if err := s.costs.Create(ctx, cost); err != nil {
		compensateErr := s.invoices.Delete(ctx, inv.ID)
		s.observe(ctx, start, inv, err, compensateErr == nil)
		if compensateErr != nil {
			return fmt.Errorf("recording cost failed (%v) and compensating invoice delete also failed: %w", err, compensateErr)
		}
		return fmt.Errorf("recording cost (invoice rolled back): %w", err)
	}

	s.observe(ctx, start, inv, nil, false)
	return nil
}

func (s *invoiceService) observe(ctx context.Context, start time.Time, inv *domain.Invoice, err error, compensated bool) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "invoice_record",
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		StartedAt: start,
		Fields: map[string]any{
			"program_id":  inv.ProgramID,
			"kind":        string(inv.Kind),
			"compensated": compensated,
		},
	})
}

func (s *invoiceService) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	return s.invoices.GetByID(ctx, id)
}

func (s *invoiceService) ListByProgram(ctx context.Context, programID string) ([]*domain.Invoice, error) {
	return s.invoices.ListByProgram(ctx, programID)
}

// Delete removes the invoice row; its cost rows cascade with it.
func (s *invoiceService) Delete(ctx context.Context, id string) error {
	return s.invoices.Delete(ctx, id)
}

func (s *invoiceService) Costs(ctx context.Context, programID string) ([]*domain.Cost, error) {
	return s.costs.ListByProgram(ctx, programID)
}
