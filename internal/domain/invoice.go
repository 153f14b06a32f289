package domain

import (
	"fmt"
	"time"
)

type Invoice struct {
	ID         string
	ProgramID  string
	Kind       InvoiceKind
	Vendor     string
	Amount     float64
	IssuedDate time.Time
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (i *Invoice) Validate() error {
	if i.ProgramID == "" {
		return fmt.Errorf("invoice must belong to a program")
	}
	if i.Kind != InvoiceVendor && i.Kind != InvoiceMiscellaneous {
		return fmt.Errorf("invalid invoice kind %q", i.Kind)
	}
	if i.Amount < 0 {
		return fmt.Errorf("invoice amount must not be negative")
	}
	return nil
}

// Cost is the ledger row created alongside every invoice. The pair is
// written sequentially; a failed cost write compensates by deleting the
// invoice so no orphan invoice survives.
type Cost struct {
	ID           string
	ProgramID    string
	InvoiceID    string
	Category     string
	Amount       float64
	IncurredDate time.Time
	CreatedAt    time.Time
}
