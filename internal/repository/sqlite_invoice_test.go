package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmallek/compass/internal/domain"
	"github.com/jmallek/compass/internal/testutil"
)

func TestInvoiceRepo_CreateGetDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	programs := NewSQLiteProgramRepo(db)
	invoices := NewSQLiteInvoiceRepo(db)
	ctx := context.Background()

	prog := testutil.NewTestProgram("Billed")
	require.NoError(t, programs.Create(ctx, prog))

	inv := testutil.NewTestInvoice(prog.ID, domain.InvoiceVendor, 1250.50)
	require.NoError(t, invoices.Create(ctx, inv))

	fetched, err := invoices.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceVendor, fetched.Kind)
	assert.Equal(t, "Acme Supply", fetched.Vendor)
	assert.InDelta(t, 1250.50, fetched.Amount, 1e-9)

	require.NoError(t, invoices.Delete(ctx, inv.ID))
	_, err = invoices.GetByID(ctx, inv.ID)
	assert.Error(t, err)
}

func TestCostRepo_LinkedToInvoice(t *testing.T) {
	db := testutil.NewTestDB(t)
	programs := NewSQLiteProgramRepo(db)
	invoices := NewSQLiteInvoiceRepo(db)
	costs := NewSQLiteCostRepo(db)
	ctx := context.Background()

	prog := testutil.NewTestProgram("Billed")
	require.NoError(t, programs.Create(ctx, prog))
	inv := testutil.NewTestInvoice(prog.ID, domain.InvoiceMiscellaneous, 300)
	require.NoError(t, invoices.Create(ctx, inv))

	cost := &domain.Cost{
		ID:           uuid.New().String(),
		ProgramID:    prog.ID,
		InvoiceID:    inv.ID,
		Category:     "miscellaneous",
		Amount:       300,
		IncurredDate: time.Now().UTC(),
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, costs.Create(ctx, cost))

	byInvoice, err := costs.ListByInvoice(ctx, inv.ID)
	require.NoError(t, err)
	require.Len(t, byInvoice, 1)
	assert.Equal(t, inv.ID, byInvoice[0].InvoiceID)

	byProgram, err := costs.ListByProgram(ctx, prog.ID)
	require.NoError(t, err)
	assert.Len(t, byProgram, 1)
}

func TestUserRepo_GetByAPIToken(t *testing.T) {
	db := testutil.NewTestDB(t)
	users := NewSQLiteUserRepo(db)
	ctx := context.Background()

	admin := testutil.NewTestUser("admin@example.com", domain.RoleAdmin)
	require.NoError(t, users.Create(ctx, admin))

	fetched, err := users.GetByAPIToken(ctx, admin.APIToken)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, fetched.ID)
	assert.True(t, fetched.IsAdmin())

	_, err = users.GetByAPIToken(ctx, "")
	assert.Error(t, err)

	_, err = users.GetByAPIToken(ctx, "bogus-token")
	assert.Error(t, err)
}

func TestUserRepo_GetByEmail_CaseInsensitive(t *testing.T) {
	db := testutil.NewTestDB(t)
	users := NewSQLiteUserRepo(db)
	ctx := context.Background()

	u := testutil.NewTestUser("Member@Example.com", domain.RoleMember)
	require.NoError(t, users.Create(ctx, u))

	fetched, err := users.GetByEmail(ctx, "member@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, fetched.ID)
}
