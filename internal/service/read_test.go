package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenith-digital/dashboard-api/internal/domain"
	"github.com/zenith-digital/dashboard-api/internal/ledger"
)

func seededServices(t *testing.T) (*ReadService, *TransactionService) {
	t.Helper()
	store := ledger.NewStore(ledger.SeedAccounts())
	return NewReadService(store), NewTransactionService(store)
}

func mustSubmit(t *testing.T, svc *TransactionService, amount, day, kind, category string) {
	t.Helper()
	_, _, err := svc.Submit(context.Background(), domain.Draft{
		Description: "fixture",
		Amount:      amount,
		Date:        day,
		Kind:        kind,
		Category:    category,
	})
	require.NoError(t, err)
}

func TestLoadIsIdempotent(t *testing.T) {
	reads, txns := seededServices(t)
	ctx := context.Background()

	mustSubmit(t, txns, "100.00", "2024-05-01", "credit", "income")
	mustSubmit(t, txns, "12.30", "2024-05-02", "debit", "dining")

	accountsA, transactionsA := reads.Load(ctx)
	accountsB, transactionsB := reads.Load(ctx)

	require.Equal(t, len(accountsA), len(accountsB))
	for i := range accountsA {
		assert.Equal(t, accountsA[i].ID, accountsB[i].ID)
		assert.True(t, accountsA[i].Balance.Equal(accountsB[i].Balance))
	}

	require.Equal(t, len(transactionsA), len(transactionsB))
	for i := range transactionsA {
		assert.Equal(t, transactionsA[i], transactionsB[i])
	}
}

func TestSpendingByCategory(t *testing.T) {
	reads, txns := seededServices(t)
	ctx := context.Background()

	// Credits never count as spending.
	mustSubmit(t, txns, "5000.00", "2024-05-01", "credit", "income")
	mustSubmit(t, txns, "30.00", "2024-05-02", "debit", "groceries")
	mustSubmit(t, txns, "45.50", "2024-05-03", "debit", "groceries")
	mustSubmit(t, txns, "20.00", "2024-05-04", "debit", "transport")

	spending := reads.SpendingByCategory(ctx)
	require.Len(t, spending, 2)

	assert.Equal(t, domain.CategoryGroceries, spending[0].Category)
	assert.True(t, spending[0].Total.Equal(decimal.RequireFromString("75.50")),
		"got %s", spending[0].Total)
	assert.Equal(t, domain.CategoryTransport, spending[1].Category)
	assert.True(t, spending[1].Total.Equal(decimal.RequireFromString("20.00")))
}

func TestSpendingByCategoryEmpty(t *testing.T) {
	reads, _ := seededServices(t)
	assert.Empty(t, reads.SpendingByCategory(context.Background()))
}

func TestSpendingByCategoryTieBreaksAlphabetically(t *testing.T) {
	reads, txns := seededServices(t)

	mustSubmit(t, txns, "10.00", "2024-05-02", "debit", "transport")
	mustSubmit(t, txns, "10.00", "2024-05-03", "debit", "dining")

	spending := reads.SpendingByCategory(context.Background())
	require.Len(t, spending, 2)
	assert.Equal(t, domain.CategoryDining, spending[0].Category)
	assert.Equal(t, domain.CategoryTransport, spending[1].Category)
}
