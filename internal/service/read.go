package service

import (
	"context"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/zenith-digital/dashboard-api/internal/domain"
)

type snapshotter interface {
	SnapshotAccounts() []domain.Account
	SnapshotTransactions() []domain.Transaction
}

// ReadService exposes the read-only view the dashboard renders from.
type ReadService struct {
	store snapshotter
}

func NewReadService(store snapshotter) *ReadService {
	return &ReadService{store: store}
}

// Load fetches both snapshots. They are taken one after the other, not as a
// mutually atomic pair; each is internally consistent on its own.
func (s *ReadService) Load(_ context.Context) ([]domain.Account, []domain.Transaction) {
	return s.store.SnapshotAccounts(), s.store.SnapshotTransactions()
}

// CategorySpend is one bar of the spending chart.
type CategorySpend struct {
	Category domain.Category
	Total    decimal.Decimal
}

// SpendingByCategory totals debit transactions per category, largest first.
// Credits never count as spending.
func (s *ReadService) SpendingByCategory(_ context.Context) []CategorySpend {
	totals := make(map[domain.Category]decimal.Decimal)
	for _, txn := range s.store.SnapshotTransactions() {
		if txn.Kind != domain.TransactionKindDebit {
			continue
		}
		totals[txn.Category] = totals[txn.Category].Add(txn.Amount)
	}

	out := make([]CategorySpend, 0, len(totals))
	for category, total := range totals {
		out = append(out, CategorySpend{Category: category, Total: total})
	}
	slices.SortFunc(out, func(a, b CategorySpend) int {
		if c := b.Total.Cmp(a.Total); c != 0 {
			return c
		}
		return strings.Compare(string(a.Category), string(b.Category))
	})
	return out
}
