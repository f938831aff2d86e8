package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/zenith-digital/dashboard-api/internal/domain"
)

// SeedAccounts is the fixed account set for a fresh store: a checking and a
// savings account, both at zero. State is process-lifetime only, so every
// restart begins here.
func SeedAccounts() []domain.Account {
	return []domain.Account{
		{
			ID:            "acc1",
			Kind:          domain.AccountKindChecking,
			Balance:       decimal.Zero,
			DisplayNumber: "**** **** **** 1234",
		},
		{
			ID:            "acc2",
			Kind:          domain.AccountKindSavings,
			Balance:       decimal.Zero,
			DisplayNumber: "**** **** **** 5678",
		},
	}
}
