package domain

import "github.com/shopspring/decimal"

type AccountKind string

const (
	AccountKindChecking   AccountKind = "checking"
	AccountKindSavings    AccountKind = "savings"
	AccountKindCreditCard AccountKind = "credit_card"
)

func (k AccountKind) IsValid() bool {
	switch k {
	case AccountKindChecking, AccountKindSavings, AccountKindCreditCard:
		return true
	}
	return false
}

// Account is a point-in-time view of one account. Balance uses exact decimal
// arithmetic; only the checking account's balance moves when a transaction
// commits, the others are read-only in this version.
type Account struct {
	ID            string
	Kind          AccountKind
	Balance       decimal.Decimal
	DisplayNumber string
}
