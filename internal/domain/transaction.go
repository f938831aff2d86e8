package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date wire format. Transactions carry a date
// only, no time-of-day.
const DateLayout = "2006-01-02"

type TransactionKind string

const (
	TransactionKindDebit  TransactionKind = "debit"
	TransactionKindCredit TransactionKind = "credit"
)

func (k TransactionKind) IsValid() bool {
	return k == TransactionKindDebit || k == TransactionKindCredit
}

type Category string

const (
	CategoryGroceries     Category = "groceries"
	CategoryUtilities     Category = "utilities"
	CategoryTransport     Category = "transport"
	CategoryDining        Category = "dining"
	CategoryIncome        Category = "income"
	CategoryShopping      Category = "shopping"
	CategoryHealth        Category = "health"
	CategoryEntertainment Category = "entertainment"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryGroceries, CategoryUtilities, CategoryTransport, CategoryDining,
		CategoryIncome, CategoryShopping, CategoryHealth, CategoryEntertainment:
		return true
	}
	return false
}

// ValidFor enforces the kind/category pairing: income is the only credit
// category, every other category is debit-only.
func (c Category) ValidFor(kind TransactionKind) bool {
	if c == CategoryIncome {
		return kind == TransactionKindCredit
	}
	return kind == TransactionKindDebit
}

// Transaction is a committed ledger entry. It is immutable once committed;
// Amount is always a positive magnitude, the sign lives in Kind.
type Transaction struct {
	ID          string
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Kind        TransactionKind
	Category    Category
}

// Draft is an unvalidated transaction request as supplied by a caller.
// Amount and Date stay raw strings so every business rule, including
// parseability, is checked in one place.
type Draft struct {
	Description string
	Amount      string
	Date        string
	Kind        string
	Category    string
}
