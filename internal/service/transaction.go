package service

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zenith-digital/dashboard-api/internal/domain"
	"github.com/zenith-digital/dashboard-api/internal/logging"
)

type committer interface {
	Commit(txn domain.Transaction) (domain.Transaction, []domain.Account)
}

// TransactionService is the only place business rules are enforced. A draft
// that fails validation never reaches the store.
type TransactionService struct {
	store committer
}

func NewTransactionService(store committer) *TransactionService {
	return &TransactionService{store: store}
}

// Submit validates the draft and commits it, returning the committed
// transaction and the updated account snapshot. A *domain.ValidationError
// names the first offending field; in that case the store is untouched.
func (s *TransactionService) Submit(ctx context.Context, draft domain.Draft) (domain.Transaction, []domain.Account, error) {
	txn, err := validate(draft)
	if err != nil {
		return domain.Transaction{}, nil, err
	}

	committed, accounts := s.store.Commit(txn)

	logging.FromContext(ctx).Info("transaction committed",
		"transaction_id", committed.ID,
		"kind", committed.Kind,
		"category", committed.Category,
		"amount", committed.Amount,
	)

	return committed, accounts, nil
}

func validate(draft domain.Draft) (domain.Transaction, error) {
	description := strings.TrimSpace(draft.Description)
	if description == "" {
		return domain.Transaction{}, &domain.ValidationError{Field: "description", Reason: "must not be empty"}
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(draft.Amount))
	if err != nil {
		return domain.Transaction{}, &domain.ValidationError{Field: "amount", Reason: "must be a decimal number"}
	}
	if !amount.IsPositive() {
		return domain.Transaction{}, &domain.ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}

	// Any valid calendar date is accepted, past or future.
	date, err := time.Parse(domain.DateLayout, draft.Date)
	if err != nil {
		return domain.Transaction{}, &domain.ValidationError{Field: "date", Reason: "must be a YYYY-MM-DD calendar date"}
	}

	kind := domain.TransactionKind(draft.Kind)
	if !kind.IsValid() {
		return domain.Transaction{}, &domain.ValidationError{Field: "kind", Reason: "must be debit or credit"}
	}

	category := domain.Category(draft.Category)
	if !category.IsValid() {
		return domain.Transaction{}, &domain.ValidationError{Field: "category", Reason: "unknown category"}
	}
	if !category.ValidFor(kind) {
		return domain.Transaction{}, &domain.ValidationError{Field: "category", Reason: "not allowed for " + draft.Kind + " transactions"}
	}

	return domain.Transaction{
		Date:        date,
		Description: description,
		Amount:      amount,
		Kind:        kind,
		Category:    category,
	}, nil
}
