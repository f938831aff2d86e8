package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/zenith-digital/dashboard-api/internal/domain"
	"github.com/zenith-digital/dashboard-api/internal/logging"
	"github.com/zenith-digital/dashboard-api/internal/service"
)

type readService interface {
	Load(ctx context.Context) ([]domain.Account, []domain.Transaction)
	SpendingByCategory(ctx context.Context) []service.CategorySpend
}

type transactionService interface {
	Submit(ctx context.Context, draft domain.Draft) (domain.Transaction, []domain.Account, error)
}

type LedgerHandler struct {
	reads        readService
	transactions transactionService
}

func NewLedgerHandler(reads readService, transactions transactionService) *LedgerHandler {
	return &LedgerHandler{reads: reads, transactions: transactions}
}

type accountDTO struct {
	ID            string          `json:"id"`
	Kind          string          `json:"kind"`
	Balance       decimal.Decimal `json:"balance"`
	DisplayNumber string          `json:"display_number"`
}

func toAccountDTO(a domain.Account) accountDTO {
	return accountDTO{
		ID:            a.ID,
		Kind:          string(a.Kind),
		Balance:       a.Balance,
		DisplayNumber: a.DisplayNumber,
	}
}

type transactionDTO struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        string          `json:"kind"`
	Category    string          `json:"category"`
}

func toTransactionDTO(t domain.Transaction) transactionDTO {
	return transactionDTO{
		ID:          t.ID,
		Date:        t.Date.Format(domain.DateLayout),
		Description: t.Description,
		Amount:      t.Amount,
		Kind:        string(t.Kind),
		Category:    string(t.Category),
	}
}

type spendDTO struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

func toAccountDTOs(accounts []domain.Account) []accountDTO {
	dtos := make([]accountDTO, len(accounts))
	for i, a := range accounts {
		dtos[i] = toAccountDTO(a)
	}
	return dtos
}

func toTransactionDTOs(transactions []domain.Transaction) []transactionDTO {
	dtos := make([]transactionDTO, len(transactions))
	for i, t := range transactions {
		dtos[i] = toTransactionDTO(t)
	}
	return dtos
}

func (h *LedgerHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, _ := h.reads.Load(r.Context())
	RespondSuccess(w, http.StatusOK, toAccountDTOs(accounts))
}

func (h *LedgerHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	_, transactions := h.reads.Load(r.Context())
	RespondSuccess(w, http.StatusOK, toTransactionDTOs(transactions))
}

type dashboardDTO struct {
	Accounts     []accountDTO     `json:"accounts"`
	Transactions []transactionDTO `json:"transactions"`
	Spending     []spendDTO       `json:"spending"`
}

// Dashboard bundles everything the landing view renders in one response.
func (h *LedgerHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	accounts, transactions := h.reads.Load(r.Context())

	spending := h.reads.SpendingByCategory(r.Context())
	spendDTOs := make([]spendDTO, len(spending))
	for i, s := range spending {
		spendDTOs[i] = spendDTO{Category: string(s.Category), Total: s.Total}
	}

	RespondSuccess(w, http.StatusOK, dashboardDTO{
		Accounts:     toAccountDTOs(accounts),
		Transactions: toTransactionDTOs(transactions),
		Spending:     spendDTOs,
	})
}

type submitTransactionRequest struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
	Kind        string `json:"kind"`
	Category    string `json:"category"`
}

type submitTransactionResponse struct {
	Transaction transactionDTO `json:"transaction"`
	Accounts    []accountDTO   `json:"accounts"`
}

func (h *LedgerHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	txn, accounts, err := h.transactions.Submit(r.Context(), domain.Draft{
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
		Kind:        req.Kind,
		Category:    req.Category,
	})
	if err != nil {
		logging.FromContext(r.Context()).Info("transaction rejected", "error", err)
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusCreated, submitTransactionResponse{
		Transaction: toTransactionDTO(txn),
		Accounts:    toAccountDTOs(accounts),
	})
}
