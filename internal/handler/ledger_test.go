package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenith-digital/dashboard-api/internal/ledger"
	"github.com/zenith-digital/dashboard-api/internal/service"
)

func newLedgerHandler() *LedgerHandler {
	store := ledger.NewStore(ledger.SeedAccounts())
	return NewLedgerHandler(service.NewReadService(store), service.NewTransactionService(store))
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) (APIResponse, map[string]any) {
	t.Helper()
	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	data, _ := resp.Data.(map[string]any)
	return resp, data
}

func postTransaction(t *testing.T, h *LedgerHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)
	return rec
}

func TestSubmitHandler(t *testing.T) {
	h := newLedgerHandler()

	rec := postTransaction(t, h,
		`{"description":"Paycheck","amount":"1500.00","date":"2024-03-01","kind":"credit","category":"income"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	resp, data := decodeResponse(t, rec)
	require.True(t, resp.Success)

	txn := data["transaction"].(map[string]any)
	assert.Equal(t, "Paycheck", txn["description"])
	assert.Equal(t, "2024-03-01", txn["date"])
	assert.True(t, strings.HasPrefix(txn["id"].(string), "txn-"))

	accounts := data["accounts"].([]any)
	require.Len(t, accounts, 2)
	checking := accounts[0].(map[string]any)
	assert.Equal(t, "checking", checking["kind"])
	assert.Equal(t, "1500", checking["balance"])
}

func TestSubmitHandlerValidationError(t *testing.T) {
	h := newLedgerHandler()

	rec := postTransaction(t, h,
		`{"description":"Oops","amount":"10.00","date":"2024-03-01","kind":"credit","category":"groceries"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp, _ := decodeResponse(t, rec)
	require.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)

	fields := resp.Error.Details.([]any)
	require.Len(t, fields, 1)
	assert.Equal(t, "category", fields[0].(map[string]any)["field"])
}

func TestSubmitHandlerMalformedBody(t *testing.T) {
	h := newLedgerHandler()

	rec := postTransaction(t, h, `{"description":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp, _ := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_REQUEST", resp.Error.Code)
}

func TestDashboardHandler(t *testing.T) {
	h := newLedgerHandler()

	rec := postTransaction(t, h,
		`{"description":"Paycheck","amount":"1500.00","date":"2024-03-01","kind":"credit","category":"income"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = postTransaction(t, h,
		`{"description":"Market","amount":"42.50","date":"2024-03-02","kind":"debit","category":"groceries"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	rec = httptest.NewRecorder()
	h.Dashboard(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	_, data := decodeResponse(t, rec)

	accounts := data["accounts"].([]any)
	require.Len(t, accounts, 2)
	assert.Equal(t, "1457.5", accounts[0].(map[string]any)["balance"])

	transactions := data["transactions"].([]any)
	require.Len(t, transactions, 2)
	assert.Equal(t, "Market", transactions[0].(map[string]any)["description"])
	assert.Equal(t, "Paycheck", transactions[1].(map[string]any)["description"])

	spending := data["spending"].([]any)
	require.Len(t, spending, 1)
	bar := spending[0].(map[string]any)
	assert.Equal(t, "groceries", bar["category"])
	assert.Equal(t, "42.5", bar["total"])
}

func TestListHandlers(t *testing.T) {
	h := newLedgerHandler()

	rec := httptest.NewRecorder()
	h.ListAccounts(rec, httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	accounts := resp.Data.([]any)
	require.Len(t, accounts, 2)
	assert.Equal(t, "**** **** **** 1234", accounts[0].(map[string]any)["display_number"])

	rec = httptest.NewRecorder()
	h.ListTransactions(rec, httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data)
}
