package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/zenith-digital/dashboard-api/internal/domain"
	"github.com/zenith-digital/dashboard-api/internal/logging"
)

const systemInstruction = `You are Zenith, a helpful and friendly AI financial assistant for Zenith Digital Bank.
Your role is to analyze the user's transaction data and provide clear, concise, and insightful answers to their questions.
You must only answer questions related to the provided financial data.
Do not provide investment advice or suggestions to use other financial products.
Be professional and secure in your tone.
Please respond in the same language as the user's query.
The user's transaction history is provided below in JSON format.
---
TRANSACTION HISTORY:
`

type generator interface {
	Configured() bool
	Generate(ctx context.Context, contents []Content) (string, error)
}

// Sessions threads an opaque conversation handle across assistant calls.
// The handle maps to server-side chat history; callers never see inside it.
type Sessions struct {
	client generator

	mu       sync.Mutex
	sessions map[uuid.UUID][]Content
}

func NewSessions(client generator) *Sessions {
	return &Sessions{
		client:   client,
		sessions: make(map[uuid.UUID][]Content),
	}
}

type historyTransaction struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Kind        string `json:"kind"`
	Category    string `json:"category"`
}

// Ask answers a user query within the given session, creating a new session
// seeded with the transaction snapshot when the handle is nil or unknown.
// Transactions are only used as seed material; an established session keeps
// the history it was born with.
//
// Any client failure comes back wrapping domain.ErrAssistantUnavailable and
// leaves the session history exactly as it was, so the caller can retry the
// same question.
func (s *Sessions) Ask(ctx context.Context, session *uuid.UUID, transactions []domain.Transaction, query string) (string, uuid.UUID, error) {
	if !s.client.Configured() {
		return "", uuid.Nil, fmt.Errorf("Ask: no API key configured: %w", domain.ErrAssistantUnavailable)
	}

	id, history := s.lookup(session)
	if history == nil {
		seed, err := seedContent(transactions)
		if err != nil {
			return "", uuid.Nil, fmt.Errorf("Ask: %w", err)
		}
		id = uuid.New()
		history = []Content{seed}
	}

	attempt := append(append([]Content(nil), history...), Content{
		Role:  roleUser,
		Parts: []Part{{Text: query}},
	})

	reply, err := s.client.Generate(ctx, attempt)
	if err != nil {
		logging.FromContext(ctx).Warn("assistant call failed", "error", err, "session_id", id)
		return "", id, fmt.Errorf("Ask: %w: %w", domain.ErrAssistantUnavailable, err)
	}

	s.mu.Lock()
	s.sessions[id] = append(attempt, Content{
		Role:  roleModel,
		Parts: []Part{{Text: reply}},
	})
	s.mu.Unlock()

	return reply, id, nil
}

func (s *Sessions) lookup(session *uuid.UUID) (uuid.UUID, []Content) {
	if session == nil {
		return uuid.Nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	history, ok := s.sessions[*session]
	if !ok {
		return uuid.Nil, nil
	}
	return *session, history
}

func seedContent(transactions []domain.Transaction) (Content, error) {
	wire := make([]historyTransaction, len(transactions))
	for i, txn := range transactions {
		wire[i] = historyTransaction{
			ID:          txn.ID,
			Date:        txn.Date.Format(domain.DateLayout),
			Description: txn.Description,
			Amount:      txn.Amount.String(),
			Kind:        string(txn.Kind),
			Category:    string(txn.Category),
		}
	}

	blob, err := json.MarshalIndent(wire, "", "  ")
	if err != nil {
		return Content{}, fmt.Errorf("seedContent: %w", err)
	}

	return Content{
		Role:  roleUser,
		Parts: []Part{{Text: systemInstruction + string(blob)}},
	}, nil
}
