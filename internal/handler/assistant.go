package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/zenith-digital/dashboard-api/internal/domain"
	"github.com/zenith-digital/dashboard-api/internal/logging"
)

// fallbackReply is what the user sees whenever the hosted model cannot be
// reached. Assistant failures never surface as transport errors.
const fallbackReply = "Sorry, I encountered an error while processing your request. Please try again later."

type assistantSessions interface {
	Ask(ctx context.Context, session *uuid.UUID, transactions []domain.Transaction, query string) (string, uuid.UUID, error)
}

type snapshotReader interface {
	Load(ctx context.Context) ([]domain.Account, []domain.Transaction)
}

type AssistantHandler struct {
	sessions assistantSessions
	reads    snapshotReader
}

func NewAssistantHandler(sessions assistantSessions, reads snapshotReader) *AssistantHandler {
	return &AssistantHandler{sessions: sessions, reads: reads}
}

type askRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

type askResponse struct {
	Reply     string `json:"reply"`
	SessionID string `json:"session_id,omitempty"`
}

func (h *AssistantHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		RespondValidationError(w, []FieldError{{Field: "message", Message: "must not be empty"}})
		return
	}

	var session *uuid.UUID
	if req.SessionID != "" {
		id, err := uuid.Parse(req.SessionID)
		if err != nil {
			RespondValidationError(w, []FieldError{{Field: "session_id", Message: "must be a UUID"}})
			return
		}
		session = &id
	}

	_, transactions := h.reads.Load(r.Context())

	reply, sessionID, err := h.sessions.Ask(r.Context(), session, transactions, req.Message)
	if err != nil {
		if !errors.Is(err, domain.ErrAssistantUnavailable) {
			logging.FromContext(r.Context()).Error("unexpected assistant error", "error", err)
		}
		// Degrade to an apology, keeping whatever session the caller had.
		RespondSuccess(w, http.StatusOK, askResponse{
			Reply:     fallbackReply,
			SessionID: req.SessionID,
		})
		return
	}

	RespondSuccess(w, http.StatusOK, askResponse{
		Reply:     reply,
		SessionID: sessionID.String(),
	})
}
