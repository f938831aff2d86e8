package handler

import (
	"net/http"
	"time"
)

type assistantProbe interface {
	Configured() bool
}

type HealthHandler struct {
	assistant assistantProbe
}

func NewHealthHandler(assistant assistantProbe) *HealthHandler {
	return &HealthHandler{assistant: assistant}
}

func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	RespondJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"version":   "1.0.0",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Readiness always reports ok: the ledger lives in process memory. The
// assistant check is informational only since chat degrades gracefully.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	assistantStatus := "ok"
	if !h.assistant.Configured() {
		assistantStatus = "unconfigured"
	}

	RespondJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks": map[string]string{
			"assistant": assistantStatus,
		},
	})
}
