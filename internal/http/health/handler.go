package health

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/nomadmatch/internal/matcher"
)

// Prober reports the remote matcher's liveness.
type Prober interface {
	Health(ctx context.Context) matcher.Health
}

type Handler struct {
	prober Prober
}

func NewHandler(prober Prober) *Handler {
	return &Handler{prober: prober}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.health)
}

type matcherStatus struct {
	Reachable bool      `json:"reachable"`
	Status    string    `json:"status"`
	CheckedAt time.Time `json:"checked_at"`
}

type healthResponse struct {
	Status  string        `json:"status"`
	Matcher matcherStatus `json:"matcher"`
}

// health always answers 200: an unreachable matcher only means requests use the local ranking.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	m := h.prober.Health(r.Context())

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(healthResponse{
		Status: "ok",
		Matcher: matcherStatus{
			Reachable: m.Reachable,
			Status:    m.Status,
			CheckedAt: m.CheckedAt,
		},
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
