package match

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/MrJamesThe3rd/nomadmatch/internal/http/auth"
	"github.com/MrJamesThe3rd/nomadmatch/internal/match"
	"github.com/MrJamesThe3rd/nomadmatch/internal/preference"
)

type Handler struct {
	svc       *match.Service
	validator *validator.Validate
}

func NewHandler(svc *match.Service) *Handler {
	return &Handler{
		svc:       svc,
		validator: validator.New(),
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.match)
}

type matchRequest struct {
	Budget   string `json:"budget" validate:"max=64"`
	Climate  string `json:"climate" validate:"max=64"`
	Internet string `json:"internet" validate:"max=64"`
	Visa     string `json:"visa" validate:"max=64"`
	Vibe     string `json:"vibe" validate:"max=64"`
	Tier     string `json:"tier" validate:"omitempty,oneof=free premium"`
}

func (h *Handler) match(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		http.Error(w, validationMessage(err), http.StatusBadRequest)
		return
	}

	sess := match.Session{Tier: preference.ParseTier(req.Tier)}
	if userID, ok := auth.UserID(r.Context()); ok {
		sess.UserID = userID
	}

	res := h.svc.Match(r.Context(), preference.Input{
		Budget:   req.Budget,
		Climate:  req.Climate,
		Internet: req.Internet,
		Visa:     req.Visa,
		Vibe:     req.Vibe,
	}, sess)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(res); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, strings.ToLower(fe.Field())+" failed "+fe.Tag())
	}

	return strings.Join(msgs, "; ")
}
