package citypref

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/nomadmatch/internal/citypref"
	"github.com/MrJamesThe3rd/nomadmatch/internal/http/auth"
)

type Handler struct {
	svc *citypref.Service
}

func NewHandler(svc *citypref.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes expects auth.Required to run before it.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/city", h.set)
	r.Get("/cities", h.list)
	r.Delete("/city/{city_name}", h.delete)
}

type setRequest struct {
	CityName string `json:"city_name"`
	Action   string `json:"action"`
}

type preferenceResponse struct {
	CityName  string    `json:"city_name"`
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"created_at"`
}

type listResponse struct {
	UserID      uuid.UUID            `json:"user_id"`
	Preferences []preferenceResponse `json:"preferences"`
	Likes       []string             `json:"likes"`
	Dislikes    []string             `json:"dislikes"`
}

func (h *Handler) set(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req setRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Set(r.Context(), userID, req.CityName, citypref.Action(req.Action))
	if err != nil {
		if errors.Is(err, citypref.ErrInvalidAction) || errors.Is(err, citypref.ErrEmptyCity) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	sum, err := h.svc.List(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := listResponse{
		UserID:      sum.UserID,
		Preferences: make([]preferenceResponse, len(sum.Preferences)),
		Likes:       sum.Likes,
		Dislikes:    sum.Dislikes,
	}

	for i, p := range sum.Preferences {
		resp.Preferences[i] = toResponse(p)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	cityName := chi.URLParam(r, "city_name")

	if err := h.svc.Delete(r.Context(), userID, cityName); err != nil {
		if errors.Is(err, citypref.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusOK)
}

func toResponse(p *citypref.Preference) preferenceResponse {
	return preferenceResponse{
		CityName:  p.CityName,
		Action:    string(p.Action),
		CreatedAt: p.CreatedAt,
	}
}
