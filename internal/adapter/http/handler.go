package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"creative-sync/internal/core/domain"
	"creative-sync/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the sync use case, a validator for request bodies and a logger
// for structured logging. Routes are registered on a chi.Router.
type Handler struct {
	svc      port.SyncUseCase
	validate *validator.Validate
	logger   *slog.Logger
	router   chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.SyncUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, validate: validator.New(validator.WithRequiredStructEnabled()), logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/creatives/{creativeID}", func(r chi.Router) {
			r.Post("/sync", h.handleSync)
			r.Post("/sync/auto", h.handleAutoSync)
			r.Get("/sync-status", h.handleSyncStatus)
			r.Post("/partners/{partnerID}/approval", h.handleApproval)
		})
		r.Post("/events/creative-assigned", h.handleCreativeAssigned)
		r.Post("/events/tactic-created", h.handleTacticCreated)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps engine errors onto status codes. Unexpected errors are
// logged and hidden behind a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		h.logger.Error(op+" error",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err),
		)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
