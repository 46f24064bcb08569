// Package transport exposes the console's screen operations as a JSON API.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/planops/ruleboard/internal/collateral"
	"github.com/planops/ruleboard/internal/domain/activity"
	"github.com/planops/ruleboard/internal/domain/rule"
	"github.com/planops/ruleboard/internal/domain/user"
	"github.com/planops/ruleboard/internal/memory"
)

// Stores groups the record stores the read-only screens render from.
type Stores struct {
	Documents *memory.Collection[collateral.Document]
	Queued    *memory.Collection[collateral.QueuedJob]
	Portfolio *memory.Collection[collateral.PortfolioItem]
}

// PrefStore is the preference collaborator.
type PrefStore interface {
	Get(ctx context.Context, key, def string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Server wires HTTP handlers over the domain services.
type Server struct {
	rules    *rule.Service
	activity *activity.Service
	users    *user.Service
	stores   Stores
	prefs    PrefStore
	logger   *slog.Logger
}

// NewServer creates the chi router for the console API.
func NewServer(rules *rule.Service, act *activity.Service, users *user.Service, stores Stores, prefs PrefStore, logger *slog.Logger) *chi.Mux {
	if logger == nil {
		logger = slog.Default()
	}
	srv := &Server{rules: rules, activity: act, users: users, stores: stores, prefs: prefs, logger: logger}

	r := chi.NewRouter()
	r.Get("/health", srv.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/screens", srv.handleListScreens)
		r.Post("/screens/{screen}/query", srv.handleQuery)
		r.Post("/screens/{screen}/export", srv.handleExport)

		r.Post("/rules", srv.handleCreateRule)
		r.Get("/rules/{ruleID}", srv.handleGetRule)
		r.Patch("/rules/{ruleID}/cells/{field}", srv.handleUpdateCell)
		r.Put("/rules/{ruleID}/richtext", srv.handleSaveRichText)
		r.Post("/rules/{ruleID}/copy", srv.handleCopyRule)
		r.Post("/rules/delete", srv.handleDeleteRules)
		r.Post("/rules/publish", srv.handlePublishRules)

		r.Get("/activity", srv.handleListActivity)

		r.Get("/prefs/{key}", srv.handleGetPref)
		r.Put("/prefs/{key}", srv.handleSetPref)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeDomainError maps domain sentinels onto HTTP statuses. Workflow guard
// conditions are conflicts, not server errors.
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, rule.ErrRuleNotFound), errors.Is(err, user.ErrUserNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, rule.ErrInvalidInput),
		errors.Is(err, rule.ErrUnknownField),
		errors.Is(err, user.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, rule.ErrRuleLocked),
		errors.Is(err, rule.ErrPublishedDelete),
		errors.Is(err, rule.ErrNothingToPublish),
		errors.Is(err, rule.ErrDeclined):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		s.logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
