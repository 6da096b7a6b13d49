// Package handler exposes the worksheet generator over HTTP.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/aontas/aontas/internal/enforce"
	"github.com/aontas/aontas/internal/i18n"
	"github.com/aontas/aontas/internal/model"
	"github.com/aontas/aontas/internal/store"
)

// Generator produces raw worksheet payloads and rewrites texts toward a
// word window.
type Generator interface {
	Generate(ctx context.Context, req model.GenerateRequest, source string, wordTarget int) (map[string]any, error)
	enforce.Rewriter
}

// Fetcher resolves a source URL into readable text.
type Fetcher interface {
	FetchExtract(ctx context.Context, url string) (string, error)
}

// Config holds the handler's runtime settings.
type Config struct {
	// APIKeyHash is the bcrypt hash the bearer token must match. Empty
	// disables authentication.
	APIKeyHash string
}

// Handler holds shared dependencies for HTTP handlers.
type Handler struct {
	store   *store.Store
	gen     Generator
	fetcher Fetcher
	bundle  *i18n.Bundle
	config  Config
	logger  *slog.Logger
}

// New creates a new Handler.
func New(s *store.Store, gen Generator, fetcher Fetcher, bundle *i18n.Bundle, cfg Config, logger *slog.Logger) *Handler {
	return &Handler{store: s, gen: gen, fetcher: fetcher, bundle: bundle, config: cfg, logger: logger}
}

// Routes registers all HTTP routes.
func (h *Handler) Routes(r chi.Router) {
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(h.requireAPIKey)
		r.Post("/api/generate", h.handleGenerate)
		r.Get("/api/worksheets", h.handleListWorksheets)
		r.Get("/api/worksheets/{worksheetID}", h.handleGetWorksheet)
		r.Delete("/api/worksheets/{worksheetID}", h.handleDeleteWorksheet)
		r.Get("/api/worksheets/{worksheetID}/xlsx", h.handleWorksheetXLSX)
		r.Get("/api/worksheets/{worksheetID}/html", h.handleWorksheetHTML)
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
