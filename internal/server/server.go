// Package server exposes the admin and suggestion API over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jmallek/compass/internal/domain"
	"github.com/jmallek/compass/internal/scenario"
	"github.com/jmallek/compass/internal/service"
)

// maxRequestBodySize limits POST body sizes to prevent DoS.
const maxRequestBodySize = 1 << 20 // 1 MB

// Server wires the service layer to HTTP handlers. Admin endpoints
// resolve the caller from a bearer token and require the admin role.
type Server struct {
	admin    service.AdminService
	engine   *scenario.Engine
	logger   *slog.Logger
	http     *http.Server
}

type Config struct {
	Addr   string
	Prefix string // e.g. "api", defaults to "api"
}

func New(cfg Config, admin service.AdminService, engine *scenario.Engine, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "api"
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8484"
	}

	s := &Server{admin: admin, engine: engine, logger: logger}

	mux := http.NewServeMux()
	s.registerHandlers(cfg.Prefix, mux)

	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.logRequests(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// registerHandlers registers all handlers under the given prefix:
//
//	POST <prefix>/admin/users
//	POST <prefix>/ai/suggest
//	GET  <prefix>/healthz
func (s *Server) registerHandlers(prefix string, mux *http.ServeMux) {
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix = prefix + "/"
	}

	mux.HandleFunc(prefix+"admin/users", s.handleAdminUsers)
	mux.HandleFunc(prefix+"ai/suggest", s.handleSuggest)
	mux.HandleFunc(prefix+"healthz", s.handleHealthz)
}

// ListenAndServe blocks until the context is cancelled, then shuts the
// server down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.logger.Info("http server shutting down")
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return <-errCh
}

// Handler exposes the configured handler for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// ----------------------------------------------------------------------------
// POST <prefix>/admin/users
// ----------------------------------------------------------------------------

// AdminUsersRequest is the request body for POST <prefix>/admin/users.
type AdminUsersRequest struct {
	Action string `json:"action"` // approve | reject | delete
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

func (s *Server) handleAdminUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	actor, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if !actor.IsAdmin() {
		writeJSON(w, http.StatusForbidden, errorBody("admin role required"))
		return
	}

	var req AdminUsersRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	err := s.admin.Act(r.Context(), actor, service.AdminAction(req.Action), req.UserID)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]string{
			"message": fmt.Sprintf("user %s: %s", req.UserID, req.Action),
		})
	case errors.Is(err, service.ErrNotAdmin):
		writeJSON(w, http.StatusForbidden, errorBody(err.Error()))
	default:
		s.logger.Error("admin action failed", "action", req.Action, "user_id", req.UserID, "error", err)
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
	}
}

// ----------------------------------------------------------------------------
// POST <prefix>/ai/suggest
// ----------------------------------------------------------------------------

// SuggestRequest is the request body for POST <prefix>/ai/suggest.
type SuggestRequest struct {
	Query   string `json:"query"`
	Context struct {
		BudgetPct      float64  `json:"budget"`
		TimelineMonths float64  `json:"timeline"`
		Resources      []string `json:"resources"`
		Risks          []string `json:"risks"`
	} `json:"context"`
}

// SuggestResponse mirrors the engine output in JSON form.
type SuggestResponse struct {
	Suggestions []SuggestionJSON `json:"suggestions"`
}

type SuggestionJSON struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Strategy    string   `json:"strategy"`
	Variant     string   `json:"variant"`
	Impact      struct {
		TimelineMonths float64 `json:"timelineMonths"`
		BudgetPct      float64 `json:"budgetPct"`
		ResourcesPct   float64 `json:"resourcesPct"`
	} `json:"impact"`
	Confidence float64  `json:"confidence"`
	Risks      []string `json:"risks"`
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if _, ok := s.authenticate(w, r); !ok {
		return
	}

	var req SuggestRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if req.Query == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("query is required"))
		return
	}

	pctx := scenario.Context{
		BudgetUtilizationPct: req.Context.BudgetPct,
		TimelineMonths:       req.Context.TimelineMonths,
		Resources:            req.Context.Resources,
	}
	for _, desc := range req.Context.Risks {
		pctx.Risks = append(pctx.Risks, &domain.Risk{Description: desc, Status: domain.RiskOpen})
	}

	suggestions := s.engine.GenerateSuggestions(r.Context(), req.Query, pctx)

	resp := SuggestResponse{Suggestions: make([]SuggestionJSON, 0, len(suggestions))}
	for _, sg := range suggestions {
		var j SuggestionJSON
		j.ID = sg.ID
		j.Title = sg.Title
		j.Description = sg.Description
		j.Strategy = string(sg.Strategy)
		j.Variant = string(sg.Variant)
		j.Impact.TimelineMonths = sg.Impact.TimelineMonths
		j.Impact.BudgetPct = sg.Impact.BudgetPct
		j.Impact.ResourcesPct = sg.Impact.ResourcesPct
		j.Confidence = sg.Confidence
		j.Risks = sg.Risks
		resp.Suggestions = append(resp.Suggestions, j)
	}
	writeJSON(w, http.StatusOK, resp)
}

// ----------------------------------------------------------------------------
// GET <prefix>/healthz
// ----------------------------------------------------------------------------

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ----------------------------------------------------------------------------
// helpers
// ----------------------------------------------------------------------------

// authenticate resolves the caller from the bearer token. On failure a
// 401 response has already been written and ok is false.
func (s *Server) authenticate(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if token == "" || token == r.Header.Get("Authorization") {
		writeJSON(w, http.StatusUnauthorized, errorBody("bearer token required"))
		return nil, false
	}
	actor, err := s.admin.Authenticate(r.Context(), token)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorBody("invalid credentials"))
		return nil, false
	}
	return actor, true
}

func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return false
	}
	return true
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("http_request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func errorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}

// writeJSON marshals v as JSON and writes it to w with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Response is already partially written; nothing to do.
		_ = err
	}
}
