package scenario

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"
)

// SuggestionProvider is the external (LLM-backed) suggestion source.
// Implementations live in internal/llm.
type SuggestionProvider interface {
	SuggestScenarios(ctx context.Context, query string, pctx Context) ([]Suggestion, error)
}

// Engine produces suggestions for a query. When a provider is
// configured it is tried first; any provider error permanently
// downgrades this engine instance to the rule table, and the error is
// logged rather than returned. GenerateSuggestions never fails.
type Engine struct {
	provider SuggestionProvider
	analysis *AnalysisService
	logger   *slog.Logger
	degraded atomic.Bool
	now      func() time.Time
}

func NewEngine(provider SuggestionProvider, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		provider: provider,
		analysis: NewAnalysisService(),
		logger:   logger,
		now:      time.Now,
	}
}

func (e *Engine) GenerateSuggestions(ctx context.Context, query string, pctx Context) []Suggestion {
	if e.provider != nil && !e.degraded.Load() {
		suggestions, err := e.provider.SuggestScenarios(ctx, query, pctx)
		if err == nil && len(suggestions) > 0 {
			return e.assignIDs(suggestions)
		}
		if err != nil {
			e.degraded.Store(true)
			e.logger.Warn("suggestion provider failed, using rule table from now on", "error", err)
		}
	}
	return e.assignIDs(e.analysis.GenerateSuggestions(query, pctx))
}

// Degraded reports whether the provider has been abandoned for the
// life of this engine.
func (e *Engine) Degraded() bool {
	return e.degraded.Load()
}

// assignIDs stamps timestamp+index ids. Uniqueness is the requirement,
// not ordering.
func (e *Engine) assignIDs(suggestions []Suggestion) []Suggestion {
	stamp := e.now().UnixNano()
	for i := range suggestions {
		suggestions[i].ID = fmt.Sprintf("sg-%d-%d", stamp, i)
	}
	return suggestions
}
