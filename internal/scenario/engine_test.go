package scenario

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmallek/compass/internal/domain"
)

type stubProvider struct {
	suggestions []Suggestion
	err         error
	calls       int
}

func (p *stubProvider) SuggestScenarios(_ context.Context, _ string, _ Context) ([]Suggestion, error) {
	p.calls++
	return p.suggestions, p.err
}

func TestEngine_UsesProviderWhenHealthy(t *testing.T) {
	provider := &stubProvider{suggestions: []Suggestion{
		{Title: "From model", Strategy: StrategyBalanced, Impact: domain.ImpactDelta{BudgetPct: -2}},
	}}
	engine := NewEngine(provider, nil)

	out := engine.GenerateSuggestions(context.Background(), "anything", Context{})
	require.Len(t, out, 1)
	assert.Equal(t, "From model", out[0].Title)
	assert.NotEmpty(t, out[0].ID)
	assert.False(t, engine.Degraded())
}

func TestEngine_PermanentlyDegradesOnProviderError(t *testing.T) {
	provider := &stubProvider{err: fmt.Errorf("connection refused")}
	engine := NewEngine(provider, nil)
	ctx := context.Background()

	out := engine.GenerateSuggestions(ctx, "we need to go faster", Context{})
	require.NotEmpty(t, out, "rule table answers despite provider failure")
	assert.Equal(t, StrategyAcceleration, out[0].Strategy)
	assert.True(t, engine.Degraded())

	engine.GenerateSuggestions(ctx, "again", Context{})
	engine.GenerateSuggestions(ctx, "and again", Context{})
	assert.Equal(t, 1, provider.calls, "provider never retried after first failure")
}

func TestEngine_NoProviderGoesStraightToRuleTable(t *testing.T) {
	engine := NewEngine(nil, nil)
	out := engine.GenerateSuggestions(context.Background(), "reduce our budget", Context{})
	require.NotEmpty(t, out)
	assert.Equal(t, StrategyCostOptimization, out[0].Strategy)
	assert.False(t, engine.Degraded())
}

func TestEngine_SuggestionIDsUnique(t *testing.T) {
	engine := NewEngine(nil, nil)
	out := engine.GenerateSuggestions(context.Background(), "update the report", Context{})

	seen := make(map[string]bool)
	for _, s := range out {
		assert.False(t, seen[s.ID], "duplicate id %s", s.ID)
		seen[s.ID] = true
	}
}

func TestEngine_EmptyProviderResultFallsBackWithoutDegrading(t *testing.T) {
	provider := &stubProvider{}
	engine := NewEngine(provider, nil)

	out := engine.GenerateSuggestions(context.Background(), "update the report", Context{})
	require.NotEmpty(t, out)
	assert.False(t, engine.Degraded(), "nil-result nil-error is not a provider failure")
}
