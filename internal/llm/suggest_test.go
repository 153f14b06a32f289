package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmallek/compass/internal/scenario"
)

func TestScenarioSuggester_MapsModelOutput(t *testing.T) {
	modelJSON := `{"suggestions":[{"title":"Cut vendor spend","description":"Renegotiate.",` +
		`"strategy":"cost-optimization","impact":{"timelineMonths":0,"budgetPct":-12,"resourcesPct":0},` +
		`"confidence":0.81,"risks":["Vendor pushback"]}]}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatReply("deepseek-chat", modelJSON))
	}))
	defer srv.Close()

	suggester := NewScenarioSuggester(NewDeepSeekClient(testConfig(srv.URL), NoopObserver{}))
	out, err := suggester.SuggestScenarios(context.Background(), "reduce our budget", scenario.Context{})

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Cut vendor spend", out[0].Title)
	assert.Equal(t, scenario.StrategyCostOptimization, out[0].Strategy)
	assert.InDelta(t, -12, out[0].Impact.BudgetPct, 1e-9)
	assert.InDelta(t, 0.81, out[0].Confidence, 1e-9)
	assert.Equal(t, []string{"Vendor pushback"}, out[0].Risks)
}

func TestScenarioSuggester_BadJSONIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatReply("deepseek-chat", "sorry, no JSON today"))
	}))
	defer srv.Close()

	suggester := NewScenarioSuggester(NewDeepSeekClient(testConfig(srv.URL), NoopObserver{}))
	_, err := suggester.SuggestScenarios(context.Background(), "anything", scenario.Context{})
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestScenarioSuggester_EmptyListIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatReply("deepseek-chat", `{"suggestions":[]}`))
	}))
	defer srv.Close()

	suggester := NewScenarioSuggester(NewDeepSeekClient(testConfig(srv.URL), NoopObserver{}))
	_, err := suggester.SuggestScenarios(context.Background(), "anything", scenario.Context{})
	assert.ErrorIs(t, err, ErrInvalidOutput)
}
