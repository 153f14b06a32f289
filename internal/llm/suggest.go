package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmallek/compass/internal/domain"
	"github.com/jmallek/compass/internal/scenario"
)

const suggestSystemPrompt = `You are a program-management planning assistant.
Given a query about adjusting a program plan, respond with JSON only:
{"suggestions": [{"title": string, "description": string, "strategy": string,
"impact": {"timelineMonths": number, "budgetPct": number, "resourcesPct": number},
"confidence": number, "risks": [string]}]}
Strategy must be one of: acceleration, cost-optimization, resource-optimization, balanced.
Return 2 or 3 suggestions. No prose outside the JSON object.`

// ScenarioSuggester adapts a Client to the scenario engine's provider
// contract: prompt the model for JSON suggestions and map them onto
// engine records. Any transport or parse error is returned as-is; the
// engine owns the fallback policy.
type ScenarioSuggester struct {
	client Client
}

func NewScenarioSuggester(client Client) *ScenarioSuggester {
	return &ScenarioSuggester{client: client}
}

type suggestionWire struct {
	Suggestions []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Strategy    string `json:"strategy"`
		Impact      struct {
			TimelineMonths float64 `json:"timelineMonths"`
			BudgetPct      float64 `json:"budgetPct"`
			ResourcesPct   float64 `json:"resourcesPct"`
		} `json:"impact"`
		Confidence float64  `json:"confidence"`
		Risks      []string `json:"risks"`
	} `json:"suggestions"`
}

func (s *ScenarioSuggester) SuggestScenarios(ctx context.Context, query string, pctx scenario.Context) ([]scenario.Suggestion, error) {
	resp, err := s.client.Generate(ctx, GenerateRequest{
		Task:         TaskSuggest,
		SystemPrompt: suggestSystemPrompt,
		UserPrompt:   buildSuggestPrompt(query, pctx),
	})
	if err != nil {
		return nil, err
	}

	wire, err := ExtractJSON[suggestionWire](resp.Text, func(w suggestionWire) error {
		if len(w.Suggestions) == 0 {
			return fmt.Errorf("empty suggestion list")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]scenario.Suggestion, 0, len(wire.Suggestions))
	for _, w := range wire.Suggestions {
		out = append(out, scenario.Suggestion{
			Title:       w.Title,
			Description: w.Description,
			Strategy:    scenario.Strategy(w.Strategy),
			Variant:     scenario.VariantBase,
			Impact: domain.ImpactDelta{
				TimelineMonths: w.Impact.TimelineMonths,
				BudgetPct:      w.Impact.BudgetPct,
				ResourcesPct:   w.Impact.ResourcesPct,
			},
			Confidence: w.Confidence,
			Risks:      w.Risks,
		})
	}
	return out, nil
}

func buildSuggestPrompt(query string, pctx scenario.Context) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Query: %s\n", query)
	fmt.Fprintf(&b, "Budget utilization: %.1f%%\n", pctx.BudgetUtilizationPct)
	fmt.Fprintf(&b, "Timeline: %.1f months\n", pctx.TimelineMonths)
	fmt.Fprintf(&b, "Resources: %d\n", len(pctx.Resources))
	fmt.Fprintf(&b, "Open risks: %d\n", len(pctx.Risks))
	return b.String()
}
