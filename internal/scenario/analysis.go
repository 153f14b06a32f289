package scenario

const (
	minConfidence  = 0.5
	maxConfidence  = 0.9
	baseConfidence = 0.7
)

// AnalysisService scores the canned suggestions against the caller's
// program context and expands each into base, conservative, and
// aggressive variants.
type AnalysisService struct{}

func NewAnalysisService() *AnalysisService {
	return &AnalysisService{}
}

// GenerateSuggestions returns three variants per table row for the
// detected strategy. Conservative scales impact by 0.7 and confidence
// by 0.9; aggressive scales impact by 1.3 and confidence by 0.8. All
// confidence values stay within [0.5, 0.9].
func (s *AnalysisService) GenerateSuggestions(query string, pctx Context) []Suggestion {
	strategy := DetectStrategy(query)
	confidence := s.confidenceFor(strategy, pctx)
	risks := strategyRisks[strategy]

	var out []Suggestion
	for _, base := range BaseSuggestions(strategy) {
		base.Variant = VariantBase
		base.Confidence = confidence
		base.Risks = risks

		conservative := base
		conservative.Variant = VariantConservative
		conservative.Title = base.Title + " (conservative)"
		conservative.Impact = base.Impact.Scale(0.7)
		conservative.Confidence = clampConfidence(confidence * 0.9)

		aggressive := base
		aggressive.Variant = VariantAggressive
		aggressive.Title = base.Title + " (aggressive)"
		aggressive.Impact = base.Impact.Scale(1.3)
		aggressive.Confidence = clampConfidence(confidence * 0.8)

		out = append(out, base, conservative, aggressive)
	}
	return out
}

func (s *AnalysisService) confidenceFor(strategy Strategy, pctx Context) float64 {
	c := baseConfidence
	if pctx.BudgetUtilizationPct > 100 && strategy == StrategyCostOptimization {
		c += 0.1
	}
	if len(pctx.Risks) > 0 {
		c -= 0.1
	}
	return clampConfidence(c)
}

func clampConfidence(c float64) float64 {
	if c < minConfidence {
		return minConfidence
	}
	if c > maxConfidence {
		return maxConfidence
	}
	return c
}
