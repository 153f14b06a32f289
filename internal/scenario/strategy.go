// Package scenario maps free-text planning queries to strategy buckets
// and emits ranked what-if suggestions with impact estimates.
package scenario

import "strings"

type Strategy string

const (
	StrategyAcceleration         Strategy = "acceleration"
	StrategyCostOptimization     Strategy = "cost-optimization"
	StrategyResourceOptimization Strategy = "resource-optimization"
	StrategyBalanced             Strategy = "balanced"
)

// Keyword sets are scanned in this order; the first set with a match
// wins, and a query matching none resolves to balanced.
var strategyKeywords = []struct {
	strategy Strategy
	keywords []string
}{
	{StrategyAcceleration, []string{"fast", "quick", "speed", "accelerate", "sooner", "ahead of schedule"}},
	{StrategyCostOptimization, []string{"cost", "budget", "save", "cheap", "spend", "expense"}},
	{StrategyResourceOptimization, []string{"resource", "team", "staff", "people", "hire", "capacity"}},
}

// DetectStrategy resolves a query to a strategy. Pure and
// deterministic: the same text always yields the same strategy.
func DetectStrategy(query string) Strategy {
	q := strings.ToLower(query)
	for _, set := range strategyKeywords {
		for _, kw := range set.keywords {
			if strings.Contains(q, kw) {
				return set.strategy
			}
		}
	}
	return StrategyBalanced
}
