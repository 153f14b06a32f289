package scenario

import "github.com/jmallek/compass/internal/domain"

// Suggestion is one ranked what-if record. Confidence is zero when the
// producing path does not score suggestions.
type Suggestion struct {
	ID          string
	Title       string
	Description string
	Strategy    Strategy
	Variant     Variant
	Impact      domain.ImpactDelta
	Confidence  float64
	Risks       []string
}

type Variant string

const (
	VariantBase         Variant = "base"
	VariantConservative Variant = "conservative"
	VariantAggressive   Variant = "aggressive"
)

// Context carries the numeric program state a caller has on hand. The
// base table magnitudes are fixed constants and do not adapt to these
// values; only confidence scoring reads them.
type Context struct {
	BudgetUtilizationPct float64
	TimelineMonths       float64
	Resources            []string
	Risks                []*domain.Risk
}

// baseTable holds two canned suggestions per strategy. Impact triples
// are signed deltas: timeline in months, budget and resources in
// percent.
var baseTable = map[Strategy][]Suggestion{
	StrategyAcceleration: {
		{
			Title:       "Parallelize critical-path milestones",
			Description: "Run the two longest dependent milestones concurrently by splitting shared staff across both.",
			Strategy:    StrategyAcceleration,
			Impact:      domain.ImpactDelta{TimelineMonths: -2, BudgetPct: 10, ResourcesPct: 15},
		},
		{
			Title:       "Descope non-essential deliverables",
			Description: "Defer polish-stage tasks to a follow-on phase to pull the completion date in.",
			Strategy:    StrategyAcceleration,
			Impact:      domain.ImpactDelta{TimelineMonths: -1, BudgetPct: -5, ResourcesPct: 0},
		},
	},
	StrategyCostOptimization: {
		{
			Title:       "Consolidate vendor contracts",
			Description: "Fold overlapping vendor engagements into a single negotiated agreement.",
			Strategy:    StrategyCostOptimization,
			Impact:      domain.ImpactDelta{TimelineMonths: 0, BudgetPct: -15, ResourcesPct: 0},
		},
		{
			Title:       "Stretch delivery to reduce burn",
			Description: "Extend the timeline one month to cut contractor overtime and rush fees.",
			Strategy:    StrategyCostOptimization,
			Impact:      domain.ImpactDelta{TimelineMonths: 1, BudgetPct: -10, ResourcesPct: -5},
		},
	},
	StrategyResourceOptimization: {
		{
			Title:       "Rebalance staffing across goals",
			Description: "Shift under-utilized staff from completed goals onto at-risk milestones.",
			Strategy:    StrategyResourceOptimization,
			Impact:      domain.ImpactDelta{TimelineMonths: -1, BudgetPct: 0, ResourcesPct: 10},
		},
		{
			Title:       "Add short-term contract capacity",
			Description: "Bring in contractors for the peak-load milestone window only.",
			Strategy:    StrategyResourceOptimization,
			Impact:      domain.ImpactDelta{TimelineMonths: 0, BudgetPct: 8, ResourcesPct: 20},
		},
	},
	StrategyBalanced: {
		{
			Title:       "Incremental scope review",
			Description: "Review milestone scope at each goal boundary and adjust dates before slippage compounds.",
			Strategy:    StrategyBalanced,
			Impact:      domain.ImpactDelta{TimelineMonths: 0, BudgetPct: -3, ResourcesPct: 0},
		},
		{
			Title:       "Tighten dependency tracking",
			Description: "Make cross-milestone dependencies explicit so blocked work surfaces earlier.",
			Strategy:    StrategyBalanced,
			Impact:      domain.ImpactDelta{TimelineMonths: -0.5, BudgetPct: 0, ResourcesPct: 5},
		},
	},
}

// Fixed narrative risk strings attached per strategy, independent of
// the caller's actual risk records.
var strategyRisks = map[Strategy][]string{
	StrategyAcceleration: {
		"Compressed schedules raise the chance of rework.",
		"Parallel work streams increase coordination overhead.",
	},
	StrategyCostOptimization: {
		"Aggressive cuts can push costs into later phases.",
		"Vendor consolidation concentrates delivery risk.",
	},
	StrategyResourceOptimization: {
		"Reassigned staff need ramp-up time on new milestones.",
		"Contractor capacity may not be available when needed.",
	},
	StrategyBalanced: {
		"Incremental adjustments may be too slow for hard deadlines.",
	},
}

// BaseSuggestions returns copies of the canned table rows for a
// strategy, without ids or confidence.
func BaseSuggestions(strategy Strategy) []Suggestion {
	rows := baseTable[strategy]
	out := make([]Suggestion, len(rows))
	copy(out, rows)
	return out
}
