package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectStrategy(t *testing.T) {
	tests := []struct {
		query string
		want  Strategy
	}{
		{"we need to go faster", StrategyAcceleration},
		{"reduce our budget", StrategyCostOptimization},
		{"add more staff", StrategyResourceOptimization},
		{"update the report", StrategyBalanced},
		{"", StrategyBalanced},
		{"QUICK wins please", StrategyAcceleration},
		// Acceleration outranks cost when both match.
		{"speed up and cut cost", StrategyAcceleration},
		{"cut cost by shrinking the team", StrategyCostOptimization},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectStrategy(tt.query))
		})
	}
}

func TestDetectStrategy_Deterministic(t *testing.T) {
	q := "hire quickly to save budget"
	first := DetectStrategy(q)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, DetectStrategy(q))
	}
}

func TestBaseSuggestions_TwoPerStrategy(t *testing.T) {
	for _, s := range []Strategy{StrategyAcceleration, StrategyCostOptimization, StrategyResourceOptimization, StrategyBalanced} {
		assert.Len(t, BaseSuggestions(s), 2, string(s))
	}
}

func TestBaseSuggestions_ReturnsCopies(t *testing.T) {
	a := BaseSuggestions(StrategyBalanced)
	a[0].Title = "mutated"
	b := BaseSuggestions(StrategyBalanced)
	assert.NotEqual(t, "mutated", b[0].Title)
}
