package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	Strategy   string  `json:"strategy"`
	Confidence float64 `json:"confidence"`
}

func TestExtractJSON_CleanJSON(t *testing.T) {
	raw := `{"strategy":"acceleration","confidence":0.85}`
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "acceleration", result.Strategy)
	assert.Equal(t, 0.85, result.Confidence)
}

func TestExtractJSON_FencedJSON(t *testing.T) {
	raw := "```json\n{\"strategy\":\"balanced\",\"confidence\":0.7}\n```"
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "balanced", result.Strategy)
	assert.Equal(t, 0.7, result.Confidence)
}

func TestExtractJSON_SurroundingText(t *testing.T) {
	raw := "Here are my suggestions:\n{\"strategy\":\"cost-optimization\",\"confidence\":0.72}\nHope that helps!"
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "cost-optimization", result.Strategy)
}

func TestExtractJSON_NestedBraces(t *testing.T) {
	type nested struct {
		Strategy string             `json:"strategy"`
		Impact   map[string]float64 `json:"impact"`
	}
	raw := `{"strategy":"acceleration","impact":{"timelineMonths":-2}}`
	result, err := ExtractJSON[nested](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "acceleration", result.Strategy)
	assert.Equal(t, -2.0, result.Impact["timelineMonths"])
}

func TestExtractJSON_NoJSON(t *testing.T) {
	raw := "I don't know what you mean."
	_, err := ExtractJSON[testPayload](raw, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_InvalidJSON(t *testing.T) {
	raw := `{"strategy":"balanced", broken}`
	_, err := ExtractJSON[testPayload](raw, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidationFailure(t *testing.T) {
	raw := `{"strategy":"balanced","confidence":1.5}`
	validator := func(p testPayload) error {
		if p.Confidence < 0 || p.Confidence > 1 {
			return fmt.Errorf("confidence must be in [0,1], got %f", p.Confidence)
		}
		return nil
	}
	_, err := ExtractJSON(raw, validator)
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestExtractJSON_ValidationSuccess(t *testing.T) {
	raw := `{"strategy":"balanced","confidence":0.9}`
	validator := func(p testPayload) error {
		if p.Confidence < 0 || p.Confidence > 1 {
			return fmt.Errorf("confidence out of range")
		}
		return nil
	}
	result, err := ExtractJSON(raw, validator)
	require.NoError(t, err)
	assert.Equal(t, "balanced", result.Strategy)
}

func TestExtractJSON_LeadingDecimalNormalized(t *testing.T) {
	raw := `{"strategy":"balanced","confidence":.8}`
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.8, result.Confidence)
}

func TestExtractJSON_LineCommentsStripped(t *testing.T) {
	raw := "{\"strategy\":\"balanced\", // model commentary\n\"confidence\":0.6}"
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.6, result.Confidence)
}
