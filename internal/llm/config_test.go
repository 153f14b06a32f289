package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_SuggestTimeout(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 12000, cfg.Tasks[TaskSuggest].TimeoutMs)
	assert.False(t, cfg.Enabled)
}

func TestLoadConfig_TaskTimeoutOverrides(t *testing.T) {
	t.Setenv("COMPASS_LLM_TIMEOUT_MS", "9000")
	t.Setenv("COMPASS_LLM_SUGGEST_TIMEOUT_MS", "4000")

	cfg := LoadConfig()

	assert.Equal(t, 9000, cfg.TimeoutMs)
	assert.Equal(t, 4000, cfg.TaskTimeout(TaskSuggest))
	assert.Equal(t, 20000, cfg.TaskTimeout(TaskChat))
}

func TestLoadConfig_InvalidTaskTimeoutOverrideIgnored(t *testing.T) {
	t.Setenv("COMPASS_LLM_SUGGEST_TIMEOUT_MS", "not-a-number")

	cfg := LoadConfig()

	assert.Equal(t, 12000, cfg.TaskTimeout(TaskSuggest))
}

func TestLoadConfig_ProviderAndKey(t *testing.T) {
	t.Setenv("COMPASS_LLM_PROVIDER", "gemini")
	t.Setenv("COMPASS_LLM_API_KEY", "secret")
	t.Setenv("COMPASS_LLM_ENABLED", "true")

	cfg := LoadConfig()

	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.True(t, cfg.Enabled)
}
