package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, "file", cfg.Storage.Driver)
	assert.Equal(t, "data/state.json", cfg.Storage.FilePath)
	assert.Equal(t, 30, cfg.Chat.RevealIntervalMs)
	assert.True(t, cfg.Chat.TrashRetainOnDelete)
	assert.Equal(t, "openai", cfg.Ai.LLMProvider)
	assert.Equal(t, "gpt-3.5-turbo", cfg.Ai.LLMModel)
	assert.Equal(t, 0, cfg.Ai.RequestTimeout, "no client-side timeout by default")
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("REVEAL_INTERVAL_MS", "5")
	t.Setenv("TRASH_RETAIN_ON_DELETE", "false")
	t.Setenv("LLM_PROVIDER", "ollama")
	t.Setenv("AI_REQUEST_TIMEOUT", "30")

	cfg := Load()

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, 5, cfg.Chat.RevealIntervalMs)
	assert.False(t, cfg.Chat.TrashRetainOnDelete)
	assert.Equal(t, "ollama", cfg.Ai.LLMProvider)
	assert.Equal(t, 30, cfg.Ai.RequestTimeout)
}

func TestIntAndBoolFallbacks(t *testing.T) {
	t.Setenv("REVEAL_INTERVAL_MS", "not-a-number")
	t.Setenv("TRASH_RETAIN_ON_DELETE", "maybe")

	cfg := Load()
	assert.Equal(t, 30, cfg.Chat.RevealIntervalMs)
	assert.True(t, cfg.Chat.TrashRetainOnDelete)
}
