package store

import (
	"context"
	"testing"

	"eva-support-be/internal/constant"
	"eva-support-be/internal/entity"
	"eva-support-be/internal/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsStoreDefaults(t *testing.T) {
	s := NewSettingsStore(kv.NewMemoryStore(), newTestLogger(t))

	settings := s.Get()
	assert.Equal(t, entity.DefaultUserSettings(), settings)
	assert.Equal(t, constant.ThemeBlue, settings.ColorTheme)
	assert.True(t, settings.PersistHistory)
}

func TestSettingsStoreSaveAndReload(t *testing.T) {
	kvStore := kv.NewMemoryStore()
	s := NewSettingsStore(kvStore, newTestLogger(t))

	settings := s.Get()
	settings.ColorTheme = constant.ThemeGreen
	settings.SoundEnabled = true
	s.Save(settings)

	reloaded := NewSettingsStore(kvStore, newTestLogger(t))
	got := reloaded.Get()
	assert.Equal(t, constant.ThemeGreen, got.ColorTheme)
	assert.True(t, got.SoundEnabled)
	assert.True(t, got.PersistHistory, "untouched fields keep their defaults")
}

func TestSettingsStoreMalformedStateFallsBackToDefaults(t *testing.T) {
	kvStore := kv.NewMemoryStore()
	require.NoError(t, kvStore.Set(context.Background(), "user_settings", []byte("{broken")))

	s := NewSettingsStore(kvStore, newTestLogger(t))
	assert.Equal(t, entity.DefaultUserSettings(), s.Get())
}
