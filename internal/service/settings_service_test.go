package service

import (
	"context"
	"testing"

	"eva-support-be/internal/constant"
	"eva-support-be/internal/dto"
	"eva-support-be/internal/kv"
	"eva-support-be/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSettingsDefaults(t *testing.T) {
	svc := NewSettingsService(store.NewSettingsStore(kv.NewMemoryStore(), newTestLogger(t)), newTestLogger(t))

	settings := svc.GetSettings(context.Background())
	assert.False(t, settings.SoundEnabled)
	assert.False(t, settings.DesktopEnabled)
	assert.True(t, settings.SaveHistory)
	assert.True(t, settings.AllowDataCollection)
	assert.Equal(t, constant.ThemeBlue, settings.Theme)
}

func TestUpdateSettingsPartialPatch(t *testing.T) {
	kvStore := kv.NewMemoryStore()
	svc := NewSettingsService(store.NewSettingsStore(kvStore, newTestLogger(t)), newTestLogger(t))

	sound := true
	theme := constant.ThemePurple
	res, err := svc.UpdateSettings(context.Background(), &dto.UpdateUserSettingsRequest{
		SoundEnabled: &sound,
		Theme:        &theme,
	})
	require.NoError(t, err)

	assert.True(t, res.SoundEnabled)
	assert.Equal(t, constant.ThemePurple, res.Theme)
	// Untouched fields keep their stored values.
	assert.True(t, res.SaveHistory)
	assert.True(t, res.AllowDataCollection)
	assert.False(t, res.DesktopEnabled)

	// A second service over the same medium sees the patched state.
	again := NewSettingsService(store.NewSettingsStore(kvStore, newTestLogger(t)), newTestLogger(t))
	settings := again.GetSettings(context.Background())
	assert.True(t, settings.SoundEnabled)
	assert.Equal(t, constant.ThemePurple, settings.Theme)

	saveHistory := false
	res, err = again.UpdateSettings(context.Background(), &dto.UpdateUserSettingsRequest{
		SaveHistory: &saveHistory,
	})
	require.NoError(t, err)
	assert.False(t, res.SaveHistory)
	assert.True(t, res.SoundEnabled, "earlier patch survives later ones")
}
