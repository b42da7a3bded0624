package service

import (
	"context"

	"eva-support-be/internal/dto"
	"eva-support-be/internal/entity"
	"eva-support-be/internal/pkg/logger"
	"eva-support-be/internal/store"
)

// ISettingsService defines the settings service interface
type ISettingsService interface {
	GetSettings(ctx context.Context) *dto.UserSettingsResponse
	UpdateSettings(ctx context.Context, request *dto.UpdateUserSettingsRequest) (*dto.UserSettingsResponse, error)
}

type settingsService struct {
	settings *store.SettingsStore
	logger   logger.ILogger
}

func NewSettingsService(settings *store.SettingsStore, log logger.ILogger) ISettingsService {
	return &settingsService{settings: settings, logger: log}
}

func (s *settingsService) GetSettings(_ context.Context) *dto.UserSettingsResponse {
	return mapSettings(s.settings.Get())
}

// UpdateSettings applies a partial patch; omitted fields keep their stored
// value.
func (s *settingsService) UpdateSettings(_ context.Context, request *dto.UpdateUserSettingsRequest) (*dto.UserSettingsResponse, error) {
	current := s.settings.Get()

	if request.SoundEnabled != nil {
		current.SoundEnabled = *request.SoundEnabled
	}
	if request.DesktopEnabled != nil {
		current.DesktopNotificationsEnabled = *request.DesktopEnabled
	}
	if request.SaveHistory != nil {
		current.PersistHistory = *request.SaveHistory
	}
	if request.AllowDataCollection != nil {
		current.AllowTelemetry = *request.AllowDataCollection
	}
	if request.Theme != nil {
		current.ColorTheme = *request.Theme
	}

	s.settings.Save(current)
	s.logger.Info("SettingsService", "Settings updated", nil)
	return mapSettings(current), nil
}

func mapSettings(s entity.UserSettings) *dto.UserSettingsResponse {
	return &dto.UserSettingsResponse{
		SoundEnabled:        s.SoundEnabled,
		DesktopEnabled:      s.DesktopNotificationsEnabled,
		SaveHistory:         s.PersistHistory,
		AllowDataCollection: s.AllowTelemetry,
		Theme:               s.ColorTheme,
	}
}
