package store

import (
	"context"
	"encoding/json"
	"sync"

	"eva-support-be/internal/entity"
	"eva-support-be/internal/kv"
	"eva-support-be/internal/mapper"
	"eva-support-be/internal/model"
	"eva-support-be/internal/pkg/logger"
)

const settingsKey = "user_settings"

// SettingsStore holds the user settings, loaded once at startup and persisted
// on every change.
type SettingsStore struct {
	mu     sync.Mutex
	kv     kv.Store
	mapper *mapper.ChatMapper
	logger logger.ILogger

	settings entity.UserSettings
}

func NewSettingsStore(kvStore kv.Store, log logger.ILogger) *SettingsStore {
	s := &SettingsStore{
		kv:       kvStore,
		mapper:   mapper.NewChatMapper(),
		logger:   log,
		settings: entity.DefaultUserSettings(),
	}
	s.load()
	return s
}

func (s *SettingsStore) load() {
	data, found, err := s.kv.Get(context.Background(), settingsKey)
	if err != nil || !found {
		if err != nil {
			s.logger.Warn("SettingsStore", "Failed to read persisted settings, using defaults", map[string]interface{}{"error": err.Error()})
		}
		return
	}

	var m model.UserSettings
	if err := json.Unmarshal(data, &m); err != nil {
		s.logger.Warn("SettingsStore", "Persisted settings are malformed, using defaults", map[string]interface{}{"error": err.Error()})
		return
	}
	s.settings = s.mapper.SettingsToEntity(m)
}

func (s *SettingsStore) Get() entity.UserSettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.settings
}

func (s *SettingsStore) Save(settings entity.UserSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = settings

	data, err := json.Marshal(s.mapper.SettingsToModel(settings))
	if err != nil {
		s.logger.Error("SettingsStore", "Failed to serialize settings", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.kv.Set(context.Background(), settingsKey, data); err != nil {
		s.logger.Warn("SettingsStore", "Failed to persist settings", map[string]interface{}{"error": err.Error()})
	}
}
