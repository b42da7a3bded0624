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

const moodKey = "mood_entries"

// MoodStore keeps logged mood entries in insertion order (oldest first).
type MoodStore struct {
	mu     sync.Mutex
	kv     kv.Store
	mapper *mapper.ChatMapper
	logger logger.ILogger

	entries []entity.MoodEntry
}

func NewMoodStore(kvStore kv.Store, log logger.ILogger) *MoodStore {
	s := &MoodStore{
		kv:     kvStore,
		mapper: mapper.NewChatMapper(),
		logger: log,
	}
	s.load()
	return s
}

func (s *MoodStore) load() {
	data, found, err := s.kv.Get(context.Background(), moodKey)
	if err != nil || !found {
		if err != nil {
			s.logger.Warn("MoodStore", "Failed to read persisted moods, starting empty", map[string]interface{}{"error": err.Error()})
		}
		return
	}

	var state model.MoodState
	if err := json.Unmarshal(data, &state); err != nil {
		s.logger.Warn("MoodStore", "Persisted moods are malformed, starting empty", map[string]interface{}{"error": err.Error()})
		return
	}
	for i := range state.Entries {
		s.entries = append(s.entries, s.mapper.MoodEntryToEntity(&state.Entries[i]))
	}
}

func (s *MoodStore) persistLocked() {
	state := model.MoodState{Entries: make([]model.MoodEntry, 0, len(s.entries))}
	for i := range s.entries {
		state.Entries = append(state.Entries, s.mapper.MoodEntryToModel(&s.entries[i]))
	}

	data, err := json.Marshal(&state)
	if err != nil {
		s.logger.Error("MoodStore", "Failed to serialize moods", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.kv.Set(context.Background(), moodKey, data); err != nil {
		s.logger.Warn("MoodStore", "Failed to persist moods", map[string]interface{}{"error": err.Error()})
	}
}

func (s *MoodStore) Add(entry entity.MoodEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, entry)
	s.persistLocked()
}

func (s *MoodStore) List() []entity.MoodEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.MoodEntry, len(s.entries))
	copy(out, s.entries)
	return out
}
