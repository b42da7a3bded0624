package store

import (
	"testing"
	"time"

	"eva-support-be/internal/entity"
	"eva-support-be/internal/kv"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoodStoreAddListAndReload(t *testing.T) {
	kvStore := kv.NewMemoryStore()
	s := NewMoodStore(kvStore, newTestLogger(t))

	entry := entity.MoodEntry{
		Id:        uuid.New(),
		Mood:      3,
		Note:      "walked outside",
		CreatedAt: time.Now(),
	}
	s.Add(entry)

	entries := s.List()
	require.Len(t, entries, 1)
	assert.Equal(t, entry.Id, entries[0].Id)

	reloaded := NewMoodStore(kvStore, newTestLogger(t))
	entries = reloaded.List()
	require.Len(t, entries, 1)
	assert.Equal(t, "walked outside", entries[0].Note)
	assert.Equal(t, 3, entries[0].Mood)
}
