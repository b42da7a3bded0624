package store

import (
	"context"
	"encoding/json"
	"sync"

	"eva-support-be/internal/dto"
	"eva-support-be/internal/entity"
	"eva-support-be/internal/kv"
	"eva-support-be/internal/mapper"
	"eva-support-be/internal/model"
	"eva-support-be/internal/pkg/logger"

	"github.com/google/uuid"
)

const trashKey = "deleted_messages"

// TrashLog retains deleted conversations and user messages until they are
// restored or purged. Newest records first.
type TrashLog struct {
	mu     sync.Mutex
	kv     kv.Store
	mapper *mapper.ChatMapper
	logger logger.ILogger

	records []entity.TrashRecord
}

func NewTrashLog(kvStore kv.Store, log logger.ILogger) *TrashLog {
	t := &TrashLog{
		kv:     kvStore,
		mapper: mapper.NewChatMapper(),
		logger: log,
	}
	t.load()
	return t
}

func (t *TrashLog) load() {
	data, found, err := t.kv.Get(context.Background(), trashKey)
	if err != nil || !found {
		if err != nil {
			t.logger.Warn("TrashLog", "Failed to read persisted trash, starting empty", map[string]interface{}{"error": err.Error()})
		}
		return
	}

	var state model.TrashState
	if err := json.Unmarshal(data, &state); err != nil {
		t.logger.Warn("TrashLog", "Persisted trash is malformed, starting empty", map[string]interface{}{"error": err.Error()})
		return
	}
	for i := range state.Records {
		t.records = append(t.records, t.mapper.TrashRecordToEntity(&state.Records[i]))
	}
}

func (t *TrashLog) persistLocked() {
	state := model.TrashState{Records: make([]model.TrashRecord, 0, len(t.records))}
	for i := range t.records {
		state.Records = append(state.Records, t.mapper.TrashRecordToModel(&t.records[i]))
	}

	data, err := json.Marshal(&state)
	if err != nil {
		t.logger.Error("TrashLog", "Failed to serialize trash", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := t.kv.Set(context.Background(), trashKey, data); err != nil {
		t.logger.Warn("TrashLog", "Failed to persist trash", map[string]interface{}{"error": err.Error()})
	}
}

func (t *TrashLog) List() []entity.TrashRecord {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]entity.TrashRecord, len(t.records))
	copy(out, t.records)
	return out
}

func (t *TrashLog) Get(id uuid.UUID) (entity.TrashRecord, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, r := range t.records {
		if r.Id == id {
			return r, nil
		}
	}
	return entity.TrashRecord{}, dto.ErrTrashRecordNotFound
}

// Add prepends records to the log.
func (t *TrashLog) Add(records ...entity.TrashRecord) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.records = append(records, t.records...)
	t.persistLocked()
}

// Remove discards a record permanently.
func (t *TrashLog) Remove(id uuid.UUID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, r := range t.records {
		if r.Id == id {
			t.records = append(t.records[:i], t.records[i+1:]...)
			t.persistLocked()
			return nil
		}
	}
	return dto.ErrTrashRecordNotFound
}

// RemoveByConversation drops every record tied to a conversation, both the
// conversation-level snapshot and its message-level records.
func (t *TrashLog) RemoveByConversation(convId uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	kept := t.records[:0]
	for _, r := range t.records {
		if r.OriginalConversationId != convId {
			kept = append(kept, r)
		}
	}
	t.records = kept
	t.persistLocked()
}

func (t *TrashLog) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.records = nil
	t.persistLocked()
}
