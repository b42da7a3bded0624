package store

import (
	"context"
	"testing"
	"time"

	"eva-support-be/internal/constant"
	"eva-support-be/internal/dto"
	"eva-support-be/internal/entity"
	"eva-support-be/internal/kv"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func messageRecord(convId uuid.UUID, content string) entity.TrashRecord {
	return entity.TrashRecord{
		Id:                     uuid.New(),
		Kind:                   constant.TrashKindMessage,
		Content:                content,
		OriginalConversationId: convId,
		DeletedAt:              time.Now(),
	}
}

func TestTrashLogAddPrependsAndGet(t *testing.T) {
	log := NewTrashLog(kv.NewMemoryStore(), newTestLogger(t))
	convId := uuid.New()

	first := messageRecord(convId, "first")
	second := messageRecord(convId, "second")
	log.Add(first)
	log.Add(second)

	records := log.List()
	require.Len(t, records, 2)
	assert.Equal(t, second.Id, records[0].Id, "newest record first")

	got, err := log.Get(first.Id)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Content)

	_, err = log.Get(uuid.New())
	assert.ErrorIs(t, err, dto.ErrTrashRecordNotFound)
}

func TestTrashLogRemoveByConversationDropsBothKinds(t *testing.T) {
	log := NewTrashLog(kv.NewMemoryStore(), newTestLogger(t))
	convId := uuid.New()
	otherConvId := uuid.New()

	log.Add(entity.TrashRecord{
		Id:                     uuid.New(),
		Kind:                   constant.TrashKindConversation,
		Conversation:           &entity.Conversation{Id: convId, Title: "gone"},
		OriginalConversationId: convId,
		DeletedAt:              time.Now(),
	})
	log.Add(messageRecord(convId, "mine"))
	kept := messageRecord(otherConvId, "keep me")
	log.Add(kept)

	log.RemoveByConversation(convId)

	records := log.List()
	require.Len(t, records, 1)
	assert.Equal(t, kept.Id, records[0].Id)
}

func TestTrashLogPersistsAcrossReload(t *testing.T) {
	kvStore := kv.NewMemoryStore()
	log := NewTrashLog(kvStore, newTestLogger(t))
	record := messageRecord(uuid.New(), "survives")
	log.Add(record)

	reloaded := NewTrashLog(kvStore, newTestLogger(t))
	records := reloaded.List()
	require.Len(t, records, 1)
	assert.Equal(t, record.Id, records[0].Id)
	assert.Equal(t, "survives", records[0].Content)

	require.NoError(t, reloaded.Remove(record.Id))
	assert.Empty(t, reloaded.List())
	assert.ErrorIs(t, reloaded.Remove(record.Id), dto.ErrTrashRecordNotFound)
}

func TestTrashLogClear(t *testing.T) {
	log := NewTrashLog(kv.NewMemoryStore(), newTestLogger(t))
	log.Add(messageRecord(uuid.New(), "a"), messageRecord(uuid.New(), "b"))

	log.Clear()
	assert.Empty(t, log.List())
}

func TestTrashLogMalformedStateStartsEmpty(t *testing.T) {
	kvStore := kv.NewMemoryStore()
	require.NoError(t, kvStore.Set(context.Background(), "deleted_messages", []byte("[broken")))

	log := NewTrashLog(kvStore, newTestLogger(t))
	assert.Empty(t, log.List())
}
