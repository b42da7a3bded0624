package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"eva-support-be/internal/constant"
	"eva-support-be/internal/dto"
	"eva-support-be/internal/entity"
	"eva-support-be/internal/kv"
	"eva-support-be/internal/model"
	"eva-support-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) logger.ILogger {
	return logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "test.log"))
}

func newTestSessionStore(t *testing.T) (*SessionStore, kv.Store) {
	kvStore := kv.NewMemoryStore()
	return NewSessionStore(kvStore, newTestLogger(t)), kvStore
}

func TestSessionStoreSeedsWelcomeConversation(t *testing.T) {
	s, _ := newTestSessionStore(t)

	conversations := s.List()
	require.Len(t, conversations, 1)

	welcome := conversations[0]
	assert.Equal(t, constant.WelcomeConversationTitle, welcome.Title)
	require.Len(t, welcome.Messages, 1)
	assert.Equal(t, constant.ChatMessageRoleAssistant, welcome.Messages[0].Role)
	assert.Equal(t, constant.WelcomeMessage, welcome.Messages[0].Content)
	assert.Equal(t, welcome.Id, s.ActiveId())
}

func TestCreateNewBecomesActiveAndIsSeeded(t *testing.T) {
	s, _ := newTestSessionStore(t)

	created := s.CreateNew()
	assert.Equal(t, constant.DefaultConversationTitle, created.Title)
	require.Len(t, created.Messages, 1)
	assert.Equal(t, constant.WelcomeMessage, created.Messages[0].Content)

	conversations := s.List()
	require.Len(t, conversations, 2)
	assert.Equal(t, created.Id, conversations[0].Id, "new conversation should be first")
	assert.Equal(t, created.Id, s.ActiveId())
}

func TestRemoveLastConversationSelfHeals(t *testing.T) {
	s, _ := newTestSessionStore(t)
	onlyId := s.ActiveId()

	removed, err := s.Remove(onlyId)
	require.NoError(t, err)
	assert.Equal(t, onlyId, removed.Id)

	conversations := s.List()
	require.Len(t, conversations, 1, "store must never be empty")
	assert.NotEqual(t, onlyId, conversations[0].Id)
	assert.Equal(t, conversations[0].Id, s.ActiveId())
}

func TestRemoveActiveReassignsToMostRecent(t *testing.T) {
	s, _ := newTestSessionStore(t)
	first := s.ActiveId()
	second := s.CreateNew()

	_, err := s.Remove(second.Id)
	require.NoError(t, err)
	assert.Equal(t, first, s.ActiveId())
}

func TestSelectActiveUnknownConversation(t *testing.T) {
	s, _ := newTestSessionStore(t)

	_, err := s.SelectActive(uuid.New())
	assert.ErrorIs(t, err, dto.ErrConversationNotFound)
}

func TestAppendAndRemoveMessage(t *testing.T) {
	s, _ := newTestSessionStore(t)
	convId := s.ActiveId()

	msg := entity.Message{
		Id:        uuid.New(),
		Role:      constant.ChatMessageRoleUser,
		Content:   "hello",
		CreatedAt: time.Now(),
	}
	require.NoError(t, s.AppendMessage(convId, msg))

	conv, err := s.Get(convId)
	require.NoError(t, err)
	require.Len(t, conv.Messages, 2)
	assert.Equal(t, "hello", conv.Messages[1].Content)
	assert.Equal(t, msg.CreatedAt.Unix(), conv.LastActivity.Unix())

	require.NoError(t, s.RemoveMessage(convId, msg.Id))
	conv, err = s.Get(convId)
	require.NoError(t, err)
	assert.Len(t, conv.Messages, 1)

	assert.ErrorIs(t, s.RemoveMessage(convId, msg.Id), dto.ErrMessageNotFound)
	assert.ErrorIs(t, s.AppendMessage(uuid.New(), msg), dto.ErrConversationNotFound)
}

func TestRevealFragmentsAreNotPersistedUntilSettle(t *testing.T) {
	kvStore := kv.NewMemoryStore()
	s := NewSessionStore(kvStore, newTestLogger(t))
	convId := s.ActiveId()

	pending := entity.Message{
		Id:        uuid.New(),
		Role:      constant.ChatMessageRoleAssistant,
		CreatedAt: time.Now(),
		Pending:   true,
	}
	require.NoError(t, s.AppendMessage(convId, pending))
	require.NoError(t, s.AppendMessageContent(convId, pending.Id, "par"))
	require.NoError(t, s.AppendMessageContent(convId, pending.Id, "tial"))

	// A second store reading the same kv medium sees the state as of the
	// last persist, which predates the fragments.
	mid := NewSessionStore(kvStore, newTestLogger(t))
	conv, err := mid.Get(convId)
	require.NoError(t, err)
	require.Len(t, conv.Messages, 2)
	assert.Empty(t, conv.Messages[1].Content)
	assert.False(t, conv.Messages[1].Pending, "pending flags must not survive a reload")

	require.NoError(t, s.SettleMessage(convId, pending.Id))

	after := NewSessionStore(kvStore, newTestLogger(t))
	conv, err = after.Get(convId)
	require.NoError(t, err)
	require.Len(t, conv.Messages, 2)
	assert.Equal(t, "partial", conv.Messages[1].Content)
	assert.False(t, conv.Messages[1].Pending)
}

func TestRenamePersists(t *testing.T) {
	kvStore := kv.NewMemoryStore()
	s := NewSessionStore(kvStore, newTestLogger(t))
	convId := s.ActiveId()

	renamed, err := s.Rename(convId, "Evening check-in")
	require.NoError(t, err)
	assert.Equal(t, "Evening check-in", renamed.Title)

	reloaded := NewSessionStore(kvStore, newTestLogger(t))
	conv, err := reloaded.Get(convId)
	require.NoError(t, err)
	assert.Equal(t, "Evening check-in", conv.Title)
}

func TestListReturnsClones(t *testing.T) {
	s, _ := newTestSessionStore(t)

	conversations := s.List()
	conversations[0].Title = "mutated"
	conversations[0].Messages[0].Content = "mutated"

	fresh := s.List()
	assert.Equal(t, constant.WelcomeConversationTitle, fresh[0].Title)
	assert.Equal(t, constant.WelcomeMessage, fresh[0].Messages[0].Content)
}

func TestUpsertInsertsMissingConversationAtFront(t *testing.T) {
	s, _ := newTestSessionStore(t)

	restored := &entity.Conversation{
		Id:    uuid.New(),
		Title: "Restored",
		Messages: []entity.Message{{
			Id:        uuid.New(),
			Role:      constant.ChatMessageRoleUser,
			Content:   "old message",
			CreatedAt: time.Now(),
		}},
		LastActivity: time.Now(),
	}
	s.Upsert(restored)

	conversations := s.List()
	require.Len(t, conversations, 2)
	assert.Equal(t, restored.Id, conversations[0].Id)
	assert.Equal(t, restored.Id, s.ActiveId())
}

func TestSessionStoreMalformedStateFallsBackToSeeded(t *testing.T) {
	kvStore := kv.NewMemoryStore()
	require.NoError(t, kvStore.Set(context.Background(), "chat_history", []byte("{not json")))

	s := NewSessionStore(kvStore, newTestLogger(t))

	conversations := s.List()
	require.Len(t, conversations, 1)
	assert.Equal(t, constant.WelcomeConversationTitle, conversations[0].Title)
	assert.Equal(t, conversations[0].Id, s.ActiveId())
}

func TestSessionStoreDanglingActiveIdSelfHeals(t *testing.T) {
	kvStore := kv.NewMemoryStore()
	state := model.ChatHistoryState{
		Conversations: []model.Conversation{{
			Id:    uuid.New(),
			Title: "Carried over",
			Messages: []model.Message{{
				Id:        uuid.New(),
				Role:      constant.ChatMessageRoleAssistant,
				Content:   constant.WelcomeMessage,
				CreatedAt: time.Now(),
			}},
			LastActivity: time.Now(),
		}},
		ActiveConversationId: uuid.New(), // points at nothing
	}
	data, err := json.Marshal(&state)
	require.NoError(t, err)
	require.NoError(t, kvStore.Set(context.Background(), "chat_history", data))

	s := NewSessionStore(kvStore, newTestLogger(t))

	require.Len(t, s.List(), 1)
	assert.Equal(t, state.Conversations[0].Id, s.ActiveId())
}

func TestUpsertNilConversationIsNoOp(t *testing.T) {
	s, _ := newTestSessionStore(t)

	s.Upsert(nil)
	assert.Len(t, s.List(), 1)
}
