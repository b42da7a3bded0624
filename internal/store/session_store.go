package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"eva-support-be/internal/constant"
	"eva-support-be/internal/dto"
	"eva-support-be/internal/entity"
	"eva-support-be/internal/kv"
	"eva-support-be/internal/mapper"
	"eva-support-be/internal/model"
	"eva-support-be/internal/pkg/logger"

	"github.com/google/uuid"
)

const chatHistoryKey = "chat_history"

// SessionStore owns the collection of conversations, ordered
// most-recent-first. Every mutation re-serializes the full state to the kv
// medium; persist failures are logged and never surfaced. The store is never
// observably empty: removing the last conversation immediately seeds a new
// one.
type SessionStore struct {
	mu     sync.Mutex
	kv     kv.Store
	mapper *mapper.ChatMapper
	logger logger.ILogger

	conversations []*entity.Conversation
	activeId      uuid.UUID
}

func NewSessionStore(kvStore kv.Store, log logger.ILogger) *SessionStore {
	s := &SessionStore{
		kv:     kvStore,
		mapper: mapper.NewChatMapper(),
		logger: log,
	}
	s.load()
	return s
}

// load restores persisted state. Missing or malformed data falls back to a
// single freshly seeded conversation; load never fails.
func (s *SessionStore) load() {
	data, found, err := s.kv.Get(context.Background(), chatHistoryKey)
	if err != nil {
		s.logger.Warn("SessionStore", "Failed to read persisted state, starting fresh", map[string]interface{}{"error": err.Error()})
	}

	if found && err == nil {
		var state model.ChatHistoryState
		if uerr := json.Unmarshal(data, &state); uerr != nil {
			s.logger.Warn("SessionStore", "Persisted state is malformed, starting fresh", map[string]interface{}{"error": uerr.Error()})
		} else {
			for i := range state.Conversations {
				c := s.mapper.ConversationToEntity(&state.Conversations[i])
				// Old pending flags must not survive a reload.
				for j := range c.Messages {
					c.Messages[j].Pending = false
				}
				if len(c.Messages) > 0 {
					s.conversations = append(s.conversations, c)
				}
			}
			s.activeId = state.ActiveConversationId
		}
	}

	if len(s.conversations) == 0 {
		s.seedLocked(constant.WelcomeConversationTitle)
		s.persistLocked()
		return
	}

	if s.findLocked(s.activeId) == nil {
		s.activeId = s.conversations[0].Id
	}
}

func (s *SessionStore) seedLocked(title string) *entity.Conversation {
	now := time.Now()
	conv := &entity.Conversation{
		Id:    uuid.New(),
		Title: title,
		Messages: []entity.Message{{
			Id:        uuid.New(),
			Role:      constant.ChatMessageRoleAssistant,
			Content:   constant.WelcomeMessage,
			CreatedAt: now,
		}},
		LastActivity: now,
	}
	s.conversations = append([]*entity.Conversation{conv}, s.conversations...)
	s.activeId = conv.Id
	return conv
}

func (s *SessionStore) findLocked(id uuid.UUID) *entity.Conversation {
	for _, c := range s.conversations {
		if c.Id == id {
			return c
		}
	}
	return nil
}

// persistLocked snapshots the whole store into the kv medium, fire-and-forget.
func (s *SessionStore) persistLocked() {
	state := model.ChatHistoryState{
		Conversations:        make([]model.Conversation, 0, len(s.conversations)),
		ActiveConversationId: s.activeId,
	}
	for _, c := range s.conversations {
		state.Conversations = append(state.Conversations, *s.mapper.ConversationToModel(c))
	}

	data, err := json.Marshal(&state)
	if err != nil {
		s.logger.Error("SessionStore", "Failed to serialize state", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.kv.Set(context.Background(), chatHistoryKey, data); err != nil {
		s.logger.Warn("SessionStore", "Failed to persist state", map[string]interface{}{"error": err.Error()})
	}
}

// List returns all conversations, most recent first.
func (s *SessionStore) List() []*entity.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entity.Conversation, 0, len(s.conversations))
	for _, c := range s.conversations {
		out = append(out, c.Clone())
	}
	return out
}

func (s *SessionStore) Get(id uuid.UUID) (*entity.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.findLocked(id)
	if c == nil {
		return nil, dto.ErrConversationNotFound
	}
	return c.Clone(), nil
}

func (s *SessionStore) Active() *entity.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.findLocked(s.activeId).Clone()
}

func (s *SessionStore) ActiveId() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.activeId
}

func (s *SessionStore) SelectActive(id uuid.UUID) (*entity.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.findLocked(id)
	if c == nil {
		return nil, dto.ErrConversationNotFound
	}
	s.activeId = id
	s.persistLocked()
	return c.Clone(), nil
}

// CreateNew seeds a conversation with the welcome message, inserts it at the
// front of the recency ordering and makes it active.
func (s *SessionStore) CreateNew() *entity.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv := s.seedLocked(constant.DefaultConversationTitle)
	s.persistLocked()
	return conv.Clone()
}

// Upsert replaces a stored conversation, or inserts it at the front when it
// is not present (used by restore).
func (s *SessionStore) Upsert(conv *entity.Conversation) {
	if conv == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.findLocked(conv.Id)
	if stored == nil {
		s.conversations = append([]*entity.Conversation{conv.Clone()}, s.conversations...)
		s.activeId = conv.Id
	} else {
		*stored = *conv.Clone()
	}
	s.persistLocked()
}

// Remove detaches a conversation and returns it. Retaining its content for
// recovery is the caller's job, before calling this. If the store ends up
// empty it self-heals with a fresh conversation.
func (s *SessionStore) Remove(id uuid.UUID) (*entity.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, c := range s.conversations {
		if c.Id == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, dto.ErrConversationNotFound
	}

	removed := s.conversations[idx]
	s.conversations = append(s.conversations[:idx], s.conversations[idx+1:]...)

	if len(s.conversations) == 0 {
		s.seedLocked(constant.DefaultConversationTitle)
	} else if s.activeId == id {
		s.activeId = s.conversations[0].Id
	}

	s.persistLocked()
	return removed, nil
}

func (s *SessionStore) Rename(id uuid.UUID, title string) (*entity.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.findLocked(id)
	if c == nil {
		return nil, dto.ErrConversationNotFound
	}
	c.Title = title
	s.persistLocked()
	return c.Clone(), nil
}

// AppendMessage adds a message to a conversation and bumps its activity time.
func (s *SessionStore) AppendMessage(id uuid.UUID, msg entity.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.findLocked(id)
	if c == nil {
		return dto.ErrConversationNotFound
	}
	c.Messages = append(c.Messages, msg)
	c.LastActivity = msg.CreatedAt
	s.persistLocked()
	return nil
}

// RemoveMessage drops a message from a conversation (optimistic rollback and
// per-message deletion both land here).
func (s *SessionStore) RemoveMessage(convId, msgId uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.findLocked(convId)
	if c == nil {
		return dto.ErrConversationNotFound
	}
	for i, m := range c.Messages {
		if m.Id == msgId {
			c.Messages = append(c.Messages[:i], c.Messages[i+1:]...)
			s.persistLocked()
			return nil
		}
	}
	return dto.ErrMessageNotFound
}

// AppendMessageContent adds a reveal fragment to a pending message. It does
// not persist: a write per character would hammer the kv medium, and
// SettleMessage writes the finished message through anyway.
func (s *SessionStore) AppendMessageContent(convId, msgId uuid.UUID, chunk string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.findLocked(convId)
	if c == nil {
		return dto.ErrConversationNotFound
	}
	for i := range c.Messages {
		if c.Messages[i].Id == msgId {
			c.Messages[i].Content += chunk
			return nil
		}
	}
	return dto.ErrMessageNotFound
}

// SettleMessage clears the pending flag and persists the finished exchange.
func (s *SessionStore) SettleMessage(convId, msgId uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.findLocked(convId)
	if c == nil {
		return dto.ErrConversationNotFound
	}
	for i := range c.Messages {
		if c.Messages[i].Id == msgId {
			c.Messages[i].Pending = false
			c.LastActivity = time.Now()
			s.persistLocked()
			return nil
		}
	}
	return dto.ErrMessageNotFound
}
