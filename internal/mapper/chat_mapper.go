package mapper

import (
	"eva-support-be/internal/entity"
	"eva-support-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Message Mappers

func (m *ChatMapper) MessageToModel(msg *entity.Message) model.Message {
	return model.Message{
		Id:        msg.Id,
		Role:      msg.Role,
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
		Pending:   msg.Pending,
	}
}

func (m *ChatMapper) MessageToEntity(msg *model.Message) entity.Message {
	return entity.Message{
		Id:        msg.Id,
		Role:      msg.Role,
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
		Pending:   msg.Pending,
	}
}

// Conversation Mappers

func (m *ChatMapper) ConversationToModel(c *entity.Conversation) *model.Conversation {
	if c == nil {
		return nil
	}

	messages := make([]model.Message, len(c.Messages))
	for i := range c.Messages {
		messages[i] = m.MessageToModel(&c.Messages[i])
	}

	return &model.Conversation{
		Id:           c.Id,
		Title:        c.Title,
		Messages:     messages,
		LastActivity: c.LastActivity,
	}
}

func (m *ChatMapper) ConversationToEntity(c *model.Conversation) *entity.Conversation {
	if c == nil {
		return nil
	}

	messages := make([]entity.Message, len(c.Messages))
	for i := range c.Messages {
		messages[i] = m.MessageToEntity(&c.Messages[i])
	}

	return &entity.Conversation{
		Id:           c.Id,
		Title:        c.Title,
		Messages:     messages,
		LastActivity: c.LastActivity,
	}
}

// Trash Mappers

func (m *ChatMapper) TrashRecordToModel(r *entity.TrashRecord) model.TrashRecord {
	return model.TrashRecord{
		Id:                     r.Id,
		Kind:                   r.Kind,
		Content:                r.Content,
		Conversation:           m.ConversationToModel(r.Conversation),
		OriginalConversationId: r.OriginalConversationId,
		DeletedAt:              r.DeletedAt,
	}
}

func (m *ChatMapper) TrashRecordToEntity(r *model.TrashRecord) entity.TrashRecord {
	return entity.TrashRecord{
		Id:                     r.Id,
		Kind:                   r.Kind,
		Content:                r.Content,
		Conversation:           m.ConversationToEntity(r.Conversation),
		OriginalConversationId: r.OriginalConversationId,
		DeletedAt:              r.DeletedAt,
	}
}

// Settings Mappers

func (m *ChatMapper) SettingsToModel(s entity.UserSettings) model.UserSettings {
	return model.UserSettings{
		SoundEnabled:                s.SoundEnabled,
		DesktopNotificationsEnabled: s.DesktopNotificationsEnabled,
		PersistHistory:              s.PersistHistory,
		AllowTelemetry:              s.AllowTelemetry,
		ColorTheme:                  s.ColorTheme,
	}
}

func (m *ChatMapper) SettingsToEntity(s model.UserSettings) entity.UserSettings {
	return entity.UserSettings{
		SoundEnabled:                s.SoundEnabled,
		DesktopNotificationsEnabled: s.DesktopNotificationsEnabled,
		PersistHistory:              s.PersistHistory,
		AllowTelemetry:              s.AllowTelemetry,
		ColorTheme:                  s.ColorTheme,
	}
}

// Mood Mappers

func (m *ChatMapper) MoodEntryToModel(e *entity.MoodEntry) model.MoodEntry {
	return model.MoodEntry{
		Id:        e.Id,
		Mood:      e.Mood,
		Note:      e.Note,
		CreatedAt: e.CreatedAt,
	}
}

func (m *ChatMapper) MoodEntryToEntity(e *model.MoodEntry) entity.MoodEntry {
	return entity.MoodEntry{
		Id:        e.Id,
		Mood:      e.Mood,
		Note:      e.Note,
		CreatedAt: e.CreatedAt,
	}
}
