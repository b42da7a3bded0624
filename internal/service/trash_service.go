package service

import (
	"context"
	"time"

	"eva-support-be/internal/constant"
	"eva-support-be/internal/dto"
	"eva-support-be/internal/entity"
	"eva-support-be/internal/pkg/logger"
	"eva-support-be/internal/store"
	"eva-support-be/pkg/events"

	"github.com/google/uuid"
)

// ITrashService defines the trash service interface
type ITrashService interface {
	GetAllRecords(ctx context.Context) []*dto.TrashRecordResponse
	DeleteConversation(ctx context.Context, id uuid.UUID) error
	DeleteMessage(ctx context.Context, conversationId, messageId uuid.UUID) error
	Restore(ctx context.Context, recordId uuid.UUID) (*dto.RestoreTrashResponse, error)
	Purge(ctx context.Context, recordId uuid.UUID) error
	PurgeAll(ctx context.Context) error
}

type trashService struct {
	sessions  *store.SessionStore
	trash     *store.TrashLog
	publisher IPublisherService
	logger    logger.ILogger

	// When false, deletions are final and never reach the trash log.
	retainOnDelete bool
}

func NewTrashService(
	sessions *store.SessionStore,
	trash *store.TrashLog,
	publisher IPublisherService,
	log logger.ILogger,
	retainOnDelete bool,
) ITrashService {
	return &trashService{
		sessions:       sessions,
		trash:          trash,
		publisher:      publisher,
		logger:         log,
		retainOnDelete: retainOnDelete,
	}
}

func (s *trashService) GetAllRecords(_ context.Context) []*dto.TrashRecordResponse {
	records := s.trash.List()

	response := make([]*dto.TrashRecordResponse, 0, len(records))
	for _, r := range records {
		item := &dto.TrashRecordResponse{
			Id:                     r.Id,
			Kind:                   r.Kind,
			Content:                r.Content,
			OriginalConversationId: r.OriginalConversationId,
			DeletedAt:              r.DeletedAt,
		}
		if r.Conversation != nil {
			item.ConversationTitle = r.Conversation.Title
			item.MessageCount = len(r.Conversation.Messages)
		}
		response = append(response, item)
	}
	return response
}

// DeleteConversation removes a conversation from the session store and, when
// retention is on, files both a whole-conversation record and one record per
// user message so either granularity can be restored later.
func (s *trashService) DeleteConversation(ctx context.Context, id uuid.UUID) error {
	removed, err := s.sessions.Remove(id)
	if err != nil {
		return err
	}

	if s.retainOnDelete {
		now := time.Now()
		records := []entity.TrashRecord{{
			Id:                     uuid.New(),
			Kind:                   constant.TrashKindConversation,
			Conversation:           removed,
			OriginalConversationId: removed.Id,
			DeletedAt:              now,
		}}
		for _, m := range removed.UserMessages() {
			records = append(records, entity.TrashRecord{
				Id:                     uuid.New(),
				Kind:                   constant.TrashKindMessage,
				Content:                m.Content,
				OriginalConversationId: removed.Id,
				DeletedAt:              now,
			})
		}
		s.trash.Add(records...)
	}

	s.logger.Info("TrashService", "Conversation deleted", map[string]interface{}{
		"conversation_id": id,
		"retained":        s.retainOnDelete,
	})

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, events.NewConversationDeleted(id)); err != nil {
			s.logger.Warn("TrashService", "Failed to publish delete event", map[string]interface{}{"error": err.Error()})
		}
	}
	return nil
}

// DeleteMessage removes a single user message. Assistant messages are not
// independently deletable.
func (s *trashService) DeleteMessage(_ context.Context, conversationId, messageId uuid.UUID) error {
	conversation, err := s.sessions.Get(conversationId)
	if err != nil {
		return err
	}

	var target *entity.Message
	for i := range conversation.Messages {
		if conversation.Messages[i].Id == messageId {
			target = &conversation.Messages[i]
			break
		}
	}
	if target == nil {
		return dto.ErrMessageNotFound
	}
	if target.Role != constant.ChatMessageRoleUser {
		return dto.ErrMessageNotDeletable
	}

	if err := s.sessions.RemoveMessage(conversationId, messageId); err != nil {
		return err
	}

	if s.retainOnDelete {
		s.trash.Add(entity.TrashRecord{
			Id:                     uuid.New(),
			Kind:                   constant.TrashKindMessage,
			Content:                target.Content,
			OriginalConversationId: conversationId,
			DeletedAt:              time.Now(),
		})
	}
	return nil
}

// Restore puts a trashed record back into the session store. Restoring a
// message whose conversation no longer exists reconstitutes the conversation
// around it.
func (s *trashService) Restore(ctx context.Context, recordId uuid.UUID) (*dto.RestoreTrashResponse, error) {
	record, err := s.trash.Get(recordId)
	if err != nil {
		return nil, err
	}

	response := &dto.RestoreTrashResponse{ConversationId: record.OriginalConversationId}

	switch record.Kind {
	case constant.TrashKindConversation:
		snapshot := record.Conversation.Clone()
		if snapshot == nil {
			// A conversation record with no snapshot can only come out
			// of hand-edited or truncated persisted trash. There is
			// nothing to restore from.
			s.logger.Warn("TrashService", "Conversation record has no snapshot, cannot restore", map[string]interface{}{"record_id": recordId})
			return nil, dto.ErrTrashRecordNotFound
		}
		s.sessions.Upsert(snapshot)
		// The per-message records filed alongside this snapshot are
		// redundant once the whole conversation is back.
		s.trash.RemoveByConversation(record.OriginalConversationId)

	case constant.TrashKindMessage:
		message := entity.Message{
			Id:        uuid.New(),
			Role:      constant.ChatMessageRoleUser,
			Content:   record.Content,
			CreatedAt: time.Now(),
		}
		if err := s.sessions.AppendMessage(record.OriginalConversationId, message); err != nil {
			reconstituted := &entity.Conversation{
				Id:           record.OriginalConversationId,
				Title:        constant.DefaultConversationTitle,
				Messages:     []entity.Message{message},
				LastActivity: time.Now(),
			}
			s.sessions.Upsert(reconstituted)
			response.Reconstituted = true
		}
		if err := s.trash.Remove(record.Id); err != nil {
			s.logger.Warn("TrashService", "Restored record already gone from trash", map[string]interface{}{"record_id": record.Id})
		}

	default:
		return nil, dto.ErrTrashRecordNotFound
	}

	s.logger.Info("TrashService", "Record restored", map[string]interface{}{
		"record_id":       recordId,
		"conversation_id": response.ConversationId,
		"reconstituted":   response.Reconstituted,
	})

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, events.NewConversationRestored(response.ConversationId)); err != nil {
			s.logger.Warn("TrashService", "Failed to publish restore event", map[string]interface{}{"error": err.Error()})
		}
	}
	return response, nil
}

func (s *trashService) Purge(_ context.Context, recordId uuid.UUID) error {
	return s.trash.Remove(recordId)
}

func (s *trashService) PurgeAll(_ context.Context) error {
	s.trash.Clear()
	return nil
}
