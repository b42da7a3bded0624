package service

import (
	"context"
	"strings"
	"time"

	"eva-support-be/internal/constant"
	"eva-support-be/internal/dto"
	"eva-support-be/internal/entity"
	"eva-support-be/internal/pkg/logger"
	"eva-support-be/internal/runtime"
	"eva-support-be/internal/store"
	"eva-support-be/pkg/completion"
	"eva-support-be/pkg/events"

	"github.com/google/uuid"
)

// IConversationService defines the conversation service interface
type IConversationService interface {
	GetAllConversations(ctx context.Context) []*dto.GetAllConversationsResponse
	GetConversation(ctx context.Context, id uuid.UUID) (*dto.GetConversationResponse, error)
	CreateConversation(ctx context.Context) (*dto.CreateConversationResponse, error)
	SelectConversation(ctx context.Context, request *dto.SelectConversationRequest) error
	RenameConversation(ctx context.Context, id uuid.UUID, request *dto.RenameConversationRequest) error
	SendChat(ctx context.Context, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
}

type conversationService struct {
	sessions  *store.SessionStore
	state     *runtime.StateRepository
	provider  completion.Provider
	publisher IPublisherService
	logger    logger.ILogger

	revealInterval time.Duration
	requestTimeout time.Duration
}

func NewConversationService(
	sessions *store.SessionStore,
	state *runtime.StateRepository,
	provider completion.Provider,
	publisher IPublisherService,
	log logger.ILogger,
	revealIntervalMs int,
	requestTimeoutSec int,
) IConversationService {
	return &conversationService{
		sessions:       sessions,
		state:          state,
		provider:       provider,
		publisher:      publisher,
		logger:         log,
		revealInterval: time.Duration(revealIntervalMs) * time.Millisecond,
		requestTimeout: time.Duration(requestTimeoutSec) * time.Second,
	}
}

func (s *conversationService) GetAllConversations(_ context.Context) []*dto.GetAllConversationsResponse {
	activeId := s.sessions.ActiveId()
	conversations := s.sessions.List()

	response := make([]*dto.GetAllConversationsResponse, 0, len(conversations))
	for _, c := range conversations {
		response = append(response, &dto.GetAllConversationsResponse{
			Id:           c.Id,
			Title:        c.Title,
			MessageCount: len(c.Messages),
			LastActivity: c.LastActivity,
			Active:       c.Id == activeId,
		})
	}
	return response
}

func (s *conversationService) GetConversation(_ context.Context, id uuid.UUID) (*dto.GetConversationResponse, error) {
	conversation, err := s.sessions.Get(id)
	if err != nil {
		return nil, err
	}
	return mapConversation(conversation), nil
}

func (s *conversationService) CreateConversation(_ context.Context) (*dto.CreateConversationResponse, error) {
	conversation := s.sessions.CreateNew()
	s.logger.Info("ConversationService", "Conversation created", map[string]interface{}{"id": conversation.Id})
	return &dto.CreateConversationResponse{Id: conversation.Id, Title: conversation.Title}, nil
}

func (s *conversationService) SelectConversation(_ context.Context, request *dto.SelectConversationRequest) error {
	_, err := s.sessions.SelectActive(request.ConversationId)
	return err
}

func (s *conversationService) RenameConversation(_ context.Context, id uuid.UUID, request *dto.RenameConversationRequest) error {
	_, err := s.sessions.Rename(id, strings.TrimSpace(request.Title))
	return err
}

// SendChat runs one user→assistant exchange. The user message is appended
// optimistically and rolled back if the completion call fails; the reply is
// appended empty and revealed character by character in the background.
func (s *conversationService) SendChat(ctx context.Context, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	content := strings.TrimSpace(request.Content)
	if content == "" {
		return nil, dto.ErrEmptyInput
	}

	conversation, err := s.resolveConversation(request.ConversationId)
	if err != nil {
		return nil, err
	}

	// One exchange at a time per conversation; the reveal counts as busy.
	if err := s.state.Begin(conversation.Id); err != nil {
		return nil, err
	}

	userMessage := entity.Message{
		Id:        uuid.New(),
		Role:      constant.ChatMessageRoleUser,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.AppendMessage(conversation.Id, userMessage); err != nil {
		s.state.End(conversation.Id)
		return nil, err
	}

	replyText, err := s.requestCompletion(ctx, conversation.Id)
	if err != nil {
		// Roll the optimistic user message back so a retry does not
		// duplicate it.
		if rbErr := s.sessions.RemoveMessage(conversation.Id, userMessage.Id); rbErr != nil {
			s.logger.Warn("ConversationService", "Rollback of user message failed", map[string]interface{}{
				"conversation_id": conversation.Id,
				"error":           rbErr.Error(),
			})
		}
		s.state.End(conversation.Id)
		s.logger.Error("ConversationService", "Completion call failed", map[string]interface{}{
			"conversation_id": conversation.Id,
			"error":           err.Error(),
		})
		return nil, &dto.CollaboratorError{Detail: err}
	}

	replyMessage := entity.Message{
		Id:        uuid.New(),
		Role:      constant.ChatMessageRoleAssistant,
		CreatedAt: time.Now(),
		Pending:   true,
	}
	if err := s.sessions.AppendMessage(conversation.Id, replyMessage); err != nil {
		s.state.End(conversation.Id)
		return nil, err
	}

	s.state.SetRevealing(conversation.Id)
	go s.reveal(conversation.Id, replyMessage.Id, replyText)

	sent := mapMessage(userMessage)
	reply := mapMessage(replyMessage)
	reply.Content = replyText

	return &dto.SendChatResponse{
		ConversationId: conversation.Id,
		Sent:           &sent,
		Reply:          &reply,
	}, nil
}

func (s *conversationService) resolveConversation(id *uuid.UUID) (*entity.Conversation, error) {
	if id != nil {
		return s.sessions.Get(*id)
	}
	if active := s.sessions.Active(); active != nil {
		return active, nil
	}
	return nil, dto.ErrConversationNotFound
}

// requestCompletion sends the full visible history, prefixed with the
// counseling system prompt, to the configured provider.
func (s *conversationService) requestCompletion(ctx context.Context, conversationId uuid.UUID) (string, error) {
	conversation, err := s.sessions.Get(conversationId)
	if err != nil {
		return "", err
	}

	history := make([]completion.Message, 0, len(conversation.Messages)+1)
	history = append(history, completion.Message{
		Role:    constant.ChatMessageRoleSystem,
		Content: constant.SystemPrompt,
	})
	for _, m := range conversation.Messages {
		if m.Pending {
			continue
		}
		history = append(history, completion.Message{Role: m.Role, Content: m.Content})
	}

	if s.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.requestTimeout)
		defer cancel()
	}

	return s.provider.Chat(ctx, history)
}

// reveal drip-feeds the reply into the stored message one character at a
// time, publishing a fragment event per character. Intermediate states are
// not persisted; SettleMessage writes the finished message through.
func (s *conversationService) reveal(conversationId, messageId uuid.UUID, text string) {
	defer s.state.End(conversationId)

	ctx := context.Background()
	for _, r := range text {
		if err := s.sessions.AppendMessageContent(conversationId, messageId, string(r)); err != nil {
			// The conversation or message was deleted mid-reveal;
			// discard the rest silently.
			return
		}
		if s.publisher != nil {
			if err := s.publisher.Publish(ctx, events.NewRevealFragment(conversationId, messageId, string(r))); err != nil {
				s.logger.Warn("ConversationService", "Failed to publish reveal fragment", map[string]interface{}{"error": err.Error()})
			}
		}
		time.Sleep(s.revealInterval)
	}

	if err := s.sessions.SettleMessage(conversationId, messageId); err != nil {
		return
	}
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, events.NewMessageSettled(conversationId, messageId, text)); err != nil {
			s.logger.Warn("ConversationService", "Failed to publish settle event", map[string]interface{}{"error": err.Error()})
		}
	}
}

func mapMessage(m entity.Message) dto.ConversationMessageResponse {
	return dto.ConversationMessageResponse{
		Id:        m.Id,
		Role:      m.Role,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		Pending:   m.Pending,
	}
}

func mapConversation(c *entity.Conversation) *dto.GetConversationResponse {
	messages := make([]dto.ConversationMessageResponse, 0, len(c.Messages))
	for _, m := range c.Messages {
		messages = append(messages, mapMessage(m))
	}
	return &dto.GetConversationResponse{
		Id:           c.Id,
		Title:        c.Title,
		Messages:     messages,
		LastActivity: c.LastActivity,
	}
}
