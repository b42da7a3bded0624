package service

import (
	"context"
	"encoding/json"
	"time"

	"eva-support-be/internal/pkg/logger"
	"eva-support-be/pkg/events"
	pktNats "eva-support-be/pkg/nats" // Renamed to avoid collision

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// NotificationDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type NotificationDelivery interface {
	Broadcast(eventType string, payload interface{})
}

// NotifierService drains the in-process event bus, pushes each event to
// connected websocket clients, and optionally mirrors it to NATS.
type NotifierService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	delivery  NotificationDelivery
	mirror    *pktNats.Publisher
	logger    logger.ILogger
}

func NewNotifierService(
	pubSub *gochannel.GoChannel,
	topicName string,
	delivery NotificationDelivery,
	mirror *pktNats.Publisher,
	log logger.ILogger,
) *NotifierService {
	return &NotifierService{
		pubSub:    pubSub,
		topicName: topicName,
		delivery:  delivery,
		mirror:    mirror,
		logger:    log,
	}
}

// Start begins listening to the event bus.
func (s *NotifierService) Start(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		s.logger.Error("NotifierService", "Failed to subscribe to event bus", map[string]interface{}{"error": err.Error()})
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(ctx, msg)
		}
	}()

	s.logger.Info("NotifierService", "Notifier started, listening to chat events", nil)
	return nil
}

func (s *NotifierService) processMessage(ctx context.Context, msg *message.Message) {
	var envelope eventEnvelope
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		s.logger.Warn("NotifierService", "Dropping malformed event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	s.delivery.Broadcast(envelope.Type, envelope.Payload)

	if s.mirror != nil {
		evt := events.BaseEvent{
			Type:       envelope.Type,
			Data:       envelope.Payload,
			OccurredAt: time.Now(),
		}
		if err := s.mirror.Publish(ctx, evt); err != nil {
			s.logger.Warn("NotifierService", "Failed to mirror event to NATS", map[string]interface{}{
				"type":  envelope.Type,
				"error": err.Error(),
			})
		}
	}

	msg.Ack()
}
