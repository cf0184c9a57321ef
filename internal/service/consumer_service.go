// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"

	"cpu-catalog-be/internal/dto"
	"cpu-catalog-be/internal/pkg/logger"
	"cpu-catalog-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

const consumerModule = "catalog-events"

type IConsumerService interface {
	// Consume blocks until ctx is cancelled or the subscription closes.
	Consume(ctx context.Context) error
}

// EventForwarder ships events outside the process (NATS JetStream).
type EventForwarder interface {
	Publish(ctx context.Context, event events.Event) error
}

type consumerService struct {
	subscriber  message.Subscriber
	topicName   string
	auditLogger logger.ILogger
	forwarder   EventForwarder
}

// NewConsumerService builds the audit consumer. forwarder may be nil.
func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	auditLogger logger.ILogger,
	forwarder EventForwarder,
) IConsumerService {
	return &consumerService{
		subscriber:  subscriber,
		topicName:   topicName,
		auditLogger: auditLogger,
		forwarder:   forwarder,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	for msg := range messages {
		cs.processMessage(ctx, msg)
	}
	return nil
}

// processMessage always acks: a bad payload will not get better on
// redelivery and forwarding is best effort.
func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	var payload dto.CatalogEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.auditLogger.Error(consumerModule, "failed to unmarshal event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err,
		})
		return
	}

	cs.auditLogger.Info(consumerModule, payload.Type, map[string]interface{}{
		"message_id":  msg.UUID,
		"occurred_at": payload.OccurredAt,
		"payload":     payload.Payload,
	})

	if cs.forwarder == nil {
		return
	}

	event := events.BaseEvent{
		Type:       payload.Type,
		Data:       payload.Payload,
		OccurredAt: payload.OccurredAt,
	}
	if err := cs.forwarder.Publish(ctx, event); err != nil {
		cs.auditLogger.Warn(consumerModule, "failed to forward event", map[string]interface{}{
			"message_id": msg.UUID,
			"type":       payload.Type,
			"error":      err.Error(),
		})
	}
}
