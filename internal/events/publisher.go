package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher pushes domain events onto RabbitMQ. Publishing is best effort:
// errors are logged and returned so callers can ignore them without failing
// the request that produced the event.
type Publisher interface {
	Publish(ctx context.Context, queue string, event any) error
}

type amqpPublisher struct {
	url string
	log *zap.Logger
}

func NewAMQPPublisher(url string, log *zap.Logger) Publisher {
	return &amqpPublisher{
		url: url,
		log: log.With(zap.String("component", "events")),
	}
}

func (p *amqpPublisher) Publish(ctx context.Context, queue string, event any) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Error("Failed to dial rabbitmq", zap.Error(err))
		return fmt.Errorf("dial rabbitmq: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Error("Failed to open channel", zap.Error(err))
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	// Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		p.log.Error("Failed to declare queue", zap.Error(err), zap.String("queue", queue))
		return fmt.Errorf("declare queue %s: %w", queue, err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = ch.PublishWithContext(ctx, "", queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		p.log.Error("Failed to publish event", zap.Error(err), zap.String("queue", queue))
		return fmt.Errorf("publish to %s: %w", queue, err)
	}

	return nil
}
