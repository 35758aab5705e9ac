// The notifier consumes booking and telegram-user events from RabbitMQ and
// posts formatted messages to a Telegram channel.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"restaurant-booking/internal/events"
	"restaurant-booking/pkg/utils"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()
	logger = logger.With(zap.String("component", "notifier"))

	if config.Telegram.BotToken == "" {
		logger.Fatal("BOT_TOKEN is not set")
	}

	bot, err := tgbotapi.NewBotAPI(config.Telegram.BotToken)
	if err != nil {
		logger.Fatal("Failed to init telegram bot", zap.Error(err))
	}
	logger.Info("Telegram bot authorized", zap.String("username", bot.Self.UserName))

	n := &notifier{
		bot:       bot,
		channelID: config.Telegram.ChannelID,
		log:       logger,
	}

	// Reconnect loop with capped backoff; the worker never exits on broker
	// failures.
	backoff := time.Second
	for {
		conn, err := amqp.Dial(config.AMQP.URL)
		if err != nil {
			logger.Warn("Failed to dial rabbitmq, retrying",
				zap.Error(err),
				zap.Duration("backoff", backoff),
			)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		if err := n.consume(conn); err != nil {
			logger.Warn("Consume loop ended, reconnecting", zap.Error(err))
			conn.Close()
			time.Sleep(2 * time.Second)
		}
	}
}

type notifier struct {
	bot       *tgbotapi.BotAPI
	channelID int64
	log       *zap.Logger
}

func (n *notifier) consume(conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer ch.Close()

	if err := ch.Qos(50, 0, false); err != nil {
		n.log.Warn("Failed to set QoS", zap.Error(err))
	}

	queues := []string{events.QueueBookingCreated, events.QueueTelegramUserCreated}
	for _, queue := range queues {
		if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
			return fmt.Errorf("queue declare %s: %w", queue, err)
		}
	}

	done := make(chan error, len(queues))
	for _, queue := range queues {
		msgs, err := ch.Consume(queue, "", false, false, false, false, nil)
		if err != nil {
			return fmt.Errorf("queue consume %s: %w", queue, err)
		}

		go func(queue string, msgs <-chan amqp.Delivery) {
			for d := range msgs {
				if err := n.handle(queue, d.Body); err != nil {
					n.log.Error("Failed to handle message",
						zap.Error(err),
						zap.String("queue", queue),
					)
					// Reject without requeue to avoid tight redelivery loops.
					_ = d.Nack(false, false)
					continue
				}
				_ = d.Ack(false)
			}
			done <- fmt.Errorf("deliveries channel for %s closed", queue)
		}(queue, msgs)
	}

	return <-done
}

func (n *notifier) handle(queue string, body []byte) error {
	text, err := formatMessage(queue, body)
	if err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(n.channelID, text)
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("send to channel: %w", err)
	}

	n.log.Info("Notification posted", zap.String("queue", queue))
	return nil
}

func formatMessage(queue string, body []byte) (string, error) {
	switch queue {
	case events.QueueBookingCreated:
		var ev events.BookingCreatedEvent
		if err := json.Unmarshal(body, &ev); err != nil {
			return "", fmt.Errorf("unmarshal booking event: %w", err)
		}
		return fmt.Sprintf(
			"New booking %s\nClient: %s\nFrom: %s\nTo: %s\nTotal: %.2f",
			ev.BookingNumber,
			ev.ClientName,
			ev.PlannedFrom.Format("2006-01-02 15:04"),
			ev.PlannedTo.Format("2006-01-02 15:04"),
			ev.TotalSum,
		), nil

	case events.QueueTelegramUserCreated:
		var ev events.TelegramUserCreatedEvent
		if err := json.Unmarshal(body, &ev); err != nil {
			return "", fmt.Errorf("unmarshal telegram user event: %w", err)
		}
		name := ev.FirstName
		if ev.LastName != "" {
			name += " " + ev.LastName
		}
		return fmt.Sprintf(
			"New telegram user registered\nName: %s\nUsername: @%s\nPhone: %s",
			name, ev.Username, ev.PhoneNumber,
		), nil
	}

	return "", errors.New("unknown queue " + queue)
}
