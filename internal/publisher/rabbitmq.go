package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"cookit/internal/domain"
)

type RabbitMQ struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	prefix   string
	logger   *slog.Logger
}

// Config names the topology. Events go to a topic exchange under
// "<RoutingPrefix>.<action>" and QueueName is bound to every action.
type Config struct {
	URL           string
	Exchange      string
	RoutingPrefix string
	QueueName     string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	r := &RabbitMQ{
		conn:     conn,
		channel:  ch,
		exchange: cfg.Exchange,
		prefix:   cfg.RoutingPrefix,
		logger:   logger,
	}

	if err := r.declareTopology(cfg.QueueName); err != nil {
		r.Close()
		return nil, err
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"binding", r.bindingPattern(),
	)

	return r, nil
}

func (r *RabbitMQ) declareTopology(queue string) error {
	err := r.channel.ExchangeDeclare(
		r.exchange,
		amqp.ExchangeTopic,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare exchange %s: %w", r.exchange, err)
	}

	q, err := r.channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("declare queue %s: %w", queue, err)
	}

	if err := r.channel.QueueBind(q.Name, r.bindingPattern(), r.exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue %s: %w", q.Name, err)
	}
	return nil
}

// RoutingKey is the key an event with the given action is published under.
func (r *RabbitMQ) RoutingKey(action domain.RecipeAction) string {
	return r.prefix + "." + string(action)
}

func (r *RabbitMQ) bindingPattern() string {
	return r.prefix + ".*"
}

// RecipeEventMessage is the JSON body of every published message.
type RecipeEventMessage struct {
	Event       domain.RecipeEvent `json:"event"`
	PublishedAt time.Time          `json:"publishedAt"`
}

func (r *RabbitMQ) Publish(ctx context.Context, event domain.RecipeEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	msg := RecipeEventMessage{
		Event:       event,
		PublishedAt: time.Now().UTC(),
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.RoutingKey(event.Action),
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Type:         string(event.Action),
			Body:         body,
			Timestamp:    msg.PublishedAt,
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s event: %w", event.Action, err)
	}

	r.logger.Debug("published recipe event",
		"routing_key", r.RoutingKey(event.Action),
		"recipe_id", event.RecipeID,
		"action", event.Action,
	)

	return nil
}

// Close releases the channel and the connection. Both are attempted even if
// the first fails.
func (r *RabbitMQ) Close() error {
	var errs []error
	if r.channel != nil {
		if err := r.channel.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, fmt.Errorf("close channel: %w", err))
		}
	}
	if r.conn != nil {
		if err := r.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, fmt.Errorf("close connection: %w", err))
		}
	}
	return errors.Join(errs...)
}
