// Package queue_publisher provides functions to publish domain events to
// RabbitMQ. Errors are logged and returned so callers can ignore failures
// without interrupting the main request flow. Publishing is skipped
// entirely when no broker URL is configured.
package queue_publisher

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	q "github.com/iliyamo/railway-reservation/internal/queue"
)

// ticketQueueName is the durable queue both event kinds are published to.
const ticketQueueName = "ticket.events"

// BrokerURL returns the configured broker URL, or empty when events are
// disabled. RABBITMQ_URL takes precedence over AMQP_URL.
func BrokerURL() string {
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		return url
	}
	return os.Getenv("AMQP_URL")
}

// PublishTicketBooked publishes a TicketBookedEvent to the ticket.events
// queue.
func PublishTicketBooked(ctx context.Context, event q.TicketBookedEvent) error {
	return publish(ctx, q.EventTicketBooked, event)
}

// PublishTicketCancelled publishes a TicketCancelledEvent to the
// ticket.events queue.
func PublishTicketCancelled(ctx context.Context, event q.TicketCancelledEvent) error {
	return publish(ctx, q.EventTicketCancelled, event)
}

// envelope wraps a payload with its event kind so a single queue can
// carry both message types.
type envelope struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// publish marshals the enveloped event and sends it to the ticket.events
// queue. The function never panics; any error is logged and returned so
// the caller can choose to ignore it. Messages are marked persistent.
func publish(ctx context.Context, kind string, payload interface{}) error {
	url := BrokerURL()
	if url == "" {
		return nil // events disabled
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Ensure the queue exists (idempotent). Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(
		ticketQueueName, // name
		true,            // durable
		false,           // autoDelete
		false,           // exclusive
		false,           // noWait
		nil,             // args
	); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(envelope{Event: kind, Payload: payload})
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // store on disk
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",              // default exchange
		ticketQueueName, // routing key = queue name
		false,           // mandatory
		false,           // immediate
		pub,
	); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}

	return nil
}
