package notify

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const bookingQueueName = "booking.confirmed"

// BookingConfirmedEvent is published when an appointment is created.
type BookingConfirmedEvent struct {
	AppointmentID uint   `json:"appointment_id"`
	ClientID      uint   `json:"client_id"`
	ServiceName   string `json:"service_name"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	CreatedAt     string `json:"created_at"`
}

// EventPublisher pushes booking events to RabbitMQ. Publishing is best
// effort: errors are logged and returned, and the caller ignores them so
// the request flow never depends on the broker.
type EventPublisher struct {
	url string
}

func NewEventPublisher(url string) *EventPublisher {
	return &EventPublisher{url: url}
}

func (p *EventPublisher) Enabled() bool {
	return p != nil && p.url != ""
}

func (p *EventPublisher) PublishBookingConfirmed(ctx context.Context, event BookingConfirmedEvent) error {
	if !p.Enabled() {
		return nil
	}

	conn, err := amqp.Dial(p.url)
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

	// Idempotent declare; durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(
		bookingQueueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",               // default exchange
		bookingQueueName, // routing key = queue name
		false,            // mandatory
		false,            // immediate
		pub,
	); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}

	return nil
}
