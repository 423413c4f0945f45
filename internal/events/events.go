// Package events emits booking lifecycle notifications for downstream
// consumers (calendars, notification fan-out). Publishing is best-effort:
// a failed emit is logged and never fails the originating write.
package events

import (
	"context"
	"encoding/json"
	"time"

	"roomly/pkg/kafka"
	"roomly/pkg/logger"
	"roomly/pkg/model"
)

const (
	BookingCreated = "booking.created"
	BookingUpdated = "booking.updated"
	BookingDeleted = "booking.deleted"
)

type BookingEvent struct {
	Type       string         `json:"type"`
	BookingID  string         `json:"bookingId"`
	OccurredAt time.Time      `json:"occurredAt"`
	Booking    *model.Booking `json:"booking,omitempty"`
}

type Publisher interface {
	PublishBookingEvent(ctx context.Context, event BookingEvent) error
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishBookingEvent(context.Context, BookingEvent) error {
	return nil
}

type KafkaPublisher struct {
	producer *kafka.Producer
	log      *logger.Logger
}

func NewKafkaPublisher(producer *kafka.Producer, log *logger.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		log:      log,
	}
}

func (p *KafkaPublisher) PublishBookingEvent(ctx context.Context, event BookingEvent) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.producer.Publish(ctx, kafka.Message{
		Key:       event.BookingID,
		Value:     payload,
		Headers:   map[string]string{"event-type": event.Type},
		Timestamp: event.OccurredAt,
	})
}
