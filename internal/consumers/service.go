// Package consumers runs the optional notification worker: it listens
// to booking lifecycle events published by the API and logs a
// confirmation/cancellation notice for each one. It stands in for the
// email/SMS channel a real booking site would have.
package consumers

import (
	"context"
	"encoding/json"
	"log/slog"

	"triptix/internal/config"
	"triptix/internal/messaging"
	"triptix/internal/models"

	"github.com/nats-io/stan.go"
)

type ConsumerService struct {
	nats *messaging.NATSClient
}

func NewConsumerService(cfg *config.Config) (*ConsumerService, error) {
	natsClient, err := messaging.NewNATSClient(cfg.NATS)
	if err != nil {
		return nil, err
	}

	return &ConsumerService{nats: natsClient}, nil
}

func (cs *ConsumerService) Start() error {
	slog.Info("Starting NATS consumers...")

	if _, err := cs.nats.Subscribe(models.EventBookingConfirmed, cs.handleBookingConfirmed); err != nil {
		return err
	}
	if _, err := cs.nats.Subscribe(models.EventBookingCancelled, cs.handleBookingCancelled); err != nil {
		return err
	}

	return nil
}

func (cs *ConsumerService) handleBookingConfirmed(msg *stan.Msg) {
	var event models.BookingConfirmedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		slog.Error("Failed to decode booking confirmed event", "error", err)
		return
	}

	slog.Info("Booking confirmed",
		"booking_id", event.BookingID,
		"route", event.Route,
		"seats", event.Seats,
		"total_price", event.TotalPrice)
}

func (cs *ConsumerService) handleBookingCancelled(msg *stan.Msg) {
	var event models.BookingCancelledEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		slog.Error("Failed to decode booking cancelled event", "error", err)
		return
	}

	slog.Info("Booking cancelled", "booking_id", event.BookingID)
}

func (cs *ConsumerService) Shutdown(ctx context.Context) error {
	return cs.nats.Close()
}
