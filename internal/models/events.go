package models

import "time"

// NATS subjects for booking lifecycle events.
const (
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCancelled = "booking.cancelled"
)

// BookingConfirmedEvent is published after a booking is persisted.
type BookingConfirmedEvent struct {
	BookingID  string    `json:"booking_id"`
	TicketID   string    `json:"ticket_id"`
	Route      string    `json:"route"`
	Seats      []int     `json:"seats"`
	TotalPrice int64     `json:"total_price"`
	Timestamp  time.Time `json:"timestamp"`
}

// BookingCancelledEvent is published after a booking is removed.
type BookingCancelledEvent struct {
	BookingID string    `json:"booking_id"`
	Timestamp time.Time `json:"timestamp"`
}
