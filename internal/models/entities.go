package models

import (
	"time"
)

// Travel modes accepted by the ticket search.
const (
	ModeBus  = "bus"
	ModeRail = "rail"
	ModeAir  = "air"
)

// Service types assigned to generated tickets.
const (
	ServiceStandard = "Standard"
	ServiceLuxury   = "Luxury"
	ServiceBusiness = "Business"
)

// BookingStatusConfirmed is the only persisted booking status; cancelled
// bookings are removed from the ledger outright.
const BookingStatusConfirmed = "confirmed"

// Ticket is a generated transportation offer for one route/date/mode.
// Immutable once generated for a search.
type Ticket struct {
	ID             string `json:"id"`
	From           string `json:"from"`
	To             string `json:"to"`
	Date           string `json:"date"`
	ServiceType    string `json:"service_type"`
	Mode           string `json:"mode"`
	Departure      string `json:"departure"`
	Arrival        string `json:"arrival"`
	Duration       string `json:"duration"`
	PricePerSeat   int64  `json:"price_per_seat"`
	TotalSeats     int    `json:"total_seats"`
	AvailableSeats int    `json:"available_seats"`
}

// Booking is a confirmed purchase of seats on a ticket.
type Booking struct {
	ID           string    `json:"id"`
	TicketID     string    `json:"ticket_id"`
	From         string    `json:"from"`
	To           string    `json:"to"`
	Date         string    `json:"date"`
	ServiceType  string    `json:"service_type"`
	Mode         string    `json:"mode"`
	Departure    string    `json:"departure"`
	Arrival      string    `json:"arrival"`
	Duration     string    `json:"duration"`
	Seats        []int     `json:"seats"`
	Passengers   int       `json:"passengers"`
	PricePerSeat int64     `json:"price_per_seat"`
	TotalPrice   int64     `json:"total_price"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserAccount is the single registered account of the demo store.
// Serialized as-is into the key-value store; API responses use the
// view models instead, so the hash never leaves the process.
type UserAccount struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"password_hash"`
	RegisteredAt time.Time `json:"registered_at"`
}

// LoginAttempts tracks consecutive failures for one email. The record is
// removed entirely on successful login.
type LoginAttempts struct {
	Count       int        `json:"count"`
	LastAttempt time.Time  `json:"last_attempt"`
	LockedUntil *time.Time `json:"locked_until,omitempty"`
}

// Session marks the currently logged-in user.
type Session struct {
	Email      string    `json:"email"`
	LoggedInAt time.Time `json:"logged_in_at"`
}
