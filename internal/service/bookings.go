package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"triptix/internal/errs"
	"triptix/internal/logger"
	"triptix/internal/messaging"
	"triptix/internal/metrics"
	"triptix/internal/models"
	"triptix/internal/pricing"
	"triptix/internal/repository"

	"github.com/google/uuid"
)

// BookingService owns the durable booking ledger.
type BookingService struct {
	bookingRepo *repository.BookingRepository
	search      *SearchService
	natsClient  *messaging.NATSClient
}

func NewBookingService(bookingRepo *repository.BookingRepository, search *SearchService, natsClient *messaging.NATSClient) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		search:      search,
		natsClient:  natsClient,
	}
}

// Confirm turns the session's seat selection into a persisted booking
// and discards the session. The seats must be non-empty.
func (s *BookingService) Confirm(ctx context.Context, req *models.ConfirmBookingRequest) (*models.Booking, error) {
	ticket, seats, passengers, err := s.search.selection(req.SessionID)
	if err != nil {
		return nil, err
	}
	if len(seats) == 0 {
		return nil, errs.ErrEmptySelection
	}

	booking := models.Booking{
		ID:           newBookingID(),
		TicketID:     ticket.ID,
		From:         ticket.From,
		To:           ticket.To,
		Date:         ticket.Date,
		ServiceType:  ticket.ServiceType,
		Mode:         ticket.Mode,
		Departure:    ticket.Departure,
		Arrival:      ticket.Arrival,
		Duration:     ticket.Duration,
		Seats:        seats,
		Passengers:   passengers,
		PricePerSeat: ticket.PricePerSeat,
		TotalPrice:   pricing.Total(len(seats), ticket.PricePerSeat),
		Status:       models.BookingStatusConfirmed,
		CreatedAt:    time.Now().UTC(),
	}

	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	bookings = append(bookings, booking)
	if err := s.bookingRepo.SaveAll(ctx, bookings); err != nil {
		return nil, fmt.Errorf("failed to save bookings: %w", err)
	}

	s.search.EndSession(req.SessionID)
	metrics.BookingsConfirmed.Inc()

	eventData := models.BookingConfirmedEvent{
		BookingID:  booking.ID,
		TicketID:   booking.TicketID,
		Route:      booking.From + " - " + booking.To,
		Seats:      booking.Seats,
		TotalPrice: booking.TotalPrice,
		Timestamp:  time.Now(),
	}
	if err := s.natsClient.Publish(models.EventBookingConfirmed, eventData); err != nil {
		// Log error but don't fail the operation
		logger.WithContext(ctx).Error("Failed to publish booking confirmed event",
			"error", err, "booking_id", booking.ID)
	}

	return &booking, nil
}

// List returns the ledger in insertion order, as persisted.
func (s *BookingService) List(ctx context.Context) (models.ListBookingsResponse, error) {
	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	return models.ListBookingsResponse(bookings), nil
}

// Cancel removes a booking from the ledger. The explicit user
// confirmation step happens in the UI before this is called.
func (s *BookingService) Cancel(ctx context.Context, req *models.CancelBookingRequest) error {
	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load bookings: %w", err)
	}

	index := -1
	for i := range bookings {
		if bookings[i].ID == req.BookingID {
			index = i
			break
		}
	}
	if index < 0 {
		return errs.ErrNotFound
	}

	bookings = append(bookings[:index], bookings[index+1:]...)
	if err := s.bookingRepo.SaveAll(ctx, bookings); err != nil {
		return fmt.Errorf("failed to save bookings: %w", err)
	}

	metrics.BookingsCancelled.Inc()

	eventData := models.BookingCancelledEvent{
		BookingID: req.BookingID,
		Timestamp: time.Now(),
	}
	if err := s.natsClient.Publish(models.EventBookingCancelled, eventData); err != nil {
		logger.WithContext(ctx).Error("Failed to publish booking cancelled event",
			"error", err, "booking_id", req.BookingID)
	}

	return nil
}

// newBookingID builds ids like BK-1693526400000-3F9A1C27B.
func newBookingID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:9]
	return fmt.Sprintf("BK-%d-%s", time.Now().UnixMilli(), suffix)
}
