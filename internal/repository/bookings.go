package repository

import (
	"context"

	"triptix/internal/models"
	"triptix/internal/store"
)

// BookingRepository persists the booking ledger as one serialized
// collection. Every mutation writes the whole collection back.
type BookingRepository struct {
	store store.Store
}

func NewBookingRepository(s store.Store) *BookingRepository {
	return &BookingRepository{store: s}
}

// GetAll returns the persisted ledger in insertion order. An absent or
// unreadable value yields an empty ledger.
func (r *BookingRepository) GetAll(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	found, err := store.LoadJSON(ctx, r.store, store.KeyBookings, &bookings)
	if err != nil {
		return nil, err
	}
	if !found {
		return []models.Booking{}, nil
	}
	return bookings, nil
}

// SaveAll replaces the persisted ledger with the given collection.
func (r *BookingRepository) SaveAll(ctx context.Context, bookings []models.Booking) error {
	return store.SaveJSON(ctx, r.store, store.KeyBookings, bookings)
}
