package repository

import (
	"triptix/internal/store"
)

type Repositories struct {
	Bookings *BookingRepository
	Users    *UserRepository
	Attempts *AttemptsRepository
	Sessions *SessionRepository
}

func NewRepositories(s store.Store) *Repositories {
	return &Repositories{
		Bookings: NewBookingRepository(s),
		Users:    NewUserRepository(s),
		Attempts: NewAttemptsRepository(s),
		Sessions: NewSessionRepository(s),
	}
}
