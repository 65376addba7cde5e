package service

import (
	"triptix/internal/config"
	"triptix/internal/messaging"
	"triptix/internal/random"
	"triptix/internal/repository"
)

type Services struct {
	Search   *SearchService
	Bookings *BookingService
	Auth     *AuthService
}

func NewServices(repos *repository.Repositories, natsClient *messaging.NATSClient, rng random.Source, cfg *config.Config) *Services {
	searchService := NewSearchService(rng)
	bookingService := NewBookingService(repos.Bookings, searchService, natsClient)
	authService := NewAuthService(repos.Users, repos.Attempts, repos.Sessions, cfg.Auth)

	return &Services{
		Search:   searchService,
		Bookings: bookingService,
		Auth:     authService,
	}
}
