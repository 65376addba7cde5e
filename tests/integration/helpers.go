package integration

import (
	"net/http/httptest"
	"testing"
	"time"

	"triptix/internal/api"
	"triptix/internal/config"
	"triptix/internal/messaging"
	"triptix/internal/models"
	"triptix/internal/random"
	"triptix/internal/repository"
	"triptix/internal/service"
	"triptix/internal/store"

	"github.com/gin-gonic/gin"
)

// StartTestServer spins up a full API server over a memory store and a
// seeded random source, and returns a client pointed at it.
func StartTestServer(t *testing.T) *TestClient {
	t.Helper()

	cfg := &config.Config{
		GinMode: gin.TestMode,
		Auth: config.AuthConfig{
			JWTSecret:     "integration-secret",
			SessionTTL:    24 * time.Hour,
			LockThreshold: 3,
			LockDuration:  2 * time.Minute,
		},
	}

	repos := repository.NewRepositories(store.NewMemoryStore())
	services := service.NewServices(repos, &messaging.NATSClient{}, random.NewSeeded(7), cfg)
	server := api.NewServerWithServices(cfg, services)

	ts := httptest.NewServer(server.GetRouter())
	t.Cleanup(ts.Close)

	return NewTestClient(ts.URL)
}

// FindFreeSeats returns the first n seats not occupied in the map
func FindFreeSeats(seatMap *models.SeatMapResponse, n int) []int {
	occupied := make(map[int]bool)
	for _, seat := range seatMap.OccupiedSeats {
		occupied[seat] = true
	}

	seats := []int{}
	for seat := 1; seat <= seatMap.TotalSeats && len(seats) < n; seat++ {
		if !occupied[seat] {
			seats = append(seats, seat)
		}
	}
	return seats
}

// TestCard returns a card form that passes the mock gateway checks
func TestCard() models.CardDetails {
	return models.CardDetails{
		Number:     "4111 1111 1111 1111",
		Expiry:     time.Now().AddDate(2, 0, 0).Format("01/06"),
		CVV:        "123",
		HolderName: "Ada Lovelace",
	}
}

// TestAccount returns the registration form used across the journeys
func TestAccount() models.RegisterRequest {
	return models.RegisterRequest{
		Name:            "Ada Lovelace",
		Email:           "ada@example.com",
		Phone:           "0300-1234567",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		TermsAccepted:   true,
	}
}

// AssertBookingExists checks if a booking exists in the list
func AssertBookingExists(t *testing.T, bookings models.ListBookingsResponse, bookingID string) {
	for _, booking := range bookings {
		if booking.ID == bookingID {
			return
		}
	}
	t.Fatalf("Booking with ID %s not found in bookings list, %+v", bookingID, bookings)
}

// LogTestStep logs a test step for better debugging
func LogTestStep(t *testing.T, step string, args ...interface{}) {
	t.Logf("🔹 "+step, args...)
}

// LogTestResult logs a test result
func LogTestResult(t *testing.T, result string, args ...interface{}) {
	t.Logf("✅ "+result, args...)
}
