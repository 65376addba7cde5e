package integration

import (
	"net/http"
	"testing"

	"triptix/internal/models"
)

// TestAPI_HealthCheck tests the API health endpoint
func TestAPI_HealthCheck(t *testing.T) {
	client := StartTestServer(t)

	LogTestStep(t, "Testing API health check")
	client.HealthCheck(t)
	LogTestResult(t, "API is healthy and responding")
}

// TestAPI_BookingFullFlow walks the whole journey: search, seat
// selection, payment, ledger, cancellation
func TestAPI_BookingFullFlow(t *testing.T) {
	client := StartTestServer(t)

	LogTestStep(t, "Searching bus tickets Lahore -> Karachi for 2 passengers")
	search := client.Search(t, models.SearchRequest{
		From:       "Lahore",
		To:         "Karachi",
		Date:       "2026-10-01",
		Passengers: 2,
		Mode:       models.ModeBus,
	})
	if len(search.Tickets) < 3 || len(search.Tickets) > 7 {
		t.Fatalf("Expected 3 to 7 tickets, got %d", len(search.Tickets))
	}
	LogTestResult(t, "Found %d tickets", len(search.Tickets))

	LogTestStep(t, "Opening seat map for the cheapest ticket")
	seatMap := client.OpenSeatMap(t, search.SessionID, search.Tickets[0].ID)
	if len(seatMap.SelectedSeats) != 0 {
		t.Fatalf("Expected empty selection, got %v", seatMap.SelectedSeats)
	}

	seats := FindFreeSeats(seatMap, 2)
	if len(seats) != 2 {
		t.Fatalf("Could not find 2 free seats in %+v", seatMap)
	}

	LogTestStep(t, "Selecting seats %v", seats)
	for _, seat := range seats {
		seatMap = client.ToggleSeat(t, search.SessionID, seat)
	}
	if len(seatMap.SelectedSeats) != 2 {
		t.Fatalf("Expected 2 selected seats, got %v", seatMap.SelectedSeats)
	}

	LogTestStep(t, "Confirming booking with the mock card")
	booking := client.ConfirmBooking(t, search.SessionID, TestCard())
	if booking.Status != models.BookingStatusConfirmed {
		t.Fatalf("Expected confirmed booking, got %q", booking.Status)
	}
	if booking.TotalPrice != 2*booking.PricePerSeat {
		t.Fatalf("Total %d is not 2x per-seat price %d", booking.TotalPrice, booking.PricePerSeat)
	}
	LogTestResult(t, "Booking %s confirmed, total %d", booking.ID, booking.TotalPrice)

	LogTestStep(t, "Checking the ledger")
	bookings := client.ListBookings(t)
	AssertBookingExists(t, bookings, booking.ID)

	LogTestStep(t, "Cancelling booking %s", booking.ID)
	client.CancelBooking(t, booking.ID)

	bookings = client.ListBookings(t)
	if len(bookings) != 0 {
		t.Fatalf("Expected empty ledger after cancel, got %+v", bookings)
	}
	LogTestResult(t, "Ledger empty after cancellation")
}

// TestAPI_AuthFullFlow walks registration, login and session resolution
func TestAPI_AuthFullFlow(t *testing.T) {
	client := StartTestServer(t)

	LogTestStep(t, "Registering the demo account")
	account := client.Register(t, TestAccount())
	if account.Email != "ada@example.com" {
		t.Fatalf("Unexpected account %+v", account)
	}

	LogTestStep(t, "Logging in")
	login := client.Login(t, "ada@example.com", "secret1")
	if login.Token == "" {
		t.Fatal("Expected a session token")
	}

	LogTestStep(t, "Resolving the session token")
	me := client.Me(t)
	if me.Email != "ada@example.com" {
		t.Fatalf("Unexpected session account %+v", me)
	}
	LogTestResult(t, "Session resolved to %s", me.Email)

	LogTestStep(t, "Logging out")
	client.Logout(t)
}

// TestAPI_LoginLockout verifies the three-strikes lockout over HTTP
func TestAPI_LoginLockout(t *testing.T) {
	client := StartTestServer(t)
	client.Register(t, TestAccount())

	LogTestStep(t, "Failing login three times")
	for i := 0; i < 2; i++ {
		if code := client.TryLogin(t, "ada@example.com", "wrong1"); code != http.StatusUnauthorized {
			t.Fatalf("Attempt %d: expected 401, got %d", i+1, code)
		}
	}
	if code := client.TryLogin(t, "ada@example.com", "wrong1"); code != http.StatusLocked {
		t.Fatalf("Expected 423 on third failure, got %d", code)
	}

	LogTestStep(t, "Trying correct credentials while locked")
	if code := client.TryLogin(t, "ada@example.com", "secret1"); code != http.StatusLocked {
		t.Fatalf("Expected 423 during lock, got %d", code)
	}
	LogTestResult(t, "Lock held against correct credentials")
}

// TestAPI_ShortDistanceAirRejected verifies the short-haul air rule
func TestAPI_ShortDistanceAirRejected(t *testing.T) {
	client := StartTestServer(t)

	resp := client.makeRequest(t, "POST", "/api/search", models.SearchRequest{
		From:       "Islamabad",
		To:         "Rawalpindi",
		Date:       "2026-10-01",
		Passengers: 1,
		Mode:       models.ModeAir,
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("Expected 400 for short-distance air search, got %d", resp.StatusCode)
	}
}
