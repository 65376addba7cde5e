package service

import (
	"context"
	"strings"
	"testing"

	"triptix/internal/errs"
	"triptix/internal/messaging"
	"triptix/internal/models"
	"triptix/internal/pricing"
	"triptix/internal/random"
	"triptix/internal/repository"
	"triptix/internal/store"
)

func newBookingFixture(t *testing.T) (*SearchService, *BookingService, *repository.Repositories) {
	t.Helper()
	repos := repository.NewRepositories(store.NewMemoryStore())
	search := NewSearchService(random.NewSeeded(42))
	bookings := NewBookingService(repos.Bookings, search, &messaging.NATSClient{})
	return search, bookings, repos
}

// Runs a search, opens the cheapest ticket and selects the requested
// number of free seats.
func prepareSelection(t *testing.T, search *SearchService, seats int) (string, *models.SeatMapResponse) {
	t.Helper()
	ctx := context.Background()

	searchResp, err := search.Search(ctx, &models.SearchRequest{
		From:       "Lahore",
		To:         "Karachi",
		Date:       "2026-10-01",
		Mode:       models.ModeBus,
		Passengers: seats,
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	seatMap, err := search.OpenSeatMap(ctx, &models.OpenSeatMapRequest{
		SessionID: searchResp.SessionID,
		TicketID:  searchResp.Tickets[0].ID,
	})
	if err != nil {
		t.Fatalf("open seat map failed: %v", err)
	}

	occupied := make(map[int]bool)
	for _, seat := range seatMap.OccupiedSeats {
		occupied[seat] = true
	}

	var resp *models.SeatMapResponse
	picked := 0
	for seat := 1; seat <= seatMap.TotalSeats && picked < seats; seat++ {
		if occupied[seat] {
			continue
		}
		resp, err = search.ToggleSeat(ctx, &models.ToggleSeatRequest{
			SessionID: searchResp.SessionID,
			Seat:      seat,
		})
		if err != nil {
			t.Fatalf("toggle seat %d failed: %v", seat, err)
		}
		picked++
	}
	if picked != seats {
		t.Fatalf("could not select %d seats", seats)
	}

	return searchResp.SessionID, resp
}

func TestOpenSeatMap_UnknownTicket(t *testing.T) {
	search, _, _ := newBookingFixture(t)
	ctx := context.Background()

	resp, err := search.Search(ctx, &models.SearchRequest{
		From: "Lahore", To: "Karachi", Date: "2026-10-01",
		Mode: models.ModeBus, Passengers: 1,
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	_, err = search.OpenSeatMap(ctx, &models.OpenSeatMapRequest{
		SessionID: resp.SessionID,
		TicketID:  "TK-0-99",
	})
	if err != errs.ErrNotFound {
		t.Fatalf("expected ErrNotFound for unknown ticket, got %v", err)
	}

	_, err = search.OpenSeatMap(ctx, &models.OpenSeatMapRequest{
		SessionID: "no-such-session",
		TicketID:  resp.Tickets[0].ID,
	})
	if err != errs.ErrNotFound {
		t.Fatalf("expected ErrNotFound for unknown session, got %v", err)
	}
}

func TestConfirm_PersistsBooking(t *testing.T) {
	search, bookings, repos := newBookingFixture(t)
	ctx := context.Background()

	sessionID, seatMap := prepareSelection(t, search, 2)

	booking, err := bookings.Confirm(ctx, &models.ConfirmBookingRequest{SessionID: sessionID})
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}

	if !strings.HasPrefix(booking.ID, "BK-") {
		t.Fatalf("unexpected booking id %q", booking.ID)
	}
	if booking.Status != models.BookingStatusConfirmed {
		t.Fatalf("unexpected status %q", booking.Status)
	}
	if len(booking.Seats) != 2 {
		t.Fatalf("expected 2 seats, got %v", booking.Seats)
	}
	if booking.TotalPrice != 2*booking.PricePerSeat {
		t.Fatalf("total %d is not 2x per-seat price %d", booking.TotalPrice, booking.PricePerSeat)
	}
	if seatMap.TotalPrice != pricing.Format(booking.TotalPrice) {
		t.Fatalf("seat map total %s does not match booking total %d", seatMap.TotalPrice, booking.TotalPrice)
	}

	persisted, err := repos.Bookings.GetAll(ctx)
	if err != nil {
		t.Fatalf("failed to load ledger: %v", err)
	}
	if len(persisted) != 1 || persisted[0].ID != booking.ID {
		t.Fatalf("ledger does not hold the booking: %+v", persisted)
	}

	// The session is gone, so confirming again fails.
	if _, err := bookings.Confirm(ctx, &models.ConfirmBookingRequest{SessionID: sessionID}); err != errs.ErrNotFound {
		t.Fatalf("expected ErrNotFound after session end, got %v", err)
	}
}

func TestConfirm_EmptySelection(t *testing.T) {
	search, bookings, _ := newBookingFixture(t)
	ctx := context.Background()

	resp, err := search.Search(ctx, &models.SearchRequest{
		From: "Lahore", To: "Karachi", Date: "2026-10-01",
		Mode: models.ModeBus, Passengers: 1,
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if _, err := search.OpenSeatMap(ctx, &models.OpenSeatMapRequest{
		SessionID: resp.SessionID,
		TicketID:  resp.Tickets[0].ID,
	}); err != nil {
		t.Fatalf("open seat map failed: %v", err)
	}

	_, err = bookings.Confirm(ctx, &models.ConfirmBookingRequest{SessionID: resp.SessionID})
	if err != errs.ErrEmptySelection {
		t.Fatalf("expected ErrEmptySelection, got %v", err)
	}
}

func TestList_InsertionOrder(t *testing.T) {
	search, bookings, _ := newBookingFixture(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		sessionID, _ := prepareSelection(t, search, 1)
		booking, err := bookings.Confirm(ctx, &models.ConfirmBookingRequest{SessionID: sessionID})
		if err != nil {
			t.Fatalf("confirm %d failed: %v", i, err)
		}
		ids = append(ids, booking.ID)
	}

	list, err := bookings.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 bookings, got %d", len(list))
	}
	for i, b := range list {
		if b.ID != ids[i] {
			t.Fatalf("ledger out of insertion order: got %v, want %v", list, ids)
		}
	}
}

func TestCancel_RemovesOnlyTarget(t *testing.T) {
	search, bookings, _ := newBookingFixture(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		sessionID, _ := prepareSelection(t, search, 1)
		booking, err := bookings.Confirm(ctx, &models.ConfirmBookingRequest{SessionID: sessionID})
		if err != nil {
			t.Fatalf("confirm %d failed: %v", i, err)
		}
		ids = append(ids, booking.ID)
	}

	if err := bookings.Cancel(ctx, &models.CancelBookingRequest{BookingID: ids[1]}); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	list, err := bookings.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 2 || list[0].ID != ids[0] || list[1].ID != ids[2] {
		t.Fatalf("unexpected ledger after cancel: %+v", list)
	}

	if err := bookings.Cancel(ctx, &models.CancelBookingRequest{BookingID: ids[1]}); err != errs.ErrNotFound {
		t.Fatalf("expected ErrNotFound for cancelled booking, got %v", err)
	}
}

func TestList_EmptyLedger(t *testing.T) {
	_, bookings, _ := newBookingFixture(t)

	list, err := bookings.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Fatalf("expected empty non-nil ledger, got %v", list)
	}
}
