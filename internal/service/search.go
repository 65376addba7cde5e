package service

import (
	"context"
	"sync"

	"triptix/internal/errs"
	"triptix/internal/metrics"
	"triptix/internal/models"
	"triptix/internal/pricing"
	"triptix/internal/random"
	"triptix/internal/seatmap"
	"triptix/internal/tickets"

	"github.com/google/uuid"
)

// session holds the per-interaction state: the current search results
// plus at most one open seat map. Discarded after booking confirmation
// or when a new search begins in the same session.
type session struct {
	tickets    []models.Ticket
	passengers int
	openTicket *models.Ticket
	seatMap    *seatmap.Map
}

// SearchService generates ticket offers and owns the transient
// ticket-selection sessions.
type SearchService struct {
	generator *tickets.Generator
	rng       random.Source

	mu       sync.Mutex
	sessions map[string]*session
}

func NewSearchService(rng random.Source) *SearchService {
	return &SearchService{
		generator: tickets.NewGenerator(rng),
		rng:       rng,
		sessions:  make(map[string]*session),
	}
}

// Search validates the query, generates a sorted ticket set and opens a
// fresh session that owns it.
func (s *SearchService) Search(ctx context.Context, req *models.SearchRequest) (*models.SearchResponse, error) {
	offers, err := s.generator.Search(req)
	if err != nil {
		return nil, err
	}

	sessionID := uuid.New().String()

	s.mu.Lock()
	s.sessions[sessionID] = &session{
		tickets:    offers,
		passengers: req.Passengers,
	}
	s.mu.Unlock()

	metrics.SearchesTotal.Inc()

	items := make([]models.TicketResponseItem, len(offers))
	for i, t := range offers {
		items[i] = ticketResponseItem(t)
	}

	return &models.SearchResponse{SessionID: sessionID, Tickets: items}, nil
}

// OpenSeatMap initializes seat occupancy for one ticket of the
// session's search results. An unmatched ticket id is strictly a
// not-found error, never a silent fallback.
func (s *SearchService) OpenSeatMap(ctx context.Context, req *models.OpenSeatMapRequest) (*models.SeatMapResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[req.SessionID]
	if !ok {
		return nil, errs.ErrNotFound
	}

	var ticket *models.Ticket
	for i := range sess.tickets {
		if sess.tickets[i].ID == req.TicketID {
			ticket = &sess.tickets[i]
			break
		}
	}
	if ticket == nil {
		return nil, errs.ErrNotFound
	}

	sess.openTicket = ticket
	sess.seatMap = seatmap.Open(ticket, s.rng)

	return seatMapResponse(sess), nil
}

// ToggleSeat flips the selection state of one seat in the session's
// open seat map.
func (s *SearchService) ToggleSeat(ctx context.Context, req *models.ToggleSeatRequest) (*models.SeatMapResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[req.SessionID]
	if !ok || sess.seatMap == nil {
		return nil, errs.ErrNotFound
	}

	if err := sess.seatMap.Toggle(req.Seat, sess.passengers); err != nil {
		return nil, err
	}

	return seatMapResponse(sess), nil
}

// selection returns the open ticket, the selected seats and the
// passenger count of the session. Used by the booking service when
// confirming.
func (s *SearchService) selection(sessionID string) (*models.Ticket, []int, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok || sess.seatMap == nil || sess.openTicket == nil {
		return nil, nil, 0, errs.ErrNotFound
	}

	return sess.openTicket, sess.seatMap.SelectedSeats(), sess.passengers, nil
}

// EndSession discards a session and its seat map.
func (s *SearchService) EndSession(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

func ticketResponseItem(t models.Ticket) models.TicketResponseItem {
	return models.TicketResponseItem{
		ID:             t.ID,
		From:           t.From,
		To:             t.To,
		Date:           t.Date,
		ServiceType:    t.ServiceType,
		Mode:           t.Mode,
		Departure:      t.Departure,
		Arrival:        t.Arrival,
		Duration:       t.Duration,
		Price:          pricing.Format(t.PricePerSeat),
		AvailableSeats: t.AvailableSeats,
		TotalSeats:     t.TotalSeats,
	}
}

func seatMapResponse(sess *session) *models.SeatMapResponse {
	selected := sess.seatMap.SelectedSeats()
	return &models.SeatMapResponse{
		TicketID:      sess.openTicket.ID,
		TotalSeats:    sess.seatMap.TotalSeats(),
		OccupiedSeats: sess.seatMap.OccupiedSeats(),
		SelectedSeats: selected,
		TotalPrice:    pricing.Format(pricing.Total(len(selected), sess.openTicket.PricePerSeat)),
	}
}
