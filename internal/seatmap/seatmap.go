// Package seatmap tracks seat occupancy and the in-progress selection
// for one ticket. A Map lives only for the duration of one
// ticket-selection session and is discarded after the booking is
// confirmed or abandoned.
package seatmap

import (
	"sort"

	"triptix/internal/errs"
	"triptix/internal/models"
	"triptix/internal/random"
)

// Map holds the occupancy and selection state for one ticket.
type Map struct {
	ticketID   string
	totalSeats int
	occupied   map[int]bool
	selected   map[int]bool
}

// Open initializes occupancy for the ticket by marking
// totalSeats-availableSeats distinct random seats as occupied. The
// selection starts empty.
func Open(ticket *models.Ticket, rng random.Source) *Map {
	m := &Map{
		ticketID:   ticket.ID,
		totalSeats: ticket.TotalSeats,
		occupied:   make(map[int]bool),
		selected:   make(map[int]bool),
	}

	occupiedCount := ticket.TotalSeats - ticket.AvailableSeats
	for len(m.occupied) < occupiedCount {
		seat := rng.Intn(ticket.TotalSeats) + 1
		m.occupied[seat] = true
	}

	return m
}

// TicketID returns the ticket this map was opened for.
func (m *Map) TicketID() string {
	return m.ticketID
}

// TotalSeats returns the seat count of the underlying ticket.
func (m *Map) TotalSeats() int {
	return m.totalSeats
}

// Toggle selects seat if it is free and the selection has room, or
// deselects it if it is already selected. A failed toggle leaves the
// selection untouched.
func (m *Map) Toggle(seat, passengers int) error {
	if seat < 1 || seat > m.totalSeats {
		return errs.Validation("seat %d is out of range 1..%d", seat, m.totalSeats)
	}
	if m.occupied[seat] {
		return errs.ErrSeatUnavailable
	}
	if m.selected[seat] {
		delete(m.selected, seat)
		return nil
	}
	if len(m.selected) >= passengers {
		return errs.ErrSelectionLimit
	}
	m.selected[seat] = true
	return nil
}

// SelectedSeats returns the current selection in ascending order.
func (m *Map) SelectedSeats() []int {
	return sortedKeys(m.selected)
}

// OccupiedSeats returns the occupied seat numbers in ascending order.
func (m *Map) OccupiedSeats() []int {
	return sortedKeys(m.occupied)
}

func sortedKeys(set map[int]bool) []int {
	seats := make([]int, 0, len(set))
	for seat := range set {
		seats = append(seats, seat)
	}
	sort.Ints(seats)
	return seats
}
