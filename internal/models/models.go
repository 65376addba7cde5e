package models

// SearchRequest - request model for ticket search
type SearchRequest struct {
	From       string `json:"from" binding:"required"`
	To         string `json:"to" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Passengers int    `json:"passengers" binding:"required,min=1"`
	Mode       string `json:"mode" binding:"required"`
}

// TicketResponseItem - one ticket in the search results
type TicketResponseItem struct {
	ID             string `json:"id"`
	From           string `json:"from"`
	To             string `json:"to"`
	Date           string `json:"date"`
	ServiceType    string `json:"service_type"`
	Mode           string `json:"mode"`
	Departure      string `json:"departure"`
	Arrival        string `json:"arrival"`
	Duration       string `json:"duration"`
	Price          string `json:"price"`
	AvailableSeats int    `json:"available_seats"`
	TotalSeats     int    `json:"total_seats"`
}

// SearchResponse - sorted ticket list plus the session that owns it
type SearchResponse struct {
	SessionID string               `json:"session_id"`
	Tickets   []TicketResponseItem `json:"tickets"`
}

// OpenSeatMapRequest - request model for opening a seat map
type OpenSeatMapRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	TicketID  string `json:"ticket_id" binding:"required"`
}

// ToggleSeatRequest - request model for toggling one seat
type ToggleSeatRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Seat      int    `json:"seat" binding:"required"`
}

// SeatMapResponse - occupancy and selection state for the open ticket
type SeatMapResponse struct {
	TicketID      string `json:"ticket_id"`
	TotalSeats    int    `json:"total_seats"`
	OccupiedSeats []int  `json:"occupied_seats"`
	SelectedSeats []int  `json:"selected_seats"`
	TotalPrice    string `json:"total_price"`
}

// CardDetails - mock card form fields, validated at the API boundary
type CardDetails struct {
	Number     string `json:"number" binding:"required"`
	Expiry     string `json:"expiry" binding:"required"`
	CVV        string `json:"cvv" binding:"required"`
	HolderName string `json:"holder_name"`
}

// ConfirmBookingRequest - request model for confirming a booking
type ConfirmBookingRequest struct {
	SessionID string      `json:"session_id" binding:"required"`
	Card      CardDetails `json:"card" binding:"required"`
}

// CancelBookingRequest - request model for cancelling a booking
type CancelBookingRequest struct {
	BookingID string `json:"booking_id" binding:"required"`
}

// ListBookingsResponse - the ledger in insertion order
type ListBookingsResponse []Booking

// RegisterRequest - registration form fields
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	TermsAccepted   bool   `json:"terms_accepted"`
}

// RegisterResponse - public view of the stored account
type RegisterResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// LoginRequest - login form fields
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse - session token issued on successful login
type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}
