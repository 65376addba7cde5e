package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"triptix/internal/models"
)

// TestClient provides methods for testing the API
type TestClient struct {
	BaseURL    string
	HTTPClient *http.Client
	Token      string
}

// NewTestClient creates a new test client
func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// makeRequest makes an HTTP request and returns the response
func (c *TestClient) makeRequest(t *testing.T, method, path string, body interface{}) *http.Response {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reqBody)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		t.Fatalf("Failed to make request: %v", err)
	}

	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
}

// HealthCheck verifies the API is up
func (c *TestClient) HealthCheck(t *testing.T) {
	resp := c.makeRequest(t, "GET", "/health", nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
}

// Search runs a ticket search
func (c *TestClient) Search(t *testing.T, req models.SearchRequest) *models.SearchResponse {
	resp := c.makeRequest(t, "POST", "/api/search", req)
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var response models.SearchResponse
	decodeBody(t, resp, &response)
	return &response
}

// OpenSeatMap opens the seat map for one ticket of the search
func (c *TestClient) OpenSeatMap(t *testing.T, sessionID, ticketID string) *models.SeatMapResponse {
	resp := c.makeRequest(t, "POST", "/api/seatmap/open", models.OpenSeatMapRequest{
		SessionID: sessionID,
		TicketID:  ticketID,
	})
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var response models.SeatMapResponse
	decodeBody(t, resp, &response)
	return &response
}

// ToggleSeat flips the selection state of one seat
func (c *TestClient) ToggleSeat(t *testing.T, sessionID string, seat int) *models.SeatMapResponse {
	resp := c.makeRequest(t, "PATCH", "/api/seatmap/toggle", models.ToggleSeatRequest{
		SessionID: sessionID,
		Seat:      seat,
	})
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var response models.SeatMapResponse
	decodeBody(t, resp, &response)
	return &response
}

// ConfirmBooking confirms the current seat selection
func (c *TestClient) ConfirmBooking(t *testing.T, sessionID string, card models.CardDetails) *models.Booking {
	resp := c.makeRequest(t, "POST", "/api/bookings/confirm", models.ConfirmBookingRequest{
		SessionID: sessionID,
		Card:      card,
	})
	if resp.StatusCode != http.StatusCreated {
		resp.Body.Close()
		t.Fatalf("Expected status 201, got %d", resp.StatusCode)
	}

	var booking models.Booking
	decodeBody(t, resp, &booking)
	return &booking
}

// ListBookings returns the booking ledger
func (c *TestClient) ListBookings(t *testing.T) models.ListBookingsResponse {
	resp := c.makeRequest(t, "GET", "/api/bookings", nil)
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var bookings models.ListBookingsResponse
	decodeBody(t, resp, &bookings)
	return bookings
}

// CancelBooking removes a booking from the ledger
func (c *TestClient) CancelBooking(t *testing.T, bookingID string) {
	resp := c.makeRequest(t, "PATCH", "/api/bookings/cancel", models.CancelBookingRequest{
		BookingID: bookingID,
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
}

// Register creates the demo account
func (c *TestClient) Register(t *testing.T, req models.RegisterRequest) *models.RegisterResponse {
	resp := c.makeRequest(t, "POST", "/api/auth/register", req)
	if resp.StatusCode != http.StatusCreated {
		resp.Body.Close()
		t.Fatalf("Expected status 201, got %d", resp.StatusCode)
	}

	var response models.RegisterResponse
	decodeBody(t, resp, &response)
	return &response
}

// Login authenticates and stores the session token on the client
func (c *TestClient) Login(t *testing.T, email, password string) *models.LoginResponse {
	resp := c.makeRequest(t, "POST", "/api/auth/login", models.LoginRequest{
		Email:    email,
		Password: password,
	})
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var response models.LoginResponse
	decodeBody(t, resp, &response)
	c.Token = response.Token
	return &response
}

// Logout clears the logged-in session
func (c *TestClient) Logout(t *testing.T) {
	resp := c.makeRequest(t, "POST", "/api/auth/logout", nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
}

// TryLogin attempts a login and returns the raw status code
func (c *TestClient) TryLogin(t *testing.T, email, password string) int {
	resp := c.makeRequest(t, "POST", "/api/auth/login", models.LoginRequest{
		Email:    email,
		Password: password,
	})
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode
}

// Me resolves the stored token back to the account
func (c *TestClient) Me(t *testing.T) *models.RegisterResponse {
	resp := c.makeRequest(t, "GET", "/api/auth/me", nil)
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var response models.RegisterResponse
	decodeBody(t, resp, &response)
	return &response
}
