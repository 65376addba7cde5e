package tickets

import (
	"strings"
	"testing"

	"triptix/internal/errs"
	"triptix/internal/models"
	"triptix/internal/random"
)

func searchRequest(mode string) *models.SearchRequest {
	return &models.SearchRequest{
		From:       "Lahore",
		To:         "Karachi",
		Date:       "2026-10-01",
		Mode:       mode,
		Passengers: 2,
	}
}

func TestSearch_RequiredFields(t *testing.T) {
	g := NewGenerator(random.NewSeeded(1))

	cases := []struct {
		name   string
		mutate func(*models.SearchRequest)
	}{
		{"empty from", func(r *models.SearchRequest) { r.From = "  " }},
		{"empty to", func(r *models.SearchRequest) { r.To = "" }},
		{"empty date", func(r *models.SearchRequest) { r.Date = "" }},
		{"empty mode", func(r *models.SearchRequest) { r.Mode = "" }},
		{"zero passengers", func(r *models.SearchRequest) { r.Passengers = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := searchRequest(models.ModeBus)
			tc.mutate(req)
			if _, err := g.Search(req); !errs.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestSearch_SameCityRejected(t *testing.T) {
	g := NewGenerator(random.NewSeeded(2))

	req := searchRequest(models.ModeBus)
	req.To = "lahore"
	if _, err := g.Search(req); !errs.IsValidation(err) {
		t.Fatalf("expected validation error for same-city search, got %v", err)
	}
}

func TestSearch_UnknownMode(t *testing.T) {
	g := NewGenerator(random.NewSeeded(3))

	req := searchRequest("boat")
	if _, err := g.Search(req); !errs.IsValidation(err) {
		t.Fatalf("expected validation error for unknown mode, got %v", err)
	}
}

func TestSearch_ShortDistanceAirRejected(t *testing.T) {
	g := NewGenerator(random.NewSeeded(4))

	pairs := [][2]string{
		{"Islamabad", "Rawalpindi"},
		{"Rawalpindi", "Islamabad"},
		{"karachi", "HYDERABAD"},
		{"Murree", "Abbottabad"},
	}

	for _, pair := range pairs {
		req := searchRequest(models.ModeAir)
		req.From, req.To = pair[0], pair[1]
		if _, err := g.Search(req); !errs.IsValidation(err) {
			t.Fatalf("expected rejection for %s-%s by air, got %v", pair[0], pair[1], err)
		}
	}

	// Same pair is fine on the ground.
	req := searchRequest(models.ModeBus)
	req.From, req.To = "Islamabad", "Rawalpindi"
	if _, err := g.Search(req); err != nil {
		t.Fatalf("bus search between close cities failed: %v", err)
	}
}

func TestSearch_TicketShape(t *testing.T) {
	g := NewGenerator(random.NewSeeded(5))

	for run := 0; run < 20; run++ {
		tickets, err := g.Search(searchRequest(models.ModeRail))
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if len(tickets) < 3 || len(tickets) > 7 {
			t.Fatalf("expected 3 to 7 tickets, got %d", len(tickets))
		}

		for i, tk := range tickets {
			if i > 0 && tickets[i-1].PricePerSeat > tk.PricePerSeat {
				t.Fatalf("tickets not sorted by price: %d before %d", tickets[i-1].PricePerSeat, tk.PricePerSeat)
			}
			if tk.From != "Lahore" || tk.To != "Karachi" || tk.Date != "2026-10-01" {
				t.Fatalf("ticket does not echo the query: %+v", tk)
			}
			if !strings.HasPrefix(tk.ID, "TK-") {
				t.Fatalf("unexpected ticket id %q", tk.ID)
			}
			if tk.PricePerSeat < 2500 || tk.PricePerSeat > 2500+1000+199 {
				t.Fatalf("rail price %d out of range", tk.PricePerSeat)
			}
			if tk.TotalSeats != 40 {
				t.Fatalf("expected 40 total seats, got %d", tk.TotalSeats)
			}
			if tk.AvailableSeats < 10 || tk.AvailableSeats > 29 {
				t.Fatalf("available seats %d out of range", tk.AvailableSeats)
			}
		}
	}
}

func TestSearch_ServicePricing(t *testing.T) {
	g := NewGenerator(random.NewSeeded(6))

	floors := map[string]int64{
		models.ServiceStandard: 15000,
		models.ServiceLuxury:   15500,
		models.ServiceBusiness: 16000,
	}

	for run := 0; run < 20; run++ {
		tickets, err := g.Search(searchRequest(models.ModeAir))
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}
		for _, tk := range tickets {
			floor, ok := floors[tk.ServiceType]
			if !ok {
				t.Fatalf("unknown service type %q", tk.ServiceType)
			}
			if tk.PricePerSeat < floor || tk.PricePerSeat >= floor+200 {
				t.Fatalf("%s price %d outside [%d, %d)", tk.ServiceType, tk.PricePerSeat, floor, floor+200)
			}
		}
	}
}

func TestArrivalTime(t *testing.T) {
	cases := []struct {
		departure string
		hours     int
		want      string
	}{
		{"08:00", 2, "10:00"},
		{"10:30", 5, "15:30"},
		{"22:30", 3, "01:30"},
		{"20:00", 4, "00:00"},
	}

	for _, tc := range cases {
		if got := arrivalTime(tc.departure, tc.hours); got != tc.want {
			t.Fatalf("arrivalTime(%s, %d) = %s, want %s", tc.departure, tc.hours, got, tc.want)
		}
	}
}
