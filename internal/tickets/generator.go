// Package tickets produces synthetic ticket offers for a search query.
package tickets

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"triptix/internal/errs"
	"triptix/internal/models"
	"triptix/internal/random"
)

var serviceTypes = []string{
	models.ServiceStandard,
	models.ServiceLuxury,
	models.ServiceBusiness,
}

var departureSlots = []string{"08:00", "10:30", "13:15", "16:45", "20:00", "22:30"}

// City pairs too close for air travel. Symmetric: (A,B) blocks (B,A).
var shortDistancePairs = [][2]string{
	{"Islamabad", "Rawalpindi"},
	{"Lahore", "Gujranwala"},
	{"Karachi", "Hyderabad"},
	{"Peshawar", "Mardan"},
	{"Islamabad", "Murree"},
	{"Rawalpindi", "Murree"},
	{"Abbottabad", "Murree"},
}

// Generator builds randomized ticket sets. Pure given its random
// source, so tests seed it for deterministic output.
type Generator struct {
	rng random.Source
}

func NewGenerator(rng random.Source) *Generator {
	return &Generator{rng: rng}
}

// Search validates the query and returns 3 to 7 synthetic tickets
// sorted by ascending price.
func (g *Generator) Search(req *models.SearchRequest) ([]models.Ticket, error) {
	from := strings.TrimSpace(req.From)
	to := strings.TrimSpace(req.To)

	if from == "" || to == "" || req.Date == "" || req.Mode == "" {
		return nil, errs.Validation("all search fields are required")
	}
	if req.Passengers < 1 {
		return nil, errs.Validation("passenger count must be at least 1")
	}
	if strings.EqualFold(from, to) {
		return nil, errs.Validation("origin and destination cities cannot be the same")
	}

	switch req.Mode {
	case models.ModeBus, models.ModeRail, models.ModeAir:
	default:
		return nil, errs.Validation("unknown travel mode: %s", req.Mode)
	}

	if req.Mode == models.ModeAir && isShortDistance(from, to) {
		return nil, errs.Validation("air travel is not available between %s and %s due to short distance", from, to)
	}

	count := g.rng.Intn(5) + 3
	result := make([]models.Ticket, 0, count)
	now := time.Now().UnixMilli()

	for i := 0; i < count; i++ {
		serviceType := serviceTypes[g.rng.Intn(len(serviceTypes))]
		departure := departureSlots[g.rng.Intn(len(departureSlots))]
		durationHours := g.rng.Intn(4) + 2

		result = append(result, models.Ticket{
			ID:             fmt.Sprintf("TK-%d-%d", now, i),
			From:           from,
			To:             to,
			Date:           req.Date,
			ServiceType:    serviceType,
			Mode:           req.Mode,
			Departure:      departure,
			Arrival:        arrivalTime(departure, durationHours),
			Duration:       fmt.Sprintf("%dh 00m", durationHours),
			PricePerSeat:   g.price(req.Mode, serviceType),
			TotalSeats:     40,
			AvailableSeats: g.rng.Intn(20) + 10,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].PricePerSeat < result[j].PricePerSeat
	})

	return result, nil
}

func (g *Generator) price(mode, serviceType string) int64 {
	var base int64 = 1200
	switch mode {
	case models.ModeAir:
		base = 15000
	case models.ModeRail:
		base = 2500
	}

	var surcharge int64
	switch serviceType {
	case models.ServiceLuxury:
		surcharge = 500
	case models.ServiceBusiness:
		surcharge = 1000
	}

	return base + surcharge + int64(g.rng.Intn(200))
}

func arrivalTime(departure string, durationHours int) string {
	var hour, minute int
	fmt.Sscanf(departure, "%d:%d", &hour, &minute)
	return fmt.Sprintf("%02d:%02d", (hour+durationHours)%24, minute)
}

func isShortDistance(from, to string) bool {
	for _, pair := range shortDistancePairs {
		if (strings.EqualFold(pair[0], from) && strings.EqualFold(pair[1], to)) ||
			(strings.EqualFold(pair[0], to) && strings.EqualFold(pair[1], from)) {
			return true
		}
	}
	return false
}
