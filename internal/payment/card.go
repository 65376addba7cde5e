// Package payment simulates the card checks a payment gateway would
// perform. Nothing is charged; bookings only require the mock form to
// be well-formed.
package payment

import (
	"strconv"
	"strings"
	"time"

	"triptix/internal/errs"
	"triptix/internal/models"
)

// ValidateCard checks the mock card form: 16-digit number, MM/YY expiry
// in the future, 3-digit CVV.
func ValidateCard(card *models.CardDetails, now time.Time) error {
	number := strings.ReplaceAll(card.Number, " ", "")
	if len(number) != 16 || !digitsOnly(number) {
		return errs.Validation("card number must be 16 digits")
	}

	if len(card.CVV) != 3 || !digitsOnly(card.CVV) {
		return errs.Validation("CVV must be 3 digits")
	}

	monthStr, yearStr, ok := strings.Cut(card.Expiry, "/")
	if !ok || len(card.Expiry) != 5 {
		return errs.Validation("expiry must be in MM/YY format")
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return errs.Validation("expiry month must be between 01 and 12")
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return errs.Validation("expiry must be in MM/YY format")
	}
	year += 2000

	if year < now.Year() || (year == now.Year() && month < int(now.Month())) {
		return errs.Validation("card has expired")
	}

	return nil
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
