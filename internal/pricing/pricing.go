// Package pricing derives booking totals. No discounts, no currency
// conversion.
package pricing

import "fmt"

// Total returns the price for seatCount seats at pricePerSeat each.
func Total(seatCount int, pricePerSeat int64) int64 {
	return int64(seatCount) * pricePerSeat
}

// Format renders a whole-rupee amount the way the API reports prices.
func Format(amount int64) string {
	return fmt.Sprintf("%d.00", amount)
}
