package services

import (
	"time"

	"github.com/shopspring/decimal"
)

// StayQuote is the priced duration of a stay. A zero quote means the range
// is not computable yet (check-out not after check-in), never a free booking.
type StayQuote struct {
	Nights     int
	TotalPrice decimal.Decimal
}

// DateOnly strips the time-of-day component and pins the calendar date to
// UTC. Request dates, stored date columns, and "today" may arrive in
// different locations; rebuilding all of them as UTC midnight makes equal
// calendar dates equal instants.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CalculateStay computes nights and total price for [checkIn, checkOut) at
// the given nightly rate. Nights is the whole-day difference; there is no
// partial-day billing. Decimal arithmetic throughout, since totals feed
// audited reports.
func CalculateStay(checkIn, checkOut time.Time, pricePerNight decimal.Decimal) StayQuote {
	in := DateOnly(checkIn)
	out := DateOnly(checkOut)
	if !out.After(in) {
		return StayQuote{Nights: 0, TotalPrice: decimal.Zero}
	}
	nights := int(out.Sub(in).Hours() / 24)
	return StayQuote{
		Nights:     nights,
		TotalPrice: pricePerNight.Mul(decimal.NewFromInt(int64(nights))),
	}
}
