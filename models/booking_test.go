package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2026, time.June, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlapsRange(t *testing.T) {
	booking := Booking{CheckInDate: day(10), CheckOutDate: day(15)}

	cases := []struct {
		name     string
		checkIn  int
		checkOut int
		want     bool
	}{
		{"identical range", 10, 15, true},
		{"fully inside", 11, 14, true},
		{"fully containing", 8, 20, true},
		{"overlaps the start", 8, 12, true},
		{"overlaps the end", 13, 18, true},
		{"single shared night", 14, 15, true},
		{"ends on check-in day", 5, 10, false},
		{"starts on check-out day", 15, 20, false},
		{"entirely before", 1, 5, false},
		{"entirely after", 20, 25, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, booking.OverlapsRange(day(tc.checkIn), day(tc.checkOut)))
		})
	}
}

// Stored date columns may carry a different location than request dates.
// The boundary policy works on calendar days, so mixed locations must not
// turn a back-to-back stay into an overlap.
func TestOverlapsRangeMixedLocations(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	booking := Booking{
		CheckInDate:  time.Date(2026, time.June, 10, 0, 0, 0, 0, loc),
		CheckOutDate: time.Date(2026, time.June, 15, 0, 0, 0, 0, loc),
	}

	assert.False(t, booking.OverlapsRange(day(15), day(18)),
		"stay starting on the existing check-out day must not overlap")
	assert.False(t, booking.OverlapsRange(day(7), day(10)),
		"stay ending on the existing check-in day must not overlap")
	assert.True(t, booking.OverlapsRange(day(14), day(16)))
}

func TestBlocksAvailability(t *testing.T) {
	assert.True(t, BookingActive.BlocksAvailability())
	assert.True(t, BookingPending.BlocksAvailability())
	assert.False(t, BookingCompleted.BlocksAvailability())
	assert.False(t, BookingCancelled.BlocksAvailability())
}
