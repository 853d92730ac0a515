package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus is the closed set of booking states. Bookings are never
// physically deleted; cancellation flips the status and keeps the row.
type BookingStatus string

const (
	BookingActive    BookingStatus = "active"
	BookingPending   BookingStatus = "pending"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// BlocksAvailability reports whether a booking in this status occupies its
// date range for availability purposes.
func (s BookingStatus) BlocksAvailability() bool {
	return s == BookingActive || s == BookingPending
}

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CabinID uint `gorm:"index;column:cabin_id" json:"cabinId"`
	GuestID uint `gorm:"index;column:guest_id" json:"guestId"`

	// Half-open range [CheckInDate, CheckOutDate): the check-out day itself
	// is free, so back-to-back stays on one cabin are allowed.
	CheckInDate  time.Time `gorm:"column:check_in_date;type:date" json:"checkInDate"`
	CheckOutDate time.Time `gorm:"column:check_out_date;type:date" json:"checkOutDate"`

	// Nights and TotalPrice are snapshotted at creation (or edit) time from
	// the dates and the cabin's price of that moment.
	Nights     int             `gorm:"column:nights" json:"nights"`
	TotalPrice decimal.Decimal `gorm:"column:total_price;type:decimal(10,2)" json:"totalPrice"`

	Status BookingStatus `gorm:"size:20;index" json:"status"`

	CreatedBy uint      `gorm:"column:created_by" json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Cabin Cabin `gorm:"foreignKey:CabinID" json:"cabin,omitempty"`
	Guest Guest `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
}

// OverlapsRange reports whether the booking's half-open range intersects
// [checkIn, checkOut). Two ranges [a,b) and [c,d) overlap iff a < d && b > c,
// so a range starting exactly on another's check-out date does not collide.
// Both sides are compared as UTC calendar dates: the stored columns and the
// request may carry different locations, and the boundary rule must hold on
// calendar days, not instants.
func (b *Booking) OverlapsRange(checkIn, checkOut time.Time) bool {
	in, out := dateUTC(checkIn), dateUTC(checkOut)
	return in.Before(dateUTC(b.CheckOutDate)) && out.After(dateUTC(b.CheckInDate))
}

func dateUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
