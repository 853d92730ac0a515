package services

import (
	"context"
	"fmt"
	"time"

	apperrors "cabin-backend/errors"
	"cabin-backend/models"
)

// AvailabilityResult is the answer to a read-only availability query.
type AvailabilityResult struct {
	Available bool             `json:"available"`
	Conflicts []models.Booking `json:"conflicts"`
}

// AvailabilityService answers whether a cabin can be booked for a date range.
// Only active and pending bookings occupy the calendar; ranges are half-open,
// so back-to-back stays are allowed.
type AvailabilityService struct {
	store Store
}

func NewAvailabilityService(store Store) *AvailabilityService {
	return &AvailabilityService{store: store}
}

// findConflicts is shared between the read-only service and the booking
// transaction, which runs it against a tx-bound store.
func findConflicts(ctx context.Context, s Store, cabinID uint, checkIn, checkOut time.Time, excludeBookingID uint) ([]models.Booking, error) {
	blocking, err := s.BlockingBookings(ctx, cabinID, excludeBookingID)
	if err != nil {
		// Fail closed: a lookup failure is an infrastructure error, never
		// an implicit "available".
		return nil, fmt.Errorf("fetching bookings for cabin %d: %w", cabinID, err)
	}

	in := DateOnly(checkIn)
	out := DateOnly(checkOut)

	conflicts := make([]models.Booking, 0)
	for _, b := range blocking {
		if b.OverlapsRange(in, out) {
			conflicts = append(conflicts, b)
		}
	}
	return conflicts, nil
}

// FindConflicts returns the bookings that collide with [checkIn, checkOut)
// on the given cabin, for user-facing diagnostics.
func (s *AvailabilityService) FindConflicts(ctx context.Context, cabinID uint, checkIn, checkOut time.Time, excludeBookingID uint) ([]models.Booking, error) {
	return findConflicts(ctx, s.store, cabinID, checkIn, checkOut, excludeBookingID)
}

// IsAvailable reports whether the cabin has no colliding booking in the range.
func (s *AvailabilityService) IsAvailable(ctx context.Context, cabinID uint, checkIn, checkOut time.Time, excludeBookingID uint) (bool, error) {
	conflicts, err := s.FindConflicts(ctx, cabinID, checkIn, checkOut, excludeBookingID)
	if err != nil {
		return false, err
	}
	return len(conflicts) == 0, nil
}

// Check packages the conflict scan for callers that want both the verdict and
// the colliding bookings. An empty or inverted range is rejected up front: a
// degenerate interval overlaps nothing, so scanning it would produce a
// meaningless answer.
func (s *AvailabilityService) Check(ctx context.Context, cabinID uint, checkIn, checkOut time.Time, excludeBookingID uint) (*AvailabilityResult, error) {
	if !DateOnly(checkOut).After(DateOnly(checkIn)) {
		return nil, apperrors.InvalidDateRange("check-out must be after check-in")
	}
	conflicts, err := s.FindConflicts(ctx, cabinID, checkIn, checkOut, excludeBookingID)
	if err != nil {
		return nil, asEngineError(err)
	}
	return &AvailabilityResult{Available: len(conflicts) == 0, Conflicts: conflicts}, nil
}
