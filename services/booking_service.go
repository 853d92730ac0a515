package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	apperrors "cabin-backend/errors"
	"cabin-backend/models"
	"cabin-backend/utils"
)

// MaxBookingDays is the business ceiling on a single stay.
const MaxBookingDays = 365

// CreateBookingRequest is one booking submission. Zero dates mean "not
// provided". SelfService relaxes the guest-name requirement; the permission
// gate on the caller's role applies regardless.
type CreateBookingRequest struct {
	CabinID      uint
	GuestName    string
	GuestPhone   string
	GuestEmail   string
	CheckInDate  time.Time
	CheckOutDate time.Time
	SelfService  bool
}

// UpdateBookingRequest changes an existing booking's dates. Nights and total
// price are recomputed from the new range.
type UpdateBookingRequest struct {
	CheckInDate  time.Time
	CheckOutDate time.Time
}

// BookingResult reports a committed booking back to the caller.
type BookingResult struct {
	BookingID  uint            `json:"bookingId"`
	GuestID    uint            `json:"guestId"`
	Nights     int             `json:"nights"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// BookingCounts summarizes bookings per status for the list screens.
type BookingCounts struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

// BookingService orchestrates booking creation and mutation: it validates,
// re-checks availability, resolves the guest, prices the stay, and commits,
// all inside one store transaction, so two callers can never both book the
// same cabin for overlapping dates.
type BookingService struct {
	store Store
	now   func() time.Time
}

func NewBookingService(store Store) *BookingService {
	return &BookingService{store: store, now: time.Now}
}

// Create books a cabin. Steps, each a hard precondition for the next:
// authorization, field validation, availability re-check, guest upsert,
// price computation, insert. Steps after validation run in one transaction
// holding a row lock on the cabin, so the pre-check cannot go stale between
// check and commit. The guest upsert is idempotent and may survive a rolled
// back booking; the booking insert itself is all-or-nothing.
func (s *BookingService) Create(ctx context.Context, session models.Session, req CreateBookingRequest) (*BookingResult, error) {
	if !session.Role.CanCreateBooking() {
		return nil, apperrors.PermissionDenied("role is not allowed to create bookings")
	}

	if err := s.validateRequest(req.CabinID, req.CheckInDate, req.CheckOutDate); err != nil {
		return nil, err
	}
	if !req.SelfService {
		if err := validateGuestFields(req.GuestName, req.GuestPhone, req.GuestEmail); err != nil {
			return nil, err
		}
	} else if utils.NormalizePhone(req.GuestPhone) == "" {
		// Even self-service bookings need the identity key.
		return nil, apperrors.ValidationFailed("phone", "phone is required")
	}

	surname, firstName, middleName := utils.ParseFullName(req.GuestName)

	var result BookingResult
	err := s.store.InTransaction(ctx, func(tx Store) error {
		cabin, err := tx.CabinByIDForUpdate(ctx, req.CabinID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return apperrors.ValidationFailed("cabin", "cabin not found")
			}
			return fmt.Errorf("locking cabin %d: %w", req.CabinID, err)
		}
		if !cabin.IsActive {
			return apperrors.ValidationFailed("cabin", "cabin is not active")
		}

		conflicts, err := findConflicts(ctx, tx, cabin.ID, req.CheckInDate, req.CheckOutDate, 0)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return apperrors.CabinUnavailable(conflicts)
		}

		guest, err := upsertGuest(ctx, tx, GuestUpsert{
			Phone:      req.GuestPhone,
			Surname:    surname,
			FirstName:  firstName,
			MiddleName: middleName,
			Email:      req.GuestEmail,
		})
		if err != nil {
			return err
		}

		quote := CalculateStay(req.CheckInDate, req.CheckOutDate, cabin.PricePerNight)
		if quote.Nights <= 0 {
			return apperrors.InvalidDateRange("check-out must be after check-in")
		}

		booking := &models.Booking{
			CabinID:      cabin.ID,
			GuestID:      guest.ID,
			CheckInDate:  DateOnly(req.CheckInDate),
			CheckOutDate: DateOnly(req.CheckOutDate),
			Nights:       quote.Nights,
			TotalPrice:   quote.TotalPrice,
			Status:       models.BookingActive,
			CreatedBy:    session.UserID,
			CreatedAt:    s.now(),
		}
		if err := tx.CreateBooking(ctx, booking); err != nil {
			if errors.Is(err, ErrDuplicate) {
				// Conflict surfaced only at commit time; no conflict detail
				// is guaranteed here. The caller should re-run the
				// availability query before retrying.
				return apperrors.CabinUnavailable(nil)
			}
			return fmt.Errorf("inserting booking: %w", err)
		}

		result = BookingResult{
			BookingID:  booking.ID,
			GuestID:    guest.ID,
			Nights:     quote.Nights,
			TotalPrice: quote.TotalPrice,
		}
		return nil
	})
	if err != nil {
		return nil, asEngineError(err)
	}
	return &result, nil
}

// Update edits an existing booking's dates, running the same validation and
// availability re-check as creation but excluding the booking itself from
// the conflict scan. Nights and price are recomputed before saving.
func (s *BookingService) Update(ctx context.Context, session models.Session, bookingID uint, req UpdateBookingRequest) (*BookingResult, error) {
	if !session.Role.CanEditBooking() {
		return nil, apperrors.PermissionDenied("role is not allowed to edit bookings")
	}

	var result BookingResult
	err := s.store.InTransaction(ctx, func(tx Store) error {
		booking, err := tx.BookingByID(ctx, bookingID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return apperrors.ValidationFailed("booking", "booking not found")
			}
			return fmt.Errorf("loading booking %d: %w", bookingID, err)
		}
		if booking.Status == models.BookingCancelled {
			return apperrors.ValidationFailed("booking", "booking is cancelled")
		}

		if err := s.validateRequest(booking.CabinID, req.CheckInDate, req.CheckOutDate); err != nil {
			return err
		}

		// No IsActive check here: deactivation only closes the cabin to new
		// bookings, and this booking was sold while the cabin was active.
		// Date changes on it stay legal.
		cabin, err := tx.CabinByIDForUpdate(ctx, booking.CabinID)
		if err != nil {
			return fmt.Errorf("locking cabin %d: %w", booking.CabinID, err)
		}

		conflicts, err := findConflicts(ctx, tx, cabin.ID, req.CheckInDate, req.CheckOutDate, booking.ID)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return apperrors.CabinUnavailable(conflicts)
		}

		quote := CalculateStay(req.CheckInDate, req.CheckOutDate, cabin.PricePerNight)
		if quote.Nights <= 0 {
			return apperrors.InvalidDateRange("check-out must be after check-in")
		}

		booking.CheckInDate = DateOnly(req.CheckInDate)
		booking.CheckOutDate = DateOnly(req.CheckOutDate)
		booking.Nights = quote.Nights
		booking.TotalPrice = quote.TotalPrice
		if err := tx.UpdateBooking(ctx, booking); err != nil {
			return fmt.Errorf("saving booking %d: %w", booking.ID, err)
		}

		result = BookingResult{
			BookingID:  booking.ID,
			GuestID:    booking.GuestID,
			Nights:     quote.Nights,
			TotalPrice: quote.TotalPrice,
		}
		return nil
	})
	if err != nil {
		return nil, asEngineError(err)
	}
	return &result, nil
}

// Cancel soft-deletes a booking: the status flips to cancelled and the row
// stays, freeing the date range for new bookings.
func (s *BookingService) Cancel(ctx context.Context, session models.Session, bookingID uint) error {
	if !session.Role.CanCancelBooking() {
		return apperrors.PermissionDenied("role is not allowed to cancel bookings")
	}

	err := s.store.InTransaction(ctx, func(tx Store) error {
		booking, err := tx.BookingByID(ctx, bookingID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return apperrors.ValidationFailed("booking", "booking not found")
			}
			return fmt.Errorf("loading booking %d: %w", bookingID, err)
		}
		if booking.Status == models.BookingCancelled {
			return nil
		}
		booking.Status = models.BookingCancelled
		if err := tx.UpdateBooking(ctx, booking); err != nil {
			return fmt.Errorf("cancelling booking %d: %w", booking.ID, err)
		}
		return nil
	})
	return asEngineError(err)
}

// List returns bookings, optionally filtered by status (empty = all).
func (s *BookingService) List(ctx context.Context, status models.BookingStatus) ([]models.Booking, error) {
	bookings, err := s.store.Bookings(ctx, status)
	if err != nil {
		return nil, asEngineError(err)
	}
	return bookings, nil
}

// Counts tallies bookings per status for the list screens.
func (s *BookingService) Counts(ctx context.Context) (*BookingCounts, error) {
	bookings, err := s.store.Bookings(ctx, "")
	if err != nil {
		return nil, asEngineError(err)
	}
	counts := &BookingCounts{Total: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case models.BookingActive:
			counts.Active++
		case models.BookingPending:
			counts.Pending++
		case models.BookingCompleted:
			counts.Completed++
		case models.BookingCancelled:
			counts.Cancelled++
		}
	}
	return counts, nil
}

// GetByID loads one booking with its cabin and guest.
func (s *BookingService) GetByID(ctx context.Context, id uint) (*models.Booking, error) {
	booking, err := s.store.BookingByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperrors.ValidationFailed("booking", "booking not found")
		}
		return nil, asEngineError(err)
	}
	return booking, nil
}

// validateRequest checks the cabin reference and the date range: both dates
// present, check-in not in the past (booking for today is fine), check-out
// strictly after check-in, and at most MaxBookingDays nights.
func (s *BookingService) validateRequest(cabinID uint, checkIn, checkOut time.Time) error {
	if cabinID == 0 {
		return apperrors.ValidationFailed("cabin", "cabin must be selected")
	}
	if checkIn.IsZero() || checkOut.IsZero() {
		return apperrors.ValidationFailed("dates", "check-in and check-out dates are required")
	}

	in := DateOnly(checkIn)
	out := DateOnly(checkOut)
	today := DateOnly(s.now())

	if in.Before(today) {
		return apperrors.ValidationFailed("checkInDate", "check-in date cannot be in the past")
	}
	if !out.After(in) {
		return apperrors.InvalidDateRange("check-out must be after check-in")
	}
	if int(out.Sub(in).Hours()/24) > MaxBookingDays {
		return apperrors.ValidationFailed("checkOutDate", "booking cannot be longer than one year")
	}
	return nil
}

// validateGuestFields applies the staff-entry rules: name and a well-formed
// phone are required, email only has to parse when present.
func validateGuestFields(name, phone, email string) error {
	if utils.ComposeFullName(utils.ParseFullName(name)) == "" {
		return apperrors.ValidationFailed("guestName", "guest name is required")
	}
	if !utils.IsValidPhone(phone) {
		return apperrors.ValidationFailed("phone", "phone must contain 10 to 15 digits")
	}
	if email != "" && !utils.IsValidEmail(email) {
		return apperrors.ValidationFailed("email", "invalid email format")
	}
	return nil
}

// asEngineError passes structured engine errors through and wraps anything
// else as an infrastructure failure, so a store outage is never mistaken for
// a business outcome.
func asEngineError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := apperrors.As(err); ok {
		return err
	}
	return apperrors.Infrastructure("store operation failed", err)
}
