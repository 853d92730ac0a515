package services

import (
	"context"
	"errors"

	"cabin-backend/models"
)

// Sentinel store errors. Implementations translate their driver errors into
// these so the engine never inspects driver types itself.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
)

// Store is the persistence gateway the reservation engine runs against.
// The gorm implementation lives in the repository package; tests use an
// in-memory fake.
type Store interface {
	CabinByID(ctx context.Context, id uint) (*models.Cabin, error)
	// CabinByIDForUpdate locks the cabin row for the rest of the enclosing
	// transaction. Outside a transaction it behaves like CabinByID.
	CabinByIDForUpdate(ctx context.Context, id uint) (*models.Cabin, error)
	ActiveCabins(ctx context.Context) ([]models.Cabin, error)
	SaveCabin(ctx context.Context, cabin *models.Cabin) error

	GuestByPhone(ctx context.Context, phone string) (*models.Guest, error)
	SaveGuest(ctx context.Context, guest *models.Guest) error
	Guests(ctx context.Context) ([]models.Guest, error)

	BookingByID(ctx context.Context, id uint) (*models.Booking, error)
	// BlockingBookings returns the cabin's bookings whose status still
	// occupies the calendar (active or pending), ordered by check-in date.
	// excludeBookingID skips one booking, used when editing it against
	// itself; zero means no exclusion.
	BlockingBookings(ctx context.Context, cabinID, excludeBookingID uint) ([]models.Booking, error)
	Bookings(ctx context.Context, status models.BookingStatus) ([]models.Booking, error)
	CreateBooking(ctx context.Context, booking *models.Booking) error
	UpdateBooking(ctx context.Context, booking *models.Booking) error

	UserByID(ctx context.Context, id uint) (*models.User, error)

	// InTransaction runs fn against a store bound to one transaction.
	// An error from fn rolls everything back.
	InTransaction(ctx context.Context, fn func(Store) error) error
}
