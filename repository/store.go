package repository

import (
	"context"
	"errors"
	"strings"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cabin-backend/models"
	"cabin-backend/services"
)

// GormStore implements services.Store on top of gorm/MySQL. It owns all
// driver-specific concerns: not-found and duplicate-key translation, row
// locking, and transaction scoping.
type GormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return services.ErrNotFound
	}
	if isDuplicate(err) {
		return services.ErrDuplicate
	}
	return err
}

// isDuplicate recognizes unique-constraint violations. MySQL reports error
// 1062; the string check covers other engines behind the same gorm dialect.
func isDuplicate(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique constraint")
}

// ---------------------------------------------------------------
// Cabins
// ---------------------------------------------------------------

func (s *GormStore) CabinByID(ctx context.Context, id uint) (*models.Cabin, error) {
	var cabin models.Cabin
	if err := s.db.WithContext(ctx).First(&cabin, id).Error; err != nil {
		return nil, translate(err)
	}
	return &cabin, nil
}

// CabinByIDForUpdate takes a row lock on the cabin. Inside a transaction
// this serializes concurrent booking attempts on the same cabin, which is
// what makes the availability pre-check authoritative at commit time.
func (s *GormStore) CabinByIDForUpdate(ctx context.Context, id uint) (*models.Cabin, error) {
	var cabin models.Cabin
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&cabin, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &cabin, nil
}

func (s *GormStore) ActiveCabins(ctx context.Context) ([]models.Cabin, error) {
	var cabins []models.Cabin
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&cabins).Error
	if err != nil {
		return nil, translate(err)
	}
	return cabins, nil
}

func (s *GormStore) SaveCabin(ctx context.Context, cabin *models.Cabin) error {
	if cabin.ID == 0 {
		return translate(s.db.WithContext(ctx).Create(cabin).Error)
	}
	return translate(s.db.WithContext(ctx).Save(cabin).Error)
}

// ---------------------------------------------------------------
// Guests
// ---------------------------------------------------------------

func (s *GormStore) GuestByPhone(ctx context.Context, phone string) (*models.Guest, error) {
	var guest models.Guest
	err := s.db.WithContext(ctx).Where("phone = ?", phone).First(&guest).Error
	if err != nil {
		return nil, translate(err)
	}
	return &guest, nil
}

func (s *GormStore) SaveGuest(ctx context.Context, guest *models.Guest) error {
	if guest.ID == 0 {
		return translate(s.db.WithContext(ctx).Create(guest).Error)
	}
	return translate(s.db.WithContext(ctx).Save(guest).Error)
}

func (s *GormStore) Guests(ctx context.Context) ([]models.Guest, error) {
	var guests []models.Guest
	err := s.db.WithContext(ctx).Order("id DESC").Find(&guests).Error
	if err != nil {
		return nil, translate(err)
	}
	return guests, nil
}

// ---------------------------------------------------------------
// Bookings
// ---------------------------------------------------------------

func (s *GormStore) BookingByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.WithContext(ctx).
		Preload("Cabin").
		Preload("Guest").
		First(&booking, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &booking, nil
}

func (s *GormStore) BlockingBookings(ctx context.Context, cabinID, excludeBookingID uint) ([]models.Booking, error) {
	q := s.db.WithContext(ctx).
		Where("cabin_id = ?", cabinID).
		Where("status IN ?", []models.BookingStatus{models.BookingActive, models.BookingPending})
	if excludeBookingID != 0 {
		q = q.Where("id <> ?", excludeBookingID)
	}

	var bookings []models.Booking
	if err := q.Order("check_in_date ASC").Find(&bookings).Error; err != nil {
		return nil, translate(err)
	}
	return bookings, nil
}

func (s *GormStore) Bookings(ctx context.Context, status models.BookingStatus) ([]models.Booking, error) {
	q := s.db.WithContext(ctx).
		Preload("Cabin").
		Preload("Guest")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := q.Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, translate(err)
	}
	return bookings, nil
}

func (s *GormStore) CreateBooking(ctx context.Context, booking *models.Booking) error {
	return translate(s.db.WithContext(ctx).Create(booking).Error)
}

func (s *GormStore) UpdateBooking(ctx context.Context, booking *models.Booking) error {
	return translate(s.db.WithContext(ctx).Save(booking).Error)
}

// ---------------------------------------------------------------
// Users
// ---------------------------------------------------------------

func (s *GormStore) UserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// ---------------------------------------------------------------
// Transactions
// ---------------------------------------------------------------

// InTransaction runs fn against a store bound to one gorm transaction.
// Returning an error rolls back everything fn did, including the booking
// insert. Never a partial booking.
func (s *GormStore) InTransaction(ctx context.Context, fn func(services.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}
