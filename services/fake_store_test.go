package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"cabin-backend/models"
)

// fakeStore is the in-memory Store used across the service tests. Its
// transaction serializes on a mutex, which stands in for the cabin row lock.
type fakeStore struct {
	mu sync.Mutex

	cabins   map[uint]*models.Cabin
	guests   map[uint]*models.Guest
	bookings map[uint]*models.Booking
	users    map[uint]*models.User

	nextCabinID   uint
	nextGuestID   uint
	nextBookingID uint

	// error injection
	blockingErr          error
	createBookingErr     error
	guestByPhoneMissOnce bool
	failInTransaction    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		cabins:   map[uint]*models.Cabin{},
		guests:   map[uint]*models.Guest{},
		bookings: map[uint]*models.Booking{},
		users:    map[uint]*models.User{},
	}
}

func (f *fakeStore) addCabin(c models.Cabin) *models.Cabin {
	f.nextCabinID++
	c.ID = f.nextCabinID
	f.cabins[c.ID] = &c
	return &c
}

func (f *fakeStore) addGuest(g models.Guest) *models.Guest {
	f.nextGuestID++
	g.ID = f.nextGuestID
	f.guests[g.ID] = &g
	return &g
}

func (f *fakeStore) addBooking(b models.Booking) *models.Booking {
	f.nextBookingID++
	b.ID = f.nextBookingID
	f.bookings[b.ID] = &b
	return &b
}

func (f *fakeStore) CabinByID(_ context.Context, id uint) (*models.Cabin, error) {
	c, ok := f.cabins[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (f *fakeStore) CabinByIDForUpdate(ctx context.Context, id uint) (*models.Cabin, error) {
	return f.CabinByID(ctx, id)
}

func (f *fakeStore) ActiveCabins(_ context.Context) ([]models.Cabin, error) {
	var out []models.Cabin
	for _, c := range f.cabins {
		if c.IsActive {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeStore) SaveCabin(_ context.Context, cabin *models.Cabin) error {
	for _, existing := range f.cabins {
		if existing.ID != cabin.ID && strings.EqualFold(existing.Name, cabin.Name) {
			return ErrDuplicate
		}
	}
	if cabin.ID == 0 {
		f.nextCabinID++
		cabin.ID = f.nextCabinID
	}
	copied := *cabin
	f.cabins[cabin.ID] = &copied
	return nil
}

func (f *fakeStore) GuestByPhone(_ context.Context, phone string) (*models.Guest, error) {
	if f.guestByPhoneMissOnce {
		f.guestByPhoneMissOnce = false
		return nil, ErrNotFound
	}
	for _, g := range f.guests {
		if g.Phone == phone {
			copied := *g
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeStore) SaveGuest(_ context.Context, guest *models.Guest) error {
	for _, existing := range f.guests {
		if existing.ID != guest.ID && existing.Phone == guest.Phone {
			return ErrDuplicate
		}
	}
	if guest.ID == 0 {
		f.nextGuestID++
		guest.ID = f.nextGuestID
	}
	copied := *guest
	f.guests[guest.ID] = &copied
	return nil
}

func (f *fakeStore) Guests(_ context.Context) ([]models.Guest, error) {
	var out []models.Guest
	for _, g := range f.guests {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) BookingByID(_ context.Context, id uint) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeStore) BlockingBookings(_ context.Context, cabinID, excludeBookingID uint) ([]models.Booking, error) {
	if f.blockingErr != nil {
		return nil, f.blockingErr
	}
	var out []models.Booking
	for _, b := range f.bookings {
		if b.CabinID != cabinID || b.ID == excludeBookingID {
			continue
		}
		if !b.Status.BlocksAvailability() {
			continue
		}
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CheckInDate.Before(out[j].CheckInDate) })
	return out, nil
}

func (f *fakeStore) Bookings(_ context.Context, status models.BookingStatus) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if status != "" && b.Status != status {
			continue
		}
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) CreateBooking(_ context.Context, booking *models.Booking) error {
	if f.createBookingErr != nil {
		return f.createBookingErr
	}
	f.nextBookingID++
	booking.ID = f.nextBookingID
	copied := *booking
	f.bookings[booking.ID] = &copied
	return nil
}

func (f *fakeStore) UpdateBooking(_ context.Context, booking *models.Booking) error {
	if _, ok := f.bookings[booking.ID]; !ok {
		return ErrNotFound
	}
	copied := *booking
	f.bookings[booking.ID] = &copied
	return nil
}

func (f *fakeStore) UserByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeStore) InTransaction(_ context.Context, fn func(Store) error) error {
	if f.failInTransaction != nil {
		return f.failInTransaction
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(f)
}
