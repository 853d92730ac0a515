package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperrors "cabin-backend/errors"
	"cabin-backend/models"
	"cabin-backend/utils"
)

// GuestUpsert carries the guest identity submitted with a booking. Name
// fields may be blank for self-service bookings.
type GuestUpsert struct {
	Phone      string
	Surname    string
	FirstName  string
	MiddleName string
	Email      string
}

// GuestRegistry reconciles guest identity. The phone number (trimmed) is the
// business key: repeat bookings from the same phone update one record.
type GuestRegistry struct {
	store Store
}

func NewGuestRegistry(store Store) *GuestRegistry {
	return &GuestRegistry{store: store}
}

// Upsert finds or creates the guest for the given phone. See upsertGuest.
func (r *GuestRegistry) Upsert(ctx context.Context, in GuestUpsert) (*models.Guest, error) {
	return upsertGuest(ctx, r.store, in)
}

// ByPhone looks a guest up by the normalized phone key.
func (r *GuestRegistry) ByPhone(ctx context.Context, phone string) (*models.Guest, error) {
	return r.store.GuestByPhone(ctx, utils.NormalizePhone(phone))
}

// List returns all guests for the directory screens.
func (r *GuestRegistry) List(ctx context.Context) ([]models.Guest, error) {
	return r.store.Guests(ctx)
}

// upsertGuest runs the find-or-create against the given store, so the
// booking transaction can execute it on its tx-bound store.
//
// On a match the submitted name overwrites the stored one, except that blank
// submitted names (self-service bookings) keep whatever is on record. A new
// email overwrites, an empty one does not. Two callers racing on a new phone
// are resolved by the unique constraint: the loser re-reads and updates.
func upsertGuest(ctx context.Context, s Store, in GuestUpsert) (*models.Guest, error) {
	phone := utils.NormalizePhone(in.Phone)
	if phone == "" {
		return nil, apperrors.ValidationFailed("phone", "phone is required")
	}

	guest, err := s.GuestByPhone(ctx, phone)
	switch {
	case err == nil:
		// fall through to update
	case errors.Is(err, ErrNotFound):
		created := &models.Guest{
			Surname:    strings.TrimSpace(in.Surname),
			FirstName:  strings.TrimSpace(in.FirstName),
			MiddleName: strings.TrimSpace(in.MiddleName),
			Phone:      phone,
			Email:      strings.TrimSpace(in.Email),
		}
		createErr := s.SaveGuest(ctx, created)
		if createErr == nil {
			return created, nil
		}
		if !errors.Is(createErr, ErrDuplicate) {
			return nil, fmt.Errorf("creating guest: %w", createErr)
		}
		// Lost the race: someone inserted this phone first. Re-read and
		// continue as an update.
		guest, err = s.GuestByPhone(ctx, phone)
		if err != nil {
			return nil, fmt.Errorf("re-reading guest after duplicate: %w", err)
		}
	default:
		return nil, fmt.Errorf("looking up guest by phone: %w", err)
	}

	submitted := models.Guest{
		Surname:    strings.TrimSpace(in.Surname),
		FirstName:  strings.TrimSpace(in.FirstName),
		MiddleName: strings.TrimSpace(in.MiddleName),
	}
	if submitted.HasName() {
		guest.Surname = submitted.Surname
		guest.FirstName = submitted.FirstName
		guest.MiddleName = submitted.MiddleName
	}
	if email := strings.TrimSpace(in.Email); email != "" {
		guest.Email = email
	}

	if err := s.SaveGuest(ctx, guest); err != nil {
		return nil, fmt.Errorf("updating guest %d: %w", guest.ID, err)
	}
	return guest, nil
}
