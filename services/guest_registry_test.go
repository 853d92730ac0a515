package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "cabin-backend/errors"
	"cabin-backend/models"
)

func TestGuestRegistryUpsert(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a new guest", func(t *testing.T) {
		store := newFakeStore()
		reg := NewGuestRegistry(store)

		guest, err := reg.Upsert(ctx, GuestUpsert{
			Phone:     " +79991234567 ",
			Surname:   "Ivanov",
			FirstName: "Ivan",
			Email:     "ivan@example.com",
		})
		require.NoError(t, err)
		assert.NotZero(t, guest.ID)
		assert.Equal(t, "+79991234567", guest.Phone)
		assert.Equal(t, "Ivanov", guest.Surname)
	})

	t.Run("repeat upsert reuses the record", func(t *testing.T) {
		store := newFakeStore()
		reg := NewGuestRegistry(store)

		first, err := reg.Upsert(ctx, GuestUpsert{Phone: "+79991234567", Surname: "Ivanov"})
		require.NoError(t, err)
		second, err := reg.Upsert(ctx, GuestUpsert{Phone: "+79991234567", Surname: "Ivanov"})
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		guests, err := reg.List(ctx)
		require.NoError(t, err)
		assert.Len(t, guests, 1)
	})

	t.Run("submitted name overwrites stored name", func(t *testing.T) {
		store := newFakeStore()
		reg := NewGuestRegistry(store)

		_, err := reg.Upsert(ctx, GuestUpsert{Phone: "+79991234567", Surname: "Ivanov", FirstName: "Ivan"})
		require.NoError(t, err)
		guest, err := reg.Upsert(ctx, GuestUpsert{Phone: "+79991234567", Surname: "Petrov", FirstName: "Petr"})
		require.NoError(t, err)

		assert.Equal(t, "Petrov", guest.Surname)
		assert.Equal(t, "Petr", guest.FirstName)
	})

	t.Run("blank submitted name keeps stored name", func(t *testing.T) {
		store := newFakeStore()
		reg := NewGuestRegistry(store)

		_, err := reg.Upsert(ctx, GuestUpsert{Phone: "+79991234567", Surname: "Ivanov", FirstName: "Ivan"})
		require.NoError(t, err)
		guest, err := reg.Upsert(ctx, GuestUpsert{Phone: "+79991234567"})
		require.NoError(t, err)

		assert.Equal(t, "Ivanov", guest.Surname)
		assert.Equal(t, "Ivan", guest.FirstName)
	})

	t.Run("empty submitted email keeps stored email", func(t *testing.T) {
		store := newFakeStore()
		reg := NewGuestRegistry(store)

		_, err := reg.Upsert(ctx, GuestUpsert{Phone: "+79991234567", Surname: "Ivanov", Email: "ivan@example.com"})
		require.NoError(t, err)
		guest, err := reg.Upsert(ctx, GuestUpsert{Phone: "+79991234567", Surname: "Ivanov"})
		require.NoError(t, err)

		assert.Equal(t, "ivan@example.com", guest.Email)

		guest, err = reg.Upsert(ctx, GuestUpsert{Phone: "+79991234567", Surname: "Ivanov", Email: "new@example.com"})
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", guest.Email)
	})

	t.Run("missing phone is rejected", func(t *testing.T) {
		store := newFakeStore()
		reg := NewGuestRegistry(store)

		_, err := reg.Upsert(ctx, GuestUpsert{Phone: "   ", Surname: "Ivanov"})
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeValidationFailed, apperrors.CodeOf(err))
	})

	t.Run("lost insert race falls back to update", func(t *testing.T) {
		store := newFakeStore()
		winner := store.addGuest(models.Guest{Surname: "Ivanov", Phone: "+79991234567"})
		// The first lookup misses, as if another caller inserted this phone
		// between our read and our write; the insert then hits the unique
		// constraint and the upsert must recover by re-reading.
		store.guestByPhoneMissOnce = true
		reg := NewGuestRegistry(store)

		guest, err := reg.Upsert(ctx, GuestUpsert{Phone: "+79991234567", Surname: "Petrov"})
		require.NoError(t, err)
		assert.Equal(t, winner.ID, guest.ID)
		assert.Equal(t, "Petrov", guest.Surname)
	})
}

func TestGuestRegistryByPhone(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.addGuest(models.Guest{Surname: "Ivanov", Phone: "+79991234567"})
	reg := NewGuestRegistry(store)

	guest, err := reg.ByPhone(ctx, " +79991234567 ")
	require.NoError(t, err)
	assert.Equal(t, "Ivanov", guest.Surname)

	_, err = reg.ByPhone(ctx, "+70000000000")
	assert.ErrorIs(t, err, ErrNotFound)
}
