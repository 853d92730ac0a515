package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	apperrors "cabin-backend/errors"
	"cabin-backend/models"
)

// Business bounds for cabin facts.
const (
	MinCabinNameLength = 3
	MaxCabinNameLength = 100
	MinCabinCapacity   = 1
	MaxCabinCapacity   = 50
)

var (
	minCabinPrice = decimal.NewFromInt(500)
	maxCabinPrice = decimal.NewFromInt(100000)
)

const activeCabinsCacheKey = "cabins:active"

// CabinService manages the cabin inventory the reservation engine books
// against. The active-cabin list is read on every booking screen, so it is
// cached; any write invalidates the cache.
type CabinService struct {
	store Store
	cache *Cache
}

func NewCabinService(store Store, cache *Cache) *CabinService {
	return &CabinService{store: store, cache: cache}
}

// ListActive returns active cabins ordered by name.
func (s *CabinService) ListActive(ctx context.Context) ([]models.Cabin, error) {
	var cabins []models.Cabin
	if s.cache.Get(ctx, activeCabinsCacheKey, &cabins) {
		return cabins, nil
	}

	cabins, err := s.store.ActiveCabins(ctx)
	if err != nil {
		return nil, asEngineError(err)
	}
	s.cache.Set(ctx, activeCabinsCacheKey, cabins)
	return cabins, nil
}

// GetByID loads one cabin.
func (s *CabinService) GetByID(ctx context.Context, id uint) (*models.Cabin, error) {
	cabin, err := s.store.CabinByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperrors.ValidationFailed("cabin", "cabin not found")
		}
		return nil, asEngineError(err)
	}
	return cabin, nil
}

// Create adds a cabin after checking the business bounds.
func (s *CabinService) Create(ctx context.Context, session models.Session, cabin *models.Cabin) error {
	if !session.Role.CanManageCabins() {
		return apperrors.PermissionDenied("role is not allowed to manage cabins")
	}
	if err := validateCabin(cabin); err != nil {
		return err
	}
	cabin.IsActive = true
	if err := s.store.SaveCabin(ctx, cabin); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return apperrors.ValidationFailed("name", "a cabin with this name already exists")
		}
		return asEngineError(err)
	}
	s.cache.Delete(ctx, activeCabinsCacheKey)
	return nil
}

// Update changes a cabin's facts. Existing bookings keep their snapshotted
// price regardless of price changes here.
func (s *CabinService) Update(ctx context.Context, session models.Session, cabin *models.Cabin) error {
	if !session.Role.CanManageCabins() {
		return apperrors.PermissionDenied("role is not allowed to manage cabins")
	}
	if cabin.ID == 0 {
		return apperrors.ValidationFailed("cabin", "cabin id is required")
	}
	if err := validateCabin(cabin); err != nil {
		return err
	}
	if _, err := s.store.CabinByID(ctx, cabin.ID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.ValidationFailed("cabin", "cabin not found")
		}
		return asEngineError(err)
	}
	if err := s.store.SaveCabin(ctx, cabin); err != nil {
		return asEngineError(err)
	}
	s.cache.Delete(ctx, activeCabinsCacheKey)
	return nil
}

// Deactivate takes a cabin off the booking screens without touching its
// booking history.
func (s *CabinService) Deactivate(ctx context.Context, session models.Session, id uint) error {
	if !session.Role.CanManageCabins() {
		return apperrors.PermissionDenied("role is not allowed to manage cabins")
	}
	cabin, err := s.store.CabinByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.ValidationFailed("cabin", "cabin not found")
		}
		return asEngineError(err)
	}
	cabin.IsActive = false
	if err := s.store.SaveCabin(ctx, cabin); err != nil {
		return asEngineError(err)
	}
	s.cache.Delete(ctx, activeCabinsCacheKey)
	return nil
}

func validateCabin(cabin *models.Cabin) error {
	name := strings.TrimSpace(cabin.Name)
	if len([]rune(name)) < MinCabinNameLength {
		return apperrors.ValidationFailed("name", fmt.Sprintf("name must be at least %d characters", MinCabinNameLength))
	}
	if len([]rune(name)) > MaxCabinNameLength {
		return apperrors.ValidationFailed("name", fmt.Sprintf("name cannot be longer than %d characters", MaxCabinNameLength))
	}
	if cabin.MaxGuests < MinCabinCapacity || cabin.MaxGuests > MaxCabinCapacity {
		return apperrors.ValidationFailed("maxGuests", fmt.Sprintf("capacity must be between %d and %d", MinCabinCapacity, MaxCabinCapacity))
	}
	if cabin.PricePerNight.LessThan(minCabinPrice) || cabin.PricePerNight.GreaterThan(maxCabinPrice) {
		return apperrors.ValidationFailed("pricePerNight", fmt.Sprintf("price per night must be between %s and %s", minCabinPrice, maxCabinPrice))
	}
	cabin.Name = name
	return nil
}
