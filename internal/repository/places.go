package repository

import (
	"fmt"
	"sync"

	apperrors "placehub/internal/errors"
	"placehub/internal/models"
	"placehub/internal/storage"
)

// PlaceRepository guards the places collection. Places are seeded at startup
// and never deleted; the only mutation is the free seat count.
type PlaceRepository struct {
	mu     sync.RWMutex
	store  *storage.Store
	places []models.Place
}

func NewPlaceRepository(store *storage.Store, places []models.Place) *PlaceRepository {
	return &PlaceRepository{store: store, places: places}
}

// List returns a copy of all places in stored order.
func (r *PlaceRepository) List() []models.Place {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Place, len(r.places))
	copy(out, r.places)
	return out
}

// GetByID returns the place with the given id.
func (r *PlaceRepository) GetByID(id int64) (*models.Place, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.places {
		if r.places[i].ID == id {
			place := r.places[i]
			return &place, nil
		}
	}
	return nil, fmt.Errorf("place %d: %w", id, apperrors.ErrNotFound)
}

// UpdateFreeSeats replaces the free seat count for a place. The whole
// find-validate-replace-persist sequence runs under the write lock, and the
// in-memory collection is only swapped once the save succeeded, so a failed
// write leaves memory and disk on the previous state.
func (r *PlaceRepository) UpdateFreeSeats(id int64, freeSeats int) (*models.Place, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.places {
		if r.places[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("place %d: %w", id, apperrors.ErrNotFound)
	}

	if freeSeats < 0 || freeSeats > r.places[idx].TotalSeats {
		return nil, fmt.Errorf("free_seats must be between 0 and %d: %w",
			r.places[idx].TotalSeats, apperrors.ErrInvalidArgument)
	}

	updated := make([]models.Place, len(r.places))
	copy(updated, r.places)
	updated[idx].FreeSeats = freeSeats

	if err := r.store.SavePlaces(updated); err != nil {
		return nil, fmt.Errorf("failed to persist places: %w", err)
	}
	r.places = updated

	place := updated[idx]
	return &place, nil
}
