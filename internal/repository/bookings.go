package repository

import (
	"fmt"
	"sync"

	apperrors "placehub/internal/errors"
	"placehub/internal/models"
	"placehub/internal/storage"
)

// BookingRepository guards the bookings collection.
type BookingRepository struct {
	mu       sync.RWMutex
	store    *storage.Store
	bookings []models.Booking
}

func NewBookingRepository(store *storage.Store, bookings []models.Booking) *BookingRepository {
	return &BookingRepository{store: store, bookings: bookings}
}

// ListAll returns a copy of every booking in stored order.
func (r *BookingRepository) ListAll() []models.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out
}

// ListByPlace returns the bookings for one place in stored order.
func (r *BookingRepository) ListByPlace(placeID int64) []models.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Booking, 0)
	for _, b := range r.bookings {
		if b.PlaceID == placeID {
			out = append(out, b)
		}
	}
	return out
}

// GetByID returns the booking with the given id.
func (r *BookingRepository) GetByID(id int64) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.bookings {
		if r.bookings[i].ID == id {
			booking := r.bookings[i]
			return &booking, nil
		}
	}
	return nil, fmt.Errorf("booking %d: %w", id, apperrors.ErrNotFound)
}

// Create appends the booking under the next id and persists. IDs are
// max-existing+1 starting at 1, allocated globally across all places, so an
// id is only consumed when the append actually happens.
func (r *BookingRepository) Create(booking models.Booking) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var maxID int64
	for _, b := range r.bookings {
		if b.ID > maxID {
			maxID = b.ID
		}
	}
	booking.ID = maxID + 1

	updated := make([]models.Booking, len(r.bookings), len(r.bookings)+1)
	copy(updated, r.bookings)
	updated = append(updated, booking)

	if err := r.store.SaveBookings(updated); err != nil {
		return nil, fmt.Errorf("failed to persist bookings: %w", err)
	}
	r.bookings = updated

	return &booking, nil
}

// UpdateStatus replaces a booking's status and persists. The caller has
// already validated the status value and authorized against the booking's
// place.
func (r *BookingRepository) UpdateStatus(id int64, status string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("booking %d: %w", id, apperrors.ErrNotFound)
	}

	updated := make([]models.Booking, len(r.bookings))
	copy(updated, r.bookings)
	updated[idx].Status = status

	if err := r.store.SaveBookings(updated); err != nil {
		return nil, fmt.Errorf("failed to persist bookings: %w", err)
	}
	r.bookings = updated

	booking := updated[idx]
	return &booking, nil
}
