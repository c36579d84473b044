package repository

import (
	"placehub/internal/storage"
)

// Repositories are the in-memory entity stores. Each one is the single source
// of truth for its collection during process lifetime and is synchronized to
// the file store after every mutation.
type Repositories struct {
	Places   *PlaceRepository
	Bookings *BookingRepository
	Ratings  *RatingRepository
}

// NewRepositories loads every collection from the store and wraps each in its
// own repository.
func NewRepositories(store *storage.Store) (*Repositories, error) {
	places, err := store.LoadPlaces()
	if err != nil {
		return nil, err
	}
	bookings, err := store.LoadBookings()
	if err != nil {
		return nil, err
	}
	ratings, err := store.LoadRatings()
	if err != nil {
		return nil, err
	}

	return &Repositories{
		Places:   NewPlaceRepository(store, places),
		Bookings: NewBookingRepository(store, bookings),
		Ratings:  NewRatingRepository(store, ratings),
	}, nil
}
