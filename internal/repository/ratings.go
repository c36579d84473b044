package repository

import (
	"fmt"
	"sync"

	"placehub/internal/models"
	"placehub/internal/storage"
)

// RatingRepository guards the ratings collection. Ratings are append-only:
// once created they are never updated or deleted.
type RatingRepository struct {
	mu      sync.RWMutex
	store   *storage.Store
	ratings []models.Rating
}

func NewRatingRepository(store *storage.Store, ratings []models.Rating) *RatingRepository {
	return &RatingRepository{store: store, ratings: ratings}
}

// ListAll returns a copy of every rating in insertion order. The aggregation
// engine depends on this ordering for last_status.
func (r *RatingRepository) ListAll() []models.Rating {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Rating, len(r.ratings))
	copy(out, r.ratings)
	return out
}

// ListByPlace returns one place's ratings in insertion order.
func (r *RatingRepository) ListByPlace(placeID int64) []models.Rating {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Rating, 0)
	for _, rating := range r.ratings {
		if rating.PlaceID == placeID {
			out = append(out, rating)
		}
	}
	return out
}

// Create appends the rating under the next id and persists. Same allocation
// rule as bookings: max-existing+1, global across places.
func (r *RatingRepository) Create(rating models.Rating) (*models.Rating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var maxID int64
	for _, existing := range r.ratings {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	rating.ID = maxID + 1

	updated := make([]models.Rating, len(r.ratings), len(r.ratings)+1)
	copy(updated, r.ratings)
	updated = append(updated, rating)

	if err := r.store.SaveRatings(updated); err != nil {
		return nil, fmt.Errorf("failed to persist ratings: %w", err)
	}
	r.ratings = updated

	return &rating, nil
}
