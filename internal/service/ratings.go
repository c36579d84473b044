package service

import (
	"context"
	"fmt"
	"time"

	apperrors "placehub/internal/errors"
	"placehub/internal/models"
	"placehub/internal/repository"
)

type RatingService struct {
	ratingRepo *repository.RatingRepository
	placeRepo  *repository.PlaceRepository
}

func NewRatingService(ratingRepo *repository.RatingRepository, placeRepo *repository.PlaceRepository) *RatingService {
	return &RatingService{ratingRepo: ratingRepo, placeRepo: placeRepo}
}

// Create records an anonymous occupancy report for a place. No session
// required; "I am here" reporting is open to everyone.
func (s *RatingService) Create(ctx context.Context, placeID int64, req *models.CreateRatingRequest) (*models.Rating, error) {
	if _, err := s.placeRepo.GetByID(placeID); err != nil {
		return nil, err
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5: %w", apperrors.ErrInvalidArgument)
	}
	if !models.ValidRatingStatus(req.Status) {
		return nil, fmt.Errorf("status must be one of busy, free, normal: %w", apperrors.ErrInvalidArgument)
	}

	rating := models.Rating{
		PlaceID:   placeID,
		Rating:    req.Rating,
		Status:    req.Status,
		Name:      req.Name,
		Comment:   req.Comment,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	return s.ratingRepo.Create(rating)
}

// ListByPlace returns one place's ratings in submission order.
func (s *RatingService) ListByPlace(ctx context.Context, placeID int64) []models.Rating {
	return s.ratingRepo.ListByPlace(placeID)
}

// Summarize derives one aggregate per place that has at least one rating.
// A single pass in insertion order keeps last_status equal to the most
// recently submitted report, and the mean is folded in incrementally so no
// second pass is needed. Result order is the order place ids were first seen.
func (s *RatingService) Summarize(ctx context.Context) []models.RatingSummary {
	ratings := s.ratingRepo.ListAll()

	index := make(map[int64]int)
	summaries := make([]models.RatingSummary, 0)
	for _, r := range ratings {
		i, seen := index[r.PlaceID]
		if !seen {
			index[r.PlaceID] = len(summaries)
			summaries = append(summaries, models.RatingSummary{
				PlaceID:     r.PlaceID,
				AvgRating:   float64(r.Rating),
				RatingCount: 1,
				LastStatus:  r.Status,
			})
			continue
		}

		sum := &summaries[i]
		count := sum.RatingCount + 1
		sum.AvgRating = (sum.AvgRating*float64(sum.RatingCount) + float64(r.Rating)) / float64(count)
		sum.RatingCount = count
		sum.LastStatus = r.Status
	}
	return summaries
}
