package service

import (
	"context"
	"fmt"

	"placehub/internal/auth"
	apperrors "placehub/internal/errors"
	"placehub/internal/logger"
	"placehub/internal/models"
	"placehub/internal/repository"
)

type PlaceService struct {
	placeRepo *repository.PlaceRepository
	sessions  *auth.Service
}

func NewPlaceService(placeRepo *repository.PlaceRepository, sessions *auth.Service) *PlaceService {
	return &PlaceService{placeRepo: placeRepo, sessions: sessions}
}

// List returns every place with its live seat availability.
func (s *PlaceService) List(ctx context.Context) []models.Place {
	return s.placeRepo.List()
}

// UpdateSeats replaces a place's free seat count on behalf of a manager.
// Re-issuing the same value is a no-op in effect.
func (s *PlaceService) UpdateSeats(ctx context.Context, mgr *models.Manager, placeID int64, freeSeats int) (*models.Place, error) {
	if !s.sessions.Authorize(mgr, placeID) {
		return nil, fmt.Errorf("manager %s may not manage place %d: %w",
			mgr.Username, placeID, apperrors.ErrForbidden)
	}

	place, err := s.placeRepo.UpdateFreeSeats(placeID, freeSeats)
	if err != nil {
		return nil, err
	}

	logger.WithManager(mgr.Username).Info("Free seats updated",
		"place_id", place.ID,
		"free_seats", place.FreeSeats)
	return place, nil
}
