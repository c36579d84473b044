package service

import (
	"context"
	"fmt"

	"placehub/internal/auth"
	"placehub/internal/models"
	"placehub/internal/repository"
)

type AuthService struct {
	sessions  *auth.Service
	placeRepo *repository.PlaceRepository
}

func NewAuthService(sessions *auth.Service, placeRepo *repository.PlaceRepository) *AuthService {
	return &AuthService{sessions: sessions, placeRepo: placeRepo}
}

// Login authenticates a manager and issues a session token. Admins get
// place_id -1 and place name "Admin"; scoped managers get their place's id
// and name.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	token, manager, err := s.sessions.Login(req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	resp := &models.LoginResponse{
		Token:   token,
		IsAdmin: manager.IsAdmin,
	}
	if manager.IsAdmin {
		resp.PlaceID = -1
		resp.PlaceName = "Admin"
		return resp, nil
	}

	place, err := s.placeRepo.GetByID(manager.PlaceID)
	if err != nil {
		return nil, fmt.Errorf("manager %s references a missing place: %w", manager.Username, err)
	}
	resp.PlaceID = place.ID
	resp.PlaceName = place.Name
	return resp, nil
}
