package service

import (
	"placehub/internal/auth"
	"placehub/internal/repository"
)

type Services struct {
	Auth     *AuthService
	Places   *PlaceService
	Bookings *BookingService
	Ratings  *RatingService
}

func NewServices(repos *repository.Repositories, sessions *auth.Service) *Services {
	return &Services{
		Auth:     NewAuthService(sessions, repos.Places),
		Places:   NewPlaceService(repos.Places, sessions),
		Bookings: NewBookingService(repos.Bookings, repos.Places, sessions),
		Ratings:  NewRatingService(repos.Ratings, repos.Places),
	}
}
