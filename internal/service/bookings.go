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

type BookingService struct {
	bookingRepo *repository.BookingRepository
	placeRepo   *repository.PlaceRepository
	sessions    *auth.Service
}

func NewBookingService(bookingRepo *repository.BookingRepository, placeRepo *repository.PlaceRepository, sessions *auth.Service) *BookingService {
	return &BookingService{bookingRepo: bookingRepo, placeRepo: placeRepo, sessions: sessions}
}

// Create registers a pending booking for a place. Open to the public, no
// session required. Booking does not touch the place's free_seats: a booking
// is a request, seat counts move only when a manager updates them.
func (s *BookingService) Create(ctx context.Context, placeID int64, req *models.CreateBookingRequest) (*models.Booking, error) {
	if _, err := s.placeRepo.GetByID(placeID); err != nil {
		return nil, err
	}
	if req.People <= 0 {
		return nil, fmt.Errorf("people must be greater than 0: %w", apperrors.ErrInvalidArgument)
	}

	booking := models.Booking{
		PlaceID: placeID,
		Name:    req.Name,
		People:  req.People,
		Time:    req.Time,
		Status:  models.BookingStatusPending,
	}
	return s.bookingRepo.Create(booking)
}

// UpdateStatus moves a booking to a new status on behalf of a manager. The
// manager must own the booking's place or be the admin. Any status may move
// to any other, including itself.
func (s *BookingService) UpdateStatus(ctx context.Context, mgr *models.Manager, bookingID int64, status string) (*models.Booking, error) {
	if !models.ValidBookingStatus(status) {
		return nil, fmt.Errorf("status must be one of pending, confirmed, cancelled: %w",
			apperrors.ErrInvalidArgument)
	}

	booking, err := s.bookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if !s.sessions.Authorize(mgr, booking.PlaceID) {
		return nil, fmt.Errorf("manager %s may not manage place %d: %w",
			mgr.Username, booking.PlaceID, apperrors.ErrForbidden)
	}

	updated, err := s.bookingRepo.UpdateStatus(bookingID, status)
	if err != nil {
		return nil, err
	}

	logger.WithManager(mgr.Username).Info("Booking status updated",
		"booking_id", updated.ID,
		"place_id", updated.PlaceID,
		"status", updated.Status)
	return updated, nil
}

// ListByPlace returns one place's bookings for its manager or the admin.
func (s *BookingService) ListByPlace(ctx context.Context, mgr *models.Manager, placeID int64) ([]models.Booking, error) {
	if !s.sessions.Authorize(mgr, placeID) {
		return nil, fmt.Errorf("manager %s may not view bookings for place %d: %w",
			mgr.Username, placeID, apperrors.ErrForbidden)
	}
	return s.bookingRepo.ListByPlace(placeID), nil
}

// ListAll is the admin-only view across every place.
func (s *BookingService) ListAll(ctx context.Context, mgr *models.Manager) ([]models.Booking, error) {
	if !mgr.IsAdmin {
		return nil, fmt.Errorf("manager %s may not view all bookings: %w",
			mgr.Username, apperrors.ErrForbidden)
	}
	return s.bookingRepo.ListAll(), nil
}
