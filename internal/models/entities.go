package models

import "time"

// Place types.
const (
	PlaceTypeCafe     = "Cafe"
	PlaceTypeGameClub = "Game Club"
)

// Booking lifecycle statuses. There is no transition graph: any status may
// move to any other, including itself.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Occupancy statuses reported with a rating.
const (
	RatingStatusBusy   = "busy"
	RatingStatusFree   = "free"
	RatingStatusNormal = "normal"
)

// Place represents a venue with live seat availability.
type Place struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	TotalSeats int     `json:"total_seats"`
	FreeSeats  int     `json:"free_seats"`
	Address    string  `json:"address"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	OpenTime   string  `json:"open_time"`
	CloseTime  string  `json:"close_time"` // close < open means the place closes after midnight
}

// Manager is a venue operator with mutation rights. PlaceID 0 is reserved for
// the admin, who is scoped to no single place.
type Manager struct {
	Username string `json:"username"`
	Password string `json:"password"`
	PlaceID  int64  `json:"place_id"`
	IsAdmin  bool   `json:"is_admin"`
}

// Booking represents a visitor's seat request for a place.
type Booking struct {
	ID      int64  `json:"id"`
	PlaceID int64  `json:"place_id"`
	Name    string `json:"name"`
	People  int    `json:"people"`
	Time    string `json:"time"` // free-form display string, never parsed
	Status  string `json:"status"`
}

// Rating is a visitor-submitted occupancy report, immutable once created.
type Rating struct {
	ID        int64     `json:"id"`
	PlaceID   int64     `json:"place_id"`
	Rating    int       `json:"rating"`
	Status    string    `json:"status"`
	Name      string    `json:"name,omitempty"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// RatingSummary is the derived per-place aggregate. It is computed on demand
// and never stored.
type RatingSummary struct {
	PlaceID     int64   `json:"place_id"`
	AvgRating   float64 `json:"avg_rating"`
	RatingCount int     `json:"rating_count"`
	LastStatus  string  `json:"last_status"`
}

// ValidBookingStatus reports whether s is a known booking status.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// ValidRatingStatus reports whether s is a known occupancy status.
func ValidRatingStatus(s string) bool {
	switch s {
	case RatingStatusBusy, RatingStatusFree, RatingStatusNormal:
		return true
	}
	return false
}
