package models

// LoginRequest - manager credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse - session token plus the manager's scope. PlaceID is -1 and
// PlaceName is "Admin" for admin sessions.
type LoginResponse struct {
	Token     string `json:"token"`
	PlaceID   int64  `json:"place_id"`
	PlaceName string `json:"place_name"`
	IsAdmin   bool   `json:"is_admin"`
}

// UpdateSeatsRequest - new free seat count for a place. A pointer so that an
// explicit 0 survives binding.
type UpdateSeatsRequest struct {
	FreeSeats *int `json:"free_seats" binding:"required"`
}

// CreateBookingRequest - visitor's seat request
type CreateBookingRequest struct {
	Name   string `json:"name" binding:"required"`
	People int    `json:"people"`
	Time   string `json:"time"`
}

// UpdateBookingStatusRequest - new lifecycle status for a booking
type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateRatingRequest - anonymous occupancy report
type CreateRatingRequest struct {
	Rating  int    `json:"rating"`
	Status  string `json:"status"`
	Name    string `json:"name,omitempty"`
	Comment string `json:"comment,omitempty"`
}
