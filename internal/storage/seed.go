package storage

import "placehub/internal/models"

// SeedPlaces is the built-in venue list, used when no places store exists yet.
func SeedPlaces() []models.Place {
	return []models.Place{
		{
			ID:         1,
			Name:       "Coffee Time",
			Type:       models.PlaceTypeCafe,
			TotalSeats: 20,
			FreeSeats:  8,
			Address:    "Andijan, Center street 5",
			Lat:        40.7821,
			Lon:        72.3442,
			OpenTime:   "08:00",
			CloseTime:  "22:00",
		},
		{
			ID:         2,
			Name:       "Game Club Pro",
			Type:       models.PlaceTypeGameClub,
			TotalSeats: 30,
			FreeSeats:  12,
			Address:    "Andijan, Youth street 10",
			Lat:        40.7766,
			Lon:        72.3519,
			OpenTime:   "10:00",
			CloseTime:  "02:00", // open past midnight
		},
		{
			ID:         3,
			Name:       "Study & Coffee",
			Type:       models.PlaceTypeCafe,
			TotalSeats: 15,
			FreeSeats:  3,
			Address:    "Andijan, University area",
			Lat:        40.7903,
			Lon:        72.3365,
			OpenTime:   "09:00",
			CloseTime:  "21:00",
		},
	}
}

// SeedManagers is the default roster. Shared secrets are plaintext-comparable
// on purpose: this is a prototype mechanism, not a security boundary.
func SeedManagers() []models.Manager {
	return []models.Manager{
		{Username: "admin", Password: "admin123", PlaceID: 0, IsAdmin: true},
		{Username: "coffee_time", Password: "coffee123", PlaceID: 1},
		{Username: "gameclub_pro", Password: "game123", PlaceID: 2},
		{Username: "study_coffee", Password: "study123", PlaceID: 3},
	}
}
