package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"placehub/internal/models"
)

const (
	placesFile   = "places.json"
	bookingsFile = "bookings.json"
	ratingsFile  = "ratings.json"
)

// Store persists each entity collection to its own JSON file under the data
// directory. Every save rewrites the full collection; there is no append log
// and no diffing.
type Store struct {
	dataDir      string
	managersFile string
}

// New opens the store, creating the data directory if needed.
func New(dataDir, managersFile string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{dataDir: dataDir, managersFile: managersFile}, nil
}

// LoadPlaces returns the persisted places in stored order, or the built-in
// seed list when no store exists yet.
func (s *Store) LoadPlaces() ([]models.Place, error) {
	var places []models.Place
	ok, err := s.read(placesFile, &places)
	if err != nil {
		return nil, err
	}
	if !ok {
		return SeedPlaces(), nil
	}
	return places, nil
}

// LoadBookings returns the persisted bookings, empty when no store exists.
func (s *Store) LoadBookings() ([]models.Booking, error) {
	var bookings []models.Booking
	if _, err := s.read(bookingsFile, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// LoadRatings returns the persisted ratings, empty when no store exists.
func (s *Store) LoadRatings() ([]models.Rating, error) {
	var ratings []models.Rating
	if _, err := s.read(ratingsFile, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}

// LoadManagers returns the roster from the managers file when present, else
// the built-in defaults. The roster is read-only: there is no SaveManagers.
func (s *Store) LoadManagers() ([]models.Manager, error) {
	if s.managersFile == "" {
		return SeedManagers(), nil
	}
	data, err := os.ReadFile(s.managersFile)
	if err != nil {
		if os.IsNotExist(err) {
			return SeedManagers(), nil
		}
		return nil, fmt.Errorf("failed to read manager roster: %w", err)
	}
	var managers []models.Manager
	if err := json.Unmarshal(data, &managers); err != nil {
		return nil, fmt.Errorf("failed to parse manager roster: %w", err)
	}
	return managers, nil
}

// SavePlaces overwrites the places store with the full collection.
func (s *Store) SavePlaces(places []models.Place) error {
	return s.write(placesFile, places)
}

// SaveBookings overwrites the bookings store with the full collection.
func (s *Store) SaveBookings(bookings []models.Booking) error {
	return s.write(bookingsFile, bookings)
}

// SaveRatings overwrites the ratings store with the full collection.
func (s *Store) SaveRatings(ratings []models.Rating) error {
	return s.write(ratingsFile, ratings)
}

// read unmarshals the named store into dst, reporting whether the file
// existed at all.
func (s *Store) read(name string, dst any) (bool, error) {
	data, err := os.ReadFile(filepath.Join(s.dataDir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return true, nil
}

// write replaces the named store wholesale. The temp-file rename keeps a
// crash mid-write from leaving a truncated store behind.
func (s *Store) write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	path := filepath.Join(s.dataDir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}
