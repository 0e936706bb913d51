package stores

import (
	"gorm.io/gorm"

	"github.com/portalbox-admin/portalbox-admin/internal/db/models"
)

// LocationStore persists locations.
type LocationStore struct {
	db *gorm.DB
}

// NewLocationStore creates a location store.
func NewLocationStore(db *gorm.DB) *LocationStore {
	return &LocationStore{db: db}
}

// Create inserts the location and assigns its id.
func (s *LocationStore) Create(location *models.Location) error {
	return s.db.Create(location).Error
}

// Read loads a location by id.
func (s *LocationStore) Read(id uint) (*models.Location, error) {
	var location models.Location
	if err := s.db.First(&location, id).Error; err != nil {
		return nil, err
	}

	return &location, nil
}

// First returns the first location by the store's natural ordering.
func (s *LocationStore) First() (*models.Location, error) {
	var location models.Location
	if err := s.db.Order("id ASC").First(&location).Error; err != nil {
		return nil, err
	}

	return &location, nil
}

// Update saves the location.
func (s *LocationStore) Update(location *models.Location) error {
	return s.db.Save(location).Error
}

// Delete removes the location.
func (s *LocationStore) Delete(id uint) error {
	return s.db.Delete(&models.Location{}, id).Error
}

// Search lists all locations ordered by id.
func (s *LocationStore) Search() ([]models.Location, error) {
	var locations []models.Location
	if err := s.db.Order("id ASC").Find(&locations).Error; err != nil {
		return nil, err
	}

	return locations, nil
}
