package stores

import (
	"gorm.io/gorm"

	"github.com/portalbox-admin/portalbox-admin/internal/db/models"
)

// APIKeyStore persists API keys.
type APIKeyStore struct {
	db *gorm.DB
}

// NewAPIKeyStore creates an API key store.
func NewAPIKeyStore(db *gorm.DB) *APIKeyStore {
	return &APIKeyStore{db: db}
}

// Create inserts the key and assigns its id.
func (s *APIKeyStore) Create(key *models.APIKey) error {
	return s.db.Create(key).Error
}

// Read loads a key by id.
func (s *APIKeyStore) Read(id uint) (*models.APIKey, error) {
	var key models.APIKey
	if err := s.db.First(&key, id).Error; err != nil {
		return nil, err
	}

	return &key, nil
}

// ReadByToken loads a key by exact token match.
func (s *APIKeyStore) ReadByToken(token string) (*models.APIKey, error) {
	var key models.APIKey
	if err := s.db.Where("token = ?", token).First(&key).Error; err != nil {
		return nil, err
	}

	return &key, nil
}

// Update saves the key.
func (s *APIKeyStore) Update(key *models.APIKey) error {
	return s.db.Save(key).Error
}

// Delete removes the key.
func (s *APIKeyStore) Delete(id uint) error {
	return s.db.Delete(&models.APIKey{}, id).Error
}

// Search lists all keys ordered by id.
func (s *APIKeyStore) Search() ([]models.APIKey, error) {
	var keys []models.APIKey
	if err := s.db.Order("id ASC").Find(&keys).Error; err != nil {
		return nil, err
	}

	return keys, nil
}
