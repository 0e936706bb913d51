package stores

import (
	"gorm.io/gorm"

	"github.com/portalbox-admin/portalbox-admin/internal/db/models"
	"github.com/portalbox-admin/portalbox-admin/internal/db/query"
)

// CardStore persists cards. Card ids are physical serials supplied by
// the caller, never auto-assigned.
type CardStore struct {
	db *gorm.DB
}

// NewCardStore creates a card store.
func NewCardStore(db *gorm.DB) *CardStore {
	return &CardStore{db: db}
}

// Create inserts the card with its caller-supplied id.
func (s *CardStore) Create(card *models.Card) error {
	return s.db.Create(card).Error
}

// Read loads a card by its serial.
func (s *CardStore) Read(id uint64) (*models.Card, error) {
	var card models.Card
	if err := s.db.First(&card, id).Error; err != nil {
		return nil, err
	}

	return &card, nil
}

// Update saves the card. The id is the immutable key.
func (s *CardStore) Update(card *models.Card) error {
	return s.db.Save(card).Error
}

// Search lists cards matching the filter, ordered by id.
func (s *CardStore) Search(q query.Card) ([]models.Card, error) {
	tx := s.db.Model(&models.Card{})

	if q.UserID != nil {
		tx = tx.Where("user_id = ?", *q.UserID)
	}

	if q.EquipmentTypeID != nil {
		tx = tx.Where("equipment_type_id = ?", *q.EquipmentTypeID)
	}

	if q.TypeID != nil {
		tx = tx.Where("type_id = ?", *q.TypeID)
	}

	var cards []models.Card
	if err := tx.Order("id ASC").Find(&cards).Error; err != nil {
		return nil, err
	}

	return cards, nil
}
