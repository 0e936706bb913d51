package stores

import (
	"gorm.io/gorm"

	"github.com/portalbox-admin/portalbox-admin/internal/db/models"
	"github.com/portalbox-admin/portalbox-admin/internal/db/query"
)

// ChargeStore persists charges.
type ChargeStore struct {
	db *gorm.DB
}

// NewChargeStore creates a charge store.
func NewChargeStore(db *gorm.DB) *ChargeStore {
	return &ChargeStore{db: db}
}

// Create inserts the charge and assigns its id.
func (s *ChargeStore) Create(charge *models.Charge) error {
	return s.db.Create(charge).Error
}

// Read loads a charge by id.
func (s *ChargeStore) Read(id uint64) (*models.Charge, error) {
	var charge models.Charge
	if err := s.db.First(&charge, id).Error; err != nil {
		return nil, err
	}

	return &charge, nil
}

// Update saves the charge.
func (s *ChargeStore) Update(charge *models.Charge) error {
	return s.db.Save(charge).Error
}

// Search lists charges matching the filter, newest first.
func (s *ChargeStore) Search(q query.Charge) ([]models.Charge, error) {
	tx := s.db.Model(&models.Charge{})

	if q.UserID != nil {
		tx = tx.Where("user_id = ?", *q.UserID)
	}

	if q.EquipmentID != nil {
		tx = tx.Where("equipment_id = ?", *q.EquipmentID)
	}

	var charges []models.Charge
	if err := tx.Order("time DESC").Find(&charges).Error; err != nil {
		return nil, err
	}

	return charges, nil
}
