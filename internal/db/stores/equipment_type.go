package stores

import (
	"gorm.io/gorm"

	"github.com/portalbox-admin/portalbox-admin/internal/db/models"
)

// EquipmentTypeStore persists equipment types.
type EquipmentTypeStore struct {
	db *gorm.DB
}

// NewEquipmentTypeStore creates an equipment type store.
func NewEquipmentTypeStore(db *gorm.DB) *EquipmentTypeStore {
	return &EquipmentTypeStore{db: db}
}

// Create inserts the equipment type and assigns its id.
func (s *EquipmentTypeStore) Create(equipmentType *models.EquipmentType) error {
	return s.db.Create(equipmentType).Error
}

// Read loads an equipment type by id.
func (s *EquipmentTypeStore) Read(id uint) (*models.EquipmentType, error) {
	var equipmentType models.EquipmentType
	if err := s.db.First(&equipmentType, id).Error; err != nil {
		return nil, err
	}

	return &equipmentType, nil
}

// First returns the first equipment type by the store's natural ordering.
func (s *EquipmentTypeStore) First() (*models.EquipmentType, error) {
	var equipmentType models.EquipmentType
	if err := s.db.Order("id ASC").First(&equipmentType).Error; err != nil {
		return nil, err
	}

	return &equipmentType, nil
}

// Update saves the equipment type.
func (s *EquipmentTypeStore) Update(equipmentType *models.EquipmentType) error {
	return s.db.Save(equipmentType).Error
}

// Delete removes the equipment type.
func (s *EquipmentTypeStore) Delete(id uint) error {
	return s.db.Delete(&models.EquipmentType{}, id).Error
}

// Search lists all equipment types ordered by id.
func (s *EquipmentTypeStore) Search() ([]models.EquipmentType, error) {
	var equipmentTypes []models.EquipmentType
	if err := s.db.Order("id ASC").Find(&equipmentTypes).Error; err != nil {
		return nil, err
	}

	return equipmentTypes, nil
}
