package stores

import (
	"gorm.io/gorm"

	"github.com/portalbox-admin/portalbox-admin/internal/db/models"
	"github.com/portalbox-admin/portalbox-admin/internal/db/query"
)

// EquipmentStore persists equipment.
type EquipmentStore struct {
	db *gorm.DB
}

// NewEquipmentStore creates an equipment store.
func NewEquipmentStore(db *gorm.DB) *EquipmentStore {
	return &EquipmentStore{db: db}
}

// Create inserts the equipment and assigns its id.
func (s *EquipmentStore) Create(equipment *models.Equipment) error {
	return s.db.Create(equipment).Error
}

// Read loads equipment by id with its type and location.
func (s *EquipmentStore) Read(id uint) (*models.Equipment, error) {
	var equipment models.Equipment
	if err := s.db.Preload("Type").Preload("Location").First(&equipment, id).Error; err != nil {
		return nil, err
	}

	return &equipment, nil
}

// Update saves the equipment.
func (s *EquipmentStore) Update(equipment *models.Equipment) error {
	return s.db.Save(equipment).Error
}

// Delete removes the equipment.
func (s *EquipmentStore) Delete(id uint) error {
	return s.db.Delete(&models.Equipment{}, id).Error
}

// Search lists equipment matching the filter, ordered by id.
func (s *EquipmentStore) Search(q query.Equipment) ([]models.Equipment, error) {
	tx := s.db.Model(&models.Equipment{}).Preload("Type").Preload("Location")

	if q.LocationID != nil {
		tx = tx.Where("location_id = ?", *q.LocationID)
	}

	if q.TypeID != nil {
		tx = tx.Where("type_id = ?", *q.TypeID)
	}

	if q.MACAddress != "" {
		tx = tx.Where("mac_address = ?", q.MACAddress)
	}

	if q.InService != nil {
		tx = tx.Where("in_service = ?", *q.InService)
	}

	var equipment []models.Equipment
	if err := tx.Order("id ASC").Find(&equipment).Error; err != nil {
		return nil, err
	}

	return equipment, nil
}
