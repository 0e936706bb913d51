package stores

import (
	"gorm.io/gorm"

	"github.com/portalbox-admin/portalbox-admin/internal/db/models"
	"github.com/portalbox-admin/portalbox-admin/internal/db/query"
)

// PaymentStore persists payments.
type PaymentStore struct {
	db *gorm.DB
}

// NewPaymentStore creates a payment store.
func NewPaymentStore(db *gorm.DB) *PaymentStore {
	return &PaymentStore{db: db}
}

// Create inserts the payment and assigns its id.
func (s *PaymentStore) Create(payment *models.Payment) error {
	return s.db.Create(payment).Error
}

// Read loads a payment by id.
func (s *PaymentStore) Read(id uint64) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.First(&payment, id).Error; err != nil {
		return nil, err
	}

	return &payment, nil
}

// Update saves the payment.
func (s *PaymentStore) Update(payment *models.Payment) error {
	return s.db.Save(payment).Error
}

// Delete removes the payment.
func (s *PaymentStore) Delete(id uint64) error {
	return s.db.Delete(&models.Payment{}, id).Error
}

// Search lists payments matching the filter, newest first.
func (s *PaymentStore) Search(q query.Payment) ([]models.Payment, error) {
	tx := s.db.Model(&models.Payment{})

	if q.UserID != nil {
		tx = tx.Where("user_id = ?", *q.UserID)
	}

	var payments []models.Payment
	if err := tx.Order("time DESC").Find(&payments).Error; err != nil {
		return nil, err
	}

	return payments, nil
}
