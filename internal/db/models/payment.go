package models

import "time"

// Payment is a ledger entry crediting a user's account.
type Payment struct {
	// ID is the unique identifier for the payment.
	ID uint64 `gorm:"primaryKey"`
	// UserID references the paying user.
	UserID uint64 `gorm:"not null"`
	// Amount is the paid amount as a decimal string.
	Amount string `gorm:"size:32;not null"`
	// Time is when the payment was made.
	Time time.Time
}

// TableName specifies the database table name for the Payment model.
func (Payment) TableName() string {
	return "payments"
}
