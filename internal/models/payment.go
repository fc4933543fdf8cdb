package models

import "time"

// Payment is persisted alongside its appointment but no business rule
// drives it. It is removed together with the appointment.
type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint `gorm:"uniqueIndex;not null" json:"appointment_id"`

	Amount float64 `gorm:"type:decimal(18,2);not null" json:"amount"`
	Method string  `gorm:"size:50;not null" json:"method"`
	Type   string  `gorm:"size:50;not null" json:"type"`
	Status string  `gorm:"size:50;default:'pending'" json:"status"`

	TransactionID string `gorm:"size:100" json:"transaction_id"`

	PaidAt    *time.Time `json:"paid_at"`
	CreatedAt time.Time  `json:"created_at"`
}
