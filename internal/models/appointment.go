package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"user"`

	BarberID uint   `gorm:"not null" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"barber"`

	ServiceID uint    `gorm:"not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service"`

	Date time.Time `gorm:"type:date;not null" json:"date"`
	// Time of day as "HH:MM" in the shop's timezone.
	Time string `gorm:"size:5;not null" json:"time"`

	Notes string `gorm:"size:200" json:"notes"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`
	Paid   bool   `gorm:"default:false" json:"paid"`

	Payment *Payment `gorm:"constraint:OnDelete:CASCADE;" json:"payment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
