package models

import "time"

const (
	RoleClient = "client"
	RoleAdmin  = "admin"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username  string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`
	Email     string `gorm:"size:200;uniqueIndex;not null" json:"email"`
	Phone     string `gorm:"size:20;uniqueIndex;not null" json:"phone"`

	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;default:'client'" json:"role"`

	RegisteredAt time.Time `json:"registered_at"`
}
