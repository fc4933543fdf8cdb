package models

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:200;not null" json:"name"`
	Description string `gorm:"size:500;not null" json:"description"`

	// Duration in minutes, 15..120 per catalog rules.
	DurationMin int     `gorm:"not null" json:"duration_min"`
	Price       float64 `gorm:"type:decimal(18,2);not null" json:"price"`

	Available  bool `gorm:"default:true" json:"available"`
	Popularity int  `gorm:"default:0" json:"popularity"`
}
