package models

type Barber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Specialty string `gorm:"size:200;not null" json:"specialty"`
	ImageURL  string `gorm:"size:500" json:"image_url"`

	Experience string  `gorm:"size:50;not null" json:"experience"`
	Rating     float64 `gorm:"type:decimal(3,1);default:5.0" json:"rating"`

	Available          bool `gorm:"default:true" json:"available"`
	AppointmentsServed int  `gorm:"default:0" json:"appointments_served"`
}
