package dto

import "time"

type BarberSnapshot struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

type ServiceSnapshot struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`
}

type UserSnapshot struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

type AppointmentView struct {
	ID     uint      `json:"id"`
	Date   time.Time `json:"date"`
	Time   string    `json:"time"`
	Status string    `json:"status"`
	Paid   bool      `json:"paid"`
	Notes  string    `json:"notes"`

	Barber  BarberSnapshot  `json:"barber"`
	Service ServiceSnapshot `json:"service"`
	User    UserSnapshot    `json:"user"`
}
