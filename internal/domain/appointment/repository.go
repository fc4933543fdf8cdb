package appointment

import (
	"context"

	"github.com/urbanbarber/api/internal/models"
)

type Repository interface {
	// -------- Catalog --------
	GetBarberByID(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	GetServiceByID(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Owner resolution --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	FindUserByPhone(
		ctx context.Context,
		phone string,
	) (*models.User, error)

	FindUserByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	CreateUser(
		ctx context.Context,
		user *models.User,
	) error

	// -------- Appointment --------

	// CreateAppointment persists the appointment and bumps the referenced
	// service's popularity counter in the same transaction.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	ListAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	ListAppointmentsByUser(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// DeleteAppointment removes the appointment and its payment record.
	DeleteAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
