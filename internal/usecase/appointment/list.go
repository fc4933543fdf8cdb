package appointment

import (
	"context"

	domain "github.com/urbanbarber/api/internal/domain/appointment"
	"github.com/urbanbarber/api/internal/dto"
	"github.com/urbanbarber/api/internal/models"
)

type List struct {
	repo domain.Repository
}

func NewList(repo domain.Repository) *List {
	return &List{repo: repo}
}

// Execute returns the caller's appointments, or every appointment when the
// caller is an admin. Results carry barber/service/owner snapshots and come
// back ordered by date, newest first.
func (uc *List) Execute(
	ctx context.Context,
	actor domain.Actor,
) ([]dto.AppointmentView, error) {

	var (
		apps []models.Appointment
		err  error
	)

	if actor.IsAdmin() {
		apps, err = uc.repo.ListAppointments(ctx)
	} else {
		apps, err = uc.repo.ListAppointmentsByUser(ctx, actor.UserID)
	}
	if err != nil {
		return nil, err
	}

	views := make([]dto.AppointmentView, 0, len(apps))
	for i := range apps {
		views = append(views, toView(&apps[i]))
	}

	return views, nil
}

func toView(ap *models.Appointment) dto.AppointmentView {
	return dto.AppointmentView{
		ID:     ap.ID,
		Date:   ap.Date,
		Time:   ap.Time,
		Status: ap.Status,
		Paid:   ap.Paid,
		Notes:  ap.Notes,
		Barber: dto.BarberSnapshot{
			ID:        ap.Barber.ID,
			Name:      ap.Barber.Name,
			Specialty: ap.Barber.Specialty,
		},
		Service: dto.ServiceSnapshot{
			ID:          ap.Service.ID,
			Name:        ap.Service.Name,
			Price:       ap.Service.Price,
			DurationMin: ap.Service.DurationMin,
		},
		User: dto.UserSnapshot{
			ID:        ap.User.ID,
			FirstName: ap.User.FirstName,
			LastName:  ap.User.LastName,
			Phone:     ap.User.Phone,
		},
	}
}
