package appointment

import (
	"context"

	"github.com/urbanbarber/api/internal/audit"
	domain "github.com/urbanbarber/api/internal/domain/appointment"
	"github.com/urbanbarber/api/internal/httperr"
)

type Delete struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDelete(repo domain.Repository, audit *audit.Dispatcher) *Delete {
	return &Delete{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Delete) Execute(
	ctx context.Context,
	actor domain.Actor,
	appointmentID uint,
) error {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if !domain.CanAccess(actor, ap.UserID) {
		return httperr.ErrBusiness("forbidden")
	}

	if err := uc.repo.DeleteAppointment(ctx, ap); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return nil
}
