package appointment

import (
	"context"

	"github.com/urbanbarber/api/internal/audit"
	domain "github.com/urbanbarber/api/internal/domain/appointment"
	"github.com/urbanbarber/api/internal/httperr"
	"github.com/urbanbarber/api/internal/models"
)

type MarkPaid struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewMarkPaid(repo domain.Repository, audit *audit.Dispatcher) *MarkPaid {
	return &MarkPaid{
		repo:  repo,
		audit: audit,
	}
}

// Execute confirms the appointment and flags it paid. Repeating the call
// is a no-op success.
func (uc *MarkPaid) Execute(
	ctx context.Context,
	actor domain.Actor,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if !domain.CanAccess(actor, ap.UserID) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	if ap.Paid && ap.Status == string(domain.StatusConfirmed) {
		return ap, nil
	}

	domain.MarkPaid(ap)

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "appointment_paid",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
