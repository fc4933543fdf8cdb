package appointment

import (
	"context"

	domain "github.com/urbanbarber/api/internal/domain/appointment"
	"github.com/urbanbarber/api/internal/dto"
	"github.com/urbanbarber/api/internal/httperr"
)

type Get struct {
	repo domain.Repository
}

func NewGet(repo domain.Repository) *Get {
	return &Get{repo: repo}
}

func (uc *Get) Execute(
	ctx context.Context,
	actor domain.Actor,
	appointmentID uint,
) (*dto.AppointmentView, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if !domain.CanAccess(actor, ap.UserID) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	view := toView(ap)
	return &view, nil
}
