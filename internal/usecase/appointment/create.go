package appointment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/urbanbarber/api/internal/audit"
	domain "github.com/urbanbarber/api/internal/domain/appointment"
	"github.com/urbanbarber/api/internal/httperr"
	"github.com/urbanbarber/api/internal/models"
	"github.com/urbanbarber/api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

// OwnerKind is the explicit decision of who will own the appointment,
// taken at the workflow boundary.
type OwnerKind int

const (
	// OwnerExisting binds the appointment to a known user id.
	OwnerExisting OwnerKind = iota
	// OwnerWalkIn resolves or synthesizes a user from the walk-in bundle.
	OwnerWalkIn
)

type WalkIn struct {
	Name  string
	Phone string
	Email string
}

type OwnerRef struct {
	Kind   OwnerKind
	UserID uint
	WalkIn WalkIn
}

type CreateInput struct {
	Owner OwnerRef

	BarberID  uint
	ServiceID uint

	Date  string // "2006-01-02"
	Time  string // "15:04"
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type Create struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewCreate(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *Create {
	return &Create{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Create) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Appointment, error) {

	barber, err := uc.repo.GetBarberByID(ctx, in.BarberID)
	if err != nil || !barber.Available {
		return nil, httperr.ErrBusiness("barber_unavailable")
	}

	service, err := uc.repo.GetServiceByID(ctx, in.ServiceID)
	if err != nil || !service.Available {
		return nil, httperr.ErrBusiness("service_unavailable")
	}

	loc := timezone.Location(uc.tz)
	date, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.ValidateDate(date, now); err != nil {
		return nil, err
	}

	if err := domain.ValidateTimeOfDay(in.Time); err != nil {
		return nil, err
	}

	if err := domain.ValidateNotes(in.Notes); err != nil {
		return nil, err
	}

	owner, err := uc.resolveOwner(ctx, in.Owner, now)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		UserID:    owner.ID,
		BarberID:  barber.ID,
		ServiceID: service.ID,
		Date:      date,
		Time:      in.Time,
		Notes:     in.Notes,
		Status:    string(domain.InitialStatus()),
		Paid:      false,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &owner.ID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

// ======================================================
// OWNER RESOLUTION
// ======================================================

// resolveOwner turns the owner reference into a persisted user. Walk-in
// bundles are reconciled against existing accounts by phone, then email,
// before a placeholder account is synthesized.
func (uc *Create) resolveOwner(
	ctx context.Context,
	ref OwnerRef,
	now time.Time,
) (*models.User, error) {

	switch ref.Kind {
	case OwnerExisting:
		user, err := uc.repo.GetUserByID(ctx, ref.UserID)
		if err != nil {
			return nil, httperr.ErrBusiness("owner_invalid")
		}
		return user, nil

	case OwnerWalkIn:
		w := ref.WalkIn
		w.Name = strings.TrimSpace(w.Name)
		w.Phone = strings.TrimSpace(w.Phone)

		if w.Name == "" || w.Phone == "" {
			return nil, httperr.ErrBusiness("walkin_identity_required")
		}

		if user, err := uc.repo.FindUserByPhone(ctx, w.Phone); err == nil {
			return user, nil
		}

		if w.Email != "" {
			if user, err := uc.repo.FindUserByEmail(ctx, w.Email); err == nil {
				return user, nil
			}
		}

		return uc.synthesizeWalkIn(ctx, w, now)
	}

	return nil, httperr.ErrBusiness("owner_invalid")
}

// WalkInLastName marks placeholder accounts created for walk-in bookings.
const WalkInLastName = "Invitado"

func (uc *Create) synthesizeWalkIn(
	ctx context.Context,
	w WalkIn,
	now time.Time,
) (*models.User, error) {

	tag := strings.Split(uuid.NewString(), "-")[0]

	email := w.Email
	if email == "" {
		email = fmt.Sprintf("guest-%s@walkin.urbanbarber.local", tag)
	}

	// The placeholder credential is random and never disclosed, so the
	// account cannot be used interactively.
	hashed, err := bcrypt.GenerateFromPassword(
		[]byte(uuid.NewString()),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     "guest-" + tag,
		FirstName:    w.Name,
		LastName:     WalkInLastName,
		Email:        email,
		Phone:        w.Phone,
		PasswordHash: string(hashed),
		Role:         models.RoleClient,
		RegisteredAt: now.UTC(),
	}

	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
