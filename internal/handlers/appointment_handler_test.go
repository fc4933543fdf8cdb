package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/urbanbarber/api/internal/audit"
	domain "github.com/urbanbarber/api/internal/domain/appointment"
	"github.com/urbanbarber/api/internal/middleware"
	"github.com/urbanbarber/api/internal/models"
	"github.com/urbanbarber/api/internal/token"
	ucAppointment "github.com/urbanbarber/api/internal/usecase/appointment"
)

// ======================================================
// STUB REPOSITORY
// ======================================================

var errNotFound = errors.New("record not found")

type stubRepo struct {
	barbers  map[uint]*models.Barber
	services map[uint]*models.Service
	users    map[uint]*models.User
	apps     map[uint]*models.Appointment

	nextUserID uint
	nextAppID  uint
}

func newStubRepo() *stubRepo {
	r := &stubRepo{
		barbers:    make(map[uint]*models.Barber),
		services:   make(map[uint]*models.Service),
		users:      make(map[uint]*models.User),
		apps:       make(map[uint]*models.Appointment),
		nextUserID: 100,
		nextAppID:  1,
	}
	r.barbers[1] = &models.Barber{ID: 1, Name: "Ricardo", Available: true}
	r.services[1] = &models.Service{ID: 1, Name: "Corte Sencillo", DurationMin: 45, Available: true}
	r.users[10] = &models.User{ID: 10, Username: "juanperez", Phone: "3007654321", Role: models.RoleClient}
	return r
}

func (r *stubRepo) GetBarberByID(_ context.Context, id uint) (*models.Barber, error) {
	if b, ok := r.barbers[id]; ok {
		return b, nil
	}
	return nil, errNotFound
}

func (r *stubRepo) GetServiceByID(_ context.Context, id uint) (*models.Service, error) {
	if s, ok := r.services[id]; ok {
		return s, nil
	}
	return nil, errNotFound
}

func (r *stubRepo) GetUserByID(_ context.Context, id uint) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, errNotFound
}

func (r *stubRepo) FindUserByPhone(_ context.Context, phone string) (*models.User, error) {
	for _, u := range r.users {
		if u.Phone == phone {
			return u, nil
		}
	}
	return nil, errNotFound
}

func (r *stubRepo) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errNotFound
}

func (r *stubRepo) CreateUser(_ context.Context, user *models.User) error {
	user.ID = r.nextUserID
	r.nextUserID++
	r.users[user.ID] = user
	return nil
}

func (r *stubRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	ap.ID = r.nextAppID
	r.nextAppID++
	r.apps[ap.ID] = ap
	if s, ok := r.services[ap.ServiceID]; ok {
		s.Popularity++
	}
	return nil
}

func (r *stubRepo) GetAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	if ap, ok := r.apps[id]; ok {
		return ap, nil
	}
	return nil, errNotFound
}

func (r *stubRepo) ListAppointments(_ context.Context) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.apps {
		out = append(out, *ap)
	}
	return out, nil
}

func (r *stubRepo) ListAppointmentsByUser(_ context.Context, userID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.apps {
		if ap.UserID == userID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *stubRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.apps[ap.ID] = ap
	return nil
}

func (r *stubRepo) DeleteAppointment(_ context.Context, ap *models.Appointment) error {
	delete(r.apps, ap.ID)
	return nil
}

var _ domain.Repository = (*stubRepo)(nil)

type nopRecorder struct{}

func (nopRecorder) Log(*uint, string, string, *uint, any) error { return nil }

// ======================================================
// ROUTER
// ======================================================

func bookingRouter(repo *stubRepo, issuer *token.Issuer) *gin.Engine {
	gin.SetMode(gin.TestMode)

	dispatcher := audit.NewDispatcher(nopRecorder{})
	handler := NewAppointmentHandler(
		ucAppointment.NewCreate(repo, dispatcher, "UTC"),
		ucAppointment.NewList(repo),
		ucAppointment.NewGet(repo),
		ucAppointment.NewDelete(repo, dispatcher),
		ucAppointment.NewMarkPaid(repo, dispatcher),
	)

	r := gin.New()
	r.POST("/api/citas", middleware.OptionalAuth(issuer), handler.Create)
	r.GET("/api/citas/:id", middleware.RequireAuth(issuer), handler.Get)
	return r
}

func postJSON(r *gin.Engine, path, body, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// ======================================================
// TESTS
// ======================================================

func TestCreate_AnonymousWalkIn(t *testing.T) {
	repo := newStubRepo()
	issuer := token.NewIssuer("secret", "iss", "aud")
	r := bookingRouter(repo, issuer)

	body := `{
		"barber_id": 1,
		"service_id": 1,
		"date": "` + time.Now().UTC().Format("2006-01-02") + `",
		"time": "09:00",
		"name": "Juan",
		"phone": "3001234567"
	}`

	rec := postJSON(r, "/api/citas", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	ap := repo.apps[1]
	if ap == nil {
		t.Fatalf("appointment not persisted")
	}
	if ap.Status != "pending" || ap.Paid {
		t.Fatalf("expected pending/unpaid, got %s paid=%v", ap.Status, ap.Paid)
	}
	if repo.services[1].Popularity != 1 {
		t.Fatalf("expected popularity 1, got %d", repo.services[1].Popularity)
	}

	owner := repo.users[ap.UserID]
	if owner == nil || owner.FirstName != "Juan" || owner.Phone != "3001234567" {
		t.Fatalf("walk-in owner not synthesized: %+v", owner)
	}
}

func TestCreate_AuthenticatedBooksAsSelf(t *testing.T) {
	repo := newStubRepo()
	issuer := token.NewIssuer("secret", "iss", "aud")
	r := bookingRouter(repo, issuer)

	signed, err := issuer.Issue(repo.users[10], time.Now())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// user_id in the body must be ignored for authenticated callers
	body := `{
		"barber_id": 1,
		"service_id": 1,
		"date": "` + time.Now().UTC().Format("2006-01-02") + `",
		"time": "10:00",
		"user_id": 999
	}`

	rec := postJSON(r, "/api/citas", body, signed)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if repo.apps[1].UserID != 10 {
		t.Fatalf("expected token subject as owner, got %d", repo.apps[1].UserID)
	}
}

func TestCreate_AnonymousWithoutIdentityRejected(t *testing.T) {
	repo := newStubRepo()
	r := bookingRouter(repo, token.NewIssuer("secret", "iss", "aud"))

	body := `{
		"barber_id": 1,
		"service_id": 1,
		"date": "` + time.Now().UTC().Format("2006-01-02") + `",
		"time": "09:00"
	}`

	rec := postJSON(r, "/api/citas", body, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(repo.apps) != 0 {
		t.Fatalf("no appointment should be created")
	}
}

func TestGet_ForbiddenForStranger(t *testing.T) {
	repo := newStubRepo()
	issuer := token.NewIssuer("secret", "iss", "aud")
	r := bookingRouter(repo, issuer)

	repo.apps[1] = &models.Appointment{ID: 1, UserID: 10, BarberID: 1, ServiceID: 1, Status: "pending"}

	stranger := &models.User{ID: 77, Username: "otro", Role: models.RoleClient}
	signed, err := issuer.Issue(stranger, time.Now())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/citas/1", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", rec.Code, rec.Body.String())
	}
}
