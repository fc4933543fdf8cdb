package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/urbanbarber/api/internal/audit"
	domain "github.com/urbanbarber/api/internal/domain/identity"
	"github.com/urbanbarber/api/internal/httperr"
	"github.com/urbanbarber/api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type RegisterInput struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
}

// ======================================================
// USE CASE
// ======================================================

type Register struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRegister(repo domain.Repository, audit *audit.Dispatcher) *Register {
	return &Register{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute creates a client account. Uniqueness is pre-checked in
// username, email, phone order; the store's unique indexes are the final
// backstop under concurrent registration.
func (uc *Register) Execute(
	ctx context.Context,
	in RegisterInput,
) (*models.User, error) {

	taken, err := uc.repo.UsernameExists(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("username_taken")
	}

	taken, err = uc.repo.EmailExists(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("email_taken")
	}

	taken, err = uc.repo.PhoneExists(ctx, in.Phone)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("phone_taken")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     in.Username,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: string(hashed),
		Role:         models.RoleClient,
		RegisteredAt: time.Now().UTC(),
	}

	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &user.ID,
	})

	return user, nil
}
