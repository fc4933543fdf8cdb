package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/urbanbarber/api/internal/audit"
	domain "github.com/urbanbarber/api/internal/domain/identity"
	"github.com/urbanbarber/api/internal/httperr"
	"github.com/urbanbarber/api/internal/models"
	"github.com/urbanbarber/api/internal/token"
)

type LoginInput struct {
	// Identifier may be a username, an email, or a phone number.
	Identifier string
	Password   string
}

type LoginOutput struct {
	Token string
	User  *models.User
}

type Login struct {
	repo   domain.Repository
	issuer *token.Issuer
	audit  *audit.Dispatcher
}

func NewLogin(
	repo domain.Repository,
	issuer *token.Issuer,
	audit *audit.Dispatcher,
) *Login {
	return &Login{
		repo:   repo,
		issuer: issuer,
		audit:  audit,
	}
}

func (uc *Login) Execute(
	ctx context.Context,
	in LoginInput,
) (*LoginOutput, error) {

	user, err := uc.repo.FindUserByIdentifier(ctx, in.Identifier)
	if err != nil {
		return nil, httperr.ErrBusiness("user_not_found")
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		[]byte(in.Password),
	); err != nil {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	signed, err := uc.issuer.Issue(user, time.Now())
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_logged_in",
		Entity:   "user",
		EntityID: &user.ID,
	})

	return &LoginOutput{Token: signed, User: user}, nil
}
