package auth

import (
	"context"

	domain "github.com/urbanbarber/api/internal/domain/identity"
	"github.com/urbanbarber/api/internal/httperr"
	"github.com/urbanbarber/api/internal/models"
)

type GetProfile struct {
	repo domain.Repository
}

func NewGetProfile(repo domain.Repository) *GetProfile {
	return &GetProfile{repo: repo}
}

func (uc *GetProfile) Execute(ctx context.Context, userID uint) (*models.User, error) {
	user, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, httperr.ErrBusiness("user_not_found")
	}
	return user, nil
}
