package identity

import (
	"context"

	"github.com/urbanbarber/api/internal/models"
)

type Repository interface {
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// FindUserByIdentifier matches username OR email OR phone, first hit wins.
	FindUserByIdentifier(
		ctx context.Context,
		identifier string,
	) (*models.User, error)

	UsernameExists(
		ctx context.Context,
		username string,
	) (bool, error)

	EmailExists(
		ctx context.Context,
		email string,
	) (bool, error)

	PhoneExists(
		ctx context.Context,
		phone string,
	) (bool, error)

	CreateUser(
		ctx context.Context,
		user *models.User,
	) error
}
