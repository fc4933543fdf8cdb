package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/urbanbarber/api/internal/domain/identity"
	"github.com/urbanbarber/api/internal/httperr"
	"github.com/urbanbarber/api/internal/models"
)

type IdentityGormRepository struct {
	db *gorm.DB
}

func NewIdentityGormRepository(db *gorm.DB) *IdentityGormRepository {
	return &IdentityGormRepository{db: db}
}

func (r *IdentityGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *IdentityGormRepository) FindUserByIdentifier(
	ctx context.Context,
	identifier string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("username = ? OR email = ? OR phone = ?",
			identifier, identifier, identifier).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *IdentityGormRepository) UsernameExists(
	ctx context.Context,
	username string,
) (bool, error) {
	return r.exists(ctx, "username = ?", username)
}

func (r *IdentityGormRepository) EmailExists(
	ctx context.Context,
	email string,
) (bool, error) {
	return r.exists(ctx, "email = ?", email)
}

func (r *IdentityGormRepository) PhoneExists(
	ctx context.Context,
	phone string,
) (bool, error) {
	return r.exists(ctx, "phone = ?", phone)
}

func (r *IdentityGormRepository) exists(
	ctx context.Context,
	query string,
	arg string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where(query, arg).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateUser relies on the unique indexes as the backstop for the
// registration pre-checks; duplicate-key failures surface as a business
// conflict.
func (r *IdentityGormRepository) CreateUser(
	ctx context.Context,
	user *models.User,
) error {

	err := r.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.ErrBusiness("identity_conflict")
	}
	return err
}

// Compile-time check
var _ domain.Repository = (*IdentityGormRepository)(nil)
