package repository

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"campus-food-api/apperrors"
	"campus-food-api/models"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create inserts user, failing with ErrAlreadyExists when the email is taken
func (r *UserRepo) Create(user *models.User) error {
	if _, err := r.FindByEmail(user.Email); err == nil {
		return apperrors.AlreadyExists("email %s is already registered", user.Email)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	return errors.Wrap(r.db.Create(user).Error, "create user")
}

func (r *UserRepo) FindByEmail(email string) (models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, apperrors.NotFound("user with email %s", email)
	}
	return user, errors.Wrap(err, "find user by email")
}

func (r *UserRepo) FindByID(id string) (models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, apperrors.NotFound("user %s", id)
	}
	return user, errors.Wrap(err, "find user")
}
