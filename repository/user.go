package repository

import (
	"errors"

	"github.com/JahvoL/mall-end/models"
	"gorm.io/gorm"
)

// UserRepository is the single user lookup this service performs;
// everything else about users belongs to the auth service.
type UserRepository interface {
	// FindByUsername returns the user, or nil when no row matches.
	FindByUsername(username string) (*models.User, error)
}

type userGormRepository struct {
	db *gorm.DB
}

// NewUserGormRepository returns a UserRepository backed by the users
// table.
func NewUserGormRepository(db *gorm.DB) UserRepository {
	return &userGormRepository{db: db}
}

func (r *userGormRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
