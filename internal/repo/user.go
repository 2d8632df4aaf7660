package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/crickmart/backend/internal/models"
)

var ErrEmailExists = errors.New("email already registered")

// CreateUser inserts u. The unique index on email is the arbiter: a
// duplicate insert, pre-existing or raced, comes back as ErrEmailExists.
func (r *GormRepo) CreateUser(ctx context.Context, u *models.User) error {
	tx := r.DB.WithContext(ctx).Where("email = ?", u.Email).FirstOrCreate(u)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrDuplicatedKey) {
			return ErrEmailExists
		}
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrEmailExists
	}
	return nil
}

func (r *GormRepo) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
