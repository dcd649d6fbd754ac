package repositories

import (
	"errors"

	"gorm.io/gorm"

	"marketChat/internal/errs"
	"marketChat/internal/models"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{
		db: db,
	}
}

func (pr *ProfileRepository) GetProfileSummary(userID string) (*models.ProfileSummary, error) {
	var user models.User
	if err := pr.db.Where("external_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}
	return user.ToProfileSummary(), nil
}
