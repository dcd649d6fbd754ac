package repositories

import (
	"strings"

	"gorm.io/gorm"

	"marketChat/internal/models"
	"marketChat/internal/utils"
)

type ListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{
		db: db,
	}
}

// SearchByFields matches listings whose title or description contains the
// query, case-insensitively, newest first.
func (lr *ListingRepository) SearchByFields(query string) ([]models.Listing, error) {
	var listings []models.Listing
	pattern := "%" + utils.EscapeLike(strings.ToLower(query)) + "%"
	err := lr.db.
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Order("created_at DESC, id DESC").
		Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}
