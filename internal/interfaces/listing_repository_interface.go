package interfaces

import "marketChat/internal/models"

type ListingRepository interface {
	SearchByFields(query string) ([]models.Listing, error)
}
