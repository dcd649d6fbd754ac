package services

import (
	"marketChat/internal/interfaces"
	"marketChat/internal/models"
	"marketChat/internal/validators"
)

type ListingService struct {
	listingRepo interfaces.ListingRepository
}

func NewListingService(listingRepo interfaces.ListingRepository) *ListingService {
	return &ListingService{
		listingRepo: listingRepo,
	}
}

func (ls *ListingService) SearchListings(query string) ([]models.Listing, []error) {
	var errors []error

	validationErrs := validators.ValidateSearchQuery(query)
	if len(validationErrs) > 0 {
		errors = append(errors, validationErrs...)
		return nil, errors
	}

	listings, err := ls.listingRepo.SearchByFields(query)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	if listings == nil {
		listings = []models.Listing{}
	}

	return listings, nil
}
