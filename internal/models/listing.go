package models

import (
	"gorm.io/gorm"
)

// Listing is the slice of the catalog the global search feature scans.
// Listing CRUD lives in the catalog service, not here.
type Listing struct {
	gorm.Model
	SellerID    string `gorm:"index;not null" json:"seller_id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
}
