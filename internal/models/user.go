package models

import (
	"gorm.io/gorm"
)

// User is the local projection of a marketplace profile. Identity is owned by
// the external provider; ExternalID is the opaque id the messaging core keys on.
type User struct {
	gorm.Model
	ExternalID  string  `gorm:"uniqueIndex;not null" json:"external_id"`
	DisplayName string  `gorm:"not null" json:"display_name"`
	PhotoURL    *string `json:"photo_url"`
}

func (user *User) ToProfileSummary() *ProfileSummary {
	return &ProfileSummary{
		UserID:      user.ExternalID,
		DisplayName: user.DisplayName,
		PhotoURL:    user.PhotoURL,
	}
}
