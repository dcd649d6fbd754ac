package models

import (
	"gorm.io/gorm"
)

// Message is a single direct message between two users. Sender and receiver
// ids are opaque identifiers owned by the external identity provider.
// Read only ever transitions false -> true.
type Message struct {
	gorm.Model
	SenderID   string `gorm:"index;not null" json:"sender_id"`
	ReceiverID string `gorm:"index;not null" json:"receiver_id"`
	Content    string `gorm:"not null" json:"content"`
	Read       bool   `gorm:"default:false" json:"read"`
}
