package interfaces

import "marketChat/internal/models"

// MessageRepository is the durable message store. The conversation view is
// always derived from it at query time, never materialized.
type MessageRepository interface {
	Save(message *models.Message) (*models.Message, error)
	ThreadBetween(userA, userB string) ([]models.Message, error)
	MessagesInvolving(userID string) ([]models.Message, error)
	MessagesInvolvingPaged(userID string, page, size int) (*models.MessageListResponse, error)
	SearchByContent(query string) ([]models.Message, error)
	UnreadCount(viewerID, partnerID string) (int64, error)
	MarkRead(viewerID, partnerID string) (int64, error)
	PurgeSelfMessages() (int64, error)
}
