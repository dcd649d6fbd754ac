package repositories

import (
	"strings"

	"gorm.io/gorm"

	"marketChat/internal/models"
	"marketChat/internal/utils"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{
		db: db,
	}
}

// Save persists a single message. One insert, fully applied or not at all.
func (mr *MessageRepository) Save(message *models.Message) (*models.Message, error) {
	if err := mr.db.Create(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}

// ThreadBetween returns every message exchanged between the two users, in both
// directions, ordered ascending by creation time with id as the tie-breaker.
func (mr *MessageRepository) ThreadBetween(userA, userB string) ([]models.Message, error) {
	var messages []models.Message
	err := mr.db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// MessagesInvolving returns every message where the user is sender or
// receiver. This is the input to the conversation derivation.
func (mr *MessageRepository) MessagesInvolving(userID string) ([]models.Message, error) {
	var messages []models.Message
	err := mr.db.
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (mr *MessageRepository) MessagesInvolvingPaged(userID string, page, size int) (*models.MessageListResponse, error) {
	var messages []models.Message
	var total int64

	transactionErr := mr.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Scopes(utils.Paginate(page, size)).
			Where("sender_id = ? OR receiver_id = ?", userID, userID).
			Order("created_at DESC, id DESC").
			Find(&messages).Error; err != nil {
			return err
		}

		if err := tx.
			Model(&models.Message{}).
			Where("sender_id = ? OR receiver_id = ?", userID, userID).
			Count(&total).Error; err != nil {
			return err
		}

		return nil
	})
	if transactionErr != nil {
		return nil, transactionErr
	}

	return &models.MessageListResponse{
		Messages: messages,
		Page:     page,
		Size:     size,
		Total:    total,
	}, nil
}

// SearchByContent does a case-insensitive substring scan over message bodies,
// newest first. No tokenization, no ranking.
func (mr *MessageRepository) SearchByContent(query string) ([]models.Message, error) {
	var messages []models.Message
	pattern := "%" + utils.EscapeLike(strings.ToLower(query)) + "%"
	err := mr.db.
		Where("LOWER(content) LIKE ?", pattern).
		Order("created_at DESC, id DESC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (mr *MessageRepository) UnreadCount(viewerID, partnerID string) (int64, error) {
	var count int64
	err := mr.db.
		Model(&models.Message{}).
		Where("receiver_id = ? AND sender_id = ? AND read = ?", viewerID, partnerID, false).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// MarkRead flips every unread message from partner to viewer in one bulk
// update. The read = false guard makes a repeated call a no-op, so zero rows
// affected is success, not an error.
func (mr *MessageRepository) MarkRead(viewerID, partnerID string) (int64, error) {
	result := mr.db.
		Model(&models.Message{}).
		Where("receiver_id = ? AND sender_id = ? AND read = ?", viewerID, partnerID, false).
		Update("read", true)
	if err := result.Error; err != nil {
		return 0, err
	}
	return result.RowsAffected, nil
}

// PurgeSelfMessages soft-deletes legacy self-addressed rows. Maintenance only;
// new self-messages are rejected at validation.
func (mr *MessageRepository) PurgeSelfMessages() (int64, error) {
	result := mr.db.
		Where("sender_id = receiver_id").
		Delete(&models.Message{})
	if err := result.Error; err != nil {
		return 0, err
	}
	return result.RowsAffected, nil
}
