package services

import (
	"strings"

	"marketChat/internal/interfaces"
	"marketChat/internal/models"
	"marketChat/internal/validators"
)

type MessagingService struct {
	messageRepo interfaces.MessageRepository
}

func NewMessagingService(messageRepo interfaces.MessageRepository) *MessagingService {
	return &MessagingService{
		messageRepo: messageRepo,
	}
}

func (ms *MessagingService) SendMessage(request *models.SendMessageRequest) (*models.Message, []error) {
	var errors []error

	validationErrs := validators.ValidateSendMessage(request)
	if len(validationErrs) > 0 {
		errors = append(errors, validationErrs...)
		return nil, errors
	}

	message := &models.Message{
		SenderID:   request.SenderID,
		ReceiverID: request.ReceiverID,
		Content:    strings.TrimSpace(request.Content),
	}

	saved, err := ms.messageRepo.Save(message)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	return saved, nil
}

func (ms *MessagingService) GetThread(userA, userB string) ([]models.Message, []error) {
	var errors []error

	validationErrs := validators.ValidateUserPair(userA, userB)
	if len(validationErrs) > 0 {
		errors = append(errors, validationErrs...)
		return nil, errors
	}

	messages, err := ms.messageRepo.ThreadBetween(userA, userB)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	if messages == nil {
		messages = []models.Message{}
	}

	return messages, nil
}

func (ms *MessagingService) GetMessagesInvolving(userID string, page, size int) (*models.MessageListResponse, []error) {
	var errors []error

	validationErrs := validators.ValidateUserID(userID)
	if len(validationErrs) > 0 {
		errors = append(errors, validationErrs...)
		return nil, errors
	}

	response, err := ms.messageRepo.MessagesInvolvingPaged(userID, page, size)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	return response, nil
}

func (ms *MessagingService) MarkThreadRead(viewerID, partnerID string) (*models.MarkReadResponse, []error) {
	var errors []error

	validationErrs := validators.ValidateUserPair(viewerID, partnerID)
	if len(validationErrs) > 0 {
		errors = append(errors, validationErrs...)
		return nil, errors
	}

	updated, err := ms.messageRepo.MarkRead(viewerID, partnerID)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	return &models.MarkReadResponse{UpdatedCount: updated}, nil
}

func (ms *MessagingService) GetUnreadCount(viewerID, partnerID string) (*models.UnreadCountResponse, []error) {
	var errors []error

	validationErrs := validators.ValidateUserPair(viewerID, partnerID)
	if len(validationErrs) > 0 {
		errors = append(errors, validationErrs...)
		return nil, errors
	}

	count, err := ms.messageRepo.UnreadCount(viewerID, partnerID)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	return &models.UnreadCountResponse{Unread: count}, nil
}

func (ms *MessagingService) SearchMessages(query string) ([]models.Message, []error) {
	var errors []error

	validationErrs := validators.ValidateSearchQuery(query)
	if len(validationErrs) > 0 {
		errors = append(errors, validationErrs...)
		return nil, errors
	}

	messages, err := ms.messageRepo.SearchByContent(query)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	if messages == nil {
		messages = []models.Message{}
	}

	return messages, nil
}

// PurgeSelfMessages removes legacy self-addressed rows left over from before
// the write-time policy existed. Exposed on the maintenance route only.
func (ms *MessagingService) PurgeSelfMessages() (int64, []error) {
	var errors []error

	purged, err := ms.messageRepo.PurgeSelfMessages()
	if err != nil {
		errors = append(errors, err)
		return 0, errors
	}

	return purged, nil
}
