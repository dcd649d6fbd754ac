package validators

import (
	"strings"

	"marketChat/internal/errs"
	"marketChat/internal/models"
)

func ValidateSendMessage(request *models.SendMessageRequest) []error {
	var errors []error
	if request == nil {
		errors = append(errors, errs.ErrInvalidRequestBody)
		return errors
	}

	if strings.TrimSpace(request.SenderID) == "" {
		errors = append(errors, errs.ErrSenderRequired)
	}

	if strings.TrimSpace(request.ReceiverID) == "" {
		errors = append(errors, errs.ErrReceiverRequired)
	}

	if strings.TrimSpace(request.Content) == "" {
		errors = append(errors, errs.ErrContentRequired)
	}

	// Self-addressed messages are rejected up front instead of accumulating
	// degenerate single-party conversations in the store.
	if len(errors) == 0 && request.SenderID == request.ReceiverID {
		errors = append(errors, errs.ErrSelfMessage)
	}

	return errors
}

func ValidateSearchQuery(query string) []error {
	var errors []error
	if strings.TrimSpace(query) == "" {
		errors = append(errors, errs.ErrQueryRequired)
	}
	return errors
}

func ValidateUserID(userID string) []error {
	var errors []error
	if strings.TrimSpace(userID) == "" {
		errors = append(errors, errs.ErrInvalidParams)
	}
	return errors
}

func ValidateUserPair(userA, userB string) []error {
	var errors []error
	if strings.TrimSpace(userA) == "" || strings.TrimSpace(userB) == "" {
		errors = append(errors, errs.ErrInvalidParams)
	}
	return errors
}
