package services

import (
	"log"
	"sort"

	"github.com/samber/lo"

	"marketChat/internal/interfaces"
	"marketChat/internal/models"
	"marketChat/internal/validators"
)

// ConversationService derives the per-user conversation list from the flat
// message store. Nothing here is persisted; every call recomputes the view.
type ConversationService struct {
	messageRepo interfaces.MessageRepository
	profiles    interfaces.ProfileProvider
}

func NewConversationService(messageRepo interfaces.MessageRepository, profiles interfaces.ProfileProvider) *ConversationService {
	return &ConversationService{
		messageRepo: messageRepo,
		profiles:    profiles,
	}
}

// ListConversations scans every message touching the viewer, groups by
// partner, and builds one summary per partner. The per-partner unread count
// is a separate query, so the cost is O(partners) on top of the scan.
func (cs *ConversationService) ListConversations(viewerID string) ([]models.ConversationSummary, []error) {
	var errors []error

	validationErrs := validators.ValidateUserID(viewerID)
	if len(validationErrs) > 0 {
		errors = append(errors, validationErrs...)
		return nil, errors
	}

	messages, err := cs.messageRepo.MessagesInvolving(viewerID)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	lastByPartner := make(map[string]models.Message)
	for _, message := range messages {
		partnerID := message.SenderID
		if partnerID == viewerID {
			partnerID = message.ReceiverID
		}
		// Legacy self-addressed rows derive the viewer as their own partner;
		// they are skipped rather than surfaced as a conversation with oneself.
		if partnerID == viewerID {
			continue
		}

		last, seen := lastByPartner[partnerID]
		if !seen || newerThan(message, last) {
			lastByPartner[partnerID] = message
		}
	}

	summaries := make([]models.ConversationSummary, 0, len(lastByPartner))
	for _, partnerID := range lo.Keys(lastByPartner) {
		unread, err := cs.messageRepo.UnreadCount(viewerID, partnerID)
		if err != nil {
			errors = append(errors, err)
			return nil, errors
		}

		profile, err := cs.profiles.GetProfileSummary(partnerID)
		if err != nil {
			// One missing profile must not blank the whole inbox.
			log.Printf("Skipping conversation with %s: profile lookup failed: %v", partnerID, err)
			continue
		}

		lastMessage := lastByPartner[partnerID]
		summaries = append(summaries, models.ConversationSummary{
			PartnerID:   partnerID,
			DisplayName: profile.DisplayName,
			PhotoURL:    profile.PhotoURL,
			LastMessage: &lastMessage,
			Unread:      unread,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return newerThan(*summaries[i].LastMessage, *summaries[j].LastMessage)
	})

	return summaries, nil
}

// newerThan orders messages by creation time with id as the stable tie-breaker.
func newerThan(a, b models.Message) bool {
	if a.CreatedAt.Equal(b.CreatedAt) {
		return a.ID > b.ID
	}
	return a.CreatedAt.After(b.CreatedAt)
}
