package services

import (
	"sort"
	"strings"
	"sync"
	"time"

	"marketChat/internal/errs"
	"marketChat/internal/models"
)

// fakeMessageRepository is an in-memory stand-in for the gorm store with the
// same ordering and idempotence semantics.
type fakeMessageRepository struct {
	mu       sync.Mutex
	messages []models.Message
	nextID   uint
	clock    time.Time
}

func newFakeMessageRepository() *fakeMessageRepository {
	return &fakeMessageRepository{
		clock: time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (f *fakeMessageRepository) Save(message *models.Message) (*models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.clock = f.clock.Add(time.Millisecond)
	message.ID = f.nextID
	message.CreatedAt = f.clock
	f.messages = append(f.messages, *message)
	return message, nil
}

func (f *fakeMessageRepository) ThreadBetween(userA, userB string) ([]models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []models.Message
	for _, m := range f.messages {
		if (m.SenderID == userA && m.ReceiverID == userB) ||
			(m.SenderID == userB && m.ReceiverID == userA) {
			result = append(result, m)
		}
	}
	sortAscending(result)
	return result, nil
}

func (f *fakeMessageRepository) MessagesInvolving(userID string) ([]models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []models.Message
	for _, m := range f.messages {
		if m.SenderID == userID || m.ReceiverID == userID {
			result = append(result, m)
		}
	}
	sortAscending(result)
	return result, nil
}

func (f *fakeMessageRepository) MessagesInvolvingPaged(userID string, page, size int) (*models.MessageListResponse, error) {
	all, _ := f.MessagesInvolving(userID)
	sort.Slice(all, func(i, j int) bool { return !messageLess(all[i], all[j]) })
	total := int64(len(all))
	start := (page - 1) * size
	if start > len(all) {
		start = len(all)
	}
	end := start + size
	if end > len(all) {
		end = len(all)
	}
	return &models.MessageListResponse{
		Messages: all[start:end],
		Page:     page,
		Size:     size,
		Total:    total,
	}, nil
}

func (f *fakeMessageRepository) SearchByContent(query string) ([]models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	needle := strings.ToLower(query)
	var result []models.Message
	for _, m := range f.messages {
		if strings.Contains(strings.ToLower(m.Content), needle) {
			result = append(result, m)
		}
	}
	sort.Slice(result, func(i, j int) bool { return !messageLess(result[i], result[j]) })
	return result, nil
}

func (f *fakeMessageRepository) UnreadCount(viewerID, partnerID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, m := range f.messages {
		if m.ReceiverID == viewerID && m.SenderID == partnerID && !m.Read {
			count++
		}
	}
	return count, nil
}

func (f *fakeMessageRepository) MarkRead(viewerID, partnerID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var updated int64
	for i := range f.messages {
		m := &f.messages[i]
		if m.ReceiverID == viewerID && m.SenderID == partnerID && !m.Read {
			m.Read = true
			updated++
		}
	}
	return updated, nil
}

func (f *fakeMessageRepository) PurgeSelfMessages() (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var kept []models.Message
	var purged int64
	for _, m := range f.messages {
		if m.SenderID == m.ReceiverID {
			purged++
			continue
		}
		kept = append(kept, m)
	}
	f.messages = kept
	return purged, nil
}

// inject places a raw row into the store, bypassing validation. Used to
// simulate legacy data such as self-addressed messages.
func (f *fakeMessageRepository) inject(senderID, receiverID, content string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.clock = f.clock.Add(time.Millisecond)
	message := models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	}
	message.ID = f.nextID
	message.CreatedAt = f.clock
	f.messages = append(f.messages, message)
}

func sortAscending(messages []models.Message) {
	sort.Slice(messages, func(i, j int) bool { return messageLess(messages[i], messages[j]) })
}

func messageLess(a, b models.Message) bool {
	if a.CreatedAt.Equal(b.CreatedAt) {
		return a.ID < b.ID
	}
	return a.CreatedAt.Before(b.CreatedAt)
}

type fakeProfileProvider struct {
	profiles map[string]*models.ProfileSummary
	failFor  map[string]error
}

func newFakeProfileProvider(userIDs ...string) *fakeProfileProvider {
	profiles := make(map[string]*models.ProfileSummary)
	for _, id := range userIDs {
		profiles[id] = &models.ProfileSummary{
			UserID:      id,
			DisplayName: "user " + id,
		}
	}
	return &fakeProfileProvider{
		profiles: profiles,
		failFor:  make(map[string]error),
	}
}

func (f *fakeProfileProvider) GetProfileSummary(userID string) (*models.ProfileSummary, error) {
	if err, ok := f.failFor[userID]; ok {
		return nil, err
	}
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	return profile, nil
}
