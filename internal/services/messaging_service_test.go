package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"marketChat/internal/errs"
	"marketChat/internal/models"
)

func sendOrFail(t *testing.T, service *MessagingService, sender, receiver, content string) *models.Message {
	t.Helper()
	message, errors := service.SendMessage(&models.SendMessageRequest{
		SenderID:   sender,
		ReceiverID: receiver,
		Content:    content,
	})
	require.Empty(t, errors)
	return message
}

func Test_SendMessage_PersistsWithDefaults(t *testing.T) {
	req := require.New(t)
	service := NewMessagingService(newFakeMessageRepository())

	message := sendOrFail(t, service, "alice", "bob", "hi")
	req.NotZero(message.ID)
	req.False(message.Read)
	req.Equal("alice", message.SenderID)
	req.Equal("bob", message.ReceiverID)
	req.False(message.CreatedAt.IsZero())
}

func Test_SendMessage_Validation(t *testing.T) {
	tests := []struct {
		name     string
		request  models.SendMessageRequest
		expected error
	}{
		{"missing sender", models.SendMessageRequest{ReceiverID: "bob", Content: "hi"}, errs.ErrSenderRequired},
		{"missing receiver", models.SendMessageRequest{SenderID: "alice", Content: "hi"}, errs.ErrReceiverRequired},
		{"missing content", models.SendMessageRequest{SenderID: "alice", ReceiverID: "bob"}, errs.ErrContentRequired},
		{"blank content", models.SendMessageRequest{SenderID: "alice", ReceiverID: "bob", Content: "   "}, errs.ErrContentRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewMessagingService(newFakeMessageRepository())
			message, errors := service.SendMessage(&tt.request)
			require.Nil(t, message)
			require.Contains(t, errors, tt.expected)
		})
	}
}

func Test_SendMessage_RejectsSelfMessage(t *testing.T) {
	req := require.New(t)
	service := NewMessagingService(newFakeMessageRepository())

	message, errors := service.SendMessage(&models.SendMessageRequest{
		SenderID:   "alice",
		ReceiverID: "alice",
		Content:    "note to self",
	})
	req.Nil(message)
	req.Contains(errors, errs.ErrSelfMessage)

	thread, errors := service.GetThread("alice", "alice")
	req.Empty(errors)
	req.Empty(thread)
}

func Test_GetThread_OrdersByCreationTime(t *testing.T) {
	req := require.New(t)
	service := NewMessagingService(newFakeMessageRepository())

	sendOrFail(t, service, "alice", "bob", "hi")
	sendOrFail(t, service, "alice", "bob", "there")
	sendOrFail(t, service, "alice", "bob", "bob")
	sendOrFail(t, service, "bob", "alice", "hey")

	thread, errors := service.GetThread("alice", "bob")
	req.Empty(errors)
	req.Len(thread, 4)

	var contents []string
	for _, message := range thread {
		contents = append(contents, message.Content)
	}
	req.Equal([]string{"hi", "there", "bob", "hey"}, contents)

	// Same thread regardless of argument order.
	reversed, errors := service.GetThread("bob", "alice")
	req.Empty(errors)
	req.Equal(thread, reversed)
}

func Test_GetThread_EmptyHistory(t *testing.T) {
	req := require.New(t)
	service := NewMessagingService(newFakeMessageRepository())

	thread, errors := service.GetThread("alice", "bob")
	req.Empty(errors)
	req.NotNil(thread)
	req.Empty(thread)
}

func Test_UnreadCount_Accounting(t *testing.T) {
	req := require.New(t)
	service := NewMessagingService(newFakeMessageRepository())

	for i := 0; i < 3; i++ {
		sendOrFail(t, service, "pat", "viv", "ping")
	}

	unread, errors := service.GetUnreadCount("viv", "pat")
	req.Empty(errors)
	req.EqualValues(3, unread.Unread)

	marked, errors := service.MarkThreadRead("viv", "pat")
	req.Empty(errors)
	req.EqualValues(3, marked.UpdatedCount)

	unread, errors = service.GetUnreadCount("viv", "pat")
	req.Empty(errors)
	req.EqualValues(0, unread.Unread)

	sendOrFail(t, service, "pat", "viv", "one more")
	unread, errors = service.GetUnreadCount("viv", "pat")
	req.Empty(errors)
	req.EqualValues(1, unread.Unread)
}

func Test_MarkThreadRead_Idempotent(t *testing.T) {
	req := require.New(t)
	service := NewMessagingService(newFakeMessageRepository())

	sendOrFail(t, service, "pat", "viv", "hello")
	sendOrFail(t, service, "pat", "viv", "again")

	first, errors := service.MarkThreadRead("viv", "pat")
	req.Empty(errors)
	req.EqualValues(2, first.UpdatedCount)

	second, errors := service.MarkThreadRead("viv", "pat")
	req.Empty(errors)
	req.EqualValues(0, second.UpdatedCount)

	unread, errors := service.GetUnreadCount("viv", "pat")
	req.Empty(errors)
	req.EqualValues(0, unread.Unread)
}

func Test_MarkThreadRead_OnlyAffectsOneDirection(t *testing.T) {
	req := require.New(t)
	service := NewMessagingService(newFakeMessageRepository())

	sendOrFail(t, service, "alice", "bob", "hi")
	sendOrFail(t, service, "alice", "bob", "there")
	sendOrFail(t, service, "alice", "bob", "bob")
	sendOrFail(t, service, "bob", "alice", "hey")

	unreadBob, _ := service.GetUnreadCount("bob", "alice")
	req.EqualValues(3, unreadBob.Unread)
	unreadAlice, _ := service.GetUnreadCount("alice", "bob")
	req.EqualValues(1, unreadAlice.Unread)

	marked, errors := service.MarkThreadRead("bob", "alice")
	req.Empty(errors)
	req.EqualValues(3, marked.UpdatedCount)

	unreadBob, _ = service.GetUnreadCount("bob", "alice")
	req.EqualValues(0, unreadBob.Unread)
	unreadAlice, _ = service.GetUnreadCount("alice", "bob")
	req.EqualValues(1, unreadAlice.Unread)
}

func Test_SearchMessages_CaseInsensitiveNewestFirst(t *testing.T) {
	req := require.New(t)
	service := NewMessagingService(newFakeMessageRepository())

	sendOrFail(t, service, "alice", "bob", "Selling my Bike")
	sendOrFail(t, service, "bob", "alice", "still got the bike?")
	sendOrFail(t, service, "alice", "bob", "textbooks for sale")

	results, errors := service.SearchMessages("BIKE")
	req.Empty(errors)
	req.Len(results, 2)
	req.Equal("still got the bike?", results[0].Content)
	req.Equal("Selling my Bike", results[1].Content)
}

func Test_SearchMessages_EmptyQueryRejected(t *testing.T) {
	req := require.New(t)
	service := NewMessagingService(newFakeMessageRepository())

	results, errors := service.SearchMessages("  ")
	req.Nil(results)
	req.Contains(errors, errs.ErrQueryRequired)
}

func Test_PurgeSelfMessages_RemovesOnlySelfRows(t *testing.T) {
	req := require.New(t)
	repo := newFakeMessageRepository()
	service := NewMessagingService(repo)

	sendOrFail(t, service, "alice", "bob", "hi")
	repo.inject("carol", "carol", "legacy self message")
	repo.inject("carol", "carol", "another one")

	purged, errors := service.PurgeSelfMessages()
	req.Empty(errors)
	req.EqualValues(2, purged)

	thread, errors := service.GetThread("alice", "bob")
	req.Empty(errors)
	req.Len(thread, 1)
}
