package models

// ConversationSummary is derived from the message store at query time and
// never persisted. One entry per conversation partner of the viewer.
type ConversationSummary struct {
	PartnerID   string   `json:"partner_id"`
	DisplayName string   `json:"display_name"`
	PhotoURL    *string  `json:"photo_url"`
	LastMessage *Message `json:"last_message"`
	Unread      int64    `json:"unread"`
}
