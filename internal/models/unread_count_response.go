package models

type UnreadCountResponse struct {
	Unread int64 `json:"unread"`
}
