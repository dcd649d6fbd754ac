package models

type MarkReadResponse struct {
	UpdatedCount int64 `json:"updated_count"`
}
