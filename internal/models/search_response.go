package models

type SearchResponse struct {
	Messages []Message `json:"messages"`
	Listings []Listing `json:"listings"`
}
