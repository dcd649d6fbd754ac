package interfaces

import "marketChat/internal/models"

// ProfileProvider resolves an opaque user id to a display profile. Backed by
// the identity collaborator; a cache may sit in front of it.
type ProfileProvider interface {
	GetProfileSummary(userID string) (*models.ProfileSummary, error)
}
