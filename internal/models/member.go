package models

import (
	"time"

	"github.com/google/uuid"
)

// Member is a person known to the directory.
//
// Credentials are not stored here; identity is asserted by the bearer token
// issued outside this service.
type Member struct {
	// ID is the unique identifier for the member (UUID format).
	ID string

	// DisplayName is shown next to the member's share.
	DisplayName string

	// Email is the member's email address (unique).
	Email string

	// CreatedAt is the Unix timestamp when the member was added.
	CreatedAt int64
}

// NewMember returns a member with a fresh ID and creation time.
func NewMember(email, displayName string) *Member {
	return &Member{
		ID:          uuid.New().String(),
		DisplayName: displayName,
		Email:       email,
		CreatedAt:   time.Now().Unix(),
	}
}
