package domain

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is a titled thread. OwnerID must resolve to a User that
// already exists in the store when the conversation is created.
type Conversation struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Title     string
	CreatedAt time.Time
}
