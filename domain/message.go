package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is an immutable chat event. Both references must resolve to
// entities that already exist in the store when the message is created.
type Message struct {
	ID             uuid.UUID
	ConversationID uuid.UUID
	AuthorID       uuid.UUID
	Content        string
	CreatedAt      time.Time
}
