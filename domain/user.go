// Package domain contains core concepts of the chat system.
// Entities reference each other by identifier only, never by embedded
// structs, so no ownership cycle can form between them.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account holder. Name is unique across the store and
// immutable after creation. PasswordHash is an opaque one-way
// transform of the secret, never the plaintext.
type User struct {
	ID           uuid.UUID
	Name         string
	CreatedAt    time.Time
	PasswordHash string
	About        string
}
