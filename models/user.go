package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authentication account. Everything the application
// shows about a person lives on the Profile sharing the same ID.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize password hash
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
