package models

import (
	"time"

	"github.com/google/uuid"
)

// User owns one pricing workspace. Passwords are only ever stored as bcrypt hashes.
type User struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"` // Never serialize in JSON
	Name         string     `json:"name" db:"name"`
	Company      *string    `json:"company,omitempty" db:"company"`
	Phone        *string    `json:"phone,omitempty" db:"phone"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	LastLogin    *time.Time `json:"lastLogin,omitempty" db:"last_login"`
}
