// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account. It is the root of trust:
// every other record carries a back-reference to a User id.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Username is the public display name. Unique across all users.
	Username string `gorm:"uniqueIndex;size:255;not null"`

	// Email is the login identifier, stored lowercased and trimmed.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash. Plaintext is never stored and the
	// hash is never serialized to a response.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
