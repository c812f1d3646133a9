// Package entity defines the domain entities for the fruits feature.
package entity

import "time"

// Fruit categories. "other" is the canonical spelling of the source
// API's "autre".
const (
	CategoryEvent = "event"
	CategoryOther = "other"
)

// Fruit outcomes. Empty means not yet decided.
const (
	OutcomePositive = "positive"
	OutcomeNegative = "negative"
	OutcomeNone     = ""
)

// Fruit is a tracked contact/outreach entry with follow-up date and
// outcome. Every fruit belongs to exactly one user; the owner id is
// immutable after creation.
type Fruit struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"index;not null"`

	// Name is the contact's name.
	Name string `gorm:"size:255;not null"`

	// Memo is the required freeform note for the entry.
	Memo string `gorm:"not null"`

	// Prayer is an optional prayer text.
	Prayer string

	// ContactDate is the primary contact date.
	ContactDate time.Time `gorm:"not null"`

	// Category is either CategoryEvent or CategoryOther.
	Category string `gorm:"size:16;not null"`

	FollowUpDate *time.Time
	ReminderDate *time.Time

	// Outcome is OutcomePositive, OutcomeNegative or empty.
	Outcome string `gorm:"size:16"`

	// Reason optionally explains the outcome.
	Reason string

	CreatedAt time.Time
	UpdatedAt time.Time
}
