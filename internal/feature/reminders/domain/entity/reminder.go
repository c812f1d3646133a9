// Package entity defines the domain entities for the reminders feature.
package entity

import "time"

// Reminder priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Reminder is a scheduled, user-dismissible to-do item.
type Reminder struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"index;not null"`

	Title       string `gorm:"size:255;not null"`
	Description string

	// DueDate is the scheduled date-time.
	DueDate time.Time `gorm:"not null"`

	// Priority is low, medium or high; create defaults to medium.
	Priority string `gorm:"size:16;not null;default:medium"`

	Completed bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
