// Package entity defines the domain entities for the notes feature.
package entity

import "time"

// Note is a freeform user note. Title and content are both required.
type Note struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"index;not null"`

	Title   string `gorm:"size:255;not null"`
	Content string `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
