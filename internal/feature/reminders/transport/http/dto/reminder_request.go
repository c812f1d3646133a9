// Package dto defines data transfer objects for the reminders feature's
// HTTP transport layer.
package dto

import (
	"fmt"
	"time"

	"chusu_backend/internal/feature/reminders/domain/entity"
)

// ReminderReq represents the request body for creating or replacing a
// reminder. DueDate accepts "2006-01-02" or RFC3339.
type ReminderReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate" binding:"required"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high"`
	Completed   bool   `json:"completed"`
}

// ToEntity converts the request into a reminder entity without
// identity fields.
func (r *ReminderReq) ToEntity() (*entity.Reminder, error) {
	due, err := parseDate(r.DueDate)
	if err != nil {
		return nil, fmt.Errorf("dueDate: %w", err)
	}
	return &entity.Reminder{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     due,
		Priority:    r.Priority,
		Completed:   r.Completed,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}
