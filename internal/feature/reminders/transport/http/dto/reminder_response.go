package dto

import (
	"time"

	"chusu_backend/internal/feature/reminders/domain/entity"
)

// ReminderView is the JSON representation of a reminder.
type ReminderView struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	Priority    string    `json:"priority"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewReminderView builds the response view of a reminder.
func NewReminderView(r *entity.Reminder) ReminderView {
	return ReminderView{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Priority:    r.Priority,
		Completed:   r.Completed,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// NewReminderViews converts a slice of reminders.
func NewReminderViews(reminders []entity.Reminder) []ReminderView {
	out := make([]ReminderView, 0, len(reminders))
	for i := range reminders {
		out = append(out, NewReminderView(&reminders[i]))
	}
	return out
}
