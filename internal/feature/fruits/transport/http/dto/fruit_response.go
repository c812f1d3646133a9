package dto

import (
	"time"

	"chusu_backend/internal/feature/fruits/domain/entity"
)

// FruitView is the JSON representation of a fruit record. Optional
// dates serialize as null when absent.
type FruitView struct {
	ID           uint       `json:"id"`
	Name         string     `json:"name"`
	Memo         string     `json:"memo"`
	Prayer       string     `json:"prayer"`
	ContactDate  time.Time  `json:"contactDate"`
	Category     string     `json:"category"`
	FollowUpDate *time.Time `json:"followUpDate"`
	ReminderDate *time.Time `json:"reminderDate"`
	Outcome      string     `json:"outcome"`
	Reason       string     `json:"reason"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// NewFruitView builds the response view of a fruit.
func NewFruitView(f *entity.Fruit) FruitView {
	return FruitView{
		ID:           f.ID,
		Name:         f.Name,
		Memo:         f.Memo,
		Prayer:       f.Prayer,
		ContactDate:  f.ContactDate,
		Category:     f.Category,
		FollowUpDate: f.FollowUpDate,
		ReminderDate: f.ReminderDate,
		Outcome:      f.Outcome,
		Reason:       f.Reason,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}

// NewFruitViews converts a slice of fruits.
func NewFruitViews(fruits []entity.Fruit) []FruitView {
	out := make([]FruitView, 0, len(fruits))
	for i := range fruits {
		out = append(out, NewFruitView(&fruits[i]))
	}
	return out
}
