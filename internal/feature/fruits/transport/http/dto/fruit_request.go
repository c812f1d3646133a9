// Package dto defines data transfer objects for the fruits feature's
// HTTP transport layer.
package dto

import (
	"fmt"
	"time"

	"chusu_backend/internal/feature/fruits/domain/entity"
)

// DateLayout is the short form accepted for date fields; RFC3339 is
// accepted as well and used for all responses.
const DateLayout = "2006-01-02"

// FruitReq represents the request body for creating or replacing a
// fruit record. Dates arrive as strings so the API accepts both
// "2006-01-02" and RFC3339 timestamps.
type FruitReq struct {
	Name         string `json:"name" binding:"required"`
	Memo         string `json:"memo" binding:"required"`
	Prayer       string `json:"prayer"`
	ContactDate  string `json:"contactDate" binding:"required"`
	Category     string `json:"category" binding:"required,oneof=event other"`
	FollowUpDate string `json:"followUpDate"`
	ReminderDate string `json:"reminderDate"`
	Outcome      string `json:"outcome" binding:"omitempty,oneof=positive negative"`
	Reason       string `json:"reason"`
}

// ToEntity converts the request into a fruit entity without identity
// fields; owner and id are assigned by the usecase.
func (r *FruitReq) ToEntity() (*entity.Fruit, error) {
	contactDate, err := ParseDate(r.ContactDate)
	if err != nil {
		return nil, fmt.Errorf("contactDate: %w", err)
	}
	followUp, err := ParseOptionalDate(r.FollowUpDate)
	if err != nil {
		return nil, fmt.Errorf("followUpDate: %w", err)
	}
	reminder, err := ParseOptionalDate(r.ReminderDate)
	if err != nil {
		return nil, fmt.Errorf("reminderDate: %w", err)
	}

	return &entity.Fruit{
		Name:         r.Name,
		Memo:         r.Memo,
		Prayer:       r.Prayer,
		ContactDate:  contactDate,
		Category:     r.Category,
		FollowUpDate: followUp,
		ReminderDate: reminder,
		Outcome:      r.Outcome,
		Reason:       r.Reason,
	}, nil
}

// ParseDate parses a required date field.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(DateLayout, s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// ParseOptionalDate parses an optional date field; empty means absent.
func ParseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
