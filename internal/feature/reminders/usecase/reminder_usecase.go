// Package usecase implements the business logic for reminders.
package usecase

import (
	"context"
	"time"

	"chusu_backend/internal/feature/reminders/domain/entity"
)

// UrgentWindowDays is how far ahead a reminder counts as urgent.
const UrgentWindowDays = 3

// ReminderRepository abstracts the persistence layer for reminders.
// Every operation is scoped by the owning user's id.
type ReminderRepository interface {
	// List returns the user's reminders ordered by due date ascending.
	List(ctx context.Context, userID uint) ([]entity.Reminder, error)

	// ListDueBetween returns incomplete reminders due in [from, to],
	// ordered by due date ascending.
	ListDueBetween(ctx context.Context, userID uint, from, to time.Time) ([]entity.Reminder, error)

	// FindByID returns the reminder owned by userID, or ErrNotFound.
	FindByID(ctx context.Context, userID, id uint) (*entity.Reminder, error)

	// Create persists a new reminder.
	Create(ctx context.Context, reminder *entity.Reminder) error

	// Update persists all fields of an existing reminder.
	Update(ctx context.Context, reminder *entity.Reminder) error

	// Delete removes the reminder owned by userID, or returns ErrNotFound.
	Delete(ctx context.Context, userID, id uint) error

	// CountIncomplete returns how many open reminders the user has.
	CountIncomplete(ctx context.Context, userID uint) (int64, error)
}

// ReminderUsecase provides owner-scoped CRUD and the urgent listing.
type ReminderUsecase struct {
	repo ReminderRepository
	// now is injectable so tests can pin the clock.
	now func() time.Time
}

// NewReminderUsecase creates a new ReminderUsecase.
func NewReminderUsecase(r ReminderRepository) *ReminderUsecase {
	return &ReminderUsecase{repo: r, now: time.Now}
}

// WithClock replaces the usecase clock. Test helper.
func (u *ReminderUsecase) WithClock(now func() time.Time) *ReminderUsecase {
	u.now = now
	return u
}

// List returns all reminders of the user, soonest first.
func (u *ReminderUsecase) List(ctx context.Context, userID uint) ([]entity.Reminder, error) {
	return u.repo.List(ctx, userID)
}

// ListUrgent returns incomplete reminders due between today 00:00 and
// the end of the third day from now, server-local time.
func (u *ReminderUsecase) ListUrgent(ctx context.Context, userID uint) ([]entity.Reminder, error) {
	now := u.now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, UrgentWindowDays+1).Add(-time.Second)
	return u.repo.ListDueBetween(ctx, userID, from, to)
}

// Get returns one reminder of the user.
func (u *ReminderUsecase) Get(ctx context.Context, userID, id uint) (*entity.Reminder, error) {
	return u.repo.FindByID(ctx, userID, id)
}

// Create stores a new reminder; priority defaults to medium.
func (u *ReminderUsecase) Create(ctx context.Context, userID uint, reminder *entity.Reminder) (*entity.Reminder, error) {
	reminder.ID = 0
	reminder.UserID = userID
	if reminder.Priority == "" {
		reminder.Priority = entity.PriorityMedium
	}
	if err := u.repo.Create(ctx, reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

// Update replaces the mutable fields, including the completed flag.
func (u *ReminderUsecase) Update(ctx context.Context, userID, id uint, fields *entity.Reminder) (*entity.Reminder, error) {
	current, err := u.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	current.Title = fields.Title
	current.Description = fields.Description
	current.DueDate = fields.DueDate
	if fields.Priority != "" {
		current.Priority = fields.Priority
	}
	current.Completed = fields.Completed

	if err := u.repo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// Delete removes one reminder of the user.
func (u *ReminderUsecase) Delete(ctx context.Context, userID, id uint) error {
	return u.repo.Delete(ctx, userID, id)
}
