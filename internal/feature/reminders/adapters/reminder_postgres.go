// Package adapters はremindersフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"chusu_backend/internal/feature/reminders/domain/entity"
	"chusu_backend/internal/feature/reminders/usecase"
)

// reminderPostgres is the GORM implementation of usecase.ReminderRepository.
type reminderPostgres struct {
	db *gorm.DB
}

var _ usecase.ReminderRepository = (*reminderPostgres)(nil)

// NewReminderRepository creates a reminderPostgres bound to the given
// connection.
func NewReminderRepository(db *gorm.DB) *reminderPostgres {
	return &reminderPostgres{db: db}
}

// List returns the user's reminders soonest first.
func (r *reminderPostgres) List(ctx context.Context, userID uint) ([]entity.Reminder, error) {
	var reminders []entity.Reminder
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("due_date ASC").
		Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

// ListDueBetween returns the user's incomplete reminders inside the
// window, soonest first.
func (r *reminderPostgres) ListDueBetween(ctx context.Context, userID uint, from, to time.Time) ([]entity.Reminder, error) {
	var reminders []entity.Reminder
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND completed = ? AND due_date BETWEEN ? AND ?", userID, false, from, to).
		Order("due_date ASC").
		Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

// FindByID returns one reminder scoped to the owner.
func (r *reminderPostgres) FindByID(ctx context.Context, userID, id uint) (*entity.Reminder, error) {
	var rem entity.Reminder
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&rem).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrNotFound
		}
		return nil, err
	}
	return &rem, nil
}

// Create inserts a new reminder.
func (r *reminderPostgres) Create(ctx context.Context, reminder *entity.Reminder) error {
	return r.db.WithContext(ctx).Create(reminder).Error
}

// Update persists all fields. Save writes zero values too, so the
// completed flag can go back to false.
func (r *reminderPostgres) Update(ctx context.Context, reminder *entity.Reminder) error {
	return r.db.WithContext(ctx).Save(reminder).Error
}

// Delete removes one reminder scoped to the owner.
func (r *reminderPostgres) Delete(ctx context.Context, userID, id uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entity.Reminder{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

// CountIncomplete returns the user's open reminder count.
func (r *reminderPostgres) CountIncomplete(ctx context.Context, userID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&entity.Reminder{}).
		Where("user_id = ? AND completed = ?", userID, false).
		Count(&n).Error
	return n, err
}
