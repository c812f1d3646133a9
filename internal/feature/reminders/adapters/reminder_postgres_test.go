package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"chusu_backend/internal/feature/reminders/domain/entity"
	"chusu_backend/internal/feature/reminders/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Reminder{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func newReminder(userID uint, title string, due time.Time) *entity.Reminder {
	return &entity.Reminder{
		UserID:   userID,
		Title:    title,
		DueDate:  due,
		Priority: entity.PriorityMedium,
	}
}

func TestReminderRepository_List_OrderedByDueDate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReminderRepository(db)
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 9, 0, 0, 0, time.Local)
	require.NoError(t, repo.Create(ctx, newReminder(1, "later", base.AddDate(0, 0, 5))))
	require.NoError(t, repo.Create(ctx, newReminder(1, "soonest", base)))
	require.NoError(t, repo.Create(ctx, newReminder(1, "middle", base.AddDate(0, 0, 2))))

	reminders, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, reminders, 3)

	assert.Equal(t, "soonest", reminders[0].Title)
	assert.Equal(t, "middle", reminders[1].Title)
	assert.Equal(t, "later", reminders[2].Title)
}

func TestReminderRepository_ListDueBetween(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReminderRepository(db)
	ctx := context.Background()

	now := time.Date(2024, 6, 10, 15, 0, 0, 0, time.Local)
	from := time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 0, 4).Add(-time.Second) // end of the third day ahead

	inWindow := newReminder(1, "due tomorrow", now.AddDate(0, 0, 1))
	edgeToday := newReminder(1, "due earlier today", from.Add(8*time.Hour))
	tooFar := newReminder(1, "due next week", now.AddDate(0, 0, 7))
	past := newReminder(1, "due yesterday", now.AddDate(0, 0, -1))
	done := newReminder(1, "already done", now.AddDate(0, 0, 1))
	done.Completed = true
	otherUser := newReminder(2, "someone else", now.AddDate(0, 0, 1))

	for _, r := range []*entity.Reminder{inWindow, edgeToday, tooFar, past, done, otherUser} {
		require.NoError(t, repo.Create(ctx, r))
	}

	urgent, err := repo.ListDueBetween(ctx, 1, from, to)
	require.NoError(t, err)
	require.Len(t, urgent, 2)

	// Ordered by due date ascending
	assert.Equal(t, "due earlier today", urgent[0].Title)
	assert.Equal(t, "due tomorrow", urgent[1].Title)
}

func TestReminderRepository_OwnerScoping(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReminderRepository(db)
	ctx := context.Background()

	reminder := newReminder(1, "mine", time.Now().Add(24*time.Hour))
	require.NoError(t, repo.Create(ctx, reminder))

	_, err := repo.FindByID(ctx, 2, reminder.ID)
	assert.ErrorIs(t, err, usecase.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, 2, reminder.ID), usecase.ErrNotFound)

	_, err = repo.FindByID(ctx, 1, reminder.ID)
	assert.NoError(t, err)
}

func TestReminderRepository_UpdateCompletedFlag(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReminderRepository(db)
	ctx := context.Background()

	reminder := newReminder(1, "toggle me", time.Now().Add(24*time.Hour))
	require.NoError(t, repo.Create(ctx, reminder))

	reminder.Completed = true
	require.NoError(t, repo.Update(ctx, reminder))

	got, err := repo.FindByID(ctx, 1, reminder.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)

	// Save must be able to write the flag back to false too.
	got.Completed = false
	require.NoError(t, repo.Update(ctx, got))

	got, err = repo.FindByID(ctx, 1, reminder.ID)
	require.NoError(t, err)
	assert.False(t, got.Completed)
}

func TestReminderRepository_CountIncomplete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReminderRepository(db)
	ctx := context.Background()

	due := time.Now().Add(24 * time.Hour)
	open1 := newReminder(1, "open 1", due)
	open2 := newReminder(1, "open 2", due)
	closed := newReminder(1, "closed", due)
	closed.Completed = true

	for _, r := range []*entity.Reminder{open1, open2, closed} {
		require.NoError(t, repo.Create(ctx, r))
	}

	n, err := repo.CountIncomplete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
