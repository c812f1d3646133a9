// Package adapters はnotesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"chusu_backend/internal/feature/notes/domain/entity"
	"chusu_backend/internal/feature/notes/usecase"
)

// notePostgres is the GORM implementation of usecase.NoteRepository.
type notePostgres struct {
	db *gorm.DB
}

var _ usecase.NoteRepository = (*notePostgres)(nil)

// NewNoteRepository creates a notePostgres bound to the given connection.
func NewNoteRepository(db *gorm.DB) *notePostgres {
	return &notePostgres{db: db}
}

// List returns the user's notes newest first.
func (r *notePostgres) List(ctx context.Context, userID uint) ([]entity.Note, error) {
	var notes []entity.Note
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

// FindByID returns one note scoped to the owner.
func (r *notePostgres) FindByID(ctx context.Context, userID, id uint) (*entity.Note, error) {
	var n entity.Note
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&n).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

// Create inserts a new note.
func (r *notePostgres) Create(ctx context.Context, note *entity.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

// Update persists all fields; GORM refreshes UpdatedAt.
func (r *notePostgres) Update(ctx context.Context, note *entity.Note) error {
	return r.db.WithContext(ctx).Save(note).Error
}

// Delete removes one note scoped to the owner.
func (r *notePostgres) Delete(ctx context.Context, userID, id uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entity.Note{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrNotFound
	}
	return nil
}
