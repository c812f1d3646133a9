// Package usecase implements the business logic for notes.
package usecase

import (
	"context"
	"strings"

	"chusu_backend/internal/feature/notes/domain/entity"
)

// NoteRepository abstracts the persistence layer for notes. Every
// operation is scoped by the owning user's id.
type NoteRepository interface {
	// List returns the user's notes ordered by creation time descending.
	List(ctx context.Context, userID uint) ([]entity.Note, error)

	// FindByID returns the note owned by userID, or ErrNotFound.
	FindByID(ctx context.Context, userID, id uint) (*entity.Note, error)

	// Create persists a new note.
	Create(ctx context.Context, note *entity.Note) error

	// Update persists all fields of an existing note.
	Update(ctx context.Context, note *entity.Note) error

	// Delete removes the note owned by userID, or returns ErrNotFound.
	Delete(ctx context.Context, userID, id uint) error
}

// NoteUsecase provides owner-scoped CRUD over notes.
type NoteUsecase struct {
	repo NoteRepository
}

// NewNoteUsecase creates a new NoteUsecase with the given repository.
func NewNoteUsecase(r NoteRepository) *NoteUsecase {
	return &NoteUsecase{repo: r}
}

// List returns all notes of the user, newest first.
func (u *NoteUsecase) List(ctx context.Context, userID uint) ([]entity.Note, error) {
	return u.repo.List(ctx, userID)
}

// Get returns one note of the user.
func (u *NoteUsecase) Get(ctx context.Context, userID, id uint) (*entity.Note, error) {
	return u.repo.FindByID(ctx, userID, id)
}

// Create stores a new note with trimmed title and content.
func (u *NoteUsecase) Create(ctx context.Context, userID uint, title, content string) (*entity.Note, error) {
	note := &entity.Note{
		UserID:  userID,
		Title:   strings.TrimSpace(title),
		Content: strings.TrimSpace(content),
	}
	if err := u.repo.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// Update replaces title and content of an existing note.
func (u *NoteUsecase) Update(ctx context.Context, userID, id uint, title, content string) (*entity.Note, error) {
	current, err := u.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	current.Title = strings.TrimSpace(title)
	current.Content = strings.TrimSpace(content)

	if err := u.repo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// Delete removes one note of the user.
func (u *NoteUsecase) Delete(ctx context.Context, userID, id uint) error {
	return u.repo.Delete(ctx, userID, id)
}
