// Package dto defines data transfer objects for the notes feature's
// HTTP transport layer.
package dto

import (
	"time"

	"chusu_backend/internal/feature/notes/domain/entity"
)

// NoteReq represents the request body for creating or replacing a note.
type NoteReq struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// NoteView is the JSON representation of a note.
type NoteView struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewNoteView builds the response view of a note.
func NewNoteView(n *entity.Note) NoteView {
	return NoteView{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// NewNoteViews converts a slice of notes.
func NewNoteViews(notes []entity.Note) []NoteView {
	out := make([]NoteView, 0, len(notes))
	for i := range notes {
		out = append(out, NewNoteView(&notes[i]))
	}
	return out
}
