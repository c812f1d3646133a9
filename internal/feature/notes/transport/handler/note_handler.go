// Package handler はnotesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"chusu_backend/internal/feature/notes/domain/entity"
	"chusu_backend/internal/feature/notes/transport/http/dto"
	"chusu_backend/internal/feature/notes/usecase"
	jwtmw "chusu_backend/internal/platform/jwt"
)

// NoteUsecase defines the note operations consumed by this handler.
type NoteUsecase interface {
	List(ctx context.Context, userID uint) ([]entity.Note, error)
	Get(ctx context.Context, userID, id uint) (*entity.Note, error)
	Create(ctx context.Context, userID uint, title, content string) (*entity.Note, error)
	Update(ctx context.Context, userID, id uint, title, content string) (*entity.Note, error)
	Delete(ctx context.Context, userID, id uint) error
}

// NoteHandler handles HTTP requests for notes.
type NoteHandler struct {
	uc  NoteUsecase
	dev bool
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(uc NoteUsecase, dev bool) *NoteHandler {
	return &NoteHandler{uc: uc, dev: dev}
}

// List handles GET /notes.
func (h *NoteHandler) List(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	notes, err := h.uc.List(c.Request.Context(), userID)
	if err != nil {
		slog.Error("note list failed", "error", err, "user_id", userID)
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewNoteViews(notes))
}

// Get handles GET /notes/:id.
func (h *NoteHandler) Get(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	note, err := h.uc.Get(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": usecase.ErrNotFound.Error()})
			return
		}
		slog.Error("note get failed", "error", err, "user_id", userID, "note_id", id)
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewNoteView(note))
}

// Create handles POST /notes.
func (h *NoteHandler) Create(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req dto.NoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := h.uc.Create(c.Request.Context(), userID, req.Title, req.Content)
	if err != nil {
		slog.Error("note create failed", "error", err, "user_id", userID)
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewNoteView(note))
}

// Update handles PUT /notes/:id.
func (h *NoteHandler) Update(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.NoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := h.uc.Update(c.Request.Context(), userID, id, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": usecase.ErrNotFound.Error()})
			return
		}
		slog.Error("note update failed", "error", err, "user_id", userID, "note_id", id)
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewNoteView(note))
}

// Delete handles DELETE /notes/:id.
func (h *NoteHandler) Delete(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.uc.Delete(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": usecase.ErrNotFound.Error()})
			return
		}
		slog.Error("note delete failed", "error", err, "user_id", userID, "note_id", id)
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "note deleted"})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": usecase.ErrNotFound.Error()})
		return 0, false
	}
	return uint(id), true
}

func (h *NoteHandler) internalError(c *gin.Context, err error) {
	body := gin.H{"error": "internal server error"}
	if h.dev {
		body["detail"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}
