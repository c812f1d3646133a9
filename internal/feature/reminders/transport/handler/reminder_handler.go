// Package handler はremindersフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"chusu_backend/internal/feature/reminders/domain/entity"
	"chusu_backend/internal/feature/reminders/transport/http/dto"
	"chusu_backend/internal/feature/reminders/usecase"
	jwtmw "chusu_backend/internal/platform/jwt"
)

// ReminderUsecase defines the reminder operations consumed by this
// handler.
type ReminderUsecase interface {
	List(ctx context.Context, userID uint) ([]entity.Reminder, error)
	ListUrgent(ctx context.Context, userID uint) ([]entity.Reminder, error)
	Create(ctx context.Context, userID uint, reminder *entity.Reminder) (*entity.Reminder, error)
	Update(ctx context.Context, userID, id uint, fields *entity.Reminder) (*entity.Reminder, error)
	Delete(ctx context.Context, userID, id uint) error
}

// ReminderHandler handles HTTP requests for reminders.
type ReminderHandler struct {
	uc  ReminderUsecase
	dev bool
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(uc ReminderUsecase, dev bool) *ReminderHandler {
	return &ReminderHandler{uc: uc, dev: dev}
}

// List handles GET /reminders.
func (h *ReminderHandler) List(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	reminders, err := h.uc.List(c.Request.Context(), userID)
	if err != nil {
		slog.Error("reminder list failed", "error", err, "user_id", userID)
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewReminderViews(reminders))
}

// ListUrgent handles GET /reminders/urgent: incomplete reminders due
// within the next three days.
func (h *ReminderHandler) ListUrgent(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	reminders, err := h.uc.ListUrgent(c.Request.Context(), userID)
	if err != nil {
		slog.Error("urgent reminder list failed", "error", err, "user_id", userID)
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewReminderViews(reminders))
}

// Create handles POST /reminders.
func (h *ReminderHandler) Create(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	fields, ok := h.bindReminder(c)
	if !ok {
		return
	}

	reminder, err := h.uc.Create(c.Request.Context(), userID, fields)
	if err != nil {
		slog.Error("reminder create failed", "error", err, "user_id", userID)
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewReminderView(reminder))
}

// Update handles PUT /reminders/:id.
func (h *ReminderHandler) Update(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	fields, ok := h.bindReminder(c)
	if !ok {
		return
	}

	reminder, err := h.uc.Update(c.Request.Context(), userID, id, fields)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": usecase.ErrNotFound.Error()})
			return
		}
		slog.Error("reminder update failed", "error", err, "user_id", userID, "reminder_id", id)
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewReminderView(reminder))
}

// Delete handles DELETE /reminders/:id.
func (h *ReminderHandler) Delete(c *gin.Context) {
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
		slog.Error("reminder delete failed", "error", err, "user_id", userID, "reminder_id", id)
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reminder deleted"})
}

func (h *ReminderHandler) bindReminder(c *gin.Context) (*entity.Reminder, bool) {
	var req dto.ReminderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	fields, err := req.ToEntity()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return fields, true
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": usecase.ErrNotFound.Error()})
		return 0, false
	}
	return uint(id), true
}

func (h *ReminderHandler) internalError(c *gin.Context, err error) {
	body := gin.H{"error": "internal server error"}
	if h.dev {
		body["detail"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}
