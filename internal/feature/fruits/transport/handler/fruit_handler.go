// Package handler はfruitsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"chusu_backend/internal/feature/fruits/domain/entity"
	"chusu_backend/internal/feature/fruits/export"
	"chusu_backend/internal/feature/fruits/transport/http/dto"
	"chusu_backend/internal/feature/fruits/usecase"
	jwtmw "chusu_backend/internal/platform/jwt"
)

// FruitUsecase defines the fruit operations consumed by this handler.
type FruitUsecase interface {
	List(ctx context.Context, userID uint) ([]entity.Fruit, error)
	Get(ctx context.Context, userID, id uint) (*entity.Fruit, error)
	Create(ctx context.Context, userID uint, fruit *entity.Fruit) (*entity.Fruit, error)
	Update(ctx context.Context, userID, id uint, fields *entity.Fruit) (*entity.Fruit, error)
	Delete(ctx context.Context, userID, id uint) error
}

// FruitHandler handles HTTP requests for fruit records.
type FruitHandler struct {
	uc  FruitUsecase
	dev bool
}

// NewFruitHandler creates a new FruitHandler.
func NewFruitHandler(uc FruitUsecase, dev bool) *FruitHandler {
	return &FruitHandler{uc: uc, dev: dev}
}

// List handles GET /fruits.
func (h *FruitHandler) List(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	fruits, err := h.uc.List(c.Request.Context(), userID)
	if err != nil {
		slog.Error("fruit list failed", "error", err, "user_id", userID)
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewFruitViews(fruits))
}

// Get handles GET /fruits/:id.
func (h *FruitHandler) Get(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	fruit, err := h.uc.Get(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": usecase.ErrNotFound.Error()})
			return
		}
		slog.Error("fruit get failed", "error", err, "user_id", userID, "fruit_id", id)
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewFruitView(fruit))
}

// Create handles POST /fruits.
func (h *FruitHandler) Create(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	fields, ok := h.bindFruit(c)
	if !ok {
		return
	}

	fruit, err := h.uc.Create(c.Request.Context(), userID, fields)
	if err != nil {
		slog.Error("fruit create failed", "error", err, "user_id", userID)
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "fruit created", "fruit": dto.NewFruitView(fruit)})
}

// Update handles PUT /fruits/:id as a full-field replace.
func (h *FruitHandler) Update(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	fields, ok := h.bindFruit(c)
	if !ok {
		return
	}

	fruit, err := h.uc.Update(c.Request.Context(), userID, id, fields)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": usecase.ErrNotFound.Error()})
			return
		}
		slog.Error("fruit update failed", "error", err, "user_id", userID, "fruit_id", id)
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "fruit updated", "fruit": dto.NewFruitView(fruit)})
}

// Delete handles DELETE /fruits/:id.
func (h *FruitHandler) Delete(c *gin.Context) {
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
		slog.Error("fruit delete failed", "error", err, "user_id", userID, "fruit_id", id)
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "fruit deleted"})
}

// ExportCSV handles GET /fruits/export/csv.
func (h *FruitHandler) ExportCSV(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	fruits, err := h.uc.List(c.Request.Context(), userID)
	if err != nil {
		slog.Error("fruit csv export failed", "error", err, "user_id", userID)
		h.internalError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="fruits.csv"`)
	c.Status(http.StatusOK)
	if err := export.WriteCSV(c.Writer, fruits); err != nil {
		// Headers are already on the wire; log and cut the stream.
		slog.Error("fruit csv write failed", "error", err, "user_id", userID)
	}
}

// ExportPDF handles GET /fruits/export/pdf. The document is written
// straight into the response stream.
func (h *FruitHandler) ExportPDF(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	fruits, err := h.uc.List(c.Request.Context(), userID)
	if err != nil {
		slog.Error("fruit pdf export failed", "error", err, "user_id", userID)
		h.internalError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename="fruits.pdf"`)
	c.Status(http.StatusOK)
	if err := export.WritePDF(c.Writer, fruits); err != nil {
		slog.Error("fruit pdf write failed", "error", err, "user_id", userID)
	}
}

// bindFruit binds and converts the fruit request body; on failure it
// writes the 400 response itself.
func (h *FruitHandler) bindFruit(c *gin.Context) (*entity.Fruit, bool) {
	var req dto.FruitReq
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

// parseID reads :id from the path. Garbage ids cannot name an existing
// record and answer 404, like any other owner-scoped miss.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": usecase.ErrNotFound.Error()})
		return 0, false
	}
	return uint(id), true
}

func (h *FruitHandler) internalError(c *gin.Context, err error) {
	body := gin.H{"error": "internal server error"}
	if h.dev {
		body["detail"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}
