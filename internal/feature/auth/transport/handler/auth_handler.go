// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"chusu_backend/internal/feature/auth/domain/entity"
	"chusu_backend/internal/feature/auth/transport/http/dto"
	"chusu_backend/internal/feature/auth/usecase"
	jwtmw "chusu_backend/internal/platform/jwt"
)

// AuthUsecase defines the authentication operations consumed by this
// handler. Following Go convention: interfaces are defined by the
// consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	Register(ctx context.Context, username, email, password string) (string, *entity.User, error)
	Login(ctx context.Context, email, password string) (string, *entity.User, error)
	Me(ctx context.Context, userID uint) (*usecase.Profile, error)
	UpdateProfile(ctx context.Context, userID uint, username, email string) (*entity.User, error)
	ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error
}

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	auth AuthUsecase
	dev  bool
}

// NewAuthHandler creates a new AuthHandler. dev enables echoing the
// underlying error on unexpected failures.
func NewAuthHandler(auth AuthUsecase, dev bool) *AuthHandler {
	return &AuthHandler{auth: auth, dev: dev}
}

// Register handles POST /auth/register.
// - binds and validates the JSON body (400 lists every failed field)
// - duplicate username/email is a 400 with a field-specific message
// - success is a 201 with a token and the redacted user view
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := h.auth.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailTaken), errors.Is(err, usecase.ErrUsernameTaken):
			slog.Warn("register duplicate identity", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
			h.internalError(c, err)
		}
		return
	}

	slog.Info("user registered", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.AuthResponse{
		Message: "registration successful",
		Token:   token,
		User:    dto.NewUserView(user),
	})
}

// Login handles POST /auth/login. Unknown email and wrong password
// produce the identical 401 body.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("login failed", "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{"error": usecase.ErrInvalidCredentials.Error()})
			return
		}
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		h.internalError(c, err)
		return
	}

	slog.Info("user login successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.AuthResponse{
		Message: "login successful",
		Token:   token,
		User:    dto.NewUserView(user),
	})
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	profile, err := h.auth.Me(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		slog.Error("me failed", "error", err, "user_id", userID)
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MeResponse{
		UserView:       dto.NewUserView(profile.User),
		FruitsCount:    profile.FruitsCount,
		PositiveCount:  profile.PositiveCount,
		RemindersCount: profile.RemindersCount,
	})
}

// UpdateProfile handles PUT /auth/update.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req dto.UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.auth.UpdateProfile(c.Request.Context(), userID, req.Username, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, usecase.ErrEmailTaken), errors.Is(err, usecase.ErrUsernameTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			slog.Error("profile update failed", "error", err, "user_id", userID)
			h.internalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile updated", "user": dto.NewUserView(user)})
}

// ChangePassword handles PUT /auth/change-password.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req dto.ChangePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.auth.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, usecase.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "current password is incorrect"})
		default:
			slog.Error("password change failed", "error", err, "user_id", userID)
			h.internalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password changed"})
}

func (h *AuthHandler) internalError(c *gin.Context, err error) {
	body := gin.H{"error": "internal server error"}
	if h.dev {
		body["detail"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}
