package dto

import (
	"time"

	"chusu_backend/internal/feature/auth/domain/entity"
)

// UserView is the redacted user representation returned by the API.
// The password hash never leaves the server.
type UserView struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUserView builds the public view of a user.
func NewUserView(u *entity.User) UserView {
	return UserView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// AuthResponse is the register/login success envelope.
type AuthResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    UserView `json:"user"`
}

// MeResponse is the profile snapshot with dashboard counts.
type MeResponse struct {
	UserView
	FruitsCount    int64 `json:"fruitsCount"`
	PositiveCount  int64 `json:"positiveCount"`
	RemindersCount int64 `json:"remindersCount"`
}
