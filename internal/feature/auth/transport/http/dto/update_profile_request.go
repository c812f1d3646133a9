package dto

// UpdateProfileReq represents the request body for PUT /auth/update.
type UpdateProfileReq struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
}

// ChangePasswordReq represents the request body for PUT /auth/change-password.
type ChangePasswordReq struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}
