package request

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// RefreshTokenRequest represents a token refresh request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ChangePasswordRequest represents a password change request
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=NewPassword"`
}

// CreateStaffRequest represents an admin creating a staff account
type CreateStaffRequest struct {
	DisplayName string `json:"display_name" binding:"required,min=2,max=255"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Role        string `json:"role" binding:"required,oneof=admin pharmacist cashier"`
}

// UpdateStaffRequest represents an admin updating a staff account
type UpdateStaffRequest struct {
	DisplayName *string `json:"display_name" binding:"omitempty,min=2,max=255"`
	Role        *string `json:"role" binding:"omitempty,oneof=admin pharmacist cashier"`
	Active      *bool   `json:"active"`
}
