package auth

// Constants for error messages
const (
	ErrAlreadyLoggedIn     = "You are already logged in."
	ErrInvalidCredentials  = "Invalid username or password. Please try again."
	ErrUsernameInUse       = "Username already in use"
	ErrHashPasswordFailed  = "Failed to hash password"
	ErrUserCreateFailed    = "Registration failed. Please try again."
	ErrTokenGenerateFailed = "Failed to generate token"
	ErrUserNotFound        = "User not found"
)

// AdminTitle prefixes greetings addressed to administrators
const AdminTitle = "MIGHTY ADMIN "

// LoginRequest model for login endpoints
type LoginRequest struct {
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"rememberMe"`
}

// RegisterRequest model for registration
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Password string `json:"password" binding:"required,min=8"`
}

// AuthResponse model for authentication responses
type AuthResponse struct {
	UserID    uint   `json:"user_id"`
	ProfileID uint   `json:"profile_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	Message   string `json:"message"`
}
