package requests

// Error messages constants
const (
	ErrRequestNotFound  = "Player Request was not found in our database"
	ErrUnauthorized     = "Unauthorized access"
	ErrQuotaReached     = "You have reached the limit of pending requests"
	ErrFailedToGetList  = "Failed to get requests"
	ErrFailedToCreate   = "Failed to create request"
	ErrFailedToSwitch   = "Failed to switch request status"
	ErrWebsocketUpgrade = "Failed to upgrade connection"
)

// RequestCreateRequest files a new support request
type RequestCreateRequest struct {
	Text string `json:"text" binding:"required"`
}
