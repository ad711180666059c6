package templates

// Error messages constants
const (
	ErrTemplateNotFound = "Template was not found in our database"
	ErrInvalidDocument  = "Invalid template document"
)

// SaveResponse is the fixed shape of a successful save
type SaveResponse struct {
	Status     string `json:"status"`
	TemplateID uint   `json:"template_id"`
}

// ErrorResponse is the fixed shape of a failed save or load
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
