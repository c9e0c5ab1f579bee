package dto

// MessageResponse is the body for every non-entity response, success or
// error: a single human-readable message the UI shows as a notification.
type MessageResponse struct {
	Message string `json:"message" example:"Student deleted successfully"`
}

// NewMessageResponse creates a message response
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}
