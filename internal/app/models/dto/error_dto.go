package dto

// ErrorResponse is the body of every non-2xx API response
type ErrorResponse struct {
	Message string `json:"message" example:"Course not found"`
	// Errors lists individual rule failures on validation errors
	Errors []string `json:"errors,omitempty"`
}

// NewErrorResponse creates an error body with the given message
func NewErrorResponse(message string, errs ...string) ErrorResponse {
	return ErrorResponse{
		Message: message,
		Errors:  errs,
	}
}
