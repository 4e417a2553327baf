package dto

// ErrorResponse is the HTTP error body. Error is the human-readable message
// the storefront displays; Code is a stable machine-readable tag.
type ErrorResponse struct {
	Code  string `json:"code,omitempty"`
	Error string `json:"error"`
}

// MessageResponse is a small success envelope for operations with no payload.
type MessageResponse struct {
	Message string `json:"message"`
}
