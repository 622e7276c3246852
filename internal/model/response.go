package model

// APIResponse is the standard {message, data} envelope for all endpoints.
// Errors reuse the same shape with the data field omitted.
type APIResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}
