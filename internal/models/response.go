package models

const (
	ResponseStatusSuccess = "success"
	ResponseStatusError   = "error"
)

// APIResponse is the uniform envelope used by the marketplace API and by the
// console's own endpoints. Code is only set by the console, on errors.
type APIResponse struct {
	Status  string `json:"status"`
	Code    string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Errors  []any  `json:"errors,omitempty"`
}
