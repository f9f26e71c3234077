package models

// ErrorResponse is the relay's error body.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// GenerateErrorResponse is the generation service's error body.
type GenerateErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type StatusResponse struct {
	Message string `json:"message"`
}
