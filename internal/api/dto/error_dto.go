package dto

import "time"

// ErrorResponse is the wire shape for every error body, including
// authentication rejections.
type ErrorResponse struct {
	Status    int               `json:"status"`
	Message   string            `json:"message"`
	Path      string            `json:"path"`
	Timestamp time.Time         `json:"timestamp"`
	Errors    map[string]string `json:"errors,omitempty"`
}
