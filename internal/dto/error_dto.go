package dto

import "time"

// ErrorResponse is the body of every failed request. It carries no domain
// classification, only the HTTP status.
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Path      string    `json:"path"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
