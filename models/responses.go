package models

import "time"

// TokenResponse is returned by the register and login endpoints.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// UsersPage is one page of the users listing.
type UsersPage struct {
	Users  []User `json:"users"`
	Limit  uint64 `json:"limit"`
	Offset uint64 `json:"offset"`
}

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Health statuses reported by the health endpoint.
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// VersionResponse is returned by the version endpoint.
type VersionResponse struct {
	Version      string `json:"version"`
	BuildVersion string `json:"build_version"`
	BuildDate    string `json:"build_date"`
	BuildCommit  string `json:"build_commit"`
}
