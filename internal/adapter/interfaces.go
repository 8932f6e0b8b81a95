// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a typed client of the HTTP API.
//
// [ServerAdapter] hides request building, bearer token handling and error
// mapping. Non-2xx responses are mapped to the sentinel errors of this
// package so that callers can use [errors.Is] (e.g. [ErrConflict] for 409,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-api-starter/models"
)

// ServerAdapter talks to a running API server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	// Register and Login call it on success.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, user models.User) (models.TokenResponse, error)

	// Login exchanges credentials for a token and stores it.
	Login(ctx context.Context, user models.User) (models.TokenResponse, error)

	// Me returns the profile of the token owner.
	Me(ctx context.Context) (models.User, error)

	ListUsers(ctx context.Context, req models.ListUsersRequest) (models.UsersPage, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error

	// Health returns nil when the server reports itself healthy.
	Health(ctx context.Context) error

	// Version returns the server build information.
	Version(ctx context.Context) (models.VersionResponse, error)
}
