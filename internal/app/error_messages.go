// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds process-wide setup and the client-facing messages
// written into error response bodies.
package app

// Request and validation failures.
const (
	MsgInvalidDataProvided = "invalid data provided"
	MsgInvalidUserID       = "invalid user ID"
	MsgNothingToUpdate     = "nothing to update"
	MsgTooManyRequests     = "too many requests"
)

// Authentication and authorization failures.
const (
	MsgInvalidLoginPassword    = "invalid login/password"
	MsgTokenIsExpired          = "token is expired"
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"
	// MsgNoUserIDProvided means an authenticated route ran without a user ID
	// in the request context.
	MsgNoUserIDProvided = "no user ID provided"
	// MsgAccessDenied is returned when a user tries to change another user's
	// account.
	MsgAccessDenied = "access denied"
)

// Resource state.
const (
	MsgUserNotFound       = "user not found"
	MsgLoginAlreadyExists = "login already exists"
)

// Server-side failures. The client cannot fix these by changing the request.
const (
	MsgInternalServerError   = "internal server error"
	MsgRegistrationFailed    = "registration failed"
	MsgLoginFailed           = "login failed"
	MsgVersionIsNotSpecified = "version is not specified"
	MsgServiceUnavailable    = "service unavailable"
)
