package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong login or password")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")

	ErrForbidden        = errors.New("access to another user is forbidden")
	ErrNothingToUpdate  = errors.New("nothing to update")
	ErrPasswordHashing  = errors.New("error hashing password")
	ErrStorageUnhealthy = errors.New("storage is unavailable")
)
