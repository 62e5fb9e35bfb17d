package service

import "errors"

var (
	// ErrNotFound means a well-formed request matched zero rows.
	ErrNotFound = errors.New("not found")

	// ErrStorageFailure is the only error a storage fault surfaces as.
	// Details are logged, never returned.
	ErrStorageFailure = errors.New("storage failure")

	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrTokenCreationFailed = errors.New("token creation failed")
)
