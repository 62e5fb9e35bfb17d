// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSONBody is reported when a request body cannot be decoded.
	ErrInvalidJSONBody = errors.New("invalid JSON body")

	ErrRouteNotFound    = errors.New("route not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrTooManyRequests  = errors.New("too many requests")
)

// Messages returned for storage faults. Details stay in the server log.
const (
	msgQueryFailed  = "Database query failed"
	msgInsertFailed = "Database insert failed"
	msgUpdateFailed = "Database update failed"
	msgDeleteFailed = "Database delete failed"

	msgInvalidData        = "invalid data provided"
	msgInvalidCredentials = "invalid username or password"
	msgInternal           = "internal server error"
)
