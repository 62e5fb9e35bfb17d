package http

import (
	"errors"
	"net/http"

	"github.com/myantech/erp-api/internal/authz"
	"github.com/myantech/erp-api/internal/service"
)

var errorStatusMap = map[error]int{
	authz.ErrUnauthenticated: http.StatusUnauthorized,
	authz.ErrForbidden:       http.StatusForbidden,

	ErrInvalidJSONBody:  http.StatusBadRequest,
	ErrRouteNotFound:    http.StatusNotFound,
	ErrMethodNotAllowed: http.StatusMethodNotAllowed,
	ErrTooManyRequests:  http.StatusTooManyRequests,

	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrNotFound:            http.StatusNotFound,
	service.ErrStorageFailure:      http.StatusInternalServerError,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
