// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/myantech/erp-api/internal/utils"
)

// notFound answers requests that match no route with a JSON body.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, ErrRouteNotFound.Error(), http.StatusNotFound)
}

// methodNotAllowed answers requests whose path is routed but whose method
// is not, so that clients always receive JSON.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, ErrMethodNotAllowed.Error(), http.StatusMethodNotAllowed)
}
