// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/myantech/erp-api/internal/authz"
	"github.com/myantech/erp-api/internal/logger"
	"github.com/myantech/erp-api/internal/utils"
	"github.com/myantech/erp-api/models"
)

// guardedHandlerFunc is a handler that runs only for an authorized caller.
type guardedHandlerFunc func(w http.ResponseWriter, r *http.Request, principal models.Principal)

// guard wraps next with the privilege gate for (resource, op).
//
// The credential is taken from the token cookie or, when no cookie is sent,
// from an "Authorization: Bearer" header. A missing or invalid credential is
// answered with 401 and a role outside the policy with 403; in both cases
// next is never called. On success the principal is passed to next and
// stored in the request context under [utils.PrincipalCtxKey].
func (h *Handler) guard(resource authz.Resource, op authz.Operation, next guardedHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		var caller *models.Principal
		if raw, ok := h.credentialFromRequest(r); ok {
			principal, err := h.services.AuthService.VerifyCredential(ctx, raw)
			if err != nil {
				log.Debug().Err(err).Msg("credential rejected")
			} else {
				caller = &principal
			}
		}

		decision := h.policy.Authorize(caller, resource, op)
		principal, ok := decision.Allowed()
		if !ok {
			h.deny(w, r, resource, op, caller, decision.Reason())
			return
		}

		r = r.WithContext(utils.WithPrincipal(ctx, principal))
		next(w, r, principal)
	}
}

// credentialFromRequest returns the raw token presented with r. The cookie
// wins over the header when both are present.
func (h *Handler) credentialFromRequest(r *http.Request) (string, bool) {
	if cookie, err := r.Cookie(h.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}

	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	token, err := utils.ParseBearerToken(header)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("ignoring malformed Authorization header")
		return "", false
	}

	return token, true
}

func (h *Handler) deny(w http.ResponseWriter, r *http.Request, resource authz.Resource, op authz.Operation, caller *models.Principal, reason error) {
	status := statusFromError(reason)
	label := "unauthenticated"
	if errors.Is(reason, authz.ErrForbidden) {
		label = "forbidden"
	}

	event := logger.FromRequest(r).Warn().
		Str("resource", string(resource)).
		Str("operation", string(op)).
		Str("reason", label)
	if caller != nil {
		event = event.Int64("user_id", caller.UserID).Str("user_role", string(caller.Role))
	}
	event.Msg("request denied")

	h.metrics.RecordDenial(string(resource), label)
	utils.WriteError(w, reason.Error(), status)
}
