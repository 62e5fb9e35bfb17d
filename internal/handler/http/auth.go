package http

import (
	"net/http"

	"github.com/myantech/erp-api/internal/logger"
	"github.com/myantech/erp-api/internal/utils"
	"github.com/myantech/erp-api/models"
)

const (
	msgRootRunning     = "MyanTech ERP API is running!"
	msgLoginSuccessful = "login successful"
	msgLoggedOut       = "logged out"
)

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: msgRootRunning}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := utils.DecodeJSON(http.MaxBytesReader(w, r.Body, maxBodyBytes), &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSONBody.Error(), http.StatusBadRequest)
		return
	}

	principal, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		status := statusFromError(err)
		switch status {
		case http.StatusBadRequest:
			log.Err(err).Msg("invalid data provided")
			utils.WriteError(w, msgInvalidData, status)
		case http.StatusUnauthorized:
			log.Err(err).Str("username", req.Username).Msg("login rejected")
			utils.WriteError(w, msgInvalidCredentials, status)
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			utils.WriteError(w, msgInternal, http.StatusInternalServerError)
		}
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, principal)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteError(w, msgInternal, http.StatusInternalServerError)
		return
	}

	cookie := &http.Cookie{
		Name:     h.cookieName,
		Value:    token.SignedString,
		Path:     "/",
		MaxAge:   int(h.tokenDuration.Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	}
	if token.Claims.ExpiresAt != nil {
		cookie.Expires = token.Claims.ExpiresAt.Time
	}
	http.SetCookie(w, cookie)

	log.Info().Int64("user_id", principal.UserID).Str("user_role", string(principal.Role)).Msg("user logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Message: msgLoginSuccessful,
		Token:   token.SignedString,
		Role:    principal.Role,
	}, http.StatusOK)
}

// logout expires the token cookie. Tokens are stateless, so a copy kept by
// the client stays valid until it expires.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})

	utils.WriteJSON(w, models.MessageResponse{Message: msgLoggedOut}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request, principal models.Principal) {
	utils.WriteJSON(w, principal, http.StatusOK)
}
