package http

import (
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/unrolled/secure"

	"github.com/myantech/erp-api/internal/logger"
	"github.com/myantech/erp-api/internal/utils"
)

// withSecureHeaders sets the standard security headers on every response.
func (h *Handler) withSecureHeaders(next http.Handler) http.Handler {
	secureMiddleware := secure.New(secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'none'; frame-ancestors 'none'",
	})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := secureMiddleware.Process(w, r); err != nil {
			logger.FromRequest(r).Warn().Err(err).Msg("secure headers blocked request")
			utils.WriteError(w, msgInternal, http.StatusInternalServerError)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withCORS allows the configured origins. Credentials (the token cookie)
// are only allowed when the origin list is explicit.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	origins := h.allowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: !slices.Contains(origins, "*"),
		MaxAge:           300,
	})
}

// withRateLimit limits each client IP to rateLimit requests per minute.
// A non-positive limit disables it.
func (h *Handler) withRateLimit() func(http.Handler) http.Handler {
	if h.rateLimit <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return httprate.Limit(h.rateLimit, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			logger.FromRequest(r).Warn().Str("remote_addr", r.RemoteAddr).Msg("rate limit exceeded")
			utils.WriteError(w, ErrTooManyRequests.Error(), http.StatusTooManyRequests)
		}),
	)
}
