package http

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/myantech/erp-api/internal/authz"
	"github.com/myantech/erp-api/internal/config"
	"github.com/myantech/erp-api/internal/logger"
	"github.com/myantech/erp-api/internal/metrics"
	"github.com/myantech/erp-api/internal/service"
)

type Handler struct {
	services *service.Services
	policy   *authz.Policy

	metrics  metrics.Recorder
	gatherer prometheus.Gatherer

	cookieName     string
	tokenDuration  time.Duration
	requestTimeout time.Duration
	rateLimit      int
	allowedOrigins []string

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. Request and denial metrics are
// registered with reg, which also backs the /metrics endpoint.
func NewHandler(services *service.Services, cfg config.StructuredConfig, reg *prometheus.Registry, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		policy:         authz.DefaultPolicy(),
		metrics:        metrics.NewCollector(reg),
		gatherer:       reg,
		cookieName:     cfg.App.CookieName,
		tokenDuration:  cfg.App.TokenDuration,
		requestTimeout: cfg.Server.RequestTimeout,
		rateLimit:      cfg.Server.RateLimit,
		allowedOrigins: cfg.Server.AllowedOrigins,
		logger:         logger,
	}
}
