// Package handler groups the transport handlers of the ERP API.
package handler

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/myantech/erp-api/internal/config"
	"github.com/myantech/erp-api/internal/handler/http"
	"github.com/myantech/erp-api/internal/logger"
	"github.com/myantech/erp-api/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, reg *prometheus.Registry, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, reg, logger),
	}, nil
}
