package http

import (
	"github.com/MKhiriev/go-phonebook/internal/config"
	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/internal/metrics"
	"github.com/MKhiriev/go-phonebook/internal/service"
)

type Handler struct {
	services *service.Services
	apiKey   string
	metrics  *metrics.Metrics

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. An empty cfg.APIKey disables the
// ApiKey check.
func NewHandler(services *service.Services, cfg config.App, metrics *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		apiKey:   cfg.APIKey,
		metrics:  metrics,
		logger:   logger,
	}
}
