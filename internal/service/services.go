package service

import (
	"fmt"

	"github.com/MKhiriev/go-phonebook/internal/config"
	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/internal/metrics"
	"github.com/MKhiriev/go-phonebook/internal/store"
	"github.com/MKhiriev/go-phonebook/models"
)

type Services struct {
	ContactService ContactService
	ImageService   ImageService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, metrics *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	imageService, err := NewImageService(storages.ImageStorage, cfg.Server.PublicURL, metrics, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating image service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		ContactService: NewContactValidationService().Wrap(NewContactService(storages.ContactRepository, metrics, logger)),
		ImageService:   imageService,
		AppInfoService: appInfoService,
	}, nil
}
