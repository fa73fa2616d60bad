package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-phonebook/internal/adapter"
	"github.com/MKhiriev/go-phonebook/internal/directory"
	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/internal/presence"
	"github.com/MKhiriev/go-phonebook/internal/search"
	"github.com/MKhiriev/go-phonebook/internal/store"
	"github.com/MKhiriev/go-phonebook/models"
)

type clientDirectoryService struct {
	remote  adapter.RemoteContactStore
	device  store.DeviceContactRepository
	indexer *directory.Indexer

	logger *logger.Logger
}

func NewClientDirectoryService(
	remote adapter.RemoteContactStore,
	device store.DeviceContactRepository,
	indexer *directory.Indexer,
	logger *logger.Logger,
) ClientDirectoryService {
	return &clientDirectoryService{
		remote:  remote,
		device:  device,
		indexer: indexer,
		logger:  logger,
	}
}

func (s *clientDirectoryService) Fetch(ctx context.Context) ([]models.Contact, error) {
	ctx, log := withTrace(ctx, s.logger, "fetch")

	var (
		remote []models.Contact
		device []models.DeviceContact
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		contacts, err := s.remote.List(gctx)
		if err != nil {
			log.Err(err).Str("func", "clientDirectoryService.Fetch").Msg("remote list failed")
			return mapAdapterError(err)
		}
		remote = contacts
		return nil
	})
	g.Go(func() error {
		contacts, err := s.device.ListAll(gctx)
		if err != nil {
			// presence degrades to "nothing on the device"
			log.Warn().Err(err).Msg("device list failed, ignoring")
			return nil
		}
		device = contacts
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	tagged := presence.Tag(remote, presence.ComputePresence(remote, device))
	log.Debug().Int("remote", len(remote)).Int("device", len(device)).Msg("directory fetched")

	return tagged, nil
}

func (s *clientDirectoryService) Load(ctx context.Context, query string) (models.DirectoryView, error) {
	contacts, err := s.Fetch(ctx)
	if err != nil {
		return models.DirectoryView{}, err
	}
	return s.View(contacts, query), nil
}

func (s *clientDirectoryService) View(contacts []models.Contact, query string) models.DirectoryView {
	matched := search.Filter(contacts, query)

	return models.DirectoryView{
		Query:    query,
		Total:    len(contacts),
		Matched:  len(matched),
		Sections: s.indexer.BuildSections(matched),
	}
}
