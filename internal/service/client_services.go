package service

import (
	"github.com/MKhiriev/go-phonebook/internal/adapter"
	"github.com/MKhiriev/go-phonebook/internal/directory"
	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/internal/store"
)

type ClientServices struct {
	ContactService   ClientContactService
	DirectoryService ClientDirectoryService
	HistoryService   ClientHistoryService
	DeviceService    ClientDeviceService
}

func NewClientServices(
	storages *store.ClientStorages,
	remote adapter.RemoteContactStore,
	images adapter.ImageTransferService,
	indexer *directory.Indexer,
	logger *logger.Logger,
) *ClientServices {
	return &ClientServices{
		ContactService:   NewClientContactService(remote, images, storages.DeviceContacts, logger),
		DirectoryService: NewClientDirectoryService(remote, storages.DeviceContacts, indexer, logger),
		HistoryService:   NewClientHistoryService(storages.KeyValue, logger),
		DeviceService:    NewClientDeviceService(storages.DeviceContacts, logger),
	}
}
