// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the merged server [StructuredConfig] can be used to
// start the remote store.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.PublicURL != "" {
		if u, err := url.Parse(cfg.Server.PublicURL); err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: public url must be absolute", ErrInvalidServerConfigs)
		}
	}

	if cfg.Storage.DB.DSN == "" || cfg.Storage.Files.BinaryDataDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.APIKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate(access string) error {
	if cfg.Storage.Device.DSN == "" || strings.Contains(cfg.Storage.Device.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if access != DeviceAccessGranted && access != DeviceAccessDenied {
		return fmt.Errorf("%w: device access must be %q or %q", ErrInvalidStorageConfigs, DeviceAccessGranted, DeviceAccessDenied)
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.UploadTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Search.Debounce <= 0 {
		return ErrInvalidSearchConfigs
	}

	return nil
}
