package config

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// APIKey is attached to every request to the remote store.
	APIKey string
	// Version is sent in the User-Agent header.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the remote store.
	HTTPAddress string
	// RequestTimeout is the timeout of regular calls.
	RequestTimeout time.Duration
	// UploadTimeout is the timeout of image uploads.
	UploadTimeout time.Duration
}

// ClientDevice contains the local address book settings.
type ClientDevice struct {
	// DSN is the SQLite connection string.
	DSN string
	// AccessGranted reports whether the device store may be used at all.
	AccessGranted bool
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	Device ClientDevice
}

// ClientSearch holds the search session settings.
type ClientSearch struct {
	// Debounce is the history commit delay.
	Debounce time.Duration
	// Locale drives section collation and casing.
	Locale language.Tag
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Search  ClientSearch
}

// GetClientConfig builds and validates a client-specific config view.
//
// Flags belong to the client's command tree, so only defaults, environment
// variables and the JSON file at jsonPath (or at $CONFIG when jsonPath is
// empty) are consulted.
func GetClientConfig(jsonPath string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults(clientDefaults()).
		withEnv().
		withJSONPath(jsonPath).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	tag, err := language.Parse(cfg.Search.Locale)
	if err != nil {
		return nil, fmt.Errorf("%w: locale %q: %w", ErrInvalidSearchConfigs, cfg.Search.Locale, err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			APIKey:  cfg.App.APIKey,
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			UploadTimeout:  cfg.Adapter.UploadTimeout,
		},
		Storage: ClientStorage{
			Device: ClientDevice{
				DSN:           cfg.Storage.Device.DSN,
				AccessGranted: cfg.Storage.Device.Access == DeviceAccessGranted,
			},
		},
		Search: ClientSearch{
			Debounce: cfg.Search.Debounce,
			Locale:   tag,
		},
	}

	if err = clientCfg.validate(cfg.Storage.Device.Access); err != nil {
		return nil, err
	}

	return clientCfg, nil
}
