package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-phonebook/internal/adapter"
	"github.com/MKhiriev/go-phonebook/internal/config"
	"github.com/MKhiriev/go-phonebook/internal/directory"
	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/internal/service"
	"github.com/MKhiriev/go-phonebook/internal/store"
	"github.com/MKhiriev/go-phonebook/models"
)

// Runtime is everything a command needs once the configuration is loaded.
type Runtime struct {
	Services *service.ClientServices
	Search   config.ClientSearch

	// Close releases the local storages. It may be nil.
	Close func() error
}

// Connector builds a [Runtime] from the configuration file at configPath
// (empty means $CONFIG or none).
type Connector func(ctx context.Context, configPath string, log *logger.Logger) (*Runtime, error)

type App struct {
	build   models.AppBuildInfo
	connect Connector
	runtime *Runtime

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	logger *logger.Logger
}

// NewApp returns the client application. connect is called lazily, before
// the first command that needs the services.
func NewApp(build models.AppBuildInfo, connect Connector, logger *logger.Logger) *App {
	return &App{
		build:   build,
		connect: connect,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		logger:  logger,
	}
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	cmd := a.NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(a.stdin)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	defer a.close()

	return cmd.ExecuteContext(ctx)
}

func (a *App) ensureRuntime(ctx context.Context, configPath string) error {
	if a.runtime != nil {
		return nil
	}

	rt, err := a.connect(ctx, configPath, a.logger)
	if err != nil {
		return err
	}
	a.runtime = rt

	return nil
}

func (a *App) close() {
	if a.runtime == nil || a.runtime.Close == nil {
		return
	}
	if err := a.runtime.Close(); err != nil {
		a.logger.Err(err).Str("func", "App.close").Msg("failed to close client storages")
	}
	a.runtime.Close = nil
}

// Connect is the production [Connector]: it reads the client configuration,
// opens the local SQLite storages and builds the remote adapters and the
// client services on top of them.
func Connect(ctx context.Context, configPath string, log *logger.Logger) (*Runtime, error) {
	cfg, err := config.GetClientConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	remote, err := adapter.NewHTTPContactStore(cfg.Adapter, cfg.App, log)
	if err != nil {
		return nil, fmt.Errorf("create contact store adapter: %w", err)
	}

	images, err := adapter.NewHTTPImageTransfer(cfg.Adapter, cfg.App, log)
	if err != nil {
		return nil, fmt.Errorf("create image transfer adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	indexer := directory.NewIndexer(cfg.Search.Locale)

	return &Runtime{
		Services: service.NewClientServices(storages, remote, images, indexer, log),
		Search:   cfg.Search,
		Close:    storages.Close,
	}, nil
}
