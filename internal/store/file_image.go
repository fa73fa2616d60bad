package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-phonebook/internal/config"
	"github.com/MKhiriev/go-phonebook/internal/logger"
)

// imageFileStorage keeps uploaded profile images as plain files in a single
// directory. Names are flat: anything that would resolve outside the
// directory is rejected with [ErrInvalidImageName].
type imageFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewImageFileStorage creates the image directory if needed and returns an
// [ImageStorage] rooted at it.
func NewImageFileStorage(cfg config.Files, logger *logger.Logger) (ImageStorage, error) {
	if cfg.BinaryDataDir == "" {
		return nil, errors.New("image directory is not set")
	}
	if err := os.MkdirAll(cfg.BinaryDataDir, 0o755); err != nil {
		logger.Err(err).Str("func", "NewImageFileStorage").Str("dir", cfg.BinaryDataDir).Msg("failed to create image directory")
		return nil, fmt.Errorf("error creating image directory: %w", err)
	}

	return &imageFileStorage{
		dir:    cfg.BinaryDataDir,
		logger: logger,
	}, nil
}

// Save writes r to a temporary file and renames it into place, so readers
// never observe a partially written image.
func (s *imageFileStorage) Save(ctx context.Context, name string, r io.Reader) (int64, error) {
	log := logger.FromContext(ctx)

	if err := validateImageName(name); err != nil {
		return 0, err
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		log.Err(err).Str("func", "imageFileStorage.Save").Msg("failed to create temporary file")
		return 0, fmt.Errorf("error creating temporary file: %w", err)
	}
	// no-op after a successful rename
	defer os.Remove(tmp.Name())

	written, err := io.Copy(tmp, r)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		log.Err(err).Str("func", "imageFileStorage.Save").Str("name", name).Msg("failed to write image")
		return 0, fmt.Errorf("error writing image: %w", err)
	}

	if err = os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		log.Err(err).Str("func", "imageFileStorage.Save").Str("name", name).Msg("failed to move image into place")
		return 0, fmt.Errorf("error storing image: %w", err)
	}

	log.Debug().Str("func", "imageFileStorage.Save").Str("name", name).Int64("size", written).Msg("image stored")
	return written, nil
}

func (s *imageFileStorage) Open(ctx context.Context, name string) (io.ReadSeekCloser, error) {
	if err := validateImageName(name); err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrImageNotFound, name)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "imageFileStorage.Open").Str("name", name).Msg("failed to open image")
		return nil, fmt.Errorf("error opening image: %w", err)
	}

	return f, nil
}

func validateImageName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidImageName, name)
	case strings.HasPrefix(name, "."):
		return fmt.Errorf("%w: %q", ErrInvalidImageName, name)
	case filepath.Base(name) != name, strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q", ErrInvalidImageName, name)
	}
	return nil
}
