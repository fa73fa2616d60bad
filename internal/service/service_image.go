package service

import (
	"context"
	"fmt"
	"io"
	"mime"
	"strings"

	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/internal/metrics"
	"github.com/MKhiriev/go-phonebook/internal/store"
	"github.com/MKhiriev/go-phonebook/internal/utils"
)

// ImagesPath is the URL prefix stored images are served under.
const ImagesPath = "/images/"

// imageExtensions maps accepted upload content types to file extensions.
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/heic": ".heic",
}

type imageService struct {
	storage   store.ImageStorage
	publicURL string
	ids       *utils.UUIDGenerator
	metrics   *metrics.Metrics

	logger *logger.Logger
}

// NewImageService returns an [ImageService] building URLs from publicURL,
// the externally visible base URL of the server.
func NewImageService(storage store.ImageStorage, publicURL string, metrics *metrics.Metrics, logger *logger.Logger) (ImageService, error) {
	if publicURL == "" {
		return nil, ErrPublicURLIsNotSpecified
	}

	return &imageService{
		storage:   storage,
		publicURL: strings.TrimRight(publicURL, "/"),
		ids:       utils.NewUUIDGenerator(),
		metrics:   metrics,
		logger:    logger,
	}, nil
}

func (s *imageService) SaveImage(ctx context.Context, contentType string, r io.Reader) (string, error) {
	ext, ok := ImageExtension(contentType)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedImageType, contentType)
	}

	name := s.ids.Generate() + ext
	size, err := s.storage.Save(ctx, name, r)
	if err != nil {
		return "", err
	}
	s.metrics.IncrementImagesUploaded()

	logger.FromContext(ctx).Info().
		Str("func", "imageService.SaveImage").
		Str("name", name).
		Int64("size", size).
		Msg("image uploaded")

	return s.publicURL + ImagesPath + name, nil
}

func (s *imageService) OpenImage(ctx context.Context, name string) (io.ReadSeekCloser, error) {
	return s.storage.Open(ctx, name)
}

// ImageExtension returns the file extension stored for contentType and
// whether the type is accepted. Parameters such as charset are ignored.
func ImageExtension(contentType string) (string, bool) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", false
	}
	ext, ok := imageExtensions[strings.ToLower(mediaType)]
	return ext, ok
}
