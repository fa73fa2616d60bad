package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-phonebook/internal/config"
	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/internal/utils"
	"github.com/MKhiriev/go-phonebook/models"
)

// ImageFormField is the multipart field the upload endpoint reads.
const ImageFormField = "image"

type httpImageTransfer struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPImageTransfer constructs the REST implementation of
// [ImageTransferService]. Uploads use adapterCfg.UploadTimeout instead of
// the regular request timeout.
func NewHTTPImageTransfer(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ImageTransferService, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewJSONClient(baseURL, adapterCfg.UploadTimeout, appCfg.APIKey).WithUserAgent(appCfg.Version)

	return &httpImageTransfer{client: client, logger: logger}, nil
}

// Upload implements [ImageTransferService]. localRef is a plain path or a
// file:// URI; it is sent as the multipart "image" field of
// POST /api/User/UploadImage.
func (h *httpImageTransfer) Upload(ctx context.Context, localRef string) (string, error) {
	path, err := localPath(localRef)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpload, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpload, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrUpload, path)
	}

	resp, err := newRequest(ctx, h.client).
		SetFile(ImageFormField, path).
		Post("/api/User/UploadImage")
	if err != nil {
		return "", fmt.Errorf("%w: %w: %w", ErrUpload, ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpload, err)
	}

	var envelope models.ImageUploadResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return "", fmt.Errorf("%w: decode upload response: %w", ErrUpload, err)
	}
	if envelope.Data.ImageURL == "" {
		return "", fmt.Errorf("%w: empty image url in response", ErrUpload)
	}

	h.logger.Debug().
		Str("func", "httpImageTransfer.Upload").
		Str("file", filepath.Base(path)).
		Str("url", envelope.Data.ImageURL).
		Msg("image uploaded")

	return envelope.Data.ImageURL, nil
}

func localPath(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	switch {
	case ref == "":
		return "", fmt.Errorf("empty image reference")
	case strings.HasPrefix(ref, "file://"):
		return strings.TrimPrefix(ref, "file://"), nil
	case strings.Contains(ref, "://"):
		return "", fmt.Errorf("unsupported image reference %q", ref)
	default:
		return ref, nil
	}
}
