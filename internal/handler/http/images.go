package http

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-phonebook/internal/adapter"
	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/internal/utils"
	"github.com/MKhiriev/go-phonebook/models"
)

// MaxImageSize caps the body of an image upload.
const MaxImageSize = 10 << 20

// uploadImage stores the multipart "image" part and answers with the public
// URL of the stored file.
func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxImageSize)

	if err := r.ParseMultipartForm(MaxImageSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, r, fmt.Errorf("%w: %w", ErrImageTooLarge, err), "*Handler.uploadImage")
			return
		}
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrNoImageProvided, err), "*Handler.uploadImage")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(adapter.ImageFormField)
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrNoImageProvided, err), "*Handler.uploadImage")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		// multipart writers that do not sniff send the generic type
		contentType = mime.TypeByExtension(filepath.Ext(header.Filename))
	}

	url, err := h.services.ImageService.SaveImage(r.Context(), contentType, file)
	if err != nil {
		h.writeError(w, r, err, "*Handler.uploadImage")
		return
	}

	_, _ = utils.WriteJSON(w, models.NewImageUploadResponse(url), http.StatusCreated)
}

func (h *Handler) serveImage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	img, err := h.services.ImageService.OpenImage(r.Context(), name)
	if err != nil {
		h.writeError(w, r, err, "*Handler.serveImage")
		return
	}
	defer func() {
		if closeErr := img.Close(); closeErr != nil {
			logger.FromRequest(r).Err(closeErr).Str("func", "*Handler.serveImage").Msg("failed to close image")
		}
	}()

	http.ServeContent(w, r, name, time.Time{}, img)
}
