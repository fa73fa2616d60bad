package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/MKhiriev/go-phonebook/internal/app"
	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/internal/utils"
)

// withAPIKey rejects requests whose ApiKey header does not match the
// configured key with 401 Unauthorized. It is a no-op when no key is
// configured.
func (h *Handler) withAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.apiKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		key := r.Header.Get(utils.APIKeyHeader)
		if key == "" {
			log.Err(ErrEmptyAPIKeyHeader).Send()
			utils.WriteError(w, app.MsgMissingAPIKey, http.StatusUnauthorized)
			return
		}

		if subtle.ConstantTimeCompare([]byte(key), []byte(h.apiKey)) != 1 {
			log.Err(ErrInvalidAPIKey).Send()
			utils.WriteError(w, app.MsgInvalidAPIKey, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
