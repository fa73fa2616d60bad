package http

import (
	"net/http"

	"github.com/MKhiriev/go-phonebook/internal/utils"
	"github.com/MKhiriev/go-phonebook/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService

	build := info.GetBuildInfo(r.Context())
	_, _ = utils.WriteJSON(w, models.VersionResponse{
		Version:      info.GetAppVersion(r.Context()),
		BuildVersion: build.BuildVersion(),
		BuildDate:    build.BuildDate(),
		BuildCommit:  build.BuildCommit(),
	}, http.StatusOK)
}
