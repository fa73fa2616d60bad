package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-phonebook/models"
)

func TestGetServerVersion(t *testing.T) {
	th := newTestHandler(t)

	th.info.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.0")
	th.info.EXPECT().GetBuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("v1.2.0", "2026-10-01", "abc123"))

	rec := th.do(httptest.NewRequest(http.MethodGet, "/api/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.VersionResponse{
		Version:      "1.2.0",
		BuildVersion: "v1.2.0",
		BuildDate:    "2026-10-01",
		BuildCommit:  "abc123",
	}, decodeJSON[models.VersionResponse](t, rec))
}
