package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-phonebook/internal/config"
	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/internal/metrics"
	"github.com/MKhiriev/go-phonebook/internal/mock"
	"github.com/MKhiriev/go-phonebook/internal/service"
	"github.com/MKhiriev/go-phonebook/internal/utils"
)

const testAPIKey = "secret"

type testHandler struct {
	*Handler

	contacts *mock.MockContactService
	images   *mock.MockImageService
	info     *mock.MockAppInfoService
	router   http.Handler
}

func newTestHandler(t *testing.T) testHandler {
	t.Helper()
	ctrl := gomock.NewController(t)

	th := testHandler{
		contacts: mock.NewMockContactService(ctrl),
		images:   mock.NewMockImageService(ctrl),
		info:     mock.NewMockAppInfoService(ctrl),
	}
	th.Handler = NewHandler(&service.Services{
		ContactService: th.contacts,
		ImageService:   th.images,
		AppInfoService: th.info,
	}, config.App{APIKey: testAPIKey}, metrics.New(), logger.Nop())
	th.router = th.Init()

	return th
}

// do sends req through the full router with the API key set.
func (th testHandler) do(req *http.Request) *httptest.ResponseRecorder {
	if req.Header.Get(utils.APIKeyHeader) == "" {
		req.Header.Set(utils.APIKeyHeader, testAPIKey)
	}
	rec := httptest.NewRecorder()
	th.router.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buf).Encode(v))
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}
