package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_RegistersRoutes(t *testing.T) {
	th := newTestHandler(t)

	router, ok := th.router.(*chi.Mux)
	require.True(t, ok)

	registered := map[string]bool{}
	require.NoError(t, chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	}))

	for _, want := range []string{
		"GET /api/User/GetAll",
		"GET /api/User/{id}",
		"POST /api/User",
		"PUT /api/User/{id}",
		"DELETE /api/User/{id}",
		"POST /api/User/UploadImage",
		"GET /api/version",
		"GET /images/{name}",
		"GET /metrics",
	} {
		assert.True(t, registered[want], "route %s is not registered", want)
	}
}

func TestInit_UnknownMethodIsNotFound(t *testing.T) {
	th := newTestHandler(t)

	rec := th.do(httptest.NewRequest(http.MethodPatch, "/api/User/GetAll", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_MetricsEndpoint(t *testing.T) {
	th := newTestHandler(t)

	rec := httptest.NewRecorder()
	th.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestInit_RecoversFromPanics(t *testing.T) {
	th := newTestHandler(t)
	th.Handler.services.ContactService = nil

	rec := th.do(httptest.NewRequest(http.MethodGet, "/api/User/GetAll", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
