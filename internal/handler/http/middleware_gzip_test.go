// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-phonebook/models"
)

func gzipped(t *testing.T, s string) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	zw := gzip.NewWriter(buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf
}

func gunzip(t *testing.T, r io.Reader) string {
	t.Helper()
	zr, err := gzip.NewReader(r)
	require.NoError(t, err)
	defer zr.Close()
	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(data)
}

func echoHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("echo:" + string(body)))
	})
}

func TestWithGZip(t *testing.T) {
	tests := []struct {
		name            string
		acceptEncoding  string
		contentEncoding string
		body            io.Reader
		wantStatus      int
		wantGzipped     bool
		wantBody        string
	}{
		{
			name:           "compresses response when accepted",
			acceptEncoding: "deflate, gzip;q=1.0",
			body:           strings.NewReader("x"),
			wantStatus:     http.StatusOK,
			wantGzipped:    true,
			wantBody:       "echo:x",
		},
		{
			name:       "plain response otherwise",
			body:       strings.NewReader("x"),
			wantStatus: http.StatusOK,
			wantBody:   "echo:x",
		},
		{
			name:            "decodes gzipped request",
			contentEncoding: "gzip",
			body:            gzipped(t, `{"firstName":"Ada"}`),
			wantStatus:      http.StatusOK,
			wantBody:        `echo:{"firstName":"Ada"}`,
		},
		{
			name:            "rejects broken gzip request",
			contentEncoding: "gzip",
			body:            strings.NewReader("not gzip"),
			wantStatus:      http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/User", tt.body)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}
			rec := httptest.NewRecorder()

			withGZip(echoHandler()).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody == "" {
				return
			}
			if tt.wantGzipped {
				assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.wantBody, gunzip(t, rec.Body))
			} else {
				assert.Empty(t, rec.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestRouter_GzipListResponse(t *testing.T) {
	th := newTestHandler(t)
	th.contacts.EXPECT().ListContacts(gomock.Any()).Return([]models.Contact{{ID: "1", FirstName: "Ada"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/User/GetAll", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := th.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Contains(t, gunzip(t, rec.Body), `"firstName":"Ada"`)
}
