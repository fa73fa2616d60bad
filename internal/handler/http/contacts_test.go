package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-phonebook/internal/app"
	"github.com/MKhiriev/go-phonebook/internal/service"
	"github.com/MKhiriev/go-phonebook/internal/store"
	"github.com/MKhiriev/go-phonebook/internal/validators"
	"github.com/MKhiriev/go-phonebook/models"
)

func TestListContacts(t *testing.T) {
	th := newTestHandler(t)

	th.contacts.EXPECT().ListContacts(gomock.Any()).Return([]models.Contact{
		{ID: "1", FirstName: "Ada", LastName: "Lovelace", PhoneNumber: "5551234567"},
	}, nil)

	rec := th.do(httptest.NewRequest(http.MethodGet, "/api/User/GetAll", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decodeJSON[models.ContactListResponse](t, rec)
	assert.True(t, resp.Success)
	require.Len(t, resp.Data.Users, 1)
	assert.Equal(t, "Ada", resp.Data.Users[0].FirstName)
}

func TestListContacts_EmptyIsArray(t *testing.T) {
	th := newTestHandler(t)
	th.contacts.EXPECT().ListContacts(gomock.Any()).Return(nil, nil)

	rec := th.do(httptest.NewRequest(http.MethodGet, "/api/User/GetAll", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"users":[]`)
}

func TestGetContact(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "found", wantStatus: http.StatusOK},
		{name: "missing", err: fmt.Errorf("%w: c-1", store.ErrContactNotFound), wantStatus: http.StatusNotFound, wantMsg: app.MsgContactNotFound},
		{name: "database down", err: fmt.Errorf("%w: conn refused", store.ErrExecutingQuery), wantStatus: http.StatusInternalServerError, wantMsg: app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)
			th.contacts.EXPECT().GetContact(gomock.Any(), "c-1").Return(models.Contact{ID: "c-1"}, tt.err)

			rec := th.do(httptest.NewRequest(http.MethodGet, "/api/User/c-1", nil))
			require.Equal(t, tt.wantStatus, rec.Code)

			if tt.err == nil {
				assert.Equal(t, "c-1", decodeJSON[models.ContactResponse](t, rec).Data.ID)
				return
			}
			resp := decodeJSON[models.StatusResponse](t, rec)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantMsg, resp.Message)
		})
	}
}

func TestCreateContact(t *testing.T) {
	th := newTestHandler(t)

	payload := models.ContactPayload{FirstName: "Ada", LastName: "Lovelace", PhoneNumber: "5551234567"}
	th.contacts.EXPECT().CreateContact(gomock.Any(), payload).
		Return(models.Contact{ID: "new", FirstName: "Ada", LastName: "Lovelace", PhoneNumber: "5551234567"}, nil)

	rec := th.do(httptest.NewRequest(http.MethodPost, "/api/User", jsonBody(t, payload)))

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeJSON[models.ContactResponse](t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "new", resp.Data.ID)
}

func TestCreateContact_InvalidJSON(t *testing.T) {
	th := newTestHandler(t)

	rec := th.do(httptest.NewRequest(http.MethodPost, "/api/User", strings.NewReader(`{bad json}`)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, decodeJSON[models.StatusResponse](t, rec).Message)
}

func TestCreateContact_ValidationError(t *testing.T) {
	th := newTestHandler(t)

	th.contacts.EXPECT().CreateContact(gomock.Any(), gomock.Any()).
		Return(models.Contact{}, fmt.Errorf("%w: %w", service.ErrInvalidInput, validators.ErrEmptyFirstName))

	rec := th.do(httptest.NewRequest(http.MethodPost, "/api/User", jsonBody(t, models.ContactPayload{})))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeJSON[models.StatusResponse](t, rec).Message, validators.ErrEmptyFirstName.Error())
}

func TestCreateContact_Conflict(t *testing.T) {
	th := newTestHandler(t)

	th.contacts.EXPECT().CreateContact(gomock.Any(), gomock.Any()).Return(models.Contact{}, store.ErrContactAlreadyExists)

	rec := th.do(httptest.NewRequest(http.MethodPost, "/api/User", jsonBody(t, models.ContactPayload{})))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUpdateContact(t *testing.T) {
	th := newTestHandler(t)

	payload := models.ContactPayload{FirstName: "Ada", LastName: "King", PhoneNumber: "5551234567"}
	th.contacts.EXPECT().UpdateContact(gomock.Any(), "c-1", payload).
		Return(models.Contact{ID: "c-1", FirstName: "Ada", LastName: "King"}, nil)

	rec := th.do(httptest.NewRequest(http.MethodPut, "/api/User/c-1", jsonBody(t, payload)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "King", decodeJSON[models.ContactResponse](t, rec).Data.LastName)
}

func TestUpdateContact_NotFound(t *testing.T) {
	th := newTestHandler(t)

	th.contacts.EXPECT().UpdateContact(gomock.Any(), "gone", gomock.Any()).Return(models.Contact{}, store.ErrContactNotFound)

	rec := th.do(httptest.NewRequest(http.MethodPut, "/api/User/gone", jsonBody(t, models.ContactPayload{})))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteContact(t *testing.T) {
	th := newTestHandler(t)

	gomock.InOrder(
		th.contacts.EXPECT().DeleteContact(gomock.Any(), "c-1").Return(nil),
		th.contacts.EXPECT().DeleteContact(gomock.Any(), "c-1").Return(store.ErrContactNotFound),
	)

	rec := th.do(httptest.NewRequest(http.MethodDelete, "/api/User/c-1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeJSON[models.StatusResponse](t, rec).Success)

	rec = th.do(httptest.NewRequest(http.MethodDelete, "/api/User/c-1", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
