package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/internal/mock"
	"github.com/MKhiriev/go-phonebook/internal/search"
	"github.com/MKhiriev/go-phonebook/internal/service"
	"github.com/MKhiriev/go-phonebook/internal/store"
)

func newTestHistorySvc(t *testing.T) (service.ClientHistoryService, *mock.MockKeyValueRepository) {
	t.Helper()
	kv := mock.NewMockKeyValueRepository(gomock.NewController(t))
	return service.NewClientHistoryService(kv, logger.Nop()), kv
}

func TestClientHistoryService_Load(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		ok      bool
		want    []string
		wantErr error
	}{
		{name: "missing key", ok: false, want: []string{}},
		{name: "empty value", raw: "", ok: true, want: []string{}},
		{name: "stored list", raw: `["bob","alice"]`, ok: true, want: []string{"bob", "alice"}},
		{name: "sanitized", raw: `[" bob ","","bob","al"]`, ok: true, want: []string{"bob", "al"}},
		{name: "corrupted", raw: `{not json`, ok: true, wantErr: store.ErrPersistence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, kv := newTestHistorySvc(t)
			kv.EXPECT().Get(gomock.Any(), search.HistoryKey).Return(tt.raw, tt.ok, nil)

			got, err := svc.Load(context.Background())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClientHistoryService_Load_StoreError(t *testing.T) {
	svc, kv := newTestHistorySvc(t)
	kv.EXPECT().Get(gomock.Any(), search.HistoryKey).Return("", false, store.ErrPersistence)

	_, err := svc.Load(context.Background())
	require.ErrorIs(t, err, store.ErrPersistence)
}

func TestClientHistoryService_Save(t *testing.T) {
	svc, kv := newTestHistorySvc(t)

	gomock.InOrder(
		kv.EXPECT().Set(gomock.Any(), search.HistoryKey, `["bob","alice"]`).Return(nil),
		kv.EXPECT().Set(gomock.Any(), search.HistoryKey, `[]`).Return(nil),
	)

	require.NoError(t, svc.Save(context.Background(), []string{"bob", "alice"}))
	require.NoError(t, svc.Save(context.Background(), nil))
}

func TestClientHistoryService_Save_StoreError(t *testing.T) {
	svc, kv := newTestHistorySvc(t)
	kv.EXPECT().Set(gomock.Any(), search.HistoryKey, gomock.Any()).Return(errors.New("read-only"))

	assert.Error(t, svc.Save(context.Background(), []string{"x"}))
}
