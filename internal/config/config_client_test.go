package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestGetClientConfig_Defaults(t *testing.T) {
	t.Setenv("CONFIG", "")

	cfg, err := GetClientConfig("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Adapter.UploadTimeout)
	assert.Equal(t, "phonebook.db", cfg.Storage.Device.DSN)
	assert.True(t, cfg.Storage.Device.AccessGranted)
	assert.Equal(t, 2*time.Second, cfg.Search.Debounce)
	assert.Equal(t, language.Und, cfg.Search.Locale)
}

func TestGetClientConfig_EnvAndJSON(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"api_key": "json-key"},
		"storage": map[string]any{"device": map[string]any{"dsn": "json.db", "access": "denied"}},
		"search":  map[string]any{"debounce": "500ms", "locale": "tr"},
	})
	t.Setenv("ADAPTER_ADDRESS", "https://contacts.example.com")
	t.Setenv("STORAGE_DEVICE_DSN", "env.db")

	cfg, err := GetClientConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "json-key", cfg.App.APIKey)
	assert.Equal(t, "https://contacts.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "env.db", cfg.Storage.Device.DSN)
	assert.False(t, cfg.Storage.Device.AccessGranted)
	assert.Equal(t, 500*time.Millisecond, cfg.Search.Debounce)
	assert.Equal(t, language.Turkish, cfg.Search.Locale)
}

func TestGetClientConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want error
	}{
		{
			name: "in-memory device store",
			env:  map[string]string{"STORAGE_DEVICE_DSN": "file::memory:"},
			want: ErrInvalidStorageConfigs,
		},
		{
			name: "unknown access mode",
			env:  map[string]string{"STORAGE_DEVICE_ACCESS": "maybe"},
			want: ErrInvalidStorageConfigs,
		},
		{
			name: "bad locale",
			env:  map[string]string{"SEARCH_LOCALE": "not a locale!"},
			want: ErrInvalidSearchConfigs,
		},
		{
			name: "negative timeout",
			env:  map[string]string{"ADAPTER_REQUEST_TIMEOUT": "-1s"},
			want: ErrInvalidAdapterConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := GetClientConfig("")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
