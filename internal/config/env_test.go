package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("APP_API_KEY", "secret")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:8080")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "45s")
	t.Setenv("STORAGE_FILES_BINARY_DATA_DIR", "/srv/images")
	t.Setenv("STORAGE_DEVICE_ACCESS", "denied")
	t.Setenv("ADAPTER_UPLOAD_TIMEOUT", "2m")
	t.Setenv("SEARCH_DEBOUNCE", "750ms")
	t.Setenv("CONFIG", "/etc/phonebook.json")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "secret", cfg.App.APIKey)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/srv/images", cfg.Storage.Files.BinaryDataDir)
	assert.Equal(t, "denied", cfg.Storage.Device.Access)
	assert.Equal(t, 2*time.Minute, cfg.Adapter.UploadTimeout)
	assert.Equal(t, 750*time.Millisecond, cfg.Search.Debounce)
	assert.Equal(t, "/etc/phonebook.json", cfg.JSONFilePath)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("SEARCH_DEBOUNCE", "whenever")

	var cfg StructuredConfig
	err := parseEnv(&cfg)
	assert.Error(t, err)
}
