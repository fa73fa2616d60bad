package store

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-phonebook/internal/config"
	"github.com/MKhiriev/go-phonebook/internal/logger"
)

func TestImageFileStorage_SaveAndOpen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")
	s, err := NewImageFileStorage(config.Files{BinaryDataDir: dir}, logger.Nop())
	require.NoError(t, err)

	n, err := s.Save(context.Background(), "a.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.EqualValues(t, len("png-bytes"), n)

	f, err := s.Open(context.Background(), "a.png")
	require.NoError(t, err)
	defer f.Close()

	content, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))

	// temporary files are gone
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestImageFileStorage_OpenMissing(t *testing.T) {
	s, err := NewImageFileStorage(config.Files{BinaryDataDir: t.TempDir()}, logger.Nop())
	require.NoError(t, err)

	_, err = s.Open(context.Background(), "missing.png")
	require.ErrorIs(t, err, ErrImageNotFound)
}

func TestImageFileStorage_InvalidNames(t *testing.T) {
	s, err := NewImageFileStorage(config.Files{BinaryDataDir: t.TempDir()}, logger.Nop())
	require.NoError(t, err)

	for _, name := range []string{"", ".", "..", "../etc/passwd", "a/b.png", `a\b.png`, ".hidden"} {
		_, err = s.Save(context.Background(), name, strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrInvalidImageName, name)

		_, err = s.Open(context.Background(), name)
		assert.ErrorIs(t, err, ErrInvalidImageName, name)
	}
}

func TestNewImageFileStorage_EmptyDir(t *testing.T) {
	_, err := NewImageFileStorage(config.Files{}, logger.Nop())
	require.Error(t, err)
}
