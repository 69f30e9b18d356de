package convert

import (
	"context"
	"image"
	"image/png"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConverter(t *testing.T) *Converter {
	t.Helper()
	return NewConverter(Config{
		DownloadRetries: 3,
		DownloadBackoff: time.Millisecond,
		DownloadTimeout: time.Second,
		TempDir:         t.TempDir(),
	}, slog.New(slog.DiscardHandler))
}

func TestDownloadRetriesThenSucceeds(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("notice bytes"))
	}))
	defer srv.Close()

	c := newTestConverter(t)
	p, err := c.Download(context.Background(), srv.URL+"/parte.jpg")
	require.NoError(t, err)
	assert.Equal(t, 3, calls)

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "notice bytes", string(b))

	// the downloaded file is the only thing left in the temp dir
	entries, err := os.ReadDir(c.cfg.TempDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(p), entries[0].Name())
}

func TestDownloadAllAttemptsFail(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := newTestConverter(t)
	_, err := c.Download(context.Background(), srv.URL+"/missing.pdf")
	require.Error(t, err)
	assert.Equal(t, 3, calls)

	// no partial files survive a failed download
	entries, err := os.ReadDir(c.cfg.TempDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDownloadKeepsExtension(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("%PDF-1.4"))
	}))
	defer srv.Close()

	c := newTestConverter(t)
	p, err := c.Download(context.Background(), srv.URL+"/oznameni.PDF")
	require.NoError(t, err)
	assert.True(t, IsPDF(p))
}

func TestImageDimensions(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "img.png")
	f, err := os.Create(p)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 120, 80))))
	require.NoError(t, f.Close())

	w, h, err := ImageDimensions(p)
	require.NoError(t, err)
	assert.Equal(t, 120, w)
	assert.Equal(t, 80, h)
}
