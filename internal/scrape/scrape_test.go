package scrape

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parte-archiv/parte-tracker/constants"
)

func TestIdentityHash(t *testing.T) {
	h := IdentityHash("Marie Nováková", "8.1.2026", "https://www.pshajdukova.cz/parte/123.jpg")
	assert.Len(t, h, 12)
	assert.Regexp(t, `^[0-9a-f]{12}$`, h)

	// stable across runs and whitespace
	h2 := IdentityHash("  Marie Nováková ", "8.1.2026", "https://www.pshajdukova.cz/parte/123.jpg")
	assert.Equal(t, h, h2)

	// any component change flips the hash
	assert.NotEqual(t, h, IdentityHash("Marie Nováková", "9.1.2026", "https://www.pshajdukova.cz/parte/123.jpg"))
	assert.NotEqual(t, h, IdentityHash("Marie Nováková", "8.1.2026", "https://www.pshajdukova.cz/parte/124.jpg"))
}

func TestSeenCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.db")
	c, err := OpenSeenCache(path)
	require.NoError(t, err)
	defer c.Close()

	seen, err := c.Seen("abc123def456")
	require.NoError(t, err)
	assert.False(t, seen)

	require.NoError(t, c.Mark("abc123def456"))
	require.NoError(t, c.Mark("abc123def456"), "marking twice is fine")

	seen, err = c.Seen("abc123def456")
	require.NoError(t, err)
	assert.True(t, seen)
}

const pshajdukovaFixture = `<!DOCTYPE html><html><body>
<div class="parte-card">
  <h3 class="parte-name">Marie Nováková</h3>
  <span class="parte-funeral">8.1.2026</span>
  <a class="parte-file" href="/files/parte-123.jpg">Parte</a>
</div>
<div class="parte-card">
  <h3 class="parte-name">Josef Svoboda</h3>
  <span class="parte-funeral">12.1.2026</span>
  <a class="parte-file" href="/files/parte-124.pdf">Parte</a>
</div>
<div class="parte-card">
  <h3 class="parte-name">Bez Odkazu</h3>
</div>
</body></html>`

func TestPshajdukovaFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/parte", r.URL.Path)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(pshajdukovaFixture))
	}))
	defer srv.Close()

	a := NewPshajdukova(srv.URL, "", slog.New(slog.DiscardHandler))
	listings, err := a.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 2, "card without a file link is skipped")

	assert.Equal(t, constants.SourcePshajdukova, listings[0].Source)
	assert.Equal(t, "Marie Nováková", listings[0].Name)
	assert.Equal(t, "8.1.2026", listings[0].FuneralText)
	assert.Equal(t, srv.URL+"/files/parte-123.jpg", listings[0].MediaURL)
	assert.Equal(t, "Josef Svoboda", listings[1].Name)
}

const czsFixture = `<!DOCTYPE html><html><body>
<table class="pogrzeby"><tbody>
<tr><td>Jan Kowalski</td><td>15.01.2026 13:00</td><td><a href="/nekrolog/55.pdf">nekrolog</a></td></tr>
<tr><td>Anna Nowak</td><td>16.01.2026 11:00</td><td></td></tr>
</tbody></table>
</body></html>`

func TestCzsPogrzebyFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(czsFixture))
	}))
	defer srv.Close()

	a := NewCzsPogrzeby(srv.URL, "", slog.New(slog.DiscardHandler))
	listings, err := a.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 1, "row without a link is skipped")
	assert.Equal(t, "Jan Kowalski", listings[0].Name)
	assert.Equal(t, "15.01.2026 13:00", listings[0].FuneralText)
	assert.Equal(t, srv.URL+"/nekrolog/55.pdf", listings[0].MediaURL)
}
