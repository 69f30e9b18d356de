package convert

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"github.com/parte-archiv/parte-tracker/constants"
)

// Download fetches a media URL into a temp file and returns its path. The
// file keeps the URL's extension so downstream format dispatch works. Every
// failed attempt removes its partial file; after the configured number of
// attempts the last error is returned and no temp file remains.
func (c *Converter) Download(ctx context.Context, url string) (string, error) {
	ext := constants.NormalizeExt(path.Ext(url))
	if ext == "" {
		ext = "jpg"
	}

	var lastErr error
	for attempt := 1; attempt <= c.cfg.DownloadRetries; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(c.cfg.DownloadBackoff):
			}
		}

		p, err := c.downloadOnce(ctx, url, ext)
		if err == nil {
			c.logger.Info("convert.download.ok", "url", url, "path", p, "attempt", attempt)
			return p, nil
		}
		lastErr = err
		c.logger.Warn("convert.download.retry",
			"url", url, "attempt", attempt, "max_attempts", c.cfg.DownloadRetries, "error", err)
	}
	c.logger.Error("convert.download.failed", "url", url, "error", lastErr)
	return "", fmt.Errorf("download %s: %w", url, lastErr)
}

func (c *Converter) downloadOnce(ctx context.Context, url, ext string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("convert.download.body_close_error", "error", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}

	f, err := os.CreateTemp(c.cfg.TempDir, "parte-dl-*."+ext)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		name := f.Name()
		_ = f.Close()
		_ = os.Remove(name)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

// IsPDF reports whether a downloaded file is already a PDF by extension.
func IsPDF(p string) bool {
	return strings.EqualFold(path.Ext(p), ".pdf")
}
