package convert

import (
	"log/slog"
	"net/http"
	"time"
)

// Config for media download and conversion.
type Config struct {
	DownloadRetries int           // attempts per URL
	DownloadBackoff time.Duration // fixed wait between attempts
	DownloadTimeout time.Duration // per-request timeout
	RenderDPI       float64       // PDF page raster resolution
	JPEGQuality     int
	TempDir         string // defaults to os.TempDir()
}

type Converter struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewConverter(cfg Config, logger *slog.Logger) *Converter {
	if cfg.DownloadRetries <= 0 {
		cfg.DownloadRetries = 3
	}
	if cfg.DownloadBackoff <= 0 {
		cfg.DownloadBackoff = 5 * time.Second
	}
	if cfg.DownloadTimeout <= 0 {
		cfg.DownloadTimeout = 30 * time.Second
	}
	if cfg.RenderDPI <= 0 {
		cfg.RenderDPI = 200
	}
	if cfg.JPEGQuality <= 0 {
		cfg.JPEGQuality = 90
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Converter{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.DownloadTimeout},
		logger: logger,
	}
}
