package abacus

import (
	"log/slog"
	"net/http"
	"os"
	"time"
)

// Config for the Abacus.AI client. The RouteLLM endpoint speaks the
// chat/completions dialect, so the client is plain HTTP.
type Config struct {
	APIKey  string // if empty, falls back to env ABACUSAI_API_KEY
	BaseURL string // default https://routellm.abacus.ai/v1
	Model   string // e.g. "gpt-4o"
	Timeout time.Duration
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("ABACUSAI_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://routellm.abacus.ai/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 90 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}
