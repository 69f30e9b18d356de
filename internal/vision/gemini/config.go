package gemini

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Config for the Gemini client.
type Config struct {
	APIKey  string // if empty, falls back to env GEMINI_API_KEY
	Model   string // e.g. "gemini-2.0-flash"
	Timeout time.Duration
}

type Client struct {
	cfg    Config
	genai  *genai.Client
	logger *slog.Logger
}

func NewClient(ctx context.Context, cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 90 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	gc, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, err
	}
	return &Client{cfg: cfg, genai: gc, logger: logger}, nil
}

func (c *Client) Close() error {
	return c.genai.Close()
}
