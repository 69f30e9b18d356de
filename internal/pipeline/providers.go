package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/parte-archiv/parte-tracker/constants"
	"github.com/parte-archiv/parte-tracker/internal/common"
	"github.com/parte-archiv/parte-tracker/internal/vision"
	"github.com/parte-archiv/parte-tracker/internal/vision/abacus"
	"github.com/parte-archiv/parte-tracker/internal/vision/gemini"
)

// BuildProvider constructs an adapter for a provider spec. The switch is
// closed on purpose: adding a provider means adding an adapter package and a
// case here. Returns nil (no error) when the spec string is empty, so optional
// fallback slots stay unconfigured.
func BuildProvider(ctx context.Context, spec string, cfg common.VisionConfig, logger *slog.Logger) (vision.Provider, error) {
	if spec == "" {
		return nil, nil
	}
	parsed, err := vision.ParseSpec(spec)
	if err != nil {
		return nil, err
	}

	switch parsed.Provider {
	case constants.ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("provider %s: GEMINI_API_KEY not set", parsed)
		}
		return gemini.NewClient(ctx, gemini.Config{
			APIKey:  cfg.GeminiAPIKey,
			Model:   parsed.Model,
			Timeout: cfg.Timeout,
		}, logger)
	case constants.ProviderAbacusAI:
		if cfg.AbacusAPIKey == "" {
			return nil, fmt.Errorf("provider %s: ABACUSAI_API_KEY not set", parsed)
		}
		return abacus.NewClient(abacus.Config{
			APIKey:  cfg.AbacusAPIKey,
			BaseURL: cfg.AbacusBaseURL,
			Model:   parsed.Model,
			Timeout: cfg.Timeout,
		}, logger), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", parsed.Provider)
	}
}
