package constants

import (
	"fmt"
	"strings"
)

// ProviderID identifies a vision-model API provider.
type ProviderID string

const (
	ProviderGemini   ProviderID = "gemini"
	ProviderAbacusAI ProviderID = "abacusai"
)

func ParseProviderID(s string) (ProviderID, error) {
	switch p := ProviderID(strings.ToLower(strings.TrimSpace(s))); p {
	case ProviderGemini, ProviderAbacusAI:
		return p, nil
	default:
		return "", fmt.Errorf("unknown provider %q", s)
	}
}

// ExtractionMode selects which fields the local extractor is responsible for.
type ExtractionMode string

const (
	// ModeFull recovers name, funeral date and the remaining text fields.
	ModeFull ExtractionMode = "full"
	// ModeDeathDate recovers only the death date (backfill runs).
	ModeDeathDate ExtractionMode = "death_date"
)
