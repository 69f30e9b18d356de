package textproc

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Leading "the late" markers. Polish notices prefix the name with śp.
// (świętej pamięci) in several spellings; OCR often drops the diacritic.
var reDeceasedMarker = regexp.MustCompile(`^(?i)(?:śp|ś\.?\s?p|sp)\.\s*`)

// CleanName strips a leading deceased-marker token and trims whitespace.
func CleanName(name string) string {
	return strings.TrimSpace(reDeceasedMarker.ReplaceAllString(strings.TrimSpace(name), ""))
}

// EnforceKnownName forces a previously verified name back in place when a
// provider returned anything else. Providers routinely "correct" Czech and
// Polish diacritics; a name that already passed review is never overwritten.
// The nature of the difference is logged for observability only.
func EnforceKnownName(logger *slog.Logger, known, candidate string) string {
	known = strings.TrimSpace(known)
	if known == "" {
		return candidate
	}
	if candidate == known {
		return known
	}
	logger.Info("textproc.name.enforced",
		"known", known,
		"candidate", candidate,
		"difference", classifyNameDiff(known, candidate),
	)
	return known
}

func classifyNameDiff(known, candidate string) string {
	if stripDiacritics(known) == stripDiacritics(candidate) {
		return "diacritics"
	}
	if strings.EqualFold(known, candidate) {
		return "case"
	}
	return fmt.Sprintf("length_delta_%+d", len([]rune(candidate))-len([]rune(known)))
}

var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func stripDiacritics(s string) string {
	out, _, err := transform.String(diacriticStripper, s)
	if err != nil {
		return s
	}
	// ł/Ł carry no combining mark and survive NFD
	out = strings.NewReplacer("ł", "l", "Ł", "L").Replace(out)
	return out
}
