// Package textproc cleans the raw output of an extraction tier into the
// canonical record shape: name hygiene, opening-quote recovery, business
// footer removal and bounding-box validation.
package textproc

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/parte-archiv/parte-tracker/internal/bbox"
	"github.com/parte-archiv/parte-tracker/internal/entity"
)

const (
	// quotes longer than this usually mean the provider merged the quote
	// with the announcement body
	maxQuoteLength = 500
	// announcements shorter than this are fragments, not family text
	minAnnouncementLength = 50
)

var reWhitespace = regexp.MustCompile(`\s+`)

// Process applies the post-processing chain to one extraction result.
// rawBox is the provider's unparsed photo region (nil when absent); imgW and
// imgH are the source image pixel dimensions used for pixel-to-percent
// conversion. knownName, when non-empty, wins over any provider name.
func Process(logger *slog.Logger, res entity.ExtractionResult, rawBox map[string]any, imgW, imgH int, knownName string) entity.ExtractionResult {
	if logger == nil {
		logger = slog.Default()
	}

	res.FullName = CleanName(res.FullName)
	res.FullName = EnforceKnownName(logger, knownName, res.FullName)

	if n := len([]rune(res.OpeningQuote)); n > maxQuoteLength {
		logger.Warn("textproc.quote.suspiciously_long", "length", n)
	}

	res.AnnouncementText = collapseWhitespace(res.AnnouncementText)

	if res.OpeningQuote == "" {
		if quote, rest, ok := SplitQuote(res.AnnouncementText); ok {
			logger.Debug("textproc.quote.back_extracted", "quote_length", len(quote))
			res.OpeningQuote = quote
			res.AnnouncementText = rest
		}
	}

	res.AnnouncementText = StripBusinessFooter(res.AnnouncementText)

	if res.AnnouncementText != "" && len([]rune(res.AnnouncementText)) < minAnnouncementLength {
		logger.Warn("textproc.announcement.too_short", "length", len([]rune(res.AnnouncementText)))
		res.AnnouncementText = ""
	}

	res.PhotoBBox = nil
	if rawBox != nil {
		normalized := bbox.Normalize(rawBox, imgW, imgH)
		res.PhotoBBox = bbox.Validate(normalized)
		if res.PhotoBBox == nil {
			logger.Warn("textproc.bbox.rejected", "raw", rawBox)
		}
	}

	return res
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))
}
