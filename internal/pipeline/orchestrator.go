package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/parte-archiv/parte-tracker/constants"
	"github.com/parte-archiv/parte-tracker/internal/common"
	"github.com/parte-archiv/parte-tracker/internal/convert"
	"github.com/parte-archiv/parte-tracker/internal/entity"
	"github.com/parte-archiv/parte-tracker/internal/regexparse"
	"github.com/parte-archiv/parte-tracker/internal/textproc"
	"github.com/parte-archiv/parte-tracker/internal/vision"
)

// Tier records which extraction tier produced the accepted text result.
type Tier string

const (
	TierNone     Tier = "none"
	TierLocal    Tier = "local"
	TierPrimary  Tier = "primary"
	TierFallback Tier = "fallback"
)

// TextRecognizer is the OCR dependency; satisfied by ocr.Extractor.
type TextRecognizer interface {
	Extract(ctx context.Context, path string) (string, error)
}

// Outcome carries the accepted result plus audit detail for extract_job rows.
type Outcome struct {
	Result       entity.ExtractionResult
	TextTier     Tier
	TextProvider constants.ProviderID // empty when TierLocal
	PhotoTier    Tier
	OCRText      string
	RawJSON      []byte
}

// Orchestrator runs the tiered extraction state machine over one notice
// image: local OCR+regex first, then the primary provider, then the fallback.
// The portrait task runs its own provider chain, independent of the text task.
type Orchestrator struct {
	Logger        *slog.Logger
	OCR           TextRecognizer
	TextPrimary   vision.Provider
	TextFallback  vision.Provider // may be nil
	PhotoPrimary  vision.Provider
	PhotoFallback vision.Provider // may be nil

	// Dims resolves image pixel dimensions; defaults to convert.ImageDimensions.
	Dims func(path string) (int, int, error)
}

func NewOrchestrator(logger *slog.Logger, ocr TextRecognizer, textPrimary, textFallback, photoPrimary, photoFallback vision.Provider) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		Logger:        logger,
		OCR:           ocr,
		TextPrimary:   textPrimary,
		TextFallback:  textFallback,
		PhotoPrimary:  photoPrimary,
		PhotoFallback: photoFallback,
		Dims:          convert.ImageDimensions,
	}
}

// Run extracts structured fields from a rendered notice image. knownName is
// the name the notice was listed under on the source site; when non-empty it
// wins over whatever any extractor reads.
func (o *Orchestrator) Run(ctx context.Context, imagePath string, mode constants.ExtractionMode, knownName string) (Outcome, error) {
	out := Outcome{TextTier: TierNone, PhotoTier: TierNone}
	req := vision.Request{ImagePath: imagePath, Mode: mode, KnownName: knownName}

	// Tier 1: OCR plus regex heuristics. Empty OCR output skips straight to
	// the providers.
	ocrText, err := o.OCR.Extract(ctx, imagePath)
	if err != nil {
		o.Logger.Warn("pipeline.ocr.failed", "image", imagePath, "error", err)
		ocrText = ""
	}
	out.OCRText = ocrText

	var res entity.ExtractionResult
	var rawBox map[string]any

	// Kept even when rejected: partial regex hits backfill provider nulls.
	var local entity.ExtractionResult
	if strings.TrimSpace(ocrText) != "" {
		local = regexparse.Parse(o.Logger, ocrText, mode)
		if acceptText(mode, &local) {
			res = local
			out.TextTier = TierLocal
			o.Logger.Info("pipeline.text.local_accepted",
				"image", imagePath, "mode", string(mode), "name", local.FullName)
		}
	}

	if out.TextTier == TierNone {
		attempts := []struct {
			tier Tier
			p    vision.Provider
		}{{TierPrimary, o.TextPrimary}, {TierFallback, o.TextFallback}}

		for _, a := range attempts {
			if a.p == nil {
				continue
			}
			tr, err := a.p.ExtractText(ctx, req)
			if err != nil {
				o.Logger.Warn("pipeline.text.provider_failed",
					"image", imagePath, "tier", string(a.tier), "provider", string(a.p.ID()), "error", err)
				continue
			}
			if !acceptText(mode, &tr.Fields) {
				o.Logger.Warn("pipeline.text.provider_invalid",
					"image", imagePath, "tier", string(a.tier), "provider", string(a.p.ID()))
				continue
			}
			res = mergeLocal(tr.Fields, local, mode)
			rawBox = tr.RawBox
			out.TextTier = a.tier
			out.TextProvider = a.p.ID()
			out.RawJSON = tr.RawJSON
			break
		}
	}

	if out.TextTier == TierNone {
		o.Logger.Error("pipeline.text.exhausted", "image", imagePath, "mode", string(mode))
		return out, fmt.Errorf("extraction failed for %s: all tiers exhausted: %w", imagePath, common.ErrProvider)
	}

	// Portrait task. A provider answering has_photo=false escalates to the
	// fallback exactly like a hard failure: a missed portrait costs more than
	// a wrongly guessed one.
	if mode == constants.ModeFull {
		attempts := []struct {
			tier Tier
			p    vision.Provider
		}{{TierPrimary, o.PhotoPrimary}, {TierFallback, o.PhotoFallback}}

		for _, a := range attempts {
			if a.p == nil {
				continue
			}
			pr, err := a.p.DetectPhoto(ctx, req)
			if err != nil {
				o.Logger.Warn("pipeline.photo.provider_failed",
					"image", imagePath, "tier", string(a.tier), "provider", string(a.p.ID()), "error", err)
				continue
			}
			if !pr.HasPhoto {
				res.HasPhoto = false
				o.Logger.Info("pipeline.photo.not_found",
					"image", imagePath, "tier", string(a.tier), "provider", string(a.p.ID()))
				continue
			}
			res.HasPhoto = true
			rawBox = pr.RawBox
			out.PhotoTier = a.tier
			break
		}
	}

	imgW, imgH, err := o.Dims(imagePath)
	if err != nil {
		o.Logger.Warn("pipeline.dims.failed", "image", imagePath, "error", err)
		imgW, imgH = 0, 0
	}

	out.Result = textproc.Process(o.Logger, res, rawBox, imgW, imgH, knownName)
	return out, nil
}

// mergeLocal fills fields a provider left empty from the regex partials.
// Provider values always win; the regex tier only backfills. Death-date mode
// touches nothing but the death date.
func mergeLocal(res, local entity.ExtractionResult, mode constants.ExtractionMode) entity.ExtractionResult {
	if res.DeathDate == "" {
		res.DeathDate = local.DeathDate
	}
	if mode == constants.ModeDeathDate {
		return res
	}
	if res.FullName == "" {
		res.FullName = local.FullName
	}
	if res.FuneralDate == "" {
		res.FuneralDate = local.FuneralDate
	}
	if res.OpeningQuote == "" {
		res.OpeningQuote = local.OpeningQuote
	}
	if res.AnnouncementText == "" {
		res.AnnouncementText = local.AnnouncementText
	}
	return res
}

// acceptText is the transition rule for the text task: full mode needs a
// non-empty name, death-date mode needs a death date.
func acceptText(mode constants.ExtractionMode, res *entity.ExtractionResult) bool {
	if mode == constants.ModeDeathDate {
		return res.ValidDeathDate()
	}
	return res.ValidText()
}
