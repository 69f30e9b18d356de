package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parte-archiv/parte-tracker/constants"
	"github.com/parte-archiv/parte-tracker/internal/common"
	"github.com/parte-archiv/parte-tracker/internal/entity"
	"github.com/parte-archiv/parte-tracker/internal/vision"
)

type fakeOCR struct {
	text string
	err  error
}

func (f *fakeOCR) Extract(ctx context.Context, path string) (string, error) {
	return f.text, f.err
}

type fakeProvider struct {
	id         constants.ProviderID
	text       vision.TextResult
	textErr    error
	textCalls  int
	photo      vision.PhotoResult
	photoErr   error
	photoCalls int
	lastReq    vision.Request
}

func (f *fakeProvider) ID() constants.ProviderID { return f.id }

func (f *fakeProvider) ExtractText(ctx context.Context, req vision.Request) (vision.TextResult, error) {
	f.textCalls++
	f.lastReq = req
	return f.text, f.textErr
}

func (f *fakeProvider) DetectPhoto(ctx context.Context, req vision.Request) (vision.PhotoResult, error) {
	f.photoCalls++
	return f.photo, f.photoErr
}

func newTestOrchestrator(ocrText string, textPrimary, textFallback, photoPrimary, photoFallback vision.Provider) *Orchestrator {
	o := NewOrchestrator(slog.New(slog.DiscardHandler), &fakeOCR{text: ocrText},
		textPrimary, textFallback, photoPrimary, photoFallback)
	o.Dims = func(string) (int, int, error) { return 1000, 2000, nil }
	return o
}

func TestRunLocalTierAccepted(t *testing.T) {
	primary := &fakeProvider{id: constants.ProviderGemini}
	ocrText := "oznamujeme, že nás opustila paní\nMarie Nováková\nzemřela dne 29.12.2025\nPoslední rozloučení se koná 8.1.2026."

	o := newTestOrchestrator(ocrText, primary, nil, nil, nil)
	out, err := o.Run(context.Background(), "/img/parte.jpg", constants.ModeFull, "")
	require.NoError(t, err)

	assert.Equal(t, TierLocal, out.TextTier)
	assert.Equal(t, "Marie Nováková", out.Result.FullName)
	assert.Equal(t, "2025-12-29", out.Result.DeathDate)
	assert.Equal(t, "2026-01-08", out.Result.FuneralDate)
	assert.Zero(t, primary.textCalls, "providers stay untouched when the local tier succeeds")
}

func TestRunEmptyOCREscalatesToPrimary(t *testing.T) {
	primary := &fakeProvider{
		id:   constants.ProviderGemini,
		text: vision.TextResult{Fields: entity.ExtractionResult{FullName: "Jan Kowalski", DeathDate: "2026-01-12"}},
	}

	o := newTestOrchestrator("", primary, nil, nil, nil)
	out, err := o.Run(context.Background(), "/img/parte.jpg", constants.ModeFull, "")
	require.NoError(t, err)

	assert.Equal(t, TierPrimary, out.TextTier)
	assert.Equal(t, constants.ProviderGemini, out.TextProvider)
	assert.Equal(t, "Jan Kowalski", out.Result.FullName)
	assert.Equal(t, 1, primary.textCalls)
}

func TestRunInvalidPrimaryFallsBack(t *testing.T) {
	primary := &fakeProvider{
		id:   constants.ProviderGemini,
		text: vision.TextResult{Fields: entity.ExtractionResult{DeathDate: "2026-01-12"}}, // no name
	}
	fallback := &fakeProvider{
		id:   constants.ProviderAbacusAI,
		text: vision.TextResult{Fields: entity.ExtractionResult{FullName: "Jan Kowalski"}},
	}

	o := newTestOrchestrator("", primary, fallback, nil, nil)
	out, err := o.Run(context.Background(), "/img/parte.jpg", constants.ModeFull, "")
	require.NoError(t, err)

	assert.Equal(t, TierFallback, out.TextTier)
	assert.Equal(t, constants.ProviderAbacusAI, out.TextProvider)
	assert.Equal(t, 1, primary.textCalls)
	assert.Equal(t, 1, fallback.textCalls)
}

func TestRunProviderResultKeepsRegexDates(t *testing.T) {
	// The dates parse locally but no name does, so full mode escalates; the
	// provider answers with only a name and the regex dates must survive.
	ocrText := "zemřel dne 29.12.2025. Poslední rozloučení se koná 8.1.2026."
	primary := &fakeProvider{
		id:   constants.ProviderGemini,
		text: vision.TextResult{Fields: entity.ExtractionResult{FullName: "Karel Novák"}},
	}

	o := newTestOrchestrator(ocrText, primary, nil, nil, nil)
	out, err := o.Run(context.Background(), "/img/parte.jpg", constants.ModeFull, "")
	require.NoError(t, err)

	assert.Equal(t, TierPrimary, out.TextTier)
	assert.Equal(t, "Karel Novák", out.Result.FullName)
	assert.Equal(t, "2025-12-29", out.Result.DeathDate)
	assert.Equal(t, "2026-01-08", out.Result.FuneralDate)
}

func TestRunProviderFieldsWinOverRegex(t *testing.T) {
	ocrText := "zemřel dne 29.12.2025. Poslední rozloučení se koná 8.1.2026."
	primary := &fakeProvider{
		id: constants.ProviderGemini,
		text: vision.TextResult{Fields: entity.ExtractionResult{
			FullName:  "Karel Novák",
			DeathDate: "2025-12-30",
		}},
	}

	o := newTestOrchestrator(ocrText, primary, nil, nil, nil)
	out, err := o.Run(context.Background(), "/img/parte.jpg", constants.ModeFull, "")
	require.NoError(t, err)

	assert.Equal(t, "2025-12-30", out.Result.DeathDate, "a provider date is never overwritten by the regex tier")
	assert.Equal(t, "2026-01-08", out.Result.FuneralDate)
}

func TestRunAllTextTiersExhausted(t *testing.T) {
	primary := &fakeProvider{id: constants.ProviderGemini, textErr: errors.New("boom")}
	fallback := &fakeProvider{id: constants.ProviderAbacusAI, textErr: errors.New("boom")}

	o := newTestOrchestrator("", primary, fallback, nil, nil)
	out, err := o.Run(context.Background(), "/img/parte.jpg", constants.ModeFull, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrProvider)
	assert.Equal(t, TierNone, out.TextTier)
	assert.Zero(t, primary.photoCalls, "photo task is skipped when text extraction fails")
}

func TestRunPhotoEscalatesOnNoPhoto(t *testing.T) {
	textP := &fakeProvider{
		id:   constants.ProviderGemini,
		text: vision.TextResult{Fields: entity.ExtractionResult{FullName: "Jan Kowalski"}},
	}
	photoPrimary := &fakeProvider{
		id:    constants.ProviderGemini,
		photo: vision.PhotoResult{HasPhoto: false},
	}
	photoFallback := &fakeProvider{
		id: constants.ProviderAbacusAI,
		photo: vision.PhotoResult{
			HasPhoto: true,
			RawBox: map[string]any{
				"x_percent": 10.0, "y_percent": 5.0,
				"width_percent": 20.0, "height_percent": 30.0,
			},
		},
	}

	o := newTestOrchestrator("", textP, nil, photoPrimary, photoFallback)
	out, err := o.Run(context.Background(), "/img/parte.jpg", constants.ModeFull, "")
	require.NoError(t, err)

	assert.Equal(t, 1, photoPrimary.photoCalls)
	assert.Equal(t, 1, photoFallback.photoCalls, "has_photo=false escalates like a provider failure")
	assert.Equal(t, TierFallback, out.PhotoTier)
	assert.True(t, out.Result.HasPhoto)
	require.NotNil(t, out.Result.PhotoBBox)
	assert.InDelta(t, 10.0, out.Result.PhotoBBox.X, 0.001)
	assert.InDelta(t, 30.0, out.Result.PhotoBBox.Height, 0.001)
}

func TestRunPhotoBothSayNo(t *testing.T) {
	textP := &fakeProvider{
		id:   constants.ProviderGemini,
		text: vision.TextResult{Fields: entity.ExtractionResult{FullName: "Jan Kowalski", HasPhoto: true}},
	}
	photoP := &fakeProvider{id: constants.ProviderGemini, photo: vision.PhotoResult{HasPhoto: false}}
	photoF := &fakeProvider{id: constants.ProviderAbacusAI, photo: vision.PhotoResult{HasPhoto: false}}

	o := newTestOrchestrator("", textP, nil, photoP, photoF)
	out, err := o.Run(context.Background(), "/img/parte.jpg", constants.ModeFull, "")
	require.NoError(t, err)

	assert.Equal(t, TierNone, out.PhotoTier)
	assert.False(t, out.Result.HasPhoto)
	assert.Nil(t, out.Result.PhotoBBox)
}

func TestRunDeathDateMode(t *testing.T) {
	primary := &fakeProvider{id: constants.ProviderGemini}
	ocrText := "zmarła dnia 12 stycznia 2026 po długiej chorobie"

	o := newTestOrchestrator(ocrText, primary, nil, primary, nil)
	out, err := o.Run(context.Background(), "/img/parte.jpg", constants.ModeDeathDate, "")
	require.NoError(t, err)

	assert.Equal(t, TierLocal, out.TextTier)
	assert.Equal(t, "2026-01-12", out.Result.DeathDate)
	assert.Empty(t, out.Result.FullName)
	assert.Zero(t, primary.photoCalls, "death-date mode never runs the portrait task")
}

func TestRunKnownNameWins(t *testing.T) {
	primary := &fakeProvider{
		id:   constants.ProviderGemini,
		text: vision.TextResult{Fields: entity.ExtractionResult{FullName: "Jana Dvorakova"}},
	}

	o := newTestOrchestrator("", primary, nil, nil, nil)
	out, err := o.Run(context.Background(), "/img/parte.jpg", constants.ModeFull, "Jana Dvořáková")
	require.NoError(t, err)
	assert.Equal(t, "Jana Dvořáková", out.Result.FullName)
	assert.Equal(t, "Jana Dvořáková", primary.lastReq.KnownName, "providers see the listed name, not just the post-processor")
}
