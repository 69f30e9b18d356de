package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/parte-archiv/parte-tracker/constants"
	"github.com/parte-archiv/parte-tracker/internal/convert"
	"github.com/parte-archiv/parte-tracker/internal/repository"
)

// Processor runs a full extraction pass for one stored notice: render the
// canonical PDF to a JPEG, run the tiered orchestrator over it, and persist
// the outcome in a single write plus an audit job row.
type Processor struct {
	Logger       *slog.Logger
	Notices      repository.NoticeRepository
	Files        repository.NoticeFileRepository
	Jobs         repository.ExtractJobRepository
	Converter    *convert.Converter
	Orchestrator *Orchestrator
	TempDir      string
}

func NewProcessor(logger *slog.Logger, notices repository.NoticeRepository, files repository.NoticeFileRepository, jobs repository.ExtractJobRepository, conv *convert.Converter, orch *Orchestrator, tempDir string) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		Logger:       logger,
		Notices:      notices,
		Files:        files,
		Jobs:         jobs,
		Converter:    conv,
		Orchestrator: orch,
		TempDir:      tempDir,
	}
}

// ProcessNotice executes one extraction pass. The returned error reflects the
// pass itself; persistence of the audit row is best-effort and only logged.
func (p *Processor) ProcessNotice(ctx context.Context, noticeID uuid.UUID, mode constants.ExtractionMode, attempts int) error {
	n, err := p.Notices.GetByID(ctx, noticeID)
	if err != nil {
		return fmt.Errorf("get notice: %w", err)
	}
	pdf, err := p.Files.GetByNoticeAndKind(ctx, noticeID, repository.FileKindPDF)
	if err != nil {
		return fmt.Errorf("get pdf file: %w", err)
	}

	job, err := p.Jobs.Start(ctx, noticeID, &pdf.ID, constants.PDF, mode)
	if err != nil {
		return fmt.Errorf("start job: %w", err)
	}

	imgPath, err := p.renderTemp(ctx, pdf.SourcePath)
	if err != nil {
		p.finish(ctx, job.ID, repository.JobOutcome{
			Status:       constants.JobStatusFailed,
			ErrorMessage: err.Error(),
			Attempts:     attempts,
		})
		return err
	}
	defer func() {
		if rmErr := os.Remove(imgPath); rmErr != nil {
			p.Logger.Warn("processor.render.cleanup_failed", "path", imgPath, "error", rmErr)
		}
	}()

	out, err := p.Orchestrator.Run(ctx, imgPath, mode, n.FullName)
	if err != nil {
		p.finish(ctx, job.ID, repository.JobOutcome{
			Status:       constants.JobStatusFailed,
			ErrorMessage: err.Error(),
			OCRText:      out.OCRText,
			Attempts:     attempts,
		})
		return err
	}

	// One atomic write for the whole pass; a crash before this point leaves
	// the notice untouched, never half-updated.
	if _, err := p.Notices.ApplyExtraction(ctx, noticeID, mode, out.Result); err != nil {
		p.finish(ctx, job.ID, repository.JobOutcome{
			Status:       constants.JobStatusFailed,
			ErrorMessage: err.Error(),
			OCRText:      out.OCRText,
			Attempts:     attempts,
		})
		return err
	}

	status := constants.JobStatusVisionOK
	if out.TextTier == TierLocal {
		status = constants.JobStatusOCROK
	}
	p.finish(ctx, job.ID, repository.JobOutcome{
		Status:        status,
		OCRText:       out.OCRText,
		ExtractedJSON: out.RawJSON,
		ModelName:     string(out.TextProvider),
		Attempts:      attempts,
	})

	p.Logger.Info("processor.extract.ok",
		"notice_id", noticeID,
		"mode", string(mode),
		"text_tier", string(out.TextTier),
		"photo_tier", string(out.PhotoTier),
	)
	return nil
}

func (p *Processor) renderTemp(ctx context.Context, pdfPath string) (string, error) {
	f, err := os.CreateTemp(p.TempDir, "parte-render-*.jpg")
	if err != nil {
		return "", err
	}
	path := f.Name()
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", err
	}
	if err := p.Converter.RenderJPEG(ctx, pdfPath, path); err != nil {
		_ = os.Remove(path)
		return "", err
	}
	return path, nil
}

func (p *Processor) finish(ctx context.Context, jobID uuid.UUID, out repository.JobOutcome) {
	if err := p.Jobs.Finish(ctx, jobID, out); err != nil {
		p.Logger.Error("processor.job.finish_failed", "job_id", jobID, "error", err)
	}
}
