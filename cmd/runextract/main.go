package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/parte-archiv/parte-tracker/constants"
	"github.com/parte-archiv/parte-tracker/internal/common"
	"github.com/parte-archiv/parte-tracker/internal/convert"
	"github.com/parte-archiv/parte-tracker/internal/ocr"
	"github.com/parte-archiv/parte-tracker/internal/pipeline"
	repo "github.com/parte-archiv/parte-tracker/internal/repository"
)

// Runs extraction passes without the daemon. Either one notice by id, or a
// death-date backfill batch over notices still missing that field:
//
//	runextract <notice-id-uuid>
//	runextract -mode death_date <notice-id-uuid>
//	runextract -backfill [-limit 50]
func main() {
	_ = godotenv.Load()

	backfill := flag.Bool("backfill", false, "process notices missing a death date instead of a single id")
	limit := flag.Int("limit", 50, "maximum notices per backfill batch")
	modeFlag := flag.String("mode", string(constants.ModeFull), "extraction mode: full or death_date")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	var mode constants.ExtractionMode
	switch *modeFlag {
	case string(constants.ModeFull):
		mode = constants.ModeFull
	case string(constants.ModeDeathDate):
		mode = constants.ModeDeathDate
	default:
		logger.Error("unknown mode", "mode", *modeFlag)
		os.Exit(2)
	}

	var noticeID uuid.UUID
	if !*backfill {
		if flag.NArg() != 1 {
			logger.Error("usage", "cmd", "runextract [-mode full|death_date] <notice-id-uuid> | runextract -backfill [-limit N]")
			os.Exit(2)
		}
		var err error
		noticeID, err = uuid.Parse(flag.Arg(0))
		if err != nil {
			logger.Error("invalid notice id (must be UUID)", "arg", flag.Arg(0), "error", err)
			os.Exit(2)
		}
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	noticesRepo := repo.NewNoticeRepository(entc, logger)
	filesRepo := repo.NewNoticeFileRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)

	extractor := ocr.NewExtractor(ocr.Config{
		Tesseract:   cfg.OCR.Tesseract,
		Languages:   cfg.OCR.Languages,
		TessdataDir: cfg.OCR.TessdataDir,
		PSM:         cfg.OCR.PSM,
	}, logger)

	converter := convert.NewConverter(convert.Config{
		DownloadRetries: cfg.Convert.DownloadRetries,
		DownloadBackoff: cfg.Convert.DownloadBackoff,
		DownloadTimeout: cfg.Convert.DownloadTimeout,
		RenderDPI:       float64(cfg.Convert.RenderDPI),
		JPEGQuality:     cfg.Convert.JPEGQuality,
		TempDir:         cfg.Convert.TempDir,
	}, logger)

	textPrimary, err := pipeline.BuildProvider(ctx, cfg.Vision.TextProvider, cfg.Vision, logger)
	if err != nil {
		logger.Error("failed to build text provider", "spec", cfg.Vision.TextProvider, "error", err)
		os.Exit(1)
	}
	textFallback, err := pipeline.BuildProvider(ctx, cfg.Vision.TextFallback, cfg.Vision, logger)
	if err != nil {
		logger.Error("failed to build text fallback", "spec", cfg.Vision.TextFallback, "error", err)
		os.Exit(1)
	}
	photoPrimary, err := pipeline.BuildProvider(ctx, cfg.Vision.PhotoProvider, cfg.Vision, logger)
	if err != nil {
		logger.Error("failed to build photo provider", "spec", cfg.Vision.PhotoProvider, "error", err)
		os.Exit(1)
	}
	photoFallback, err := pipeline.BuildProvider(ctx, cfg.Vision.PhotoFallback, cfg.Vision, logger)
	if err != nil {
		logger.Error("failed to build photo fallback", "spec", cfg.Vision.PhotoFallback, "error", err)
		os.Exit(1)
	}

	orch := pipeline.NewOrchestrator(logger, extractor, textPrimary, textFallback, photoPrimary, photoFallback)
	processor := pipeline.NewProcessor(logger, noticesRepo, filesRepo, jobsRepo, converter, orch, cfg.Convert.TempDir)

	if !*backfill {
		start := time.Now()
		if err := processor.ProcessNotice(ctx, noticeID, mode, 1); err != nil {
			logger.Error("extraction failed",
				"notice_id", noticeID, "mode", string(mode), "error", err,
				"duration_ms", time.Since(start).Milliseconds())
			os.Exit(1)
		}
		logger.Info("extraction OK",
			"notice_id", noticeID, "mode", string(mode),
			"duration_ms", time.Since(start).Milliseconds())
		return
	}

	// Backfill runs are always death-date only; older rows predate the
	// death-date extractor and a full pass would overwrite curated fields.
	pending, err := noticesRepo.ListMissingDeathDate(ctx, *limit)
	if err != nil {
		logger.Error("failed to list backfill candidates", "error", err)
		os.Exit(1)
	}
	logger.Info("backfill batch starting", "count", len(pending), "limit", *limit)

	failed := 0
	for _, n := range pending {
		if err := processor.ProcessNotice(ctx, n.ID, constants.ModeDeathDate, 1); err != nil {
			logger.Error("backfill pass failed", "notice_id", n.ID, "error", err)
			failed++
		}
	}
	logger.Info("backfill batch finished", "count", len(pending), "failed", failed)
	if failed > 0 {
		os.Exit(1)
	}
}
