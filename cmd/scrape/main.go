package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/parte-archiv/parte-tracker/internal/async"
	"github.com/parte-archiv/parte-tracker/internal/common"
	"github.com/parte-archiv/parte-tracker/internal/convert"
	"github.com/parte-archiv/parte-tracker/internal/ocr"
	"github.com/parte-archiv/parte-tracker/internal/pipeline"
	repo "github.com/parte-archiv/parte-tracker/internal/repository"
	"github.com/parte-archiv/parte-tracker/internal/scrape"
)

// One-shot scrape of all configured sources, draining the extraction queue
// before exit. Meant for cron; the daemon does the same thing on a ticker.
func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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
	queue := async.NewExtractQueue(processor, logger,
		async.WithWorkers(4),
		async.WithProcessTimeout(5*time.Minute),
	)

	seen, err := scrape.OpenSeenCache(cfg.Scrape.SeenCachePath)
	if err != nil {
		logger.Error("failed to open seen cache", "path", cfg.Scrape.SeenCachePath, "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := seen.Close(); cerr != nil {
			logger.Error("failed to close seen cache", "error", cerr)
		}
	}()

	scraper := &scrape.Service{
		Logger: logger,
		Adapters: []scrape.SiteAdapter{
			scrape.NewPshajdukova("", cfg.Scrape.UserAgent, logger),
			scrape.NewWrzecionko("", cfg.Scrape.UserAgent, logger),
			scrape.NewCzsPogrzeby("", cfg.Scrape.UserAgent, logger),
		},
		Notices:    noticesRepo,
		Files:      filesRepo,
		Converter:  converter,
		Queue:      queue,
		Cache:      seen,
		StorageDir: cfg.Scrape.StorageDir,
	}

	start := time.Now()
	scraper.RunOnce(ctx)
	queue.Shutdown(ctx)
	logger.Info("scrape run finished", "elapsed_ms", time.Since(start).Milliseconds())
}
