package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	noticespb "github.com/parte-archiv/parte-tracker/gen/proto/notices/v1"
	"github.com/parte-archiv/parte-tracker/internal/async"
	"github.com/parte-archiv/parte-tracker/internal/common"
	"github.com/parte-archiv/parte-tracker/internal/convert"
	"github.com/parte-archiv/parte-tracker/internal/export"
	"github.com/parte-archiv/parte-tracker/internal/ocr"
	"github.com/parte-archiv/parte-tracker/internal/pipeline"
	repo "github.com/parte-archiv/parte-tracker/internal/repository"
	"github.com/parte-archiv/parte-tracker/internal/scrape"
	svc "github.com/parte-archiv/parte-tracker/internal/server"
)

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

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

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
		async.WithQueueSize(256),
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
	go scraper.RunLoop(ctx, cfg.Scrape.Interval)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	noticespb.RegisterNoticesServiceServer(grpcServer, svc.NewNoticeService(noticesRepo, queue, logger))
	exportSvc := export.NewService(noticesRepo, filesRepo, logger)
	noticespb.RegisterExportServiceServer(grpcServer, svc.NewExportServer(exportSvc, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("parte-tracker listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
