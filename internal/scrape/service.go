package scrape

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/parte-archiv/parte-tracker/constants"
	"github.com/parte-archiv/parte-tracker/internal/async"
	"github.com/parte-archiv/parte-tracker/internal/common"
	"github.com/parte-archiv/parte-tracker/internal/convert"
	"github.com/parte-archiv/parte-tracker/internal/repository"
)

// Service ties the site adapters to ingestion: new listings become notice
// rows with a canonical PDF on disk and an extraction job on the queue.
type Service struct {
	Logger     *slog.Logger
	Adapters   []SiteAdapter
	Notices    repository.NoticeRepository
	Files      repository.NoticeFileRepository
	Converter  *convert.Converter
	Queue      *async.ExtractQueue
	Cache      *SeenCache
	StorageDir string
}

// RunOnce scrapes every configured source a single time. Adapter failures are
// logged and skipped so one broken site never starves the others.
func (s *Service) RunOnce(ctx context.Context) {
	for _, adapter := range s.Adapters {
		listings, err := adapter.Fetch(ctx)
		if err != nil {
			s.Logger.Error("scrape.fetch.failed", "source", string(adapter.Source()), "error", err)
			continue
		}
		for _, l := range listings {
			if err := s.ingest(ctx, l); err != nil {
				s.Logger.Error("scrape.ingest.failed",
					"source", string(l.Source), "name", l.Name, "error", err)
			}
		}
	}
}

// RunLoop re-scrapes all sources on a fixed interval until ctx is done.
func (s *Service) RunLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.RunOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			s.Logger.Info("scrape.loop.stopped")
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

func (s *Service) ingest(ctx context.Context, l Listing) error {
	hash := IdentityHash(l.Name, l.FuneralText, l.MediaURL)

	if seen, err := s.Cache.Seen(hash); err != nil {
		s.Logger.Warn("scrape.cache.read_failed", "hash", hash, "error", err)
	} else if seen {
		return nil
	}

	notice, err := s.Notices.Create(ctx, &repository.CreateNoticeRequest{
		Hash:      hash,
		FullName:  l.Name,
		Source:    l.Source,
		SourceURL: l.MediaURL,
	})
	if errors.Is(err, common.ErrDuplicateHash) {
		// already in Postgres from an earlier run with a cold cache
		if mErr := s.Cache.Mark(hash); mErr != nil {
			s.Logger.Warn("scrape.cache.mark_failed", "hash", hash, "error", mErr)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("create notice: %w", err)
	}

	origPath, err := s.Converter.Download(ctx, l.MediaURL)
	if err != nil {
		return err
	}
	defer func() {
		if rmErr := os.Remove(origPath); rmErr != nil {
			s.Logger.Warn("scrape.download.cleanup_failed", "path", origPath, "error", rmErr)
		}
	}()

	pdfPath := filepath.Join(s.StorageDir, string(l.Source), hash+".pdf")
	if err := s.Converter.ToPDF(ctx, origPath, pdfPath); err != nil {
		return err
	}

	if err := s.registerFile(ctx, notice.ID, repository.FileKindPDF, pdfPath); err != nil {
		return err
	}
	if !convert.IsPDF(origPath) {
		origStore := filepath.Join(s.StorageDir, string(l.Source), hash+filepath.Ext(origPath))
		if err := copyIntoStore(origPath, origStore); err != nil {
			s.Logger.Warn("scrape.original.store_failed", "hash", hash, "error", err)
		} else if err := s.registerFile(ctx, notice.ID, repository.FileKindOriginal, origStore); err != nil {
			return err
		}
	}

	if err := s.Queue.Enqueue(ctx, async.Job{NoticeID: notice.ID, Mode: constants.ModeFull}); err != nil {
		return err
	}
	if err := s.Cache.Mark(hash); err != nil {
		s.Logger.Warn("scrape.cache.mark_failed", "hash", hash, "error", err)
	}

	s.Logger.Info("scrape.ingest.ok",
		"source", string(l.Source), "hash", hash, "name", l.Name)
	return nil
}

func copyIntoStore(src, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	b, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dest, b, 0o644)
}

func (s *Service) registerFile(ctx context.Context, noticeID uuid.UUID, kind, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sum := sha256.Sum256(b)
	_, err = s.Files.Register(ctx, &repository.RegisterFileRequest{
		NoticeID:    noticeID,
		Kind:        kind,
		SourcePath:  path,
		ContentHash: sum[:],
		FileSize:    len(b),
	})
	return err
}
