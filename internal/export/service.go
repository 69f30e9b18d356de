package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/parte-archiv/parte-tracker/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	noticesRepo repository.NoticeRepository
	filesRepo   repository.NoticeFileRepository
	logger      *slog.Logger
}

func NewService(notices repository.NoticeRepository, files repository.NoticeFileRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{noticesRepo: notices, filesRepo: files, logger: logger}
}

// ExportNoticesXLSX returns an XLSX workbook (as bytes) for a source and
// funeral-date window. An empty source exports every site.
// If only from is provided -> from..today (inclusive).
// If neither is provided   -> all notices.
func (s *Service) ExportNoticesXLSX(ctx context.Context, source string, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	notices, err := s.noticesRepo.List(ctx, source, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query notices: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Notices"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Name",
		"Death Date",
		"Funeral Date",
		"Opening Quote",
		"Source",
		"Source URL",
		"Has Photo",
		"PDF Path",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, n := range notices {
		pdfPath := ""
		if file, err := s.filesRepo.GetByNoticeAndKind(ctx, n.ID, repository.FileKindPDF); err == nil && file != nil {
			pdfPath = file.SourcePath
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, n.FullName)
		write(2, dateCell(n.DeathDate))
		write(3, dateCell(n.FuneralDate))
		write(4, strCell(n.OpeningQuote))
		write(5, n.Source)
		write(6, n.SourceURL)
		write(7, n.HasPhoto)
		write(8, pdfPath)
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}

	s.logger.Info("export.notices.ok",
		"source", source,
		"rows", len(notices),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func dateCell(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func strCell(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

