package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/parte-archiv/parte-tracker/constants"
	noticespb "github.com/parte-archiv/parte-tracker/gen/proto/notices/v1"
	"github.com/parte-archiv/parte-tracker/internal/export"
)

type ExportServer struct {
	noticespb.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportNotices(ctx context.Context, req *noticespb.ExportNoticesRequest) (*noticespb.ExportNoticesResponse, error) {
	source := strings.TrimSpace(req.GetSource())
	if source != "" {
		src, ok := constants.ParseSource(source)
		if !ok {
			return nil, status.Errorf(codes.InvalidArgument, "unknown source %q", source)
		}
		source = string(src)
	}

	from, err := parseDateArg(req.GetFromDate(), "from_date")
	if err != nil {
		return nil, err
	}
	to, err := parseDateArg(req.GetToDate(), "to_date")
	if err != nil {
		return nil, err
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, status.Error(codes.InvalidArgument, "to_date is before from_date")
	}

	start := time.Now()
	xlsx, err := s.svc.ExportNoticesXLSX(ctx, source, from, to)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "source", source, "error", err)
		return nil, status.Errorf(codes.Internal, "export: %v", err)
	}
	s.logger.Info("export.xlsx.ok", "source", source, "bytes", len(xlsx), "elapsed_ms", time.Since(start).Milliseconds())

	return &noticespb.ExportNoticesResponse{Xlsx: xlsx}, nil
}
