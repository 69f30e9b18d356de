package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/parte-archiv/parte-tracker/constants"
	noticespb "github.com/parte-archiv/parte-tracker/gen/proto/notices/v1"
	"github.com/parte-archiv/parte-tracker/internal/async"
	"github.com/parte-archiv/parte-tracker/internal/common"
	"github.com/parte-archiv/parte-tracker/internal/repository"
	"github.com/parte-archiv/parte-tracker/internal/utils"
)

type NoticeService struct {
	noticespb.UnimplementedNoticesServiceServer
	noticeRepo repository.NoticeRepository
	queue      *async.ExtractQueue
	logger     *slog.Logger
}

func NewNoticeService(noticeRepo repository.NoticeRepository, queue *async.ExtractQueue, logger *slog.Logger) *NoticeService {
	if logger == nil {
		logger = slog.Default()
	}
	return &NoticeService{
		noticeRepo: noticeRepo,
		queue:      queue,
		logger:     logger,
	}
}

func (s *NoticeService) ListNotices(ctx context.Context, req *noticespb.ListNoticesRequest) (*noticespb.ListNoticesResponse, error) {
	source := strings.TrimSpace(req.GetSource())
	if source != "" {
		src, ok := constants.ParseSource(source)
		if !ok {
			s.logger.Error("unknown source for list notices", "source", source)
			return nil, status.Errorf(codes.InvalidArgument, "unknown source %q", source)
		}
		source = string(src)
	}

	fromDate, err := parseDateArg(req.GetFromDate(), "from_date")
	if err != nil {
		return nil, err
	}
	toDate, err := parseDateArg(req.GetToDate(), "to_date")
	if err != nil {
		return nil, err
	}

	notices, err := s.noticeRepo.List(ctx, source, fromDate, toDate)
	if err != nil {
		s.logger.Error("failed to list notices", "source", source, "error", err)
		return nil, status.Errorf(codes.Internal, "list notices: %v", err)
	}
	s.logger.Info("notices listed", "source", source, "count", len(notices))

	out := make([]*noticespb.Notice, 0, len(notices))
	for _, n := range notices {
		out = append(out, utils.ToPBNotice(n))
	}
	return &noticespb.ListNoticesResponse{Notices: out}, nil
}

func (s *NoticeService) GetNotice(ctx context.Context, req *noticespb.GetNoticeRequest) (*noticespb.GetNoticeResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetId()))
	if err != nil {
		s.logger.Error("invalid id format for get notice", "id", req.GetId(), "error", err)
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}

	n, err := s.noticeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Errorf(codes.NotFound, "notice %s not found", id)
		}
		s.logger.Error("failed to get notice", "notice_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "get notice: %v", err)
	}
	return &noticespb.GetNoticeResponse{Notice: utils.ToPBNotice(n)}, nil
}

func (s *NoticeService) ReextractNotice(ctx context.Context, req *noticespb.ReextractNoticeRequest) (*noticespb.ReextractNoticeResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetId()))
	if err != nil {
		s.logger.Error("invalid id format for reextract", "id", req.GetId(), "error", err)
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}

	mode := constants.ModeFull
	switch m := strings.TrimSpace(req.GetMode()); m {
	case "", string(constants.ModeFull):
	case string(constants.ModeDeathDate):
		mode = constants.ModeDeathDate
	default:
		return nil, status.Errorf(codes.InvalidArgument, "unknown mode %q", m)
	}

	// Fail loudly on a bad id before the job disappears into the queue.
	if _, err := s.noticeRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Errorf(codes.NotFound, "notice %s not found", id)
		}
		return nil, status.Errorf(codes.Internal, "get notice: %v", err)
	}

	if err := s.queue.Enqueue(ctx, async.Job{NoticeID: id, Mode: mode, Attempt: 1}); err != nil {
		s.logger.Error("failed to enqueue reextract", "notice_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "enqueue: %v", err)
	}
	s.logger.Info("reextract queued", "notice_id", id, "mode", string(mode))
	return &noticespb.ReextractNoticeResponse{Queued: true}, nil
}

func parseDateArg(raw, field string) (*time.Time, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return nil, nil
	}
	t := utils.ParseYMD(v)
	if t == nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s invalid (YYYY-MM-DD): %q", field, v)
	}
	return t, nil
}
