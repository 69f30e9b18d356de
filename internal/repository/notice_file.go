package repository

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/parte-archiv/parte-tracker/constants"
	"github.com/parte-archiv/parte-tracker/gen/ent"
	"github.com/parte-archiv/parte-tracker/gen/ent/noticefile"
	"github.com/parte-archiv/parte-tracker/internal/common"
	"github.com/parte-archiv/parte-tracker/internal/entity"
	"github.com/parte-archiv/parte-tracker/internal/utils"
)

// File kinds stored per notice: the canonical PDF plus, when the source
// served an image, the untouched original.
const (
	FileKindPDF      = "pdf"
	FileKindOriginal = "original"
)

// RegisterFileRequest wraps parameters for attaching a media file to a notice.
type RegisterFileRequest struct {
	NoticeID    uuid.UUID
	Kind        string
	SourcePath  string
	ContentHash []byte
	FileSize    int
}

type NoticeFileRepository interface {
	Register(ctx context.Context, req *RegisterFileRequest) (*entity.NoticeFile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.NoticeFile, error)
	GetByNoticeAndKind(ctx context.Context, noticeID uuid.UUID, kind string) (*entity.NoticeFile, error)
}

type noticeFileRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewNoticeFileRepository(client *ent.Client, logger *slog.Logger) NoticeFileRepository {
	return &noticeFileRepository{client: client, logger: logger}
}

func (r *noticeFileRepository) Register(ctx context.Context, req *RegisterFileRequest) (*entity.NoticeFile, error) {
	ext := constants.NormalizeExt(filepath.Ext(req.SourcePath))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return nil, common.ErrInvalidInput
	}

	f, err := r.client.NoticeFile.Create().
		SetNoticeID(req.NoticeID).
		SetKind(req.Kind).
		SetSourcePath(req.SourcePath).
		SetContentHash(req.ContentHash).
		SetFilename(filepath.Base(req.SourcePath)).
		SetFileExt(ext).
		SetFileSize(req.FileSize).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to register notice file",
			"notice_id", req.NoticeID, "kind", req.Kind, "error", err)
		return nil, err
	}
	return utils.ToNoticeFile(f), nil
}

func (r *noticeFileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.NoticeFile, error) {
	f, err := r.client.NoticeFile.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return utils.ToNoticeFile(f), nil
}

func (r *noticeFileRepository) GetByNoticeAndKind(ctx context.Context, noticeID uuid.UUID, kind string) (*entity.NoticeFile, error) {
	f, err := r.client.NoticeFile.Query().
		Where(noticefile.NoticeID(noticeID), noticefile.Kind(kind)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return utils.ToNoticeFile(f), nil
}
