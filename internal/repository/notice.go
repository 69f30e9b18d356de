package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/parte-archiv/parte-tracker/constants"
	"github.com/parte-archiv/parte-tracker/gen/ent"
	"github.com/parte-archiv/parte-tracker/gen/ent/notice"
	"github.com/parte-archiv/parte-tracker/internal/common"
	"github.com/parte-archiv/parte-tracker/internal/entity"
	"github.com/parte-archiv/parte-tracker/internal/utils"
)

// CreateNoticeRequest wraps parameters for registering a freshly scraped notice.
type CreateNoticeRequest struct {
	Hash      string
	FullName  string // the name the notice is listed under on the source site
	Source    constants.Source
	SourceURL string
}

type NoticeRepository interface {
	Create(ctx context.Context, req *CreateNoticeRequest) (*entity.Notice, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Notice, error)
	GetByHash(ctx context.Context, hash string) (*entity.Notice, error)
	List(ctx context.Context, source string, fromDate, toDate *time.Time) ([]*entity.Notice, error)
	ListMissingDeathDate(ctx context.Context, limit int) ([]*entity.Notice, error)
	ApplyExtraction(ctx context.Context, id uuid.UUID, mode constants.ExtractionMode, res entity.ExtractionResult) (*entity.Notice, error)
}

type noticeRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewNoticeRepository(client *ent.Client, logger *slog.Logger) NoticeRepository {
	return &noticeRepository{client: client, logger: logger}
}

// Create inserts a notice row keyed by its content hash. A hash collision
// means the notice was already ingested and comes back as ErrDuplicateHash.
func (r *noticeRepository) Create(ctx context.Context, req *CreateNoticeRequest) (*entity.Notice, error) {
	n, err := r.client.Notice.Create().
		SetHash(req.Hash).
		SetFullName(req.FullName).
		SetSource(string(req.Source)).
		SetSourceURL(req.SourceURL).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			r.logger.Debug("notice already ingested", "hash", req.Hash, "source", string(req.Source))
			return nil, common.ErrDuplicateHash
		}
		r.logger.Error("failed to create notice", "hash", req.Hash, "error", err)
		return nil, err
	}
	return utils.ToNotice(n), nil
}

func (r *noticeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Notice, error) {
	n, err := r.client.Notice.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return utils.ToNotice(n), nil
}

func (r *noticeRepository) GetByHash(ctx context.Context, hash string) (*entity.Notice, error) {
	n, err := r.client.Notice.Query().Where(notice.Hash(hash)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return utils.ToNotice(n), nil
}

func (r *noticeRepository) List(ctx context.Context, source string, fromDate, toDate *time.Time) ([]*entity.Notice, error) {
	q := r.client.Notice.Query()
	if source != "" {
		q = q.Where(notice.Source(source))
	}
	if fromDate != nil {
		q = q.Where(notice.FuneralDateGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(notice.FuneralDateLTE(*toDate))
	}
	rows, err := q.Order(notice.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list notices", "source", source, "error", err)
		return nil, err
	}

	result := make([]*entity.Notice, len(rows))
	for i, n := range rows {
		result[i] = utils.ToNotice(n)
	}
	return result, nil
}

// ListMissingDeathDate feeds the death-date backfill pass.
func (r *noticeRepository) ListMissingDeathDate(ctx context.Context, limit int) ([]*entity.Notice, error) {
	q := r.client.Notice.Query().
		Where(notice.DeathDateIsNil()).
		Order(notice.ByCreatedAt())
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*entity.Notice, len(rows))
	for i, n := range rows {
		result[i] = utils.ToNotice(n)
	}
	return result, nil
}

// ApplyExtraction persists one extraction pass as a single write. Death-date
// mode touches only death_date so a backfill run can never clobber fields a
// full pass already filled in, and vice versa.
func (r *noticeRepository) ApplyExtraction(ctx context.Context, id uuid.UUID, mode constants.ExtractionMode, res entity.ExtractionResult) (*entity.Notice, error) {
	upd := r.client.Notice.UpdateOneID(id)

	if mode == constants.ModeDeathDate {
		if d := utils.ParseYMD(res.DeathDate); d != nil {
			upd = upd.SetDeathDate(*d)
		}
	} else {
		if res.FullName != "" {
			upd = upd.SetFullName(res.FullName)
		}
		upd = upd.
			SetNillableOpeningQuote(utils.StrPtr(res.OpeningQuote)).
			SetNillableDeathDate(utils.ParseYMD(res.DeathDate)).
			SetNillableFuneralDate(utils.ParseYMD(res.FuneralDate)).
			SetNillableAnnouncementText(utils.StrPtr(res.AnnouncementText)).
			SetHasPhoto(res.HasPhoto)

		if b := res.PhotoBBox; b != nil {
			upd = upd.
				SetPhotoX(b.X).
				SetPhotoY(b.Y).
				SetPhotoWidth(b.Width).
				SetPhotoHeight(b.Height)
		} else {
			upd = upd.
				ClearPhotoX().
				ClearPhotoY().
				ClearPhotoWidth().
				ClearPhotoHeight()
		}
	}

	n, err := upd.Save(ctx)
	if err != nil {
		r.logger.Error("failed to apply extraction", "notice_id", id, "mode", string(mode), "error", err)
		return nil, err
	}
	r.logger.Info("extraction applied",
		"notice_id", id, "mode", string(mode),
		"has_death_date", res.DeathDate != "", "has_photo", res.HasPhoto)
	return utils.ToNotice(n), nil
}
