package utils

import (
	"time"

	"github.com/parte-archiv/parte-tracker/gen/ent"
	noticespb "github.com/parte-archiv/parte-tracker/gen/proto/notices/v1"
	"github.com/parte-archiv/parte-tracker/internal/entity"
)

// ToNotice converts an ent row into the transport entity, folding the four
// photo columns back into a bounding box.
func ToNotice(n *ent.Notice) *entity.Notice {
	if n == nil {
		return nil
	}
	out := &entity.Notice{
		ID:               n.ID,
		Hash:             n.Hash,
		FullName:         n.FullName,
		OpeningQuote:     n.OpeningQuote,
		DeathDate:        n.DeathDate,
		FuneralDate:      n.FuneralDate,
		AnnouncementText: n.AnnouncementText,
		Source:           n.Source,
		SourceURL:        n.SourceURL,
		HasPhoto:         n.HasPhoto,
		CreatedAt:        n.CreatedAt,
		UpdatedAt:        n.UpdatedAt,
	}
	if n.PhotoX != nil && n.PhotoY != nil && n.PhotoWidth != nil && n.PhotoHeight != nil {
		out.PhotoBBox = &entity.BoundingBox{
			X:      *n.PhotoX,
			Y:      *n.PhotoY,
			Width:  *n.PhotoWidth,
			Height: *n.PhotoHeight,
		}
	}
	return out
}

func ToNoticeFile(f *ent.NoticeFile) *entity.NoticeFile {
	if f == nil {
		return nil
	}
	return &entity.NoticeFile{
		ID:          f.ID,
		NoticeID:    f.NoticeID,
		Kind:        f.Kind,
		SourcePath:  f.SourcePath,
		ContentHash: f.ContentHash,
		Filename:    f.Filename,
		FileExt:     f.FileExt,
		FileSize:    f.FileSize,
		UploadedAt:  f.UploadedAt,
	}
}

func ToExtractJob(j *ent.ExtractJob) *entity.ExtractJob {
	if j == nil {
		return nil
	}
	return &entity.ExtractJob{
		ID:            j.ID,
		NoticeID:      j.NoticeID,
		FileID:        j.FileID,
		Format:        j.Format,
		Mode:          j.Mode,
		StartedAt:     j.StartedAt,
		FinishedAt:    j.FinishedAt,
		Status:        j.Status,
		ErrorMessage:  j.ErrorMessage,
		Attempts:      j.Attempts,
		OCRText:       j.OcrText,
		ExtractedJSON: j.ExtractedJSON,
		ModelName:     j.ModelName,
		ModelParams:   j.ModelParams,
	}
}

// ToPBNotice converts a notice entity into its wire representation. Optional
// dates come out as empty strings rather than zero timestamps.
func ToPBNotice(n *entity.Notice) *noticespb.Notice {
	if n == nil {
		return nil
	}
	out := &noticespb.Notice{
		Id:               n.ID.String(),
		Hash:             n.Hash,
		FullName:         n.FullName,
		OpeningQuote:     strOrEmpty(n.OpeningQuote),
		DeathDate:        dateOrEmpty(n.DeathDate),
		FuneralDate:      dateOrEmpty(n.FuneralDate),
		AnnouncementText: strOrEmpty(n.AnnouncementText),
		Source:           n.Source,
		SourceUrl:        n.SourceURL,
		HasPhoto:         n.HasPhoto,
		CreatedAt:        n.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        n.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if n.PhotoBBox != nil {
		out.PhotoBbox = &noticespb.BoundingBox{
			XPercent:      n.PhotoBBox.X,
			YPercent:      n.PhotoBBox.Y,
			WidthPercent:  n.PhotoBBox.Width,
			HeightPercent: n.PhotoBBox.Height,
		}
	}
	return out
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func dateOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// ParseYMD parses an ISO date string into a *time.Time, returning nil for
// empty or malformed input.
func ParseYMD(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

// StrPtr returns a pointer to s, or nil when s is empty.
func StrPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
