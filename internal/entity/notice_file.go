package entity

import (
	"time"

	"github.com/google/uuid"
)

// NoticeFile represents a media attachment of a notice.
type NoticeFile struct {
	ID          uuid.UUID `json:"id"`
	NoticeID    uuid.UUID `json:"notice_id"`
	Kind        string    `json:"kind"`
	SourcePath  string    `json:"source_path"`
	ContentHash []byte    `json:"content_hash"`
	Filename    string    `json:"filename"`
	FileExt     string    `json:"file_ext"`
	FileSize    int       `json:"file_size"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
