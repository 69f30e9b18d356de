package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ExtractJob is the audit row for one extraction pass over a notice.
type ExtractJob struct {
	ID            uuid.UUID       `json:"id"`
	NoticeID      uuid.UUID       `json:"notice_id"`
	FileID        *uuid.UUID      `json:"file_id,omitempty"`
	Format        string          `json:"format"`
	Mode          string          `json:"mode"`
	StartedAt     time.Time       `json:"started_at"`
	FinishedAt    *time.Time      `json:"finished_at,omitempty"`
	Status        *string         `json:"status,omitempty"`
	ErrorMessage  *string         `json:"error_message,omitempty"`
	Attempts      int             `json:"attempts"`
	OCRText       *string         `json:"ocr_text,omitempty"`
	ExtractedJSON json.RawMessage `json:"extracted_json,omitempty"`
	ModelName     *string         `json:"model_name,omitempty"`
	ModelParams   json.RawMessage `json:"model_params,omitempty"`
}
