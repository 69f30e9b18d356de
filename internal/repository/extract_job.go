package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/parte-archiv/parte-tracker/constants"
	"github.com/parte-archiv/parte-tracker/gen/ent"
	"github.com/parte-archiv/parte-tracker/internal/entity"
	"github.com/parte-archiv/parte-tracker/internal/utils"
)

// JobOutcome carries the fields persisted when an extraction pass finishes.
type JobOutcome struct {
	Status        constants.JobStatus
	ErrorMessage  string
	OCRText       string
	ExtractedJSON json.RawMessage
	ModelName     string
	Attempts      int
}

type ExtractJobRepository interface {
	Start(ctx context.Context, noticeID uuid.UUID, fileID *uuid.UUID, format string, mode constants.ExtractionMode) (*entity.ExtractJob, error)
	Finish(ctx context.Context, jobID uuid.UUID, out JobOutcome) error
}

type extractJobRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewExtractJobRepository(client *ent.Client, logger *slog.Logger) ExtractJobRepository {
	return &extractJobRepository{client: client, logger: logger}
}

// Start records a RUNNING job row before the extraction pass begins.
func (r *extractJobRepository) Start(ctx context.Context, noticeID uuid.UUID, fileID *uuid.UUID, format string, mode constants.ExtractionMode) (*entity.ExtractJob, error) {
	create := r.client.ExtractJob.Create().
		SetNoticeID(noticeID).
		SetFormat(format).
		SetMode(string(mode)).
		SetStatus(string(constants.JobStatusRunning))
	if fileID != nil {
		create = create.SetFileID(*fileID)
	}

	j, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to start extract job", "notice_id", noticeID, "error", err)
		return nil, err
	}
	return utils.ToExtractJob(j), nil
}

// Finish closes the job row with its outcome. One row per pass; retries by
// the queue produce fresh rows, so the audit trail keeps every attempt.
func (r *extractJobRepository) Finish(ctx context.Context, jobID uuid.UUID, out JobOutcome) error {
	upd := r.client.ExtractJob.UpdateOneID(jobID).
		SetStatus(string(out.Status)).
		SetFinishedAt(time.Now()).
		SetAttempts(out.Attempts)

	if out.ErrorMessage != "" {
		upd = upd.SetErrorMessage(out.ErrorMessage)
	}
	if out.OCRText != "" {
		upd = upd.SetOcrText(out.OCRText)
	}
	if len(out.ExtractedJSON) > 0 {
		upd = upd.SetExtractedJSON(out.ExtractedJSON)
	}
	if out.ModelName != "" {
		upd = upd.SetModelName(out.ModelName)
	}

	if err := upd.Exec(ctx); err != nil {
		r.logger.Error("failed to finish extract job", "job_id", jobID, "error", err)
		return err
	}
	return nil
}
