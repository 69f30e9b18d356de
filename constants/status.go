package constants

// JobStatus is the canonical status for rows in extract_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued   JobStatus = "QUEUED"    // waiting for a worker
	JobStatusRunning  JobStatus = "RUNNING"   // in progress
	JobStatusOCROK    JobStatus = "OCR_OK"    // tier 1 completed (OCR text + regex fields)
	JobStatusVisionOK JobStatus = "VISION_OK" // tier 2 completed (provider fields accepted)
	JobStatusFailed   JobStatus = "FAILED"    // terminal failure
)
