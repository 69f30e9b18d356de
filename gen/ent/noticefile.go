// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/parte-archiv/parte-tracker/gen/ent/notice"
	"github.com/parte-archiv/parte-tracker/gen/ent/noticefile"
)

// NoticeFile is the model entity for the NoticeFile schema.
type NoticeFile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// NoticeID holds the value of the "notice_id" field.
	NoticeID uuid.UUID `json:"notice_id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind string `json:"kind,omitempty"`
	// SourcePath holds the value of the "source_path" field.
	SourcePath string `json:"source_path,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash []byte `json:"content_hash,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// FileExt holds the value of the "file_ext" field.
	FileExt string `json:"file_ext,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize int `json:"file_size,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the NoticeFileQuery when eager-loading is set.
	Edges        NoticeFileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// NoticeFileEdges holds the relations/edges for other nodes in the graph.
type NoticeFileEdges struct {
	// Notice holds the value of the notice edge.
	Notice *Notice `json:"notice,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ExtractJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// NoticeOrErr returns the Notice value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e NoticeFileEdges) NoticeOrErr() (*Notice, error) {
	if e.Notice != nil {
		return e.Notice, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: notice.Label}
	}
	return nil, &NotLoadedError{edge: "notice"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e NoticeFileEdges) JobsOrErr() ([]*ExtractJob, error) {
	if e.loadedTypes[1] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*NoticeFile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case noticefile.FieldContentHash:
			values[i] = new([]byte)
		case noticefile.FieldFileSize:
			values[i] = new(sql.NullInt64)
		case noticefile.FieldKind, noticefile.FieldSourcePath, noticefile.FieldFilename, noticefile.FieldFileExt:
			values[i] = new(sql.NullString)
		case noticefile.FieldUploadedAt:
			values[i] = new(sql.NullTime)
		case noticefile.FieldID, noticefile.FieldNoticeID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the NoticeFile fields.
func (_m *NoticeFile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case noticefile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case noticefile.FieldNoticeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field notice_id", values[i])
			} else if value != nil {
				_m.NoticeID = *value
			}
		case noticefile.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case noticefile.FieldSourcePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_path", values[i])
			} else if value.Valid {
				_m.SourcePath = value.String
			}
		case noticefile.FieldContentHash:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value != nil {
				_m.ContentHash = *value
			}
		case noticefile.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case noticefile.FieldFileExt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_ext", values[i])
			} else if value.Valid {
				_m.FileExt = value.String
			}
		case noticefile.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				_m.FileSize = int(value.Int64)
			}
		case noticefile.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the NoticeFile.
// This includes values selected through modifiers, order, etc.
func (_m *NoticeFile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryNotice queries the "notice" edge of the NoticeFile entity.
func (_m *NoticeFile) QueryNotice() *NoticeQuery {
	return NewNoticeFileClient(_m.config).QueryNotice(_m)
}

// QueryJobs queries the "jobs" edge of the NoticeFile entity.
func (_m *NoticeFile) QueryJobs() *ExtractJobQuery {
	return NewNoticeFileClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this NoticeFile.
// Note that you need to call NoticeFile.Unwrap() before calling this method if this NoticeFile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *NoticeFile) Update() *NoticeFileUpdateOne {
	return NewNoticeFileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the NoticeFile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *NoticeFile) Unwrap() *NoticeFile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: NoticeFile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *NoticeFile) String() string {
	var builder strings.Builder
	builder.WriteString("NoticeFile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("notice_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.NoticeID))
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("source_path=")
	builder.WriteString(_m.SourcePath)
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentHash))
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("file_ext=")
	builder.WriteString(_m.FileExt)
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileSize))
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// NoticeFiles is a parsable slice of NoticeFile.
type NoticeFiles []*NoticeFile
