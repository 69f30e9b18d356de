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
)

// Notice is the model entity for the Notice schema.
type Notice struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Hash holds the value of the "hash" field.
	Hash string `json:"hash,omitempty"`
	// FullName holds the value of the "full_name" field.
	FullName string `json:"full_name,omitempty"`
	// OpeningQuote holds the value of the "opening_quote" field.
	OpeningQuote *string `json:"opening_quote,omitempty"`
	// DeathDate holds the value of the "death_date" field.
	DeathDate *time.Time `json:"death_date,omitempty"`
	// FuneralDate holds the value of the "funeral_date" field.
	FuneralDate *time.Time `json:"funeral_date,omitempty"`
	// AnnouncementText holds the value of the "announcement_text" field.
	AnnouncementText *string `json:"announcement_text,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// SourceURL holds the value of the "source_url" field.
	SourceURL string `json:"source_url,omitempty"`
	// HasPhoto holds the value of the "has_photo" field.
	HasPhoto bool `json:"has_photo,omitempty"`
	// PhotoX holds the value of the "photo_x" field.
	PhotoX *float64 `json:"photo_x,omitempty"`
	// PhotoY holds the value of the "photo_y" field.
	PhotoY *float64 `json:"photo_y,omitempty"`
	// PhotoWidth holds the value of the "photo_width" field.
	PhotoWidth *float64 `json:"photo_width,omitempty"`
	// PhotoHeight holds the value of the "photo_height" field.
	PhotoHeight *float64 `json:"photo_height,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the NoticeQuery when eager-loading is set.
	Edges        NoticeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// NoticeEdges holds the relations/edges for other nodes in the graph.
type NoticeEdges struct {
	// Files holds the value of the files edge.
	Files []*NoticeFile `json:"files,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ExtractJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// FilesOrErr returns the Files value or an error if the edge
// was not loaded in eager-loading.
func (e NoticeEdges) FilesOrErr() ([]*NoticeFile, error) {
	if e.loadedTypes[0] {
		return e.Files, nil
	}
	return nil, &NotLoadedError{edge: "files"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e NoticeEdges) JobsOrErr() ([]*ExtractJob, error) {
	if e.loadedTypes[1] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Notice) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case notice.FieldHasPhoto:
			values[i] = new(sql.NullBool)
		case notice.FieldPhotoX, notice.FieldPhotoY, notice.FieldPhotoWidth, notice.FieldPhotoHeight:
			values[i] = new(sql.NullFloat64)
		case notice.FieldHash, notice.FieldFullName, notice.FieldOpeningQuote, notice.FieldAnnouncementText, notice.FieldSource, notice.FieldSourceURL:
			values[i] = new(sql.NullString)
		case notice.FieldDeathDate, notice.FieldFuneralDate, notice.FieldCreatedAt, notice.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case notice.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Notice fields.
func (_m *Notice) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case notice.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case notice.FieldHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hash", values[i])
			} else if value.Valid {
				_m.Hash = value.String
			}
		case notice.FieldFullName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_name", values[i])
			} else if value.Valid {
				_m.FullName = value.String
			}
		case notice.FieldOpeningQuote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field opening_quote", values[i])
			} else if value.Valid {
				_m.OpeningQuote = new(string)
				*_m.OpeningQuote = value.String
			}
		case notice.FieldDeathDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field death_date", values[i])
			} else if value.Valid {
				_m.DeathDate = new(time.Time)
				*_m.DeathDate = value.Time
			}
		case notice.FieldFuneralDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field funeral_date", values[i])
			} else if value.Valid {
				_m.FuneralDate = new(time.Time)
				*_m.FuneralDate = value.Time
			}
		case notice.FieldAnnouncementText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field announcement_text", values[i])
			} else if value.Valid {
				_m.AnnouncementText = new(string)
				*_m.AnnouncementText = value.String
			}
		case notice.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case notice.FieldSourceURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_url", values[i])
			} else if value.Valid {
				_m.SourceURL = value.String
			}
		case notice.FieldHasPhoto:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_photo", values[i])
			} else if value.Valid {
				_m.HasPhoto = value.Bool
			}
		case notice.FieldPhotoX:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field photo_x", values[i])
			} else if value.Valid {
				_m.PhotoX = new(float64)
				*_m.PhotoX = value.Float64
			}
		case notice.FieldPhotoY:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field photo_y", values[i])
			} else if value.Valid {
				_m.PhotoY = new(float64)
				*_m.PhotoY = value.Float64
			}
		case notice.FieldPhotoWidth:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field photo_width", values[i])
			} else if value.Valid {
				_m.PhotoWidth = new(float64)
				*_m.PhotoWidth = value.Float64
			}
		case notice.FieldPhotoHeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field photo_height", values[i])
			} else if value.Valid {
				_m.PhotoHeight = new(float64)
				*_m.PhotoHeight = value.Float64
			}
		case notice.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case notice.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Notice.
// This includes values selected through modifiers, order, etc.
func (_m *Notice) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFiles queries the "files" edge of the Notice entity.
func (_m *Notice) QueryFiles() *NoticeFileQuery {
	return NewNoticeClient(_m.config).QueryFiles(_m)
}

// QueryJobs queries the "jobs" edge of the Notice entity.
func (_m *Notice) QueryJobs() *ExtractJobQuery {
	return NewNoticeClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this Notice.
// Note that you need to call Notice.Unwrap() before calling this method if this Notice
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Notice) Update() *NoticeUpdateOne {
	return NewNoticeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Notice entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Notice) Unwrap() *Notice {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Notice is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Notice) String() string {
	var builder strings.Builder
	builder.WriteString("Notice(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("hash=")
	builder.WriteString(_m.Hash)
	builder.WriteString(", ")
	builder.WriteString("full_name=")
	builder.WriteString(_m.FullName)
	builder.WriteString(", ")
	if v := _m.OpeningQuote; v != nil {
		builder.WriteString("opening_quote=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DeathDate; v != nil {
		builder.WriteString("death_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.FuneralDate; v != nil {
		builder.WriteString("funeral_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.AnnouncementText; v != nil {
		builder.WriteString("announcement_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("source_url=")
	builder.WriteString(_m.SourceURL)
	builder.WriteString(", ")
	builder.WriteString("has_photo=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasPhoto))
	builder.WriteString(", ")
	if v := _m.PhotoX; v != nil {
		builder.WriteString("photo_x=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PhotoY; v != nil {
		builder.WriteString("photo_y=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PhotoWidth; v != nil {
		builder.WriteString("photo_width=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PhotoHeight; v != nil {
		builder.WriteString("photo_height=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Notices is a parsable slice of Notice.
type Notices []*Notice
