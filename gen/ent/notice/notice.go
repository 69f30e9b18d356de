// Code generated by ent, DO NOT EDIT.

package notice

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the notice type in the database.
	Label = "notice"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldHash holds the string denoting the hash field in the database.
	FieldHash = "hash"
	// FieldFullName holds the string denoting the full_name field in the database.
	FieldFullName = "full_name"
	// FieldOpeningQuote holds the string denoting the opening_quote field in the database.
	FieldOpeningQuote = "opening_quote"
	// FieldDeathDate holds the string denoting the death_date field in the database.
	FieldDeathDate = "death_date"
	// FieldFuneralDate holds the string denoting the funeral_date field in the database.
	FieldFuneralDate = "funeral_date"
	// FieldAnnouncementText holds the string denoting the announcement_text field in the database.
	FieldAnnouncementText = "announcement_text"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldSourceURL holds the string denoting the source_url field in the database.
	FieldSourceURL = "source_url"
	// FieldHasPhoto holds the string denoting the has_photo field in the database.
	FieldHasPhoto = "has_photo"
	// FieldPhotoX holds the string denoting the photo_x field in the database.
	FieldPhotoX = "photo_x"
	// FieldPhotoY holds the string denoting the photo_y field in the database.
	FieldPhotoY = "photo_y"
	// FieldPhotoWidth holds the string denoting the photo_width field in the database.
	FieldPhotoWidth = "photo_width"
	// FieldPhotoHeight holds the string denoting the photo_height field in the database.
	FieldPhotoHeight = "photo_height"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeFiles holds the string denoting the files edge name in mutations.
	EdgeFiles = "files"
	// EdgeJobs holds the string denoting the jobs edge name in mutations.
	EdgeJobs = "jobs"
	// Table holds the table name of the notice in the database.
	Table = "notices"
	// FilesTable is the table that holds the files relation/edge.
	FilesTable = "notice_files"
	// FilesInverseTable is the table name for the NoticeFile entity.
	// It exists in this package in order to avoid circular dependency with the "noticefile" package.
	FilesInverseTable = "notice_files"
	// FilesColumn is the table column denoting the files relation/edge.
	FilesColumn = "notice_id"
	// JobsTable is the table that holds the jobs relation/edge.
	JobsTable = "extract_job"
	// JobsInverseTable is the table name for the ExtractJob entity.
	// It exists in this package in order to avoid circular dependency with the "extractjob" package.
	JobsInverseTable = "extract_job"
	// JobsColumn is the table column denoting the jobs relation/edge.
	JobsColumn = "notice_id"
)

// Columns holds all SQL columns for notice fields.
var Columns = []string{
	FieldID,
	FieldHash,
	FieldFullName,
	FieldOpeningQuote,
	FieldDeathDate,
	FieldFuneralDate,
	FieldAnnouncementText,
	FieldSource,
	FieldSourceURL,
	FieldHasPhoto,
	FieldPhotoX,
	FieldPhotoY,
	FieldPhotoWidth,
	FieldPhotoHeight,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// HashValidator is a validator for the "hash" field. It is called by the builders before save.
	HashValidator func(string) error
	// FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	FullNameValidator func(string) error
	// SourceValidator is a validator for the "source" field. It is called by the builders before save.
	SourceValidator func(string) error
	// SourceURLValidator is a validator for the "source_url" field. It is called by the builders before save.
	SourceURLValidator func(string) error
	// DefaultHasPhoto holds the default value on creation for the "has_photo" field.
	DefaultHasPhoto bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Notice queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByHash orders the results by the hash field.
func ByHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHash, opts...).ToFunc()
}

// ByFullName orders the results by the full_name field.
func ByFullName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFullName, opts...).ToFunc()
}

// ByOpeningQuote orders the results by the opening_quote field.
func ByOpeningQuote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOpeningQuote, opts...).ToFunc()
}

// ByDeathDate orders the results by the death_date field.
func ByDeathDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeathDate, opts...).ToFunc()
}

// ByFuneralDate orders the results by the funeral_date field.
func ByFuneralDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFuneralDate, opts...).ToFunc()
}

// ByAnnouncementText orders the results by the announcement_text field.
func ByAnnouncementText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnnouncementText, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// BySourceURL orders the results by the source_url field.
func BySourceURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceURL, opts...).ToFunc()
}

// ByHasPhoto orders the results by the has_photo field.
func ByHasPhoto(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasPhoto, opts...).ToFunc()
}

// ByPhotoX orders the results by the photo_x field.
func ByPhotoX(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhotoX, opts...).ToFunc()
}

// ByPhotoY orders the results by the photo_y field.
func ByPhotoY(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhotoY, opts...).ToFunc()
}

// ByPhotoWidth orders the results by the photo_width field.
func ByPhotoWidth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhotoWidth, opts...).ToFunc()
}

// ByPhotoHeight orders the results by the photo_height field.
func ByPhotoHeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhotoHeight, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByFilesCount orders the results by files count.
func ByFilesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFilesStep(), opts...)
	}
}

// ByFiles orders the results by files terms.
func ByFiles(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFilesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByJobsCount orders the results by jobs count.
func ByJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newJobsStep(), opts...)
	}
}

// ByJobs orders the results by jobs terms.
func ByJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newFilesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FilesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FilesTable, FilesColumn),
	)
}
func newJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
	)
}
