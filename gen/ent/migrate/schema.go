// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExtractJobColumns holds the columns for the "extract_job" table.
	ExtractJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "model_params", Type: field.TypeJSON, Nullable: true},
		{Name: "notice_id", Type: field.TypeUUID},
		{Name: "file_id", Type: field.TypeUUID, Nullable: true},
	}
	// ExtractJobTable holds the schema information for the "extract_job" table.
	ExtractJobTable = &schema.Table{
		Name:       "extract_job",
		Columns:    ExtractJobColumns,
		PrimaryKey: []*schema.Column{ExtractJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extract_job_notices_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[12]},
				RefColumns: []*schema.Column{NoticesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "extract_job_notice_files_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[13]},
				RefColumns: []*schema.Column{NoticeFilesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractjob_notice_id_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[12], ExtractJobColumns[5], ExtractJobColumns[3]},
			},
			{
				Name:    "extractjob_file_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[13]},
			},
		},
	}
	// NoticesColumns holds the columns for the "notices" table.
	NoticesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "hash", Type: field.TypeString, Unique: true},
		{Name: "full_name", Type: field.TypeString},
		{Name: "opening_quote", Type: field.TypeString, Nullable: true},
		{Name: "death_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "funeral_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "announcement_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "source", Type: field.TypeString},
		{Name: "source_url", Type: field.TypeString},
		{Name: "has_photo", Type: field.TypeBool, Default: false},
		{Name: "photo_x", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "photo_y", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "photo_width", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "photo_height", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// NoticesTable holds the schema information for the "notices" table.
	NoticesTable = &schema.Table{
		Name:       "notices",
		Columns:    NoticesColumns,
		PrimaryKey: []*schema.Column{NoticesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notice_source_created_at",
				Unique:  false,
				Columns: []*schema.Column{NoticesColumns[7], NoticesColumns[14]},
			},
			{
				Name:    "notice_funeral_date",
				Unique:  false,
				Columns: []*schema.Column{NoticesColumns[5]},
			},
		},
	}
	// NoticeFilesColumns holds the columns for the "notice_files" table.
	NoticeFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "kind", Type: field.TypeString},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "notice_id", Type: field.TypeUUID},
	}
	// NoticeFilesTable holds the schema information for the "notice_files" table.
	NoticeFilesTable = &schema.Table{
		Name:       "notice_files",
		Columns:    NoticeFilesColumns,
		PrimaryKey: []*schema.Column{NoticeFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "notice_files_notices_files",
				Columns:    []*schema.Column{NoticeFilesColumns[8]},
				RefColumns: []*schema.Column{NoticesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "noticefile_notice_id_kind",
				Unique:  true,
				Columns: []*schema.Column{NoticeFilesColumns[8], NoticeFilesColumns[1]},
			},
			{
				Name:    "noticefile_notice_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{NoticeFilesColumns[8], NoticeFilesColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExtractJobTable,
		NoticesTable,
		NoticeFilesTable,
	}
)

func init() {
	ExtractJobTable.ForeignKeys[0].RefTable = NoticesTable
	ExtractJobTable.ForeignKeys[1].RefTable = NoticeFilesTable
	ExtractJobTable.Annotation = &entsql.Annotation{
		Table: "extract_job",
	}
	NoticesTable.Annotation = &entsql.Annotation{
		Table: "notices",
	}
	NoticeFilesTable.ForeignKeys[0].RefTable = NoticesTable
	NoticeFilesTable.Annotation = &entsql.Annotation{
		Table: "notice_files",
	}
}
