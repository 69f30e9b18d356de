package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// NoticeFile is a media attachment of a notice: the canonical PDF artifact
// and, when the source served one, the original image.
type NoticeFile struct {
	ent.Schema
}

func (NoticeFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "notice_files"},
	}
}

func (NoticeFile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("notice_id", uuid.UUID{}),
		field.String("kind").NotEmpty(), // "pdf" | "original"
		field.String("source_path").NotEmpty(),
		field.Bytes("content_hash").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.String("filename").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.Int("file_size").NonNegative(),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (NoticeFile) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY files -> ONE notice
		edge.From("notice", Notice.Type).
			Ref("files").
			Field("notice_id").
			Required().
			Unique(),
		// ONE file -> MANY jobs
		edge.To("jobs", ExtractJob.Type),
	}
}

func (NoticeFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("notice_id", "kind").Unique(),
		index.Fields("notice_id", "uploaded_at"),
	}
}
