package schema

import (
	"errors"
	"regexp"
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

var (
	reHash    = regexp.MustCompile(`^[0-9a-f]{12}$`)
	reHashErr = errors.New("invalid notice hash")
)

type Notice struct{ ent.Schema }

func (Notice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "notices"},
	}
}

func (Notice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// content-derived identity, computed once at ingestion
		field.String("hash").
			Immutable().
			Unique().
			Validate(func(s string) error {
				if reHash.MatchString(s) {
					return nil
				}
				return reHashErr
			}),
		field.String("full_name").NotEmpty(),
		field.String("opening_quote").Optional().Nillable(),
		field.Time("death_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("funeral_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("announcement_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("source").NotEmpty(),
		field.String("source_url").NotEmpty(),
		field.Bool("has_photo").Default(false),
		field.Float("photo_x").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.Float("photo_y").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.Float("photo_width").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.Float("photo_height").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Notice) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE notice -> MANY media files
		edge.To("files", NoticeFile.Type),
		// ONE notice -> MANY extraction jobs
		edge.To("jobs", ExtractJob.Type),
	}
}

func (Notice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source", "created_at"),
		index.Fields("funeral_date"),
	}
}
