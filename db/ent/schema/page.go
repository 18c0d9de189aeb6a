package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Page is one side of a scanned spread: independently searchable,
// thumbnailed and deletable. It carries two generations of extracted label
// metadata; generation 2 wins on every read path when present.
type Page struct{ ent.Schema }

func (Page) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "pages"},
	}
}

func (Page) Fields() []ent.Field {
	return []ent.Field{
		// explicit FK so the composite unique index below can reference it
		field.Int("document_id"),
		field.Int("page_no").Positive(),
		field.String("thumb_path").Optional().Nillable(),
		field.Text("text").Optional().
			Comment("raw extracted page text, may be empty"),
		field.Text("key_text").Optional().Nillable().
			Comment("OCR of the left heading area, used for enrichment"),

		// generation 1 (legacy) label fields
		field.Text("left_titles_json").Optional().Nillable(),
		field.String("left_nr").Optional().Nillable(),
		field.String("left_scale").Optional().Nillable(),
		field.Float32("left_confidence").Optional().Nillable(),
		field.String("left_source").Optional().Nillable(),

		// generation 2 label fields; left_source_v2 doubles as status tag
		field.Text("left_titles_json_v2").Optional().Nillable(),
		field.String("left_nr_v2").Optional().Nillable(),
		field.String("left_scale_v2").Optional().Nillable(),
		field.Float32("left_confidence_v2").Optional().Nillable(),
		field.String("left_source_v2").Optional().Nillable(),
		field.Text("left_search_text_v2").Optional().Nillable().
			Comment("normalized search blob, the unit indexed by left_fts"),
	}
}

func (Page) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY pages -> ONE document (FK: pages.document_id)
		edge.From("document", Document.Type).
			Ref("pages").
			Field("document_id").
			Required().
			Unique(),
	}
}

func (Page) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "page_no").Unique(),
		index.Fields("left_source_v2"),
	}
}
