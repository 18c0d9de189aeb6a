package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Document is one imported source PDF. Created once per import and immutable
// afterwards, except for the optional enrichment fields title and model_no.
type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.String("path").NotEmpty().Unique().
			Comment("canonical location of the archived PDF"),
		field.String("filename").NotEmpty(),
		field.String("title").Optional().Nillable(),
		field.String("model_no").Optional().Nillable(),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE document -> MANY pages
		edge.To("pages", Page.Type),
	}
}
