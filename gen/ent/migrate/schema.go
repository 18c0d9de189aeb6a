// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "path", Type: field.TypeString, Unique: true},
		{Name: "filename", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "model_no", Type: field.TypeString, Nullable: true},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
	}
	// PagesColumns holds the columns for the "pages" table.
	PagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "page_no", Type: field.TypeInt},
		{Name: "thumb_path", Type: field.TypeString, Nullable: true},
		{Name: "text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "key_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "left_titles_json", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "left_nr", Type: field.TypeString, Nullable: true},
		{Name: "left_scale", Type: field.TypeString, Nullable: true},
		{Name: "left_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "left_source", Type: field.TypeString, Nullable: true},
		{Name: "left_titles_json_v2", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "left_nr_v2", Type: field.TypeString, Nullable: true},
		{Name: "left_scale_v2", Type: field.TypeString, Nullable: true},
		{Name: "left_confidence_v2", Type: field.TypeFloat32, Nullable: true},
		{Name: "left_source_v2", Type: field.TypeString, Nullable: true},
		{Name: "left_search_text_v2", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "document_id", Type: field.TypeInt},
	}
	// PagesTable holds the schema information for the "pages" table.
	PagesTable = &schema.Table{
		Name:       "pages",
		Columns:    PagesColumns,
		PrimaryKey: []*schema.Column{PagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pages_documents_pages",
				Columns:    []*schema.Column{PagesColumns[16]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "page_document_id_page_no",
				Unique:  true,
				Columns: []*schema.Column{PagesColumns[16], PagesColumns[1]},
			},
			{
				Name:    "page_left_source_v2",
				Unique:  false,
				Columns: []*schema.Column{PagesColumns[14]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		PagesTable,
	}
)

func init() {
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	PagesTable.ForeignKeys[0].RefTable = DocumentsTable
	PagesTable.Annotation = &entsql.Annotation{
		Table: "pages",
	}
}
