// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cbruhn/drawing-archive/gen/ent/document"
	"github.com/cbruhn/drawing-archive/gen/ent/page"
)

// Page is the model entity for the Page schema.
type Page struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID int `json:"document_id,omitempty"`
	// PageNo holds the value of the "page_no" field.
	PageNo int `json:"page_no,omitempty"`
	// ThumbPath holds the value of the "thumb_path" field.
	ThumbPath *string `json:"thumb_path,omitempty"`
	// raw extracted page text, may be empty
	Text string `json:"text,omitempty"`
	// OCR of the left heading area, used for enrichment
	KeyText *string `json:"key_text,omitempty"`
	// LeftTitlesJSON holds the value of the "left_titles_json" field.
	LeftTitlesJSON *string `json:"left_titles_json,omitempty"`
	// LeftNr holds the value of the "left_nr" field.
	LeftNr *string `json:"left_nr,omitempty"`
	// LeftScale holds the value of the "left_scale" field.
	LeftScale *string `json:"left_scale,omitempty"`
	// LeftConfidence holds the value of the "left_confidence" field.
	LeftConfidence *float32 `json:"left_confidence,omitempty"`
	// LeftSource holds the value of the "left_source" field.
	LeftSource *string `json:"left_source,omitempty"`
	// LeftTitlesJSONV2 holds the value of the "left_titles_json_v2" field.
	LeftTitlesJSONV2 *string `json:"left_titles_json_v2,omitempty"`
	// LeftNrV2 holds the value of the "left_nr_v2" field.
	LeftNrV2 *string `json:"left_nr_v2,omitempty"`
	// LeftScaleV2 holds the value of the "left_scale_v2" field.
	LeftScaleV2 *string `json:"left_scale_v2,omitempty"`
	// LeftConfidenceV2 holds the value of the "left_confidence_v2" field.
	LeftConfidenceV2 *float32 `json:"left_confidence_v2,omitempty"`
	// LeftSourceV2 holds the value of the "left_source_v2" field.
	LeftSourceV2 *string `json:"left_source_v2,omitempty"`
	// normalized search blob, the unit indexed by left_fts
	LeftSearchTextV2 *string `json:"left_search_text_v2,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PageQuery when eager-loading is set.
	Edges        PageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PageEdges holds the relations/edges for other nodes in the graph.
type PageEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PageEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Page) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case page.FieldLeftConfidence, page.FieldLeftConfidenceV2:
			values[i] = new(sql.NullFloat64)
		case page.FieldID, page.FieldDocumentID, page.FieldPageNo:
			values[i] = new(sql.NullInt64)
		case page.FieldThumbPath, page.FieldText, page.FieldKeyText, page.FieldLeftTitlesJSON, page.FieldLeftNr, page.FieldLeftScale, page.FieldLeftSource, page.FieldLeftTitlesJSONV2, page.FieldLeftNrV2, page.FieldLeftScaleV2, page.FieldLeftSourceV2, page.FieldLeftSearchTextV2:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Page fields.
func (_m *Page) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case page.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case page.FieldDocumentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = int(value.Int64)
			}
		case page.FieldPageNo:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_no", values[i])
			} else if value.Valid {
				_m.PageNo = int(value.Int64)
			}
		case page.FieldThumbPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thumb_path", values[i])
			} else if value.Valid {
				_m.ThumbPath = new(string)
				*_m.ThumbPath = value.String
			}
		case page.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case page.FieldKeyText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key_text", values[i])
			} else if value.Valid {
				_m.KeyText = new(string)
				*_m.KeyText = value.String
			}
		case page.FieldLeftTitlesJSON:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field left_titles_json", values[i])
			} else if value.Valid {
				_m.LeftTitlesJSON = new(string)
				*_m.LeftTitlesJSON = value.String
			}
		case page.FieldLeftNr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field left_nr", values[i])
			} else if value.Valid {
				_m.LeftNr = new(string)
				*_m.LeftNr = value.String
			}
		case page.FieldLeftScale:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field left_scale", values[i])
			} else if value.Valid {
				_m.LeftScale = new(string)
				*_m.LeftScale = value.String
			}
		case page.FieldLeftConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field left_confidence", values[i])
			} else if value.Valid {
				_m.LeftConfidence = new(float32)
				*_m.LeftConfidence = float32(value.Float64)
			}
		case page.FieldLeftSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field left_source", values[i])
			} else if value.Valid {
				_m.LeftSource = new(string)
				*_m.LeftSource = value.String
			}
		case page.FieldLeftTitlesJSONV2:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field left_titles_json_v2", values[i])
			} else if value.Valid {
				_m.LeftTitlesJSONV2 = new(string)
				*_m.LeftTitlesJSONV2 = value.String
			}
		case page.FieldLeftNrV2:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field left_nr_v2", values[i])
			} else if value.Valid {
				_m.LeftNrV2 = new(string)
				*_m.LeftNrV2 = value.String
			}
		case page.FieldLeftScaleV2:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field left_scale_v2", values[i])
			} else if value.Valid {
				_m.LeftScaleV2 = new(string)
				*_m.LeftScaleV2 = value.String
			}
		case page.FieldLeftConfidenceV2:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field left_confidence_v2", values[i])
			} else if value.Valid {
				_m.LeftConfidenceV2 = new(float32)
				*_m.LeftConfidenceV2 = float32(value.Float64)
			}
		case page.FieldLeftSourceV2:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field left_source_v2", values[i])
			} else if value.Valid {
				_m.LeftSourceV2 = new(string)
				*_m.LeftSourceV2 = value.String
			}
		case page.FieldLeftSearchTextV2:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field left_search_text_v2", values[i])
			} else if value.Valid {
				_m.LeftSearchTextV2 = new(string)
				*_m.LeftSearchTextV2 = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Page.
// This includes values selected through modifiers, order, etc.
func (_m *Page) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the Page entity.
func (_m *Page) QueryDocument() *DocumentQuery {
	return NewPageClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this Page.
// Note that you need to call Page.Unwrap() before calling this method if this Page
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Page) Update() *PageUpdateOne {
	return NewPageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Page entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Page) Unwrap() *Page {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Page is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Page) String() string {
	var builder strings.Builder
	builder.WriteString("Page(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("page_no=")
	builder.WriteString(fmt.Sprintf("%v", _m.PageNo))
	builder.WriteString(", ")
	if v := _m.ThumbPath; v != nil {
		builder.WriteString("thumb_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	if v := _m.KeyText; v != nil {
		builder.WriteString("key_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LeftTitlesJSON; v != nil {
		builder.WriteString("left_titles_json=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LeftNr; v != nil {
		builder.WriteString("left_nr=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LeftScale; v != nil {
		builder.WriteString("left_scale=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LeftConfidence; v != nil {
		builder.WriteString("left_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LeftSource; v != nil {
		builder.WriteString("left_source=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LeftTitlesJSONV2; v != nil {
		builder.WriteString("left_titles_json_v2=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LeftNrV2; v != nil {
		builder.WriteString("left_nr_v2=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LeftScaleV2; v != nil {
		builder.WriteString("left_scale_v2=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LeftConfidenceV2; v != nil {
		builder.WriteString("left_confidence_v2=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LeftSourceV2; v != nil {
		builder.WriteString("left_source_v2=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LeftSearchTextV2; v != nil {
		builder.WriteString("left_search_text_v2=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Pages is a parsable slice of Page.
type Pages []*Page
