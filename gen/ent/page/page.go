// Code generated by ent, DO NOT EDIT.

package page

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the page type in the database.
	Label = "page"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldPageNo holds the string denoting the page_no field in the database.
	FieldPageNo = "page_no"
	// FieldThumbPath holds the string denoting the thumb_path field in the database.
	FieldThumbPath = "thumb_path"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldKeyText holds the string denoting the key_text field in the database.
	FieldKeyText = "key_text"
	// FieldLeftTitlesJSON holds the string denoting the left_titles_json field in the database.
	FieldLeftTitlesJSON = "left_titles_json"
	// FieldLeftNr holds the string denoting the left_nr field in the database.
	FieldLeftNr = "left_nr"
	// FieldLeftScale holds the string denoting the left_scale field in the database.
	FieldLeftScale = "left_scale"
	// FieldLeftConfidence holds the string denoting the left_confidence field in the database.
	FieldLeftConfidence = "left_confidence"
	// FieldLeftSource holds the string denoting the left_source field in the database.
	FieldLeftSource = "left_source"
	// FieldLeftTitlesJSONV2 holds the string denoting the left_titles_json_v2 field in the database.
	FieldLeftTitlesJSONV2 = "left_titles_json_v2"
	// FieldLeftNrV2 holds the string denoting the left_nr_v2 field in the database.
	FieldLeftNrV2 = "left_nr_v2"
	// FieldLeftScaleV2 holds the string denoting the left_scale_v2 field in the database.
	FieldLeftScaleV2 = "left_scale_v2"
	// FieldLeftConfidenceV2 holds the string denoting the left_confidence_v2 field in the database.
	FieldLeftConfidenceV2 = "left_confidence_v2"
	// FieldLeftSourceV2 holds the string denoting the left_source_v2 field in the database.
	FieldLeftSourceV2 = "left_source_v2"
	// FieldLeftSearchTextV2 holds the string denoting the left_search_text_v2 field in the database.
	FieldLeftSearchTextV2 = "left_search_text_v2"
	// EdgeDocument holds the string denoting the document edge name in mutations.
	EdgeDocument = "document"
	// Table holds the table name of the page in the database.
	Table = "pages"
	// DocumentTable is the table that holds the document relation/edge.
	DocumentTable = "pages"
	// DocumentInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentInverseTable = "documents"
	// DocumentColumn is the table column denoting the document relation/edge.
	DocumentColumn = "document_id"
)

// Columns holds all SQL columns for page fields.
var Columns = []string{
	FieldID,
	FieldDocumentID,
	FieldPageNo,
	FieldThumbPath,
	FieldText,
	FieldKeyText,
	FieldLeftTitlesJSON,
	FieldLeftNr,
	FieldLeftScale,
	FieldLeftConfidence,
	FieldLeftSource,
	FieldLeftTitlesJSONV2,
	FieldLeftNrV2,
	FieldLeftScaleV2,
	FieldLeftConfidenceV2,
	FieldLeftSourceV2,
	FieldLeftSearchTextV2,
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
	// PageNoValidator is a validator for the "page_no" field. It is called by the builders before save.
	PageNoValidator func(int) error
)

// OrderOption defines the ordering options for the Page queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByPageNo orders the results by the page_no field.
func ByPageNo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageNo, opts...).ToFunc()
}

// ByThumbPath orders the results by the thumb_path field.
func ByThumbPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThumbPath, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByKeyText orders the results by the key_text field.
func ByKeyText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKeyText, opts...).ToFunc()
}

// ByLeftTitlesJSON orders the results by the left_titles_json field.
func ByLeftTitlesJSON(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeftTitlesJSON, opts...).ToFunc()
}

// ByLeftNr orders the results by the left_nr field.
func ByLeftNr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeftNr, opts...).ToFunc()
}

// ByLeftScale orders the results by the left_scale field.
func ByLeftScale(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeftScale, opts...).ToFunc()
}

// ByLeftConfidence orders the results by the left_confidence field.
func ByLeftConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeftConfidence, opts...).ToFunc()
}

// ByLeftSource orders the results by the left_source field.
func ByLeftSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeftSource, opts...).ToFunc()
}

// ByLeftTitlesJSONV2 orders the results by the left_titles_json_v2 field.
func ByLeftTitlesJSONV2(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeftTitlesJSONV2, opts...).ToFunc()
}

// ByLeftNrV2 orders the results by the left_nr_v2 field.
func ByLeftNrV2(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeftNrV2, opts...).ToFunc()
}

// ByLeftScaleV2 orders the results by the left_scale_v2 field.
func ByLeftScaleV2(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeftScaleV2, opts...).ToFunc()
}

// ByLeftConfidenceV2 orders the results by the left_confidence_v2 field.
func ByLeftConfidenceV2(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeftConfidenceV2, opts...).ToFunc()
}

// ByLeftSourceV2 orders the results by the left_source_v2 field.
func ByLeftSourceV2(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeftSourceV2, opts...).ToFunc()
}

// ByLeftSearchTextV2 orders the results by the left_search_text_v2 field.
func ByLeftSearchTextV2(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeftSearchTextV2, opts...).ToFunc()
}

// ByDocumentField orders the results by document field.
func ByDocumentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentStep(), sql.OrderByField(field, opts...))
	}
}
func newDocumentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
	)
}
