// Code generated by ent, DO NOT EDIT.

package page

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cbruhn/drawing-archive/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v int) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldDocumentID, v))
}

// PageNo applies equality check predicate on the "page_no" field. It's identical to PageNoEQ.
func PageNo(v int) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldPageNo, v))
}

// ThumbPath applies equality check predicate on the "thumb_path" field. It's identical to ThumbPathEQ.
func ThumbPath(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldThumbPath, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldText, v))
}

// KeyText applies equality check predicate on the "key_text" field. It's identical to KeyTextEQ.
func KeyText(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldKeyText, v))
}

// LeftTitlesJSON applies equality check predicate on the "left_titles_json" field. It's identical to LeftTitlesJSONEQ.
func LeftTitlesJSON(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldLeftTitlesJSON, v))
}

// LeftNr applies equality check predicate on the "left_nr" field. It's identical to LeftNrEQ.
func LeftNr(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldLeftNr, v))
}

// LeftScale applies equality check predicate on the "left_scale" field. It's identical to LeftScaleEQ.
func LeftScale(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldLeftScale, v))
}

// LeftConfidence applies equality check predicate on the "left_confidence" field. It's identical to LeftConfidenceEQ.
func LeftConfidence(v float32) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldLeftConfidence, v))
}

// LeftSource applies equality check predicate on the "left_source" field. It's identical to LeftSourceEQ.
func LeftSource(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldLeftSource, v))
}

// LeftTitlesJSONV2 applies equality check predicate on the "left_titles_json_v2" field. It's identical to LeftTitlesJSONV2EQ.
func LeftTitlesJSONV2(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldLeftTitlesJSONV2, v))
}

// LeftNrV2 applies equality check predicate on the "left_nr_v2" field. It's identical to LeftNrV2EQ.
func LeftNrV2(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldLeftNrV2, v))
}

// LeftScaleV2 applies equality check predicate on the "left_scale_v2" field. It's identical to LeftScaleV2EQ.
func LeftScaleV2(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldLeftScaleV2, v))
}

// LeftConfidenceV2 applies equality check predicate on the "left_confidence_v2" field. It's identical to LeftConfidenceV2EQ.
func LeftConfidenceV2(v float32) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldLeftConfidenceV2, v))
}

// LeftSourceV2 applies equality check predicate on the "left_source_v2" field. It's identical to LeftSourceV2EQ.
func LeftSourceV2(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldLeftSourceV2, v))
}

// LeftSearchTextV2 applies equality check predicate on the "left_search_text_v2" field. It's identical to LeftSearchTextV2EQ.
func LeftSearchTextV2(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldLeftSearchTextV2, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v int) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v int) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...int) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...int) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldDocumentID, vs...))
}

// PageNoEQ applies the EQ predicate on the "page_no" field.
func PageNoEQ(v int) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldPageNo, v))
}

// PageNoNEQ applies the NEQ predicate on the "page_no" field.
func PageNoNEQ(v int) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldPageNo, v))
}

// PageNoIn applies the In predicate on the "page_no" field.
func PageNoIn(vs ...int) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldPageNo, vs...))
}

// PageNoNotIn applies the NotIn predicate on the "page_no" field.
func PageNoNotIn(vs ...int) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldPageNo, vs...))
}

// PageNoGT applies the GT predicate on the "page_no" field.
func PageNoGT(v int) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldPageNo, v))
}

// PageNoGTE applies the GTE predicate on the "page_no" field.
func PageNoGTE(v int) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldPageNo, v))
}

// PageNoLT applies the LT predicate on the "page_no" field.
func PageNoLT(v int) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldPageNo, v))
}

// PageNoLTE applies the LTE predicate on the "page_no" field.
func PageNoLTE(v int) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldPageNo, v))
}

// ThumbPathEQ applies the EQ predicate on the "thumb_path" field.
func ThumbPathEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldThumbPath, v))
}

// ThumbPathNEQ applies the NEQ predicate on the "thumb_path" field.
func ThumbPathNEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldThumbPath, v))
}

// ThumbPathIn applies the In predicate on the "thumb_path" field.
func ThumbPathIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldThumbPath, vs...))
}

// ThumbPathNotIn applies the NotIn predicate on the "thumb_path" field.
func ThumbPathNotIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldThumbPath, vs...))
}

// ThumbPathGT applies the GT predicate on the "thumb_path" field.
func ThumbPathGT(v string) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldThumbPath, v))
}

// ThumbPathGTE applies the GTE predicate on the "thumb_path" field.
func ThumbPathGTE(v string) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldThumbPath, v))
}

// ThumbPathLT applies the LT predicate on the "thumb_path" field.
func ThumbPathLT(v string) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldThumbPath, v))
}

// ThumbPathLTE applies the LTE predicate on the "thumb_path" field.
func ThumbPathLTE(v string) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldThumbPath, v))
}

// ThumbPathContains applies the Contains predicate on the "thumb_path" field.
func ThumbPathContains(v string) predicate.Page {
	return predicate.Page(sql.FieldContains(FieldThumbPath, v))
}

// ThumbPathHasPrefix applies the HasPrefix predicate on the "thumb_path" field.
func ThumbPathHasPrefix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasPrefix(FieldThumbPath, v))
}

// ThumbPathHasSuffix applies the HasSuffix predicate on the "thumb_path" field.
func ThumbPathHasSuffix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasSuffix(FieldThumbPath, v))
}

// ThumbPathIsNil applies the IsNil predicate on the "thumb_path" field.
func ThumbPathIsNil() predicate.Page {
	return predicate.Page(sql.FieldIsNull(FieldThumbPath))
}

// ThumbPathNotNil applies the NotNil predicate on the "thumb_path" field.
func ThumbPathNotNil() predicate.Page {
	return predicate.Page(sql.FieldNotNull(FieldThumbPath))
}

// ThumbPathEqualFold applies the EqualFold predicate on the "thumb_path" field.
func ThumbPathEqualFold(v string) predicate.Page {
	return predicate.Page(sql.FieldEqualFold(FieldThumbPath, v))
}

// ThumbPathContainsFold applies the ContainsFold predicate on the "thumb_path" field.
func ThumbPathContainsFold(v string) predicate.Page {
	return predicate.Page(sql.FieldContainsFold(FieldThumbPath, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.Page {
	return predicate.Page(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasSuffix(FieldText, v))
}

// TextIsNil applies the IsNil predicate on the "text" field.
func TextIsNil() predicate.Page {
	return predicate.Page(sql.FieldIsNull(FieldText))
}

// TextNotNil applies the NotNil predicate on the "text" field.
func TextNotNil() predicate.Page {
	return predicate.Page(sql.FieldNotNull(FieldText))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.Page {
	return predicate.Page(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.Page {
	return predicate.Page(sql.FieldContainsFold(FieldText, v))
}

// KeyTextEQ applies the EQ predicate on the "key_text" field.
func KeyTextEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldKeyText, v))
}

// KeyTextNEQ applies the NEQ predicate on the "key_text" field.
func KeyTextNEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldKeyText, v))
}

// KeyTextIn applies the In predicate on the "key_text" field.
func KeyTextIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldKeyText, vs...))
}

// KeyTextNotIn applies the NotIn predicate on the "key_text" field.
func KeyTextNotIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldKeyText, vs...))
}

// KeyTextGT applies the GT predicate on the "key_text" field.
func KeyTextGT(v string) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldKeyText, v))
}

// KeyTextGTE applies the GTE predicate on the "key_text" field.
func KeyTextGTE(v string) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldKeyText, v))
}

// KeyTextLT applies the LT predicate on the "key_text" field.
func KeyTextLT(v string) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldKeyText, v))
}

// KeyTextLTE applies the LTE predicate on the "key_text" field.
func KeyTextLTE(v string) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldKeyText, v))
}

// KeyTextContains applies the Contains predicate on the "key_text" field.
func KeyTextContains(v string) predicate.Page {
	return predicate.Page(sql.FieldContains(FieldKeyText, v))
}

// KeyTextHasPrefix applies the HasPrefix predicate on the "key_text" field.
func KeyTextHasPrefix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasPrefix(FieldKeyText, v))
}

// KeyTextHasSuffix applies the HasSuffix predicate on the "key_text" field.
func KeyTextHasSuffix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasSuffix(FieldKeyText, v))
}

// KeyTextIsNil applies the IsNil predicate on the "key_text" field.
func KeyTextIsNil() predicate.Page {
	return predicate.Page(sql.FieldIsNull(FieldKeyText))
}

// KeyTextNotNil applies the NotNil predicate on the "key_text" field.
func KeyTextNotNil() predicate.Page {
	return predicate.Page(sql.FieldNotNull(FieldKeyText))
}

// KeyTextEqualFold applies the EqualFold predicate on the "key_text" field.
func KeyTextEqualFold(v string) predicate.Page {
	return predicate.Page(sql.FieldEqualFold(FieldKeyText, v))
}

// KeyTextContainsFold applies the ContainsFold predicate on the "key_text" field.
func KeyTextContainsFold(v string) predicate.Page {
	return predicate.Page(sql.FieldContainsFold(FieldKeyText, v))
}

// LeftTitlesJSONEQ applies the EQ predicate on the "left_titles_json" field.
func LeftTitlesJSONEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldLeftTitlesJSON, v))
}

// LeftTitlesJSONNEQ applies the NEQ predicate on the "left_titles_json" field.
func LeftTitlesJSONNEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldLeftTitlesJSON, v))
}

// LeftTitlesJSONIn applies the In predicate on the "left_titles_json" field.
func LeftTitlesJSONIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldLeftTitlesJSON, vs...))
}

// LeftTitlesJSONNotIn applies the NotIn predicate on the "left_titles_json" field.
func LeftTitlesJSONNotIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldLeftTitlesJSON, vs...))
}

// LeftTitlesJSONGT applies the GT predicate on the "left_titles_json" field.
func LeftTitlesJSONGT(v string) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldLeftTitlesJSON, v))
}

// LeftTitlesJSONGTE applies the GTE predicate on the "left_titles_json" field.
func LeftTitlesJSONGTE(v string) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldLeftTitlesJSON, v))
}

// LeftTitlesJSONLT applies the LT predicate on the "left_titles_json" field.
func LeftTitlesJSONLT(v string) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldLeftTitlesJSON, v))
}

// LeftTitlesJSONLTE applies the LTE predicate on the "left_titles_json" field.
func LeftTitlesJSONLTE(v string) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldLeftTitlesJSON, v))
}

// LeftTitlesJSONContains applies the Contains predicate on the "left_titles_json" field.
func LeftTitlesJSONContains(v string) predicate.Page {
	return predicate.Page(sql.FieldContains(FieldLeftTitlesJSON, v))
}

// LeftTitlesJSONHasPrefix applies the HasPrefix predicate on the "left_titles_json" field.
func LeftTitlesJSONHasPrefix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasPrefix(FieldLeftTitlesJSON, v))
}

// LeftTitlesJSONHasSuffix applies the HasSuffix predicate on the "left_titles_json" field.
func LeftTitlesJSONHasSuffix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasSuffix(FieldLeftTitlesJSON, v))
}

// LeftTitlesJSONIsNil applies the IsNil predicate on the "left_titles_json" field.
func LeftTitlesJSONIsNil() predicate.Page {
	return predicate.Page(sql.FieldIsNull(FieldLeftTitlesJSON))
}

// LeftTitlesJSONNotNil applies the NotNil predicate on the "left_titles_json" field.
func LeftTitlesJSONNotNil() predicate.Page {
	return predicate.Page(sql.FieldNotNull(FieldLeftTitlesJSON))
}

// LeftTitlesJSONEqualFold applies the EqualFold predicate on the "left_titles_json" field.
func LeftTitlesJSONEqualFold(v string) predicate.Page {
	return predicate.Page(sql.FieldEqualFold(FieldLeftTitlesJSON, v))
}

// LeftTitlesJSONContainsFold applies the ContainsFold predicate on the "left_titles_json" field.
func LeftTitlesJSONContainsFold(v string) predicate.Page {
	return predicate.Page(sql.FieldContainsFold(FieldLeftTitlesJSON, v))
}

// LeftNrEQ applies the EQ predicate on the "left_nr" field.
func LeftNrEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldLeftNr, v))
}

// LeftNrNEQ applies the NEQ predicate on the "left_nr" field.
func LeftNrNEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldLeftNr, v))
}

// LeftNrIn applies the In predicate on the "left_nr" field.
func LeftNrIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldLeftNr, vs...))
}

// LeftNrNotIn applies the NotIn predicate on the "left_nr" field.
func LeftNrNotIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldLeftNr, vs...))
}

// LeftNrGT applies the GT predicate on the "left_nr" field.
func LeftNrGT(v string) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldLeftNr, v))
}

// LeftNrGTE applies the GTE predicate on the "left_nr" field.
func LeftNrGTE(v string) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldLeftNr, v))
}

// LeftNrLT applies the LT predicate on the "left_nr" field.
func LeftNrLT(v string) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldLeftNr, v))
}

// LeftNrLTE applies the LTE predicate on the "left_nr" field.
func LeftNrLTE(v string) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldLeftNr, v))
}

// LeftNrContains applies the Contains predicate on the "left_nr" field.
func LeftNrContains(v string) predicate.Page {
	return predicate.Page(sql.FieldContains(FieldLeftNr, v))
}

// LeftNrHasPrefix applies the HasPrefix predicate on the "left_nr" field.
func LeftNrHasPrefix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasPrefix(FieldLeftNr, v))
}

// LeftNrHasSuffix applies the HasSuffix predicate on the "left_nr" field.
func LeftNrHasSuffix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasSuffix(FieldLeftNr, v))
}

// LeftNrIsNil applies the IsNil predicate on the "left_nr" field.
func LeftNrIsNil() predicate.Page {
	return predicate.Page(sql.FieldIsNull(FieldLeftNr))
}

// LeftNrNotNil applies the NotNil predicate on the "left_nr" field.
func LeftNrNotNil() predicate.Page {
	return predicate.Page(sql.FieldNotNull(FieldLeftNr))
}

// LeftNrEqualFold applies the EqualFold predicate on the "left_nr" field.
func LeftNrEqualFold(v string) predicate.Page {
	return predicate.Page(sql.FieldEqualFold(FieldLeftNr, v))
}

// LeftNrContainsFold applies the ContainsFold predicate on the "left_nr" field.
func LeftNrContainsFold(v string) predicate.Page {
	return predicate.Page(sql.FieldContainsFold(FieldLeftNr, v))
}

// LeftScaleEQ applies the EQ predicate on the "left_scale" field.
func LeftScaleEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldLeftScale, v))
}

// LeftScaleNEQ applies the NEQ predicate on the "left_scale" field.
func LeftScaleNEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldLeftScale, v))
}

// LeftScaleIn applies the In predicate on the "left_scale" field.
func LeftScaleIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldLeftScale, vs...))
}

// LeftScaleNotIn applies the NotIn predicate on the "left_scale" field.
func LeftScaleNotIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldLeftScale, vs...))
}

// LeftScaleGT applies the GT predicate on the "left_scale" field.
func LeftScaleGT(v string) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldLeftScale, v))
}

// LeftScaleGTE applies the GTE predicate on the "left_scale" field.
func LeftScaleGTE(v string) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldLeftScale, v))
}

// LeftScaleLT applies the LT predicate on the "left_scale" field.
func LeftScaleLT(v string) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldLeftScale, v))
}

// LeftScaleLTE applies the LTE predicate on the "left_scale" field.
func LeftScaleLTE(v string) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldLeftScale, v))
}

// LeftScaleContains applies the Contains predicate on the "left_scale" field.
func LeftScaleContains(v string) predicate.Page {
	return predicate.Page(sql.FieldContains(FieldLeftScale, v))
}

// LeftScaleHasPrefix applies the HasPrefix predicate on the "left_scale" field.
func LeftScaleHasPrefix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasPrefix(FieldLeftScale, v))
}

// LeftScaleHasSuffix applies the HasSuffix predicate on the "left_scale" field.
func LeftScaleHasSuffix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasSuffix(FieldLeftScale, v))
}

// LeftScaleIsNil applies the IsNil predicate on the "left_scale" field.
func LeftScaleIsNil() predicate.Page {
	return predicate.Page(sql.FieldIsNull(FieldLeftScale))
}

// LeftScaleNotNil applies the NotNil predicate on the "left_scale" field.
func LeftScaleNotNil() predicate.Page {
	return predicate.Page(sql.FieldNotNull(FieldLeftScale))
}

// LeftScaleEqualFold applies the EqualFold predicate on the "left_scale" field.
func LeftScaleEqualFold(v string) predicate.Page {
	return predicate.Page(sql.FieldEqualFold(FieldLeftScale, v))
}

// LeftScaleContainsFold applies the ContainsFold predicate on the "left_scale" field.
func LeftScaleContainsFold(v string) predicate.Page {
	return predicate.Page(sql.FieldContainsFold(FieldLeftScale, v))
}

// LeftConfidenceEQ applies the EQ predicate on the "left_confidence" field.
func LeftConfidenceEQ(v float32) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldLeftConfidence, v))
}

// LeftConfidenceNEQ applies the NEQ predicate on the "left_confidence" field.
func LeftConfidenceNEQ(v float32) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldLeftConfidence, v))
}

// LeftConfidenceIn applies the In predicate on the "left_confidence" field.
func LeftConfidenceIn(vs ...float32) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldLeftConfidence, vs...))
}

// LeftConfidenceNotIn applies the NotIn predicate on the "left_confidence" field.
func LeftConfidenceNotIn(vs ...float32) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldLeftConfidence, vs...))
}

// LeftConfidenceGT applies the GT predicate on the "left_confidence" field.
func LeftConfidenceGT(v float32) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldLeftConfidence, v))
}

// LeftConfidenceGTE applies the GTE predicate on the "left_confidence" field.
func LeftConfidenceGTE(v float32) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldLeftConfidence, v))
}

// LeftConfidenceLT applies the LT predicate on the "left_confidence" field.
func LeftConfidenceLT(v float32) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldLeftConfidence, v))
}

// LeftConfidenceLTE applies the LTE predicate on the "left_confidence" field.
func LeftConfidenceLTE(v float32) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldLeftConfidence, v))
}

// LeftConfidenceIsNil applies the IsNil predicate on the "left_confidence" field.
func LeftConfidenceIsNil() predicate.Page {
	return predicate.Page(sql.FieldIsNull(FieldLeftConfidence))
}

// LeftConfidenceNotNil applies the NotNil predicate on the "left_confidence" field.
func LeftConfidenceNotNil() predicate.Page {
	return predicate.Page(sql.FieldNotNull(FieldLeftConfidence))
}

// LeftSourceEQ applies the EQ predicate on the "left_source" field.
func LeftSourceEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldLeftSource, v))
}

// LeftSourceNEQ applies the NEQ predicate on the "left_source" field.
func LeftSourceNEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldLeftSource, v))
}

// LeftSourceIn applies the In predicate on the "left_source" field.
func LeftSourceIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldLeftSource, vs...))
}

// LeftSourceNotIn applies the NotIn predicate on the "left_source" field.
func LeftSourceNotIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldLeftSource, vs...))
}

// LeftSourceGT applies the GT predicate on the "left_source" field.
func LeftSourceGT(v string) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldLeftSource, v))
}

// LeftSourceGTE applies the GTE predicate on the "left_source" field.
func LeftSourceGTE(v string) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldLeftSource, v))
}

// LeftSourceLT applies the LT predicate on the "left_source" field.
func LeftSourceLT(v string) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldLeftSource, v))
}

// LeftSourceLTE applies the LTE predicate on the "left_source" field.
func LeftSourceLTE(v string) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldLeftSource, v))
}

// LeftSourceContains applies the Contains predicate on the "left_source" field.
func LeftSourceContains(v string) predicate.Page {
	return predicate.Page(sql.FieldContains(FieldLeftSource, v))
}

// LeftSourceHasPrefix applies the HasPrefix predicate on the "left_source" field.
func LeftSourceHasPrefix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasPrefix(FieldLeftSource, v))
}

// LeftSourceHasSuffix applies the HasSuffix predicate on the "left_source" field.
func LeftSourceHasSuffix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasSuffix(FieldLeftSource, v))
}

// LeftSourceIsNil applies the IsNil predicate on the "left_source" field.
func LeftSourceIsNil() predicate.Page {
	return predicate.Page(sql.FieldIsNull(FieldLeftSource))
}

// LeftSourceNotNil applies the NotNil predicate on the "left_source" field.
func LeftSourceNotNil() predicate.Page {
	return predicate.Page(sql.FieldNotNull(FieldLeftSource))
}

// LeftSourceEqualFold applies the EqualFold predicate on the "left_source" field.
func LeftSourceEqualFold(v string) predicate.Page {
	return predicate.Page(sql.FieldEqualFold(FieldLeftSource, v))
}

// LeftSourceContainsFold applies the ContainsFold predicate on the "left_source" field.
func LeftSourceContainsFold(v string) predicate.Page {
	return predicate.Page(sql.FieldContainsFold(FieldLeftSource, v))
}

// LeftTitlesJSONV2EQ applies the EQ predicate on the "left_titles_json_v2" field.
func LeftTitlesJSONV2EQ(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldLeftTitlesJSONV2, v))
}

// LeftTitlesJSONV2NEQ applies the NEQ predicate on the "left_titles_json_v2" field.
func LeftTitlesJSONV2NEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldLeftTitlesJSONV2, v))
}

// LeftTitlesJSONV2In applies the In predicate on the "left_titles_json_v2" field.
func LeftTitlesJSONV2In(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldLeftTitlesJSONV2, vs...))
}

// LeftTitlesJSONV2NotIn applies the NotIn predicate on the "left_titles_json_v2" field.
func LeftTitlesJSONV2NotIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldLeftTitlesJSONV2, vs...))
}

// LeftTitlesJSONV2GT applies the GT predicate on the "left_titles_json_v2" field.
func LeftTitlesJSONV2GT(v string) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldLeftTitlesJSONV2, v))
}

// LeftTitlesJSONV2GTE applies the GTE predicate on the "left_titles_json_v2" field.
func LeftTitlesJSONV2GTE(v string) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldLeftTitlesJSONV2, v))
}

// LeftTitlesJSONV2LT applies the LT predicate on the "left_titles_json_v2" field.
func LeftTitlesJSONV2LT(v string) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldLeftTitlesJSONV2, v))
}

// LeftTitlesJSONV2LTE applies the LTE predicate on the "left_titles_json_v2" field.
func LeftTitlesJSONV2LTE(v string) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldLeftTitlesJSONV2, v))
}

// LeftTitlesJSONV2Contains applies the Contains predicate on the "left_titles_json_v2" field.
func LeftTitlesJSONV2Contains(v string) predicate.Page {
	return predicate.Page(sql.FieldContains(FieldLeftTitlesJSONV2, v))
}

// LeftTitlesJSONV2HasPrefix applies the HasPrefix predicate on the "left_titles_json_v2" field.
func LeftTitlesJSONV2HasPrefix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasPrefix(FieldLeftTitlesJSONV2, v))
}

// LeftTitlesJSONV2HasSuffix applies the HasSuffix predicate on the "left_titles_json_v2" field.
func LeftTitlesJSONV2HasSuffix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasSuffix(FieldLeftTitlesJSONV2, v))
}

// LeftTitlesJSONV2IsNil applies the IsNil predicate on the "left_titles_json_v2" field.
func LeftTitlesJSONV2IsNil() predicate.Page {
	return predicate.Page(sql.FieldIsNull(FieldLeftTitlesJSONV2))
}

// LeftTitlesJSONV2NotNil applies the NotNil predicate on the "left_titles_json_v2" field.
func LeftTitlesJSONV2NotNil() predicate.Page {
	return predicate.Page(sql.FieldNotNull(FieldLeftTitlesJSONV2))
}

// LeftTitlesJSONV2EqualFold applies the EqualFold predicate on the "left_titles_json_v2" field.
func LeftTitlesJSONV2EqualFold(v string) predicate.Page {
	return predicate.Page(sql.FieldEqualFold(FieldLeftTitlesJSONV2, v))
}

// LeftTitlesJSONV2ContainsFold applies the ContainsFold predicate on the "left_titles_json_v2" field.
func LeftTitlesJSONV2ContainsFold(v string) predicate.Page {
	return predicate.Page(sql.FieldContainsFold(FieldLeftTitlesJSONV2, v))
}

// LeftNrV2EQ applies the EQ predicate on the "left_nr_v2" field.
func LeftNrV2EQ(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldLeftNrV2, v))
}

// LeftNrV2NEQ applies the NEQ predicate on the "left_nr_v2" field.
func LeftNrV2NEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldLeftNrV2, v))
}

// LeftNrV2In applies the In predicate on the "left_nr_v2" field.
func LeftNrV2In(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldLeftNrV2, vs...))
}

// LeftNrV2NotIn applies the NotIn predicate on the "left_nr_v2" field.
func LeftNrV2NotIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldLeftNrV2, vs...))
}

// LeftNrV2GT applies the GT predicate on the "left_nr_v2" field.
func LeftNrV2GT(v string) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldLeftNrV2, v))
}

// LeftNrV2GTE applies the GTE predicate on the "left_nr_v2" field.
func LeftNrV2GTE(v string) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldLeftNrV2, v))
}

// LeftNrV2LT applies the LT predicate on the "left_nr_v2" field.
func LeftNrV2LT(v string) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldLeftNrV2, v))
}

// LeftNrV2LTE applies the LTE predicate on the "left_nr_v2" field.
func LeftNrV2LTE(v string) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldLeftNrV2, v))
}

// LeftNrV2Contains applies the Contains predicate on the "left_nr_v2" field.
func LeftNrV2Contains(v string) predicate.Page {
	return predicate.Page(sql.FieldContains(FieldLeftNrV2, v))
}

// LeftNrV2HasPrefix applies the HasPrefix predicate on the "left_nr_v2" field.
func LeftNrV2HasPrefix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasPrefix(FieldLeftNrV2, v))
}

// LeftNrV2HasSuffix applies the HasSuffix predicate on the "left_nr_v2" field.
func LeftNrV2HasSuffix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasSuffix(FieldLeftNrV2, v))
}

// LeftNrV2IsNil applies the IsNil predicate on the "left_nr_v2" field.
func LeftNrV2IsNil() predicate.Page {
	return predicate.Page(sql.FieldIsNull(FieldLeftNrV2))
}

// LeftNrV2NotNil applies the NotNil predicate on the "left_nr_v2" field.
func LeftNrV2NotNil() predicate.Page {
	return predicate.Page(sql.FieldNotNull(FieldLeftNrV2))
}

// LeftNrV2EqualFold applies the EqualFold predicate on the "left_nr_v2" field.
func LeftNrV2EqualFold(v string) predicate.Page {
	return predicate.Page(sql.FieldEqualFold(FieldLeftNrV2, v))
}

// LeftNrV2ContainsFold applies the ContainsFold predicate on the "left_nr_v2" field.
func LeftNrV2ContainsFold(v string) predicate.Page {
	return predicate.Page(sql.FieldContainsFold(FieldLeftNrV2, v))
}

// LeftScaleV2EQ applies the EQ predicate on the "left_scale_v2" field.
func LeftScaleV2EQ(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldLeftScaleV2, v))
}

// LeftScaleV2NEQ applies the NEQ predicate on the "left_scale_v2" field.
func LeftScaleV2NEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldLeftScaleV2, v))
}

// LeftScaleV2In applies the In predicate on the "left_scale_v2" field.
func LeftScaleV2In(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldLeftScaleV2, vs...))
}

// LeftScaleV2NotIn applies the NotIn predicate on the "left_scale_v2" field.
func LeftScaleV2NotIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldLeftScaleV2, vs...))
}

// LeftScaleV2GT applies the GT predicate on the "left_scale_v2" field.
func LeftScaleV2GT(v string) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldLeftScaleV2, v))
}

// LeftScaleV2GTE applies the GTE predicate on the "left_scale_v2" field.
func LeftScaleV2GTE(v string) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldLeftScaleV2, v))
}

// LeftScaleV2LT applies the LT predicate on the "left_scale_v2" field.
func LeftScaleV2LT(v string) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldLeftScaleV2, v))
}

// LeftScaleV2LTE applies the LTE predicate on the "left_scale_v2" field.
func LeftScaleV2LTE(v string) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldLeftScaleV2, v))
}

// LeftScaleV2Contains applies the Contains predicate on the "left_scale_v2" field.
func LeftScaleV2Contains(v string) predicate.Page {
	return predicate.Page(sql.FieldContains(FieldLeftScaleV2, v))
}

// LeftScaleV2HasPrefix applies the HasPrefix predicate on the "left_scale_v2" field.
func LeftScaleV2HasPrefix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasPrefix(FieldLeftScaleV2, v))
}

// LeftScaleV2HasSuffix applies the HasSuffix predicate on the "left_scale_v2" field.
func LeftScaleV2HasSuffix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasSuffix(FieldLeftScaleV2, v))
}

// LeftScaleV2IsNil applies the IsNil predicate on the "left_scale_v2" field.
func LeftScaleV2IsNil() predicate.Page {
	return predicate.Page(sql.FieldIsNull(FieldLeftScaleV2))
}

// LeftScaleV2NotNil applies the NotNil predicate on the "left_scale_v2" field.
func LeftScaleV2NotNil() predicate.Page {
	return predicate.Page(sql.FieldNotNull(FieldLeftScaleV2))
}

// LeftScaleV2EqualFold applies the EqualFold predicate on the "left_scale_v2" field.
func LeftScaleV2EqualFold(v string) predicate.Page {
	return predicate.Page(sql.FieldEqualFold(FieldLeftScaleV2, v))
}

// LeftScaleV2ContainsFold applies the ContainsFold predicate on the "left_scale_v2" field.
func LeftScaleV2ContainsFold(v string) predicate.Page {
	return predicate.Page(sql.FieldContainsFold(FieldLeftScaleV2, v))
}

// LeftConfidenceV2EQ applies the EQ predicate on the "left_confidence_v2" field.
func LeftConfidenceV2EQ(v float32) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldLeftConfidenceV2, v))
}

// LeftConfidenceV2NEQ applies the NEQ predicate on the "left_confidence_v2" field.
func LeftConfidenceV2NEQ(v float32) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldLeftConfidenceV2, v))
}

// LeftConfidenceV2In applies the In predicate on the "left_confidence_v2" field.
func LeftConfidenceV2In(vs ...float32) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldLeftConfidenceV2, vs...))
}

// LeftConfidenceV2NotIn applies the NotIn predicate on the "left_confidence_v2" field.
func LeftConfidenceV2NotIn(vs ...float32) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldLeftConfidenceV2, vs...))
}

// LeftConfidenceV2GT applies the GT predicate on the "left_confidence_v2" field.
func LeftConfidenceV2GT(v float32) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldLeftConfidenceV2, v))
}

// LeftConfidenceV2GTE applies the GTE predicate on the "left_confidence_v2" field.
func LeftConfidenceV2GTE(v float32) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldLeftConfidenceV2, v))
}

// LeftConfidenceV2LT applies the LT predicate on the "left_confidence_v2" field.
func LeftConfidenceV2LT(v float32) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldLeftConfidenceV2, v))
}

// LeftConfidenceV2LTE applies the LTE predicate on the "left_confidence_v2" field.
func LeftConfidenceV2LTE(v float32) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldLeftConfidenceV2, v))
}

// LeftConfidenceV2IsNil applies the IsNil predicate on the "left_confidence_v2" field.
func LeftConfidenceV2IsNil() predicate.Page {
	return predicate.Page(sql.FieldIsNull(FieldLeftConfidenceV2))
}

// LeftConfidenceV2NotNil applies the NotNil predicate on the "left_confidence_v2" field.
func LeftConfidenceV2NotNil() predicate.Page {
	return predicate.Page(sql.FieldNotNull(FieldLeftConfidenceV2))
}

// LeftSourceV2EQ applies the EQ predicate on the "left_source_v2" field.
func LeftSourceV2EQ(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldLeftSourceV2, v))
}

// LeftSourceV2NEQ applies the NEQ predicate on the "left_source_v2" field.
func LeftSourceV2NEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldLeftSourceV2, v))
}

// LeftSourceV2In applies the In predicate on the "left_source_v2" field.
func LeftSourceV2In(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldLeftSourceV2, vs...))
}

// LeftSourceV2NotIn applies the NotIn predicate on the "left_source_v2" field.
func LeftSourceV2NotIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldLeftSourceV2, vs...))
}

// LeftSourceV2GT applies the GT predicate on the "left_source_v2" field.
func LeftSourceV2GT(v string) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldLeftSourceV2, v))
}

// LeftSourceV2GTE applies the GTE predicate on the "left_source_v2" field.
func LeftSourceV2GTE(v string) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldLeftSourceV2, v))
}

// LeftSourceV2LT applies the LT predicate on the "left_source_v2" field.
func LeftSourceV2LT(v string) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldLeftSourceV2, v))
}

// LeftSourceV2LTE applies the LTE predicate on the "left_source_v2" field.
func LeftSourceV2LTE(v string) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldLeftSourceV2, v))
}

// LeftSourceV2Contains applies the Contains predicate on the "left_source_v2" field.
func LeftSourceV2Contains(v string) predicate.Page {
	return predicate.Page(sql.FieldContains(FieldLeftSourceV2, v))
}

// LeftSourceV2HasPrefix applies the HasPrefix predicate on the "left_source_v2" field.
func LeftSourceV2HasPrefix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasPrefix(FieldLeftSourceV2, v))
}

// LeftSourceV2HasSuffix applies the HasSuffix predicate on the "left_source_v2" field.
func LeftSourceV2HasSuffix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasSuffix(FieldLeftSourceV2, v))
}

// LeftSourceV2IsNil applies the IsNil predicate on the "left_source_v2" field.
func LeftSourceV2IsNil() predicate.Page {
	return predicate.Page(sql.FieldIsNull(FieldLeftSourceV2))
}

// LeftSourceV2NotNil applies the NotNil predicate on the "left_source_v2" field.
func LeftSourceV2NotNil() predicate.Page {
	return predicate.Page(sql.FieldNotNull(FieldLeftSourceV2))
}

// LeftSourceV2EqualFold applies the EqualFold predicate on the "left_source_v2" field.
func LeftSourceV2EqualFold(v string) predicate.Page {
	return predicate.Page(sql.FieldEqualFold(FieldLeftSourceV2, v))
}

// LeftSourceV2ContainsFold applies the ContainsFold predicate on the "left_source_v2" field.
func LeftSourceV2ContainsFold(v string) predicate.Page {
	return predicate.Page(sql.FieldContainsFold(FieldLeftSourceV2, v))
}

// LeftSearchTextV2EQ applies the EQ predicate on the "left_search_text_v2" field.
func LeftSearchTextV2EQ(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldLeftSearchTextV2, v))
}

// LeftSearchTextV2NEQ applies the NEQ predicate on the "left_search_text_v2" field.
func LeftSearchTextV2NEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldLeftSearchTextV2, v))
}

// LeftSearchTextV2In applies the In predicate on the "left_search_text_v2" field.
func LeftSearchTextV2In(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldLeftSearchTextV2, vs...))
}

// LeftSearchTextV2NotIn applies the NotIn predicate on the "left_search_text_v2" field.
func LeftSearchTextV2NotIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldLeftSearchTextV2, vs...))
}

// LeftSearchTextV2GT applies the GT predicate on the "left_search_text_v2" field.
func LeftSearchTextV2GT(v string) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldLeftSearchTextV2, v))
}

// LeftSearchTextV2GTE applies the GTE predicate on the "left_search_text_v2" field.
func LeftSearchTextV2GTE(v string) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldLeftSearchTextV2, v))
}

// LeftSearchTextV2LT applies the LT predicate on the "left_search_text_v2" field.
func LeftSearchTextV2LT(v string) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldLeftSearchTextV2, v))
}

// LeftSearchTextV2LTE applies the LTE predicate on the "left_search_text_v2" field.
func LeftSearchTextV2LTE(v string) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldLeftSearchTextV2, v))
}

// LeftSearchTextV2Contains applies the Contains predicate on the "left_search_text_v2" field.
func LeftSearchTextV2Contains(v string) predicate.Page {
	return predicate.Page(sql.FieldContains(FieldLeftSearchTextV2, v))
}

// LeftSearchTextV2HasPrefix applies the HasPrefix predicate on the "left_search_text_v2" field.
func LeftSearchTextV2HasPrefix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasPrefix(FieldLeftSearchTextV2, v))
}

// LeftSearchTextV2HasSuffix applies the HasSuffix predicate on the "left_search_text_v2" field.
func LeftSearchTextV2HasSuffix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasSuffix(FieldLeftSearchTextV2, v))
}

// LeftSearchTextV2IsNil applies the IsNil predicate on the "left_search_text_v2" field.
func LeftSearchTextV2IsNil() predicate.Page {
	return predicate.Page(sql.FieldIsNull(FieldLeftSearchTextV2))
}

// LeftSearchTextV2NotNil applies the NotNil predicate on the "left_search_text_v2" field.
func LeftSearchTextV2NotNil() predicate.Page {
	return predicate.Page(sql.FieldNotNull(FieldLeftSearchTextV2))
}

// LeftSearchTextV2EqualFold applies the EqualFold predicate on the "left_search_text_v2" field.
func LeftSearchTextV2EqualFold(v string) predicate.Page {
	return predicate.Page(sql.FieldEqualFold(FieldLeftSearchTextV2, v))
}

// LeftSearchTextV2ContainsFold applies the ContainsFold predicate on the "left_search_text_v2" field.
func LeftSearchTextV2ContainsFold(v string) predicate.Page {
	return predicate.Page(sql.FieldContainsFold(FieldLeftSearchTextV2, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.Page {
	return predicate.Page(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.Page {
	return predicate.Page(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Page) predicate.Page {
	return predicate.Page(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Page) predicate.Page {
	return predicate.Page(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Page) predicate.Page {
	return predicate.Page(sql.NotPredicates(p))
}
