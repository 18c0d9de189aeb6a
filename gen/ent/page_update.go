// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cbruhn/drawing-archive/gen/ent/document"
	"github.com/cbruhn/drawing-archive/gen/ent/page"
	"github.com/cbruhn/drawing-archive/gen/ent/predicate"
)

// PageUpdate is the builder for updating Page entities.
type PageUpdate struct {
	config
	hooks    []Hook
	mutation *PageMutation
}

// Where appends a list predicates to the PageUpdate builder.
func (_u *PageUpdate) Where(ps ...predicate.Page) *PageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *PageUpdate) SetDocumentID(v int) *PageUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *PageUpdate) SetNillableDocumentID(v *int) *PageUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetPageNo sets the "page_no" field.
func (_u *PageUpdate) SetPageNo(v int) *PageUpdate {
	_u.mutation.ResetPageNo()
	_u.mutation.SetPageNo(v)
	return _u
}

// SetNillablePageNo sets the "page_no" field if the given value is not nil.
func (_u *PageUpdate) SetNillablePageNo(v *int) *PageUpdate {
	if v != nil {
		_u.SetPageNo(*v)
	}
	return _u
}

// AddPageNo adds value to the "page_no" field.
func (_u *PageUpdate) AddPageNo(v int) *PageUpdate {
	_u.mutation.AddPageNo(v)
	return _u
}

// SetThumbPath sets the "thumb_path" field.
func (_u *PageUpdate) SetThumbPath(v string) *PageUpdate {
	_u.mutation.SetThumbPath(v)
	return _u
}

// SetNillableThumbPath sets the "thumb_path" field if the given value is not nil.
func (_u *PageUpdate) SetNillableThumbPath(v *string) *PageUpdate {
	if v != nil {
		_u.SetThumbPath(*v)
	}
	return _u
}

// ClearThumbPath clears the value of the "thumb_path" field.
func (_u *PageUpdate) ClearThumbPath() *PageUpdate {
	_u.mutation.ClearThumbPath()
	return _u
}

// SetText sets the "text" field.
func (_u *PageUpdate) SetText(v string) *PageUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *PageUpdate) SetNillableText(v *string) *PageUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// ClearText clears the value of the "text" field.
func (_u *PageUpdate) ClearText() *PageUpdate {
	_u.mutation.ClearText()
	return _u
}

// SetKeyText sets the "key_text" field.
func (_u *PageUpdate) SetKeyText(v string) *PageUpdate {
	_u.mutation.SetKeyText(v)
	return _u
}

// SetNillableKeyText sets the "key_text" field if the given value is not nil.
func (_u *PageUpdate) SetNillableKeyText(v *string) *PageUpdate {
	if v != nil {
		_u.SetKeyText(*v)
	}
	return _u
}

// ClearKeyText clears the value of the "key_text" field.
func (_u *PageUpdate) ClearKeyText() *PageUpdate {
	_u.mutation.ClearKeyText()
	return _u
}

// SetLeftTitlesJSON sets the "left_titles_json" field.
func (_u *PageUpdate) SetLeftTitlesJSON(v string) *PageUpdate {
	_u.mutation.SetLeftTitlesJSON(v)
	return _u
}

// SetNillableLeftTitlesJSON sets the "left_titles_json" field if the given value is not nil.
func (_u *PageUpdate) SetNillableLeftTitlesJSON(v *string) *PageUpdate {
	if v != nil {
		_u.SetLeftTitlesJSON(*v)
	}
	return _u
}

// ClearLeftTitlesJSON clears the value of the "left_titles_json" field.
func (_u *PageUpdate) ClearLeftTitlesJSON() *PageUpdate {
	_u.mutation.ClearLeftTitlesJSON()
	return _u
}

// SetLeftNr sets the "left_nr" field.
func (_u *PageUpdate) SetLeftNr(v string) *PageUpdate {
	_u.mutation.SetLeftNr(v)
	return _u
}

// SetNillableLeftNr sets the "left_nr" field if the given value is not nil.
func (_u *PageUpdate) SetNillableLeftNr(v *string) *PageUpdate {
	if v != nil {
		_u.SetLeftNr(*v)
	}
	return _u
}

// ClearLeftNr clears the value of the "left_nr" field.
func (_u *PageUpdate) ClearLeftNr() *PageUpdate {
	_u.mutation.ClearLeftNr()
	return _u
}

// SetLeftScale sets the "left_scale" field.
func (_u *PageUpdate) SetLeftScale(v string) *PageUpdate {
	_u.mutation.SetLeftScale(v)
	return _u
}

// SetNillableLeftScale sets the "left_scale" field if the given value is not nil.
func (_u *PageUpdate) SetNillableLeftScale(v *string) *PageUpdate {
	if v != nil {
		_u.SetLeftScale(*v)
	}
	return _u
}

// ClearLeftScale clears the value of the "left_scale" field.
func (_u *PageUpdate) ClearLeftScale() *PageUpdate {
	_u.mutation.ClearLeftScale()
	return _u
}

// SetLeftConfidence sets the "left_confidence" field.
func (_u *PageUpdate) SetLeftConfidence(v float32) *PageUpdate {
	_u.mutation.ResetLeftConfidence()
	_u.mutation.SetLeftConfidence(v)
	return _u
}

// SetNillableLeftConfidence sets the "left_confidence" field if the given value is not nil.
func (_u *PageUpdate) SetNillableLeftConfidence(v *float32) *PageUpdate {
	if v != nil {
		_u.SetLeftConfidence(*v)
	}
	return _u
}

// AddLeftConfidence adds value to the "left_confidence" field.
func (_u *PageUpdate) AddLeftConfidence(v float32) *PageUpdate {
	_u.mutation.AddLeftConfidence(v)
	return _u
}

// ClearLeftConfidence clears the value of the "left_confidence" field.
func (_u *PageUpdate) ClearLeftConfidence() *PageUpdate {
	_u.mutation.ClearLeftConfidence()
	return _u
}

// SetLeftSource sets the "left_source" field.
func (_u *PageUpdate) SetLeftSource(v string) *PageUpdate {
	_u.mutation.SetLeftSource(v)
	return _u
}

// SetNillableLeftSource sets the "left_source" field if the given value is not nil.
func (_u *PageUpdate) SetNillableLeftSource(v *string) *PageUpdate {
	if v != nil {
		_u.SetLeftSource(*v)
	}
	return _u
}

// ClearLeftSource clears the value of the "left_source" field.
func (_u *PageUpdate) ClearLeftSource() *PageUpdate {
	_u.mutation.ClearLeftSource()
	return _u
}

// SetLeftTitlesJSONV2 sets the "left_titles_json_v2" field.
func (_u *PageUpdate) SetLeftTitlesJSONV2(v string) *PageUpdate {
	_u.mutation.SetLeftTitlesJSONV2(v)
	return _u
}

// SetNillableLeftTitlesJSONV2 sets the "left_titles_json_v2" field if the given value is not nil.
func (_u *PageUpdate) SetNillableLeftTitlesJSONV2(v *string) *PageUpdate {
	if v != nil {
		_u.SetLeftTitlesJSONV2(*v)
	}
	return _u
}

// ClearLeftTitlesJSONV2 clears the value of the "left_titles_json_v2" field.
func (_u *PageUpdate) ClearLeftTitlesJSONV2() *PageUpdate {
	_u.mutation.ClearLeftTitlesJSONV2()
	return _u
}

// SetLeftNrV2 sets the "left_nr_v2" field.
func (_u *PageUpdate) SetLeftNrV2(v string) *PageUpdate {
	_u.mutation.SetLeftNrV2(v)
	return _u
}

// SetNillableLeftNrV2 sets the "left_nr_v2" field if the given value is not nil.
func (_u *PageUpdate) SetNillableLeftNrV2(v *string) *PageUpdate {
	if v != nil {
		_u.SetLeftNrV2(*v)
	}
	return _u
}

// ClearLeftNrV2 clears the value of the "left_nr_v2" field.
func (_u *PageUpdate) ClearLeftNrV2() *PageUpdate {
	_u.mutation.ClearLeftNrV2()
	return _u
}

// SetLeftScaleV2 sets the "left_scale_v2" field.
func (_u *PageUpdate) SetLeftScaleV2(v string) *PageUpdate {
	_u.mutation.SetLeftScaleV2(v)
	return _u
}

// SetNillableLeftScaleV2 sets the "left_scale_v2" field if the given value is not nil.
func (_u *PageUpdate) SetNillableLeftScaleV2(v *string) *PageUpdate {
	if v != nil {
		_u.SetLeftScaleV2(*v)
	}
	return _u
}

// ClearLeftScaleV2 clears the value of the "left_scale_v2" field.
func (_u *PageUpdate) ClearLeftScaleV2() *PageUpdate {
	_u.mutation.ClearLeftScaleV2()
	return _u
}

// SetLeftConfidenceV2 sets the "left_confidence_v2" field.
func (_u *PageUpdate) SetLeftConfidenceV2(v float32) *PageUpdate {
	_u.mutation.ResetLeftConfidenceV2()
	_u.mutation.SetLeftConfidenceV2(v)
	return _u
}

// SetNillableLeftConfidenceV2 sets the "left_confidence_v2" field if the given value is not nil.
func (_u *PageUpdate) SetNillableLeftConfidenceV2(v *float32) *PageUpdate {
	if v != nil {
		_u.SetLeftConfidenceV2(*v)
	}
	return _u
}

// AddLeftConfidenceV2 adds value to the "left_confidence_v2" field.
func (_u *PageUpdate) AddLeftConfidenceV2(v float32) *PageUpdate {
	_u.mutation.AddLeftConfidenceV2(v)
	return _u
}

// ClearLeftConfidenceV2 clears the value of the "left_confidence_v2" field.
func (_u *PageUpdate) ClearLeftConfidenceV2() *PageUpdate {
	_u.mutation.ClearLeftConfidenceV2()
	return _u
}

// SetLeftSourceV2 sets the "left_source_v2" field.
func (_u *PageUpdate) SetLeftSourceV2(v string) *PageUpdate {
	_u.mutation.SetLeftSourceV2(v)
	return _u
}

// SetNillableLeftSourceV2 sets the "left_source_v2" field if the given value is not nil.
func (_u *PageUpdate) SetNillableLeftSourceV2(v *string) *PageUpdate {
	if v != nil {
		_u.SetLeftSourceV2(*v)
	}
	return _u
}

// ClearLeftSourceV2 clears the value of the "left_source_v2" field.
func (_u *PageUpdate) ClearLeftSourceV2() *PageUpdate {
	_u.mutation.ClearLeftSourceV2()
	return _u
}

// SetLeftSearchTextV2 sets the "left_search_text_v2" field.
func (_u *PageUpdate) SetLeftSearchTextV2(v string) *PageUpdate {
	_u.mutation.SetLeftSearchTextV2(v)
	return _u
}

// SetNillableLeftSearchTextV2 sets the "left_search_text_v2" field if the given value is not nil.
func (_u *PageUpdate) SetNillableLeftSearchTextV2(v *string) *PageUpdate {
	if v != nil {
		_u.SetLeftSearchTextV2(*v)
	}
	return _u
}

// ClearLeftSearchTextV2 clears the value of the "left_search_text_v2" field.
func (_u *PageUpdate) ClearLeftSearchTextV2() *PageUpdate {
	_u.mutation.ClearLeftSearchTextV2()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *PageUpdate) SetDocument(v *Document) *PageUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the PageMutation object of the builder.
func (_u *PageUpdate) Mutation() *PageMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *PageUpdate) ClearDocument() *PageUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PageUpdate) check() error {
	if v, ok := _u.mutation.PageNo(); ok {
		if err := page.PageNoValidator(v); err != nil {
			return &ValidationError{Name: "page_no", err: fmt.Errorf(`ent: validator failed for field "Page.page_no": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Page.document"`)
	}
	return nil
}

func (_u *PageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(page.Table, page.Columns, sqlgraph.NewFieldSpec(page.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PageNo(); ok {
		_spec.SetField(page.FieldPageNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageNo(); ok {
		_spec.AddField(page.FieldPageNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ThumbPath(); ok {
		_spec.SetField(page.FieldThumbPath, field.TypeString, value)
	}
	if _u.mutation.ThumbPathCleared() {
		_spec.ClearField(page.FieldThumbPath, field.TypeString)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(page.FieldText, field.TypeString, value)
	}
	if _u.mutation.TextCleared() {
		_spec.ClearField(page.FieldText, field.TypeString)
	}
	if value, ok := _u.mutation.KeyText(); ok {
		_spec.SetField(page.FieldKeyText, field.TypeString, value)
	}
	if _u.mutation.KeyTextCleared() {
		_spec.ClearField(page.FieldKeyText, field.TypeString)
	}
	if value, ok := _u.mutation.LeftTitlesJSON(); ok {
		_spec.SetField(page.FieldLeftTitlesJSON, field.TypeString, value)
	}
	if _u.mutation.LeftTitlesJSONCleared() {
		_spec.ClearField(page.FieldLeftTitlesJSON, field.TypeString)
	}
	if value, ok := _u.mutation.LeftNr(); ok {
		_spec.SetField(page.FieldLeftNr, field.TypeString, value)
	}
	if _u.mutation.LeftNrCleared() {
		_spec.ClearField(page.FieldLeftNr, field.TypeString)
	}
	if value, ok := _u.mutation.LeftScale(); ok {
		_spec.SetField(page.FieldLeftScale, field.TypeString, value)
	}
	if _u.mutation.LeftScaleCleared() {
		_spec.ClearField(page.FieldLeftScale, field.TypeString)
	}
	if value, ok := _u.mutation.LeftConfidence(); ok {
		_spec.SetField(page.FieldLeftConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedLeftConfidence(); ok {
		_spec.AddField(page.FieldLeftConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.LeftConfidenceCleared() {
		_spec.ClearField(page.FieldLeftConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.LeftSource(); ok {
		_spec.SetField(page.FieldLeftSource, field.TypeString, value)
	}
	if _u.mutation.LeftSourceCleared() {
		_spec.ClearField(page.FieldLeftSource, field.TypeString)
	}
	if value, ok := _u.mutation.LeftTitlesJSONV2(); ok {
		_spec.SetField(page.FieldLeftTitlesJSONV2, field.TypeString, value)
	}
	if _u.mutation.LeftTitlesJSONV2Cleared() {
		_spec.ClearField(page.FieldLeftTitlesJSONV2, field.TypeString)
	}
	if value, ok := _u.mutation.LeftNrV2(); ok {
		_spec.SetField(page.FieldLeftNrV2, field.TypeString, value)
	}
	if _u.mutation.LeftNrV2Cleared() {
		_spec.ClearField(page.FieldLeftNrV2, field.TypeString)
	}
	if value, ok := _u.mutation.LeftScaleV2(); ok {
		_spec.SetField(page.FieldLeftScaleV2, field.TypeString, value)
	}
	if _u.mutation.LeftScaleV2Cleared() {
		_spec.ClearField(page.FieldLeftScaleV2, field.TypeString)
	}
	if value, ok := _u.mutation.LeftConfidenceV2(); ok {
		_spec.SetField(page.FieldLeftConfidenceV2, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedLeftConfidenceV2(); ok {
		_spec.AddField(page.FieldLeftConfidenceV2, field.TypeFloat32, value)
	}
	if _u.mutation.LeftConfidenceV2Cleared() {
		_spec.ClearField(page.FieldLeftConfidenceV2, field.TypeFloat32)
	}
	if value, ok := _u.mutation.LeftSourceV2(); ok {
		_spec.SetField(page.FieldLeftSourceV2, field.TypeString, value)
	}
	if _u.mutation.LeftSourceV2Cleared() {
		_spec.ClearField(page.FieldLeftSourceV2, field.TypeString)
	}
	if value, ok := _u.mutation.LeftSearchTextV2(); ok {
		_spec.SetField(page.FieldLeftSearchTextV2, field.TypeString, value)
	}
	if _u.mutation.LeftSearchTextV2Cleared() {
		_spec.ClearField(page.FieldLeftSearchTextV2, field.TypeString)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   page.DocumentTable,
			Columns: []string{page.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   page.DocumentTable,
			Columns: []string{page.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{page.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PageUpdateOne is the builder for updating a single Page entity.
type PageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PageMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *PageUpdateOne) SetDocumentID(v int) *PageUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableDocumentID(v *int) *PageUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetPageNo sets the "page_no" field.
func (_u *PageUpdateOne) SetPageNo(v int) *PageUpdateOne {
	_u.mutation.ResetPageNo()
	_u.mutation.SetPageNo(v)
	return _u
}

// SetNillablePageNo sets the "page_no" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillablePageNo(v *int) *PageUpdateOne {
	if v != nil {
		_u.SetPageNo(*v)
	}
	return _u
}

// AddPageNo adds value to the "page_no" field.
func (_u *PageUpdateOne) AddPageNo(v int) *PageUpdateOne {
	_u.mutation.AddPageNo(v)
	return _u
}

// SetThumbPath sets the "thumb_path" field.
func (_u *PageUpdateOne) SetThumbPath(v string) *PageUpdateOne {
	_u.mutation.SetThumbPath(v)
	return _u
}

// SetNillableThumbPath sets the "thumb_path" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableThumbPath(v *string) *PageUpdateOne {
	if v != nil {
		_u.SetThumbPath(*v)
	}
	return _u
}

// ClearThumbPath clears the value of the "thumb_path" field.
func (_u *PageUpdateOne) ClearThumbPath() *PageUpdateOne {
	_u.mutation.ClearThumbPath()
	return _u
}

// SetText sets the "text" field.
func (_u *PageUpdateOne) SetText(v string) *PageUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableText(v *string) *PageUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// ClearText clears the value of the "text" field.
func (_u *PageUpdateOne) ClearText() *PageUpdateOne {
	_u.mutation.ClearText()
	return _u
}

// SetKeyText sets the "key_text" field.
func (_u *PageUpdateOne) SetKeyText(v string) *PageUpdateOne {
	_u.mutation.SetKeyText(v)
	return _u
}

// SetNillableKeyText sets the "key_text" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableKeyText(v *string) *PageUpdateOne {
	if v != nil {
		_u.SetKeyText(*v)
	}
	return _u
}

// ClearKeyText clears the value of the "key_text" field.
func (_u *PageUpdateOne) ClearKeyText() *PageUpdateOne {
	_u.mutation.ClearKeyText()
	return _u
}

// SetLeftTitlesJSON sets the "left_titles_json" field.
func (_u *PageUpdateOne) SetLeftTitlesJSON(v string) *PageUpdateOne {
	_u.mutation.SetLeftTitlesJSON(v)
	return _u
}

// SetNillableLeftTitlesJSON sets the "left_titles_json" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableLeftTitlesJSON(v *string) *PageUpdateOne {
	if v != nil {
		_u.SetLeftTitlesJSON(*v)
	}
	return _u
}

// ClearLeftTitlesJSON clears the value of the "left_titles_json" field.
func (_u *PageUpdateOne) ClearLeftTitlesJSON() *PageUpdateOne {
	_u.mutation.ClearLeftTitlesJSON()
	return _u
}

// SetLeftNr sets the "left_nr" field.
func (_u *PageUpdateOne) SetLeftNr(v string) *PageUpdateOne {
	_u.mutation.SetLeftNr(v)
	return _u
}

// SetNillableLeftNr sets the "left_nr" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableLeftNr(v *string) *PageUpdateOne {
	if v != nil {
		_u.SetLeftNr(*v)
	}
	return _u
}

// ClearLeftNr clears the value of the "left_nr" field.
func (_u *PageUpdateOne) ClearLeftNr() *PageUpdateOne {
	_u.mutation.ClearLeftNr()
	return _u
}

// SetLeftScale sets the "left_scale" field.
func (_u *PageUpdateOne) SetLeftScale(v string) *PageUpdateOne {
	_u.mutation.SetLeftScale(v)
	return _u
}

// SetNillableLeftScale sets the "left_scale" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableLeftScale(v *string) *PageUpdateOne {
	if v != nil {
		_u.SetLeftScale(*v)
	}
	return _u
}

// ClearLeftScale clears the value of the "left_scale" field.
func (_u *PageUpdateOne) ClearLeftScale() *PageUpdateOne {
	_u.mutation.ClearLeftScale()
	return _u
}

// SetLeftConfidence sets the "left_confidence" field.
func (_u *PageUpdateOne) SetLeftConfidence(v float32) *PageUpdateOne {
	_u.mutation.ResetLeftConfidence()
	_u.mutation.SetLeftConfidence(v)
	return _u
}

// SetNillableLeftConfidence sets the "left_confidence" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableLeftConfidence(v *float32) *PageUpdateOne {
	if v != nil {
		_u.SetLeftConfidence(*v)
	}
	return _u
}

// AddLeftConfidence adds value to the "left_confidence" field.
func (_u *PageUpdateOne) AddLeftConfidence(v float32) *PageUpdateOne {
	_u.mutation.AddLeftConfidence(v)
	return _u
}

// ClearLeftConfidence clears the value of the "left_confidence" field.
func (_u *PageUpdateOne) ClearLeftConfidence() *PageUpdateOne {
	_u.mutation.ClearLeftConfidence()
	return _u
}

// SetLeftSource sets the "left_source" field.
func (_u *PageUpdateOne) SetLeftSource(v string) *PageUpdateOne {
	_u.mutation.SetLeftSource(v)
	return _u
}

// SetNillableLeftSource sets the "left_source" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableLeftSource(v *string) *PageUpdateOne {
	if v != nil {
		_u.SetLeftSource(*v)
	}
	return _u
}

// ClearLeftSource clears the value of the "left_source" field.
func (_u *PageUpdateOne) ClearLeftSource() *PageUpdateOne {
	_u.mutation.ClearLeftSource()
	return _u
}

// SetLeftTitlesJSONV2 sets the "left_titles_json_v2" field.
func (_u *PageUpdateOne) SetLeftTitlesJSONV2(v string) *PageUpdateOne {
	_u.mutation.SetLeftTitlesJSONV2(v)
	return _u
}

// SetNillableLeftTitlesJSONV2 sets the "left_titles_json_v2" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableLeftTitlesJSONV2(v *string) *PageUpdateOne {
	if v != nil {
		_u.SetLeftTitlesJSONV2(*v)
	}
	return _u
}

// ClearLeftTitlesJSONV2 clears the value of the "left_titles_json_v2" field.
func (_u *PageUpdateOne) ClearLeftTitlesJSONV2() *PageUpdateOne {
	_u.mutation.ClearLeftTitlesJSONV2()
	return _u
}

// SetLeftNrV2 sets the "left_nr_v2" field.
func (_u *PageUpdateOne) SetLeftNrV2(v string) *PageUpdateOne {
	_u.mutation.SetLeftNrV2(v)
	return _u
}

// SetNillableLeftNrV2 sets the "left_nr_v2" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableLeftNrV2(v *string) *PageUpdateOne {
	if v != nil {
		_u.SetLeftNrV2(*v)
	}
	return _u
}

// ClearLeftNrV2 clears the value of the "left_nr_v2" field.
func (_u *PageUpdateOne) ClearLeftNrV2() *PageUpdateOne {
	_u.mutation.ClearLeftNrV2()
	return _u
}

// SetLeftScaleV2 sets the "left_scale_v2" field.
func (_u *PageUpdateOne) SetLeftScaleV2(v string) *PageUpdateOne {
	_u.mutation.SetLeftScaleV2(v)
	return _u
}

// SetNillableLeftScaleV2 sets the "left_scale_v2" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableLeftScaleV2(v *string) *PageUpdateOne {
	if v != nil {
		_u.SetLeftScaleV2(*v)
	}
	return _u
}

// ClearLeftScaleV2 clears the value of the "left_scale_v2" field.
func (_u *PageUpdateOne) ClearLeftScaleV2() *PageUpdateOne {
	_u.mutation.ClearLeftScaleV2()
	return _u
}

// SetLeftConfidenceV2 sets the "left_confidence_v2" field.
func (_u *PageUpdateOne) SetLeftConfidenceV2(v float32) *PageUpdateOne {
	_u.mutation.ResetLeftConfidenceV2()
	_u.mutation.SetLeftConfidenceV2(v)
	return _u
}

// SetNillableLeftConfidenceV2 sets the "left_confidence_v2" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableLeftConfidenceV2(v *float32) *PageUpdateOne {
	if v != nil {
		_u.SetLeftConfidenceV2(*v)
	}
	return _u
}

// AddLeftConfidenceV2 adds value to the "left_confidence_v2" field.
func (_u *PageUpdateOne) AddLeftConfidenceV2(v float32) *PageUpdateOne {
	_u.mutation.AddLeftConfidenceV2(v)
	return _u
}

// ClearLeftConfidenceV2 clears the value of the "left_confidence_v2" field.
func (_u *PageUpdateOne) ClearLeftConfidenceV2() *PageUpdateOne {
	_u.mutation.ClearLeftConfidenceV2()
	return _u
}

// SetLeftSourceV2 sets the "left_source_v2" field.
func (_u *PageUpdateOne) SetLeftSourceV2(v string) *PageUpdateOne {
	_u.mutation.SetLeftSourceV2(v)
	return _u
}

// SetNillableLeftSourceV2 sets the "left_source_v2" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableLeftSourceV2(v *string) *PageUpdateOne {
	if v != nil {
		_u.SetLeftSourceV2(*v)
	}
	return _u
}

// ClearLeftSourceV2 clears the value of the "left_source_v2" field.
func (_u *PageUpdateOne) ClearLeftSourceV2() *PageUpdateOne {
	_u.mutation.ClearLeftSourceV2()
	return _u
}

// SetLeftSearchTextV2 sets the "left_search_text_v2" field.
func (_u *PageUpdateOne) SetLeftSearchTextV2(v string) *PageUpdateOne {
	_u.mutation.SetLeftSearchTextV2(v)
	return _u
}

// SetNillableLeftSearchTextV2 sets the "left_search_text_v2" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableLeftSearchTextV2(v *string) *PageUpdateOne {
	if v != nil {
		_u.SetLeftSearchTextV2(*v)
	}
	return _u
}

// ClearLeftSearchTextV2 clears the value of the "left_search_text_v2" field.
func (_u *PageUpdateOne) ClearLeftSearchTextV2() *PageUpdateOne {
	_u.mutation.ClearLeftSearchTextV2()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *PageUpdateOne) SetDocument(v *Document) *PageUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the PageMutation object of the builder.
func (_u *PageUpdateOne) Mutation() *PageMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *PageUpdateOne) ClearDocument() *PageUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the PageUpdate builder.
func (_u *PageUpdateOne) Where(ps ...predicate.Page) *PageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PageUpdateOne) Select(field string, fields ...string) *PageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Page entity.
func (_u *PageUpdateOne) Save(ctx context.Context) (*Page, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PageUpdateOne) SaveX(ctx context.Context) *Page {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PageUpdateOne) check() error {
	if v, ok := _u.mutation.PageNo(); ok {
		if err := page.PageNoValidator(v); err != nil {
			return &ValidationError{Name: "page_no", err: fmt.Errorf(`ent: validator failed for field "Page.page_no": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Page.document"`)
	}
	return nil
}

func (_u *PageUpdateOne) sqlSave(ctx context.Context) (_node *Page, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(page.Table, page.Columns, sqlgraph.NewFieldSpec(page.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Page.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, page.FieldID)
		for _, f := range fields {
			if !page.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != page.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PageNo(); ok {
		_spec.SetField(page.FieldPageNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageNo(); ok {
		_spec.AddField(page.FieldPageNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ThumbPath(); ok {
		_spec.SetField(page.FieldThumbPath, field.TypeString, value)
	}
	if _u.mutation.ThumbPathCleared() {
		_spec.ClearField(page.FieldThumbPath, field.TypeString)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(page.FieldText, field.TypeString, value)
	}
	if _u.mutation.TextCleared() {
		_spec.ClearField(page.FieldText, field.TypeString)
	}
	if value, ok := _u.mutation.KeyText(); ok {
		_spec.SetField(page.FieldKeyText, field.TypeString, value)
	}
	if _u.mutation.KeyTextCleared() {
		_spec.ClearField(page.FieldKeyText, field.TypeString)
	}
	if value, ok := _u.mutation.LeftTitlesJSON(); ok {
		_spec.SetField(page.FieldLeftTitlesJSON, field.TypeString, value)
	}
	if _u.mutation.LeftTitlesJSONCleared() {
		_spec.ClearField(page.FieldLeftTitlesJSON, field.TypeString)
	}
	if value, ok := _u.mutation.LeftNr(); ok {
		_spec.SetField(page.FieldLeftNr, field.TypeString, value)
	}
	if _u.mutation.LeftNrCleared() {
		_spec.ClearField(page.FieldLeftNr, field.TypeString)
	}
	if value, ok := _u.mutation.LeftScale(); ok {
		_spec.SetField(page.FieldLeftScale, field.TypeString, value)
	}
	if _u.mutation.LeftScaleCleared() {
		_spec.ClearField(page.FieldLeftScale, field.TypeString)
	}
	if value, ok := _u.mutation.LeftConfidence(); ok {
		_spec.SetField(page.FieldLeftConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedLeftConfidence(); ok {
		_spec.AddField(page.FieldLeftConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.LeftConfidenceCleared() {
		_spec.ClearField(page.FieldLeftConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.LeftSource(); ok {
		_spec.SetField(page.FieldLeftSource, field.TypeString, value)
	}
	if _u.mutation.LeftSourceCleared() {
		_spec.ClearField(page.FieldLeftSource, field.TypeString)
	}
	if value, ok := _u.mutation.LeftTitlesJSONV2(); ok {
		_spec.SetField(page.FieldLeftTitlesJSONV2, field.TypeString, value)
	}
	if _u.mutation.LeftTitlesJSONV2Cleared() {
		_spec.ClearField(page.FieldLeftTitlesJSONV2, field.TypeString)
	}
	if value, ok := _u.mutation.LeftNrV2(); ok {
		_spec.SetField(page.FieldLeftNrV2, field.TypeString, value)
	}
	if _u.mutation.LeftNrV2Cleared() {
		_spec.ClearField(page.FieldLeftNrV2, field.TypeString)
	}
	if value, ok := _u.mutation.LeftScaleV2(); ok {
		_spec.SetField(page.FieldLeftScaleV2, field.TypeString, value)
	}
	if _u.mutation.LeftScaleV2Cleared() {
		_spec.ClearField(page.FieldLeftScaleV2, field.TypeString)
	}
	if value, ok := _u.mutation.LeftConfidenceV2(); ok {
		_spec.SetField(page.FieldLeftConfidenceV2, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedLeftConfidenceV2(); ok {
		_spec.AddField(page.FieldLeftConfidenceV2, field.TypeFloat32, value)
	}
	if _u.mutation.LeftConfidenceV2Cleared() {
		_spec.ClearField(page.FieldLeftConfidenceV2, field.TypeFloat32)
	}
	if value, ok := _u.mutation.LeftSourceV2(); ok {
		_spec.SetField(page.FieldLeftSourceV2, field.TypeString, value)
	}
	if _u.mutation.LeftSourceV2Cleared() {
		_spec.ClearField(page.FieldLeftSourceV2, field.TypeString)
	}
	if value, ok := _u.mutation.LeftSearchTextV2(); ok {
		_spec.SetField(page.FieldLeftSearchTextV2, field.TypeString, value)
	}
	if _u.mutation.LeftSearchTextV2Cleared() {
		_spec.ClearField(page.FieldLeftSearchTextV2, field.TypeString)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   page.DocumentTable,
			Columns: []string{page.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   page.DocumentTable,
			Columns: []string{page.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Page{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{page.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
