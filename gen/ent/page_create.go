// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cbruhn/drawing-archive/gen/ent/document"
	"github.com/cbruhn/drawing-archive/gen/ent/page"
)

// PageCreate is the builder for creating a Page entity.
type PageCreate struct {
	config
	mutation *PageMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *PageCreate) SetDocumentID(v int) *PageCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetPageNo sets the "page_no" field.
func (_c *PageCreate) SetPageNo(v int) *PageCreate {
	_c.mutation.SetPageNo(v)
	return _c
}

// SetThumbPath sets the "thumb_path" field.
func (_c *PageCreate) SetThumbPath(v string) *PageCreate {
	_c.mutation.SetThumbPath(v)
	return _c
}

// SetNillableThumbPath sets the "thumb_path" field if the given value is not nil.
func (_c *PageCreate) SetNillableThumbPath(v *string) *PageCreate {
	if v != nil {
		_c.SetThumbPath(*v)
	}
	return _c
}

// SetText sets the "text" field.
func (_c *PageCreate) SetText(v string) *PageCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_c *PageCreate) SetNillableText(v *string) *PageCreate {
	if v != nil {
		_c.SetText(*v)
	}
	return _c
}

// SetKeyText sets the "key_text" field.
func (_c *PageCreate) SetKeyText(v string) *PageCreate {
	_c.mutation.SetKeyText(v)
	return _c
}

// SetNillableKeyText sets the "key_text" field if the given value is not nil.
func (_c *PageCreate) SetNillableKeyText(v *string) *PageCreate {
	if v != nil {
		_c.SetKeyText(*v)
	}
	return _c
}

// SetLeftTitlesJSON sets the "left_titles_json" field.
func (_c *PageCreate) SetLeftTitlesJSON(v string) *PageCreate {
	_c.mutation.SetLeftTitlesJSON(v)
	return _c
}

// SetNillableLeftTitlesJSON sets the "left_titles_json" field if the given value is not nil.
func (_c *PageCreate) SetNillableLeftTitlesJSON(v *string) *PageCreate {
	if v != nil {
		_c.SetLeftTitlesJSON(*v)
	}
	return _c
}

// SetLeftNr sets the "left_nr" field.
func (_c *PageCreate) SetLeftNr(v string) *PageCreate {
	_c.mutation.SetLeftNr(v)
	return _c
}

// SetNillableLeftNr sets the "left_nr" field if the given value is not nil.
func (_c *PageCreate) SetNillableLeftNr(v *string) *PageCreate {
	if v != nil {
		_c.SetLeftNr(*v)
	}
	return _c
}

// SetLeftScale sets the "left_scale" field.
func (_c *PageCreate) SetLeftScale(v string) *PageCreate {
	_c.mutation.SetLeftScale(v)
	return _c
}

// SetNillableLeftScale sets the "left_scale" field if the given value is not nil.
func (_c *PageCreate) SetNillableLeftScale(v *string) *PageCreate {
	if v != nil {
		_c.SetLeftScale(*v)
	}
	return _c
}

// SetLeftConfidence sets the "left_confidence" field.
func (_c *PageCreate) SetLeftConfidence(v float32) *PageCreate {
	_c.mutation.SetLeftConfidence(v)
	return _c
}

// SetNillableLeftConfidence sets the "left_confidence" field if the given value is not nil.
func (_c *PageCreate) SetNillableLeftConfidence(v *float32) *PageCreate {
	if v != nil {
		_c.SetLeftConfidence(*v)
	}
	return _c
}

// SetLeftSource sets the "left_source" field.
func (_c *PageCreate) SetLeftSource(v string) *PageCreate {
	_c.mutation.SetLeftSource(v)
	return _c
}

// SetNillableLeftSource sets the "left_source" field if the given value is not nil.
func (_c *PageCreate) SetNillableLeftSource(v *string) *PageCreate {
	if v != nil {
		_c.SetLeftSource(*v)
	}
	return _c
}

// SetLeftTitlesJSONV2 sets the "left_titles_json_v2" field.
func (_c *PageCreate) SetLeftTitlesJSONV2(v string) *PageCreate {
	_c.mutation.SetLeftTitlesJSONV2(v)
	return _c
}

// SetNillableLeftTitlesJSONV2 sets the "left_titles_json_v2" field if the given value is not nil.
func (_c *PageCreate) SetNillableLeftTitlesJSONV2(v *string) *PageCreate {
	if v != nil {
		_c.SetLeftTitlesJSONV2(*v)
	}
	return _c
}

// SetLeftNrV2 sets the "left_nr_v2" field.
func (_c *PageCreate) SetLeftNrV2(v string) *PageCreate {
	_c.mutation.SetLeftNrV2(v)
	return _c
}

// SetNillableLeftNrV2 sets the "left_nr_v2" field if the given value is not nil.
func (_c *PageCreate) SetNillableLeftNrV2(v *string) *PageCreate {
	if v != nil {
		_c.SetLeftNrV2(*v)
	}
	return _c
}

// SetLeftScaleV2 sets the "left_scale_v2" field.
func (_c *PageCreate) SetLeftScaleV2(v string) *PageCreate {
	_c.mutation.SetLeftScaleV2(v)
	return _c
}

// SetNillableLeftScaleV2 sets the "left_scale_v2" field if the given value is not nil.
func (_c *PageCreate) SetNillableLeftScaleV2(v *string) *PageCreate {
	if v != nil {
		_c.SetLeftScaleV2(*v)
	}
	return _c
}

// SetLeftConfidenceV2 sets the "left_confidence_v2" field.
func (_c *PageCreate) SetLeftConfidenceV2(v float32) *PageCreate {
	_c.mutation.SetLeftConfidenceV2(v)
	return _c
}

// SetNillableLeftConfidenceV2 sets the "left_confidence_v2" field if the given value is not nil.
func (_c *PageCreate) SetNillableLeftConfidenceV2(v *float32) *PageCreate {
	if v != nil {
		_c.SetLeftConfidenceV2(*v)
	}
	return _c
}

// SetLeftSourceV2 sets the "left_source_v2" field.
func (_c *PageCreate) SetLeftSourceV2(v string) *PageCreate {
	_c.mutation.SetLeftSourceV2(v)
	return _c
}

// SetNillableLeftSourceV2 sets the "left_source_v2" field if the given value is not nil.
func (_c *PageCreate) SetNillableLeftSourceV2(v *string) *PageCreate {
	if v != nil {
		_c.SetLeftSourceV2(*v)
	}
	return _c
}

// SetLeftSearchTextV2 sets the "left_search_text_v2" field.
func (_c *PageCreate) SetLeftSearchTextV2(v string) *PageCreate {
	_c.mutation.SetLeftSearchTextV2(v)
	return _c
}

// SetNillableLeftSearchTextV2 sets the "left_search_text_v2" field if the given value is not nil.
func (_c *PageCreate) SetNillableLeftSearchTextV2(v *string) *PageCreate {
	if v != nil {
		_c.SetLeftSearchTextV2(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *PageCreate) SetDocument(v *Document) *PageCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the PageMutation object of the builder.
func (_c *PageCreate) Mutation() *PageMutation {
	return _c.mutation
}

// Save creates the Page in the database.
func (_c *PageCreate) Save(ctx context.Context) (*Page, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PageCreate) SaveX(ctx context.Context) *Page {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PageCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "Page.document_id"`)}
	}
	if _, ok := _c.mutation.PageNo(); !ok {
		return &ValidationError{Name: "page_no", err: errors.New(`ent: missing required field "Page.page_no"`)}
	}
	if v, ok := _c.mutation.PageNo(); ok {
		if err := page.PageNoValidator(v); err != nil {
			return &ValidationError{Name: "page_no", err: fmt.Errorf(`ent: validator failed for field "Page.page_no": %w`, err)}
		}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "Page.document"`)}
	}
	return nil
}

func (_c *PageCreate) sqlSave(ctx context.Context) (*Page, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PageCreate) createSpec() (*Page, *sqlgraph.CreateSpec) {
	var (
		_node = &Page{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(page.Table, sqlgraph.NewFieldSpec(page.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PageNo(); ok {
		_spec.SetField(page.FieldPageNo, field.TypeInt, value)
		_node.PageNo = value
	}
	if value, ok := _c.mutation.ThumbPath(); ok {
		_spec.SetField(page.FieldThumbPath, field.TypeString, value)
		_node.ThumbPath = &value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(page.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.KeyText(); ok {
		_spec.SetField(page.FieldKeyText, field.TypeString, value)
		_node.KeyText = &value
	}
	if value, ok := _c.mutation.LeftTitlesJSON(); ok {
		_spec.SetField(page.FieldLeftTitlesJSON, field.TypeString, value)
		_node.LeftTitlesJSON = &value
	}
	if value, ok := _c.mutation.LeftNr(); ok {
		_spec.SetField(page.FieldLeftNr, field.TypeString, value)
		_node.LeftNr = &value
	}
	if value, ok := _c.mutation.LeftScale(); ok {
		_spec.SetField(page.FieldLeftScale, field.TypeString, value)
		_node.LeftScale = &value
	}
	if value, ok := _c.mutation.LeftConfidence(); ok {
		_spec.SetField(page.FieldLeftConfidence, field.TypeFloat32, value)
		_node.LeftConfidence = &value
	}
	if value, ok := _c.mutation.LeftSource(); ok {
		_spec.SetField(page.FieldLeftSource, field.TypeString, value)
		_node.LeftSource = &value
	}
	if value, ok := _c.mutation.LeftTitlesJSONV2(); ok {
		_spec.SetField(page.FieldLeftTitlesJSONV2, field.TypeString, value)
		_node.LeftTitlesJSONV2 = &value
	}
	if value, ok := _c.mutation.LeftNrV2(); ok {
		_spec.SetField(page.FieldLeftNrV2, field.TypeString, value)
		_node.LeftNrV2 = &value
	}
	if value, ok := _c.mutation.LeftScaleV2(); ok {
		_spec.SetField(page.FieldLeftScaleV2, field.TypeString, value)
		_node.LeftScaleV2 = &value
	}
	if value, ok := _c.mutation.LeftConfidenceV2(); ok {
		_spec.SetField(page.FieldLeftConfidenceV2, field.TypeFloat32, value)
		_node.LeftConfidenceV2 = &value
	}
	if value, ok := _c.mutation.LeftSourceV2(); ok {
		_spec.SetField(page.FieldLeftSourceV2, field.TypeString, value)
		_node.LeftSourceV2 = &value
	}
	if value, ok := _c.mutation.LeftSearchTextV2(); ok {
		_spec.SetField(page.FieldLeftSearchTextV2, field.TypeString, value)
		_node.LeftSearchTextV2 = &value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PageCreateBulk is the builder for creating many Page entities in bulk.
type PageCreateBulk struct {
	config
	err      error
	builders []*PageCreate
}

// Save creates the Page entities in the database.
func (_c *PageCreateBulk) Save(ctx context.Context) ([]*Page, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Page, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PageMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PageCreateBulk) SaveX(ctx context.Context) []*Page {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
