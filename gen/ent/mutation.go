// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cbruhn/drawing-archive/gen/ent/document"
	"github.com/cbruhn/drawing-archive/gen/ent/page"
	"github.com/cbruhn/drawing-archive/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDocument = "Document"
	TypePage     = "Page"
)

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op            Op
	typ           string
	id            *int
	_path         *string
	filename      *string
	title         *string
	model_no      *string
	clearedFields map[string]struct{}
	pages         map[int]struct{}
	removedpages  map[int]struct{}
	clearedpages  bool
	done          bool
	oldValue      func(context.Context) (*Document, error)
	predicates    []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id int) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPath sets the "path" field.
func (m *DocumentMutation) SetPath(s string) {
	m._path = &s
}

// Path returns the value of the "path" field in the mutation.
func (m *DocumentMutation) Path() (r string, exists bool) {
	v := m._path
	if v == nil {
		return
	}
	return *v, true
}

// OldPath returns the old "path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPath: %w", err)
	}
	return oldValue.Path, nil
}

// ResetPath resets all changes to the "path" field.
func (m *DocumentMutation) ResetPath() {
	m._path = nil
}

// SetFilename sets the "filename" field.
func (m *DocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *DocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *DocumentMutation) ResetFilename() {
	m.filename = nil
}

// SetTitle sets the "title" field.
func (m *DocumentMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *DocumentMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldTitle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *DocumentMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[document.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *DocumentMutation) TitleCleared() bool {
	_, ok := m.clearedFields[document.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *DocumentMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, document.FieldTitle)
}

// SetModelNo sets the "model_no" field.
func (m *DocumentMutation) SetModelNo(s string) {
	m.model_no = &s
}

// ModelNo returns the value of the "model_no" field in the mutation.
func (m *DocumentMutation) ModelNo() (r string, exists bool) {
	v := m.model_no
	if v == nil {
		return
	}
	return *v, true
}

// OldModelNo returns the old "model_no" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldModelNo(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelNo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelNo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelNo: %w", err)
	}
	return oldValue.ModelNo, nil
}

// ClearModelNo clears the value of the "model_no" field.
func (m *DocumentMutation) ClearModelNo() {
	m.model_no = nil
	m.clearedFields[document.FieldModelNo] = struct{}{}
}

// ModelNoCleared returns if the "model_no" field was cleared in this mutation.
func (m *DocumentMutation) ModelNoCleared() bool {
	_, ok := m.clearedFields[document.FieldModelNo]
	return ok
}

// ResetModelNo resets all changes to the "model_no" field.
func (m *DocumentMutation) ResetModelNo() {
	m.model_no = nil
	delete(m.clearedFields, document.FieldModelNo)
}

// AddPageIDs adds the "pages" edge to the Page entity by ids.
func (m *DocumentMutation) AddPageIDs(ids ...int) {
	if m.pages == nil {
		m.pages = make(map[int]struct{})
	}
	for i := range ids {
		m.pages[ids[i]] = struct{}{}
	}
}

// ClearPages clears the "pages" edge to the Page entity.
func (m *DocumentMutation) ClearPages() {
	m.clearedpages = true
}

// PagesCleared reports if the "pages" edge to the Page entity was cleared.
func (m *DocumentMutation) PagesCleared() bool {
	return m.clearedpages
}

// RemovePageIDs removes the "pages" edge to the Page entity by IDs.
func (m *DocumentMutation) RemovePageIDs(ids ...int) {
	if m.removedpages == nil {
		m.removedpages = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.pages, ids[i])
		m.removedpages[ids[i]] = struct{}{}
	}
}

// RemovedPages returns the removed IDs of the "pages" edge to the Page entity.
func (m *DocumentMutation) RemovedPagesIDs() (ids []int) {
	for id := range m.removedpages {
		ids = append(ids, id)
	}
	return
}

// PagesIDs returns the "pages" edge IDs in the mutation.
func (m *DocumentMutation) PagesIDs() (ids []int) {
	for id := range m.pages {
		ids = append(ids, id)
	}
	return
}

// ResetPages resets all changes to the "pages" edge.
func (m *DocumentMutation) ResetPages() {
	m.pages = nil
	m.clearedpages = false
	m.removedpages = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m._path != nil {
		fields = append(fields, document.FieldPath)
	}
	if m.filename != nil {
		fields = append(fields, document.FieldFilename)
	}
	if m.title != nil {
		fields = append(fields, document.FieldTitle)
	}
	if m.model_no != nil {
		fields = append(fields, document.FieldModelNo)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldPath:
		return m.Path()
	case document.FieldFilename:
		return m.Filename()
	case document.FieldTitle:
		return m.Title()
	case document.FieldModelNo:
		return m.ModelNo()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldPath:
		return m.OldPath(ctx)
	case document.FieldFilename:
		return m.OldFilename(ctx)
	case document.FieldTitle:
		return m.OldTitle(ctx)
	case document.FieldModelNo:
		return m.OldModelNo(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPath(v)
		return nil
	case document.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case document.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case document.FieldModelNo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelNo(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldTitle) {
		fields = append(fields, document.FieldTitle)
	}
	if m.FieldCleared(document.FieldModelNo) {
		fields = append(fields, document.FieldModelNo)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldTitle:
		m.ClearTitle()
		return nil
	case document.FieldModelNo:
		m.ClearModelNo()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldPath:
		m.ResetPath()
		return nil
	case document.FieldFilename:
		m.ResetFilename()
		return nil
	case document.FieldTitle:
		m.ResetTitle()
		return nil
	case document.FieldModelNo:
		m.ResetModelNo()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.pages != nil {
		edges = append(edges, document.EdgePages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgePages:
		ids := make([]ent.Value, 0, len(m.pages))
		for id := range m.pages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedpages != nil {
		edges = append(edges, document.EdgePages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgePages:
		ids := make([]ent.Value, 0, len(m.removedpages))
		for id := range m.removedpages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpages {
		edges = append(edges, document.EdgePages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgePages:
		return m.clearedpages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgePages:
		m.ResetPages()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// PageMutation represents an operation that mutates the Page nodes in the graph.
type PageMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	page_no               *int
	addpage_no            *int
	thumb_path            *string
	text                  *string
	key_text              *string
	left_titles_json      *string
	left_nr               *string
	left_scale            *string
	left_confidence       *float32
	addleft_confidence    *float32
	left_source           *string
	left_titles_json_v2   *string
	left_nr_v2            *string
	left_scale_v2         *string
	left_confidence_v2    *float32
	addleft_confidence_v2 *float32
	left_source_v2        *string
	left_search_text_v2   *string
	clearedFields         map[string]struct{}
	document              *int
	cleareddocument       bool
	done                  bool
	oldValue              func(context.Context) (*Page, error)
	predicates            []predicate.Page
}

var _ ent.Mutation = (*PageMutation)(nil)

// pageOption allows management of the mutation configuration using functional options.
type pageOption func(*PageMutation)

// newPageMutation creates new mutation for the Page entity.
func newPageMutation(c config, op Op, opts ...pageOption) *PageMutation {
	m := &PageMutation{
		config:        c,
		op:            op,
		typ:           TypePage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPageID sets the ID field of the mutation.
func withPageID(id int) pageOption {
	return func(m *PageMutation) {
		var (
			err   error
			once  sync.Once
			value *Page
		)
		m.oldValue = func(ctx context.Context) (*Page, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Page.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPage sets the old Page of the mutation.
func withPage(node *Page) pageOption {
	return func(m *PageMutation) {
		m.oldValue = func(context.Context) (*Page, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PageMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PageMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Page.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *PageMutation) SetDocumentID(i int) {
	m.document = &i
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *PageMutation) DocumentID() (r int, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldDocumentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *PageMutation) ResetDocumentID() {
	m.document = nil
}

// SetPageNo sets the "page_no" field.
func (m *PageMutation) SetPageNo(i int) {
	m.page_no = &i
	m.addpage_no = nil
}

// PageNo returns the value of the "page_no" field in the mutation.
func (m *PageMutation) PageNo() (r int, exists bool) {
	v := m.page_no
	if v == nil {
		return
	}
	return *v, true
}

// OldPageNo returns the old "page_no" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldPageNo(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageNo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageNo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageNo: %w", err)
	}
	return oldValue.PageNo, nil
}

// AddPageNo adds i to the "page_no" field.
func (m *PageMutation) AddPageNo(i int) {
	if m.addpage_no != nil {
		*m.addpage_no += i
	} else {
		m.addpage_no = &i
	}
}

// AddedPageNo returns the value that was added to the "page_no" field in this mutation.
func (m *PageMutation) AddedPageNo() (r int, exists bool) {
	v := m.addpage_no
	if v == nil {
		return
	}
	return *v, true
}

// ResetPageNo resets all changes to the "page_no" field.
func (m *PageMutation) ResetPageNo() {
	m.page_no = nil
	m.addpage_no = nil
}

// SetThumbPath sets the "thumb_path" field.
func (m *PageMutation) SetThumbPath(s string) {
	m.thumb_path = &s
}

// ThumbPath returns the value of the "thumb_path" field in the mutation.
func (m *PageMutation) ThumbPath() (r string, exists bool) {
	v := m.thumb_path
	if v == nil {
		return
	}
	return *v, true
}

// OldThumbPath returns the old "thumb_path" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldThumbPath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThumbPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThumbPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThumbPath: %w", err)
	}
	return oldValue.ThumbPath, nil
}

// ClearThumbPath clears the value of the "thumb_path" field.
func (m *PageMutation) ClearThumbPath() {
	m.thumb_path = nil
	m.clearedFields[page.FieldThumbPath] = struct{}{}
}

// ThumbPathCleared returns if the "thumb_path" field was cleared in this mutation.
func (m *PageMutation) ThumbPathCleared() bool {
	_, ok := m.clearedFields[page.FieldThumbPath]
	return ok
}

// ResetThumbPath resets all changes to the "thumb_path" field.
func (m *PageMutation) ResetThumbPath() {
	m.thumb_path = nil
	delete(m.clearedFields, page.FieldThumbPath)
}

// SetText sets the "text" field.
func (m *PageMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *PageMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ClearText clears the value of the "text" field.
func (m *PageMutation) ClearText() {
	m.text = nil
	m.clearedFields[page.FieldText] = struct{}{}
}

// TextCleared returns if the "text" field was cleared in this mutation.
func (m *PageMutation) TextCleared() bool {
	_, ok := m.clearedFields[page.FieldText]
	return ok
}

// ResetText resets all changes to the "text" field.
func (m *PageMutation) ResetText() {
	m.text = nil
	delete(m.clearedFields, page.FieldText)
}

// SetKeyText sets the "key_text" field.
func (m *PageMutation) SetKeyText(s string) {
	m.key_text = &s
}

// KeyText returns the value of the "key_text" field in the mutation.
func (m *PageMutation) KeyText() (r string, exists bool) {
	v := m.key_text
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyText returns the old "key_text" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldKeyText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyText: %w", err)
	}
	return oldValue.KeyText, nil
}

// ClearKeyText clears the value of the "key_text" field.
func (m *PageMutation) ClearKeyText() {
	m.key_text = nil
	m.clearedFields[page.FieldKeyText] = struct{}{}
}

// KeyTextCleared returns if the "key_text" field was cleared in this mutation.
func (m *PageMutation) KeyTextCleared() bool {
	_, ok := m.clearedFields[page.FieldKeyText]
	return ok
}

// ResetKeyText resets all changes to the "key_text" field.
func (m *PageMutation) ResetKeyText() {
	m.key_text = nil
	delete(m.clearedFields, page.FieldKeyText)
}

// SetLeftTitlesJSON sets the "left_titles_json" field.
func (m *PageMutation) SetLeftTitlesJSON(s string) {
	m.left_titles_json = &s
}

// LeftTitlesJSON returns the value of the "left_titles_json" field in the mutation.
func (m *PageMutation) LeftTitlesJSON() (r string, exists bool) {
	v := m.left_titles_json
	if v == nil {
		return
	}
	return *v, true
}

// OldLeftTitlesJSON returns the old "left_titles_json" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldLeftTitlesJSON(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeftTitlesJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeftTitlesJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeftTitlesJSON: %w", err)
	}
	return oldValue.LeftTitlesJSON, nil
}

// ClearLeftTitlesJSON clears the value of the "left_titles_json" field.
func (m *PageMutation) ClearLeftTitlesJSON() {
	m.left_titles_json = nil
	m.clearedFields[page.FieldLeftTitlesJSON] = struct{}{}
}

// LeftTitlesJSONCleared returns if the "left_titles_json" field was cleared in this mutation.
func (m *PageMutation) LeftTitlesJSONCleared() bool {
	_, ok := m.clearedFields[page.FieldLeftTitlesJSON]
	return ok
}

// ResetLeftTitlesJSON resets all changes to the "left_titles_json" field.
func (m *PageMutation) ResetLeftTitlesJSON() {
	m.left_titles_json = nil
	delete(m.clearedFields, page.FieldLeftTitlesJSON)
}

// SetLeftNr sets the "left_nr" field.
func (m *PageMutation) SetLeftNr(s string) {
	m.left_nr = &s
}

// LeftNr returns the value of the "left_nr" field in the mutation.
func (m *PageMutation) LeftNr() (r string, exists bool) {
	v := m.left_nr
	if v == nil {
		return
	}
	return *v, true
}

// OldLeftNr returns the old "left_nr" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldLeftNr(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeftNr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeftNr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeftNr: %w", err)
	}
	return oldValue.LeftNr, nil
}

// ClearLeftNr clears the value of the "left_nr" field.
func (m *PageMutation) ClearLeftNr() {
	m.left_nr = nil
	m.clearedFields[page.FieldLeftNr] = struct{}{}
}

// LeftNrCleared returns if the "left_nr" field was cleared in this mutation.
func (m *PageMutation) LeftNrCleared() bool {
	_, ok := m.clearedFields[page.FieldLeftNr]
	return ok
}

// ResetLeftNr resets all changes to the "left_nr" field.
func (m *PageMutation) ResetLeftNr() {
	m.left_nr = nil
	delete(m.clearedFields, page.FieldLeftNr)
}

// SetLeftScale sets the "left_scale" field.
func (m *PageMutation) SetLeftScale(s string) {
	m.left_scale = &s
}

// LeftScale returns the value of the "left_scale" field in the mutation.
func (m *PageMutation) LeftScale() (r string, exists bool) {
	v := m.left_scale
	if v == nil {
		return
	}
	return *v, true
}

// OldLeftScale returns the old "left_scale" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldLeftScale(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeftScale is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeftScale requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeftScale: %w", err)
	}
	return oldValue.LeftScale, nil
}

// ClearLeftScale clears the value of the "left_scale" field.
func (m *PageMutation) ClearLeftScale() {
	m.left_scale = nil
	m.clearedFields[page.FieldLeftScale] = struct{}{}
}

// LeftScaleCleared returns if the "left_scale" field was cleared in this mutation.
func (m *PageMutation) LeftScaleCleared() bool {
	_, ok := m.clearedFields[page.FieldLeftScale]
	return ok
}

// ResetLeftScale resets all changes to the "left_scale" field.
func (m *PageMutation) ResetLeftScale() {
	m.left_scale = nil
	delete(m.clearedFields, page.FieldLeftScale)
}

// SetLeftConfidence sets the "left_confidence" field.
func (m *PageMutation) SetLeftConfidence(f float32) {
	m.left_confidence = &f
	m.addleft_confidence = nil
}

// LeftConfidence returns the value of the "left_confidence" field in the mutation.
func (m *PageMutation) LeftConfidence() (r float32, exists bool) {
	v := m.left_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldLeftConfidence returns the old "left_confidence" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldLeftConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeftConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeftConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeftConfidence: %w", err)
	}
	return oldValue.LeftConfidence, nil
}

// AddLeftConfidence adds f to the "left_confidence" field.
func (m *PageMutation) AddLeftConfidence(f float32) {
	if m.addleft_confidence != nil {
		*m.addleft_confidence += f
	} else {
		m.addleft_confidence = &f
	}
}

// AddedLeftConfidence returns the value that was added to the "left_confidence" field in this mutation.
func (m *PageMutation) AddedLeftConfidence() (r float32, exists bool) {
	v := m.addleft_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearLeftConfidence clears the value of the "left_confidence" field.
func (m *PageMutation) ClearLeftConfidence() {
	m.left_confidence = nil
	m.addleft_confidence = nil
	m.clearedFields[page.FieldLeftConfidence] = struct{}{}
}

// LeftConfidenceCleared returns if the "left_confidence" field was cleared in this mutation.
func (m *PageMutation) LeftConfidenceCleared() bool {
	_, ok := m.clearedFields[page.FieldLeftConfidence]
	return ok
}

// ResetLeftConfidence resets all changes to the "left_confidence" field.
func (m *PageMutation) ResetLeftConfidence() {
	m.left_confidence = nil
	m.addleft_confidence = nil
	delete(m.clearedFields, page.FieldLeftConfidence)
}

// SetLeftSource sets the "left_source" field.
func (m *PageMutation) SetLeftSource(s string) {
	m.left_source = &s
}

// LeftSource returns the value of the "left_source" field in the mutation.
func (m *PageMutation) LeftSource() (r string, exists bool) {
	v := m.left_source
	if v == nil {
		return
	}
	return *v, true
}

// OldLeftSource returns the old "left_source" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldLeftSource(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeftSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeftSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeftSource: %w", err)
	}
	return oldValue.LeftSource, nil
}

// ClearLeftSource clears the value of the "left_source" field.
func (m *PageMutation) ClearLeftSource() {
	m.left_source = nil
	m.clearedFields[page.FieldLeftSource] = struct{}{}
}

// LeftSourceCleared returns if the "left_source" field was cleared in this mutation.
func (m *PageMutation) LeftSourceCleared() bool {
	_, ok := m.clearedFields[page.FieldLeftSource]
	return ok
}

// ResetLeftSource resets all changes to the "left_source" field.
func (m *PageMutation) ResetLeftSource() {
	m.left_source = nil
	delete(m.clearedFields, page.FieldLeftSource)
}

// SetLeftTitlesJSONV2 sets the "left_titles_json_v2" field.
func (m *PageMutation) SetLeftTitlesJSONV2(s string) {
	m.left_titles_json_v2 = &s
}

// LeftTitlesJSONV2 returns the value of the "left_titles_json_v2" field in the mutation.
func (m *PageMutation) LeftTitlesJSONV2() (r string, exists bool) {
	v := m.left_titles_json_v2
	if v == nil {
		return
	}
	return *v, true
}

// OldLeftTitlesJSONV2 returns the old "left_titles_json_v2" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldLeftTitlesJSONV2(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeftTitlesJSONV2 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeftTitlesJSONV2 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeftTitlesJSONV2: %w", err)
	}
	return oldValue.LeftTitlesJSONV2, nil
}

// ClearLeftTitlesJSONV2 clears the value of the "left_titles_json_v2" field.
func (m *PageMutation) ClearLeftTitlesJSONV2() {
	m.left_titles_json_v2 = nil
	m.clearedFields[page.FieldLeftTitlesJSONV2] = struct{}{}
}

// LeftTitlesJSONV2Cleared returns if the "left_titles_json_v2" field was cleared in this mutation.
func (m *PageMutation) LeftTitlesJSONV2Cleared() bool {
	_, ok := m.clearedFields[page.FieldLeftTitlesJSONV2]
	return ok
}

// ResetLeftTitlesJSONV2 resets all changes to the "left_titles_json_v2" field.
func (m *PageMutation) ResetLeftTitlesJSONV2() {
	m.left_titles_json_v2 = nil
	delete(m.clearedFields, page.FieldLeftTitlesJSONV2)
}

// SetLeftNrV2 sets the "left_nr_v2" field.
func (m *PageMutation) SetLeftNrV2(s string) {
	m.left_nr_v2 = &s
}

// LeftNrV2 returns the value of the "left_nr_v2" field in the mutation.
func (m *PageMutation) LeftNrV2() (r string, exists bool) {
	v := m.left_nr_v2
	if v == nil {
		return
	}
	return *v, true
}

// OldLeftNrV2 returns the old "left_nr_v2" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldLeftNrV2(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeftNrV2 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeftNrV2 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeftNrV2: %w", err)
	}
	return oldValue.LeftNrV2, nil
}

// ClearLeftNrV2 clears the value of the "left_nr_v2" field.
func (m *PageMutation) ClearLeftNrV2() {
	m.left_nr_v2 = nil
	m.clearedFields[page.FieldLeftNrV2] = struct{}{}
}

// LeftNrV2Cleared returns if the "left_nr_v2" field was cleared in this mutation.
func (m *PageMutation) LeftNrV2Cleared() bool {
	_, ok := m.clearedFields[page.FieldLeftNrV2]
	return ok
}

// ResetLeftNrV2 resets all changes to the "left_nr_v2" field.
func (m *PageMutation) ResetLeftNrV2() {
	m.left_nr_v2 = nil
	delete(m.clearedFields, page.FieldLeftNrV2)
}

// SetLeftScaleV2 sets the "left_scale_v2" field.
func (m *PageMutation) SetLeftScaleV2(s string) {
	m.left_scale_v2 = &s
}

// LeftScaleV2 returns the value of the "left_scale_v2" field in the mutation.
func (m *PageMutation) LeftScaleV2() (r string, exists bool) {
	v := m.left_scale_v2
	if v == nil {
		return
	}
	return *v, true
}

// OldLeftScaleV2 returns the old "left_scale_v2" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldLeftScaleV2(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeftScaleV2 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeftScaleV2 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeftScaleV2: %w", err)
	}
	return oldValue.LeftScaleV2, nil
}

// ClearLeftScaleV2 clears the value of the "left_scale_v2" field.
func (m *PageMutation) ClearLeftScaleV2() {
	m.left_scale_v2 = nil
	m.clearedFields[page.FieldLeftScaleV2] = struct{}{}
}

// LeftScaleV2Cleared returns if the "left_scale_v2" field was cleared in this mutation.
func (m *PageMutation) LeftScaleV2Cleared() bool {
	_, ok := m.clearedFields[page.FieldLeftScaleV2]
	return ok
}

// ResetLeftScaleV2 resets all changes to the "left_scale_v2" field.
func (m *PageMutation) ResetLeftScaleV2() {
	m.left_scale_v2 = nil
	delete(m.clearedFields, page.FieldLeftScaleV2)
}

// SetLeftConfidenceV2 sets the "left_confidence_v2" field.
func (m *PageMutation) SetLeftConfidenceV2(f float32) {
	m.left_confidence_v2 = &f
	m.addleft_confidence_v2 = nil
}

// LeftConfidenceV2 returns the value of the "left_confidence_v2" field in the mutation.
func (m *PageMutation) LeftConfidenceV2() (r float32, exists bool) {
	v := m.left_confidence_v2
	if v == nil {
		return
	}
	return *v, true
}

// OldLeftConfidenceV2 returns the old "left_confidence_v2" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldLeftConfidenceV2(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeftConfidenceV2 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeftConfidenceV2 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeftConfidenceV2: %w", err)
	}
	return oldValue.LeftConfidenceV2, nil
}

// AddLeftConfidenceV2 adds f to the "left_confidence_v2" field.
func (m *PageMutation) AddLeftConfidenceV2(f float32) {
	if m.addleft_confidence_v2 != nil {
		*m.addleft_confidence_v2 += f
	} else {
		m.addleft_confidence_v2 = &f
	}
}

// AddedLeftConfidenceV2 returns the value that was added to the "left_confidence_v2" field in this mutation.
func (m *PageMutation) AddedLeftConfidenceV2() (r float32, exists bool) {
	v := m.addleft_confidence_v2
	if v == nil {
		return
	}
	return *v, true
}

// ClearLeftConfidenceV2 clears the value of the "left_confidence_v2" field.
func (m *PageMutation) ClearLeftConfidenceV2() {
	m.left_confidence_v2 = nil
	m.addleft_confidence_v2 = nil
	m.clearedFields[page.FieldLeftConfidenceV2] = struct{}{}
}

// LeftConfidenceV2Cleared returns if the "left_confidence_v2" field was cleared in this mutation.
func (m *PageMutation) LeftConfidenceV2Cleared() bool {
	_, ok := m.clearedFields[page.FieldLeftConfidenceV2]
	return ok
}

// ResetLeftConfidenceV2 resets all changes to the "left_confidence_v2" field.
func (m *PageMutation) ResetLeftConfidenceV2() {
	m.left_confidence_v2 = nil
	m.addleft_confidence_v2 = nil
	delete(m.clearedFields, page.FieldLeftConfidenceV2)
}

// SetLeftSourceV2 sets the "left_source_v2" field.
func (m *PageMutation) SetLeftSourceV2(s string) {
	m.left_source_v2 = &s
}

// LeftSourceV2 returns the value of the "left_source_v2" field in the mutation.
func (m *PageMutation) LeftSourceV2() (r string, exists bool) {
	v := m.left_source_v2
	if v == nil {
		return
	}
	return *v, true
}

// OldLeftSourceV2 returns the old "left_source_v2" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldLeftSourceV2(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeftSourceV2 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeftSourceV2 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeftSourceV2: %w", err)
	}
	return oldValue.LeftSourceV2, nil
}

// ClearLeftSourceV2 clears the value of the "left_source_v2" field.
func (m *PageMutation) ClearLeftSourceV2() {
	m.left_source_v2 = nil
	m.clearedFields[page.FieldLeftSourceV2] = struct{}{}
}

// LeftSourceV2Cleared returns if the "left_source_v2" field was cleared in this mutation.
func (m *PageMutation) LeftSourceV2Cleared() bool {
	_, ok := m.clearedFields[page.FieldLeftSourceV2]
	return ok
}

// ResetLeftSourceV2 resets all changes to the "left_source_v2" field.
func (m *PageMutation) ResetLeftSourceV2() {
	m.left_source_v2 = nil
	delete(m.clearedFields, page.FieldLeftSourceV2)
}

// SetLeftSearchTextV2 sets the "left_search_text_v2" field.
func (m *PageMutation) SetLeftSearchTextV2(s string) {
	m.left_search_text_v2 = &s
}

// LeftSearchTextV2 returns the value of the "left_search_text_v2" field in the mutation.
func (m *PageMutation) LeftSearchTextV2() (r string, exists bool) {
	v := m.left_search_text_v2
	if v == nil {
		return
	}
	return *v, true
}

// OldLeftSearchTextV2 returns the old "left_search_text_v2" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldLeftSearchTextV2(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeftSearchTextV2 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeftSearchTextV2 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeftSearchTextV2: %w", err)
	}
	return oldValue.LeftSearchTextV2, nil
}

// ClearLeftSearchTextV2 clears the value of the "left_search_text_v2" field.
func (m *PageMutation) ClearLeftSearchTextV2() {
	m.left_search_text_v2 = nil
	m.clearedFields[page.FieldLeftSearchTextV2] = struct{}{}
}

// LeftSearchTextV2Cleared returns if the "left_search_text_v2" field was cleared in this mutation.
func (m *PageMutation) LeftSearchTextV2Cleared() bool {
	_, ok := m.clearedFields[page.FieldLeftSearchTextV2]
	return ok
}

// ResetLeftSearchTextV2 resets all changes to the "left_search_text_v2" field.
func (m *PageMutation) ResetLeftSearchTextV2() {
	m.left_search_text_v2 = nil
	delete(m.clearedFields, page.FieldLeftSearchTextV2)
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *PageMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[page.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *PageMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *PageMutation) DocumentIDs() (ids []int) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *PageMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the PageMutation builder.
func (m *PageMutation) Where(ps ...predicate.Page) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Page, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Page).
func (m *PageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PageMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.document != nil {
		fields = append(fields, page.FieldDocumentID)
	}
	if m.page_no != nil {
		fields = append(fields, page.FieldPageNo)
	}
	if m.thumb_path != nil {
		fields = append(fields, page.FieldThumbPath)
	}
	if m.text != nil {
		fields = append(fields, page.FieldText)
	}
	if m.key_text != nil {
		fields = append(fields, page.FieldKeyText)
	}
	if m.left_titles_json != nil {
		fields = append(fields, page.FieldLeftTitlesJSON)
	}
	if m.left_nr != nil {
		fields = append(fields, page.FieldLeftNr)
	}
	if m.left_scale != nil {
		fields = append(fields, page.FieldLeftScale)
	}
	if m.left_confidence != nil {
		fields = append(fields, page.FieldLeftConfidence)
	}
	if m.left_source != nil {
		fields = append(fields, page.FieldLeftSource)
	}
	if m.left_titles_json_v2 != nil {
		fields = append(fields, page.FieldLeftTitlesJSONV2)
	}
	if m.left_nr_v2 != nil {
		fields = append(fields, page.FieldLeftNrV2)
	}
	if m.left_scale_v2 != nil {
		fields = append(fields, page.FieldLeftScaleV2)
	}
	if m.left_confidence_v2 != nil {
		fields = append(fields, page.FieldLeftConfidenceV2)
	}
	if m.left_source_v2 != nil {
		fields = append(fields, page.FieldLeftSourceV2)
	}
	if m.left_search_text_v2 != nil {
		fields = append(fields, page.FieldLeftSearchTextV2)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case page.FieldDocumentID:
		return m.DocumentID()
	case page.FieldPageNo:
		return m.PageNo()
	case page.FieldThumbPath:
		return m.ThumbPath()
	case page.FieldText:
		return m.Text()
	case page.FieldKeyText:
		return m.KeyText()
	case page.FieldLeftTitlesJSON:
		return m.LeftTitlesJSON()
	case page.FieldLeftNr:
		return m.LeftNr()
	case page.FieldLeftScale:
		return m.LeftScale()
	case page.FieldLeftConfidence:
		return m.LeftConfidence()
	case page.FieldLeftSource:
		return m.LeftSource()
	case page.FieldLeftTitlesJSONV2:
		return m.LeftTitlesJSONV2()
	case page.FieldLeftNrV2:
		return m.LeftNrV2()
	case page.FieldLeftScaleV2:
		return m.LeftScaleV2()
	case page.FieldLeftConfidenceV2:
		return m.LeftConfidenceV2()
	case page.FieldLeftSourceV2:
		return m.LeftSourceV2()
	case page.FieldLeftSearchTextV2:
		return m.LeftSearchTextV2()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case page.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case page.FieldPageNo:
		return m.OldPageNo(ctx)
	case page.FieldThumbPath:
		return m.OldThumbPath(ctx)
	case page.FieldText:
		return m.OldText(ctx)
	case page.FieldKeyText:
		return m.OldKeyText(ctx)
	case page.FieldLeftTitlesJSON:
		return m.OldLeftTitlesJSON(ctx)
	case page.FieldLeftNr:
		return m.OldLeftNr(ctx)
	case page.FieldLeftScale:
		return m.OldLeftScale(ctx)
	case page.FieldLeftConfidence:
		return m.OldLeftConfidence(ctx)
	case page.FieldLeftSource:
		return m.OldLeftSource(ctx)
	case page.FieldLeftTitlesJSONV2:
		return m.OldLeftTitlesJSONV2(ctx)
	case page.FieldLeftNrV2:
		return m.OldLeftNrV2(ctx)
	case page.FieldLeftScaleV2:
		return m.OldLeftScaleV2(ctx)
	case page.FieldLeftConfidenceV2:
		return m.OldLeftConfidenceV2(ctx)
	case page.FieldLeftSourceV2:
		return m.OldLeftSourceV2(ctx)
	case page.FieldLeftSearchTextV2:
		return m.OldLeftSearchTextV2(ctx)
	}
	return nil, fmt.Errorf("unknown Page field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case page.FieldDocumentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case page.FieldPageNo:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageNo(v)
		return nil
	case page.FieldThumbPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThumbPath(v)
		return nil
	case page.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case page.FieldKeyText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyText(v)
		return nil
	case page.FieldLeftTitlesJSON:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeftTitlesJSON(v)
		return nil
	case page.FieldLeftNr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeftNr(v)
		return nil
	case page.FieldLeftScale:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeftScale(v)
		return nil
	case page.FieldLeftConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeftConfidence(v)
		return nil
	case page.FieldLeftSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeftSource(v)
		return nil
	case page.FieldLeftTitlesJSONV2:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeftTitlesJSONV2(v)
		return nil
	case page.FieldLeftNrV2:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeftNrV2(v)
		return nil
	case page.FieldLeftScaleV2:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeftScaleV2(v)
		return nil
	case page.FieldLeftConfidenceV2:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeftConfidenceV2(v)
		return nil
	case page.FieldLeftSourceV2:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeftSourceV2(v)
		return nil
	case page.FieldLeftSearchTextV2:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeftSearchTextV2(v)
		return nil
	}
	return fmt.Errorf("unknown Page field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PageMutation) AddedFields() []string {
	var fields []string
	if m.addpage_no != nil {
		fields = append(fields, page.FieldPageNo)
	}
	if m.addleft_confidence != nil {
		fields = append(fields, page.FieldLeftConfidence)
	}
	if m.addleft_confidence_v2 != nil {
		fields = append(fields, page.FieldLeftConfidenceV2)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case page.FieldPageNo:
		return m.AddedPageNo()
	case page.FieldLeftConfidence:
		return m.AddedLeftConfidence()
	case page.FieldLeftConfidenceV2:
		return m.AddedLeftConfidenceV2()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case page.FieldPageNo:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageNo(v)
		return nil
	case page.FieldLeftConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLeftConfidence(v)
		return nil
	case page.FieldLeftConfidenceV2:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLeftConfidenceV2(v)
		return nil
	}
	return fmt.Errorf("unknown Page numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(page.FieldThumbPath) {
		fields = append(fields, page.FieldThumbPath)
	}
	if m.FieldCleared(page.FieldText) {
		fields = append(fields, page.FieldText)
	}
	if m.FieldCleared(page.FieldKeyText) {
		fields = append(fields, page.FieldKeyText)
	}
	if m.FieldCleared(page.FieldLeftTitlesJSON) {
		fields = append(fields, page.FieldLeftTitlesJSON)
	}
	if m.FieldCleared(page.FieldLeftNr) {
		fields = append(fields, page.FieldLeftNr)
	}
	if m.FieldCleared(page.FieldLeftScale) {
		fields = append(fields, page.FieldLeftScale)
	}
	if m.FieldCleared(page.FieldLeftConfidence) {
		fields = append(fields, page.FieldLeftConfidence)
	}
	if m.FieldCleared(page.FieldLeftSource) {
		fields = append(fields, page.FieldLeftSource)
	}
	if m.FieldCleared(page.FieldLeftTitlesJSONV2) {
		fields = append(fields, page.FieldLeftTitlesJSONV2)
	}
	if m.FieldCleared(page.FieldLeftNrV2) {
		fields = append(fields, page.FieldLeftNrV2)
	}
	if m.FieldCleared(page.FieldLeftScaleV2) {
		fields = append(fields, page.FieldLeftScaleV2)
	}
	if m.FieldCleared(page.FieldLeftConfidenceV2) {
		fields = append(fields, page.FieldLeftConfidenceV2)
	}
	if m.FieldCleared(page.FieldLeftSourceV2) {
		fields = append(fields, page.FieldLeftSourceV2)
	}
	if m.FieldCleared(page.FieldLeftSearchTextV2) {
		fields = append(fields, page.FieldLeftSearchTextV2)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PageMutation) ClearField(name string) error {
	switch name {
	case page.FieldThumbPath:
		m.ClearThumbPath()
		return nil
	case page.FieldText:
		m.ClearText()
		return nil
	case page.FieldKeyText:
		m.ClearKeyText()
		return nil
	case page.FieldLeftTitlesJSON:
		m.ClearLeftTitlesJSON()
		return nil
	case page.FieldLeftNr:
		m.ClearLeftNr()
		return nil
	case page.FieldLeftScale:
		m.ClearLeftScale()
		return nil
	case page.FieldLeftConfidence:
		m.ClearLeftConfidence()
		return nil
	case page.FieldLeftSource:
		m.ClearLeftSource()
		return nil
	case page.FieldLeftTitlesJSONV2:
		m.ClearLeftTitlesJSONV2()
		return nil
	case page.FieldLeftNrV2:
		m.ClearLeftNrV2()
		return nil
	case page.FieldLeftScaleV2:
		m.ClearLeftScaleV2()
		return nil
	case page.FieldLeftConfidenceV2:
		m.ClearLeftConfidenceV2()
		return nil
	case page.FieldLeftSourceV2:
		m.ClearLeftSourceV2()
		return nil
	case page.FieldLeftSearchTextV2:
		m.ClearLeftSearchTextV2()
		return nil
	}
	return fmt.Errorf("unknown Page nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PageMutation) ResetField(name string) error {
	switch name {
	case page.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case page.FieldPageNo:
		m.ResetPageNo()
		return nil
	case page.FieldThumbPath:
		m.ResetThumbPath()
		return nil
	case page.FieldText:
		m.ResetText()
		return nil
	case page.FieldKeyText:
		m.ResetKeyText()
		return nil
	case page.FieldLeftTitlesJSON:
		m.ResetLeftTitlesJSON()
		return nil
	case page.FieldLeftNr:
		m.ResetLeftNr()
		return nil
	case page.FieldLeftScale:
		m.ResetLeftScale()
		return nil
	case page.FieldLeftConfidence:
		m.ResetLeftConfidence()
		return nil
	case page.FieldLeftSource:
		m.ResetLeftSource()
		return nil
	case page.FieldLeftTitlesJSONV2:
		m.ResetLeftTitlesJSONV2()
		return nil
	case page.FieldLeftNrV2:
		m.ResetLeftNrV2()
		return nil
	case page.FieldLeftScaleV2:
		m.ResetLeftScaleV2()
		return nil
	case page.FieldLeftConfidenceV2:
		m.ResetLeftConfidenceV2()
		return nil
	case page.FieldLeftSourceV2:
		m.ResetLeftSourceV2()
		return nil
	case page.FieldLeftSearchTextV2:
		m.ResetLeftSearchTextV2()
		return nil
	}
	return fmt.Errorf("unknown Page field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, page.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case page.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, page.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PageMutation) EdgeCleared(name string) bool {
	switch name {
	case page.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PageMutation) ClearEdge(name string) error {
	switch name {
	case page.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown Page unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PageMutation) ResetEdge(name string) error {
	switch name {
	case page.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown Page edge %s", name)
}
