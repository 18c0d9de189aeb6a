// Code generated by ent, DO NOT EDIT.

package ent

import (
	"github.com/cbruhn/drawing-archive/db/ent/schema"
	"github.com/cbruhn/drawing-archive/gen/ent/document"
	"github.com/cbruhn/drawing-archive/gen/ent/page"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescPath is the schema descriptor for path field.
	documentDescPath := documentFields[0].Descriptor()
	// document.PathValidator is a validator for the "path" field. It is called by the builders before save.
	document.PathValidator = documentDescPath.Validators[0].(func(string) error)
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[1].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	pageFields := schema.Page{}.Fields()
	_ = pageFields
	// pageDescPageNo is the schema descriptor for page_no field.
	pageDescPageNo := pageFields[1].Descriptor()
	// page.PageNoValidator is a validator for the "page_no" field. It is called by the builders before save.
	page.PageNoValidator = pageDescPageNo.Validators[0].(func(int) error)
}
