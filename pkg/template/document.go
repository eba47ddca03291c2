// Copyright 2026 The Pklformation Authors.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"fmt"

	"github.com/pklformation/pklformation/pkg/orderedmap"
)

// Document is the in-memory tree produced by evaluating a Pkl source.
// Values in the tree are one of: string, int64, float64, bool, nil,
// []interface{}, or *orderedmap.Map. A Document is built fresh per
// invocation and is discarded once emitted; nothing persists between runs.
type Document struct {
	Value interface{}
}

// NewDocument wraps an already ordered value tree.
func NewDocument(value interface{}) *Document {
	return &Document{Value: value}
}

// Root returns the top-level mapping of the document, failing when the
// document root is not a mapping. CloudFormation templates are always
// mappings at the top level.
func (d *Document) Root() (*orderedmap.Map, error) {
	root, ok := d.Value.(*orderedmap.Map)
	if !ok {
		return nil, fmt.Errorf("Expected document root to be a mapping, but was %T", d.Value)
	}
	return root, nil
}

// Template is a Document carrying a CloudFormation template. Only its
// structural shape is known here; semantic validity is AWS's concern.
type Template struct {
	doc *Document
}

// NewTemplate checks that doc can serve as a CloudFormation template
// (root is a mapping) and wraps it.
func NewTemplate(doc *Document) (Template, error) {
	_, err := doc.Root()
	if err != nil {
		return Template{}, err
	}
	return Template{doc}, nil
}

func (t Template) Document() *Document { return t.doc }

// Description returns the template's top-level Description, when present
// and a string.
func (t Template) Description() (string, bool) {
	root, err := t.doc.Root()
	if err != nil {
		return "", false
	}
	val, found := root.Get("Description")
	if !found {
		return "", false
	}
	desc, ok := val.(string)
	return desc, ok
}

// Resources returns the template's top-level Resources mapping, when
// present. A template without resources is unusual but not an error here.
func (t Template) Resources() (*orderedmap.Map, bool) {
	return t.section("Resources")
}

// Parameters returns the template's top-level Parameters mapping, when
// present.
func (t Template) Parameters() (*orderedmap.Map, bool) {
	return t.section("Parameters")
}

// Outputs returns the template's top-level Outputs mapping, when present.
func (t Template) Outputs() (*orderedmap.Map, bool) {
	return t.section("Outputs")
}

func (t Template) section(key string) (*orderedmap.Map, bool) {
	root, err := t.doc.Root()
	if err != nil {
		return nil, false
	}
	val, found := root.Get(key)
	if !found {
		return nil, false
	}
	section, ok := val.(*orderedmap.Map)
	return section, ok
}
