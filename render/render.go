/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package render is the module's single public entry point: it turns a
// document.Document into a complete PDF byte stream.
package render

import (
	"fmt"

	"github.com/rupdf/rupdf-go/creator"
	"github.com/rupdf/rupdf-go/document"
)

// Options controls Render's output.
type Options struct {
	// Compress, when true, Flate-compresses every content stream, font
	// program, ToUnicode CMap and Form XObject body.
	Compress bool
}

// RenderError names the pipeline stage that failed, wrapping the
// underlying error. Grounded on the single RupdfError exception the
// original native binding raises (original_source/python/rupdf), reshaped
// into Go's errors.Unwrap convention.
type RenderError struct {
	Stage string
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render: %s: %v", e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Render assembles doc into a complete PDF byte stream. It is synchronous
// and holds no state across calls: every invocation rebuilds its object
// graph, font subsets and image XObjects from scratch.
func Render(doc *document.Document, opts Options) ([]byte, error) {
	if doc == nil {
		return nil, &RenderError{Stage: "validate", Err: fmt.Errorf("document is nil")}
	}

	out, err := creator.Assemble(doc, opts.Compress)
	if err != nil {
		return nil, &RenderError{Stage: "assemble", Err: err}
	}
	return out, nil
}
