/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package document defines the declarative, in-memory document model a
// caller builds and hands to package render: pages, drawing elements and
// the font/image resources they reference. It replaces the teacher's
// dynamic dictionary-driven page/block construction (creator.Creator,
// creator.Block) with a typed tagged union: one Go struct per element
// kind, field presence modeled with pointers rather than sentinel values,
// matching the "absent means nil" convention core.PdfObjectDictionary
// already uses throughout this module.
package document

import (
	"math"
	"time"
)

// Metadata is the document's /Info dictionary content. Every field is
// optional; a zero value simply omits that entry.
type Metadata struct {
	Title        string
	Author       string
	Subject      string
	Creator      string
	Producer     string
	CreationDate time.Time // zero value: creator.Assemble omits /CreationDate.
}

// Document is the root of the object graph render.Render consumes.
type Document struct {
	Metadata  Metadata
	Pages     []*Page
	Resources Resources
}

// Resources is the document's named font and image table. Elements refer
// to entries here by alias string ("the font element attribute"), never by
// pointer, so the same resource can be shared across pages without the
// caller managing identity.
type Resources struct {
	Fonts  map[string]*FontResource
	Images map[string]*ImageResource
}

// FontResource names exactly one of Path or Bytes as the font program
// source. Setting both, or neither, is a validation error (spec.md §3).
type FontResource struct {
	Path  string
	Bytes []byte
}

// Validate reports the "both path and bytes" / "neither" invariant.
func (f *FontResource) Validate() error {
	if f == nil {
		return &ValidationError{Field: "font", Reason: "resource is nil"}
	}
	hasPath := f.Path != ""
	hasBytes := len(f.Bytes) > 0
	if hasPath == hasBytes {
		if hasPath {
			return &ValidationError{Field: "font", Reason: "exactly one of path or bytes must be set, not both"}
		}
		return &ValidationError{Field: "font", Reason: "exactly one of path or bytes must be set"}
	}
	return nil
}

// ImageResource names exactly one of Path or Bytes as the image source.
// Classification (vector vs. raster) happens by content, not by field.
type ImageResource struct {
	Path  string
	Bytes []byte
}

// Validate reports the "both path and bytes" / "neither" invariant.
func (im *ImageResource) Validate() error {
	if im == nil {
		return &ValidationError{Field: "image", Reason: "resource is nil"}
	}
	hasPath := im.Path != ""
	hasBytes := len(im.Bytes) > 0
	if hasPath == hasBytes {
		if hasPath {
			return &ValidationError{Field: "image", Reason: "exactly one of path or bytes must be set, not both"}
		}
		return &ValidationError{Field: "image", Reason: "exactly one of path or bytes must be set"}
	}
	return nil
}

// Color is an RGBA color, each component 0-255. The zero value is opaque
// black only if A is also set to 255 via RGB/RGBA; a bare Color{} is
// fully transparent black, which is why element fields hold *Color and
// treat a nil pointer as "use the default" rather than Color{}.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA returns a color with explicit alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Float returns the color's components scaled to [0,1], the form the
// content-stream color operators (rg/RG) and /ca /CA ExtGState entries need.
func (c Color) Float() (r, g, b, a float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255
}

// Page is one page of the document: a size in points, an optional
// background fill, and an ordered list of drawing elements. Element
// drawing order is strictly the slice order (spec.md §5).
type Page struct {
	Width, Height float64
	Background    *Color
	Elements      []Element
}

// Validate reports the "page dimensions non-positive or non-finite" error.
func (p *Page) Validate() error {
	if !isFinitePositive(p.Width) {
		return &ValidationError{Field: "page.width", Reason: "must be finite and strictly positive"}
	}
	if !isFinitePositive(p.Height) {
		return &ValidationError{Field: "page.height", Reason: "must be finite and strictly positive"}
	}
	return nil
}

func isFinitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
