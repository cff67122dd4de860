/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package creator

import (
	"fmt"
	"os"

	"github.com/h2non/filetype"

	"github.com/rupdf/rupdf-go/core"
	"github.com/rupdf/rupdf-go/imagepipe"
	"github.com/rupdf/rupdf-go/model"
	"github.com/rupdf/rupdf-go/svgpath"
)

// resolvedImage is the assembler's cached entry for one image resource
// alias: the XObject stream ready to be written to the object table, the
// resource name pages reference it by, and (vector images only) the
// BBox dimensions an image element needs to auto-compute height when H is
// omitted (spec.md §4.5). Image XObjects are registered once and shared
// across every page's resource dictionary (spec.md §1).
type resolvedImage struct {
	name         core.PdfObjectName
	stream       *core.PdfObjectStream
	isForm       bool
	bboxW, bboxH float64
}

// resolveFont returns the parsed, cached font for alias, parsing it (from
// Path or Bytes) on first reference.
func (a *assembler) resolveFont(alias string) (*model.PdfFont, error) {
	if font, ok := a.fonts[alias]; ok {
		return font, nil
	}
	res, ok := a.doc.Resources.Fonts[alias]
	if !ok {
		return nil, fmt.Errorf("creator: undefined font reference %q", alias)
	}
	if err := res.Validate(); err != nil {
		return nil, err
	}
	data, err := loadResourceBytes(res.Path, res.Bytes)
	if err != nil {
		return nil, fmt.Errorf("creator: load font %q: %w", alias, err)
	}
	font, err := model.NewPdfFont(data)
	if err != nil {
		return nil, fmt.Errorf("creator: font %q: %w", alias, err)
	}
	a.fonts[alias] = font
	return font, nil
}

// resolveImage returns the page-resource entry for alias, decoding and
// classifying (vector vs. raster, by content rather than extension, via
// filetype.IsSvg) it on first reference.
func (a *assembler) resolveImage(alias string) (*resolvedImage, error) {
	if img, ok := a.images[alias]; ok {
		return img, nil
	}
	res, ok := a.doc.Resources.Images[alias]
	if !ok {
		return nil, fmt.Errorf("creator: undefined image reference %q", alias)
	}
	if err := res.Validate(); err != nil {
		return nil, err
	}
	data, err := loadResourceBytes(res.Path, res.Bytes)
	if err != nil {
		return nil, fmt.Errorf("creator: load image %q: %w", alias, err)
	}

	resolved := &resolvedImage{name: a.xobjNames.GenerateXObjectName()}
	if filetype.IsSvg(data) {
		form, err := svgpath.Build(data)
		if err != nil {
			return nil, fmt.Errorf("creator: image %q: %w", alias, err)
		}
		form.Encoder = a.encoder
		resolved.isForm = true
		resolved.bboxW = form.BBox.Width()
		resolved.bboxH = form.BBox.Height()
		resolved.stream = form.ToPdfObject().(*core.PdfObjectStream)
	} else {
		ximg, err := imagepipe.Build(data, core.DefaultJPEGQuality)
		if err != nil {
			return nil, fmt.Errorf("creator: image %q: %w", alias, err)
		}
		resolved.stream = ximg.ToPdfObject().(*core.PdfObjectStream)
	}

	a.images[alias] = resolved
	return resolved, nil
}

// loadResourceBytes returns data unchanged if non-empty, otherwise reads
// path: a FontResource/ImageResource names exactly one of the two
// (enforced by Validate before this is called).
func loadResourceBytes(path string, data []byte) ([]byte, error) {
	if len(data) > 0 {
		return data, nil
	}
	return os.ReadFile(path)
}

