/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"github.com/rupdf/rupdf-go/core"
)

// PdfPage represents a single page object (7.7.3.3, Table 30), trimmed from the
// teacher's model/page.go down to the entries an assembler ever populates: every
// annotation/thumbnail/transition/interactive-forms field the teacher carries for
// reading existing pages is dropped, since pages here are only ever built, never
// parsed.
type PdfPage struct {
	Parent    *core.PdfIndirectObject // the page tree node.
	Resources *PdfPageResources
	MediaBox  *PdfRectangle
	Contents  *core.PdfObjectStream

	indirect *core.PdfIndirectObject
}

// NewPdfPage returns a new page with an empty resource dictionary.
func NewPdfPage() *PdfPage {
	return &PdfPage{
		Resources: NewPdfPageResources(),
		indirect:  core.MakeIndirectObject(nil),
	}
}

// Indirect returns the handle other objects (the page tree's Kids array, this
// page's own Parent entry) reference by pointer; its ObjectNumber is assigned by
// the assembler's core.ObjectTable, never by the page itself.
func (p *PdfPage) Indirect() *core.PdfIndirectObject {
	return p.indirect
}

// ToPdfObject returns the page's direct dictionary, ready to be passed to
// core.ObjectTable.WriteObject under the number assigned to p.Indirect().
func (p *PdfPage) ToPdfObject() core.PdfObject {
	d := core.MakeDict()
	d.Set("Type", core.MakeName("Page"))
	if p.Parent != nil {
		d.Set("Parent", p.Parent)
	}
	if p.MediaBox != nil {
		d.Set("MediaBox", p.MediaBox.ToPdfObject())
	}
	if p.Resources != nil {
		d.Set("Resources", p.Resources.ToPdfObject())
	}
	if p.Contents != nil {
		d.Set("Contents", p.Contents)
	}
	return d
}
