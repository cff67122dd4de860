/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

// Common basic data structures shared by the resource builders: PdfRectangle.

import (
	"math"

	"github.com/rupdf/rupdf-go/core"
)

// PdfRectangle is a definition of a rectangle, used for MediaBox and XObject BBox entries.
type PdfRectangle struct {
	Llx float64 // Lower left corner (ll).
	Lly float64
	Urx float64 // Upper right corner (ur).
	Ury float64
}

// NewPdfRectangle returns a rectangle with the given corners.
func NewPdfRectangle(llx, lly, urx, ury float64) *PdfRectangle {
	return &PdfRectangle{Llx: llx, Lly: lly, Urx: urx, Ury: ury}
}

// Height returns the height of `rect`.
func (rect *PdfRectangle) Height() float64 {
	return math.Abs(rect.Ury - rect.Lly)
}

// Width returns the width of `rect`.
func (rect *PdfRectangle) Width() float64 {
	return math.Abs(rect.Urx - rect.Llx)
}

// ToPdfObject converts rectangle to a PDF object.
func (rect *PdfRectangle) ToPdfObject() core.PdfObject {
	return core.MakeArray(
		core.MakeFloat(rect.Llx),
		core.MakeFloat(rect.Lly),
		core.MakeFloat(rect.Urx),
		core.MakeFloat(rect.Ury),
	)
}
