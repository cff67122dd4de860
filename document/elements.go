/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package document

import "math"

// Align is a horizontal alignment keyword.
type Align string

// Horizontal alignment values shared by text, textbox and box placement.
const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// VerticalAnchor positions a single text run's baseline relative to its
// nominal y coordinate (spec.md §4.2).
type VerticalAnchor string

const (
	AnchorBaseline VerticalAnchor = "baseline"
	AnchorCapline  VerticalAnchor = "capline"
	AnchorCenter   VerticalAnchor = "center"
)

// TextBoxAnchorY positions a wrapped text block's first/last baseline
// within its box (spec.md §4.3); it extends VerticalAnchor with top/bottom.
type TextBoxAnchorY string

const (
	TextBoxAnchorTop      TextBoxAnchorY = "top"
	TextBoxAnchorCapline  TextBoxAnchorY = "capline"
	TextBoxAnchorCenter   TextBoxAnchorY = "center"
	TextBoxAnchorBaseline TextBoxAnchorY = "baseline"
	TextBoxAnchorBottom   TextBoxAnchorY = "bottom"
)

// BoxAnchorY positions a textbox's own (x,y,w,h) rectangle relative to the
// element's nominal (x,y), distinct from TextBoxAnchorY which positions
// text lines within the already-placed box.
type BoxAnchorY string

const (
	BoxAnchorTop    BoxAnchorY = "top"
	BoxAnchorCenter BoxAnchorY = "center"
	BoxAnchorBottom BoxAnchorY = "bottom"
)

// Element is the tagged-union interface every page element implements.
// Kind returns the element's wire-visible name, used in error messages and
// by the content emitter's type switch; Validate reports missing required
// fields (spec.md §7).
type Element interface {
	Kind() string
	Validate() error
}

// TextElement draws a single run of text at (X, Y) in one font and size.
type TextElement struct {
	X, Y           float64
	Text           string
	Font           string
	Size           float64
	Color          *Color
	Align          Align          // default AlignLeft.
	VerticalAnchor VerticalAnchor // default AnchorBaseline.
}

func (e *TextElement) Kind() string { return "text" }

func (e *TextElement) Validate() error {
	if !finite(e.X) || !finite(e.Y) {
		return &ValidationError{Field: "text.x/y", Reason: "must be finite"}
	}
	if e.Font == "" {
		return &ValidationError{Field: "text.font", Reason: "required"}
	}
	if e.Size <= 0 || !finite(e.Size) {
		return &ValidationError{Field: "text.size", Reason: "required and must be finite and positive"}
	}
	return nil
}

// TextBoxElement draws Text word-wrapped inside a W×H box anchored at
// (X, Y) via BoxAlignX/BoxAlignY.
type TextBoxElement struct {
	X, Y, W, H float64
	Text       string
	Font       string
	Size       float64
	Color      *Color

	TextAlignX Align          // default AlignLeft.
	TextAlignY TextBoxAnchorY // default TextBoxAnchorTop.
	BoxAlignX  Align          // default AlignLeft.
	BoxAlignY  BoxAnchorY     // default BoxAnchorTop.
	LineHeight float64        // 0 means the spec default of 1.2 * Size.
}

func (e *TextBoxElement) Kind() string { return "textbox" }

func (e *TextBoxElement) Validate() error {
	if !finite(e.X) || !finite(e.Y) {
		return &ValidationError{Field: "textbox.x/y", Reason: "must be finite"}
	}
	if e.Font == "" {
		return &ValidationError{Field: "textbox.font", Reason: "required"}
	}
	if e.Size <= 0 || !finite(e.Size) {
		return &ValidationError{Field: "textbox.size", Reason: "required and must be finite and positive"}
	}
	if e.W <= 0 || e.H <= 0 || !finite(e.W) || !finite(e.H) {
		return &ValidationError{Field: "textbox.w/h", Reason: "required and must be finite and positive"}
	}
	if e.LineHeight < 0 || !finite(e.LineHeight) {
		return &ValidationError{Field: "textbox.line_height", Reason: "must be finite and non-negative"}
	}
	return nil
}

// RectElement draws an axis-aligned rectangle, optionally stroked, filled
// and/or rounded.
type RectElement struct {
	X, Y, W, H   float64
	Stroke       float64 // 0 disables stroking.
	StrokeColor  *Color
	FillColor    *Color
	CornerRadius float64
}

func (e *RectElement) Kind() string { return "rect" }

func (e *RectElement) Validate() error {
	if !finite(e.X) || !finite(e.Y) {
		return &ValidationError{Field: "rect.x/y", Reason: "must be finite"}
	}
	if e.W <= 0 || e.H <= 0 || !finite(e.W) || !finite(e.H) {
		return &ValidationError{Field: "rect.w/h", Reason: "required and must be finite and positive"}
	}
	if e.Stroke < 0 || !finite(e.Stroke) {
		return &ValidationError{Field: "rect.stroke", Reason: "must be finite and non-negative"}
	}
	if e.CornerRadius < 0 || !finite(e.CornerRadius) {
		return &ValidationError{Field: "rect.corner_radius", Reason: "must be finite and non-negative"}
	}
	return nil
}

// LineElement draws a straight stroked segment from (X1,Y1) to (X2,Y2).
type LineElement struct {
	X1, Y1, X2, Y2 float64
	Stroke         float64 // default 1 when zero.
	Color          *Color
}

func (e *LineElement) Kind() string { return "line" }

func (e *LineElement) Validate() error {
	if !finite(e.X1) || !finite(e.Y1) || !finite(e.X2) || !finite(e.Y2) {
		return &ValidationError{Field: "line.x1/y1/x2/y2", Reason: "must be finite"}
	}
	if e.Stroke < 0 || !finite(e.Stroke) {
		return &ValidationError{Field: "line.stroke", Reason: "must be finite and non-negative"}
	}
	return nil
}

// ImageElement draws the named image resource scaled to W×(H or auto).
// H is a pointer: nil means "compute from the vector image's aspect
// ratio" (spec.md §4.5); it is required for raster images.
type ImageElement struct {
	X, Y, W float64
	H       *float64
	Image   string
}

func (e *ImageElement) Kind() string { return "image" }

func (e *ImageElement) Validate() error {
	if !finite(e.X) || !finite(e.Y) {
		return &ValidationError{Field: "image.x/y", Reason: "must be finite"}
	}
	if e.Image == "" {
		return &ValidationError{Field: "image.image", Reason: "required"}
	}
	if e.W <= 0 || !finite(e.W) {
		return &ValidationError{Field: "image.w", Reason: "required and must be finite and positive"}
	}
	if e.H != nil && (*e.H <= 0 || !finite(*e.H)) {
		return &ValidationError{Field: "image.h", Reason: "must be finite and positive when set"}
	}
	return nil
}

// Barcode128Element draws value as a Code 128 symbol within W×H.
type Barcode128Element struct {
	X, Y, W, H    float64
	Value         string
	HumanReadable bool
	Font          string // required when HumanReadable is true.
	FontSize      float64
}

func (e *Barcode128Element) Kind() string { return "barcode128" }

func (e *Barcode128Element) Validate() error {
	if !finite(e.X) || !finite(e.Y) {
		return &ValidationError{Field: "barcode128.x/y", Reason: "must be finite"}
	}
	if e.Value == "" {
		return &ValidationError{Field: "barcode128.value", Reason: "required"}
	}
	if e.W <= 0 || e.H <= 0 || !finite(e.W) || !finite(e.H) {
		return &ValidationError{Field: "barcode128.w/h", Reason: "required and must be finite and positive"}
	}
	if e.HumanReadable && e.Font == "" {
		// spec.md §9 Open Questions: human_readable=true with no font is an error.
		return &ValidationError{Field: "barcode128.font", Reason: "required when human_readable is true"}
	}
	if e.FontSize < 0 || !finite(e.FontSize) {
		return &ValidationError{Field: "barcode128.font_size", Reason: "must be finite and non-negative"}
	}
	return nil
}

// QRCodeElement draws value as a QR symbol, Size points square.
type QRCodeElement struct {
	X, Y, Size float64
	Value      string
	Color      *Color
	Background *Color
}

func (e *QRCodeElement) Kind() string { return "qrcode" }

func (e *QRCodeElement) Validate() error {
	if !finite(e.X) || !finite(e.Y) {
		return &ValidationError{Field: "qrcode.x/y", Reason: "must be finite"}
	}
	if e.Value == "" {
		return &ValidationError{Field: "qrcode.value", Reason: "required"}
	}
	if e.Size <= 0 || !finite(e.Size) {
		return &ValidationError{Field: "qrcode.size", Reason: "required and must be finite and positive"}
	}
	return nil
}

// finite reports whether v is safe to place off-page: spec.md §9 preserves
// the source's permissiveness on negative/out-of-page coordinates, so the
// only rejected values are non-finite ones.
func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
