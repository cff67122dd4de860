/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package creator

import (
	"bytes"
	"fmt"
	"math"

	"github.com/rupdf/rupdf-go/barcode128"
	"github.com/rupdf/rupdf-go/contentstream"
	"github.com/rupdf/rupdf-go/core"
	"github.com/rupdf/rupdf-go/document"
	"github.com/rupdf/rupdf-go/internal/transform"
	"github.com/rupdf/rupdf-go/model"
	"github.com/rupdf/rupdf-go/qrmatrix"
	"github.com/rupdf/rupdf-go/textlayout"
)

// registerFont binds alias's font resource under page's /Font dict using
// the alias itself as the resource name, and returns that name.
func (a *assembler) registerFont(page *model.PdfPage, alias string, font *model.PdfFont) core.PdfObjectName {
	name := core.PdfObjectName(alias)
	page.Resources.SetFontByName(name, font.Indirect())
	return name
}

// glyphHexString maps text to its big-endian CID (== glyph index, Identity-H)
// byte string, one rune at a time. Go source strings are already decoded to
// Unicode scalar values, so non-BMP runes never need surrogate-pair
// recombination the way UTF-16 input would.
func glyphHexString(font *model.PdfFont, text string) string {
	var buf bytes.Buffer
	for _, r := range text {
		gid := font.GID(r)
		buf.WriteByte(byte(gid >> 8))
		buf.WriteByte(byte(gid))
	}
	return buf.String()
}

func showText(cc *contentstream.ContentCreator, font *model.PdfFont, text string) {
	cc.Add_Tj(*core.MakeHexString(glyphHexString(font, text)))
}

func (a *assembler) emitText(cc *contentstream.ContentCreator, page *model.PdfPage, p *document.Page, e *document.TextElement) error {
	font, err := a.resolveFont(e.Font)
	if err != nil {
		return err
	}
	fontName := a.registerFont(page, e.Font, font)

	ascent, descent, capHeight := textlayout.ScaledMetrics(font, e.Size)
	baselineY := e.Y + textlayout.BaselineOffset(ascent, descent, capHeight, e.VerticalAnchor)
	width := textlayout.RunWidth(font, e.Text, e.Size)
	x := e.X + textlayout.AlignOffset(e.Align, width)

	color := document.RGB(0, 0, 0)
	if e.Color != nil {
		color = *e.Color
	}
	r, g, b, alpha := color.Float()

	a.withAlpha(cc, page, 1, alpha, func() {
		cc.Add_BT()
		cc.Add_Tf(fontName, e.Size)
		if e.Color != nil {
			cc.SetNonStrokingColor(r, g, b)
		}
		cc.Add_Td(x, p.Height-baselineY)
		showText(cc, font, e.Text)
		cc.Add_ET()
	})
	return nil
}

func (a *assembler) emitTextBox(cc *contentstream.ContentCreator, page *model.PdfPage, p *document.Page, e *document.TextBoxElement) error {
	font, err := a.resolveFont(e.Font)
	if err != nil {
		return err
	}
	fontName := a.registerFont(page, e.Font, font)

	bx := e.X + textlayout.AlignOffset(e.BoxAlignX, e.W)
	by := e.Y + textlayout.BoxOffsetY(e.BoxAlignY, e.H)

	lines := textlayout.WrapText(font, e.Text, e.Size, e.W)
	lineHeight := textlayout.LineHeight(e.LineHeight, e.Size)
	ascent, descent, capHeight := textlayout.ScaledMetrics(font, e.Size)
	firstBaseline := textlayout.FirstBaselineY(by, e.H, lineHeight, len(lines), ascent, descent, capHeight, e.TextAlignY)

	color := document.RGB(0, 0, 0)
	if e.Color != nil {
		color = *e.Color
	}
	r, g, b, alpha := color.Float()

	a.withAlpha(cc, page, 1, alpha, func() {
		cc.Add_BT()
		cc.Add_Tf(fontName, e.Size)
		if e.Color != nil {
			cc.SetNonStrokingColor(r, g, b)
		}
		for i, line := range lines {
			width := textlayout.RunWidth(font, line, e.Size)
			x := bx + textlayout.AlignOffset(e.TextAlignX, width)
			baselineY := firstBaseline + lineHeight*float64(i)
			cc.Add_Tm(1, 0, 0, 1, x, p.Height-baselineY)
			showText(cc, font, line)
		}
		cc.Add_ET()
	})
	return nil
}

func (a *assembler) emitRect(cc *contentstream.ContentCreator, page *model.PdfPage, p *document.Page, e *document.RectElement) error {
	hasStroke := e.Stroke > 0
	hasFill := e.FillColor != nil
	if !hasStroke && !hasFill {
		return nil
	}

	strokeColor := document.RGB(0, 0, 0)
	if e.StrokeColor != nil {
		strokeColor = *e.StrokeColor
	}
	var fillColor document.Color
	if hasFill {
		fillColor = *e.FillColor
	}
	sr, sg, sb, strokeAlpha := strokeColor.Float()
	fr, fg, fb, fillAlpha := fillColor.Float()
	if !hasStroke {
		strokeAlpha = 1
	}
	if !hasFill {
		fillAlpha = 1
	}

	y := p.Height - e.Y - e.H
	a.withAlpha(cc, page, strokeAlpha, fillAlpha, func() {
		if hasStroke {
			cc.Add_w(e.Stroke)
			cc.SetStrokingColor(sr, sg, sb)
		}
		if hasFill {
			cc.SetNonStrokingColor(fr, fg, fb)
		}
		if e.CornerRadius > 0 {
			addRoundedRect(cc, e.X, y, e.W, e.H, e.CornerRadius)
		} else {
			cc.Add_re(e.X, y, e.W, e.H)
		}
		switch {
		case hasStroke && hasFill:
			cc.Add_B()
		case hasFill:
			cc.Add_f()
		case hasStroke:
			cc.Add_S()
		}
	})
	return nil
}

// addRoundedRect traces a rectangle with circular-approximating Bezier
// corners of radius r, clamped to half the shorter side (spec.md §4.4).
func addRoundedRect(cc *contentstream.ContentCreator, x, y, w, h, r float64) {
	if m := math.Min(w, h) / 2; r > m {
		r = m
	}
	k := r * (4 * (math.Sqrt2 - 1) / 3)

	cc.Add_m(x+r, y)
	cc.Add_l(x+w-r, y)
	cc.Add_c(x+w-r+k, y, x+w, y+r-k, x+w, y+r)
	cc.Add_l(x+w, y+h-r)
	cc.Add_c(x+w, y+h-r+k, x+w-r+k, y+h, x+w-r, y+h)
	cc.Add_l(x+r, y+h)
	cc.Add_c(x+r-k, y+h, x, y+h-r+k, x, y+h-r)
	cc.Add_l(x, y+r)
	cc.Add_c(x, y+r-k, x+r-k, y, x+r, y)
	cc.Add_h()
}

func (a *assembler) emitLine(cc *contentstream.ContentCreator, page *model.PdfPage, p *document.Page, e *document.LineElement) error {
	stroke := e.Stroke
	if stroke <= 0 {
		stroke = 1
	}
	color := document.RGB(0, 0, 0)
	if e.Color != nil {
		color = *e.Color
	}
	r, g, b, alpha := color.Float()

	a.withAlpha(cc, page, alpha, 1, func() {
		cc.Add_w(stroke)
		cc.SetStrokingColor(r, g, b)
		cc.Add_m(e.X1, p.Height-e.Y1)
		cc.Add_l(e.X2, p.Height-e.Y2)
		cc.Add_S()
	})
	return nil
}

func (a *assembler) emitImage(cc *contentstream.ContentCreator, page *model.PdfPage, p *document.Page, e *document.ImageElement) error {
	img, err := a.resolveImage(e.Image)
	if err != nil {
		return err
	}
	page.Resources.SetXObjectByName(img.name, img.stream)

	var h float64
	switch {
	case e.H != nil:
		h = *e.H
	case img.isForm && img.bboxW > 0:
		h = e.W * img.bboxH / img.bboxW
	default:
		return fmt.Errorf("creator: image %q: h is required for raster images", e.Image)
	}

	y := p.Height - e.Y - h
	// Unit-square-to-placement-rectangle CTM, composed rather than written
	// out by hand since a rotated image element would need the same
	// Scale().Rotate().Translate() chain (not yet exposed on ImageElement,
	// but the matrix math doesn't change shape when it is).
	ctm := transform.IdentityMatrix().Scale(e.W, h).Translate(e.X, y)
	cc.Add_q()
	cc.Add_cm(ctm[0], ctm[1], ctm[3], ctm[4], ctm[6], ctm[7])
	cc.Add_Do(img.name)
	cc.Add_Q()
	return nil
}

func (a *assembler) emitBarcode128(cc *contentstream.ContentCreator, page *model.PdfPage, p *document.Page, e *document.Barcode128Element) error {
	pattern, err := barcode128.Build(e.Value)
	if err != nil {
		return fmt.Errorf("creator: barcode128 %q: %w", e.Value, err)
	}

	barHeight := e.H
	var font *model.PdfFont
	var fontName core.PdfObjectName
	var textBand, fontSize float64
	if e.HumanReadable {
		font, err = a.resolveFont(e.Font)
		if err != nil {
			return err
		}
		fontName = a.registerFont(page, e.Font, font)
		fontSize = e.FontSize
		if fontSize <= 0 {
			fontSize = 10
		}
		textBand = fontSize * 1.4
		barHeight = e.H - textBand
	}

	moduleWidth := e.W / float64(pattern.TotalModules)
	yBottomUser := e.Y + barHeight
	yPdfBottom := p.Height - yBottomUser

	cc.SetNonStrokingColor(0, 0, 0)
	x := e.X
	dark := pattern.StartsDark
	for _, run := range pattern.Runs {
		runWidth := moduleWidth * float64(run)
		if dark {
			cc.Add_re(x, yPdfBottom, runWidth, barHeight)
		}
		x += runWidth
		dark = !dark
	}
	cc.Add_f()

	if e.HumanReadable {
		width := textlayout.RunWidth(font, e.Value, fontSize)
		tx := e.X + (e.W-width)/2
		ascent, descent, capHeight := textlayout.ScaledMetrics(font, fontSize)
		centerY := yBottomUser + textBand/2
		baselineY := centerY + textlayout.BaselineOffset(ascent, descent, capHeight, document.AnchorCenter)

		cc.Add_BT()
		cc.Add_Tf(fontName, fontSize)
		cc.Add_Td(tx, p.Height-baselineY)
		showText(cc, font, e.Value)
		cc.Add_ET()
	}
	return nil
}

func (a *assembler) emitQRCode(cc *contentstream.ContentCreator, page *model.PdfPage, p *document.Page, e *document.QRCodeElement) error {
	matrix, err := qrmatrix.Build(e.Value)
	if err != nil {
		return fmt.Errorf("creator: qrcode %q: %w", e.Value, err)
	}

	bg := document.RGB(255, 255, 255)
	if e.Background != nil {
		bg = *e.Background
	}
	fg := document.RGB(0, 0, 0)
	if e.Color != nil {
		fg = *e.Color
	}

	moduleSize := e.Size / float64(matrix.Size)
	yPdfTop := p.Height - e.Y - e.Size

	br, bgc, bb, _ := bg.Float()
	cc.SetNonStrokingColor(br, bgc, bb)
	cc.Add_re(e.X, yPdfTop, e.Size, e.Size)
	cc.Add_f()

	fr, fgc, fb, _ := fg.Float()
	cc.SetNonStrokingColor(fr, fgc, fb)
	for row := 0; row < matrix.Size; row++ {
		for col := 0; col < matrix.Size; col++ {
			if !matrix.Modules[row][col] {
				continue
			}
			moduleX := e.X + float64(col)*moduleSize
			moduleYUser := e.Y + float64(row)*moduleSize
			cc.Add_re(moduleX, p.Height-moduleYUser-moduleSize, moduleSize, moduleSize)
		}
	}
	cc.Add_f()
	return nil
}
