/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package creator

import (
	"fmt"

	"github.com/rupdf/rupdf-go/contentstream"
	"github.com/rupdf/rupdf-go/document"
	"github.com/rupdf/rupdf-go/model"
)

// buildPage lays out p's elements, in slice order, into a single content
// stream, registering every font, image and ExtGState an element touches
// in the page's own resource dictionary.
func (a *assembler) buildPage(p *document.Page) (*model.PdfPage, []byte, error) {
	page := model.NewPdfPage()
	page.MediaBox = model.NewPdfRectangle(0, 0, p.Width, p.Height)

	cc := contentstream.NewContentCreator()

	if p.Background != nil {
		a.emitBackground(cc, page, p)
	}
	for _, el := range p.Elements {
		if err := a.emitElement(cc, page, p, el); err != nil {
			return nil, nil, err
		}
	}

	return page, cc.Bytes(), nil
}

// emitBackground paints the full page rectangle in p.Background before any
// element is drawn.
func (a *assembler) emitBackground(cc *contentstream.ContentCreator, page *model.PdfPage, p *document.Page) {
	r, g, b, alpha := p.Background.Float()
	a.withAlpha(cc, page, 1, alpha, func() {
		cc.SetNonStrokingColor(r, g, b)
		cc.Add_re(0, 0, p.Width, p.Height)
		cc.Add_f()
	})
}

// emitElement dispatches to the per-kind emission logic.
func (a *assembler) emitElement(cc *contentstream.ContentCreator, page *model.PdfPage, p *document.Page, el document.Element) error {
	switch e := el.(type) {
	case *document.TextElement:
		return a.emitText(cc, page, p, e)
	case *document.TextBoxElement:
		return a.emitTextBox(cc, page, p, e)
	case *document.RectElement:
		return a.emitRect(cc, page, p, e)
	case *document.LineElement:
		return a.emitLine(cc, page, p, e)
	case *document.ImageElement:
		return a.emitImage(cc, page, p, e)
	case *document.Barcode128Element:
		return a.emitBarcode128(cc, page, p, e)
	case *document.QRCodeElement:
		return a.emitQRCode(cc, page, p, e)
	default:
		return fmt.Errorf("creator: unknown element kind %q", el.Kind())
	}
}
