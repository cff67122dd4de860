/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package svgpath decodes a vector (SVG) image resource into a PDF Form
// XObject: the document's viewBox becomes the form's /BBox and its shape
// elements become a content stream of path-construction and paint operators.
// The XML struct-tag unmarshaling style is grounded on the svg2pdf.go
// reference implementation in the retrieval pack (its SVG/Rect/Path structs);
// the actual path-to-operator walk and arc-to-Bézier math are new, built
// directly from spec.md's operator list since nothing in the pack implements
// SVG path-data tokenizing.
package svgpath

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/rupdf/rupdf-go/contentstream"
	"github.com/rupdf/rupdf-go/model"
)

// document mirrors the subset of SVG 1.1 this package understands: basic
// shapes and path data, fill/stroke paint, no gradients/masks/text/nested
// transforms (out of scope — spec.md only requires "vectors render to PDF
// drawing operators wrapped in a Form XObject with a /BBox").
type document struct {
	XMLName  xml.Name    `xml:"svg"`
	ViewBox  string      `xml:"viewBox,attr"`
	Width    string      `xml:"width,attr"`
	Height   string      `xml:"height,attr"`
	Rects    []rectEl    `xml:"rect"`
	Circles  []circleEl  `xml:"circle"`
	Ellipses []ellipseEl `xml:"ellipse"`
	Lines    []lineEl    `xml:"line"`
	Polys    []polyEl    `xml:"polyline"`
	Polygons []polyEl    `xml:"polygon"`
	Paths    []pathEl    `xml:"path"`
}

type paintAttrs struct {
	Fill        string `xml:"fill,attr"`
	Stroke      string `xml:"stroke,attr"`
	StrokeWidth string `xml:"stroke-width,attr"`
}

type rectEl struct {
	paintAttrs
	X      string `xml:"x,attr"`
	Y      string `xml:"y,attr"`
	Width  string `xml:"width,attr"`
	Height string `xml:"height,attr"`
}

type circleEl struct {
	paintAttrs
	CX string `xml:"cx,attr"`
	CY string `xml:"cy,attr"`
	R  string `xml:"r,attr"`
}

type ellipseEl struct {
	paintAttrs
	CX string `xml:"cx,attr"`
	CY string `xml:"cy,attr"`
	RX string `xml:"rx,attr"`
	RY string `xml:"ry,attr"`
}

type lineEl struct {
	paintAttrs
	X1 string `xml:"x1,attr"`
	Y1 string `xml:"y1,attr"`
	X2 string `xml:"x2,attr"`
	Y2 string `xml:"y2,attr"`
}

type polyEl struct {
	paintAttrs
	Points string `xml:"points,attr"`
}

type pathEl struct {
	paintAttrs
	D string `xml:"d,attr"`
}

// Build parses data as an SVG document and renders it into a Form XObject
// whose /BBox is the document's viewBox (or its width/height when no
// viewBox is present) and whose content stream draws every recognized
// shape and path element.
func Build(data []byte) (*model.XObjectForm, error) {
	var doc document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("svgpath: parse: %w", err)
	}

	bbox, err := doc.bbox()
	if err != nil {
		return nil, err
	}

	cc := contentstream.NewContentCreator()
	for _, r := range doc.Rects {
		drawRect(cc, r)
	}
	for _, c := range doc.Circles {
		drawEllipse(cc, c.paintAttrs, num(c.CX), num(c.CY), num(c.R), num(c.R))
	}
	for _, e := range doc.Ellipses {
		drawEllipse(cc, e.paintAttrs, num(e.CX), num(e.CY), num(e.RX), num(e.RY))
	}
	for _, l := range doc.Lines {
		drawLine(cc, l)
	}
	for _, p := range doc.Polys {
		drawPoly(cc, p, false)
	}
	for _, p := range doc.Polygons {
		drawPoly(cc, p, true)
	}
	for _, p := range doc.Paths {
		if err := drawPath(cc, p); err != nil {
			return nil, err
		}
	}

	return &model.XObjectForm{
		BBox:   bbox,
		Stream: cc.Bytes(),
	}, nil
}

func (doc *document) bbox() (*model.PdfRectangle, error) {
	if doc.ViewBox != "" {
		fields := strings.Fields(doc.ViewBox)
		if len(fields) != 4 {
			return nil, fmt.Errorf("svgpath: malformed viewBox %q", doc.ViewBox)
		}
		vals := make([]float64, 4)
		for i, f := range fields {
			vals[i] = num(f)
		}
		return model.NewPdfRectangle(vals[0], vals[1], vals[0]+vals[2], vals[1]+vals[3]), nil
	}
	w, h := num(doc.Width), num(doc.Height)
	if w == 0 {
		w = 100
	}
	if h == 0 {
		h = 100
	}
	return model.NewPdfRectangle(0, 0, w, h), nil
}

func num(s string) float64 {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

// paintOp applies fill/stroke color and returns the terminal painting
// operator to call once the path is built ("f", "S", "B", or "n" when the
// element specifies fill="none" and no stroke, matching SVG's default fill
// of black when no attribute is present at all).
func paintOp(cc *contentstream.ContentCreator, p paintAttrs) func() {
	fill := strings.TrimSpace(p.Fill)
	stroke := strings.TrimSpace(p.Stroke)

	doFill := fill != "none"
	doStroke := stroke != "" && stroke != "none"

	if doFill {
		r, g, b := parseColor(fill)
		cc.SetNonStrokingColor(r, g, b)
	}
	if doStroke {
		r, g, b := parseColor(stroke)
		cc.SetStrokingColor(r, g, b)
		if w := num(p.StrokeWidth); w > 0 {
			cc.Add_w(w)
		}
	}

	switch {
	case doFill && doStroke:
		return cc.Add_B
	case doFill:
		return cc.Add_f
	case doStroke:
		return cc.Add_S
	default:
		return func() { cc.AddOperand(contentstream.ContentStreamOperation{Operand: "n"}) }
	}
}

// parseColor understands #rrggbb, #rgb and the handful of named colors SVG
// fixtures commonly use; anything else falls back to black.
func parseColor(s string) (r, g, b float64) {
	s = strings.TrimSpace(s)
	if named, ok := namedColors[s]; ok {
		return named[0], named[1], named[2]
	}
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) == 6 {
			rv, _ := strconv.ParseInt(hex[0:2], 16, 32)
			gv, _ := strconv.ParseInt(hex[2:4], 16, 32)
			bv, _ := strconv.ParseInt(hex[4:6], 16, 32)
			return float64(rv) / 255, float64(gv) / 255, float64(bv) / 255
		}
	}
	return 0, 0, 0
}

var namedColors = map[string][3]float64{
	"black": {0, 0, 0},
	"white": {1, 1, 1},
	"red":   {1, 0, 0},
	"green": {0, 0.5, 0},
	"blue":  {0, 0, 1},
	"none":  {0, 0, 0},
}

func drawRect(cc *contentstream.ContentCreator, r rectEl) {
	paint := paintOp(cc, r.paintAttrs)
	cc.Add_re(num(r.X), num(r.Y), num(r.Width), num(r.Height))
	paint()
}

func drawLine(cc *contentstream.ContentCreator, l lineEl) {
	paint := paintOp(cc, l.paintAttrs)
	cc.Add_m(num(l.X1), num(l.Y1))
	cc.Add_l(num(l.X2), num(l.Y2))
	paint()
}

func drawPoly(cc *contentstream.ContentCreator, p polyEl, closed bool) {
	pts := parsePoints(p.Points)
	if len(pts) == 0 {
		return
	}
	paint := paintOp(cc, p.paintAttrs)
	cc.Add_m(pts[0][0], pts[0][1])
	for _, pt := range pts[1:] {
		cc.Add_l(pt[0], pt[1])
	}
	if closed {
		cc.Add_h()
	}
	paint()
}

func parsePoints(s string) [][2]float64 {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	var pts [][2]float64
	for i := 0; i+1 < len(fields); i += 2 {
		pts = append(pts, [2]float64{num(fields[i]), num(fields[i+1])})
	}
	return pts
}

// drawEllipse approximates a circle/ellipse with four cubic Bézier arcs
// using the quarter-circle control-point ratio k = 0.551784, generalized to
// independent x/y radii.
func drawEllipse(cc *contentstream.ContentCreator, p paintAttrs, cx, cy, rx, ry float64) {
	const k = 0.551784
	paint := paintOp(cc, p)

	cc.Add_m(cx+rx, cy)
	cc.Add_c(cx+rx, cy+ry*k, cx+rx*k, cy+ry, cx, cy+ry)
	cc.Add_c(cx-rx*k, cy+ry, cx-rx, cy+ry*k, cx-rx, cy)
	cc.Add_c(cx-rx, cy-ry*k, cx-rx*k, cy-ry, cx, cy-ry)
	cc.Add_c(cx+rx*k, cy-ry, cx+rx, cy-ry*k, cx+rx, cy)
	paint()
}
