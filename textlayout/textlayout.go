/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package textlayout measures and wraps text runs against a parsed font's
// glyph advances and scales its vertical metrics (ascent, descent,
// cap-height) for baseline anchoring. Nothing in the retrieval pack
// implements paragraph wrapping or vertical-metric anchoring for a from-
// scratch document model, so this package is built directly from the
// arithmetic the assembler needs: glyph-advance summation for horizontal
// alignment, greedy word-wrap, and the baseline offsets a text or textbox
// element's vertical anchor describes.
package textlayout

import (
	"math"
	"strings"

	"github.com/rupdf/rupdf-go/document"
	"github.com/rupdf/rupdf-go/model"
)

// RunWidth returns the width, in points, of s set in font at size, summing
// each rune's glyph advance. Runes the font can't map cost the .notdef
// glyph's advance, same as at draw time.
func RunWidth(font *model.PdfFont, s string, size float64) float64 {
	var w float64
	for _, r := range s {
		gid := font.GID(r)
		w += font.AdvanceWidth1000(gid) * size / 1000
	}
	return w
}

// AlignOffset returns the x displacement to apply to a run of the given
// width so that its anchor point matches align (spec.md §4.2: left at x,
// center at x-W/2, right at x-W).
func AlignOffset(align document.Align, width float64) float64 {
	switch align {
	case document.AlignCenter:
		return -width / 2
	case document.AlignRight:
		return -width
	default:
		return 0
	}
}

// BoxOffsetY returns the y displacement applied to a textbox's nominal
// point to reach its top-left corner for box_align_y (spec.md §4.3): top
// adds nothing, center and bottom pull the box up by half/all of extent
// since y increases downward in user space.
func BoxOffsetY(align document.BoxAnchorY, extent float64) float64 {
	switch align {
	case document.BoxAnchorCenter:
		return -extent / 2
	case document.BoxAnchorBottom:
		return -extent
	default:
		return 0
	}
}

// ScaledMetrics returns font's ascent, descent (negative) and cap-height
// scaled from font units to points at size.
func ScaledMetrics(font *model.PdfFont, size float64) (ascent, descent, capHeight float64) {
	upm := float64(font.Metrics.UnitsPerEm)
	if upm == 0 {
		upm = 1000
	}
	scale := size / upm
	return float64(font.Metrics.Ascent) * scale, float64(font.Metrics.Descent) * scale, float64(font.Metrics.CapHeight) * scale
}

// BaselineOffset returns the displacement to add to a text element's
// nominal y so the pen baseline lands where anchor specifies (spec.md
// §4.2): baseline adds nothing, capline drops the baseline below the
// nominal point by the cap-height, center balances the ascent/descent
// span on the nominal point.
func BaselineOffset(ascent, descent, capHeight float64, anchor document.VerticalAnchor) float64 {
	switch anchor {
	case document.AnchorCapline:
		return capHeight
	case document.AnchorCenter:
		return (ascent+descent)/2 + math.Abs(descent)
	default:
		return 0
	}
}

// WrapText greedily wraps text into lines no wider than w, measured in
// font at size. Newlines are hard breaks; a single token wider than w is
// placed on its own line rather than split (spec.md §4.3).
func WrapText(font *model.PdfFont, text string, size, w float64) []string {
	spaceWidth := RunWidth(font, " ", size)

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		tokens := strings.Fields(paragraph)
		if len(tokens) == 0 {
			lines = append(lines, "")
			continue
		}

		var cur []string
		curWidth := 0.0
		for _, tok := range tokens {
			tokWidth := RunWidth(font, tok, size)
			if len(cur) > 0 && curWidth+spaceWidth+tokWidth > w {
				lines = append(lines, strings.Join(cur, " "))
				cur = []string{tok}
				curWidth = tokWidth
				continue
			}
			if len(cur) > 0 {
				curWidth += spaceWidth
			}
			cur = append(cur, tok)
			curWidth += tokWidth
		}
		lines = append(lines, strings.Join(cur, " "))
	}
	return lines
}

// FirstBaselineY returns the y (user space, origin top-left) of the first
// wrapped line's baseline, given the box's top-left-relative y coordinate
// by, its height h, the resolved line height, the number of lines and the
// font's scaled vertical metrics (spec.md §4.3).
func FirstBaselineY(by, h, lineHeight float64, numLines int, ascent, descent, capHeight float64, anchor document.TextBoxAnchorY) float64 {
	switch anchor {
	case document.TextBoxAnchorBottom:
		last := by + h - math.Abs(descent)
		return last - lineHeight*float64(numLines-1)
	case document.TextBoxAnchorCenter:
		blockHeight := lineHeight * float64(numLines)
		top := by + (h-blockHeight)/2
		return top + ascent
	case document.TextBoxAnchorCapline:
		return by + capHeight
	case document.TextBoxAnchorBaseline:
		return by
	default: // top
		return by + ascent
	}
}

// LineHeight resolves a textbox's configured line height, defaulting to
// 1.2 * size when unset.
func LineHeight(configured, size float64) float64 {
	if configured > 0 {
		return configured
	}
	return 1.2 * size
}
