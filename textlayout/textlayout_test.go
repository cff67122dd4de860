/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textlayout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rupdf/rupdf-go/document"
)

func TestAlignOffsetLeftCenterRight(t *testing.T) {
	assert.Equal(t, 0.0, AlignOffset(document.AlignLeft, 100))
	assert.Equal(t, -50.0, AlignOffset(document.AlignCenter, 100))
	assert.Equal(t, -100.0, AlignOffset(document.AlignRight, 100))
}

func TestBoxOffsetYTopCenterBottom(t *testing.T) {
	assert.Equal(t, 0.0, BoxOffsetY(document.BoxAnchorTop, 80))
	assert.Equal(t, -40.0, BoxOffsetY(document.BoxAnchorCenter, 80))
	assert.Equal(t, -80.0, BoxOffsetY(document.BoxAnchorBottom, 80))
}

func TestBaselineOffsetBaselineCaplineCenter(t *testing.T) {
	ascent, descent, capHeight := 800.0, -200.0, 700.0
	assert.Equal(t, 0.0, BaselineOffset(ascent, descent, capHeight, document.AnchorBaseline))
	assert.Equal(t, capHeight, BaselineOffset(ascent, descent, capHeight, document.AnchorCapline))
	// center balances the ascent/descent span around the nominal point.
	assert.Equal(t, 500.0, BaselineOffset(ascent, descent, capHeight, document.AnchorCenter))
}

func TestLineHeightDefaultsTo1Point2TimesSize(t *testing.T) {
	size := 12.0
	assert.Equal(t, 1.2*size, LineHeight(0, size))
	assert.Equal(t, 20.0, LineHeight(20, 12))
}

func TestFirstBaselineYTopAnchorAddsAscent(t *testing.T) {
	y := FirstBaselineY(10, 200, 14.4, 3, 9.6, -2.4, 8.4, document.TextBoxAnchorTop)
	assert.Equal(t, 10+9.6, y)
}

func TestFirstBaselineYBaselineAnchorReturnsByUnchanged(t *testing.T) {
	y := FirstBaselineY(10, 200, 14.4, 3, 9.6, -2.4, 8.4, document.TextBoxAnchorBaseline)
	assert.Equal(t, 10.0, y)
}

func TestFirstBaselineYBottomAnchorAccountsForTrailingLines(t *testing.T) {
	by, h, lineHeight, numLines, descent := 10.0, 200.0, 14.4, 3, -2.4
	y := FirstBaselineY(by, h, lineHeight, numLines, 9.6, descent, 8.4, document.TextBoxAnchorBottom)
	last := by + h - 2.4
	assert.Equal(t, last-lineHeight*float64(numLines-1), y)
}
