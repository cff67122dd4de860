/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package svgpath

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumParsesPixelSuffixAndWhitespace(t *testing.T) {
	assert.Equal(t, 12.5, num(" 12.5px "))
	assert.Equal(t, 0.0, num(""))
}

func TestParseColorHandlesHexShorthandAndNamed(t *testing.T) {
	r, g, b := parseColor("#f00")
	assert.Equal(t, [3]float64{1, 0, 0}, [3]float64{r, g, b})

	r, g, b = parseColor("#0000ff")
	assert.Equal(t, [3]float64{0, 0, 1}, [3]float64{r, g, b})

	r, g, b = parseColor("blue")
	assert.Equal(t, [3]float64{0, 0, 1}, [3]float64{r, g, b})

	r, g, b = parseColor("not-a-color")
	assert.Equal(t, [3]float64{0, 0, 0}, [3]float64{r, g, b})
}

func TestParsePointsSplitsOnCommaAndSpace(t *testing.T) {
	pts := parsePoints("0,0 10,0 10,10")
	require.Len(t, pts, 3)
	assert.Equal(t, [2]float64{10, 0}, pts[1])
}

func TestBuildUsesViewBoxAsBBox(t *testing.T) {
	svg := `<svg viewBox="0 0 200 100"><rect x="10" y="10" width="50" height="20" fill="#ff0000"/></svg>`
	form, err := Build([]byte(svg))
	require.NoError(t, err)
	assert.Equal(t, 200.0, form.BBox.Width())
	assert.Equal(t, 100.0, form.BBox.Height())
	assert.Contains(t, string(form.Stream), "10 10 50 20 re")
	assert.Contains(t, string(form.Stream), "1 0 0 rg")
}

func TestBuildFallsBackToWidthHeightWithoutViewBox(t *testing.T) {
	svg := `<svg width="64" height="32"><circle cx="32" cy="16" r="10"/></svg>`
	form, err := Build([]byte(svg))
	require.NoError(t, err)
	assert.Equal(t, 64.0, form.BBox.Width())
	assert.Equal(t, 32.0, form.BBox.Height())
}

func TestBuildDefaultsBBoxTo100x100WhenNothingSpecified(t *testing.T) {
	svg := `<svg><line x1="0" y1="0" x2="10" y2="10" stroke="black"/></svg>`
	form, err := Build([]byte(svg))
	require.NoError(t, err)
	assert.Equal(t, 100.0, form.BBox.Width())
	assert.Equal(t, 100.0, form.BBox.Height())
}

func TestBuildRendersClosedPolygonWithClosePath(t *testing.T) {
	svg := `<svg viewBox="0 0 10 10"><polygon points="0,0 10,0 5,10" fill="green"/></svg>`
	form, err := Build([]byte(svg))
	require.NoError(t, err)
	stream := string(form.Stream)
	assert.True(t, strings.Contains(stream, "h\n"))
	assert.Contains(t, stream, "0 0.5 0 rg")
}

func TestBuildRejectsMalformedViewBox(t *testing.T) {
	svg := `<svg viewBox="0 0 10"></svg>`
	_, err := Build([]byte(svg))
	require.Error(t, err)
}

func TestBuildRejectsInvalidXML(t *testing.T) {
	_, err := Build([]byte("<svg><rect></svg>"))
	require.Error(t, err)
}
