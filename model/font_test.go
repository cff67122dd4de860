/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rupdf/rupdf-go/core"
	"github.com/rupdf/rupdf-go/internal/ttf"
)

func newTestFont() *PdfFont {
	return &PdfFont{
		Metrics: ttf.Font{
			UnitsPerEm: 1000,
			Ascent:     800,
			Descent:    -200,
			CapHeight:  700,
			Chars: map[rune]ttf.GID{
				'A': 5,
				'B': 6,
				'C': 8,
			},
			Widths: []uint16{0, 0, 0, 0, 0, 600, 650, 0, 700},
		},
		used: map[ttf.GID]bool{},
	}
}

func TestGIDMapsKnownRunesAndFallsBackToNotdef(t *testing.T) {
	f := newTestFont()
	assert.Equal(t, ttf.GID(5), f.GID('A'))
	assert.Equal(t, ttf.GID(0), f.GID('z'))
	assert.True(t, f.used[5])
	assert.True(t, f.used[0])
}

func TestAdvanceWidth1000ScalesByUnitsPerEm(t *testing.T) {
	f := newTestFont()
	assert.Equal(t, 600.0, f.AdvanceWidth1000(5))

	f.Metrics.UnitsPerEm = 2000
	assert.Equal(t, 300.0, f.AdvanceWidth1000(5))

	f.Metrics.UnitsPerEm = 0
	assert.Equal(t, 0.0, f.AdvanceWidth1000(5))
}

func TestGidToRuneInvertsOnlyUsedGlyphs(t *testing.T) {
	f := newTestFont()
	f.GID('A')
	f.GID('C')

	inverted := f.gidToRune()
	require.Len(t, inverted, 2)
	assert.Equal(t, 'A', inverted[5])
	assert.Equal(t, 'C', inverted[8])
	_, ok := inverted[6]
	assert.False(t, ok)
}

func TestWidthsArrayGroupsConsecutiveGIDsIntoOneRun(t *testing.T) {
	f := newTestFont()
	f.GID('A') // gid 5
	f.GID('B') // gid 6, consecutive with 5
	f.GID('C') // gid 8, not consecutive

	arr := f.widthsArray()
	// Two runs expected: "5 [600 650]" and "8 [700]".
	assert.Equal(t, "[5 [600 650] 8 [700]]", arr.WriteString())
}

func TestFontFlagsSetsNonsymbolicAndStyleBits(t *testing.T) {
	m := &ttf.Font{}
	assert.Equal(t, int64(32), fontFlags(m))

	m.IsFixedPitch = true
	assert.Equal(t, int64(33), fontFlags(m))

	m.ItalicAngle = -12
	assert.Equal(t, int64(97), fontFlags(m))

	m.Bold = true
	assert.Equal(t, int64(97|1<<18), fontFlags(m))
}

func TestStemVEstimateDistinguishesWeight(t *testing.T) {
	assert.Equal(t, int64(80), stemVEstimate(false))
	assert.Equal(t, int64(120), stemVEstimate(true))
}

func TestDescendantDictUsesCIDFontType2ForGlyfFlavor(t *testing.T) {
	f := newTestFont()
	f.GID('A')
	descriptor := core.MakeIndirectObject(nil)

	d := f.descendantDict("Subset+Test", descriptor)
	assert.Equal(t, "/CIDFontType2", d.Get("Subtype").WriteString())
	assert.Equal(t, "/Identity", d.Get("CIDToGIDMap").WriteString())
	assert.Equal(t, "/Subset+Test", d.Get("BaseFont").WriteString())
}

func TestDescendantDictUsesCIDFontType0ForCFFFlavor(t *testing.T) {
	f := newTestFont()
	f.Metrics.Flavor = ttf.FlavorCFF
	f.GID('A')
	descriptor := core.MakeIndirectObject(nil)

	d := f.descendantDict("Subset+Test", descriptor)
	assert.Equal(t, "/CIDFontType0", d.Get("Subtype").WriteString())
	assert.Nil(t, d.Get("CIDToGIDMap"))
}
