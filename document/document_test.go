/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package document

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFontResourceRequiresExactlyOneSource(t *testing.T) {
	require.Error(t, (&FontResource{}).Validate())
	require.Error(t, (&FontResource{Path: "a.ttf", Bytes: []byte{1}}).Validate())
	assert.NoError(t, (&FontResource{Path: "a.ttf"}).Validate())
	assert.NoError(t, (&FontResource{Bytes: []byte{1}}).Validate())
}

func TestImageResourceRequiresExactlyOneSource(t *testing.T) {
	require.Error(t, (&ImageResource{}).Validate())
	require.Error(t, (&ImageResource{Path: "a.png", Bytes: []byte{1}}).Validate())
	assert.NoError(t, (&ImageResource{Path: "a.png"}).Validate())
}

func TestPageValidateRejectsNonPositiveOrNonFiniteDimensions(t *testing.T) {
	require.Error(t, (&Page{Width: 0, Height: 100}).Validate())
	require.Error(t, (&Page{Width: 100, Height: math.Inf(1)}).Validate())
	assert.NoError(t, (&Page{Width: 612, Height: 792}).Validate())
}

func TestColorFloatScalesToUnitRange(t *testing.T) {
	r, g, b, a := RGB(255, 0, 128).Float()
	assert.Equal(t, 1.0, r)
	assert.Equal(t, 0.0, g)
	assert.InDelta(t, 0.502, b, 0.01)
	assert.Equal(t, 1.0, a)

	_, _, _, a2 := RGBA(0, 0, 0, 64).Float()
	assert.InDelta(t, 0.251, a2, 0.01)
}
