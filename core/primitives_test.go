/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeFloatWritesIntegralValuesWithoutDecimalPoint(t *testing.T) {
	assert.Equal(t, "612", MakeFloat(612).WriteString())
	assert.Equal(t, "72.5", MakeFloat(72.5).WriteString())
}

func TestMakeHexStringRoundTripsRawBytes(t *testing.T) {
	s := MakeHexString(string([]byte{0x00, 0x41, 0xFF}))
	assert.Equal(t, "<0041ff>", s.WriteString())
}

func TestMakeStringEscapesDelimiters(t *testing.T) {
	s := MakeString("(a)\\b")
	assert.Equal(t, `(\(a\)\\b)`, s.WriteString())
}

func TestDictionarySetGetRoundTrip(t *testing.T) {
	d := MakeDict()
	d.Set("Type", MakeName("Page"))
	d.Set("Count", MakeInteger(3))

	require.NotNil(t, d.Get("Type"))
	assert.Equal(t, "/Page", d.Get("Type").WriteString())
	assert.Nil(t, d.Get("Missing"))
}

func TestMakeArrayWriteString(t *testing.T) {
	arr := MakeArray(MakeInteger(1), MakeInteger(2), MakeFloat(3.5))
	assert.Equal(t, "[1 2 3.5]", arr.WriteString())
}

func TestMakeEncodedStringEncodingFollowsUTF16Flag(t *testing.T) {
	ascii := MakeEncodedString("Title", false)
	assert.Equal(t, "(Title)", ascii.WriteString())

	utf16 := MakeEncodedString("café", true)
	// UTF-16BE with a byte-order mark: not equal to the plain literal form.
	assert.NotEqual(t, "(café)", utf16.WriteString())
}
