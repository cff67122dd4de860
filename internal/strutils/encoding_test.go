/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package strutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUTF16RoundTripsASCIIAndNonASCII(t *testing.T) {
	for _, s := range []string{"Title", "café", "日本語"} {
		assert.Equal(t, s, UTF16ToString([]byte(StringToUTF16(s))))
	}
}

func TestUTF16ToRunesHandlesSingleByteInput(t *testing.T) {
	assert.Equal(t, []rune{'A'}, UTF16ToRunes([]byte{'A'}))
}

func TestUTF16ToRunesPadsOddLengthInput(t *testing.T) {
	runes := UTF16ToRunes([]byte{0x00, 0x41, 0x42})
	assert.Equal(t, []rune{'A', 0x4200}, runes)
}

func TestPDFDocEncodingRoundTripsPlainASCII(t *testing.T) {
	assert.Equal(t, "Hello, World!", PDFDocEncodingToString(StringToPDFDocEncoding("Hello, World!")))
}

func TestPDFDocEncodingEncodesBulletAndTrademarkSpecials(t *testing.T) {
	encoded := StringToPDFDocEncoding("•™")
	assert.Equal(t, []byte{0x80, 0x92}, encoded)
	assert.Equal(t, "•™", PDFDocEncodingToString(encoded))
}

func TestPDFDocEncodingToRunesSkipsUndefinedBytes(t *testing.T) {
	runes := PDFDocEncodingToRunes([]byte{'A', 0x00, 'B'})
	assert.Equal(t, []rune{'A', 'B'}, runes)
}

func TestStringToPDFDocEncodingSkipsUnmappableRunes(t *testing.T) {
	encoded := StringToPDFDocEncoding("A中B")
	assert.Equal(t, []byte{'A', 'B'}, encoded)
}
