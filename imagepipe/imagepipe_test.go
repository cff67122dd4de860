/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package imagepipe

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestBuildDecodesOpaquePNGAndReencodesAsJPEG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, color.RGBA{R: 10, G: 20, B: 30, A: 255})
		}
	}

	out, err := Build(encodePNG(t, src), 90)
	require.NoError(t, err)
	assert.Equal(t, 4, out.Width)
	assert.Equal(t, 3, out.Height)
	assert.NotEmpty(t, out.Stream)
	assert.Equal(t, byte(0xFF), out.Stream[0])
	assert.Equal(t, byte(0xD8), out.Stream[1]) // JPEG SOI marker.
}

func TestBuildFlattensTransparentPixelsOntoWhite(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.RGBA{R: 255, A: 0}) // fully transparent red.

	out, err := Build(encodePNG(t, src), 90)
	require.NoError(t, err)
	assert.NotEmpty(t, out.Stream)
}

func TestBuildReturnsErrorForUnrecognizedData(t *testing.T) {
	_, err := Build([]byte("not an image"), 90)
	require.Error(t, err)
}

func TestFlattenOnWhiteProducesOpaqueRGBA(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.Set(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 128})

	flat := flattenOnWhite(src)
	_, _, _, a := flat.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xFFFF), a)
}
