/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

import (
	"bytes"
	"compress/zlib"
	"image"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawEncoderStreamHasNoFilter(t *testing.T) {
	stream, err := MakeStream([]byte("hello"), NewRawEncoder())
	require.NoError(t, err)
	assert.Nil(t, stream.Get("Filter"))
	assert.Equal(t, []byte("hello"), stream.Stream)
	assert.Equal(t, "5", stream.Get("Length").WriteString())
}

func TestFlateEncoderStreamIsInflatable(t *testing.T) {
	stream, err := MakeStream([]byte("hello world hello world"), NewFlateEncoder())
	require.NoError(t, err)
	assert.Equal(t, "/FlateDecode", stream.Get("Filter").WriteString())

	r, err := zlib.NewReader(bytes.NewReader(stream.Stream))
	require.NoError(t, err)
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "hello world hello world", string(out))
}

func TestDCTEncoderStreamDictDescribesImage(t *testing.T) {
	enc := NewDCTEncoder()
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	jpegBytes, err := enc.EncodeImage(img)
	require.NoError(t, err)
	require.NotEmpty(t, jpegBytes)

	stream, err := MakeStream(jpegBytes, enc)
	require.NoError(t, err)
	assert.Equal(t, "/DCTDecode", stream.Get("Filter").WriteString())
	assert.Equal(t, "4", stream.Get("Width").WriteString())
	assert.Equal(t, "2", stream.Get("Height").WriteString())
	assert.Equal(t, "/DeviceRGB", stream.Get("ColorSpace").WriteString())
}
