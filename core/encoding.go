/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

// Stream encoders used when assembling a document. Only the write-side
// filters the assembler actually emits are kept: Raw (identity), Flate
// (content streams, font programs, Form XObjects) and DCT (re-encoded
// raster images). The teacher's read-side filters (LZW, CCITTFax, JBIG2,
// JPX, ASCII85/Hex, RunLength, multi-filter chains) exist to decode
// arbitrary PDFs already on disk, a capability this assembler never
// needs since it only ever reads the streams it just wrote.

import (
	"bytes"
	"compress/zlib"
	goimage "image"
	"image/jpeg"
)

// Stream encoding filter names.
const (
	StreamEncodingFilterNameFlate = "FlateDecode"
	StreamEncodingFilterNameDCT   = "DCTDecode"
	StreamEncodingFilterNameRaw   = "Raw"
)

const (
	// DefaultJPEGQuality is the default quality used by the DCT encoder.
	DefaultJPEGQuality = 85
)

// StreamEncoder represents the interface for all PDF stream encoders.
type StreamEncoder interface {
	GetFilterName() string
	MakeStreamDict() *PdfObjectDictionary
	EncodeBytes(data []byte) ([]byte, error)
}

// RawEncoder implements identity encoding (no compression / filter).
type RawEncoder struct{}

// NewRawEncoder returns a new instance of the raw encoder.
func NewRawEncoder() *RawEncoder {
	return &RawEncoder{}
}

// GetFilterName returns the name of the encoding filter.
func (enc *RawEncoder) GetFilterName() string {
	return StreamEncodingFilterNameRaw
}

// MakeStreamDict makes a new instance of an encoding dictionary for a stream object.
func (enc *RawEncoder) MakeStreamDict() *PdfObjectDictionary {
	return MakeDict()
}

// EncodeBytes returns the passed in slice unchanged.
func (enc *RawEncoder) EncodeBytes(data []byte) ([]byte, error) {
	return data, nil
}

// FlateEncoder represents Flate (zlib) encoding, used for content streams,
// embedded font programs and Form XObject bodies when compression is on.
type FlateEncoder struct{}

// NewFlateEncoder makes a new flate encoder.
func NewFlateEncoder() *FlateEncoder {
	return &FlateEncoder{}
}

// GetFilterName returns the name of the encoding filter.
func (enc *FlateEncoder) GetFilterName() string {
	return StreamEncodingFilterNameFlate
}

// MakeStreamDict makes a new instance of an encoding dictionary for a stream object.
func (enc *FlateEncoder) MakeStreamDict() *PdfObjectDictionary {
	dict := MakeDict()
	dict.Set("Filter", MakeName(enc.GetFilterName()))
	return dict
}

// EncodeBytes encodes the passed in slice via zlib/Flate compression.
func (enc *FlateEncoder) EncodeBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DCTEncoder represents DCT (JPEG) encoding, used for raster Image XObjects.
type DCTEncoder struct {
	// ColorComponents is the number of color components per pixel (3 for RGB).
	ColorComponents int
	// BitsPerComponent is the number of bits used to represent each color component.
	BitsPerComponent int
	// Width and Height of the image in samples, as encoded.
	Width, Height int
	// Quality is the JPEG quality factor used on EncodeBytes (when encoding
	// from an image.Image instead of pre-encoded JPEG bytes).
	Quality int
}

// NewDCTEncoder makes a new DCT encoder with default parameters.
func NewDCTEncoder() *DCTEncoder {
	return &DCTEncoder{
		ColorComponents:  3,
		BitsPerComponent: 8,
		Quality:          DefaultJPEGQuality,
	}
}

// GetFilterName returns the name of the encoding filter.
func (enc *DCTEncoder) GetFilterName() string {
	return StreamEncodingFilterNameDCT
}

// MakeStreamDict makes a new instance of an encoding dictionary for a stream object.
func (enc *DCTEncoder) MakeStreamDict() *PdfObjectDictionary {
	dict := MakeDict()
	dict.Set("Filter", MakeName(enc.GetFilterName()))
	dict.Set("Width", MakeInteger(int64(enc.Width)))
	dict.Set("Height", MakeInteger(int64(enc.Height)))
	dict.Set("BitsPerComponent", MakeInteger(int64(enc.BitsPerComponent)))
	if enc.ColorComponents == 1 {
		dict.Set("ColorSpace", MakeName("DeviceGray"))
	} else {
		dict.Set("ColorSpace", MakeName("DeviceRGB"))
	}
	return dict
}

// EncodeBytes returns `data` unchanged, so `data` must already be JPEG bytes
// such as those EncodeImage returns. Present to satisfy StreamEncoder; the
// image pipeline calls EncodeImage directly since it has the typed
// image.Image in hand.
func (enc *DCTEncoder) EncodeBytes(data []byte) ([]byte, error) {
	return data, nil
}

// EncodeImage JPEG-encodes img at the encoder's Quality, recording Width/
// Height for MakeStreamDict.
func (enc *DCTEncoder) EncodeImage(img goimage.Image) ([]byte, error) {
	b := img.Bounds()
	enc.Width = b.Dx()
	enc.Height = b.Dy()

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: enc.Quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
