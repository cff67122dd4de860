/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package imagepipe decodes a raster image supplied as raw bytes (PNG, JPEG
// or WebP), flattens it to opaque RGB and re-encodes it as JPEG for
// embedding as a PDF Image XObject. Grounded on core.DCTEncoder for the
// re-encode; classification by magic bytes is delegated to the stdlib
// image package's registered-format sniffing.
package imagepipe

import (
	"bytes"
	goimage "image"
	"image/draw"
	_ "image/jpeg" // registers the JPEG decoder.
	_ "image/png"  // registers the PNG decoder.

	"golang.org/x/image/webp"

	"github.com/rupdf/rupdf-go/common"
	"github.com/rupdf/rupdf-go/core"
	"github.com/rupdf/rupdf-go/model"
)

func init() {
	goimage.RegisterFormat("webp", "RIFF????WEBP", webp.Decode, webp.DecodeConfig)
}

// Build decodes data (a complete PNG/JPEG/WebP file), flattens any
// transparency onto white, re-encodes it as JPEG at the given quality and
// returns a ready-to-serialize Image XObject.
func Build(data []byte, quality int) (*model.XObjectImage, error) {
	src, format, err := goimage.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	common.Log.Debug("imagepipe: decoded %s image %v", format, src.Bounds())

	flat := flattenOnWhite(src)

	encoder := core.NewDCTEncoder()
	encoder.Quality = quality
	jpegBytes, err := encoder.EncodeImage(flat)
	if err != nil {
		return nil, err
	}

	b := flat.Bounds()
	return &model.XObjectImage{
		Width:   b.Dx(),
		Height:  b.Dy(),
		Encoder: encoder,
		Stream:  jpegBytes,
	}, nil
}

// flattenOnWhite composites img over an opaque white background, since PDF
// Image XObjects built here always use /DCTDecode (JPEG), a format with no
// alpha channel.
func flattenOnWhite(img goimage.Image) *goimage.RGBA {
	b := img.Bounds()
	dst := goimage.NewRGBA(b)
	draw.Draw(dst, b, goimage.White, goimage.Point{}, draw.Src)
	draw.Draw(dst, b, img, b.Min, draw.Over)
	return dst
}
