/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"github.com/rupdf/rupdf-go/core"
)

// XObjectForm is a /Subtype /Form XObject: a self-contained content stream with its
// own BBox and optional Matrix and Resources, used here to hold vector (SVG) artwork.
// Grounded on the teacher's model/xobject.go XObjectForm, trimmed to the construction
// path only (Group/Ref/MetaData/OPI/OC and the rest of the teacher's read-side
// passthrough fields are never populated by a fresh assembler).
type XObjectForm struct {
	BBox      *PdfRectangle
	Matrix    []float64 // 6 values, nil means identity.
	Resources *PdfPageResources
	Stream    []byte
	Encoder   core.StreamEncoder // nil means core.NewRawEncoder(); set to a FlateEncoder under render.Options.Compress.
}

// ToPdfObject returns the form XObject as a content stream object, its body
// passed through Encoder (spec.md §6: Form XObject bodies compress exactly
// like content streams and font files do).
func (xform *XObjectForm) ToPdfObject() core.PdfObject {
	encoder := xform.Encoder
	if encoder == nil {
		encoder = core.NewRawEncoder()
	}
	stream, err := core.MakeStream(xform.Stream, encoder)
	if err != nil {
		// FlateEncoder.EncodeBytes only fails on an underlying write error,
		// impossible for an in-memory buffer.
		panic(err)
	}
	dict := stream.PdfObjectDictionary

	dict.Set("Type", core.MakeName("XObject"))
	dict.Set("Subtype", core.MakeName("Form"))
	dict.Set("FormType", core.MakeInteger(1))
	if xform.BBox != nil {
		dict.Set("BBox", xform.BBox.ToPdfObject())
	}
	if len(xform.Matrix) == 6 {
		vals := make([]core.PdfObject, 6)
		for i, v := range xform.Matrix {
			vals[i] = core.MakeFloat(v)
		}
		dict.Set("Matrix", core.MakeArray(vals...))
	}
	if xform.Resources != nil {
		dict.Set("Resources", xform.Resources.ToPdfObject())
	}

	return stream
}

// XObjectImage is a /Subtype /Image XObject holding a JPEG-encoded raster (DCTDecode
// is the only filter the image pipeline ever produces, per spec). Grounded on the
// teacher's model/xobject.go XObjectImage, trimmed to drop the colorspace/mask/alpha
// passthrough machinery that only matters when reading an existing image stream.
type XObjectImage struct {
	Width, Height int
	Encoder       core.StreamEncoder // *core.DCTEncoder, populated with Width/Height/ColorSpace.
	Stream        []byte             // already-encoded (JPEG) bytes.
}

// ToPdfObject returns the image XObject as a stream object.
func (ximg *XObjectImage) ToPdfObject() core.PdfObject {
	stream, err := core.MakeStream(ximg.Stream, ximg.Encoder)
	if err != nil {
		// DCTEncoder.EncodeBytes never fails (identity passthrough of pre-encoded JPEG data).
		panic(err)
	}
	stream.Set("Type", core.MakeName("XObject"))
	stream.Set("Subtype", core.MakeName("Image"))
	return stream
}
