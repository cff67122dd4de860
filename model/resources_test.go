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
)

func TestGenerateXObjectNameProducesDistinctSequentialNames(t *testing.T) {
	r := NewPdfPageResources()
	assert.Equal(t, core.PdfObjectName("Im0"), r.GenerateXObjectName())
	assert.Equal(t, core.PdfObjectName("Im1"), r.GenerateXObjectName())
}

func TestGenerateXObjectNameSkipsAlreadyRegisteredNames(t *testing.T) {
	r := NewPdfPageResources()
	r.SetXObjectByName("Im0", core.MakeNull())
	assert.Equal(t, core.PdfObjectName("Im1"), r.GenerateXObjectName())
}

func TestToPdfObjectOmitsEmptySubdictionaries(t *testing.T) {
	r := NewPdfPageResources()
	d := r.ToPdfObject().(*core.PdfObjectDictionary)
	assert.Nil(t, d.Get("Font"))
	assert.Nil(t, d.Get("XObject"))
	assert.Nil(t, d.Get("ExtGState"))
	require.NotNil(t, d.Get("ProcSet"))
}

func TestToPdfObjectIncludesPopulatedSubdictionaries(t *testing.T) {
	r := NewPdfPageResources()
	r.SetFontByName("F1", core.MakeName("Helvetica"))
	r.SetExtGState("GS0", core.MakeDict())

	d := r.ToPdfObject().(*core.PdfObjectDictionary)
	require.NotNil(t, d.Get("Font"))
	require.NotNil(t, d.Get("ExtGState"))
	assert.Nil(t, d.Get("XObject"))
}
