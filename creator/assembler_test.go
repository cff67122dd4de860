/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package creator

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rupdf/rupdf-go/document"
)

func minimalDoc() *document.Document {
	return &document.Document{
		Metadata: document.Metadata{CreationDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		Pages: []*document.Page{
			{
				Width:  100,
				Height: 100,
				Elements: []document.Element{
					&document.RectElement{X: 10, Y: 10, W: 20, H: 20, FillColor: colorPtr(document.RGB(0, 0, 0))},
				},
			},
		},
	}
}

func colorPtr(c document.Color) *document.Color { return &c }

func TestAssembleProducesWellFormedPdfBytes(t *testing.T) {
	out, err := Assemble(minimalDoc(), false)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("%PDF-1.7\n")))
	require.True(t, strings.HasSuffix(string(out), "%%EOF"))
	assert.Contains(t, string(out), "/Type /Catalog")
	assert.Contains(t, string(out), "/Type /Page")
	assert.Contains(t, string(out), "xref")
}

func TestAssembleRejectsInvalidPageDimensions(t *testing.T) {
	doc := &document.Document{Pages: []*document.Page{{Width: 0, Height: 100}}}
	_, err := Assemble(doc, false)
	require.Error(t, err)
}

func TestAssembleRejectsInvalidElement(t *testing.T) {
	doc := &document.Document{
		Pages: []*document.Page{
			{Width: 100, Height: 100, Elements: []document.Element{&document.RectElement{W: -1, H: 10}}},
		},
	}
	_, err := Assemble(doc, false)
	require.Error(t, err)
}

func TestAssembleCompressedStillParsesAsClassicXref(t *testing.T) {
	out, err := Assemble(minimalDoc(), true)
	require.NoError(t, err)
	assert.Contains(t, string(out), "/FlateDecode")
	assert.Contains(t, string(out), "trailer")
}

func TestAssembleIsIdempotentForIdenticalDocument(t *testing.T) {
	first, err := Assemble(minimalDoc(), false)
	require.NoError(t, err)
	second, err := Assemble(minimalDoc(), false)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAssembleOmitsCreationDateWhenUnset(t *testing.T) {
	doc := &document.Document{
		Pages: []*document.Page{{Width: 100, Height: 100}},
	}
	out, err := Assemble(doc, false)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "/CreationDate")
}

func TestAssembleWithSharedImageAcrossPagesReusesXObjectName(t *testing.T) {
	img := &document.ImageResource{Bytes: []byte(testSVG)}
	doc := &document.Document{
		Resources: document.Resources{Images: map[string]*document.ImageResource{"logo": img}},
		Pages: []*document.Page{
			{Width: 50, Height: 50, Elements: []document.Element{&document.ImageElement{Image: "logo", W: 10}}},
			{Width: 50, Height: 50, Elements: []document.Element{&document.ImageElement{Image: "logo", W: 20}}},
		},
	}
	out, err := Assemble(doc, false)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(out), "/Subtype /Form"))
}
