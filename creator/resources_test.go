/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package creator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rupdf/rupdf-go/core"
	"github.com/rupdf/rupdf-go/document"
	"github.com/rupdf/rupdf-go/model"
)

func newTestAssembler(doc *document.Document) *assembler {
	return &assembler{
		doc:       doc,
		encoder:   core.NewRawEncoder(),
		fonts:     map[string]*model.PdfFont{},
		images:    map[string]*resolvedImage{},
		xobjNames: model.NewPdfPageResources(),
		gsNames:   map[[2]float64]core.PdfObjectName{},
		gsDicts:   map[core.PdfObjectName]*core.PdfObjectDictionary{},
	}
}

func TestResolveFontReturnsErrorForUndefinedAlias(t *testing.T) {
	a := newTestAssembler(&document.Document{})
	_, err := a.resolveFont("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined font reference")
}

func TestResolveImageReturnsErrorForUndefinedAlias(t *testing.T) {
	a := newTestAssembler(&document.Document{})
	_, err := a.resolveImage("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined image reference")
}

func TestResolveImagePropagatesResourceValidationError(t *testing.T) {
	doc := &document.Document{
		Resources: document.Resources{
			Images: map[string]*document.ImageResource{
				"bad": {}, // neither Path nor Bytes set.
			},
		},
	}
	a := newTestAssembler(doc)
	_, err := a.resolveImage("bad")
	require.Error(t, err)
}

const testSVG = `<svg viewBox="0 0 10 10"><rect x="0" y="0" width="10" height="10" fill="red"/></svg>`

func TestResolveImageClassifiesSVGAsVectorFormAndCaches(t *testing.T) {
	doc := &document.Document{
		Resources: document.Resources{
			Images: map[string]*document.ImageResource{
				"logo": {Bytes: []byte(testSVG)},
			},
		},
	}
	a := newTestAssembler(doc)

	first, err := a.resolveImage("logo")
	require.NoError(t, err)
	assert.True(t, first.isForm)
	assert.Equal(t, 10.0, first.bboxW)
	assert.Equal(t, 10.0, first.bboxH)
	assert.Equal(t, core.PdfObjectName("Im0"), first.name)

	second, err := a.resolveImage("logo")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestResolveImageAssignsDistinctNamesPerAlias(t *testing.T) {
	doc := &document.Document{
		Resources: document.Resources{
			Images: map[string]*document.ImageResource{
				"a": {Bytes: []byte(testSVG)},
				"b": {Bytes: []byte(testSVG)},
			},
		},
	}
	a := newTestAssembler(doc)

	ra, err := a.resolveImage("a")
	require.NoError(t, err)
	rb, err := a.resolveImage("b")
	require.NoError(t, err)
	assert.NotEqual(t, ra.name, rb.name)
}

func TestLoadResourceBytesPrefersInlineBytesOverPath(t *testing.T) {
	data, err := loadResourceBytes("/nonexistent/path.bin", []byte("inline"))
	require.NoError(t, err)
	assert.Equal(t, []byte("inline"), data)
}

func TestLoadResourceBytesReadsFileWhenNoBytesGiven(t *testing.T) {
	_, err := loadResourceBytes("/nonexistent/path.bin", nil)
	require.Error(t, err)
}
