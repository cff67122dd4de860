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

func TestNewPdfPageHasEmptyResourcesAndIndirectHandle(t *testing.T) {
	p := NewPdfPage()
	require.NotNil(t, p.Resources)
	require.NotNil(t, p.Indirect())
}

func TestToPdfObjectOmitsUnsetOptionalEntries(t *testing.T) {
	p := NewPdfPage()
	d := p.ToPdfObject().(*core.PdfObjectDictionary)

	assert.Equal(t, "/Page", d.Get("Type").WriteString())
	assert.Nil(t, d.Get("Parent"))
	assert.Nil(t, d.Get("MediaBox"))
	assert.Nil(t, d.Get("Contents"))
	require.NotNil(t, d.Get("Resources"))
}

func TestToPdfObjectIncludesMediaBoxAndContentsWhenSet(t *testing.T) {
	p := NewPdfPage()
	p.MediaBox = NewPdfRectangle(0, 0, 612, 792)
	p.Parent = core.MakeIndirectObject(nil)
	p.Parent.ObjectNumber = 3

	stream, err := core.MakeStream([]byte("q Q"), core.NewRawEncoder())
	require.NoError(t, err)
	p.Contents = stream

	d := p.ToPdfObject().(*core.PdfObjectDictionary)
	require.NotNil(t, d.Get("MediaBox"))
	assert.Equal(t, "[0 0 612 792]", d.Get("MediaBox").WriteString())
	require.NotNil(t, d.Get("Contents"))
}
