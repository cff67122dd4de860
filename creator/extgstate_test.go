/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package creator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rupdf/rupdf-go/contentstream"
	"github.com/rupdf/rupdf-go/core"
	"github.com/rupdf/rupdf-go/document"
	"github.com/rupdf/rupdf-go/model"
)

func TestWithAlphaSkipsQGsQWhenFullyOpaque(t *testing.T) {
	a := newTestAssembler(&document.Document{})
	cc := contentstream.NewContentCreator()
	page := model.NewPdfPage()

	called := false
	a.withAlpha(cc, page, 1, 1, func() { called = true })

	assert.True(t, called)
	assert.Equal(t, "", cc.String())
}

func TestWithAlphaWrapsDrawInQGsQWhenTranslucent(t *testing.T) {
	a := newTestAssembler(&document.Document{})
	cc := contentstream.NewContentCreator()
	page := model.NewPdfPage()

	a.withAlpha(cc, page, 1, 0.5, func() { cc.Add_f() })

	assert.Equal(t, "q\n/GS0 gs\nf\nQ\n", cc.String())
}

func TestExtGStateNameDedupesIdenticalAlphaPairs(t *testing.T) {
	a := newTestAssembler(&document.Document{})
	page := model.NewPdfPage()

	name1 := a.extGStateName(page, 1, 0.5)
	name2 := a.extGStateName(page, 1, 0.5)
	assert.Equal(t, name1, name2)
	assert.Len(t, a.gsDicts, 1)

	name3 := a.extGStateName(page, 0.5, 1)
	assert.NotEqual(t, name1, name3)
	assert.Len(t, a.gsDicts, 2)
}

func TestExtGStateDictCarriesCAAndCaEntries(t *testing.T) {
	a := newTestAssembler(&document.Document{})
	page := model.NewPdfPage()

	name := a.extGStateName(page, 0.25, 0.75)
	dict := a.gsDicts[name]
	require.NotNil(t, dict)
	assert.Equal(t, "0.25", dict.Get("CA").WriteString())
	assert.Equal(t, "0.75", dict.Get("ca").WriteString())
}

func TestExtGStateRegistersDictInPageResources(t *testing.T) {
	a := newTestAssembler(&document.Document{})
	page := model.NewPdfPage()

	a.extGStateName(page, 1, 0.5)
	resDict := page.Resources.ToPdfObject().(*core.PdfObjectDictionary)
	require.NotNil(t, resDict.Get("ExtGState"))
}
