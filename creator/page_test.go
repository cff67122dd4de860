/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package creator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rupdf/rupdf-go/document"
)

func TestBuildPageEmitsNoContentForEmptyPage(t *testing.T) {
	a := newTestAssembler(&document.Document{})
	page, body, err := a.buildPage(&document.Page{Width: 200, Height: 100})
	require.NoError(t, err)
	assert.Equal(t, "", string(body))
	assert.Equal(t, 200.0, page.MediaBox.Width())
	assert.Equal(t, 100.0, page.MediaBox.Height())
}

func TestBuildPageEmitsBackgroundFillBeforeElements(t *testing.T) {
	bg := document.RGB(255, 0, 0)
	a := newTestAssembler(&document.Document{})
	_, body, err := a.buildPage(&document.Page{
		Width: 100, Height: 100, Background: &bg,
		Elements: []document.Element{&document.LineElement{X1: 0, Y1: 0, X2: 10, Y2: 10}},
	})
	require.NoError(t, err)
	s := string(body)
	assert.Contains(t, s, "1 0 0 rg\n0 0 100 100 re\nf\n")
	// Line drawn after background, in page-coordinate space (y flipped).
	assert.Contains(t, s, "0 100 m\n")
}

func TestBuildPageReturnsErrorForUnresolvableElement(t *testing.T) {
	a := newTestAssembler(&document.Document{})
	_, _, err := a.buildPage(&document.Page{
		Width: 100, Height: 100,
		Elements: []document.Element{&document.ImageElement{Image: "missing", W: 10}},
	})
	require.Error(t, err)
}
