/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package render

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rupdf/rupdf-go/document"
)

func TestRenderReturnsErrorForNilDocument(t *testing.T) {
	out, err := Render(nil, Options{})
	require.Error(t, err)
	assert.Nil(t, out)

	var rerr *RenderError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, "validate", rerr.Stage)
}

func TestRenderAssemblesValidDocumentIntoPdfBytes(t *testing.T) {
	fill := document.RGB(0, 0, 255)
	doc := &document.Document{
		Metadata: document.Metadata{CreationDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		Pages: []*document.Page{
			{
				Width:  100,
				Height: 100,
				Elements: []document.Element{
					&document.RectElement{X: 0, Y: 0, W: 50, H: 50, FillColor: &fill},
				},
			},
		},
	}

	out, err := Render(doc, Options{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-1.7\n")))
}

func TestRenderWrapsAssembleErrorWithStage(t *testing.T) {
	doc := &document.Document{Pages: []*document.Page{{Width: -1, Height: 100}}}
	_, err := Render(doc, Options{})
	require.Error(t, err)

	var rerr *RenderError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, "assemble", rerr.Stage)
	assert.Contains(t, err.Error(), "render: assemble:")
}

func TestRenderErrorUnwrapReturnsUnderlyingError(t *testing.T) {
	underlying := errors.New("boom")
	rerr := &RenderError{Stage: "assemble", Err: underlying}
	assert.Same(t, underlying, rerr.Unwrap())
	assert.True(t, errors.Is(rerr, underlying))
}
