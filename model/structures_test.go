/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPdfRectangleHeightAndWidthAreOrderIndependent(t *testing.T) {
	rect := NewPdfRectangle(0, 0, 100, 50)
	assert.Equal(t, 100.0, rect.Width())
	assert.Equal(t, 50.0, rect.Height())

	flipped := NewPdfRectangle(100, 50, 0, 0)
	assert.Equal(t, 100.0, flipped.Width())
	assert.Equal(t, 50.0, flipped.Height())
}
