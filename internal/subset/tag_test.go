/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package subset

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rupdf/rupdf-go/internal/ttf"
)

func TestTagIsDeterministicForIdenticalInput(t *testing.T) {
	glyphs := map[ttf.GID]bool{1: true, 2: true, 5: true}
	a := Tag(glyphs, "Helvetica")
	b := Tag(glyphs, "Helvetica")
	assert.Equal(t, a, b)
	assert.Len(t, a, 6)
	for _, r := range a {
		assert.Contains(t, tagAlphabet, string(r))
	}
}

func TestTagIsOrderIndependentOverGlyphSet(t *testing.T) {
	a := Tag(map[ttf.GID]bool{1: true, 2: true, 3: true}, "Helvetica")
	b := Tag(map[ttf.GID]bool{3: true, 1: true, 2: true}, "Helvetica")
	assert.Equal(t, a, b)
}

func TestTagDiffersForDifferentGlyphSetsOrNames(t *testing.T) {
	base := Tag(map[ttf.GID]bool{1: true}, "Helvetica")
	otherGlyphs := Tag(map[ttf.GID]bool{1: true, 2: true}, "Helvetica")
	otherName := Tag(map[ttf.GID]bool{1: true}, "Courier")
	assert.NotEqual(t, base, otherGlyphs)
	assert.NotEqual(t, base, otherName)
}

func TestBaseNameJoinsTagAndPostScriptName(t *testing.T) {
	assert.Equal(t, "ABCDEF+Helvetica", BaseName("Helvetica", "ABCDEF"))
}
