// Package subset builds PDF font subsets: a deterministic 6-letter subset
// tag, the glyph-exact subset font program (via unitype) and the
// /ToUnicode CMap stream that maps glyph ids back to source codepoints.
package subset

import (
	"crypto/sha256"
	"sort"

	"github.com/rupdf/rupdf-go/internal/ttf"
)

const tagAlphabet = "QWERTYUIOPASDFGHJKLZXCVBNM"

// Tag derives a stable 6-uppercase-letter subset prefix from the sorted
// glyph id set and the font's PostScript name, so identical subsets always
// produce identical prefixes (render is idempotent, per spec invariant 10).
// The teacher drew 6 random letters per call (genSubsetTag in
// model/font_composite.go); this replaces the random draw with a hash of
// the subset's content, keeping the same 6-letter/uppercase format.
func Tag(glyphs map[ttf.GID]bool, psName string) string {
	ids := make([]int, 0, len(glyphs))
	for gid := range glyphs {
		ids = append(ids, int(gid))
	}
	sort.Ints(ids)

	h := sha256.New()
	h.Write([]byte(psName))
	buf := make([]byte, 2)
	for _, id := range ids {
		buf[0] = byte(id >> 8)
		buf[1] = byte(id)
		h.Write(buf)
	}
	sum := h.Sum(nil)

	out := make([]byte, 6)
	for i := range out {
		out[i] = tagAlphabet[int(sum[i])%len(tagAlphabet)]
	}
	return string(out)
}

// BaseName joins tag and psName the way PDF composite font BaseFont values
// are conventionally named: PREFIX+PostScriptName.
func BaseName(psName, tag string) string {
	return tag + "+" + psName
}
