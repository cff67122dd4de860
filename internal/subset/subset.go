package subset

import (
	"bytes"
	"fmt"

	"github.com/rupdf/rupdf-go/common"
	"github.com/rupdf/rupdf-go/internal/ttf"
	"github.com/unidoc/unitype"
)

// Result is a produced font subset: the reduced font program plus the tag
// and composite BaseFont name it was tagged with.
type Result struct {
	Tag      string
	BaseName string
	Program  []byte
}

// Build parses fullFont (the complete font program backing metrics), keeps
// only the glyphs in usedGIDs (plus glyph 0, .notdef, always), and returns
// the reduced font program under a deterministic subset tag.
//
// Grounded on model/font_composite.go's subsetRegistered: unitype.Parse +
// (*unitype.Font).SubsetKeepIndices + Write is the exact sequence the
// teacher uses to shrink a TrueType CID font to its registered glyphs; the
// teacher picks its tag with math/rand, which Tag above replaces with a
// hash for determinism.
func Build(fullFont []byte, metrics *ttf.Font, usedGIDs map[ttf.GID]bool) (*Result, error) {
	if usedGIDs == nil {
		usedGIDs = map[ttf.GID]bool{}
	}
	usedGIDs[0] = true // .notdef

	fnt, err := unitype.Parse(bytes.NewReader(fullFont))
	if err != nil {
		return nil, fmt.Errorf("subset: parse font: %w", err)
	}

	indices := make([]unitype.GlyphIndex, 0, len(usedGIDs))
	for gid := range usedGIDs {
		indices = append(indices, unitype.GlyphIndex(gid))
	}

	reduced, err := fnt.SubsetKeepIndices(indices)
	if err != nil {
		return nil, fmt.Errorf("subset: reduce glyph set: %w", err)
	}

	var buf bytes.Buffer
	if err := reduced.Write(&buf); err != nil {
		return nil, fmt.Errorf("subset: write subset font: %w", err)
	}

	tag := Tag(usedGIDs, metrics.PostScriptName)
	common.Log.Debug("font subset: %s glyphs=%d -> %d bytes", tag, len(usedGIDs), buf.Len())

	return &Result{
		Tag:      tag,
		BaseName: BaseName(metrics.PostScriptName, tag),
		Program:  buf.Bytes(),
	}, nil
}
