/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/rupdf/rupdf-go/core"
	"github.com/rupdf/rupdf-go/internal/subset"
	"github.com/rupdf/rupdf-go/internal/ttf"
)

// PdfFont is a parsed font resource and its glyph usage record. Grounded on
// the teacher's model/font_composite.go pdfFontCIDFontType2/pdfCIDFontType0:
// only the composite Type 0 path survives here (spec.md never calls for a
// simple Type1/TrueType font), built from internal/ttf metrics and finalized
// through internal/subset once content emission has recorded which glyphs
// were actually drawn.
type PdfFont struct {
	Metrics ttf.Font

	raw  []byte // the complete, unsubsetted font program.
	used map[ttf.GID]bool

	indirect *core.PdfIndirectObject
}

// NewPdfFont parses data as an sfnt font program.
func NewPdfFont(data []byte) (*PdfFont, error) {
	metrics, err := ttf.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("model: parse font: %w", err)
	}
	return &PdfFont{
		Metrics:  metrics,
		raw:      data,
		used:     map[ttf.GID]bool{},
		indirect: core.MakeIndirectObject(nil),
	}, nil
}

// Indirect returns the handle other objects (a page's /Font resource entry)
// reference by pointer; its ObjectNumber is assigned by WriteTo.
func (f *PdfFont) Indirect() *core.PdfIndirectObject {
	return f.indirect
}

// GID maps r to a glyph id via the font's cmap, recording the glyph as used.
// Runes the font cannot map resolve to glyph 0 (.notdef), per spec policy:
// substitute and continue rather than error.
func (f *PdfFont) GID(r rune) ttf.GID {
	gid, ok := f.Metrics.Chars[r]
	if !ok {
		gid = 0
	}
	f.used[gid] = true
	return gid
}

// AdvanceWidth1000 returns the advance width of gid in thousandths of an em,
// the unit the /W array and horizontal layout math both use.
func (f *PdfFont) AdvanceWidth1000(gid ttf.GID) float64 {
	if f.Metrics.UnitsPerEm == 0 {
		return 0
	}
	return float64(f.Metrics.AdvanceWidth(gid)) * 1000 / float64(f.Metrics.UnitsPerEm)
}

// gidToRune inverts Metrics.Chars so ToUnicode can map each used glyph back
// to the codepoint that produced it. Ties (two runes mapping to one glyph,
// e.g. combining forms) keep the lowest rune, independent of map order.
func (f *PdfFont) gidToRune() map[ttf.GID]rune {
	out := make(map[ttf.GID]rune, len(f.used))
	for r, gid := range f.Metrics.Chars {
		if !f.used[gid] {
			continue
		}
		if prev, seen := out[gid]; !seen || r < prev {
			out[gid] = r
		}
	}
	return out
}

// WriteTo finalizes the font's subset over its recorded glyph usage and
// writes the Type0 font, its CIDFontType2/CIDFontType0 descendant, the font
// descriptor, the embedded font file and the ToUnicode CMap as indirect
// objects in table, returning the handle to the top-level Type0 dictionary.
// encoder controls whether the font file and CMap streams are compressed
// (FlateEncoder) or stored as-is (RawEncoder), mirroring render.Options.Compress.
func (f *PdfFont) WriteTo(table *core.ObjectTable, encoder core.StreamEncoder) (*core.PdfIndirectObject, error) {
	result, err := subset.Build(f.raw, &f.Metrics, f.used)
	if err != nil {
		return nil, err
	}

	fontFileStream, err := core.MakeStream(result.Program, encoder)
	if err != nil {
		return nil, err
	}
	fontFileStream.ObjectNumber = table.Alloc()
	switch f.Metrics.Flavor {
	case ttf.FlavorCFF:
		fontFileStream.Set("Subtype", core.MakeName("CIDFontType0C"))
	}
	table.WriteObject(fontFileStream.ObjectNumber, fontFileStream)

	toUnicodeStream, err := core.MakeStream(subset.ToUnicodeCMap(f.gidToRune()), encoder)
	if err != nil {
		return nil, err
	}
	toUnicodeStream.ObjectNumber = table.Alloc()
	table.WriteObject(toUnicodeStream.ObjectNumber, toUnicodeStream)

	descriptor := f.descriptorDict(result.BaseName, fontFileStream)
	descriptorNum := table.Alloc()
	table.WriteObject(descriptorNum, descriptor)
	descriptorIndirect := &core.PdfIndirectObject{PdfObjectReference: core.PdfObjectReference{ObjectNumber: descriptorNum}}

	descendant := f.descendantDict(result.BaseName, descriptorIndirect)
	descendantNum := table.Alloc()
	table.WriteObject(descendantNum, descendant)
	descendantIndirect := &core.PdfIndirectObject{PdfObjectReference: core.PdfObjectReference{ObjectNumber: descendantNum}}

	top := core.MakeDict()
	top.Set("Type", core.MakeName("Font"))
	top.Set("Subtype", core.MakeName("Type0"))
	top.Set("BaseFont", core.MakeName(result.BaseName))
	top.Set("Encoding", core.MakeName("Identity-H"))
	top.Set("DescendantFonts", core.MakeArray(descendantIndirect))
	top.Set("ToUnicode", toUnicodeStream)

	f.indirect.ObjectNumber = table.Alloc()
	table.WriteObject(f.indirect.ObjectNumber, top)

	return f.indirect, nil
}

// descendantDict builds the /CIDFontType2 or /CIDFontType0 descendant font
// dictionary, its /W array expressed in thousandths of em and /CIDToGIDMap
// /Identity since the subset keeps the original glyph indices (spec.md §4.2).
func (f *PdfFont) descendantDict(baseName string, descriptor *core.PdfIndirectObject) *core.PdfObjectDictionary {
	d := core.MakeDict()
	d.Set("Type", core.MakeName("Font"))
	if f.Metrics.Flavor == ttf.FlavorCFF {
		d.Set("Subtype", core.MakeName("CIDFontType0"))
	} else {
		d.Set("Subtype", core.MakeName("CIDFontType2"))
		d.Set("CIDToGIDMap", core.MakeName("Identity"))
	}
	d.Set("BaseFont", core.MakeName(baseName))

	sysInfo := core.MakeDict()
	sysInfo.Set("Registry", core.MakeString("Adobe"))
	sysInfo.Set("Ordering", core.MakeString("Identity"))
	sysInfo.Set("Supplement", core.MakeInteger(0))
	d.Set("CIDSystemInfo", sysInfo)

	d.Set("FontDescriptor", descriptor)
	d.Set("DW", core.MakeFloat(f.AdvanceWidth1000(0)))
	d.Set("W", f.widthsArray())
	return d
}

// widthsArray builds the /W array as runs of consecutive glyph ids sharing
// the same "array of individual widths" form: `c [w1 w2 ... wn]`.
func (f *PdfFont) widthsArray() *core.PdfObjectArray {
	gids := make([]int, 0, len(f.used))
	for gid := range f.used {
		gids = append(gids, int(gid))
	}
	sort.Ints(gids)

	var entries []core.PdfObject
	i := 0
	for i < len(gids) {
		start := gids[i]
		widths := []core.PdfObject{core.MakeFloat(f.AdvanceWidth1000(ttf.GID(start)))}
		j := i + 1
		for j < len(gids) && gids[j] == gids[j-1]+1 {
			widths = append(widths, core.MakeFloat(f.AdvanceWidth1000(ttf.GID(gids[j]))))
			j++
		}
		entries = append(entries, core.MakeInteger(int64(start)), core.MakeArray(widths...))
		i = j
	}
	return core.MakeArray(entries...)
}

// descriptorDict builds the /FontDescriptor, scaling the font's head/OS2
// metrics from font units to the 1000-unit-per-em glyph space PDF expects.
func (f *PdfFont) descriptorDict(baseName string, fontFile *core.PdfObjectStream) *core.PdfObjectDictionary {
	scale := 1000.0
	if f.Metrics.UnitsPerEm != 0 {
		scale = 1000.0 / float64(f.Metrics.UnitsPerEm)
	}

	d := core.MakeDict()
	d.Set("Type", core.MakeName("FontDescriptor"))
	d.Set("FontName", core.MakeName(baseName))
	d.Set("Flags", core.MakeInteger(fontFlags(&f.Metrics)))
	d.Set("FontBBox", core.MakeArray(
		core.MakeFloat(float64(f.Metrics.Xmin)*scale),
		core.MakeFloat(float64(f.Metrics.Ymin)*scale),
		core.MakeFloat(float64(f.Metrics.Xmax)*scale),
		core.MakeFloat(float64(f.Metrics.Ymax)*scale),
	))
	d.Set("ItalicAngle", core.MakeFloat(f.Metrics.ItalicAngle))
	d.Set("Ascent", core.MakeFloat(float64(f.Metrics.Ascent)*scale))
	d.Set("Descent", core.MakeFloat(float64(f.Metrics.Descent)*scale))
	d.Set("CapHeight", core.MakeFloat(float64(f.Metrics.CapHeight)*scale))
	d.Set("StemV", core.MakeInteger(stemVEstimate(f.Metrics.Bold)))

	if f.Metrics.Flavor == ttf.FlavorCFF {
		d.Set("FontFile3", fontFile)
	} else {
		d.Set("FontFile2", fontFile)
	}
	return d
}

// fontFlags approximates the /Flags bit field (Table 123, 9.8.2): every
// embedded subset here is non-symbolic Latin text using Identity-H, plus
// the fixed-pitch/italic/force-bold bits the parsed metrics can actually answer.
func fontFlags(m *ttf.Font) int64 {
	var flags int64 = 32 // Nonsymbolic.
	if m.IsFixedPitch {
		flags |= 1
	}
	if m.ItalicAngle != 0 {
		flags |= 64
	}
	if m.Bold {
		flags |= 1 << 18
	}
	return flags
}

// stemVEstimate gives a conventional vertical-stem-width guess; exact
// hinting metrics aren't in the sfnt tables this parser reads.
func stemVEstimate(bold bool) int64 {
	if bold {
		return 120
	}
	return 80
}
