/*
 * Copyright (c) 2013 Kurt Jung (Gmail: kurt.w.jung)
 *
 * Permission to use, copy, modify, and distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */
/*
 * Copyright (c) 2018 FoxyUtils ehf. to modifications of the original.
 * Modifications of the original file are subject to the terms and conditions
 * defined in file 'LICENSE.md', which is part of this source code package.
 */

// Package ttf parses sfnt (TrueType/OpenType) font metrics: units-per-em,
// ascent/descent/cap-height, PostScript name and a rune-to-glyph cmap.
// Glyph outline data itself (glyf/loca or CFF) is left untouched here and
// handled by package subset, which hands the raw font bytes to unitype for
// subsetting.
package ttf

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/rupdf/rupdf-go/common"
)

// GID is a glyph index.
type GID uint16

// GlyphName is the name of a glyph, as recorded in the "post" table.
type GlyphName string

// Flavor identifies the outline format carried by the sfnt container.
type Flavor int

const (
	// FlavorGlyf is TrueType outline data (the "glyf"/"loca" tables).
	FlavorGlyf Flavor = iota
	// FlavorCFF is PostScript/CFF outline data (an "OTTO" sfnt tag, "CFF " table).
	FlavorCFF
)

// Font describes the metrics and character map of a parsed sfnt font file.
// http://scripts.sil.org/cms/scripts/page.php?site_id=nrsi&id=iws-chapter08
type Font struct {
	Flavor Flavor

	UnitsPerEm             uint16
	PostScriptName         string
	Bold                   bool
	ItalicAngle            float64
	IsFixedPitch           bool
	Ascent                 int16
	Descent                int16
	UnderlinePosition      int16
	UnderlineThickness     int16
	Xmin, Ymin, Xmax, Ymax int16
	CapHeight              int16

	// Widths is a list of glyph advance widths (font units) indexed by GID.
	Widths []uint16

	// Chars maps rune values (Unicode) to GIDs. GlyphNames[Chars[r]] names
	// the glyph for rune r when GlyphNames was populated from a "post" table.
	Chars map[rune]GID

	// GlyphNames is a list of glyphs from the "post" table, indexed by GID.
	GlyphNames []GlyphName

	// NumGlyphs is the glyph count from "maxp", independent of how many of
	// them ended up with names or widths recorded.
	NumGlyphs uint16
}

// AdvanceWidth returns the advance width of gid, in font units, falling
// back to the last recorded width (the sfnt hmtx convention for trailing
// monospaced runs) when gid is out of range.
func (f *Font) AdvanceWidth(gid GID) uint16 {
	if int(gid) < len(f.Widths) {
		return f.Widths[gid]
	}
	if len(f.Widths) > 0 {
		return f.Widths[len(f.Widths)-1]
	}
	return 0
}

// String returns a human readable representation of f.
func (f *Font) String() string {
	return fmt.Sprintf("Font{%#q UnitsPerEm=%d Bold=%t ItalicAngle=%f CapHeight=%d Chars=%d}",
		f.PostScriptName, f.UnitsPerEm, f.Bold, f.ItalicAngle, f.CapHeight, len(f.Chars))
}

// ttfParser contains state used while parsing an sfnt font file.
type ttfParser struct {
	rec              Font
	f                io.ReadSeeker
	tables           map[string]uint32
	numberOfHMetrics uint16
	numGlyphs        uint16
}

// ParseFile parses the sfnt font file at path.
func ParseFile(path string) (Font, error) {
	f, err := os.Open(path)
	if err != nil {
		return Font{}, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse parses an sfnt (TrueType or OpenType/CFF) font from r.
func Parse(r io.ReadSeeker) (Font, error) {
	t := &ttfParser{f: r}
	return t.parse()
}

func (t *ttfParser) parse() (Font, error) {
	version, err := t.ReadStr(4)
	if err != nil {
		return Font{}, err
	}
	switch version {
	case "OTTO":
		t.rec.Flavor = FlavorCFF
	case "\x00\x01\x00\x00", "true":
		t.rec.Flavor = FlavorGlyf
	default:
		common.Log.Debug("ttf: unrecognized sfnt version tag %q", version)
		t.rec.Flavor = FlavorGlyf
	}

	numTables := int(t.ReadUShort())
	t.Skip(3 * 2) // searchRange, entrySelector, rangeShift
	t.tables = make(map[string]uint32)
	var tag string
	for j := 0; j < numTables; j++ {
		tag, err = t.ReadStr(4)
		if err != nil {
			return Font{}, err
		}
		t.Skip(4) // checkSum
		offset := t.ReadULong()
		t.Skip(4) // length
		t.tables[tag] = offset
	}

	common.Log.Trace(describeTables(t.tables))

	if err := t.parseComponents(); err != nil {
		return Font{}, err
	}
	return t.rec, nil
}

func describeTables(tables map[string]uint32) string {
	var tags []string
	for tag := range tables {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tables[tags[i]] < tables[tags[j]] })
	parts := []string{fmt.Sprintf("sfnt tables: %d", len(tables))}
	for _, tag := range tags {
		parts = append(parts, fmt.Sprintf("\t%q %5d", tag, tables[tag]))
	}
	return strings.Join(parts, "\n")
}

// parseComponents parses the mandatory and optional metric tables. Outline
// tables ("glyf"/"loca"/"CFF ") are intentionally not read here; package
// subset hands the whole byte stream to unitype for that.
func (t *ttfParser) parseComponents() error {
	if err := t.parseHead(); err != nil {
		return err
	}
	if err := t.parseHhea(); err != nil {
		return err
	}
	if err := t.parseMaxp(); err != nil {
		return err
	}
	if err := t.parseHmtx(); err != nil {
		return err
	}

	if _, ok := t.tables["name"]; ok {
		if err := t.parseName(); err != nil {
			return err
		}
	}
	if _, ok := t.tables["OS/2"]; ok {
		if err := t.parseOS2(); err != nil {
			return err
		}
	}
	if _, ok := t.tables["post"]; ok {
		if err := t.parsePost(); err != nil {
			return err
		}
	}
	if _, ok := t.tables["cmap"]; ok {
		if err := t.parseCmap(); err != nil {
			return err
		}
	}

	return nil
}

func (t *ttfParser) parseHead() error {
	if err := t.Seek("head"); err != nil {
		return err
	}
	t.Skip(3 * 4) // version, fontRevision, checkSumAdjustment
	magicNumber := t.ReadULong()
	if magicNumber != 0x5F0F3CF5 {
		common.Log.Debug("ttf: bad magic number in head table")
	}
	t.Skip(2) // flags
	t.rec.UnitsPerEm = t.ReadUShort()
	t.Skip(2 * 8) // created, modified
	t.rec.Xmin = t.ReadShort()
	t.rec.Ymin = t.ReadShort()
	t.rec.Xmax = t.ReadShort()
	t.rec.Ymax = t.ReadShort()
	return nil
}

func (t *ttfParser) parseHhea() error {
	if err := t.Seek("hhea"); err != nil {
		return err
	}
	t.Skip(4)
	t.rec.Ascent = t.ReadShort()
	t.rec.Descent = t.ReadShort()
	t.Skip(13 * 2)
	t.numberOfHMetrics = t.ReadUShort()
	return nil
}

func (t *ttfParser) parseMaxp() error {
	if err := t.Seek("maxp"); err != nil {
		return err
	}
	t.Skip(4)
	t.numGlyphs = t.ReadUShort()
	t.rec.NumGlyphs = t.numGlyphs
	return nil
}

func (t *ttfParser) parseHmtx() error {
	if err := t.Seek("hmtx"); err != nil {
		return err
	}

	t.rec.Widths = make([]uint16, 0, t.numGlyphs)
	for j := uint16(0); j < t.numberOfHMetrics; j++ {
		t.rec.Widths = append(t.rec.Widths, t.ReadUShort())
		t.Skip(2) // lsb
	}
	if t.numberOfHMetrics < t.numGlyphs && t.numberOfHMetrics > 0 {
		lastWidth := t.rec.Widths[t.numberOfHMetrics-1]
		for j := t.numberOfHMetrics; j < t.numGlyphs; j++ {
			t.rec.Widths = append(t.rec.Widths, lastWidth)
		}
	}

	return nil
}

func (t *ttfParser) parseCmapSubtable31(offset31 int64) error {
	startCount := make([]rune, 0, 8)
	endCount := make([]rune, 0, 8)
	idDelta := make([]int16, 0, 8)
	idRangeOffset := make([]uint16, 0, 8)
	if t.rec.Chars == nil {
		t.rec.Chars = make(map[rune]GID)
	}
	t.f.Seek(int64(t.tables["cmap"])+offset31, io.SeekStart)
	format := t.ReadUShort()
	if format != 4 {
		return fmt.Errorf("ttf: unsupported cmap(3,1) subtable format: %d", format)
	}
	t.Skip(2 * 2) // length, language
	segCount := int(t.ReadUShort() / 2)
	t.Skip(3 * 2) // searchRange, entrySelector, rangeShift
	for j := 0; j < segCount; j++ {
		endCount = append(endCount, rune(t.ReadUShort()))
	}
	t.Skip(2) // reservedPad
	for j := 0; j < segCount; j++ {
		startCount = append(startCount, rune(t.ReadUShort()))
	}
	for j := 0; j < segCount; j++ {
		idDelta = append(idDelta, t.ReadShort())
	}
	offset, _ := t.f.Seek(0, io.SeekCurrent)
	for j := 0; j < segCount; j++ {
		idRangeOffset = append(idRangeOffset, t.ReadUShort())
	}
	for j := 0; j < segCount; j++ {
		c1 := startCount[j]
		c2 := endCount[j]
		d := idDelta[j]
		ro := idRangeOffset[j]
		if ro > 0 {
			t.f.Seek(offset+2*int64(j)+int64(ro), io.SeekStart)
		}
		for c := c1; c <= c2; c++ {
			if c == 0xFFFF {
				break
			}
			var gid int32
			if ro > 0 {
				gid = int32(t.ReadUShort())
				if gid > 0 {
					gid += int32(d)
				}
			} else {
				gid = int32(c) + int32(d)
			}
			if gid >= 65536 {
				gid -= 65536
			}
			if gid > 0 {
				t.rec.Chars[c] = GID(gid)
			}
		}
	}
	return nil
}

func (t *ttfParser) parseCmap() error {
	if err := t.Seek("cmap"); err != nil {
		return err
	}
	t.ReadUShort() // version, ignored.
	numTables := int(t.ReadUShort())
	var offset10, offset31 int64
	for j := 0; j < numTables; j++ {
		platformID := t.ReadUShort()
		encodingID := t.ReadUShort()
		offset := int64(t.ReadULong())
		switch {
		case platformID == 3 && encodingID == 1:
			offset31 = offset
		case platformID == 1 && encodingID == 0:
			offset10 = offset
		case platformID == 0:
			if offset31 == 0 {
				offset31 = offset
			}
		}
	}

	if offset10 != 0 {
		if err := t.parseCmapVersion(offset10); err != nil {
			return err
		}
	}
	if offset31 != 0 {
		if err := t.parseCmapVersion(offset31); err != nil {
			if err := t.parseCmapSubtable31(offset31); err != nil {
				common.Log.Debug("ttf: cmap(3,1) parse failed: %v", err)
			}
		}
	}
	if offset31 == 0 && offset10 == 0 {
		common.Log.Debug("ttf: no usable cmap subtable found")
	}
	return nil
}

func (t *ttfParser) parseCmapVersion(offset int64) error {
	if t.rec.Chars == nil {
		t.rec.Chars = make(map[rune]GID)
	}

	t.f.Seek(int64(t.tables["cmap"])+offset, io.SeekStart)
	format := t.ReadUShort()
	switch format {
	case 0:
		t.Skip(2 * 2) // length, language
		return t.parseCmapFormat0()
	case 4:
		t.f.Seek(int64(t.tables["cmap"])+offset, io.SeekStart)
		return t.parseCmapSubtable31(offset)
	case 6:
		t.Skip(2 * 2)
		return t.parseCmapFormat6()
	case 12:
		t.Skip(2 + 4 + 4) // reserved, length, language
		return t.parseCmapFormat12()
	default:
		return fmt.Errorf("ttf: unsupported cmap format %d", format)
	}
}

func (t *ttfParser) parseCmapFormat0() error {
	dataStr, err := t.ReadStr(256)
	if err != nil {
		return err
	}
	for code, glyphID := range []byte(dataStr) {
		t.rec.Chars[rune(code)] = GID(glyphID)
	}
	return nil
}

func (t *ttfParser) parseCmapFormat6() error {
	firstCode := int(t.ReadUShort())
	entryCount := int(t.ReadUShort())
	for i := 0; i < entryCount; i++ {
		glyphID := GID(t.ReadUShort())
		t.rec.Chars[rune(i+firstCode)] = glyphID
	}
	return nil
}

func (t *ttfParser) parseCmapFormat12() error {
	numGroups := t.ReadULong()
	for i := uint32(0); i < numGroups; i++ {
		firstCode := t.ReadULong()
		endCode := t.ReadULong()
		startGlyph := t.ReadULong()

		if firstCode > 0x0010FFFF || (0xD800 <= firstCode && firstCode <= 0xDFFF) {
			return errors.New("ttf: invalid cmap(12) character code")
		}
		if endCode < firstCode || endCode > 0x0010FFFF || (0xD800 <= endCode && endCode <= 0xDFFF) {
			return errors.New("ttf: invalid cmap(12) character code")
		}

		for j := uint32(0); j <= endCode-firstCode; j++ {
			glyphID := startGlyph + j
			t.rec.Chars[rune(firstCode+j)] = GID(glyphID)
		}
	}
	return nil
}

var postscriptNameCleaner = regexp.MustCompile(`[(){}<> /%\[\]]`)

func (t *ttfParser) parseName() error {
	if err := t.Seek("name"); err != nil {
		return err
	}
	tableOffset, _ := t.f.Seek(0, io.SeekCurrent)
	t.Skip(2) // format
	count := t.ReadUShort()
	stringOffset := t.ReadUShort()
	for j := uint16(0); j < count && t.rec.PostScriptName == ""; j++ {
		t.Skip(3 * 2) // platformID, encodingID, languageID
		nameID := t.ReadUShort()
		length := t.ReadUShort()
		offset := t.ReadUShort()
		if nameID == 6 {
			t.f.Seek(tableOffset+int64(stringOffset)+int64(offset), io.SeekStart)
			s, err := t.ReadStr(int(length))
			if err != nil {
				return err
			}
			s = strings.ReplaceAll(s, "\x00", "")
			t.rec.PostScriptName = postscriptNameCleaner.ReplaceAllString(s, "")
		}
	}
	if t.rec.PostScriptName == "" {
		common.Log.Debug("ttf: PostScript name (nameID 6) not found")
	}
	return nil
}

func (t *ttfParser) parseOS2() error {
	if err := t.Seek("OS/2"); err != nil {
		return err
	}
	version := t.ReadUShort()
	t.Skip(4 * 2) // xAvgCharWidth, usWeightClass, usWidthClass, fsType
	t.Skip(11*2 + 10 + 4*4 + 4)
	fsSelection := t.ReadUShort()
	t.rec.Bold = (fsSelection & 32) != 0
	t.Skip(2 * 2) // usFirstCharIndex, usLastCharIndex
	t.Skip(2 * 2) // sTypoAscender, sTypoDescender already taken from hhea
	if version >= 2 {
		t.Skip(3*2 + 2*4 + 2)
		t.rec.CapHeight = t.ReadShort()
	}
	return nil
}

// parsePost reads the "post" table and sets rec.GlyphNames.
func (t *ttfParser) parsePost() error {
	if err := t.Seek("post"); err != nil {
		return err
	}

	formatType := t.Read32Fixed()
	t.rec.ItalicAngle = t.Read32Fixed()
	t.rec.UnderlinePosition = t.ReadShort()
	t.rec.UnderlineThickness = t.ReadShort()
	t.rec.IsFixedPitch = t.ReadULong() != 0
	t.ReadULong()
	t.ReadULong()
	t.ReadULong()
	t.ReadULong()

	switch formatType {
	case 1.0:
		t.rec.GlyphNames = macGlyphNames
	case 2.0:
		numGlyphs := int(t.ReadUShort())
		glyphNameIndex := make([]int, numGlyphs)
		t.rec.GlyphNames = make([]GlyphName, numGlyphs)
		maxIndex := -1
		for i := 0; i < numGlyphs; i++ {
			index := int(t.ReadUShort())
			glyphNameIndex[i] = index
			if index <= 0x7fff && index > maxIndex {
				maxIndex = index
			}
		}
		var nameArray []GlyphName
		if maxIndex >= len(macGlyphNames) {
			nameArray = make([]GlyphName, maxIndex-len(macGlyphNames)+1)
			for i := range nameArray {
				n := int(t.readByte())
				s, err := t.ReadStr(n)
				if err != nil {
					return err
				}
				nameArray[i] = GlyphName(s)
			}
		}
		for i := 0; i < numGlyphs; i++ {
			index := glyphNameIndex[i]
			switch {
			case index < len(macGlyphNames):
				t.rec.GlyphNames[i] = macGlyphNames[index]
			case index <= 32767:
				t.rec.GlyphNames[i] = nameArray[index-len(macGlyphNames)]
			default:
				t.rec.GlyphNames[i] = ".undefined"
			}
		}
	case 3.0:
		common.Log.Debug("ttf: post table carries no glyph names (format 3.0)")
	default:
		common.Log.Debug("ttf: unsupported post table format %f", formatType)
	}

	return nil
}

// Seek moves the read pointer to the start of table tag.
func (t *ttfParser) Seek(tag string) error {
	ofs, ok := t.tables[tag]
	if !ok {
		return fmt.Errorf("ttf: table not found: %s", tag)
	}
	t.f.Seek(int64(ofs), io.SeekStart)
	return nil
}

// Skip advances n bytes.
func (t *ttfParser) Skip(n int) {
	t.f.Seek(int64(n), io.SeekCurrent)
}

// ReadStr reads length bytes and returns them as a string.
func (t *ttfParser) ReadStr(length int) (string, error) {
	buf := make([]byte, length)
	n, err := io.ReadFull(t.f, buf)
	if err != nil {
		return "", err
	} else if n != length {
		return "", fmt.Errorf("ttf: short read (%d of %d bytes)", n, length)
	}
	return string(buf), nil
}

func (t *ttfParser) readByte() (val uint8) {
	binary.Read(t.f, binary.BigEndian, &val)
	return val
}

// ReadUShort reads a big-endian uint16.
func (t *ttfParser) ReadUShort() (val uint16) {
	binary.Read(t.f, binary.BigEndian, &val)
	return val
}

// ReadShort reads a big-endian int16.
func (t *ttfParser) ReadShort() (val int16) {
	binary.Read(t.f, binary.BigEndian, &val)
	return val
}

// ReadULong reads a big-endian uint32.
func (t *ttfParser) ReadULong() (val uint32) {
	binary.Read(t.f, binary.BigEndian, &val)
	return val
}

// Read32Fixed reads a 16.16 fixed-point number.
func (t *ttfParser) Read32Fixed() float64 {
	whole := float64(t.ReadShort())
	frac := float64(t.ReadUShort()) / 65536.0
	return whole + frac
}

// The 258 standard Macintosh glyph names used in "post" table formats 1 and 2.
var macGlyphNames = []GlyphName{
	".notdef", ".null", "nonmarkingreturn", "space", "exclam", "quotedbl",
	"numbersign", "dollar", "percent", "ampersand", "quotesingle",
	"parenleft", "parenright", "asterisk", "plus", "comma", "hyphen",
	"period", "slash", "zero", "one", "two", "three", "four", "five",
	"six", "seven", "eight", "nine", "colon", "semicolon", "less",
	"equal", "greater", "question", "at", "A", "B", "C", "D", "E", "F",
	"G", "H", "I", "J", "K", "L", "M", "N", "O", "P", "Q", "R", "S",
	"T", "U", "V", "W", "X", "Y", "Z", "bracketleft", "backslash",
	"bracketright", "asciicircum", "underscore", "grave", "a", "b",
	"c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m", "n", "o",
	"p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z", "braceleft",
	"bar", "braceright", "asciitilde", "Adieresis", "Aring",
	"Ccedilla", "Eacute", "Ntilde", "Odieresis", "Udieresis", "aacute",
	"agrave", "acircumflex", "adieresis", "atilde", "aring",
	"ccedilla", "eacute", "egrave", "ecircumflex", "edieresis",
	"iacute", "igrave", "icircumflex", "idieresis", "ntilde", "oacute",
	"ograve", "ocircumflex", "odieresis", "otilde", "uacute", "ugrave",
	"ucircumflex", "udieresis", "dagger", "degree", "cent", "sterling",
	"section", "bullet", "paragraph", "germandbls", "registered",
	"copyright", "trademark", "acute", "dieresis", "notequal", "AE",
	"Oslash", "infinity", "plusminus", "lessequal", "greaterequal",
	"yen", "mu", "partialdiff", "summation", "product", "pi",
	"integral", "ordfeminine", "ordmasculine", "Omega", "ae", "oslash",
	"questiondown", "exclamdown", "logicalnot", "radical", "florin",
	"approxequal", "Delta", "guillemotleft", "guillemotright",
	"ellipsis", "nonbreakingspace", "Agrave", "Atilde", "Otilde", "OE",
	"oe", "endash", "emdash", "quotedblleft", "quotedblright",
	"quoteleft", "quoteright", "divide", "lozenge", "ydieresis",
	"Ydieresis", "fraction", "currency", "guilsinglleft",
	"guilsinglright", "fi", "fl", "daggerdbl", "periodcentered",
	"quotesinglbase", "quotedblbase", "perthousand", "Acircumflex",
	"Ecircumflex", "Aacute", "Edieresis", "Egrave", "Iacute",
	"Icircumflex", "Idieresis", "Igrave", "Oacute", "Ocircumflex",
	"apple", "Ograve", "Uacute", "Ucircumflex", "Ugrave", "dotlessi",
	"circumflex", "tilde", "macron", "breve", "dotaccent", "ring",
	"cedilla", "hungarumlaut", "ogonek", "caron", "Lslash", "lslash",
	"Scaron", "scaron", "Zcaron", "zcaron", "brokenbar", "Eth", "eth",
	"Yacute", "yacute", "Thorn", "thorn", "minus", "multiply",
	"onesuperior", "twosuperior", "threesuperior", "onehalf",
	"onequarter", "threequarters", "franc", "Gbreve", "gbreve",
	"Idotaccent", "Scedilla", "scedilla", "Cacute", "cacute", "Ccaron",
	"ccaron", "dcroat",
}
