/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package strutils

// pdfDocEncoding maps PDFDocEncoding byte values to Unicode runes, per
// PDF32000-1:2008 Annex D.2. Bytes with no entry are undefined in the
// encoding (0x00-0x17 other than tab, LF and CR, plus 0x7F and 0x9F, among
// them) and are reported and skipped by the callers in encoding.go rather
// than mapped to a placeholder rune.
var pdfDocEncoding = map[byte]rune{
	0x18: '˘', // breve
	0x19: 'ˇ', // caron
	0x1A: 'ˆ', // circumflex
	0x1B: '˙', // dotaccent
	0x1C: '˝', // hungarumlaut
	0x1D: '˛', // ogonek
	0x1E: '˚', // ring
	0x1F: '˜', // tilde

	0x80: '•', // bullet
	0x81: '†', // dagger
	0x82: '‡', // daggerdbl
	0x83: '…', // ellipsis
	0x84: '—', // emdash
	0x85: '–', // endash
	0x86: 'ƒ', // florin
	0x87: '⁄', // fraction
	0x88: '‹', // guilsinglleft
	0x89: '›', // guilsinglright
	0x8A: '−', // minus
	0x8B: '‰', // perthousand
	0x8C: '„', // quotedblbase
	0x8D: '“', // quotedblleft
	0x8E: '”', // quotedblright
	0x8F: '‘', // quoteleft
	0x90: '’', // quoteright
	0x91: '‚', // quotesinglbase
	0x92: '™', // trademark
	0x93: 'ﬁ', // fi
	0x94: 'ﬂ', // fl
	0x95: 'Ł', // Lslash
	0x96: 'Œ', // OE
	0x97: 'Š', // Scaron
	0x98: 'Ÿ', // Ydieresis
	0x99: 'Ž', // Zcaron
	0x9A: 'ı', // dotlessi
	0x9B: 'ł', // lslash
	0x9C: 'œ', // oe
	0x9D: 'š', // scaron
	0x9E: 'ž', // zcaron

	0xA0: '€', // Euro
}

func init() {
	// 0x09 (tab), 0x0A (LF) and 0x0D (CR) and the full printable ASCII
	// range map to themselves, as does 0xA1-0xFF (PDFDocEncoding matches
	// Latin-1 there).
	for _, b := range []byte{0x09, 0x0A, 0x0D} {
		pdfDocEncoding[b] = rune(b)
	}
	for b := 0x20; b <= 0x7E; b++ {
		pdfDocEncoding[byte(b)] = rune(b)
	}
	for b := 0xA1; b <= 0xFF; b++ {
		pdfDocEncoding[byte(b)] = rune(b)
	}
}
