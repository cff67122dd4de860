package subset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rupdf/rupdf-go/internal/ttf"
)

// maxBfEntries is the maximum number of entries per beginbfchar/beginbfrange
// section, per the CMap spec.
const maxBfEntries = 100

const cmapHeader = `
/CIDInit /ProcSet findresource begin
12 dict begin
begincmap
/CIDSystemInfo << /Registry (Adobe) /Ordering (UCS) /Supplement 0 >> def
/CMapName /Adobe-Identity-UCS def
/CMapType 2 def
1 begincodespacerange
<0000> <FFFF>
endcodespacerange
`

const cmapTrailer = `endcmap
CMapName currentdict /CMap defineresource pop
end
end
`

type gidRange struct {
	gid0, gid1 ttf.GID
}

// ToUnicodeCMap renders the bfchar/bfrange body of a /ToUnicode CMap stream
// mapping each used glyph id back to the Unicode scalar that produced it.
// Grounded on internal/cmap's toBfData range-coalescing algorithm (dropped
// along with the rest of that package's CMap-reading side, which this
// assembler never needs).
func ToUnicodeCMap(gidToRune map[ttf.GID]rune) []byte {
	body := toBfData(gidToRune)
	return []byte(strings.Join([]string{cmapHeader, body, cmapTrailer}, "\n"))
}

func toBfData(gidToRune map[ttf.GID]rune) string {
	if len(gidToRune) == 0 {
		return ""
	}

	gids := make([]ttf.GID, 0, len(gidToRune))
	for gid := range gidToRune {
		gids = append(gids, gid)
	}
	sort.Slice(gids, func(i, j int) bool { return gids[i] < gids[j] })

	var ranges []gidRange
	cur := gidRange{gids[0], gids[0]}
	prevRune := gidToRune[gids[0]]
	for _, gid := range gids[1:] {
		r := gidToRune[gid]
		if gid == cur.gid1+1 && r == prevRune+1 {
			cur.gid1 = gid
		} else {
			ranges = append(ranges, cur)
			cur = gidRange{gid, gid}
		}
		prevRune = r
	}
	ranges = append(ranges, cur)

	var singles []gidRange
	var multi []gidRange
	for _, r := range ranges {
		if r.gid0 == r.gid1 {
			singles = append(singles, r)
		} else {
			multi = append(multi, r)
		}
	}

	var lines []string
	if len(singles) > 0 {
		numSections := (len(singles) + maxBfEntries - 1) / maxBfEntries
		for i := 0; i < numSections; i++ {
			n := min(len(singles)-i*maxBfEntries, maxBfEntries)
			lines = append(lines, fmt.Sprintf("%d beginbfchar", n))
			for j := 0; j < n; j++ {
				gid := singles[i*maxBfEntries+j].gid0
				lines = append(lines, fmt.Sprintf("<%04x> %s", gid, hexRune(gidToRune[gid])))
			}
			lines = append(lines, "endbfchar")
		}
	}
	if len(multi) > 0 {
		numSections := (len(multi) + maxBfEntries - 1) / maxBfEntries
		for i := 0; i < numSections; i++ {
			n := min(len(multi)-i*maxBfEntries, maxBfEntries)
			lines = append(lines, fmt.Sprintf("%d beginbfrange", n))
			for j := 0; j < n; j++ {
				r := multi[i*maxBfEntries+j]
				lines = append(lines, fmt.Sprintf("<%04x><%04x> %s", r.gid0, r.gid1, hexRune(gidToRune[r.gid0])))
			}
			lines = append(lines, "endbfrange")
		}
	}
	return strings.Join(lines, "\n")
}

func hexRune(r rune) string {
	if r > 0xFFFF {
		// Encode as a UTF-16BE surrogate pair.
		r -= 0x10000
		hi := 0xD800 + (r >> 10)
		lo := 0xDC00 + (r & 0x3FF)
		return fmt.Sprintf("<%04x%04x>", hi, lo)
	}
	return fmt.Sprintf("<%04x>", r)
}
