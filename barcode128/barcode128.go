/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package barcode128 produces the Code 128 module pattern for a value,
// delegating the subset-switching and checksum arithmetic to
// github.com/boombuler/barcode/code128 (which already implements the auto
// Start A/B/C selection and modulo-103 checksum spec.md describes) and
// sampling its 1-pixel-per-module output into the bar/space run-length
// pattern the assembler draws as filled rectangles.
package barcode128

import (
	"fmt"
	"image/color"

	"github.com/boombuler/barcode/code128"
)

// Pattern is a Code 128 symbol reduced to its module run lengths: Runs[i] is
// the width, in modules, of the i-th bar/space, alternating starting with a
// bar (StartsDark is always true for code128.Encode's output, kept explicit
// since the drawing code needs to know which runs to fill).
type Pattern struct {
	Runs       []int
	TotalModules int
	StartsDark bool
}

// Build encodes value as Code 128 and reduces it to its module pattern.
func Build(value string) (*Pattern, error) {
	img, err := code128.Encode(value)
	if err != nil {
		return nil, fmt.Errorf("barcode128: encode %q: %w", value, err)
	}

	b := img.Bounds()
	width := b.Dx()
	if width == 0 {
		return nil, fmt.Errorf("barcode128: empty symbol for %q", value)
	}

	darks := make([]bool, width)
	for i := 0; i < width; i++ {
		darks[i] = isDark(img.At(b.Min.X+i, b.Min.Y))
	}

	runs, startsDark := runLengths(darks)
	return &Pattern{Runs: runs, TotalModules: width, StartsDark: startsDark}, nil
}

func isDark(c color.Color) bool {
	gray := color.GrayModel.Convert(c).(color.Gray)
	return gray.Y < 128
}

func runLengths(modules []bool) (runs []int, startsDark bool) {
	if len(modules) == 0 {
		return nil, false
	}
	startsDark = modules[0]
	cur := modules[0]
	count := 0
	for _, m := range modules {
		if m == cur {
			count++
			continue
		}
		runs = append(runs, count)
		cur = m
		count = 1
	}
	runs = append(runs, count)
	return runs, startsDark
}
