/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package qrmatrix produces the boolean module matrix for a QR code,
// delegating version selection, quartile error correction and mask
// selection to github.com/boombuler/barcode/qr (qr.Encode with qr.Q/qr.Auto,
// which already implements the penalty-score mask choice spec.md describes)
// and sampling its 1-pixel-per-module output into a square matrix the
// assembler draws as filled squares rather than an embedded raster.
package qrmatrix

import (
	"fmt"
	"image/color"

	"github.com/boombuler/barcode/qr"
)

// Matrix is a square grid of dark/light QR modules, Size modules per side.
type Matrix struct {
	Size    int
	Modules [][]bool // Modules[row][col]; true means a dark (printed) module.
}

// Build encodes value as a QR code at quartile error correction and
// automatic version selection, and samples it into a module matrix.
func Build(value string) (*Matrix, error) {
	img, err := qr.Encode(value, qr.Q, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("qrmatrix: encode %q: %w", value, err)
	}

	b := img.Bounds()
	size := b.Dx()
	if size == 0 || size != b.Dy() {
		return nil, fmt.Errorf("qrmatrix: unexpected symbol bounds %v for %q", b, value)
	}

	modules := make([][]bool, size)
	for row := 0; row < size; row++ {
		modules[row] = make([]bool, size)
		for col := 0; col < size; col++ {
			modules[row][col] = isDark(img.At(b.Min.X+col, b.Min.Y+row))
		}
	}

	return &Matrix{Size: size, Modules: modules}, nil
}

func isDark(c color.Color) bool {
	gray := color.GrayModel.Convert(c).(color.Gray)
	return gray.Y < 128
}
