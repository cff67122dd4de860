/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteHeaderEmitsVersionAndBinaryMarker(t *testing.T) {
	table := NewObjectTable()
	table.WriteHeader(7)

	out := table.Finalize(&PdfObjectReference{ObjectNumber: 1}, nil)
	require.True(t, bytes.HasPrefix(out, []byte("%PDF-1.7\n")))

	marker := out[len("%PDF-1.7\n"):]
	require.GreaterOrEqual(t, len(marker), 6)
	assert.Equal(t, byte(0x25), marker[0])
	for _, b := range marker[1:5] {
		assert.GreaterOrEqual(t, b, byte(0x80))
	}
}

func TestWriteObjectAndFinalizeProducesClassicXref(t *testing.T) {
	table := NewObjectTable()
	table.WriteHeader(7)

	num := table.Alloc()
	dict := MakeDict()
	dict.Set("Type", MakeName("Catalog"))
	table.WriteObject(num, dict)

	out := table.Finalize(&PdfObjectReference{ObjectNumber: num}, nil)
	text := string(out)

	assert.Contains(t, text, "1 0 obj\n")
	assert.Contains(t, text, "endobj\n")
	assert.Contains(t, text, "\nxref\n0 2\n")
	assert.Contains(t, text, "0000000000 65535 f \n")
	assert.Contains(t, text, "trailer\n")
	assert.Contains(t, text, "/Root 1 0 R")
	assert.True(t, strings.HasSuffix(text, "%%EOF"))
	assert.NotContains(t, text, "/Info")
}

func TestFinalizeIncludesInfoWhenProvided(t *testing.T) {
	table := NewObjectTable()
	table.WriteHeader(7)
	catalogNum := table.Alloc()
	table.WriteObject(catalogNum, MakeDict())
	infoNum := table.Alloc()
	table.WriteObject(infoNum, MakeDict())

	out := table.Finalize(
		&PdfObjectReference{ObjectNumber: catalogNum},
		&PdfObjectReference{ObjectNumber: infoNum},
	)
	assert.Contains(t, string(out), "/Info 2 0 R")
}

func TestWriteObjectEmbedsStreamBody(t *testing.T) {
	table := NewObjectTable()
	table.WriteHeader(7)

	stream, err := MakeStream([]byte("hello"), NewRawEncoder())
	require.NoError(t, err)
	num := table.Alloc()
	stream.ObjectNumber = num
	table.WriteObject(num, stream)

	out := table.Finalize(&PdfObjectReference{ObjectNumber: num}, nil)
	assert.Contains(t, string(out), "stream\nhello\nendstream\n")
}
