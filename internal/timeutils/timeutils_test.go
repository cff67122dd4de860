/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package timeutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPdfTimeRendersLocalOffsetForm(t *testing.T) {
	loc := time.FixedZone("UTC+0200", 2*3600)
	in := time.Date(2024, 3, 5, 13, 45, 9, 0, loc)
	assert.Equal(t, "D:20240305134509+02'00'", FormatPdfTime(in))
}

func TestFormatPdfTimeHandlesNegativeOffset(t *testing.T) {
	loc := time.FixedZone("UTC-0530", -5*3600-30*60)
	in := time.Date(2024, 12, 31, 23, 59, 59, 0, loc)
	assert.Equal(t, "D:20241231235959-05'30'", FormatPdfTime(in))
}

func TestParsePdfTimeRoundTripsWithDPrefix(t *testing.T) {
	got, err := ParsePdfTime("D:20240305134509+02'00'")
	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.Month(3), got.Month())
	assert.Equal(t, 5, got.Day())
	assert.Equal(t, 13, got.Hour())
	assert.Equal(t, 45, got.Minute())
	assert.Equal(t, 9, got.Second())
	_, offset := got.Zone()
	assert.Equal(t, 2*3600, offset)
}

func TestParsePdfTimeToleratesMissingDPrefix(t *testing.T) {
	got, err := ParsePdfTime("20240305134509Z")
	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year())
	_, offset := got.Zone()
	assert.Equal(t, 0, offset)
}

func TestParsePdfTimeRejectsGarbage(t *testing.T) {
	_, err := ParsePdfTime("")
	require.Error(t, err)
}

func TestFormatThenParsePdfTimePreservesInstant(t *testing.T) {
	loc := time.FixedZone("UTC-0800", -8*3600)
	in := time.Date(2023, 7, 4, 8, 30, 0, 0, loc)
	s := FormatPdfTime(in)
	got, err := ParsePdfTime(s)
	require.NoError(t, err)
	assert.True(t, in.Equal(got))
}
