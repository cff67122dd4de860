/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package timeutils formats and parses PDF date strings (7.9.4): the
// "D:YYYYMMDDHHmmSSOHH'mm'" format used by /CreationDate and friends.
// Rewritten cleanly from the teacher's internal/timeutils, whose copy
// is a commercial-obfuscator build artifact; re-expressed here in ordinary
// Go rather than carried forward unreadable.
package timeutils

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var pdfTimeRe = regexp.MustCompile(`\s*D\s*:\s*(\d{4})(\d{2})(\d{2})(\d{2})(\d{2})(\d{2})?([+\-Z])?(\d{2})?'?(\d{2})?`)

// FormatPdfTime renders in as a PDF date string in the local-offset form
// D:YYYYMMDDHHmmSS+HH'mm'.
func FormatPdfTime(in time.Time) string {
	offset := in.Format("-07:00")
	hh, _ := strconv.ParseInt(offset[1:3], 10, 32)
	mm, _ := strconv.ParseInt(offset[4:6], 10, 32)
	sign := offset[0]
	return fmt.Sprintf("D:%.4d%.2d%.2d%.2d%.2d%.2d%c%.2d'%.2d'",
		in.Year(), in.Month(), in.Day(), in.Hour(), in.Minute(), in.Second(), sign, hh, mm)
}

// ParsePdfTime parses a PDF date string, tolerating a missing "D:" prefix.
func ParsePdfTime(pdfTime string) (time.Time, error) {
	m := pdfTimeRe.FindAllStringSubmatch(pdfTime, 1)
	if len(m) < 1 {
		if len(pdfTime) > 0 && pdfTime[0] != 'D' {
			return ParsePdfTime(fmt.Sprintf("D:%s", pdfTime))
		}
		return time.Time{}, fmt.Errorf("invalid date string (%s)", pdfTime)
	}
	if len(m[0]) != 10 {
		return time.Time{}, errors.New("invalid regexp group match length != 10")
	}

	g := m[0]
	year, _ := strconv.ParseInt(g[1], 10, 32)
	month, _ := strconv.ParseInt(g[2], 10, 32)
	day, _ := strconv.ParseInt(g[3], 10, 32)
	hour, _ := strconv.ParseInt(g[4], 10, 32)
	minute, _ := strconv.ParseInt(g[5], 10, 32)
	second, _ := strconv.ParseInt(g[6], 10, 32)

	sign := byte('+')
	if len(g[7]) > 0 {
		switch g[7] {
		case "-":
			sign = '-'
		case "Z":
			sign = 'Z'
		}
	}

	var offHour, offMin int64
	if len(g[8]) > 0 {
		offHour, _ = strconv.ParseInt(g[8], 10, 32)
	}
	if len(g[9]) > 0 {
		offMin, _ = strconv.ParseInt(g[9], 10, 32)
	}

	offsetSeconds := int(offHour*3600 + offMin*60)
	if sign == '-' {
		offsetSeconds = -offsetSeconds
	} else if sign == 'Z' {
		offsetSeconds = 0
	}

	zoneName := fmt.Sprintf("UTC%c%.2d%.2d", sign, offHour, offMin)
	loc := time.FixedZone(zoneName, offsetSeconds)
	return time.Date(int(year), time.Month(month), int(day), int(hour), int(minute), int(second), 0, loc), nil
}
