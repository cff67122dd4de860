/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package common

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDummyLoggerIsLogLevelAlwaysTrue(t *testing.T) {
	var l DummyLogger
	assert.True(t, l.IsLogLevel(LogLevelError))
	assert.True(t, l.IsLogLevel(LogLevelTrace))
}

func TestConsoleLoggerIsLogLevelComparesThreshold(t *testing.T) {
	l := NewConsoleLogger(LogLevelWarning)
	assert.True(t, l.IsLogLevel(LogLevelError))
	assert.True(t, l.IsLogLevel(LogLevelWarning))
	assert.False(t, l.IsLogLevel(LogLevelInfo))
}

func TestWriterLoggerSuppressesMessagesBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(LogLevelWarning, &buf)

	l.Debug("should not appear")
	l.Info("should not appear either")
	assert.Empty(t, buf.String())
}

func TestWriterLoggerEmitsMessagesAtOrAboveThreshold(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(LogLevelWarning, &buf)

	l.Warning("disk nearly full")
	l.Error("write failed")

	out := buf.String()
	assert.Contains(t, out, "[WARNING]")
	assert.Contains(t, out, "disk nearly full")
	assert.Contains(t, out, "[ERROR]")
	assert.Contains(t, out, "write failed")
}

func TestWriterLoggerPrefixesSourceFileAndLine(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(LogLevelTrace, &buf)
	l.Trace("hello")
	assert.Contains(t, buf.String(), "logging_test.go")
}

func TestSetLoggerReplacesPackageLevelLogger(t *testing.T) {
	original := Log
	defer func() { Log = original }()

	var buf bytes.Buffer
	SetLogger(NewWriterLogger(LogLevelTrace, &buf))
	Log.Info("via package logger")
	assert.Contains(t, buf.String(), "via package logger")
}
