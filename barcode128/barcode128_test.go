/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package barcode128

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunLengthsSplitsAlternatingRuns(t *testing.T) {
	modules := []bool{true, true, false, false, false, true}
	runs, startsDark := runLengths(modules)
	assert.True(t, startsDark)
	assert.Equal(t, []int{2, 3, 1}, runs)
}

func TestRunLengthsSingleRun(t *testing.T) {
	runs, startsDark := runLengths([]bool{false, false, false})
	assert.False(t, startsDark)
	assert.Equal(t, []int{3}, runs)
}

func TestRunLengthsEmptyInput(t *testing.T) {
	runs, startsDark := runLengths(nil)
	assert.Nil(t, runs)
	assert.False(t, startsDark)
}

func TestBuildProducesConsistentModulePattern(t *testing.T) {
	pattern, err := Build("HELLO123")
	require.NoError(t, err)
	require.NotEmpty(t, pattern.Runs)

	sum := 0
	for _, r := range pattern.Runs {
		sum += r
	}
	assert.Equal(t, pattern.TotalModules, sum)
}

func TestBuildIsDeterministic(t *testing.T) {
	a, err := Build("ABC-001")
	require.NoError(t, err)
	b, err := Build("ABC-001")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
