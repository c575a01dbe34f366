package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_OverridesOnlyProvidedFields(t *testing.T) {
	tuning, err := Load(strings.NewReader("maxIterationAttempts: 30\n"))
	require.NoError(t, err)

	assert.Equal(t, 30, tuning.MaxIterationAttempts)
	assert.Equal(t, DefaultSolverTuning().SolveDistanceThreshold, tuning.SolveDistanceThreshold)
	assert.Equal(t, DefaultSolverTuning().MinIterationChange, tuning.MinIterationChange)
}

func TestLoad_EmptyDocumentReturnsDefaults(t *testing.T) {
	tuning, err := Load(strings.NewReader(""))
	require.NoError(t, err)

	assert.Equal(t, DefaultSolverTuning(), tuning)
}

func TestLoadFile_MissingFileReturnsError(t *testing.T) {
	_, err := LoadFile("/nonexistent/path/tuning.yaml")
	assert.Error(t, err)
}
