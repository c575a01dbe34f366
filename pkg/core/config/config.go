// Package config loads FABRIK solver tuning parameters from YAML, so a
// deployment can retune convergence behaviour without a rebuild.
package config

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// SolverTuning holds the convergence-control parameters shared by both the
// 2D and 3D chain solvers.
type SolverTuning struct {
	// SolveDistanceThreshold is the effector-to-target distance, in the
	// same units as bone lengths, below which a solve is considered
	// converged.
	SolveDistanceThreshold float32 `yaml:"solveDistanceThreshold"`
	// MaxIterationAttempts caps the number of forward+backward passes a
	// single solve will run before giving up and returning its best
	// solution so far.
	MaxIterationAttempts int `yaml:"maxIterationAttempts"`
	// MinIterationChange is the stall threshold: when a pass does not
	// improve on the best effector-to-target distance so far and its
	// distance differs from the previous pass's by less than this, the
	// solve stops. Passes that set a new best distance always continue.
	MinIterationChange float32 `yaml:"minIterationChange"`
}

// DefaultSolverTuning returns the 2D solver's default tuning values, the
// same ones fabrik2d.NewChain applies. It does not return the 3D solver's
// defaults (fabrik3d uses a 0.1 threshold and 20 attempts).
func DefaultSolverTuning() SolverTuning {
	return SolverTuning{
		SolveDistanceThreshold: 1.0,
		MaxIterationAttempts:   15,
		MinIterationChange:     0.01,
	}
}

// Load reads and parses solver tuning from r. Any field omitted from the
// YAML document keeps its DefaultSolverTuning value.
func Load(r io.Reader) (SolverTuning, error) {
	tuning := DefaultSolverTuning()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&tuning); err != nil && err != io.EOF {
		return SolverTuning{}, err
	}
	return tuning, nil
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string) (SolverTuning, error) {
	f, err := os.Open(path)
	if err != nil {
		return SolverTuning{}, err
	}
	defer f.Close()
	return Load(f)
}
