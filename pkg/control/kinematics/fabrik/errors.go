// Package fabrik holds the error values shared by the 2D and 3D FABRIK
// solver implementations in fabrik2d and fabrik3d. The solver itself has no
// recoverable errors once a chain has passed construction-time validation:
// every solve completes and returns a distance. These error values cover the
// validation failures that can occur while building or wiring up a chain.
package fabrik

import "errors"

var (
	// ErrInvalidArgument is returned for a zero-magnitude direction or axis,
	// a non-positive bone length, a hinge reference axis that is not
	// perpendicular to its rotation axis, or an empty chain passed to
	// ConnectChain. Constraint angles are not range-checked: 2D joints clamp
	// them to [0, 180] and 3D joints store them as given.
	ErrInvalidArgument = errors.New("fabrik: invalid argument")

	// ErrInvalidState is returned when addConsecutiveBone is called on a
	// chain with no basebone yet, when the embedded-target API is used
	// while embedded-target mode is off, or when fixedBase is disabled on a
	// chain that is connected to a host or that has a global basebone
	// constraint (or a global basebone constraint is set on a chain without
	// a fixed base).
	ErrInvalidState = errors.New("fabrik: invalid state")

	// ErrOutOfRange is returned when a chain or bone index is beyond the
	// current size of its containing collection.
	ErrOutOfRange = errors.New("fabrik: index out of range")

	// ErrUnsupported is returned when a basebone LocalHinge constraint is
	// requested via SetBaseboneConstraintType; this combination is not
	// supported, so it is rejected before any solve.
	ErrUnsupported = errors.New("fabrik: unsupported operation")

	// ErrInvalidOperation is returned when a hinge-only setter is used on a
	// ball joint, or a ball-only setter is used on a hinge joint. The read
	// accessors do not fail; they return zero values for fields the joint
	// kind does not use.
	ErrInvalidOperation = errors.New("fabrik: invalid operation for this joint kind")
)
