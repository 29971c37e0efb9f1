package spatialmath

import "github.com/pkg/errors"

// newBadGeometryDimensionsError returns an error for a geometry with
// dimensions that cannot describe a physical shape.
func newBadGeometryDimensionsError(g Geometry) error {
	return errors.Errorf("invalid dimensions for geometry type %T", g)
}

func newBadCapsuleLengthError(length, radius float64) error {
	return errors.Errorf("capsule length %f must be at least twice the radius %f", length, radius)
}

func newBadMeshFilenameError() error {
	return errors.New("mesh requires a non-empty resource filename")
}
