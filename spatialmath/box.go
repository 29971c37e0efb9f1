package spatialmath

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Box represents a 3D rectangular prism. It has a pose and the full lengths
// of its sides, which fully define it.
type Box struct {
	pose  Pose
	dims  r3.Vector
	label string
}

// NewBox instantiates a new Box.
func NewBox(pose Pose, dims r3.Vector, label string) (*Box, error) {
	// Negative dimensions not allowed. Zero dimensions are allowed for bounding boxes, etc.
	if dims.X < 0 || dims.Y < 0 || dims.Z < 0 {
		return nil, newBadGeometryDimensionsError(&Box{})
	}
	return &Box{pose: pose, dims: dims, label: label}, nil
}

// Pose returns the pose of the box.
func (b *Box) Pose() Pose {
	return b.pose
}

// Label returns the label of this box.
func (b *Box) Label() string {
	return b.label
}

// Dims returns the full side lengths of the box.
func (b *Box) Dims() r3.Vector {
	return b.dims
}

// String returns a human readable string that represents the box.
func (b *Box) String() string {
	pt := b.pose.Point()
	return fmt.Sprintf("Type: Box | Position: X:%.1f, Y:%.1f, Z:%.1f | Dims: X:%.0f, Y:%.0f, Z:%.0f",
		pt.X, pt.Y, pt.Z, b.dims.X, b.dims.Y, b.dims.Z)
}
