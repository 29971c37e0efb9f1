package spatialmath

import "fmt"

// Capsule represents a 3D capsule: a cylinder with hemispherical end caps.
// Length is the total tip to tip distance, so it must be at least twice the radius.
type Capsule struct {
	pose   Pose
	radius float64
	length float64
	label  string
}

// NewCapsule instantiates a new Capsule.
func NewCapsule(pose Pose, radius, length float64, label string) (*Capsule, error) {
	if radius <= 0 || length <= 0 {
		return nil, newBadGeometryDimensionsError(&Capsule{})
	}
	if length < radius*2 {
		return nil, newBadCapsuleLengthError(length, radius)
	}
	return &Capsule{pose: pose, radius: radius, length: length, label: label}, nil
}

// Pose returns the pose of the capsule.
func (c *Capsule) Pose() Pose {
	return c.pose
}

// Label returns the label of this capsule.
func (c *Capsule) Label() string {
	return c.label
}

// Radius returns the radius of the capsule.
func (c *Capsule) Radius() float64 {
	return c.radius
}

// Length returns the tip to tip length of the capsule.
func (c *Capsule) Length() float64 {
	return c.length
}

// String returns a human readable string that represents the capsule.
func (c *Capsule) String() string {
	pt := c.pose.Point()
	return fmt.Sprintf("Type: Capsule | Position: X:%.1f, Y:%.1f, Z:%.1f | Radius: %.0f, Length: %.0f",
		pt.X, pt.Y, pt.Z, c.radius, c.length)
}
